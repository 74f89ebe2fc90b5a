package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Load reads the configuration at path over DefaultConfig. Files ending in
// .hcl are decoded as HCL, anything else as JSON. Unknown JSON keys are
// rejected so a typo does not silently fall back to a default.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return decodeHCL(content, path)
	}
	return decodeJSON(content, path)
}

func decodeHCL(content []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	cfg := DefaultConfig()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	return cfg, nil
}

func decodeJSON(content []byte, filename string) (*Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(content)) == 0 {
		return cfg, nil
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", filename, err)
	}
	return cfg, nil
}

// Export writes cfg to path in HCL format, one attribute per field.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	str := func(name, v string) { root.SetAttributeValue(name, cty.StringVal(v)) }
	num := func(name string, v int) { root.SetAttributeValue(name, cty.NumberIntVal(int64(v))) }
	flag := func(name string, v bool) { root.SetAttributeValue(name, cty.BoolVal(v)) }

	str("table", cfg.Table)
	str("file", cfg.File)
	if cfg.LoadPath != "" {
		str("load_path", cfg.LoadPath)
	}
	root.AppendNewline()
	str("dictionary", cfg.Dictionary)
	str("sheet", cfg.Sheet)
	num("header_row", cfg.HeaderRow)
	num("name_column", cfg.NameColumn)
	num("type_column", cfg.TypeColumn)
	num("size_column", cfg.SizeColumn)
	root.AppendNewline()
	str("delimiter", cfg.Delimiter)
	str("encoding", cfg.Encoding)
	num("sample_rows", cfg.SampleRows)
	root.AppendNewline()
	str("catalog_kind", cfg.CatalogKind)
	if cfg.DSN != "" {
		str("dsn", cfg.DSN)
	}
	flag("strict", cfg.Strict)
	flag("if_not_exists", cfg.IfNotExists)
	flag("notes", cfg.Notes)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(f.Bytes()); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
