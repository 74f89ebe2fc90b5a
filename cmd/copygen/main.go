// Command copygen renders a psql \copy command for a delimited file whose
// column list is the file header matched against an existing table.
//
//	copygen -file escolas.csv -table censo.escolas -dsn postgres://localhost/censo
//	copygen -catalog sqlite -dsn censo.db -file escolas.csv -table escolas -strict
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"schemagen/internal/catalog"
	"schemagen/internal/cli"
	"schemagen/internal/config"
	"schemagen/internal/pipeline"

	// register all catalog backends; the config selects one.
	_ "schemagen/internal/catalog/all"
)

func main() {
	flags := cli.Register(flag.CommandLine, config.ModeCopy)
	flag.Parse()

	cfg, done := flags.Prepare()
	if done {
		return
	}

	ctx := context.Background()
	cat, err := catalog.Open(ctx, catalog.Config{Kind: cfg.CatalogKind, DSN: cfg.ResolvedDSN()})
	if err != nil {
		cli.Fatalf("%v", err)
	}

	rep, err := pipeline.CopyCommand(ctx, cfg, cat)
	cat.Close()
	cli.LogWarnings(rep.Warnings)
	if err != nil {
		cli.Fatalf("%v", err)
	}

	fmt.Println(rep.Statement)
	if flags.Verbose {
		log.Printf("copy: table=%s columns=%d header=%d matched=%d aligned=%v",
			cfg.Table, len(rep.TableColumns), len(rep.Header), len(rep.Match.Matched), rep.Match.Aligned())
		if len(rep.Match.UnusedColumns) > 0 {
			log.Printf("copy: table columns not in file: %s", strings.Join(rep.Match.UnusedColumns, ", "))
		}
		log.Printf("copy: fingerprint header=%s columns=%s", rep.HeaderFingerprint, rep.ColumnsFingerprint)
	}
}
