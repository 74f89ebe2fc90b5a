// Command dictddl renders a PostgreSQL CREATE TABLE statement from a data
// dictionary spreadsheet.
//
//	dictddl -dictionary dicionario.xlsx -table censo.escolas
//	dictddl -config escolas.hcl -sheet Dicionario
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"schemagen/internal/cli"
	"schemagen/internal/config"
	"schemagen/internal/pipeline"
)

func main() {
	flags := cli.Register(flag.CommandLine, config.ModeDictionary)
	flag.Parse()

	cfg, done := flags.Prepare()
	if done {
		return
	}

	start := time.Now()
	rep, err := pipeline.DictionaryDDL(context.Background(), cfg)
	cli.LogWarnings(rep.Warnings)
	if errors.Is(err, pipeline.ErrNoUsableMapping) {
		fmt.Println(rep.Statement)
	}
	if err != nil {
		cli.Fatalf("%v", err)
	}

	fmt.Println(rep.Statement)
	if flags.Verbose {
		if len(rep.Sheets) > 0 {
			log.Printf("dictionary: workbook sheets: %s", strings.Join(rep.Sheets, ", "))
		}
		log.Printf("dictionary: sheet=%q rows=%d columns=%d skipped=%v in %s",
			rep.Sheet, rep.Rows, len(rep.Columns), rep.SkippedRows, time.Since(start).Truncate(time.Millisecond))
	}
}
