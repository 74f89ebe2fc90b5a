// Command csvddl infers a CREATE TABLE statement from a sample of a delimited
// file and prints it with the COPY that loads the file.
//
//	csvddl -file cursos.csv -table cursos -delimiter , -sample-rows 5000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"schemagen/internal/cli"
	"schemagen/internal/config"
	"schemagen/internal/pipeline"
)

func main() {
	flags := cli.Register(flag.CommandLine, config.ModeSample)
	flag.Parse()

	cfg, done := flags.Prepare()
	if done {
		return
	}

	rep, err := pipeline.SampleDDL(context.Background(), cfg)
	cli.LogWarnings(rep.Warnings)
	if errors.Is(err, pipeline.ErrNoUsableMapping) {
		fmt.Println(rep.Statement)
	}
	if err != nil {
		cli.Fatalf("%v", err)
	}

	fmt.Println(rep.Statement)
	fmt.Println()
	fmt.Println(rep.Load)

	log.Printf("file columns: %d, column definitions: %d", rep.Result.HeaderWidth, len(rep.Result.Columns))
	if !rep.Result.CountsMatch() {
		log.Printf("warning: column count differs from the file header; review before loading")
	}
	if flags.Verbose {
		log.Printf("sample: rows=%d skipped=%d kinds=%v", rep.SampledRows, rep.SkippedLines, rep.Result.Kinds)
	}
}
