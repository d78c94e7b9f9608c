package main

import (
	"flag"
	"fmt"
	"os"

	kvmerge "github.com/reoring/kvmerge"
	"github.com/reoring/kvmerge/schemafile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "merge":
		mergeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kvmerge CLI\n\nUsage:\n  kvmerge validate -schema schema.yaml record.json [record.json...]\n  kvmerge merge -schema schema.yaml a.json b.json [more.json...]\n\nNotes:\n  - Schema documents may only reference named merge presets; see kvmerge.PresetNames.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema document (.yaml/.yml/.json)")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	eng, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	for _, path := range fs.Args() {
		rec, err := schemafile.ReadRecordFile(path)
		if err != nil {
			fatalf("reading %s: %v", path, err)
		}
		if err := eng.Validate(rec); err != nil {
			fatalf("%s: %v", path, err)
		}
	}
	fmt.Println("ok")
}

func mergeCmd(args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema document (.yaml/.yml/.json)")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() < 2 {
		fs.Usage()
		os.Exit(2)
	}
	eng, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	records := make([]kvmerge.Record, 0, fs.NArg())
	for _, path := range fs.Args() {
		rec, err := schemafile.ReadRecordFile(path)
		if err != nil {
			fatalf("reading %s: %v", path, err)
		}
		records = append(records, rec)
	}
	out, err := eng.Merge(records...)
	if err != nil {
		fatalf("merge: %v", err)
	}
	if err := schemafile.WriteRecord(os.Stdout, out); err != nil {
		fatalf("writing output: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
