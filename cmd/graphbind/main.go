package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hanpama/graphbind/internal/compiler"
	"github.com/hanpama/graphbind/internal/gen"
	"github.com/hanpama/graphbind/internal/language"
)

const rootUsage = `graphbind — GraphQL SDL to Go binding generator

USAGE:
  graphbind <command> [flags]

COMMANDS:
  generate         Compile a GraphQL schema and emit Go bindings
  check            Compile a GraphQL schema and report errors without emitting
  help             Show help for any command
`

const generateUsage = `generate FLAGS:
  -schema <file>   GraphQL SDL file to compile (required)
  -out <file>      Write generated Go source to file (default: stdout)
  -pkg <name>      Package name of the generated file (default: schema)
`

const checkUsage = `check FLAGS:
  -schema <file>   GraphQL SDL file to compile (required)
  (Exits non-zero and prints diagnostics when the schema has errors)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("graphbind", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "generate":
		fmt.Print(generateUsage)
	case "check":
		fmt.Print(checkUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdGenerate(args []string) error {
	schemaFile := ""
	outFile := ""
	pkgName := "schema"

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL file to compile")
	fs.StringVar(&outFile, "out", outFile, "Write generated Go source to file")
	fs.StringVar(&pkgName, "pkg", pkgName, "Package name of the generated file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, generateUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, generateUsage)
		return fmt.Errorf("-schema is required")
	}

	art, err := compile(schemaFile)
	if err != nil {
		return err
	}
	src, err := gen.Generate(art, pkgName)
	if err != nil {
		return fmt.Errorf("render bindings: %w", err)
	}
	if outFile == "" {
		fmt.Print(string(src))
		return nil
	}
	return os.WriteFile(outFile, src, 0644)
}

func cmdCheck(args []string) error {
	schemaFile := ""

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL file to compile")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("-schema is required")
	}

	_, err := compile(schemaFile)
	return err
}

func compile(schemaFile string) (*compiler.Artifact, error) {
	source, err := os.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	doc, err := language.ParseSchema(schemaFile, string(source))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	art, err := compiler.Compile(doc)
	if err != nil {
		return nil, err
	}
	return art, nil
}
