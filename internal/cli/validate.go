package cli

import (
	"flag"
	"fmt"
	"io"

	"kpfits/internal/engine"
	"kpfits/internal/fits"
	"kpfits/internal/report"
	"kpfits/internal/schema"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		schemaPath := flags.String("schema", "", "Path to a format schema file (default: built-in kernel-phase v1)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		files := flags.Args()
		if len(files) == 0 {
			fmt.Fprintln(stderr, "no files provided")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		sch, err := resolveSchema(*schemaPath)
		if err != nil {
			fmt.Fprintf(stderr, "Schema error:\n%s\n", err.Error())
			return ExitError
		}

		plain := *noColor || !isTerminal(stdout)
		code := ExitOK
		for i, path := range files {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			cat, err := fits.ReadCatalog(path)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				code = ExitError
				continue
			}
			findings := engine.Check(cat, sch)
			report.Write(stdout, path, cat, findings, plain)
			if report.ExitCode(findings) != report.ExitPass {
				code = ExitError
			}
		}
		return code
	}
}

// resolveSchema loads a schema file or falls back to the built-in table.
// Either way the schema is self-checked before any file is opened.
func resolveSchema(path string) (*schema.Schema, error) {
	if path == "" {
		sch := schema.KernelPhaseV1()
		if err := sch.Validate(); err != nil {
			return nil, err
		}
		return sch, nil
	}
	return schema.Load(path)
}
