package cli

import (
	"flag"
	"fmt"
	"io"

	"kpfits/internal/fits"
	"kpfits/internal/report"
)

// runInspect builds the handler for the inspect command.
func runInspect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
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
			fmt.Fprintf(stdout, "%s\n", path)
			report.WriteListing(stdout, cat)
		}
		return code
	}
}
