// Package cli implements the umami-query operator command
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"umamiconnector/internal/core/version"

	goflags "github.com/jessevdk/go-flags"
)

// Name is the binary name used in help and --version output
const Name = "umami-query"

// commands holds references to the subcommand structs for inspection in tests
type commands struct {
	Schema *SchemaCommand
	Query  *QueryCommand
}

// buildParser constructs the go-flags parser with every subcommand registered
func buildParser(out io.Writer) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = Name
	parser.LongDescription = "Run one Umami report through the connector and print {schema, rows} as JSON."

	cmds := &commands{
		Schema: &SchemaCommand{globals: &globals, out: out},
		Query:  &QueryCommand{globals: &globals, out: out},
	}

	parser.AddCommand("schema", "Print the declared schema of a report kind",
		"Print the field schema the connector declares for --kind.", cmds.Schema)
	parser.AddCommand("query", "Fetch and normalize one report",
		"Log in to Umami (or reuse --token), run the report and print the normalized rows.", cmds.Query)

	return parser, &globals, cmds
}

// Run parses os.Args and executes the matched subcommand
func Run() error {
	return RunWithArgs(nil, os.Stdout)
}

// RunWithArgs parses args (os.Args when nil) and writes results to out
func RunWithArgs(args []string, out io.Writer) error {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			_, err := fmt.Fprintln(out, version.Info(Name).String())
			return err
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(out)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	var flagsErr *goflags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
		return nil
	}
	return err
}
