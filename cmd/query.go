package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct {
	indent bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the inventory" }
func (*queryCmd) Usage() string {
	return `mcs query [-indent] <jsonpath>

  Prints the JSON result of a JSONPath expression evaluated on the inventory.
  See "mcs topic query" for the document layout.

Usage Examples:
# Names of the boats owing more than 100.
$ mcs query '$[?(@.owed.amount > 100)].name'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indent, "indent", false, "indent the JSON output")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one JSONPath expression")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	v, err := s.inv.Query(f.Arg(0))
	if err != nil {
		return failure(err)
	}
	enc := json.NewEncoder(os.Stdout)
	if c.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
