package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `mcs fmt

  Validates and formats the inventory file. This command reads all boats,
  reports the lines it cannot read, sorts the boats by name, and writes them
  back with lengths in whole feet and balances with two decimals.

  Lines that cannot be read are dropped from the file.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	if err := s.save(); err != nil {
		return failure(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %s, %d boats.\n", s.path, s.inv.Len())
	return subcommands.ExitSuccess
}
