package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	legacy bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the boats kept at the marina" }
func (*inventoryCmd) Usage() string {
	return `mcs inventory [-legacy]

  Lists all boats sorted by name, with their length, location and balance.

  -legacy prints the fixed width listing of the interactive shell instead of a table.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.legacy, "legacy", false, "print the fixed width listing")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	if c.legacy {
		if err := renderer.Legacy(os.Stdout, s.inv); err != nil {
			return failure(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderInventory(renderer.NewInventory("Inventory", s.inv)))
	return subcommands.ExitSuccess
}
