package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a boat from a line in the inventory file format" }
func (*addCmd) Usage() string {
	return `mcs add <name,length,kind,location,owed>

  Adds a boat to the inventory. The line has the same format as the lines
  of the inventory file, e.g.

  $ mcs add 'Big Brother,32,trailor,BRO123,0'

  Kind is one of slip, land, trailor or storage.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (*addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing boat line")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	b, err := marina.ParseLine(strings.Join(f.Args(), " "))
	if err != nil {
		return failure(err)
	}
	if err := s.inv.Insert(b); err != nil {
		return failure(err)
	}
	if err := s.save(); err != nil {
		return failure(err)
	}
	fmt.Printf("Added %v\n", b)
	return subcommands.ExitSuccess
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a boat by name" }
func (*removeCmd) Usage() string {
	return `mcs remove <name>

  Removes the boat with that name, ignoring case. When several boats share
  the name, the first one added is removed.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing boat name")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	name := strings.Join(f.Args(), " ")
	b, err := s.inv.Boat(name)
	if err != nil {
		return failure(err)
	}
	if err := s.inv.Remove(name); err != nil {
		return failure(err)
	}
	if err := s.save(); err != nil {
		return failure(err)
	}
	fmt.Printf("Removed %s\n", b.Name)
	return subcommands.ExitSuccess
}

type paymentCmd struct{}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record a payment from a boat owner" }
func (*paymentCmd) Usage() string {
	return `mcs payment <name> <amount>

  Subtracts amount from what the boat owes. A payment cannot be greater
  than the amount owed.
`
}

func (*paymentCmd) SetFlags(f *flag.FlagSet) {}

func (*paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a boat name and an amount")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	args := f.Args()
	name := strings.Join(args[:len(args)-1], " ")
	amount := marina.ParseMoney(args[len(args)-1], s.inv.Currency())

	if err := s.inv.AcceptPayment(name, amount); err != nil {
		return failure(err)
	}
	if err := s.save(); err != nil {
		return failure(err)
	}
	b, _ := s.inv.Boat(name)
	fmt.Printf("%s now owes %s\n", b.Name, b.Owed)
	return subcommands.ExitSuccess
}

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "charge every boat one month" }
func (*monthCmd) Usage() string {
	return `mcs month

  Adds one month of fees to every boat: its length times the monthly rate
  of where it is kept. See "mcs topic billing".
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (*monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	s.inv.AdvanceMonth()
	if err := s.save(); err != nil {
		return failure(err)
	}
	fmt.Printf("Charged %d boats, total owed %s\n", s.inv.Len(), s.inv.TotalOwed())
	return subcommands.ExitSuccess
}
