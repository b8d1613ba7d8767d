// Command mcs manages the boats kept at a marina.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/marina/cmd"
	"github.com/etnz/marina/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	// Exits when called by the shell to complete a command line.
	completion().Complete("mcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())
	_ = cmd.Logger().Sync()
	os.Exit(int(status))
}

// completion describes the mcs command line for shell completion.
func completion() *complete.Command {
	boats := complete.PredictFunc(func(prefix string) []string { return cmd.BoatNames() })
	topics := complete.PredictFunc(func(prefix string) []string {
		t, _ := docs.GetAllTopics()
		return t
	})
	args := map[string]complete.Predictor{
		"remove":  boats,
		"payment": boats,
		"shell":   predict.Files("*.csv"),
		"topic":   topics,
	}

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		flags := make(map[string]complete.Predictor)
		f.VisitAll(func(fl *flag.Flag) { flags[fl.Name] = predict.Nothing })
		sub[c.Name()] = &complete.Command{Flags: flags, Args: args[c.Name()]}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		sub[name] = &complete.Command{}
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"f":      predict.Files("*.csv"),
			"config": predict.Files("*.toml"),
			"v":      predict.Nothing,
		},
	}
}
