package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marina/agent"
	"github.com/etnz/marina/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `mcs assist [prompt]

  Start an interactive session with the AI assistant. It can answer
  questions about the boats and the billing, but does not change the
  inventory.

  Requires GEMINI_API_KEY in the environment or in a .env file.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	s, err := openSession()
	if err != nil {
		return failure(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	log := logger.Named(Logger(), "assist")
	harbormaster := agent.NewHarbormaster(s.inv)
	accountant := agent.NewAccountant(s.inv)
	harbormaster.Log, accountant.Log = log, log
	a := agent.New(os.Stdout, os.Stdin, harbormaster, accountant)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
