package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/ledgerdash/agent"
	"github.com/etnz/ledgerdash/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `ldash assist [question...]

  Starts an interactive session with the AI assistant, answering questions
  about the ledger. Requires GEMINI_API_KEY (or GOOGLE_API_KEY) to be set.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := openOrExit()
	if a == nil {
		return status
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	model := a.settings.Model
	assistant := agent.New(os.Stdout, os.Stdin, model,
		agent.NewAnalyst(model, a.snapshot, a.format),
		agent.NewResearcher(model),
	)
	assistant.Print = func(_ io.Writer, md string) error {
		printMarkdown(md)
		return nil
	}

	ctx = logger.WithContext(ctx, a.log)
	if err := assistant.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
