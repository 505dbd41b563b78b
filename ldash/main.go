// Command ldash computes a personal finance dashboard from a JSONL ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ledgerdash/cmd"
	"github.com/etnz/ledgerdash/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion. Install it with
// COMP_INSTALL=1 ldash.
func completion(commander *subcommands.Commander) *complete.Command {
	global := map[string]complete.Predictor{}
	commander.VisitAll(func(f *flag.Flag) { global[f.Name] = predictFlag(f.Name) })

	root := &complete.Command{Sub: map[string]*complete.Command{}, Flags: global}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(f.Name) })
		switch c.Name() {
		case "topic":
			topics, _ := docs.Topics()
			sub.Args = predict.Set(append(topics, docs.Index))
		case "import":
			sub.Args = predict.Files("*.xlsx")
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

func predictFlag(name string) complete.Predictor {
	switch name {
	case "config":
		return predict.Files("*.yaml")
	case "ledger-file":
		return predict.Files("*.jsonl")
	case "o":
		return predict.Files("*.xlsx")
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case "period":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "json", "all", "mark", "w", "delta":
		return predict.Nothing
	}
	return predict.Something
}
