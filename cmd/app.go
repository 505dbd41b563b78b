// Package cmd implements the ldash command line application.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/config"
	"github.com/etnz/ledgerdash/logger"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.cmds {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name string
	cmds []subcommands.Command
}

var groups = []group{
	{"reports", []subcommands.Command{
		&dashboardCmd{}, &kpiCmd{}, &trendCmd{}, &dailyCmd{}, &flowCmd{}, &treemapCmd{}, &balanceCmd{}, &transfersCmd{},
	}},
	{"ledger", []subcommands.Command{
		&reconcileCmd{}, &adjustCmd{}, &errorsCmd{}, &importCmd{}, &fmtCmd{},
	}},
	{"tools", []subcommands.Command{
		&serveCmd{}, &exportCmd{}, &queryCmd{}, &assistCmd{}, &topicCmd{},
	}},
}

// Commands returns every subcommand.
func Commands() []subcommands.Command {
	var cmds []subcommands.Command
	for _, g := range groups {
		cmds = append(cmds, g.cmds...)
	}
	return cmds
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "ldash.yaml", "Path to the configuration file (YAML)")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file or directory (JSONL format), overrides the configuration")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the configuration")

// loadSettings reads the configuration and applies the global flags over it.
func loadSettings() (config.Settings, error) {
	s, err := config.Load(*configFile, ".env")
	if err != nil {
		return s, err
	}
	if *ledgerFile != "" {
		s.LedgerFile = *ledgerFile
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
	return s, nil
}

// newLogger returns the console logger of s.
func newLogger(s config.Settings) (zerolog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger.New(level), nil
}

// app holds what every report command needs.
type app struct {
	settings config.Settings
	snapshot *ledgerdash.Snapshot
	format   renderer.Formatter
	log      zerolog.Logger
}

// open loads the settings and the ledger. Rejected transactions are logged
// as warnings.
func open() (*app, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(s)
	if err != nil {
		return nil, err
	}
	snap, err := ledgerdash.LoadSnapshot(s.LedgerFile, s.Options())
	if err != nil {
		return nil, err
	}
	for _, e := range snap.Rejected() {
		log.Warn().Int("index", e.Index).Str("payee", e.Payee).Str("date", e.Date).Msg("transaction rejected")
	}
	log.Debug().Str("ledger", s.LedgerFile).Int("transactions", snap.Len()).Msg("ledger loaded")
	return &app{settings: s, snapshot: snap, format: renderer.NewFormatter(s.CurrencySymbol), log: log}, nil
}

// openOrExit is open for Execute methods.
func openOrExit() (*app, subcommands.ExitStatus) {
	a, err := open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return a, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
