package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/ledgerdash/api"
	"github.com/etnz/ledgerdash/store"
	"github.com/google/subcommands"
)

type serveCmd struct {
	listen string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `ldash serve [-listen <addr>]

  Serves the JSON API described in 'ldash topic api'. The ledger is reloaded
  on the reload_schedule setting whenever it changes.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listen, "listen", "", "address to listen on, overrides the configuration")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.listen != "" {
		s.Listen = c.listen
	}
	log, err := newLogger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New()
	reloader := store.NewReloader(st, s.LedgerFile, s.Options(), log)
	if _, err := reloader.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("could not load the ledger, serving without it until the next reload")
	}
	if err := reloader.Start(s.ReloadSchedule); err != nil {
		log.Error().Err(err).Msg("could not schedule reloads")
		return subcommands.ExitFailure
	}
	defer reloader.Stop()

	srv := &http.Server{
		Addr:              s.Listen,
		Handler:           api.New(st, s.TrendMonths, log).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Listen).Str("ledger", s.LedgerFile).Msg("serving")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		log.Error().Err(err).Msg("server failed")
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("shutdown failed")
		return subcommands.ExitFailure
	}
	log.Info().Msg("stopped")
	return subcommands.ExitSuccess
}
