package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	period periodFlags
	all    bool
	json   bool
	watch  int
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display income and expense day by day" }
func (*dailyCmd) Usage() string {
	return `ldash daily [-month <date>] [-from <date> -to <date>] [-all] [-w n] [-json]

  Displays the days with some activity, or every day with -all.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f)
	f.BoolVar(&c.all, "all", false, "list every day, including idle ones")
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
	f.IntVar(&c.watch, "w", 0, "reload and display again every n seconds")
}

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for {
		a, status := openOrExit()
		if a == nil {
			return status
		}
		points, title := a.snapshot.ActivityTrend(r), "Activity "+r.String()
		if c.all {
			points, title = a.snapshot.DailySeries(r), "Daily "+r.String()
		}
		if c.json {
			return printJSON(points)
		}
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.DailyMarkdown(title, points, a.format))

		if c.watch <= 0 {
			return subcommands.ExitSuccess
		}
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(time.Duration(c.watch) * time.Second):
		}
	}
}
