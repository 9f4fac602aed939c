package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ha1tch/seekplot/cmd/compare"
	"github.com/ha1tch/seekplot/cmd/list"
	"github.com/ha1tch/seekplot/cmd/replay"
	"github.com/ha1tch/seekplot/cmd/run"
	"github.com/ha1tch/seekplot/internal/config"
	"github.com/ha1tch/seekplot/internal/input"
	"github.com/ha1tch/seekplot/internal/logging"
)

// app carries the state shared by every subcommand once the root has loaded it.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seekplot",
		Short:         "Compute and compare disk-head scheduling trajectories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Path to YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format (console, json)")

	root.AddCommand(
		a.runCmd(),
		a.compareCmd(),
		a.replayCmd(),
		a.listCmd(),
	)
	return root
}

func (a *app) load(fs *pflag.FlagSet) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	a.cfg = cfg
	a.log = logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	a.log.Debug().Str("config", a.configPath).Msg("configuration loaded")
	return nil
}

// scheduleFlags holds the input form flags shared by run, compare and replay.
type scheduleFlags struct {
	algorithm string
	requests  string
	head      int
	diskSize  int
	direction string
}

func (s *scheduleFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.algorithm, "algorithm", "a", "", "Algorithm: FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK")
	fs.StringVarP(&s.requests, "requests", "r", "", "Request queue, comma separated track numbers")
	fs.IntVar(&s.head, "head", 0, "Initial head position")
	fs.IntVar(&s.diskSize, "disk-size", 0, "Number of tracks on the disk")
	fs.StringVarP(&s.direction, "direction", "d", "", "Initial direction for SCAN and LOOK (left, right)")
}

// form merges the flags that were set over the configured schedule.
func (s *scheduleFlags) form(fs *pflag.FlagSet, cfg *config.Config) input.Form {
	f := input.Form{
		Algorithm: cfg.Schedule.Algorithm,
		Requests:  cfg.Schedule.Requests,
		Head:      cfg.Schedule.Head,
		DiskSize:  cfg.Schedule.DiskSize,
		Direction: cfg.Schedule.Direction,
	}
	if fs.Changed("algorithm") {
		f.Algorithm = s.algorithm
	}
	if fs.Changed("requests") {
		f.Requests = s.requests
	}
	if fs.Changed("head") {
		f.Head = s.head
	}
	if fs.Changed("disk-size") {
		f.DiskSize = s.diskSize
	}
	if fs.Changed("direction") {
		f.Direction = s.direction
	}
	return f
}

func (a *app) runCmd() *cobra.Command {
	var sf scheduleFlags
	opts := run.DefaultRunOptions()
	var noChart bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling algorithm and show its metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Chart = !noChart
			opts.Width = a.cfg.Chart.Width
			opts.Out = cmd.OutOrStdout()
			opts.Log = a.log
			return run.Run(sf.form(cmd.Flags(), a.cfg), opts)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the head movement chart")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress non-error output")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var sf scheduleFlags
	opts := compare.DefaultCompareOptions()
	var only string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms on the same queue and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(only) != "" {
				opts.Algorithms = strings.Split(only, ",")
			}
			opts.Out = cmd.OutOrStdout()
			opts.Log = a.log
			return compare.Compare(cmd.Context(), sf.form(cmd.Flags(), a.cfg), opts)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().StringVar(&only, "only", "", "Comma separated algorithms to compare (default all)")
	cmd.Flags().StringVar(&opts.Sort, "sort", opts.Sort, "Sort order: order, name, total, average")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Reverse sort order")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Bar width in columns")
	return cmd
}

func (a *app) replayCmd() *cobra.Command {
	var sf scheduleFlags
	opts := replay.DefaultReplayOptions()
	var speed time.Duration

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Play back a schedule one head movement at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configured, err := a.cfg.ReplaySpeed()
			if err != nil {
				return err
			}
			opts.Speed = configured
			if cmd.Flags().Changed("speed") {
				opts.Speed = speed
			}
			opts.Width = a.cfg.Chart.Width
			opts.Out = cmd.OutOrStdout()
			opts.Log = a.log
			return replay.Replay(cmd.Context(), sf.form(cmd.Flags(), a.cfg), opts)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().DurationVar(&speed, "speed", config.DefaultSpeed, "Time per step, 100ms to 1.5s")
	cmd.Flags().BoolVar(&opts.Summary, "summary", true, "Print metrics after the replay")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	opts := list.DefaultListOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported scheduling algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return list.List(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	return cmd
}
