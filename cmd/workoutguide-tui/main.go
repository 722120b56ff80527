package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	workoutguide "github.com/claude/workoutguide"
	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/tui"
	"github.com/claude/workoutguide/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type options struct {
	source  string
	dev     bool
	tick    time.Duration
	logFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "workoutguide-tui",
		Short:         "Pick a workout and follow it in the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, closeLog, err := loadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeLog()
			if opts.tick <= 0 {
				return fmt.Errorf("--tick must be positive")
			}
			_, err = tea.NewProgram(tui.New(cat, opts.tick), tea.WithAltScreen()).Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&opts.source, "catalog", "", "catalog URL or file path (embedded when empty)")
	root.PersistentFlags().BoolVar(&opts.dev, "dev", false, "keep test-N workouts")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.Flags().DurationVar(&opts.tick, "tick", time.Second, "length of one countdown second")

	root.AddCommand(newListCmd(&opts))
	root.AddCommand(newPlanCmd(&opts))
	return root
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workouts with their total duration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, closeLog, err := loadCatalog(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer closeLog()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTOTAL")
			for _, s := range cat.Summaries() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, s.TotalDisplay)
			}
			return tw.Flush()
		},
	}
}

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <workout-id>",
		Short: "Print the step-by-step plan of a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeLog, err := loadCatalog(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer closeLog()

			w, err := cat.GetWorkout(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", w.Name, workout.FormatDuration(workout.DurationOfWorkout(w)))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range workout.Plan(w) {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Index+1, e.SectionName, e.Name, e.Display)
			}
			return tw.Flush()
		},
	}
}

// loadCatalog loads and filters the catalog. The terminal belongs to the UI,
// so logs are discarded unless --log-file is set.
func loadCatalog(ctx context.Context, opts options) (*catalog.Catalog, func(), error) {
	var out io.Writer = io.Discard
	closeLog := func() {}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))

	webFS, err := fs.Sub(workoutguide.WebFS, "web")
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("loading embedded catalog: %w", err)
	}
	cat, err := catalog.NewLoader(webFS, log).Load(ctx, opts.source)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return cat.Filtered(opts.dev), closeLog, nil
}
