// log.go implements the "closingportal log" command showing recorded session events.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wctsmart/closingportal/internal/cleanup"
	"github.com/wctsmart/closingportal/internal/log"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recorded session events",
	Long: `Print the events in .closingportal/log.jsonl. By default only the most
recent session is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(projectDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}
		logger, err := log.NewLogger(cfg.LogDir(dir))
		if err != nil {
			return err
		}
		return printLog(cmd.OutOrStdout(), logger, sessionFlag, allFlag)
	},
}

var (
	sessionFlag string
	allFlag     bool
)

func init() {
	logCmd.Flags().StringVar(&sessionFlag, "session", "", "Show only this session ID")
	logCmd.Flags().BoolVar(&allFlag, "all", false, "Show every session")
}

// printLog writes the selected events as a table.
func printLog(w io.Writer, logger *log.Logger, sessionID string, all bool) error {
	events, err := logger.ReadAll()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(w, "No events recorded yet; start a session with: closingportal")
		return nil
	}

	switch {
	case sessionID != "":
		events = log.BySession(events, sessionID)
	case !all:
		events = log.BySession(events, events[len(events)-1].SessionID)
	}
	if len(events) == 0 {
		return fmt.Errorf("no events for session %q", sessionID)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "EVENT", "INTENT", "PHASE", "MODE", "EXPERIENCE", "DAYS", "NOTE")
	for _, e := range events {
		phase := e.Phase
		if e.InDashboard {
			phase = "dashboard"
		}
		days := ""
		if e.DaysRemaining > 0 {
			days = fmt.Sprint(e.DaysRemaining)
		}
		t.Row(e.Time.Format("15:04:05"), e.Event, e.Intent, phase, e.Mode, e.Experience, days, e.Reason)
	}

	if all || sessionID != "" {
		fmt.Fprintf(w, "%d events\n", len(events))
	} else {
		fmt.Fprintf(w, "Session %s\n", events[0].SessionID)
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old sessions from the event log",
	Long: `Remove sessions from .closingportal/log.jsonl, either those older than
--max-age-days or all but the --keep most recent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(projectDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(dir)
		if err != nil {
			return err
		}
		logger, err := log.NewLogger(cfg.LogDir(dir))
		if err != nil {
			return err
		}
		return pruneLog(cmd.OutOrStdout(), logger, pruneOptions{
			Keep:       keepFlag,
			MaxAgeDays: maxAgeFlag,
			DryRun:     dryRunFlag,
			Now:        time.Now(),
		})
	},
}

var (
	keepFlag   int
	maxAgeFlag int
	dryRunFlag bool
)

func init() {
	logPruneCmd.Flags().IntVar(&keepFlag, "keep", 0, "Keep only the N most recent sessions")
	logPruneCmd.Flags().IntVar(&maxAgeFlag, "max-age-days", 30, "Remove sessions older than this many days (ignored with --keep)")
	logPruneCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "List the sessions that would be removed")
	logCmd.AddCommand(logPruneCmd)
}

type pruneOptions struct {
	Keep       int
	MaxAgeDays int
	DryRun     bool
	Now        time.Time
}

// pruneLog applies the retention policy in opts and reports what was removed.
func pruneLog(w io.Writer, logger *log.Logger, opts pruneOptions) error {
	var pruned []string
	var err error
	if opts.Keep > 0 {
		pruned, err = cleanup.PruneKeepRecent(logger, opts.Keep, opts.DryRun)
	} else {
		pruned, err = cleanup.PruneByAge(logger, opts.MaxAgeDays, opts.Now, opts.DryRun)
	}
	if err != nil {
		return err
	}

	verb := "Removed"
	if opts.DryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(w, "%s %d session(s)\n", verb, len(pruned))
	for _, id := range pruned {
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}
