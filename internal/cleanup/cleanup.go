// Package cleanup implements pruning of old sessions from the event log.
package cleanup

import (
	"fmt"
	"sort"
	"time"

	"github.com/wctsmart/closingportal/internal/log"
)

// sessionSpan is one session's position in the log.
type sessionSpan struct {
	id   string
	last time.Time
}

// spans lists the sessions in events ordered by their last event, oldest first.
// Events without a session ID are ignored.
func spans(events []log.LogEvent) []sessionSpan {
	index := make(map[string]int)
	var out []sessionSpan
	for _, e := range events {
		if e.SessionID == "" {
			continue
		}
		i, ok := index[e.SessionID]
		if !ok {
			index[e.SessionID] = len(out)
			out = append(out, sessionSpan{id: e.SessionID, last: e.Time})
			continue
		}
		if e.Time.After(out[i].last) {
			out[i].last = e.Time
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].last.Before(out[b].last)
	})
	return out
}

// PruneByAge removes sessions whose last event is more than maxAgeDays before
// now. If dryRun is true, the log is not rewritten; the function only returns
// the session IDs that would be removed.
func PruneByAge(logger *log.Logger, maxAgeDays int, now time.Time, dryRun bool) ([]string, error) {
	events, err := logger.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}

	cutoff := now.AddDate(0, 0, -maxAgeDays)
	var pruned []string
	for _, sp := range spans(events) {
		if sp.last.Before(cutoff) {
			pruned = append(pruned, sp.id)
		}
	}

	return pruned, rewrite(logger, events, pruned, dryRun)
}

// PruneKeepRecent removes all sessions except the most recent keep. If dryRun
// is true, the log is not rewritten. Returns the pruned session IDs.
func PruneKeepRecent(logger *log.Logger, keep int, dryRun bool) ([]string, error) {
	if keep < 0 {
		return nil, fmt.Errorf("keep must not be negative, got %d", keep)
	}

	events, err := logger.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}

	all := spans(events)
	if len(all) <= keep {
		return nil, nil
	}

	var pruned []string
	for _, sp := range all[:len(all)-keep] {
		pruned = append(pruned, sp.id)
	}

	return pruned, rewrite(logger, events, pruned, dryRun)
}

// rewrite replaces the log with events minus the pruned sessions.
func rewrite(logger *log.Logger, events []log.LogEvent, pruned []string, dryRun bool) error {
	if dryRun || len(pruned) == 0 {
		return nil
	}

	drop := make(map[string]bool, len(pruned))
	for _, id := range pruned {
		drop[id] = true
	}
	kept := make([]log.LogEvent, 0, len(events))
	for _, e := range events {
		if !drop[e.SessionID] {
			kept = append(kept, e)
		}
	}

	if err := logger.Replace(kept); err != nil {
		return fmt.Errorf("rewriting event log: %w", err)
	}
	return nil
}
