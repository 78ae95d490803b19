package cleanup

import (
	"testing"
	"time"

	"github.com/wctsmart/closingportal/internal/log"
)

// seedSession appends a start and end event for id at ts.
func seedSession(t *testing.T, logger *log.Logger, id string, ts time.Time) {
	t.Helper()
	for _, ev := range []string{log.EventSessionStarted, log.EventSessionEnded} {
		if err := logger.Append(log.LogEvent{Time: ts, Event: ev, SessionID: id}); err != nil {
			t.Fatalf("seeding session %s: %v", id, err)
		}
	}
}

func newLogger(t *testing.T) *log.Logger {
	t.Helper()
	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	return logger
}

func sessionIDs(t *testing.T, logger *log.Logger) map[string]int {
	t.Helper()
	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	ids := make(map[string]int)
	for _, e := range events {
		ids[e.SessionID]++
	}
	return ids
}

func TestPruneByAge_RemovesOldSessions(t *testing.T) {
	logger := newLogger(t)
	now := time.Date(2026, 3, 27, 12, 0, 0, 0, time.UTC)
	seedSession(t, logger, "old", now.AddDate(0, 0, -60))
	seedSession(t, logger, "recent", now.AddDate(0, 0, -5))

	pruned, err := PruneByAge(logger, 30, now, false)
	if err != nil {
		t.Fatalf("PruneByAge failed: %v", err)
	}

	if len(pruned) != 1 || pruned[0] != "old" {
		t.Errorf("expected pruned=[old], got %v", pruned)
	}

	ids := sessionIDs(t, logger)
	if _, ok := ids["old"]; ok {
		t.Errorf("expected old session to be removed")
	}
	if ids["recent"] != 2 {
		t.Errorf("expected both recent events to remain, got %d", ids["recent"])
	}
}

func TestPruneByAge_DryRun(t *testing.T) {
	logger := newLogger(t)
	now := time.Date(2026, 3, 27, 12, 0, 0, 0, time.UTC)
	seedSession(t, logger, "old", now.AddDate(0, 0, -60))

	pruned, err := PruneByAge(logger, 30, now, true)
	if err != nil {
		t.Fatalf("PruneByAge dry-run failed: %v", err)
	}

	if len(pruned) != 1 || pruned[0] != "old" {
		t.Errorf("expected pruned=[old], got %v", pruned)
	}
	if sessionIDs(t, logger)["old"] != 2 {
		t.Errorf("expected old session to remain in dry-run")
	}
}

func TestPruneByAge_EmptyLog(t *testing.T) {
	pruned, err := PruneByAge(newLogger(t), 30, time.Now(), false)
	if err != nil {
		t.Fatalf("expected nil error for empty log, got: %v", err)
	}
	if len(pruned) != 0 {
		t.Errorf("expected empty pruned list, got %v", pruned)
	}
}

func TestPruneKeepRecent_KeepsCorrectCount(t *testing.T) {
	logger := newLogger(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c", "d"} {
		seedSession(t, logger, id, base.Add(time.Duration(i)*time.Hour))
	}

	pruned, err := PruneKeepRecent(logger, 2, false)
	if err != nil {
		t.Fatalf("PruneKeepRecent failed: %v", err)
	}

	if len(pruned) != 2 || pruned[0] != "a" || pruned[1] != "b" {
		t.Errorf("expected pruned=[a b], got %v", pruned)
	}

	ids := sessionIDs(t, logger)
	if len(ids) != 2 || ids["c"] == 0 || ids["d"] == 0 {
		t.Errorf("expected sessions c and d to remain, got %v", ids)
	}
}

func TestPruneKeepRecent_FewerThanKeep(t *testing.T) {
	logger := newLogger(t)
	seedSession(t, logger, "only", time.Now())

	pruned, err := PruneKeepRecent(logger, 5, false)
	if err != nil {
		t.Fatalf("PruneKeepRecent failed: %v", err)
	}
	if len(pruned) != 0 {
		t.Errorf("expected nothing pruned, got %v", pruned)
	}
}

func TestPruneKeepRecent_NegativeKeep(t *testing.T) {
	logger := newLogger(t)
	seedSession(t, logger, "a", time.Now())

	if _, err := PruneKeepRecent(logger, -1, false); err == nil {
		t.Fatal("expected an error for a negative keep")
	}
	if ids := sessionIDs(t, logger); ids["a"] == 0 {
		t.Errorf("session a should be untouched, got %v", ids)
	}
}
