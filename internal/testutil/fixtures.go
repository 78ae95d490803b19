// Package testutil provides test helper utilities for closing portal tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wctsmart/closingportal/internal/portal"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// ConfigProject returns a project whose .closingportal/config.yaml holds yaml.
func ConfigProject(yaml string) map[string]string {
	return map[string]string{
		".closingportal/config.yaml": yaml,
	}
}

// GateDisabledConfig is a config that skips the experience selection screen.
const GateDisabledConfig = `version: 1
experience_gate:
  enabled: false
log:
  enabled: false
`

// ShortClockConfig shortens the dashboard clock.
const ShortClockConfig = `version: 1
dashboard:
  initial_days_remaining: 30
  simulated_days_remaining: 5
log:
  enabled: false
`

// EmptyProject returns an empty project (no config).
func EmptyProject() map[string]string {
	return map[string]string{}
}

// RecordingSink is an in-memory portal.EventSink.
type RecordingSink struct {
	mu      sync.Mutex
	Started []string
	Events  []portal.Event
	Ended   []portal.Session
}

// SessionStarted implements portal.EventSink.
func (r *RecordingSink) SessionStarted(id string, _ portal.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Started = append(r.Started, id)
	return nil
}

// Record implements portal.EventSink.
func (r *RecordingSink) Record(e portal.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, e)
	return nil
}

// SessionEnded implements portal.EventSink.
func (r *RecordingSink) SessionEnded(_ string, s portal.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Ended = append(r.Ended, s)
	return nil
}

// Rejected returns the recorded events that were refused.
func (r *RecordingSink) Rejected() []portal.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []portal.Event
	for _, e := range r.Events {
		if e.Rejected {
			out = append(out, e)
		}
	}
	return out
}

// Scripted walkthroughs, in the syntax accepted by portal.ParseActions.
var (
	// ScenarioSimpleBuyer selects Simple and walks to the disclosure.
	ScenarioSimpleBuyer = []string{"select:simple", "next", "next", "insurance:on", "next", "next", "next", "next"}

	// ScenarioDashboard walks the whole flow into the dashboard and simulates time.
	ScenarioDashboard = []string{"select:standard", "next", "next", "next", "next", "next", "next", "next", "next", "simulate", "back"}

	// ScenarioAgentPeek toggles into agent mode mid-flow and back.
	ScenarioAgentPeek = []string{"select:complete", "next", "next", "toggle", "next", "toggle", "next"}
)
