// Package log provides structured event logging.
// This file appends JSON events to log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionStarted     = "session_started"
	EventExperienceSelected = "experience_selected"
	EventModeToggled        = "mode_toggled"
	EventPhaseAdvanced      = "phase_advanced"
	EventPhaseRetreated     = "phase_retreated"
	EventDashboardEntered   = "dashboard_entered"
	EventDashboardExited    = "dashboard_exited"
	EventTimeSimulated      = "time_simulated"
	EventOptInChanged       = "opt_in_changed"
	EventIntentRejected     = "intent_rejected"
	EventSessionEnded       = "session_ended"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time          time.Time              `json:"time"`
	Event         string                 `json:"event"`
	SessionID     string                 `json:"session,omitempty"`
	Intent        string                 `json:"intent,omitempty"`
	Phase         string                 `json:"phase,omitempty"`
	FromPhase     string                 `json:"from_phase,omitempty"`
	Mode          string                 `json:"mode,omitempty"`
	Experience    string                 `json:"experience,omitempty"`
	InDashboard   bool                   `json:"in_dashboard,omitempty"`
	DaysRemaining int                    `json:"days_remaining,omitempty"`
	Reason        string                 `json:"reason,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .closingportal/log.jsonl inside dir.
// Creates the .closingportal/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	portalDir := filepath.Join(dir, ".closingportal")
	if err := os.MkdirAll(portalDir, 0755); err != nil {
		return nil, fmt.Errorf("create .closingportal directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(portalDir, "log.jsonl"),
	}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// The file is opened in append mode, written to, and then closed.
// Thread-safe via mutex.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}

// Replace atomically rewrites the log file to hold exactly events.
func (l *Logger) Replace(events []LogEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(l.path), "log-*.jsonl")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, event := range events {
		if err := enc.Encode(event); err != nil {
			tmp.Close()
			return fmt.Errorf("marshal log event: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp log: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace log file: %w", err)
	}
	return nil
}

// BySession returns the events recorded for sessionID, in log order.
func BySession(events []LogEvent, sessionID string) []LogEvent {
	var out []LogEvent
	for _, e := range events {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out
}
