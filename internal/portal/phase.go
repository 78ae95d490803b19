// Package portal models the progression of a single closing-portal session:
// the ordered transaction phases, the buyer/agent mode gate, and the
// post-closing dashboard with its simulated clock.
package portal

import (
	"fmt"
	"strings"
)

// Phase is one step of the buyer-facing closing workflow.
// Values are ordinal; the set is closed and never reordered.
type Phase int

const (
	PhaseStarted Phase = iota + 1
	PhaseIdentity
	PhaseDocuments
	PhaseSearch
	PhaseClearing
	PhaseSchedule
	PhaseSummary
	PhaseClosed
)

// FirstPhase and LastPhase bound every phase transition.
const (
	FirstPhase = PhaseStarted
	LastPhase  = PhaseClosed
)

// PhaseCount is the number of phases in the workflow.
const PhaseCount = int(LastPhase-FirstPhase) + 1

var phaseNames = map[Phase]string{
	PhaseStarted:   "started",
	PhaseIdentity:  "identity",
	PhaseDocuments: "documents",
	PhaseSearch:    "search",
	PhaseClearing:  "clearing",
	PhaseSchedule:  "schedule",
	PhaseSummary:   "summary",
	PhaseClosed:    "closed",
}

// Phases returns every phase in workflow order.
func Phases() []Phase {
	out := make([]Phase, 0, PhaseCount)
	for p := FirstPhase; p <= LastPhase; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p is a member of the phase set.
func (p Phase) Valid() bool {
	return p >= FirstPhase && p <= LastPhase
}

// Before reports whether p strictly precedes q.
func (p Phase) Before(q Phase) bool {
	return p < q
}

// StepNumber returns the 1-based position shown as "Step N of 8".
func (p Phase) StepNumber() int {
	return int(p-FirstPhase) + 1
}

// String returns the lower-case phase name.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase resolves a phase by name (case-insensitive).
func ParsePhase(s string) (Phase, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for p, name := range phaseNames {
		if name == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

func clampPhase(p Phase) Phase {
	if p < FirstPhase {
		return FirstPhase
	}
	if p > LastPhase {
		return LastPhase
	}
	return p
}
