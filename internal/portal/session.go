package portal

import (
	"fmt"
	"strings"
)

// Mode selects which presentation track is active.
type Mode string

const (
	ModeBuyer Mode = "buyer"
	ModeAgent Mode = "agent"
)

// ExperienceLevel is the buyer's chosen transparency depth.
type ExperienceLevel string

const (
	ExperienceUnset    ExperienceLevel = ""
	ExperienceSimple   ExperienceLevel = "simple"
	ExperienceStandard ExperienceLevel = "standard"
	ExperienceComplete ExperienceLevel = "complete"
)

// FallbackExperienceLevel is what content consumers read while the level is unset.
const FallbackExperienceLevel = ExperienceStandard

// ExperienceLevels lists the selectable levels in gate order.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{ExperienceSimple, ExperienceStandard, ExperienceComplete}
}

// Selectable reports whether l may be chosen at the gate.
func (l ExperienceLevel) Selectable() bool {
	switch l {
	case ExperienceSimple, ExperienceStandard, ExperienceComplete:
		return true
	}
	return false
}

func (l ExperienceLevel) String() string {
	if l == ExperienceUnset {
		return "unset"
	}
	return string(l)
}

// ParseExperienceLevel resolves a selectable level by name.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Selectable() {
		return ExperienceUnset, fmt.Errorf("%w: %q", ErrInvalidExperienceLevel, s)
	}
	return l, nil
}

// Dashboard clock values.
const (
	InitialDaysRemaining   = 90
	SimulatedDaysRemaining = 15
)

// Session is the complete state of one viewing session. It is a plain value:
// every transition takes a Session and returns the next one.
type Session struct {
	Phase                  Phase           `json:"phase"`
	Mode                   Mode            `json:"mode"`
	ExperienceLevel        ExperienceLevel `json:"experience_level"`
	InDashboard            bool            `json:"in_dashboard"`
	SimulatedDaysRemaining int             `json:"simulated_days_remaining"`
	InsuranceOptIn         bool            `json:"insurance_opt_in"`
	MortgageOptIn          bool            `json:"mortgage_opt_in"`
}

// NewSession returns a fresh session at the first phase in buyer mode.
func NewSession() Session {
	return Session{
		Phase:                  PhaseStarted,
		Mode:                   ModeBuyer,
		ExperienceLevel:        ExperienceUnset,
		SimulatedDaysRemaining: InitialDaysRemaining,
	}
}

func (s Session) String() string {
	return fmt.Sprintf("phase=%s mode=%s experience=%s dashboard=%t days=%d insurance=%t mortgage=%t",
		s.Phase, s.Mode, s.ExperienceLevel, s.InDashboard, s.SimulatedDaysRemaining,
		s.InsuranceOptIn, s.MortgageOptIn)
}
