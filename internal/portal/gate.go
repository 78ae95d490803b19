package portal

// Screen identifies which top-level view the presentation layer shows.
type Screen int

const (
	ScreenGate Screen = iota
	ScreenBuyerFlow
	ScreenAgent
	ScreenDashboard
)

func (sc Screen) String() string {
	switch sc {
	case ScreenGate:
		return "gate"
	case ScreenBuyerFlow:
		return "buyer"
	case ScreenAgent:
		return "agent"
	case ScreenDashboard:
		return "dashboard"
	}
	return "unknown"
}

// GateActive reports whether the experience-selection screen replaces the
// buyer flow. The agent track never asks for a level.
func GateActive(s Session) bool {
	return s.Mode == ModeBuyer && s.ExperienceLevel == ExperienceUnset
}

// EffectiveExperienceLevel is the level content should be toned for.
// An unset level reads as FallbackExperienceLevel.
func EffectiveExperienceLevel(s Session) ExperienceLevel {
	if s.ExperienceLevel == ExperienceUnset {
		return FallbackExperienceLevel
	}
	return s.ExperienceLevel
}

// SelectScreen picks the top-level view for s. Agent mode takes precedence,
// then the gate, then the dashboard.
func SelectScreen(s Session) Screen {
	switch {
	case s.Mode == ModeAgent:
		return ScreenAgent
	case GateActive(s):
		return ScreenGate
	case s.InDashboard:
		return ScreenDashboard
	default:
		return ScreenBuyerFlow
	}
}
