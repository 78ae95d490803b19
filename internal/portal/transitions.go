package portal

// The functions in this file are total: when an operation is not offered in
// the given state they return the state unchanged.

// Advance moves to the next phase, or enters the dashboard from PhaseClosed.
// Inside the dashboard it is a no-op.
func Advance(s Session) Session {
	if s.InDashboard {
		return s
	}
	if s.Phase == LastPhase {
		s.InDashboard = true
		return s
	}
	s.Phase = clampPhase(s.Phase + 1)
	return s
}

// Retreat moves to the previous phase. Leaving the dashboard always lands on
// PhaseClosed.
func Retreat(s Session) Session {
	if s.InDashboard {
		s.InDashboard = false
		s.Phase = LastPhase
		return s
	}
	s.Phase = clampPhase(s.Phase - 1)
	return s
}

// ToggleMode flips between the buyer and agent tracks. Nothing else changes.
func ToggleMode(s Session) Session {
	if s.Mode == ModeAgent {
		s.Mode = ModeBuyer
	} else {
		s.Mode = ModeAgent
	}
	return s
}

// SelectExperienceLevel records the buyer's level. It only takes effect
// while the level is unset and the requested level is selectable.
func SelectExperienceLevel(s Session, level ExperienceLevel) Session {
	if s.ExperienceLevel != ExperienceUnset || !level.Selectable() {
		return s
	}
	s.ExperienceLevel = level
	return s
}

// SimulateElapsedTime fast-forwards the dashboard clock to
// SimulatedDaysRemaining. Outside the dashboard it is a no-op.
func SimulateElapsedTime(s Session) Session {
	return simulateElapsedTimeTo(s, SimulatedDaysRemaining)
}

func simulateElapsedTimeTo(s Session, days int) Session {
	if !s.InDashboard {
		return s
	}
	s.SimulatedDaysRemaining = days
	return s
}

// SetInsuranceOptIn records the homeowner-insurance quote preference.
func SetInsuranceOptIn(s Session, on bool) Session {
	s.InsuranceOptIn = on
	return s
}

// SetMortgageOptIn records the mortgage-competition preference.
func SetMortgageOptIn(s Session, on bool) Session {
	s.MortgageOptIn = on
	return s
}
