package portal

import "testing"

func sessionAt(p Phase) Session {
	s := NewSession()
	s.ExperienceLevel = ExperienceStandard
	s.Phase = p
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.Phase != PhaseStarted {
		t.Errorf("Phase = %v, want %v", s.Phase, PhaseStarted)
	}
	if s.Mode != ModeBuyer {
		t.Errorf("Mode = %v, want %v", s.Mode, ModeBuyer)
	}
	if s.ExperienceLevel != ExperienceUnset {
		t.Errorf("ExperienceLevel = %v, want unset", s.ExperienceLevel)
	}
	if s.InDashboard {
		t.Error("InDashboard should start false")
	}
	if s.SimulatedDaysRemaining != 90 {
		t.Errorf("SimulatedDaysRemaining = %d, want 90", s.SimulatedDaysRemaining)
	}
	if s.InsuranceOptIn || s.MortgageOptIn {
		t.Error("opt-ins should start false")
	}
}

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	for _, p := range Phases() {
		if p == PhaseClosed {
			continue
		}
		s := sessionAt(p)
		got := Retreat(Advance(s))
		if got != s {
			t.Errorf("Retreat(Advance(%v)) = %v, want %v", p, got, s)
		}
	}
}

func TestAdvanceSevenTimesReachesClosed(t *testing.T) {
	s := NewSession()
	for i := 0; i < 7; i++ {
		s = Advance(s)
	}
	if s.Phase != PhaseClosed || s.InDashboard {
		t.Fatalf("after 7 advances: phase=%v dashboard=%t, want closed/false", s.Phase, s.InDashboard)
	}

	s = Advance(s)
	if s.Phase != PhaseClosed || !s.InDashboard {
		t.Fatalf("after 8 advances: phase=%v dashboard=%t, want closed/true", s.Phase, s.InDashboard)
	}

	again := Advance(s)
	if again != s {
		t.Errorf("Advance in dashboard changed state: %v -> %v", s, again)
	}
}

func TestAdvanceNeverExceedsClosed(t *testing.T) {
	s := NewSession()
	for i := 0; i < 50; i++ {
		s = Advance(s)
		if !s.Phase.Valid() {
			t.Fatalf("phase %v out of range after %d advances", s.Phase, i+1)
		}
	}
	if !s.InDashboard {
		t.Error("repeated advances should end in the dashboard")
	}
}

func TestRetreatFromDashboardLandsOnClosed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(Session) Session
	}{
		{"plain", func(s Session) Session { return s }},
		{"after simulate", SimulateElapsedTime},
		{"agent mode", ToggleMode},
		{"opted in", func(s Session) Session { return SetMortgageOptIn(SetInsuranceOptIn(s, true), true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionAt(PhaseClosed)
			s = tt.setup(Advance(s))
			got := Retreat(s)
			if got.Phase != PhaseClosed || got.InDashboard {
				t.Errorf("Retreat from dashboard: phase=%v dashboard=%t, want closed/false", got.Phase, got.InDashboard)
			}
		})
	}
}

func TestRetreatAtStartedIsNoOp(t *testing.T) {
	s := NewSession()
	if got := Retreat(s); got != s {
		t.Errorf("Retreat at started = %v, want unchanged %v", got, s)
	}
}

func TestRetreatNeverBelowStarted(t *testing.T) {
	s := sessionAt(PhaseSummary)
	for i := 0; i < 20; i++ {
		s = Retreat(s)
	}
	if s.Phase != PhaseStarted {
		t.Errorf("Phase = %v, want started", s.Phase)
	}
}

func TestToggleModeIsInvolution(t *testing.T) {
	states := []Session{
		NewSession(),
		sessionAt(PhaseSearch),
		Advance(sessionAt(PhaseClosed)),
		ToggleMode(NewSession()),
	}
	for _, s := range states {
		if got := ToggleMode(ToggleMode(s)); got != s {
			t.Errorf("ToggleMode twice = %v, want %v", got, s)
		}
		once := ToggleMode(s)
		if once.Phase != s.Phase || once.InDashboard != s.InDashboard || once.ExperienceLevel != s.ExperienceLevel {
			t.Errorf("ToggleMode altered more than mode: %v -> %v", s, once)
		}
	}
}

func TestSelectExperienceLevelOneShot(t *testing.T) {
	s := SelectExperienceLevel(NewSession(), ExperienceSimple)
	if s.ExperienceLevel != ExperienceSimple {
		t.Fatalf("ExperienceLevel = %v, want simple", s.ExperienceLevel)
	}
	again := SelectExperienceLevel(s, ExperienceComplete)
	if again.ExperienceLevel != ExperienceSimple {
		t.Errorf("second select changed level to %v", again.ExperienceLevel)
	}
}

func TestSelectExperienceLevelRejectsUnselectable(t *testing.T) {
	for _, level := range []ExperienceLevel{ExperienceUnset, "expert"} {
		s := SelectExperienceLevel(NewSession(), level)
		if s.ExperienceLevel != ExperienceUnset {
			t.Errorf("select %q set level to %v", level, s.ExperienceLevel)
		}
	}
}

func TestSimulateElapsedTime(t *testing.T) {
	s := NewSession()
	if got := SimulateElapsedTime(s); got.SimulatedDaysRemaining != 90 {
		t.Errorf("outside dashboard: days = %d, want 90", got.SimulatedDaysRemaining)
	}

	d := Advance(sessionAt(PhaseClosed))
	d = SimulateElapsedTime(d)
	if d.SimulatedDaysRemaining != 15 {
		t.Errorf("in dashboard: days = %d, want 15", d.SimulatedDaysRemaining)
	}
	if got := SimulateElapsedTime(d); got.SimulatedDaysRemaining != 15 {
		t.Errorf("repeat: days = %d, want 15", got.SimulatedDaysRemaining)
	}
}

func TestOptInsAreIndependent(t *testing.T) {
	s := SetInsuranceOptIn(NewSession(), true)
	if !s.InsuranceOptIn || s.MortgageOptIn {
		t.Fatalf("after insurance on: %v", s)
	}
	s = SetMortgageOptIn(s, true)
	s = SetInsuranceOptIn(s, false)
	if s.InsuranceOptIn || !s.MortgageOptIn {
		t.Errorf("after mortgage on, insurance off: %v", s)
	}
}
