package portal

import "testing"

func TestGateActive(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want bool
	}{
		{"fresh buyer", NewSession(), true},
		{"fresh agent", ToggleMode(NewSession()), false},
		{"buyer with level", SelectExperienceLevel(NewSession(), ExperienceSimple), false},
		{"buyer in dashboard unset", Session{Phase: PhaseClosed, Mode: ModeBuyer, InDashboard: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GateActive(tt.s); got != tt.want {
				t.Errorf("GateActive = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestGateStaysClearedAcrossModeToggles(t *testing.T) {
	s := SelectExperienceLevel(NewSession(), ExperienceComplete)
	s = ToggleMode(s)
	s = ToggleMode(s)
	if GateActive(s) {
		t.Error("gate re-triggered after level was selected")
	}
}

func TestGateReturnsWhenBackToBuyerUnset(t *testing.T) {
	s := ToggleMode(NewSession())
	if GateActive(s) {
		t.Fatal("agent mode should bypass gate")
	}
	if !GateActive(ToggleMode(s)) {
		t.Error("returning to buyer with unset level should re-trigger gate")
	}
}

func TestEffectiveExperienceLevelFallback(t *testing.T) {
	if got := EffectiveExperienceLevel(NewSession()); got != ExperienceStandard {
		t.Errorf("unset level reads as %v, want standard", got)
	}
	s := SelectExperienceLevel(NewSession(), ExperienceSimple)
	if got := EffectiveExperienceLevel(s); got != ExperienceSimple {
		t.Errorf("EffectiveExperienceLevel = %v, want simple", got)
	}
}

func TestSelectScreen(t *testing.T) {
	chosen := SelectExperienceLevel(NewSession(), ExperienceStandard)
	dash := Advance(sessionAt(PhaseClosed))

	tests := []struct {
		name string
		s    Session
		want Screen
	}{
		{"fresh", NewSession(), ScreenGate},
		{"agent unset", ToggleMode(NewSession()), ScreenAgent},
		{"buyer flow", chosen, ScreenBuyerFlow},
		{"dashboard", dash, ScreenDashboard},
		{"agent in dashboard", ToggleMode(dash), ScreenAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectScreen(tt.s); got != tt.want {
				t.Errorf("SelectScreen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhaseOrdering(t *testing.T) {
	phases := Phases()
	if len(phases) != PhaseCount || PhaseCount != 8 {
		t.Fatalf("len(Phases()) = %d, PhaseCount = %d, want 8", len(phases), PhaseCount)
	}
	for i := 1; i < len(phases); i++ {
		if !phases[i-1].Before(phases[i]) {
			t.Errorf("%v should precede %v", phases[i-1], phases[i])
		}
		if phases[i].StepNumber() != i+1 {
			t.Errorf("%v.StepNumber() = %d, want %d", phases[i], phases[i].StepNumber(), i+1)
		}
	}
	if Phase(0).Valid() || Phase(9).Valid() {
		t.Error("out-of-range phases reported valid")
	}
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase(" Summary ")
	if err != nil || p != PhaseSummary {
		t.Errorf("ParsePhase = %v, %v; want summary, nil", p, err)
	}
	if _, err := ParsePhase("escrow"); err == nil {
		t.Error("ParsePhase(escrow) should fail")
	}
}
