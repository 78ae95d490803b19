package portal

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"advance", Action{Intent: IntentAdvance}},
		{"next", Action{Intent: IntentAdvance}},
		{"Back", Action{Intent: IntentRetreat}},
		{"toggle", Action{Intent: IntentToggleMode}},
		{"select:complete", Action{Intent: IntentSelectExperience, Level: ExperienceComplete}},
		{"simulate", Action{Intent: IntentSimulateTime}},
		{"insurance", Action{Intent: IntentSetInsurance, On: true}},
		{"insurance:off", Action{Intent: IntentSetInsurance, On: false}},
		{"mortgage:on", Action{Intent: IntentSetMortgage, On: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if err != nil {
				t.Fatalf("ParseAction(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	if _, err := ParseAction("wire"); !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("ParseAction(wire) error = %v, want ErrUnknownIntent", err)
	}
	if _, err := ParseAction("select:expert"); !errors.Is(err, ErrInvalidExperienceLevel) {
		t.Errorf("ParseAction(select:expert) error = %v, want ErrInvalidExperienceLevel", err)
	}
	if _, err := ParseAction("select"); !errors.Is(err, ErrInvalidExperienceLevel) {
		t.Errorf("ParseAction(select) error = %v, want ErrInvalidExperienceLevel", err)
	}
	if _, err := ParseAction("advance:twice"); err == nil {
		t.Error("ParseAction(advance:twice) should fail")
	}
	if _, err := ParseAction("insurance:maybe"); err == nil {
		t.Error("ParseAction(insurance:maybe) should fail")
	}
}

func TestParseActionsReportsPosition(t *testing.T) {
	_, err := ParseActions([]string{"toggle", "jump"})
	if err == nil || err.Error() != `action 2: unknown intent: "jump"` {
		t.Errorf("ParseActions error = %v", err)
	}
}

func TestOffered(t *testing.T) {
	chosen := SelectExperienceLevel(NewSession(), ExperienceStandard)
	docs := chosen
	docs.Phase = PhaseDocuments
	dash := Advance(sessionAt(PhaseClosed))

	tests := []struct {
		name   string
		s      Session
		intent Intent
		want   bool
	}{
		{"toggle always", NewSession(), IntentToggleMode, true},
		{"select while unset", NewSession(), IntentSelectExperience, true},
		{"select once set", chosen, IntentSelectExperience, false},
		{"advance behind gate", NewSession(), IntentAdvance, false},
		{"advance in flow", chosen, IntentAdvance, true},
		{"advance in dashboard", dash, IntentAdvance, false},
		{"retreat at started", chosen, IntentRetreat, false},
		{"retreat in dashboard", dash, IntentRetreat, true},
		{"simulate outside dashboard", chosen, IntentSimulateTime, false},
		{"simulate in dashboard", dash, IntentSimulateTime, true},
		{"simulate agent in dashboard", ToggleMode(dash), IntentSimulateTime, true},
		{"insurance in documents", docs, IntentSetInsurance, true},
		{"mortgage outside documents", chosen, IntentSetMortgage, false},
		{"insurance agent mode", ToggleMode(docs), IntentSetInsurance, false},
		{"unknown intent", chosen, Intent("wire"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Offered(tt.s, tt.intent); got != tt.want {
				t.Errorf("Offered(%s) = %t, want %t", tt.intent, got, tt.want)
			}
		})
	}
}

func TestReduceMatchesTransitions(t *testing.T) {
	s := sessionAt(PhaseSearch)
	if Reduce(s, Action{Intent: IntentAdvance}) != Advance(s) {
		t.Error("Reduce(advance) differs from Advance")
	}
	if Reduce(s, Action{Intent: IntentRetreat}) != Retreat(s) {
		t.Error("Reduce(retreat) differs from Retreat")
	}
	if Reduce(s, Action{Intent: "unknown"}) != s {
		t.Error("Reduce(unknown) should not change state")
	}
}
