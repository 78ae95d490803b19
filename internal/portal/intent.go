package portal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIntentNotOffered is returned when a control is used in a state where
	// the presentation layer should not have exposed it.
	ErrIntentNotOffered = errors.New("intent not offered in current state")

	// ErrUnknownIntent is returned when an intent name cannot be parsed.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrInvalidExperienceLevel is returned for levels other than simple, standard or complete.
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
)

// Intent is a user-facing control the presentation layer can trigger.
type Intent string

const (
	IntentAdvance          Intent = "advance"
	IntentRetreat          Intent = "retreat"
	IntentToggleMode       Intent = "toggle-mode"
	IntentSelectExperience Intent = "select-experience"
	IntentSimulateTime     Intent = "simulate-time"
	IntentSetInsurance     Intent = "set-insurance"
	IntentSetMortgage      Intent = "set-mortgage"
)

// Action is an intent together with its argument, if any.
type Action struct {
	Intent Intent
	Level  ExperienceLevel // IntentSelectExperience
	On     bool            // IntentSetInsurance, IntentSetMortgage
}

func (a Action) String() string {
	switch a.Intent {
	case IntentSelectExperience:
		return fmt.Sprintf("%s:%s", a.Intent, a.Level)
	case IntentSetInsurance, IntentSetMortgage:
		return fmt.Sprintf("%s:%s", a.Intent, onOff(a.On))
	}
	return string(a.Intent)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Offered reports whether the control for intent should be exposed in s.
func Offered(s Session, intent Intent) bool {
	buyerTrack := s.Mode == ModeBuyer && !GateActive(s)

	switch intent {
	case IntentToggleMode:
		return true
	case IntentSelectExperience:
		return s.ExperienceLevel == ExperienceUnset
	case IntentAdvance:
		return buyerTrack && !s.InDashboard
	case IntentRetreat:
		return buyerTrack && (s.InDashboard || s.Phase != FirstPhase)
	case IntentSimulateTime:
		return s.InDashboard
	case IntentSetInsurance, IntentSetMortgage:
		return buyerTrack && !s.InDashboard && s.Phase == PhaseDocuments
	}
	return false
}

// Reduce applies a to s without checking Offered.
func Reduce(s Session, a Action) Session {
	switch a.Intent {
	case IntentAdvance:
		return Advance(s)
	case IntentRetreat:
		return Retreat(s)
	case IntentToggleMode:
		return ToggleMode(s)
	case IntentSelectExperience:
		return SelectExperienceLevel(s, a.Level)
	case IntentSimulateTime:
		return SimulateElapsedTime(s)
	case IntentSetInsurance:
		return SetInsuranceOptIn(s, a.On)
	case IntentSetMortgage:
		return SetMortgageOptIn(s, a.On)
	}
	return s
}

var intentAliases = map[string]Intent{
	"advance":           IntentAdvance,
	"next":              IntentAdvance,
	"retreat":           IntentRetreat,
	"back":              IntentRetreat,
	"toggle-mode":       IntentToggleMode,
	"toggle":            IntentToggleMode,
	"select-experience": IntentSelectExperience,
	"select":            IntentSelectExperience,
	"simulate-time":     IntentSimulateTime,
	"simulate":          IntentSimulateTime,
	"set-insurance":     IntentSetInsurance,
	"insurance":         IntentSetInsurance,
	"set-mortgage":      IntentSetMortgage,
	"mortgage":          IntentSetMortgage,
}

// ParseAction parses the textual form used by scripted walkthroughs:
// "advance", "back", "toggle", "select:standard", "simulate",
// "insurance:on", "mortgage:off".
func ParseAction(s string) (Action, error) {
	name, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	intent, ok := intentAliases[name]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownIntent, s)
	}

	a := Action{Intent: intent}
	switch intent {
	case IntentSelectExperience:
		level, err := ParseExperienceLevel(arg)
		if err != nil {
			return Action{}, err
		}
		a.Level = level
	case IntentSetInsurance, IntentSetMortgage:
		switch arg {
		case "", "on", "true", "yes":
			a.On = true
		case "off", "false", "no":
			a.On = false
		default:
			return Action{}, fmt.Errorf("parse %s: invalid toggle value %q", intent, arg)
		}
	default:
		if arg != "" {
			return Action{}, fmt.Errorf("parse %s: unexpected argument %q", intent, arg)
		}
	}
	return a, nil
}

// ParseActions parses each element of args with ParseAction.
func ParseActions(args []string) ([]Action, error) {
	actions := make([]Action, 0, len(args))
	for i, arg := range args {
		a, err := ParseAction(arg)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
