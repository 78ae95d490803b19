package log

import (
	"github.com/wctsmart/closingportal/internal/portal"
)

// SessionSink adapts a Logger to portal.EventSink.
type SessionSink struct {
	logger *Logger
}

// NewSessionSink wraps logger.
func NewSessionSink(logger *Logger) *SessionSink {
	return &SessionSink{logger: logger}
}

// SessionStarted logs the initial snapshot.
func (s *SessionSink) SessionStarted(id string, state portal.Session) error {
	return s.logger.Append(snapshot(EventSessionStarted, id, state))
}

// SessionEnded logs the final snapshot.
func (s *SessionSink) SessionEnded(id string, state portal.Session) error {
	return s.logger.Append(snapshot(EventSessionEnded, id, state))
}

// Record logs one handled intent.
func (s *SessionSink) Record(e portal.Event) error {
	ev := snapshot(EventName(e), e.SessionID, e.After)
	ev.Intent = e.Action.String()
	if e.Before.Phase != e.After.Phase {
		ev.FromPhase = e.Before.Phase.String()
	}
	if e.Rejected {
		ev.Reason = portal.ErrIntentNotOffered.Error()
	}
	switch e.Action.Intent {
	case portal.IntentSetInsurance:
		ev.Data = map[string]interface{}{"insurance": e.After.InsuranceOptIn}
	case portal.IntentSetMortgage:
		ev.Data = map[string]interface{}{"mortgage": e.After.MortgageOptIn}
	}
	return s.logger.Append(ev)
}

// EventName maps a controller event to its log event type.
func EventName(e portal.Event) string {
	if e.Rejected {
		return EventIntentRejected
	}
	switch e.Action.Intent {
	case portal.IntentAdvance:
		if !e.Before.InDashboard && e.After.InDashboard {
			return EventDashboardEntered
		}
		return EventPhaseAdvanced
	case portal.IntentRetreat:
		if e.Before.InDashboard && !e.After.InDashboard {
			return EventDashboardExited
		}
		return EventPhaseRetreated
	case portal.IntentToggleMode:
		return EventModeToggled
	case portal.IntentSelectExperience:
		return EventExperienceSelected
	case portal.IntentSimulateTime:
		return EventTimeSimulated
	case portal.IntentSetInsurance, portal.IntentSetMortgage:
		return EventOptInChanged
	}
	return string(e.Action.Intent)
}

func snapshot(event, id string, state portal.Session) LogEvent {
	return LogEvent{
		Event:         event,
		SessionID:     id,
		Phase:         state.Phase.String(),
		Mode:          string(state.Mode),
		Experience:    state.ExperienceLevel.String(),
		InDashboard:   state.InDashboard,
		DaysRemaining: state.SimulatedDaysRemaining,
	}
}
