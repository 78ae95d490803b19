package portal

import (
	"fmt"

	"github.com/google/uuid"
)

// Options configure a Controller.
type Options struct {
	// GateEnabled shows the experience-selection screen before buyer content.
	// When false the session starts at FallbackExperienceLevel.
	GateEnabled bool

	InitialDaysRemaining   int
	SimulatedDaysRemaining int
}

// DefaultOptions returns the stock portal behaviour.
func DefaultOptions() Options {
	return Options{
		GateEnabled:            true,
		InitialDaysRemaining:   InitialDaysRemaining,
		SimulatedDaysRemaining: SimulatedDaysRemaining,
	}
}

// Event describes one handled intent.
type Event struct {
	SessionID string
	Action    Action
	Before    Session
	After     Session
	Rejected  bool
}

// Changed reports whether the intent altered the session.
func (e Event) Changed() bool {
	return e.Before != e.After
}

// EventSink receives controller events. Sink failures never block a transition.
type EventSink interface {
	SessionStarted(id string, s Session) error
	Record(e Event) error
	SessionEnded(id string, s Session) error
}

// Controller owns the state of one session. It is not safe for concurrent
// use; the presentation layer drives it from a single goroutine.
type Controller struct {
	id       string
	opts     Options
	state    Session
	sink     EventSink
	revision int
	sinkErr  error
}

// NewController starts a session. sink may be nil.
func NewController(opts Options, sink EventSink) *Controller {
	s := NewSession()
	if opts.InitialDaysRemaining > 0 {
		s.SimulatedDaysRemaining = opts.InitialDaysRemaining
	}
	if opts.SimulatedDaysRemaining <= 0 {
		opts.SimulatedDaysRemaining = SimulatedDaysRemaining
	}
	if !opts.GateEnabled {
		s.ExperienceLevel = FallbackExperienceLevel
	}

	c := &Controller{
		id:    uuid.NewString(),
		opts:  opts,
		state: s,
		sink:  sink,
	}
	if sink != nil {
		c.keepSinkErr(sink.SessionStarted(c.id, s))
	}
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// State returns a snapshot of the session.
func (c *Controller) State() Session { return c.state }

// Screen returns the top-level view for the current state.
func (c *Controller) Screen() Screen { return SelectScreen(c.state) }

// Revision increases every time the visible screen or phase changes.
// Views reset their scroll position when they observe a new revision.
func (c *Controller) Revision() int { return c.revision }

// Offered reports whether the control for intent should be shown.
func (c *Controller) Offered(intent Intent) bool { return Offered(c.state, intent) }

// Err returns the first error reported by the event sink, if any.
func (c *Controller) Err() error { return c.sinkErr }

// Apply handles one intent. If the intent is not offered in the current
// state the session is left untouched and ErrIntentNotOffered is returned.
func (c *Controller) Apply(a Action) (Session, error) {
	before := c.state

	if !Offered(before, a.Intent) {
		c.record(Event{SessionID: c.id, Action: a, Before: before, After: before, Rejected: true})
		return before, fmt.Errorf("%s in %s: %w", a, SelectScreen(before), ErrIntentNotOffered)
	}

	var after Session
	if a.Intent == IntentSimulateTime {
		after = simulateElapsedTimeTo(before, c.opts.SimulatedDaysRemaining)
	} else {
		after = Reduce(before, a)
	}

	if SelectScreen(after) != SelectScreen(before) || after.Phase != before.Phase || after.InDashboard != before.InDashboard {
		c.revision++
	}
	c.state = after
	c.record(Event{SessionID: c.id, Action: a, Before: before, After: after})
	return after, nil
}

// Advance applies IntentAdvance.
func (c *Controller) Advance() error {
	_, err := c.Apply(Action{Intent: IntentAdvance})
	return err
}

// Retreat applies IntentRetreat.
func (c *Controller) Retreat() error {
	_, err := c.Apply(Action{Intent: IntentRetreat})
	return err
}

// ToggleMode applies IntentToggleMode.
func (c *Controller) ToggleMode() error {
	_, err := c.Apply(Action{Intent: IntentToggleMode})
	return err
}

// SelectExperienceLevel applies IntentSelectExperience.
func (c *Controller) SelectExperienceLevel(level ExperienceLevel) error {
	if !level.Selectable() {
		return fmt.Errorf("select %q: %w", level, ErrInvalidExperienceLevel)
	}
	_, err := c.Apply(Action{Intent: IntentSelectExperience, Level: level})
	return err
}

// SimulateElapsedTime applies IntentSimulateTime.
func (c *Controller) SimulateElapsedTime() error {
	_, err := c.Apply(Action{Intent: IntentSimulateTime})
	return err
}

// SetInsuranceOptIn applies IntentSetInsurance.
func (c *Controller) SetInsuranceOptIn(on bool) error {
	_, err := c.Apply(Action{Intent: IntentSetInsurance, On: on})
	return err
}

// SetMortgageOptIn applies IntentSetMortgage.
func (c *Controller) SetMortgageOptIn(on bool) error {
	_, err := c.Apply(Action{Intent: IntentSetMortgage, On: on})
	return err
}

// Close reports the end of the session to the sink.
func (c *Controller) Close() error {
	if c.sink != nil {
		c.keepSinkErr(c.sink.SessionEnded(c.id, c.state))
	}
	return c.sinkErr
}

func (c *Controller) record(e Event) {
	if c.sink == nil {
		return
	}
	c.keepSinkErr(c.sink.Record(e))
}

func (c *Controller) keepSinkErr(err error) {
	if err != nil && c.sinkErr == nil {
		c.sinkErr = fmt.Errorf("event sink: %w", err)
	}
}
