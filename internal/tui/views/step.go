package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
)

// StepModel renders the current buyer phase in a scrollable viewport.
type StepModel struct {
	styles   tui.Styles
	keys     tui.KeyMap
	session  portal.Session
	revision int
	wire     WirePanel
	viewport viewport.Model
	width    int
	height   int
}

// NewStepModel creates a StepModel for session at the given revision.
func NewStepModel(styles tui.Styles, session portal.Session, revision, width, height int) StepModel {
	m := StepModel{
		styles:   styles,
		keys:     tui.DefaultKeyMap,
		session:  session,
		revision: revision,
		viewport: viewport.New(20, 5),
	}
	m.resize(width, height)
	return m
}

// Init returns the initial command for the step view.
func (m StepModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the step view.
func (m StepModel) Update(msg tea.Msg) (StepModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, tui.Intent(portal.Action{Intent: portal.IntentAdvance})

		case key.Matches(msg, m.keys.Back):
			if !mock.CopyFor(m.session.Phase).ShowBack {
				return m, nil
			}
			return m, tui.Intent(portal.Action{Intent: portal.IntentRetreat})

		case key.Matches(msg, m.keys.Insurance):
			if m.session.Phase != portal.PhaseDocuments {
				return m, nil
			}
			return m, tui.Intent(portal.Action{Intent: portal.IntentSetInsurance, On: !m.session.InsuranceOptIn})

		case key.Matches(msg, m.keys.Mortgage):
			if m.session.Phase != portal.PhaseDocuments {
				return m, nil
			}
			return m, tui.Intent(portal.Action{Intent: portal.IntentSetMortgage, On: !m.session.MortgageOptIn})

		case key.Matches(msg, m.keys.Wire):
			if m.session.Phase != portal.PhaseSummary {
				return m, nil
			}
			m.wire.Open = !m.wire.Open
			m.wire.Reveal = false
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Reveal):
			if m.session.Phase != portal.PhaseSummary || !m.wire.Open {
				return m, nil
			}
			m.wire.Reveal = !m.wire.Reveal
			m.refresh()
			return m, nil
		}

	case tui.StateChangedMsg:
		m.session = msg.Session
		if msg.Revision != m.revision {
			m.revision = msg.Revision
			m.wire = WirePanel{}
			m.refresh()
			m.viewport.GotoTop()
			return m, nil
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Session returns the session the view last rendered.
func (m StepModel) Session() portal.Session {
	return m.session
}

// ScrollOffset returns the viewport's vertical offset.
func (m StepModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// WireOpen reports whether the wire instructions panel is expanded.
func (m StepModel) WireOpen() bool {
	return m.wire.Open
}

// WireRevealed reports whether masked wire fields are shown in full.
func (m StepModel) WireRevealed() bool {
	return m.wire.Reveal
}

func (m *StepModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width, 20)
	m.viewport.Height = max(height, 5)
	m.refresh()
}

// refresh re-renders content while keeping the scroll position.
func (m *StepModel) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(PhaseContent(m.styles, m.session, m.viewport.Width-2, m.wire))
	m.viewport.SetYOffset(offset)
}

// View renders the step view.
func (m StepModel) View() string {
	return m.viewport.View()
}
