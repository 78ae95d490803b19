package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
)

// AgentContent renders the agent transparency view for s. It offers no
// navigation controls.
func AgentContent(st tui.Styles, s portal.Session) string {
	p := mock.RealProperty
	a := mock.BuyerAgent

	var b strings.Builder
	b.WriteString(st.Badge.Render("AGENT VIEW"))
	b.WriteString("\n\n")
	b.WriteString(st.Title.Render(strings.ToUpper(p.Address)))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(p.CityStateZip + " · Buyer: " + p.BuyerName))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%s, %s · %s", a.Name, a.Brokerage, a.Phone)))
	b.WriteString("\n\n")

	status := "Step " + fmt.Sprint(s.Phase.StepNumber()) + " of " + fmt.Sprint(portal.PhaseCount) + ": " + mock.CopyFor(s.Phase).Title
	if s.InDashboard {
		status = "Closed and recorded. Buyer is in the Smart ONE dashboard."
	}
	b.WriteString(tui.BoldStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("TRANSACTION MILESTONES"))
	b.WriteString("\n")
	for _, ms := range mock.AgentMilestones {
		var icon, label string
		switch ms.StateOf(s.Phase, s.InDashboard) {
		case mock.MilestoneDone:
			icon, label = tui.IconDone, ms.Label
		case mock.MilestoneCurrent:
			icon, label = tui.IconCurrent, st.Selected.Render(ms.Label)
		default:
			icon, label = tui.IconPending, tui.DimStyle.Render(ms.Label)
		}
		b.WriteString(fmt.Sprintf("%s %s\n    %s\n", icon, label, tui.DimStyle.Render(ms.Detail)))
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("BUYER SIGNALS"))
	b.WriteString("\n")
	b.WriteString(signalLine("Insurance quote requested", s.InsuranceOptIn))
	b.WriteString(signalLine("Mortgage bids requested", s.MortgageOptIn))
	b.WriteString(signalLine("Experience level: "+portal.EffectiveExperienceLevel(s).String(), s.ExperienceLevel != portal.ExperienceUnset))
	return b.String()
}

func signalLine(label string, on bool) string {
	if on {
		return tui.IconCheckOn + " " + label + "\n"
	}
	return tui.IconCheckOff + " " + tui.DimStyle.Render(label) + "\n"
}

// AgentModel displays the agent view in a scrollable viewport.
type AgentModel struct {
	styles   tui.Styles
	session  portal.Session
	revision int
	viewport viewport.Model
}

// NewAgentModel creates an AgentModel for session at the given revision.
func NewAgentModel(styles tui.Styles, session portal.Session, revision, width, height int) AgentModel {
	m := AgentModel{
		styles:   styles,
		session:  session,
		revision: revision,
		viewport: viewport.New(max(width, 20), max(height, 5)),
	}
	m.viewport.SetContent(AgentContent(styles, session))
	return m
}

// Init returns the initial command for the agent view.
func (m AgentModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the agent view.
func (m AgentModel) Update(msg tea.Msg) (AgentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.StateChangedMsg:
		m.session = msg.Session
		m.viewport.SetContent(AgentContent(m.styles, m.session))
		if msg.Revision != m.revision {
			m.revision = msg.Revision
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width, 20)
		m.viewport.Height = max(msg.Height, 5)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ScrollOffset returns the viewport's vertical offset.
func (m AgentModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// View renders the agent view.
func (m AgentModel) View() string {
	return m.viewport.View()
}
