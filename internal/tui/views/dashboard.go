package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
)

// serviceItem implements list.Item for the dashboard services.
type serviceItem struct {
	svc mock.Service
}

func (i serviceItem) Title() string       { return i.svc.Title }
func (i serviceItem) Description() string { return i.svc.Description }
func (i serviceItem) FilterValue() string { return i.svc.Title }

// DashboardModel is the post-closing Smart ONE dashboard.
type DashboardModel struct {
	styles   tui.Styles
	keys     tui.KeyMap
	session  portal.Session
	services list.Model
	width    int
	height   int
}

// NewDashboardModel creates a DashboardModel for session.
func NewDashboardModel(styles tui.Styles, session portal.Session, width, height int) DashboardModel {
	items := make([]list.Item, len(mock.DashboardServices))
	for i, svc := range mock.DashboardServices {
		items[i] = serviceItem{svc: svc}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(styles.Brand.PrimaryColor)).
		BorderForeground(lipgloss.Color(styles.Brand.PrimaryColor))

	l := list.New(items, delegate, max(width, 20), 10)
	l.Title = "Smart ONE Services"
	l.Styles.Title = styles.Badge
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return DashboardModel{
		styles:   styles,
		keys:     tui.DefaultKeyMap,
		session:  session,
		services: l,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the dashboard view.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard view.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Simulate):
			return m, tui.Intent(portal.Action{Intent: portal.IntentSimulateTime})
		case key.Matches(msg, m.keys.Back):
			return m, tui.Intent(portal.Action{Intent: portal.IntentRetreat})
		}

	case tui.StateChangedMsg:
		m.session = msg.Session
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.services.SetSize(max(msg.Width, 20), 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.services, cmd = m.services.Update(msg)
	return m, cmd
}

// Urgent reports whether the days-remaining banner is in its urgent state.
func (m DashboardModel) Urgent() bool {
	return m.session.SimulatedDaysRemaining <= mock.UrgentDaysThreshold
}

// View renders the dashboard view.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("SMART ONE DASHBOARD"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(mock.RealProperty.FullAddress()))
	b.WriteString("\n\n")

	days := fmt.Sprintf("%d days remaining to activate your homeowner benefits", m.session.SimulatedDaysRemaining)
	if m.Urgent() {
		b.WriteString(m.styles.Urgent.Render("URGENT: " + days))
	} else {
		b.WriteString(m.styles.Badge.Render(days))
	}
	b.WriteString("\n\n")

	b.WriteString(m.services.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("s: Simulate day 75 · ←: Back to closing summary"))
	return b.String()
}
