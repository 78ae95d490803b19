package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
)

// gateChoice describes one experience level on the selection screen.
type gateChoice struct {
	Level   portal.ExperienceLevel
	Label   string
	Summary string
}

var gateChoices = []gateChoice{
	{portal.ExperienceSimple, "Simple", "Just the essentials. We'll tell you when something needs you."},
	{portal.ExperienceStandard, "Standard", "Every step explained, with what to expect next."},
	{portal.ExperienceComplete, "Complete", "Full transparency: examiner notes, title findings and every line item."},
}

// GateModel is the experience-level selection screen shown before the
// buyer flow.
type GateModel struct {
	styles tui.Styles
	keys   tui.KeyMap
	cursor int
	width  int
	height int
}

// NewGateModel creates a GateModel with Standard preselected.
func NewGateModel(styles tui.Styles, width, height int) GateModel {
	return GateModel{styles: styles, keys: tui.DefaultKeyMap, cursor: 1, width: width, height: height}
}

// Init returns the initial command for the gate view.
func (m GateModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gate view.
func (m GateModel) Update(msg tea.Msg) (GateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(gateChoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Level):
			m.cursor = int(msg.String()[0] - '1')
			return m, m.choose()
		case key.Matches(msg, m.keys.Enter):
			return m, m.choose()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m GateModel) choose() tea.Cmd {
	return tui.Intent(portal.Action{
		Intent: portal.IntentSelectExperience,
		Level:  gateChoices[m.cursor].Level,
	})
}

// Selected returns the highlighted level.
func (m GateModel) Selected() portal.ExperienceLevel {
	return gateChoices[m.cursor].Level
}

// View renders the gate view.
func (m GateModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Welcome to your " + m.styles.Brand.LogoName + " closing"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("How much detail would you like along the way?"))
	b.WriteString("\n\n")

	for i, c := range gateChoices {
		marker := "  "
		label := tui.BoldStyle.Render(c.Label)
		if i == m.cursor {
			marker = m.styles.Selected.Render("▸ ")
			label = m.styles.Selected.Render(c.Label)
		}
		b.WriteString(marker + tui.DimStyle.Render(string(rune('1'+i))+". ") + label)
		b.WriteString("\n    ")
		b.WriteString(tui.DimStyle.Render(c.Summary))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("↑/↓: Choose · Enter: Start · v: Agent view"))

	boxed := m.styles.Box.Width(min(70, max(m.width-4, 30))).Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
	}
	return boxed
}
