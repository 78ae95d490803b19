// Package app provides the main TUI application that wires all views together.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wctsmart/closingportal/internal/config"
	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/portal"
	"github.com/wctsmart/closingportal/internal/tui"
	"github.com/wctsmart/closingportal/internal/tui/views"
)

const (
	sidebarWidth = 32
	chatWidth    = 44
	// statusRows is the space reserved under the content for the status bar
	// and help line.
	statusRows   = 2
)

// App is the main TUI application. It owns the session controller and routes
// messages to the view for the current screen.
type App struct {
	controller *portal.Controller
	styles     tui.Styles
	keys       tui.KeyMap
	help       help.Model

	width        int
	height       int
	ctrlCPending bool
	showChat     bool
	notice       string

	// View models
	gateView      views.GateModel
	stepView      views.StepModel
	agentView     views.AgentModel
	dashboardView views.DashboardModel
	chatView      views.ChatModel
}

// New creates an App for controller using the configured brand.
func New(cfg *config.Config, controller *portal.Controller) *App {
	a := &App{
		controller: controller,
		styles:     tui.NewStyles(cfg.Brand),
		keys:       tui.DefaultKeyMap,
		help:       help.New(),
		width:      100,
		height:     30,
	}

	s := controller.State()
	w, h := a.contentSize()
	a.gateView = views.NewGateModel(a.styles, w, h)
	a.stepView = views.NewStepModel(a.styles, s, controller.Revision(), w, h)
	a.agentView = views.NewAgentModel(a.styles, s, controller.Revision(), w, h)
	a.dashboardView = views.NewDashboardModel(a.styles, s, w, h)
	a.chatView = views.NewChatModel(a.styles, chatWidth, h)
	return a
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.CtrlC) {
			if a.ctrlCPending {
				// Second press within timeout - exit
				return a, tea.Quit
			}
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

		// The chat input owns the keyboard while it is open.
		if a.showChat {
			var cmd tea.Cmd
			a.chatView, cmd = a.chatView.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.layout()
			return a, nil
		case key.Matches(msg, a.keys.ToggleMode):
			return a, a.apply(portal.Action{Intent: portal.IntentToggleMode})
		case key.Matches(msg, a.keys.Chat):
			if a.chatAvailable() {
				a.showChat = true
				a.layout()
				return a, a.chatView.Init()
			}
			return a, nil
		}

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case tui.IntentMsg:
		return a, a.apply(msg.Action)

	case tui.IntentRejectedMsg:
		a.notice = msg.Err.Error()
		return a, nil

	case tui.CloseChatMsg:
		a.showChat = false
		a.layout()
		return a, nil

	case tui.ChatSubmitMsg:
		return a, nil

	case tui.ChatReplyMsg:
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd
	}

	if a.showChat {
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd
	}
	return a, a.updateScreen(msg)
}

// apply runs action through the controller and broadcasts the new state.
func (a *App) apply(action portal.Action) tea.Cmd {
	s, err := a.controller.Apply(action)
	if err != nil {
		return func() tea.Msg {
			return tui.IntentRejectedMsg{Action: action, Err: err}
		}
	}
	a.notice = ""

	if !a.chatAvailable() && a.showChat {
		a.showChat = false
		a.layout()
	}

	changed := tui.StateChangedMsg{Session: s, Revision: a.controller.Revision()}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.stepView, cmd = a.stepView.Update(changed)
	cmds = append(cmds, cmd)
	a.agentView, cmd = a.agentView.Update(changed)
	cmds = append(cmds, cmd)
	a.dashboardView, cmd = a.dashboardView.Update(changed)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// updateScreen routes msg to the view for the current screen.
func (a *App) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.controller.Screen() {
	case portal.ScreenGate:
		a.gateView, cmd = a.gateView.Update(msg)
	case portal.ScreenBuyerFlow:
		a.stepView, cmd = a.stepView.Update(msg)
	case portal.ScreenAgent:
		a.agentView, cmd = a.agentView.Update(msg)
	case portal.ScreenDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	}
	return cmd
}

// chatAvailable reports whether the chat widget may be shown. It is a buyer
// feature.
func (a *App) chatAvailable() bool {
	return a.controller.State().Mode == portal.ModeBuyer
}

// contentSize is the area left for the active view.
func (a *App) contentSize() (int, int) {
	w := a.width - sidebarWidth - 4
	if a.showChat {
		w -= chatWidth
	}
	h := a.height - statusRows
	if a.help.ShowAll {
		h -= 3
	}
	return max(w, 20), max(h, 5)
}

// layout pushes the current content size to every view.
func (a *App) layout() {
	w, h := a.contentSize()
	size := tea.WindowSizeMsg{Width: w, Height: h}
	a.gateView, _ = a.gateView.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height - statusRows})
	a.stepView, _ = a.stepView.Update(size)
	a.agentView, _ = a.agentView.Update(size)
	a.dashboardView, _ = a.dashboardView.Update(size)
	a.chatView, _ = a.chatView.Update(tea.WindowSizeMsg{Width: chatWidth, Height: h})
}

// Controller returns the session controller driving the app.
func (a *App) Controller() *portal.Controller {
	return a.controller
}

// ChatOpen reports whether the chat widget is visible.
func (a *App) ChatOpen() bool {
	return a.showChat
}

// Notice returns the message shown in the status bar, if any.
func (a *App) Notice() string {
	return a.notice
}

// View renders the application.
func (a *App) View() string {
	screen := a.controller.Screen()

	var content string
	switch screen {
	case portal.ScreenGate:
		// The gate is full-screen and centres itself.
		return lipgloss.JoinVertical(lipgloss.Left, a.gateView.View(), a.renderStatusBar(screen))
	case portal.ScreenBuyerFlow:
		content = a.stepView.View()
	case portal.ScreenAgent:
		content = a.agentView.View()
	case portal.ScreenDashboard:
		content = a.dashboardView.View()
	default:
		content = "Unknown screen"
	}

	columns := []string{a.renderSidebar(), "  ", content}
	if a.showChat {
		columns = append(columns, "  ", a.chatView.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar(screen))
}

func (a *App) renderSidebar() string {
	p := mock.RealProperty
	ag := mock.BuyerAgent
	s := a.controller.State()
	inner := sidebarWidth - 3

	fit := func(text string) string {
		return ansi.Truncate(text, inner, "…")
	}

	lines := []string{
		a.styles.Logo.Render(fit(a.styles.Brand.LogoName)),
		tui.DimStyle.Render("Transaction Center"),
		"",
		tui.BoldStyle.Render(fit(p.Address)),
		fit(p.CityStateZip),
		tui.DimStyle.Render(fit("Parcel " + p.ParcelID)),
		"",
		tui.DimStyle.Render("BUYER"),
		fit(p.BuyerName),
		"",
		tui.DimStyle.Render("YOUR AGENT"),
		fit(ag.Name),
		tui.DimStyle.Render(fit(ag.Brokerage)),
		tui.DimStyle.Render(fit(ag.Phone)),
		"",
		tui.DimStyle.Render("CLOSING"),
		fit(p.ClosingDate),
	}

	if !s.InDashboard && s.Mode == portal.ModeBuyer {
		lines = append(lines, "", tui.DimStyle.Render("PROGRESS"))
		for _, ph := range portal.Phases() {
			icon := tui.IconPending
			switch {
			case ph.Before(s.Phase):
				icon = tui.IconDone
			case ph == s.Phase:
				icon = tui.IconCurrent
			}
			lines = append(lines, icon+" "+fit(mock.CopyFor(ph).Title))
		}
	}

	return a.styles.Sidebar.Width(sidebarWidth).Height(max(a.height-statusRows, 5)).Render(strings.Join(lines, "\n"))
}

func (a *App) renderStatusBar(screen portal.Screen) string {
	s := a.controller.State()

	left := fmt.Sprintf(" %s · %s view · %s ", screen, s.Mode, portal.EffectiveExperienceLevel(s))
	switch {
	case a.ctrlCPending:
		left += tui.WarningStyle.Render("Press Ctrl+C again to exit")
	case a.notice != "":
		left += tui.ErrorStyle.Render(a.notice)
	}

	bar := a.styles.StatusBar.Width(max(a.width, 20)).Render(ansi.Truncate(left, max(a.width-2, 18), "…"))
	return lipgloss.JoinVertical(lipgloss.Left, bar, a.help.View(a.keys))
}
