package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wctsmart/closingportal/internal/mock"
	"github.com/wctsmart/closingportal/internal/tui"
)

// ChatReplyDelay is how long the widget shows the typing indicator.
const ChatReplyDelay = 600 * time.Millisecond

// ChatLine is one entry in the chat transcript.
type ChatLine struct {
	FromUser bool
	Text     string
}

// ChatModel is the buyer help widget. Answers come from the canned FAQ.
type ChatModel struct {
	styles   tui.Styles
	keys     tui.KeyMap
	lines    []ChatLine
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	waiting  bool
	width    int
	height   int
}

// NewChatModel creates a ChatModel with the greeting already posted.
func NewChatModel(styles tui.Styles, width, height int) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about your closing..."
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Brand.PrimaryColor))

	m := ChatModel{
		styles:  styles,
		keys:    tui.DefaultKeyMap,
		input:   ti,
		spinner: sp,
		lines: []ChatLine{{
			Text: "Hi, I'm your " + styles.Brand.LogoName + " closing assistant. How can I help?",
		}},
	}
	m.viewport = viewport.New(20, 5)
	m.resize(width, height)
	return m
}

// Init starts the cursor blink.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat widget.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Escape):
			return m, func() tea.Msg { return tui.CloseChatMsg{} }
		case key.Matches(msg, m.keys.Enter):
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.waiting {
				return m, nil
			}
			m.lines = append(m.lines, ChatLine{FromUser: true, Text: question})
			m.input.Reset()
			m.waiting = true
			m.refresh()
			return m, tea.Batch(
				func() tea.Msg { return tui.ChatSubmitMsg{Question: question} },
				replyAfter(question, ChatReplyDelay),
				m.spinner.Tick,
			)
		}

	case tui.ChatReplyMsg:
		m.lines = append(m.lines, ChatLine{Text: msg.Answer})
		m.waiting = false
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	// Typed characters belong to the input; only paging scrolls the transcript.
	if k, ok := msg.(tea.KeyMsg); !ok || k.Type == tea.KeyPgUp || k.Type == tea.KeyPgDown {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// replyAfter answers question from the FAQ once delay has passed.
func replyAfter(question string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return tui.ChatReplyMsg{Answer: mock.AnswerFor(question)}
	})
}

// Lines returns the transcript.
func (m ChatModel) Lines() []ChatLine {
	return m.lines
}

// ScrollOffset returns the transcript's vertical offset.
func (m ChatModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// Waiting reports whether a reply is pending.
func (m ChatModel) Waiting() bool {
	return m.waiting
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height
	w := max(width-6, 20)
	m.viewport.Width = w
	m.viewport.Height = max(height-8, 4)
	m.input.Width = w - 4
	m.refresh()
}

func (m *ChatModel) refresh() {
	m.viewport.SetContent(m.formatLines())
	m.viewport.GotoBottom()
}

func (m ChatModel) formatLines() string {
	wrap := lipgloss.NewStyle().Width(max(m.viewport.Width, 10))
	var b strings.Builder
	for i, line := range m.lines {
		if line.FromUser {
			b.WriteString(tui.SuccessStyle.Bold(true).Render("You: "))
		} else {
			b.WriteString(m.styles.Title.Render(m.styles.Brand.LogoName + ": "))
		}
		b.WriteString(wrap.Render(line.Text))
		if i < len(m.lines)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// View renders the chat widget.
func (m ChatModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Closing Assistant"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	if m.waiting {
		b.WriteString(m.spinner.View() + " " + tui.DimStyle.Render("typing..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: Send · Esc: Close"))

	return m.styles.Panel.Width(max(m.width-2, 24)).Render(b.String())
}
