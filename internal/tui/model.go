package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BotPort is the TUI-facing subset of the chat bot.
type BotPort interface {
	Reply(ctx context.Context, message string) string
}

// turn is one exchange in the transcript.
type turn struct {
	user string
	bot  string
}

// Model is the Bubble Tea model for the terminal chat client.
type Model struct {
	bot      BotPort
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	status   string
	ready    bool
}

// New creates a new chat TUI model instance.
func New(bot BotPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about trials, venues, Agility Cup..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{bot: bot, input: ti, viewport: vp, status: "Ready. Type a message and press Enter."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				answer := m.bot.Reply(context.Background(), q)
				m.turns = append(m.turns, turn{user: q, bot: answer})
				m.input.SetValue("")
				m.status = "Sent."
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout and transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("SPIT SportsCom Bot")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.turns) == 0 {
		return "No messages yet."
	}
	var sb strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(userStyle.Render("You: ") + t.user)
		sb.WriteString("\n")
		sb.WriteString(botStyle.Render("Bot: ") + t.bot)
	}
	return sb.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
