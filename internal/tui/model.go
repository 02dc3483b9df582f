// Package tui is the terminal chat shell over the query orchestrator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Assistant is the TUI-facing surface of the query orchestrator.
type Assistant interface {
	Respond(ctx context.Context, message string) string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the Bubble Tea model for the chat session.
type Model struct {
	assistant  Assistant
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	ready      bool
}

func New(assistant Assistant, indexedUnits int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ví dụ: Áo màu đỏ dưới 300k"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		assistant: assistant,
		input:     ti,
		viewport:  vp,
		status:    fmt.Sprintf("Đã nạp %d dữ liệu. Nhập câu hỏi và nhấn Enter.", indexedUnits),
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ih := inputStyle.GetFrameSize()
		reserved := 2 + ih + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.input.Reset()
			m.transcript = append(m.transcript, userStyle.Render("Bạn: ")+q)
			reply := m.assistant.Respond(context.Background(), q)
			m.transcript = append(m.transcript, botStyle.Render("Trợ lý: ")+reply)
			m.status = fmt.Sprintf("Đã trả lời %q", q)
			m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("🛍️ Uqilo Fashion Chatbot")
	return header + "\n" +
		m.viewport.View() + "\n" +
		inputStyle.Render(m.input.View()) + "\n" +
		statusStyle.Render(m.status)
}
