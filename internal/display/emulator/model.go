// Package emulator renders the LED matrix in a terminal and turns key
// presses into joystick events.
package emulator

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/matrix"
)

var (
	colorGray = lipgloss.Color("#6272A4")
	colorCyan = lipgloss.Color("#8BE9FD")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	captionStyle = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(colorGray)
	boardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)
)

var keyDirections = map[string]input.Direction{
	"left":      input.Left,
	"h":         input.Left,
	"right":     input.Right,
	"l":         input.Right,
	"enter":     input.Middle,
	" ":         input.Middle,
	"up":        input.Up,
	"k":         input.Up,
	"esc":       input.Up,
	"backspace": input.Up,
	"down":      input.Down,
	"j":         input.Down,
}

type frameMsg matrix.Frame

type captionMsg string

type model struct {
	frame   matrix.Frame
	caption string
	queue   *input.Queue
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = matrix.Frame(msg)
	case captionMsg:
		m.caption = string(msg)
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		if d, ok := keyDirections[key]; ok && m.queue != nil {
			m.queue.Push(input.Press(d))
		}
	}
	return m, nil
}

func (m model) View() string {
	var rows strings.Builder
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			c := m.frame[y*matrix.Width+x]
			rows.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
		}
		if y < matrix.Height-1 {
			rows.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("sWEATHER"))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(rows.String()))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(m.caption))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ move  enter select  ↑/esc back  q quit"))
	b.WriteString("\n")
	return b.String()
}
