// Package counter implements the simplest weft demo: a keyboard-driven
// counter. It exists to exercise key decoding and render coalescing.
package counter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
)

var (
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the counter's state.
type Model struct {
	Count int
}

// New returns a counter starting at zero.
func New() Model {
	return Model{}
}

// Init implements weft.Model.
func (m Model) Init() weft.Cmd {
	return nil
}

// Update implements weft.Model.
func (m Model) Update(msg weft.Msg) (weft.Model, weft.Cmd) {
	switch msg := msg.(type) {
	case weft.KeyMsg:
		switch msg.String() {
		case "+", "=", "up", "k":
			m.Count++
		case "-", "down", "j":
			m.Count--
		case "0":
			m.Count = 0
		case "q", "escape", "ctrl+c":
			return m, weft.Quit
		}
	}
	return m, nil
}

// View implements weft.Model.
func (m Model) View() string {
	return fmt.Sprintf("%s\n%s",
		valueStyle.Render(fmt.Sprintf("count: %d", m.Count)),
		helpStyle.Render("+/- adjust · 0 reset · q quit"),
	)
}

// Run drives the counter demo to completion.
func Run(altScreen bool) error {
	opts := []weft.ProgramOption{weft.WithLogger(logging.GetLogger())}
	if altScreen {
		opts = append(opts, weft.WithAltScreen())
	}
	_, err := weft.NewProgram(New(), opts...).Run()
	return err
}
