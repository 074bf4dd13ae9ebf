// Package stopwatch implements a timer demo driven entirely by Tick
// commands: each tick message re-arms the next tick, so the timer is a
// chain of single-shot effects rather than a background goroutine.
package stopwatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	lapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// TickMsg advances the stopwatch by one interval. The tag names the
// tick chain the message belongs to: pausing or resuming starts a new
// chain, and ticks still in flight from an old one are dropped.
type TickMsg struct {
	At  time.Time
	tag int
}

// Model is the stopwatch state.
type Model struct {
	Elapsed  time.Duration
	Running  bool
	Laps     []time.Duration
	interval time.Duration
	tag      int
}

// New returns a running stopwatch with the given resolution.
func New(interval time.Duration) Model {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return Model{Running: true, interval: interval}
}

func (m Model) tick() weft.Cmd {
	tag := m.tag
	return weft.Tick(m.interval, func(at time.Time) weft.Msg {
		return TickMsg{At: at, tag: tag}
	})
}

// Init implements weft.Model.
func (m Model) Init() weft.Cmd {
	return m.tick()
}

// Update implements weft.Model.
func (m Model) Update(msg weft.Msg) (weft.Model, weft.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.Running || msg.tag != m.tag {
			// A tick raced a pause or resume; drop it rather than
			// let a superseded chain advance the clock or re-arm.
			return m, nil
		}
		m.Elapsed += m.interval
		return m, m.tick()

	case weft.KeyMsg:
		switch msg.String() {
		case " ":
			m.Running = !m.Running
			m.tag++
			if m.Running {
				return m, m.tick()
			}
		case "l":
			if m.Running {
				m.Laps = append(m.Laps, m.Elapsed)
			}
		case "r":
			m.Elapsed = 0
			m.Laps = nil
		case "q", "escape", "ctrl+c":
			return m, weft.Quit
		}
	}
	return m, nil
}

// View implements weft.Model.
func (m Model) View() string {
	var b strings.Builder

	clock := formatDuration(m.Elapsed)
	if m.Running {
		b.WriteString(timeStyle.Render(clock))
	} else {
		b.WriteString(pausedStyle.Render(clock + " (paused)"))
	}
	b.WriteString("\n")

	for i, lap := range m.Laps {
		b.WriteString(lapStyle.Render(fmt.Sprintf("lap %d  %s", i+1, formatDuration(lap))))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · l lap · r reset · q quit"))
	return b.String()
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	tenths := int(d.Milliseconds()/100) % 10
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths)
}

// Run drives the stopwatch demo to completion.
func Run(interval time.Duration, altScreen bool) error {
	opts := []weft.ProgramOption{weft.WithLogger(logging.GetLogger())}
	if altScreen {
		opts = append(opts, weft.WithAltScreen())
	}
	_, err := weft.NewProgram(New(interval), opts...).Run()
	return err
}
