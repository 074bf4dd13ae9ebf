// Package tail implements a websocket message viewer. It demonstrates
// the self-perpetuating command pattern: each received message is
// delivered as a Msg whose Update re-arms the next blocking read, so
// the socket never blocks the event loop.
package tail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
)

// maxMessages bounds the scrollback kept in the model.
const maxMessages = 200

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// messageReader is the slice of *websocket.Conn the model needs; tests
// substitute a fake.
type messageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// MessageMsg is one message received from the socket.
type MessageMsg struct {
	Text string
	At   time.Time
}

// ErrMsg reports a read failure; the read loop stops after one.
type ErrMsg struct {
	Err error
}

type line struct {
	text string
	at   time.Time
}

// Model is the viewer state.
type Model struct {
	URL    string
	Err    error
	conn   messageReader
	lines  []line
	height int
}

// New returns a viewer reading from conn.
func New(url string, conn messageReader) Model {
	return Model{URL: url, conn: conn}
}

// readNext blocks on the socket and converts the result into a Msg.
func (m Model) readNext() weft.Cmd {
	conn := m.conn
	return func() weft.Msg {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MessageMsg{Text: string(data), At: time.Now()}
	}
}

// Init implements weft.Model.
func (m Model) Init() weft.Cmd {
	return m.readNext()
}

// Update implements weft.Model.
func (m Model) Update(msg weft.Msg) (weft.Model, weft.Cmd) {
	switch msg := msg.(type) {
	case MessageMsg:
		m.lines = append(m.lines, line{text: msg.Text, at: msg.At})
		if len(m.lines) > maxMessages {
			m.lines = m.lines[len(m.lines)-maxMessages:]
		}
		return m, m.readNext()

	case ErrMsg:
		m.Err = msg.Err
		logging.Warn("websocket read failed", zap.Error(msg.Err))
		return m, nil

	case weft.ResizeMsg:
		m.height = msg.Height

	case weft.KeyMsg:
		switch msg.String() {
		case "q", "escape", "ctrl+c":
			return m, weft.Quit
		}
	}
	return m, nil
}

// View implements weft.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("tailing %s", m.URL)))
	b.WriteString("\n")

	visible := m.lines
	if m.height > 3 && len(visible) > m.height-3 {
		visible = visible[len(visible)-(m.height-3):]
	}
	for _, l := range visible {
		b.WriteString(timestampStyle.Render(l.at.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(l.text)
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("connection lost: %v", m.Err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q quit"))
	return b.String()
}

// Run connects to url and tails messages until the user quits.
func Run(url string, altScreen bool) error {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", url, err)
	}
	defer func() { _ = conn.Close() }()

	opts := []weft.ProgramOption{weft.WithLogger(logging.GetLogger())}
	if altScreen {
		opts = append(opts, weft.WithAltScreen())
	}
	_, err = weft.NewProgram(New(url, conn), opts...).Run()
	return err
}
