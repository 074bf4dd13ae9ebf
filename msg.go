package weft

import "strings"

// Msg is a message delivered to a Model's Update function. Applications
// define their own message types freely; the runtime passes every
// message through unchanged and special-cases only QuitMsg.
type Msg interface{}

// KeyMsg is a decoded keyboard event.
type KeyMsg struct {
	// Name identifies the key: a single printable character ("a", "+")
	// or a symbolic name ("enter", "up", "escape").
	Name string

	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool

	// Raw holds the original bytes the event was decoded from.
	Raw []byte
}

// String renders the key in "ctrl+c" / "alt+x" / "shift+tab" notation.
func (k KeyMsg) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	if k.Meta {
		b.WriteString("meta+")
	}
	b.WriteString(k.Name)
	return b.String()
}

// ResizeMsg reports the terminal dimensions. One is delivered at
// startup when the output is an interactive terminal, and another on
// every window size change.
type ResizeMsg struct {
	Width  int
	Height int
}

// QuitMsg instructs the program to shut down. It is intercepted by the
// event loop and never reaches Update.
type QuitMsg struct{}

// Quit is the command an Update returns to exit the program.
func Quit() Msg {
	return QuitMsg{}
}
