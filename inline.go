package weft

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// inlineRenderer paints below the shell prompt in the normal screen
// buffer. On every differing frame it erases exactly the terminal rows
// the previous frame occupied, wrap-aware at the current width, then
// writes the new frame in full.
type inlineRenderer struct {
	out       *termenv.Output
	prevFrame string
	hasFrame  bool
	width     int
	started   bool
}

func newInlineRenderer(w io.Writer) *inlineRenderer {
	return &inlineRenderer{out: termenv.NewOutput(w)}
}

func (r *inlineRenderer) start() {
	r.out.HideCursor()
	r.started = true
}

func (r *inlineRenderer) stop() {
	if !r.started {
		return
	}
	r.started = false
	// Leave the last frame on screen and park the shell prompt below it.
	_, _ = r.out.WriteString("\r\n")
	r.out.ShowCursor()
}

func (r *inlineRenderer) render(frame string) {
	if r.hasFrame && frame == r.prevFrame {
		return
	}
	if r.hasFrame {
		// The cursor rests on the last row of the previous frame;
		// clearing rows-1 above it erases the whole frame and leaves
		// the cursor on its first row.
		rows := frameRows(r.prevFrame, r.width)
		r.out.ClearLines(rows - 1)
	}
	_, _ = r.out.WriteString("\r")
	_, _ = r.out.WriteString(strings.ReplaceAll(frame, "\n", "\r\n"))
	r.prevFrame = frame
	r.hasFrame = true
}

func (r *inlineRenderer) resize(width, height int) {
	r.width = width
}

// frameRows reports how many terminal rows a frame occupies at the
// given width, counting wrapped lines. Line widths are measured on the
// visible content (escape sequences stripped, wide runes counted by
// display width). A width of zero or less means wrapping is unknown and
// each line counts as one row.
func frameRows(frame string, width int) int {
	lines := strings.Split(frame, "\n")
	if width <= 0 {
		return len(lines)
	}
	rows := 0
	for _, line := range lines {
		w := runewidth.StringWidth(ansi.Strip(line))
		n := (w + width - 1) / width
		if n < 1 {
			n = 1
		}
		rows += n
	}
	return rows
}
