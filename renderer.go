package weft

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// renderer turns frames into terminal writes. Implementations keep the
// previous frame to skip or minimize work, and are only ever called
// from the event loop goroutine.
type renderer interface {
	// start prepares the terminal (hide cursor, enter the alternate
	// buffer where applicable). stop undoes it; the pair runs exactly
	// once per program.
	start()
	stop()

	// render transitions the terminal to the given frame. Rendering the
	// frame already on screen writes nothing.
	render(frame string)

	// resize informs the renderer of new terminal dimensions.
	resize(width, height int)
}

// screenRenderer paints into the alternate screen buffer and rewrites
// only the content lines that changed between frames. The diff is
// row-indexed: each content line is assumed to occupy one terminal row,
// so lines wider than the terminal repaint imprecisely.
type screenRenderer struct {
	out       *termenv.Output
	prevFrame string
	prevLines []string
	height    int
	started   bool
}

func newScreenRenderer(w io.Writer) *screenRenderer {
	return &screenRenderer{out: termenv.NewOutput(w)}
}

func (r *screenRenderer) start() {
	r.out.AltScreen()
	r.out.HideCursor()
	r.out.ClearScreen()
	r.started = true
}

func (r *screenRenderer) stop() {
	if !r.started {
		return
	}
	r.started = false
	r.out.ExitAltScreen()
	r.out.ShowCursor()
}

func (r *screenRenderer) render(frame string) {
	if frame == r.prevFrame {
		return
	}
	newLines := strings.Split(frame, "\n")
	rows := len(newLines)
	if len(r.prevLines) > rows {
		rows = len(r.prevLines)
	}
	if r.height > 0 && rows > r.height {
		// Rows past the bottom of the terminal do not exist; moving
		// the cursor there would scribble on the last visible row.
		rows = r.height
	}
	for i := 0; i < rows; i++ {
		var oldLine, newLine string
		if i < len(r.prevLines) {
			oldLine = r.prevLines[i]
		}
		if i < len(newLines) {
			newLine = newLines[i]
		}
		if newLine == oldLine {
			continue
		}
		r.out.MoveCursor(i+1, 1)
		r.out.ClearLine()
		_, _ = r.out.WriteString(newLine)
	}
	r.prevFrame = frame
	r.prevLines = newLines
}

// resize records the new height and drops the cached frame so the next
// render repaints every row; the terminal may have reflowed what is on
// screen.
func (r *screenRenderer) resize(width, height int) {
	r.height = height
	r.prevFrame = ""
	r.prevLines = nil
	if r.started {
		r.out.ClearScreen()
	}
}
