package weft

import (
	"bytes"
	"strings"
	"testing"
)

const (
	seqEraseLine = "\x1b[2K"
	seqCursorUp  = "\x1b[1A"
)

func TestScreenRendererSkipsIdenticalFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)

	r.render("a\nb\nc")
	if buf.Len() == 0 {
		t.Fatal("first render wrote nothing")
	}

	buf.Reset()
	r.render("a\nb\nc")
	if buf.Len() != 0 {
		t.Errorf("identical frame wrote %q, want no writes", buf.String())
	}
}

func TestScreenRendererDiffMinimality(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)
	r.render("a\nb\nc")

	buf.Reset()
	r.render("a\nX\nc")
	out := buf.String()

	if got := strings.Count(out, seqEraseLine); got != 1 {
		t.Errorf("changed one line but erased %d, want 1 (output %q)", got, out)
	}
	if !strings.Contains(out, "\x1b[2;1H") {
		t.Errorf("rewrite did not target row 2: %q", out)
	}
	if !strings.Contains(out, "X") {
		t.Errorf("new content missing from output %q", out)
	}
	if strings.Contains(out, "a") || strings.Contains(out, "c") {
		t.Errorf("unchanged lines were rewritten: %q", out)
	}
}

func TestScreenRendererClearsRemovedRows(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)
	r.render("a\nb\nc")

	buf.Reset()
	r.render("a\nb")
	out := buf.String()

	if got := strings.Count(out, seqEraseLine); got != 1 {
		t.Errorf("removed one line but erased %d rows, want 1 (output %q)", got, out)
	}
	if !strings.Contains(out, "\x1b[3;1H") {
		t.Errorf("erase did not target the vacated row 3: %q", out)
	}
}

func TestScreenRendererClampsToTerminalHeight(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)
	r.resize(80, 2)

	r.render("a\nb\nc\nd")
	out := buf.String()
	if strings.Contains(out, "\x1b[3;1H") || strings.Contains(out, "\x1b[4;1H") {
		t.Errorf("wrote below the two-row terminal: %q", out)
	}
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("visible rows missing from output %q", out)
	}
	if strings.Contains(out, "c") || strings.Contains(out, "d") {
		t.Errorf("off-screen rows were painted: %q", out)
	}

	// A change confined to off-screen rows repaints nothing.
	buf.Reset()
	r.render("a\nb\nc\nX")
	if buf.Len() != 0 {
		t.Errorf("off-screen change wrote %q, want no writes", buf.String())
	}
}

func TestScreenRendererResizeForcesRepaint(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)
	r.render("a\nb")

	r.resize(80, 24)
	buf.Reset()
	r.render("a\nb")
	out := buf.String()
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("post-resize render did not repaint every row: %q", out)
	}
}

func TestScreenRendererLifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := newScreenRenderer(&buf)

	r.start()
	out := buf.String()
	if !strings.Contains(out, "\x1b[?1049h") || !strings.Contains(out, "\x1b[?25l") {
		t.Errorf("start did not enter alt screen and hide cursor: %q", out)
	}

	buf.Reset()
	r.stop()
	out = buf.String()
	if !strings.Contains(out, "\x1b[?1049l") || !strings.Contains(out, "\x1b[?25h") {
		t.Errorf("stop did not exit alt screen and show cursor: %q", out)
	}

	buf.Reset()
	r.stop()
	if buf.Len() != 0 {
		t.Errorf("second stop wrote %q, want nothing", buf.String())
	}
}

func TestInlineRendererSkipsIdenticalFrame(t *testing.T) {
	var buf bytes.Buffer
	r := newInlineRenderer(&buf)

	r.render("one\ntwo")
	buf.Reset()
	r.render("one\ntwo")
	if buf.Len() != 0 {
		t.Errorf("identical frame wrote %q, want no writes", buf.String())
	}
}

func TestInlineRendererErasesWrappedRows(t *testing.T) {
	var buf bytes.Buffer
	r := newInlineRenderer(&buf)
	r.resize(10, 24)

	// 25 visible columns wrap to 3 rows at width 10, plus one short line.
	r.render(strings.Repeat("x", 25) + "\nshort")

	buf.Reset()
	r.render("replaced")
	out := buf.String()

	if got := strings.Count(out, seqCursorUp); got != 3 {
		t.Errorf("erased across %d cursor-up moves, want 3 for a 4-row frame (output %q)", got, out)
	}
	if got := strings.Count(out, seqEraseLine); got != 4 {
		t.Errorf("erased %d rows, want 4 (output %q)", got, out)
	}
	if !strings.Contains(out, "replaced") {
		t.Errorf("new frame content missing from %q", out)
	}
}

func TestInlineRendererLifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := newInlineRenderer(&buf)

	r.start()
	if !strings.Contains(buf.String(), "\x1b[?25l") {
		t.Errorf("start did not hide cursor: %q", buf.String())
	}

	buf.Reset()
	r.stop()
	out := buf.String()
	if !strings.Contains(out, "\r\n") || !strings.Contains(out, "\x1b[?25h") {
		t.Errorf("stop should emit a trailing newline and show the cursor: %q", out)
	}

	buf.Reset()
	r.stop()
	if buf.Len() != 0 {
		t.Errorf("second stop wrote %q, want nothing", buf.String())
	}
}

func TestFrameRows(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		width int
		want  int
	}{
		{name: "single short line", frame: "hello", width: 80, want: 1},
		{name: "empty frame", frame: "", width: 80, want: 1},
		{name: "two lines", frame: "a\nb", width: 80, want: 2},
		{name: "exact width does not wrap", frame: strings.Repeat("x", 10), width: 10, want: 1},
		{name: "one over width wraps", frame: strings.Repeat("x", 11), width: 10, want: 2},
		{name: "long line wraps thrice", frame: strings.Repeat("x", 25), width: 10, want: 3},
		{name: "escape sequences are invisible", frame: "\x1b[31m" + strings.Repeat("x", 10) + "\x1b[0m", width: 10, want: 1},
		{name: "unknown width counts lines", frame: strings.Repeat("x", 500) + "\na", width: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameRows(tt.frame, tt.width); got != tt.want {
				t.Errorf("frameRows(width=%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}
