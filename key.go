package weft

// Control bytes handled outside the escape-sequence table.
const (
	byteCtrlC     = 0x03
	byteCtrlD     = 0x04
	byteBackspace = 0x08
	byteTab       = 0x09
	byteLineFeed  = 0x0a
	byteReturn    = 0x0d
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// csiKeys maps the bytes following a leading ESC to key events. Covers
// the common CSI sequences terminals emit for navigation keys, plus the
// two-character home/end forms and their numbered variants.
var csiKeys = map[string]KeyMsg{
	"[A": {Name: "up"},
	"[B": {Name: "down"},
	"[C": {Name: "right"},
	"[D": {Name: "left"},

	"[H":  {Name: "home"},
	"[F":  {Name: "end"},
	"[1~": {Name: "home"},
	"[7~": {Name: "home"},
	"[4~": {Name: "end"},
	"[8~": {Name: "end"},

	"[2~": {Name: "insert"},
	"[3~": {Name: "delete"},
	"[5~": {Name: "pgup"},
	"[6~": {Name: "pgdown"},

	"[1;5C": {Name: "right", Ctrl: true},
	"[1;5D": {Name: "left", Ctrl: true},

	"[Z": {Name: "tab", Shift: true},
}

// decodeKey converts one raw input chunk into at most one key event.
// It is a pure function of the chunk: no state is carried between
// calls, so an escape sequence split across two reads is not
// reassembled (the fragments decode to nothing). Unrecognized input is
// dropped silently rather than reported as an error.
func decodeKey(chunk []byte) (KeyMsg, bool) {
	if len(chunk) == 0 {
		return KeyMsg{}, false
	}
	raw := append([]byte(nil), chunk...)

	if len(chunk) == 1 {
		b := chunk[0]
		switch {
		case b == byteCtrlC:
			return KeyMsg{Name: "c", Ctrl: true, Raw: raw}, true
		case b == byteCtrlD:
			return KeyMsg{Name: "d", Ctrl: true, Raw: raw}, true
		case b == byteReturn || b == byteLineFeed:
			return KeyMsg{Name: "enter", Raw: raw}, true
		case b == byteDelete || b == byteBackspace:
			return KeyMsg{Name: "backspace", Raw: raw}, true
		case b == byteTab:
			return KeyMsg{Name: "tab", Raw: raw}, true
		case b == byteEscape:
			return KeyMsg{Name: "escape", Raw: raw}, true
		case isPrintable(b):
			return KeyMsg{Name: string(rune(b)), Raw: raw}, true
		}
		return KeyMsg{}, false
	}

	if chunk[0] == byteEscape {
		if key, ok := csiKeys[string(chunk[1:])]; ok {
			key.Raw = raw
			return key, true
		}
		// ESC followed by a single printable byte is the Alt-modified
		// form of that key.
		if len(chunk) == 2 && isPrintable(chunk[1]) {
			return KeyMsg{Name: string(rune(chunk[1])), Alt: true, Raw: raw}, true
		}
	}

	return KeyMsg{}, false
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
