// Package weft is a terminal UI runtime built around a unidirectional,
// message-driven architecture: an application supplies a Model with pure
// Update and View functions, and the runtime turns keyboard input,
// terminal resizes, and asynchronous command results into a single
// ordered message stream.
//
// # Architecture
//
// A Program owns the application Model and runs one event loop:
//
//	raw bytes -> key decoder -> Msg -> Update -> (Model, Cmd)
//	                                      |
//	                        renderer <- View(Model)
//
// Update invocations are strictly serialized; the Model is replaced,
// never mutated in place. Commands describe deferred effects and run
// concurrently with the loop, feeding at most one Msg each back into
// dispatch. Multiple messages already queued when the loop wakes are
// applied together and produce a single repaint.
//
// # Rendering
//
// Two mutually exclusive render strategies are selected at construction
// time. The default inline renderer paints below the shell prompt,
// erasing exactly the rows the previous frame occupied (wrap-aware at
// the current terminal width). WithAltScreen switches to the alternate
// screen buffer and rewrites only the content lines that changed
// between frames.
//
// # Usage
//
//	type model struct{ count int }
//
//	func (m model) Init() weft.Cmd { return nil }
//
//	func (m model) Update(msg weft.Msg) (weft.Model, weft.Cmd) {
//		if key, ok := msg.(weft.KeyMsg); ok && key.Name == "q" {
//			return m, weft.Quit
//		}
//		return m, nil
//	}
//
//	func (m model) View() string { return fmt.Sprintf("count: %d", m.count) }
//
//	func main() {
//		if _, err := weft.NewProgram(model{}).Run(); err != nil {
//			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//			os.Exit(1)
//		}
//	}
//
// The runtime owns stdin and stdout for the lifetime of Run: stdin is
// put into raw mode when it is an interactive terminal, and the
// renderer is the only writer to stdout. Programs that need to log
// should write to a file (see internal/logging in this repository for
// the pattern the demo binaries use).
package weft
