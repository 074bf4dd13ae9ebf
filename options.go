package weft

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// ProgramOption configures a Program at construction time.
type ProgramOption func(*Program)

// WithAltScreen renders into the terminal's alternate screen buffer.
// The prior screen contents are restored on exit. Without this option
// the program renders inline, below the shell prompt.
func WithAltScreen() ProgramOption {
	return func(p *Program) {
		p.altScreen = true
	}
}

// WithMouseAllMotion is reserved for a future mouse protocol and is
// currently a no-op.
func WithMouseAllMotion() ProgramOption {
	return func(p *Program) {
		p.mouseAllMotion = true
	}
}

// WithMouseCellMotion is reserved for a future mouse protocol and is
// currently a no-op.
func WithMouseCellMotion() ProgramOption {
	return func(p *Program) {
		p.mouseCellMotion = true
	}
}

// WithoutRawMode leaves the input in cooked mode. Key decoding still
// runs, but the terminal keeps echo and line buffering; useful when the
// input is not an interactive terminal.
func WithoutRawMode() ProgramOption {
	return func(p *Program) {
		p.rawMode = false
	}
}

// WithInput sets the reader the program decodes key events from.
// Defaults to os.Stdin.
func WithInput(r io.Reader) ProgramOption {
	return func(p *Program) {
		p.input = r
	}
}

// WithOutput sets the writer the renderer paints to. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) ProgramOption {
	return func(p *Program) {
		p.output = w
	}
}

// WithContext ties the program's lifetime to ctx: when ctx is canceled
// the program shuts down and Run returns the context's error.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.parentCtx = ctx
	}
}

// WithLogger sets the logger used for recovered command panics and
// cleanup failures. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) ProgramOption {
	return func(p *Program) {
		p.logger = logger
	}
}

// WithoutSignalHandler disables SIGINT/SIGTERM and resize handling.
// Intended for tests and for hosts that manage signals themselves.
func WithoutSignalHandler() ProgramOption {
	return func(p *Program) {
		p.handleSignals = false
	}
}
