package weft

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// initInput switches the input into raw mode when it is an interactive
// terminal and wraps it in a cancelable reader so shutdown can unblock
// a pending read. On non-interactive inputs no mode switch happens but
// byte decoding still runs.
func (p *Program) initInput() error {
	if p.rawMode {
		if f, ok := p.input.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fd := int(f.Fd())
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("enter raw mode: %w", err)
			}
			p.restoreInput = func() error {
				return term.Restore(fd, oldState)
			}
		}
	}

	reader, err := cancelreader.NewReader(p.input)
	if err != nil {
		return fmt.Errorf("open input reader: %w", err)
	}
	p.reader = reader
	return nil
}

// readInput forwards decoded key events into dispatch until the reader
// is canceled or hits an error. Each read chunk decodes independently;
// an escape sequence split across reads is dropped.
func (p *Program) readInput() {
	buf := make([]byte, 256)
	for {
		n, err := p.reader.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if key, ok := decodeKey(chunk); ok {
				p.Send(key)
			}
		}
		if err != nil {
			return
		}
	}
}

// watchSignals funnels SIGINT and SIGTERM into the same quit path a
// QuitMsg takes, so cleanup runs exactly once no matter which source
// fires first.
func (p *Program) watchSignals() {
	p.sigC = make(chan os.Signal, 1)
	signal.Notify(p.sigC, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-p.done:
		case <-p.sigC:
			p.Quit()
		}
	}()
}

// watchResize sends an initial ResizeMsg and another on every SIGWINCH,
// when the output is an interactive terminal.
func (p *Program) watchResize() {
	out, ok := p.output.(*os.File)
	if !ok || !isatty.IsTerminal(out.Fd()) {
		return
	}
	p.sendSize(out)

	p.winchC = make(chan os.Signal, 1)
	signal.Notify(p.winchC, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-p.done:
				return
			case <-p.winchC:
				p.sendSize(out)
			}
		}
	}()
}

func (p *Program) sendSize(out *os.File) {
	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		p.logger.Debug("query terminal size", zap.Error(err))
		return
	}
	p.Send(ResizeMsg{Width: width, Height: height})
}

func (p *Program) stopSignals() {
	if p.sigC != nil {
		signal.Stop(p.sigC)
	}
	if p.winchC != nil {
		signal.Stop(p.winchC)
	}
}
