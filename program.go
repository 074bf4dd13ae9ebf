package weft

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/muesli/cancelreader"
	"go.uber.org/zap"
)

// Model is the application state the runtime drives. Update must be
// synchronous and total over every message it may receive, including
// ones it does not recognize; View must not write to the terminal.
type Model interface {
	Init() Cmd
	Update(Msg) (Model, Cmd)
	View() string
}

// Program lifecycle states. Stopped is absorbing: once entered, every
// further shutdown trigger is a no-op.
const (
	stateNotStarted int32 = iota
	stateRunning
	stateStopped
)

// ErrProgramStarted is returned by Run when the program has already
// been run once. A Program is single-use.
var ErrProgramStarted = errors.New("weft: program already started")

// trackedMsg wraps a message with an ack channel the event loop closes
// after the message has been handled. Sequence uses it as a delivery
// barrier between members.
type trackedMsg struct {
	msg     Msg
	handled chan struct{}
}

// Program runs a Model against a terminal. Construct one with
// NewProgram; the zero value is not usable.
type Program struct {
	initialModel Model

	parentCtx context.Context
	ctx       context.Context
	cancel    context.CancelFunc

	msgs chan Msg
	done chan struct{} // closed when shutdown has begun

	state        atomic.Int32
	shutdownOnce sync.Once

	input    io.Reader
	output   io.Writer
	reader   cancelreader.CancelReader
	renderer renderer
	logger   *zap.Logger

	altScreen       bool
	rawMode         bool
	mouseAllMotion  bool // reserved, see WithMouseAllMotion
	mouseCellMotion bool // reserved, see WithMouseCellMotion
	handleSignals   bool

	restoreInput func() error // restores cooked mode; set when raw mode engaged
	sigC         chan os.Signal
	winchC       chan os.Signal
}

// NewProgram creates a program driving model. The program reads from
// stdin and writes to stdout unless overridden via options.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		initialModel:  model,
		parentCtx:     context.Background(),
		msgs:          make(chan Msg, 128),
		done:          make(chan struct{}),
		input:         os.Stdin,
		output:        os.Stdout,
		logger:        zap.NewNop(),
		rawMode:       true,
		handleSignals: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Send delivers a message to the program from any goroutine. This is
// how external event sources (timers, sockets, watchers) feed the
// update loop. Messages sent after the program has stopped are dropped
// silently.
func (p *Program) Send(msg Msg) {
	select {
	case <-p.done:
	case p.msgs <- msg:
	}
}

// Quit requests a graceful shutdown. Safe to call from any goroutine,
// any number of times.
func (p *Program) Quit() {
	p.Send(QuitMsg{})
}

// Run starts the program and blocks until it quits. It renders the
// initial view before the init command executes, then serializes every
// Update on the calling goroutine. The final model is returned; the
// error is nil for a normal quit.
func (p *Program) Run() (Model, error) {
	if !p.state.CompareAndSwap(stateNotStarted, stateRunning) {
		return p.initialModel, ErrProgramStarted
	}
	p.ctx, p.cancel = context.WithCancel(p.parentCtx)
	defer p.shutdown()

	if p.renderer == nil {
		if p.altScreen {
			p.renderer = newScreenRenderer(p.output)
		} else {
			p.renderer = newInlineRenderer(p.output)
		}
	}

	if err := p.initInput(); err != nil {
		return p.initialModel, err
	}
	p.renderer.start()

	if p.handleSignals {
		p.watchSignals()
		p.watchResize()
	}
	go p.readInput()

	model := p.initialModel
	p.renderer.render(model.View())
	if cmd := model.Init(); cmd != nil {
		go p.execCmd(cmd)
	}

	for {
		var msg Msg
		select {
		case <-p.ctx.Done():
			return model, p.ctx.Err()
		case msg = <-p.msgs:
		}

		var quit bool
		if model, quit = p.handleMsg(model, msg); quit {
			return model, nil
		}

		// Apply everything already queued before repainting, so a burst
		// of messages produces one frame showing the final model.
	drain:
		for {
			select {
			case msg = <-p.msgs:
				if model, quit = p.handleMsg(model, msg); quit {
					return model, nil
				}
			default:
				break drain
			}
		}
		p.renderer.render(model.View())
	}
}

// handleMsg dispatches one message. Runtime-internal messages are
// intercepted here; everything else reaches Update. The returned bool
// reports whether the program should quit.
func (p *Program) handleMsg(model Model, msg Msg) (Model, bool) {
	switch m := msg.(type) {
	case trackedMsg:
		next, quit := p.handleMsg(model, m.msg)
		close(m.handled)
		return next, quit
	case QuitMsg:
		return model, true
	case batchMsg:
		for _, cmd := range m {
			go p.execCmd(cmd)
		}
		return model, false
	case sequenceMsg:
		go p.execSequence(m)
		return model, false
	case ResizeMsg:
		p.renderer.resize(m.Width, m.Height)
	}

	next, cmd := model.Update(msg)
	if cmd != nil {
		go p.execCmd(cmd)
	}
	return next, false
}

// execCmd runs one command producer and feeds its result back into
// dispatch. Producer panics are recovered and logged; a failed command
// simply produces no message.
func (p *Program) execCmd(cmd Cmd) {
	if cmd == nil {
		return
	}
	if msg := p.safeExec(cmd); msg != nil {
		p.Send(msg)
	}
}

// execSequence runs producers serially. A member's message must be
// handled by the event loop before the next member starts; nil results
// and recovered panics do not abort the sequence.
func (p *Program) execSequence(cmds []Cmd) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := p.safeExec(cmd)
		if msg == nil {
			continue
		}
		tracked := trackedMsg{msg: msg, handled: make(chan struct{})}
		select {
		case p.msgs <- tracked:
		case <-p.done:
			return
		}
		select {
		case <-tracked.handled:
		case <-p.done:
			return
		}
	}
}

func (p *Program) safeExec(cmd Cmd) (msg Msg) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("command panicked",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			msg = nil
		}
	}()
	return cmd()
}

// shutdown restores the terminal. Only the first call does work, and
// every cleanup step runs even when an earlier one fails.
func (p *Program) shutdown() {
	p.shutdownOnce.Do(func() {
		p.state.Store(stateStopped)
		close(p.done)
		p.cancel()

		if p.reader != nil {
			p.reader.Cancel()
		}
		p.stopSignals()
		if p.restoreInput != nil {
			if err := p.restoreInput(); err != nil {
				p.logger.Error("restore terminal mode", zap.Error(err))
			}
		}
		if p.renderer != nil {
			p.renderer.stop()
		}
	})
}
