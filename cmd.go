package weft

import "time"

// Cmd describes a deferred, possibly asynchronous effect that produces
// at most one Msg. A nil Cmd means no effect; a Cmd returning nil
// produces no message. Commands run on their own goroutines and must
// not touch the Model or the terminal.
type Cmd func() Msg

// batchMsg and sequenceMsg carry combinator members through dispatch to
// the scheduler. They never reach an application's Update.
type batchMsg []Cmd

type sequenceMsg []Cmd

// Batch runs commands concurrently. Each command's message is delivered
// independently, in resolution order; ordering across members is not
// guaranteed. Nil members are dropped.
func Batch(cmds ...Cmd) Cmd {
	cmds = compactCmds(cmds)
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return func() Msg {
		return batchMsg(cmds)
	}
}

// Sequence runs commands strictly one at a time: a member's message is
// delivered to Update before the next member starts. Members that
// produce no message (or fail) do not abort the sequence. Nil members
// are dropped.
func Sequence(cmds ...Cmd) Cmd {
	cmds = compactCmds(cmds)
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return func() Msg {
		return sequenceMsg(cmds)
	}
}

// Tick produces a message once d has elapsed. The message is built by
// fn from the time the timer fired.
func Tick(d time.Duration, fn func(time.Time) Msg) Cmd {
	return func() Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		return fn(<-timer.C)
	}
}

func compactCmds(cmds []Cmd) []Cmd {
	out := make([]Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
