package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// command is one engine call the input dispatcher can make per frame.
type command int

const (
	cmdNone command = iota
	cmdLeft
	cmdRight
	cmdDown
	cmdRotate
	cmdDrop
	cmdCount
)

// dispatchOrder is the priority used when several commands fire together.
var dispatchOrder = []command{cmdLeft, cmdRight, cmdDown, cmdRotate, cmdDrop}

func (c command) action() core.Action {
	switch c {
	case cmdLeft:
		return core.ActionLeft
	case cmdRight:
		return core.ActionRight
	case cmdDown:
		return core.ActionDown
	case cmdRotate:
		return core.ActionRotate
	case cmdDrop:
		return core.ActionDrop
	default:
		return core.ActionNone
	}
}

func (c command) String() string {
	return c.action().String()
}

// repeats reports whether holding the command keeps dispatching it.
func (c command) repeats() bool {
	return c == cmdLeft || c == cmdRight || c == cmdDown
}

// InputState tracks how long each command has been requested in a row.
// A command fires on the frame it is first requested; movement commands held
// longer than the repeat delay fire again every repeat interval.
type InputState struct {
	held     [cmdCount]int
	delay    int
	interval int
}

// NewInputState creates an input state with the given repeat timing in frames.
func NewInputState(delay, interval int) InputState {
	return InputState{delay: max(delay, 0), interval: max(interval, 1)}
}

// Update records the actions of one frame.
func (s *InputState) Update(in core.InputFrame) {
	for c := cmdLeft; c < cmdCount; c++ {
		if in.Has(c.action()) {
			s.held[c]++
		} else {
			s.held[c] = 0
		}
	}
}

// Reset forgets all held commands.
func (s *InputState) Reset() {
	s.held = [cmdCount]int{}
}

func (s *InputState) fires(c command) bool {
	n := s.held[c]
	switch {
	case n == 0:
		return false
	case n == 1:
		return true
	case !c.repeats() || n <= s.delay:
		return false
	default:
		return (n-1-s.delay)%s.interval == 0
	}
}

// Next returns the single command to dispatch this frame, or cmdNone.
func (s *InputState) Next() command {
	for _, c := range dispatchOrder {
		if s.fires(c) {
			return c
		}
	}
	return cmdNone
}
