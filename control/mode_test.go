package control

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"motorsim/board"
)

func TestTickDispatchesManual(t *testing.T) {
	c := qt.New(t)

	b := board.NewState(24, 1e-6, 0.7, 20e3)
	in := &Inputs{Board: b, ManualCommanded: [3]bool{true, true, false}}
	Tick(ModeManual, in)
	c.Assert(b.Gate.Commanded, qt.DeepEquals, [3]bool{true, true, false})
}

func TestTickPanicsOnUnknownMode(t *testing.T) {
	c := qt.New(t)

	b := board.NewState(24, 1e-6, 0.7, 20e3)
	in := &Inputs{Board: b}
	c.Assert(func() { Tick(Mode(99), in) }, qt.PanicMatches, "control: unhandled commutation mode")
}
