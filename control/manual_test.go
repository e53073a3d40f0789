package control

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"motorsim/board"
)

func TestManualTickPassesThroughCommanded(t *testing.T) {
	c := qt.New(t)

	b := board.NewState(24, 1e-6, 0.7, 20e3)
	b.Gate.Floating = [3]bool{true, true, true}
	in := &Inputs{Board: b, ManualCommanded: [3]bool{true, false, true}}

	manualTick(in)

	c.Assert(b.Gate.Commanded, qt.DeepEquals, [3]bool{true, false, true})
	c.Assert(b.Gate.Floating, qt.DeepEquals, [3]bool{false, false, false})
}
