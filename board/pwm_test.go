package board

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestQuantizeToResolution(t *testing.T) {
	c := qt.New(t)

	p := NewPWMState(20e3)
	p.Resolution = ResolutionOneBit // 1-bit: {0, 0.5, 1}

	for _, duty := range []float64{0, 0.1, 0.4, 0.49, 0.51, 0.9, 1.0} {
		q := p.Quantize(duty)
		multiple := q / float64(p.Resolution)
		rounded := math.Round(multiple)
		c.Assert(math.Abs(multiple-rounded) < 1e-4, qt.IsTrue)
		c.Assert(q >= 0 && q <= 1, qt.IsTrue)
	}
}

func TestQuantizeDisabledIsClampedPassthrough(t *testing.T) {
	c := qt.New(t)

	p := NewPWMState(20e3)
	p.Resolution = ResolutionNone
	c.Assert(p.Quantize(0.37), qt.Equals, 0.37)
	c.Assert(p.Quantize(-0.5), qt.Equals, 0.0)
	c.Assert(p.Quantize(1.5), qt.Equals, 1.0)
}

func TestCommandFromDutiesComparesCarrier(t *testing.T) {
	c := qt.New(t)

	p := NewPWMState(20e3)
	p.Duties = [3]float64{0.75, 0.25, 0.5}
	p.Level = 0.5
	g := NewGateState(1e-6, 0.7)
	p.CommandFromDuties(g)

	c.Assert(g.Commanded[0], qt.IsTrue)  // 0.75 > 0.5
	c.Assert(g.Commanded[1], qt.IsFalse) // 0.25 > 0.5 is false
	c.Assert(g.Commanded[2], qt.IsFalse) // 0.5 > 0.5 is false
}

func TestAdvanceWrapsAtOne(t *testing.T) {
	c := qt.New(t)

	p := NewPWMState(1.0) // 1 Hz carrier
	p.Level = 0.9
	p.Advance(0.2)
	c.Assert(p.Level >= 0 && p.Level < 1, qt.IsTrue)
}
