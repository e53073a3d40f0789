package control

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"motorsim/board"
	"motorsim/motor"
)

func TestSixStepSectorSelectsDistinctDrivenPair(t *testing.T) {
	c := qt.New(t)

	p := motor.NewParams(4, 0.01, 0.1, 1e-4, 0.05)
	m := motor.NewState(p)
	b := board.NewState(24, 1e-6, 0.7, 20e3)
	cfg := &SixStepConfig{}

	seenFloating := map[int]bool{}
	for i := 0; i < 600; i++ {
		m.Kinematic.RotorAngle = motor.WrapAngle(float64(i) * 0.01)
		in := &Inputs{Motor: m, Board: b, SixStep: cfg}
		sixStepTick(in)

		floatingCount := 0
		drivenHigh, drivenLow := 0, 0
		for n := 0; n < 3; n++ {
			if b.Gate.Floating[n] {
				floatingCount++
				seenFloating[n] = true
			} else if b.Gate.Commanded[n] {
				drivenHigh++
			} else {
				drivenLow++
			}
		}
		c.Assert(floatingCount, qt.Equals, 1)
		c.Assert(drivenHigh, qt.Equals, 1)
		c.Assert(drivenLow, qt.Equals, 1)
	}
	c.Assert(len(seenFloating), qt.Equals, 3) // every phase floats in some sector
}

func TestSixStepPhaseAdvanceClamped(t *testing.T) {
	c := qt.New(t)

	cfg := &SixStepConfig{}
	cfg.SetPhaseAdvance(10)
	c.Assert(cfg.PhaseAdvance, qt.Equals, 0.5)
	cfg.SetPhaseAdvance(-10)
	c.Assert(cfg.PhaseAdvance, qt.Equals, -0.5)
}
