package control

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"motorsim/board"
	"motorsim/motor"
	"motorsim/physics"
)

func TestSVMDutiesStayInRange(t *testing.T) {
	c := qt.New(t)

	var duties [3]float64
	for _, v := range []complex128{0, complex(5, 0), complex(-5, 3), complex(2, -8)} {
		svm(v, 24, &duties)
		for _, d := range duties {
			c.Assert(d >= 0 && d <= 1, qt.IsTrue)
		}
	}
}

func TestFOCRespectsItsOwnPeriod(t *testing.T) {
	c := qt.New(t)

	p := motor.NewParams(4, 0.01, 0.1, 1e-4, 0.05)
	m := motor.NewState(p)
	b := board.NewState(24, 1e-6, 0.7, 20e3)
	f := NewFocState(1e-4)
	f.DesiredTorque = 0.01

	in := &Inputs{Motor: m, Board: b, Foc: f, SimTime: 1e-4} // one period after LastTickTime=0
	ran := focTick(in)
	c.Assert(ran, qt.IsTrue)

	in.SimTime = 1e-4 + 1e-6 // well short of the next 1e-4 period
	ran = focTick(in)
	c.Assert(ran, qt.IsFalse)

	in.SimTime = 2e-4
	ran = focTick(in)
	c.Assert(ran, qt.IsTrue)
}

func TestFOCTorqueTracking(t *testing.T) {
	c := qt.New(t)

	p := motor.NewParams(4, 0.01, 0.1, 1e-4, 0.05)
	m := motor.NewState(p)
	b := board.NewState(24, 0, 0.7, 50e3)
	period := 1e-4
	f := NewFocState(period)
	pGain, iGain := AutoTunePI(1000, p.PhaseResistance, p.PhaseInductance)
	f.IqController.PGain, f.IqController.IGain = pGain, iGain
	f.IdController.PGain, f.IdController.IGain = pGain, iGain
	f.DesiredTorque = 0.2

	integ := &physics.Integrator{}
	dt := 1e-6
	loadTorque := -0.2
	simTime := 0.0
	for i := 0; i < 500000; i++ { // 0.5s
		in := &Inputs{Motor: m, Board: b, Foc: f, SimTime: simTime}
		focTick(in)
		b.PWM.Advance(dt)
		b.PWM.CommandFromDuties(b.Gate)
		b.Gate.Step(dt)
		integ.Step(m, b, loadTorque, dt)
		simTime += dt
	}

	c.Assert(math.Abs(m.Kinematic.TorqueEM-0.2) < 0.005, qt.IsTrue)
}
