// Package physics implements the fixed-timestep forward-Euler
// integrator that couples gate/PWM state, phase currents, back-EMF,
// cogging torque, and rotor kinematics.
package physics

import (
	"log"

	"motorsim/board"
	"motorsim/motor"
)

// Stats accumulates warning counters for non-fatal numerical
// degeneracy. It is exported so the scheduler/observer layer can
// surface it without the integrator reaching out to a logger directly
// on every tick.
type Stats struct {
	DegenerateOffTicks int
}

// Integrator runs one Euler step at a time. Its zero value is ready to
// use; Stats accumulates across the integrator's lifetime.
type Integrator struct {
	Stats Stats
}

// Step performs one forward-Euler update of size dt, in a fixed order:
// gate -> pole voltages, neutral voltage, phase voltages, di/dt,
// current update, torque, rotor update. loadTorque is subtracted from
// the electromagnetic + cogging torque.
func (integ *Integrator) Step(m *motor.State, b *board.State, loadTorque, dt float64) {
	m.UpdatePhaseBEmfs()

	var vPole [3]float64
	for n := 0; n < 3; n++ {
		v, degenerate := b.Gate.PoleVoltage(n, b.BusVoltage, m.Electrical.PhaseCurrents[n])
		vPole[n] = v
		if degenerate {
			integ.Stats.DegenerateOffTicks++
			if integ.Stats.DegenerateOffTicks == 1 {
				log.Printf("physics: phase %d OFF-state current below diode threshold, picking 0V rail", n)
			}
		}
	}

	var sumPole, sumBEmf float64
	for n := 0; n < 3; n++ {
		sumPole += vPole[n]
		sumBEmf += m.Electrical.BEmfs[n]
	}
	vNeutral := (sumPole - sumBEmf) / 3

	var torqueEM float64
	for n := 0; n < 3; n++ {
		vPhase := vPole[n] - vNeutral
		diDt := (vPhase - m.Electrical.BEmfs[n] - m.Params.PhaseResistance*m.Electrical.PhaseCurrents[n]) / m.Params.PhaseInductance
		m.Electrical.PhaseCurrents[n] += diDt * dt

		torqueEM += m.Electrical.PhaseCurrents[n] * m.Electrical.NormedBEmfs[n]
	}
	// Standard PMSM convention: Te = (3/2)*polePairs*lambda*iq, and the
	// per-phase sum above already carries the (3/2) via the amplitude-
	// invariant normed-bEMF/current dot product, so only polePairs is
	// left to apply.
	torqueEM *= float64(m.Params.NumPolePairs)

	coggingTorque := m.Params.CoggingTorque(m.Kinematic.RotorAngle)
	totalTorque := torqueEM + coggingTorque - loadTorque

	m.Kinematic.Torque = totalTorque
	m.Kinematic.TorqueEM = torqueEM
	m.Kinematic.RotorAngularAccel = totalTorque / m.Params.RotorInertia
	m.Kinematic.RotorAngularVel += m.Kinematic.RotorAngularAccel * dt
	m.Kinematic.RotorAngle = motor.WrapAngle(m.Kinematic.RotorAngle + m.Kinematic.RotorAngularVel*dt)
}
