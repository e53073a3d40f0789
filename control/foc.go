package control

import (
	"math"

	"motorsim/motor"
	"motorsim/xmath"
)

// FocState is the controller's own clock plus its q/d regulators and
// mode toggles.
type FocState struct {
	Period       float64 // seconds, controller tick interval
	LastTickTime float64

	IqController PIState
	IdController PIState
	VoltageQD    complex128 // last commanded voltage vector in the rotor frame

	DesiredTorque float64

	NonSinusoidalDrive bool
	UseCoggingComp     bool
	UseQDDecoupling    bool
}

// NewFocState builds an FOC controller clocked at the given period
// with anti-windup enabled on both axes by default.
func NewFocState(period float64) *FocState {
	return &FocState{
		Period:       period,
		IqController: PIState{AntiWindup: true},
		IdController: PIState{AntiWindup: true},
	}
}

// torquePerAmp is the instantaneous torque-per-amp "constant" at the raw
// (unshifted) electrical angle thetaR, the frame the physical bEMF
// waveform is actually defined in. For a pure fundamental it reduces to
// a1*polePairs*3/2; non-sinusoidal drive instead evaluates the full
// odd-harmonic series there, tracking the motor's actual torque-per-amp
// curve rather than its fundamental approximation.
func torquePerAmp(m *motor.State, thetaR float64, nonSinusoidal bool) float64 {
	polePairs := float64(m.Params.NumPolePairs)
	if nonSinusoidal {
		// A pure q-axis current puts iq*sin(thetaR+phi) into each phase
		// (phi = 0, -2pi/3, +2pi/3), so torque per unit iq is polePairs
		// times the sum of sin(thetaR+phi)*normedBEmf(thetaR+phi).
		var sum float64
		for _, phi := range [3]float64{0, -motor.TwoPi / 3, motor.TwoPi / 3} {
			sum += math.Sin(thetaR+phi) * m.Params.NormedBEmf(thetaR+phi)
		}
		return sum * polePairs
	}
	return m.Params.NormedBEmfCoeffs[0] * 1.5 * polePairs
}

// desiredCurrents converts desired torque into (iqDesired, idDesired).
// idDesired is always 0: this targets maximum torque per amp, not flux
// weakening.
func desiredCurrents(f *FocState, m *motor.State, thetaR float64) (iqDesired, idDesired float64) {
	tpa := torquePerAmp(m, thetaR, f.NonSinusoidalDrive)
	if tpa == 0 {
		return 0, 0
	}
	iqDesired = f.DesiredTorque / tpa
	if f.UseCoggingComp {
		iqDesired += coggingFeedforward(m, thetaR)
	}
	return iqDesired, 0
}

// coggingFeedforward converts the cogging torque at the rotor's
// current mechanical angle into an iq feedforward term using the
// fundamental torque constant.
func coggingFeedforward(m *motor.State, thetaR float64) float64 {
	tpa := torquePerAmp(m, thetaR, false)
	if tpa == 0 {
		return 0
	}
	return m.Params.CoggingTorque(m.Kinematic.RotorAngle) / tpa
}

// svm converts a stationary-frame voltage vector to three PWM duties
// using standard min-max centering: the common-mode offset is chosen
// so the three pole voltages are centered within [0, bus], giving the
// full linear modulation range up to bus/sqrt(3).
func svm(vAlphaBeta complex128, busVoltage float64, duties *[3]float64) {
	a, b, c := motor.InverseClarke(vAlphaBeta)
	lo, hi := a, a
	for _, v := range []float64{b, c} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	offset := -(hi + lo) / 2
	vabc := [3]float64{a + offset, b + offset, c + offset}
	for n, v := range vabc {
		duties[n] = xmath.Clamp(v/busVoltage+0.5, 0, 1)
	}
}

// focTick runs the full FOC pipeline when the controller's own period
// has elapsed, independent of the integrator's dt. It returns whether
// it actually ran, so a caller can count ticks if it wants to.
func focTick(in *Inputs) bool {
	f := in.Foc
	if in.SimTime-f.LastTickTime < f.Period {
		return false
	}
	f.LastTickTime = in.SimTime

	m := in.Motor
	thetaE := m.ElectricalAngle()
	thetaR := motor.RawElectricalAngle(m.Params.NumPolePairs, m.Kinematic.RotorAngle)
	omegaE := float64(m.Params.NumPolePairs) * m.Kinematic.RotorAngularVel

	iAlphaBeta := motor.Clarke(
		m.Electrical.PhaseCurrents[0],
		m.Electrical.PhaseCurrents[1],
		m.Electrical.PhaseCurrents[2],
	)
	iQD := motor.Park(iAlphaBeta, thetaE)
	iq, id := real(iQD), imag(iQD)

	iqDesired, idDesired := desiredCurrents(f, m, thetaR)

	satLimit := in.Board.BusVoltage / 1.7320508075688772 // bus / sqrt(3)
	f.IqController.SatLimit = satLimit
	f.IdController.SatLimit = satLimit

	uq := f.IqController.Update(iqDesired, iq, f.Period)
	ud := f.IdController.Update(idDesired, id, f.Period)

	if f.UseQDDecoupling {
		uq += omegaE * m.Params.PhaseInductance * id
		ud += -omegaE * m.Params.PhaseInductance * iq
	}

	f.VoltageQD = complex(uq, ud)
	vAlphaBeta := motor.ParkInverse(f.VoltageQD, thetaE)

	svm(vAlphaBeta, in.Board.BusVoltage, &in.Board.PWM.Duties)
	in.Board.Gate.Floating = [3]bool{false, false, false}
	return true
}
