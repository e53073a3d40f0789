package motor

// phaseOffsets are the electrical-angle offsets of phases A, B, C. This
// ordering makes the bEMF space vector co-rotate with RawElectricalAngle
// (and hence with QAxisElectricalAngle, its -pi/2-shifted Park-frame
// counterpart): phase B leads A by -2*pi/3 and phase C by +2*pi/3, the
// sequence a positive-sequence stator current vector also follows.
var phaseOffsets = [3]float64{0, -TwoPi / 3, TwoPi / 3}

// Kinematic is the mechanical state of the rotor.
type Kinematic struct {
	RotorAngle        float64 // rad, [0, 2*pi)
	RotorAngularVel   float64 // rad/s
	RotorAngularAccel float64 // rad/s^2
	Torque            float64 // N*m, total
	TorqueEM          float64 // N*m, electromagnetic only (excludes cogging and load)
}

// Electrical is the electrical state of the three phases.
type Electrical struct {
	PhaseCurrents [3]float64 // A
	BEmfs         [3]float64 // V
	NormedBEmfs   [3]float64 // V*s/rad (bEMF waveform at omega=1)
}

// State couples fixed Params with the mutable Kinematic/Electrical
// state the physics integrator owns.
type State struct {
	Params     *Params
	Kinematic  Kinematic
	Electrical Electrical
}

// NewState constructs a quiescent motor at rest: zero angle, zero
// speed, zero current.
func NewState(p *Params) *State {
	return &State{Params: p}
}

// ElectricalAngle is the q-axis electrical angle for the current rotor
// position.
func (s *State) ElectricalAngle() float64 {
	return QAxisElectricalAngle(s.Params.NumPolePairs, s.Kinematic.RotorAngle)
}

// UpdatePhaseBEmfs recomputes NormedBEmfs and BEmfs from the motor's own
// rotor angle and speed: each phase's normed bEMF is the series
// evaluated at the raw (unshifted) electrical angle shifted by that
// phase's offset, and the actual bEMF is the normed value times omega.
func (s *State) UpdatePhaseBEmfs() {
	thetaR := RawElectricalAngle(s.Params.NumPolePairs, s.Kinematic.RotorAngle)
	omega := s.Kinematic.RotorAngularVel
	for n, phi := range phaseOffsets {
		normed := s.Params.NormedBEmf(thetaR + phi)
		s.Electrical.NormedBEmfs[n] = normed
		s.Electrical.BEmfs[n] = normed * omega
	}
}
