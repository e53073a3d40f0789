package motor

import (
	"log"
	"math"
)

// CustomError is a lightweight string-backed error type used
// throughout this package for validation failures.
type CustomError string

func (e CustomError) Error() string { return string(e) }

// coggingRecenterEnergyThreshold is the integral tolerance below which
// a cogging map is considered zero-mean.
const coggingRecenterEnergyThreshold = 1e-8

// Params holds the fixed constants for one motor. It is only ever
// mutated through its Set* methods, which validate or clamp at the
// edit boundary so that a tick never observes an invalid parameter.
type Params struct {
	NumPolePairs     int
	RotorInertia     float64    // kg*m^2, > 0
	PhaseResistance  float64    // ohm, > 0
	PhaseInductance  float64    // H, > 0
	NormedBEmfCoeffs [5]float64 // a1, a3, a5, a7, a9 (V*s/rad)

	// CoggingTorqueMap is a fixed-length table of torque samples
	// indexed uniformly over one mechanical revolution.
	CoggingTorqueMap []float64

	// DisableCoggingRecenter opts out of the zero-mean recentering
	// performed by default on every SetCoggingTorqueMap call.
	DisableCoggingRecenter bool

	// CoggingMapWarned records that a non-conserving map has been
	// warned about. SetCoggingTorqueMap clears it before checking the
	// newly installed map, so each installed map warns at most once.
	CoggingMapWarned bool
}

// DefaultCoggingMapLen matches the "e.g. 3600 entries" in the data
// model: one sample per tenth of a mechanical degree.
const DefaultCoggingMapLen = 3600

// NewParams builds a quiescent, sinusoidal-bEMF motor: fundamental
// amplitude a1, zero harmonics, zero cogging. Construction never
// fails; it is the single known-good starting point the scheduler
// owns for the lifetime of the program.
func NewParams(numPolePairs int, rotorInertia, phaseResistance, phaseInductance, a1 float64) *Params {
	p := &Params{
		NumPolePairs:     numPolePairs,
		RotorInertia:     rotorInertia,
		PhaseResistance:  phaseResistance,
		PhaseInductance:  phaseInductance,
		NormedBEmfCoeffs: [5]float64{a1, 0, 0, 0, 0},
		CoggingTorqueMap: make([]float64, DefaultCoggingMapLen),
	}
	return p
}

// SetRotorInertia validates and applies a new inertia. A zero or
// negative value is rejected rather than silently clamped, since
// there is no sane default to clamp to.
func (p *Params) SetRotorInertia(j float64) error {
	if j <= 0 {
		return CustomError("rotor inertia must be strictly positive")
	}
	p.RotorInertia = j
	return nil
}

// SetPhaseResistance validates and applies a new phase resistance.
func (p *Params) SetPhaseResistance(r float64) error {
	if r <= 0 {
		return CustomError("phase resistance must be strictly positive")
	}
	p.PhaseResistance = r
	return nil
}

// SetPhaseInductance validates and applies a new phase inductance.
func (p *Params) SetPhaseInductance(l float64) error {
	if l <= 0 {
		return CustomError("phase inductance must be strictly positive")
	}
	p.PhaseInductance = l
	return nil
}

// SetNumPolePairs validates and applies a new pole-pair count, which
// must lie in [1, 8].
func (p *Params) SetNumPolePairs(n int) error {
	if n < 1 || n > 8 {
		return CustomError("pole pair count must be in [1, 8]")
	}
	p.NumPolePairs = n
	return nil
}

// SetCoggingTorqueMap installs a new cogging map and, unless
// DisableCoggingRecenter is set, recenters it to zero mean in place so
// the map never injects net energy into the rotor over one revolution.
// When recentering is disabled, a sufficiently non-conserving map only
// logs a one-time warning.
func (p *Params) SetCoggingTorqueMap(samples []float64) error {
	if len(samples) == 0 {
		return CustomError("cogging torque map must not be empty")
	}
	m := make([]float64, len(samples))
	copy(m, samples)
	p.CoggingTorqueMap = m
	p.CoggingMapWarned = false

	if p.DisableCoggingRecenter {
		p.warnIfNonConserving()
		return nil
	}
	p.recenterCoggingMap()
	return nil
}

func (p *Params) meanCogging() float64 {
	var sum float64
	for _, v := range p.CoggingTorqueMap {
		sum += v
	}
	return sum / float64(len(p.CoggingTorqueMap))
}

func (p *Params) recenterCoggingMap() {
	mean := p.meanCogging()
	for i := range p.CoggingTorqueMap {
		p.CoggingTorqueMap[i] -= mean
	}
}

func (p *Params) warnIfNonConserving() {
	mean := p.meanCogging()
	integral := mean * TwoPi
	if math.Abs(integral) > coggingRecenterEnergyThreshold && !p.CoggingMapWarned {
		log.Printf("motor: cogging torque map is not energy-conserving (integral=%.3e)", integral)
		p.CoggingMapWarned = true
	}
}

// CoggingTorque linearly interpolates the cogging map at mechanical
// angle theta (radians), wrapping at the table boundary.
func (p *Params) CoggingTorque(theta float64) float64 {
	n := len(p.CoggingTorqueMap)
	if n == 0 {
		return 0
	}
	theta = WrapAngle(theta)
	pos := theta / TwoPi * float64(n)
	i0 := int(math.Floor(pos)) % n
	i1 := (i0 + 1) % n
	frac := pos - math.Floor(pos)
	return p.CoggingTorqueMap[i0]*(1-frac) + p.CoggingTorqueMap[i1]*frac
}

// NormedBEmf evaluates the odd-harmonic bEMF series at electrical
// angle thetaE: a1*sin(thetaE) + a3*sin(3*thetaE) + ...
func (p *Params) NormedBEmf(thetaE float64) float64 {
	harmonics := OddSineSeries(5, thetaE)
	var sum float64
	for k, a := range p.NormedBEmfCoeffs {
		sum += a * harmonics[k]
	}
	return sum
}
