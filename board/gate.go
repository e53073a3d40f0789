// Package board models the H-bridge gate array and PWM carrier that
// sit between the controllers and the physics integrator: commanded
// vs. actual gate state, dead-time lockout, and duty quantization.
package board

// Level is the resolved state of one half-bridge leg.
type Level int

const (
	LOW Level = iota
	HIGH
	OFF
)

// GateState is the per-phase commanded/actual gate state plus dead-time
// bookkeeping.
type GateState struct {
	Commanded [3]bool
	Actual    [3]Level

	// Floating forces a phase to OFF unconditionally, independent of
	// Commanded/dead-time. Six-step commutation uses it for the
	// undriven phase of each sector's (HIGH, LOW, OFF) triple -- a
	// phase the table parks in high-impedance rather than switches.
	Floating [3]bool

	DeadTime          float64 // seconds
	DeadTimeRemaining [3]float64

	DiodeActiveVoltage          float64 // V, forward drop while a body diode conducts
	DiodeActiveCurrentThreshold float64 // A, below which OFF-state current sign is indeterminate

	prevCommanded [3]bool
	initialized   bool
}

// NewGateState builds a gate array with all phases commanded LOW and
// actual LOW (the zero value of Level), matching a freshly-constructed,
// quiescent board.
func NewGateState(deadTime, diodeActiveVoltage float64) *GateState {
	return &GateState{
		DeadTime:                    deadTime,
		DiodeActiveVoltage:          diodeActiveVoltage,
		DiodeActiveCurrentThreshold: 1e-6,
	}
}

// Step advances dead-time bookkeeping by dt. It must run once per
// integrator tick, after the controller has written Commanded and
// before the physics integrator reads Actual.
func (g *GateState) Step(dt float64) {
	if !g.initialized {
		g.prevCommanded = g.Commanded
		g.initialized = true
	}
	for n := 0; n < 3; n++ {
		if g.Commanded[n] != g.prevCommanded[n] {
			g.Actual[n] = OFF
			g.DeadTimeRemaining[n] = g.DeadTime
		} else if g.DeadTimeRemaining[n] > 0 {
			g.DeadTimeRemaining[n] -= dt
			// Repeated subtraction leaves a rounding residue (about 2e-22
			// for 2us in 0.5us steps); anything below a billionth of a
			// tick counts as expired, so a dead time that is an exact
			// multiple of dt lasts exactly DeadTime/dt ticks.
			if g.DeadTimeRemaining[n] <= dt*1e-9 {
				g.DeadTimeRemaining[n] = 0
				g.Actual[n] = commandedLevel(g.Commanded[n])
			}
		}
		if g.Floating[n] {
			g.Actual[n] = OFF
		}
	}
	g.prevCommanded = g.Commanded
}

func commandedLevel(commanded bool) Level {
	if commanded {
		return HIGH
	}
	return LOW
}

// PoleVoltage resolves phase n's pole voltage given the bus voltage and
// that phase's current. When the gate is OFF and the current magnitude
// is below DiodeActiveCurrentThreshold, the sign is indeterminate; this
// picks the low-side rail (0V) deterministically and reports
// degenerate=true so the caller can bump a warning counter.
func (g *GateState) PoleVoltage(n int, busVoltage, phaseCurrent float64) (voltage float64, degenerate bool) {
	switch g.Actual[n] {
	case HIGH:
		return busVoltage, false
	case LOW:
		return 0, false
	default: // OFF
		switch {
		case phaseCurrent > g.DiodeActiveCurrentThreshold:
			return -g.DiodeActiveVoltage, false
		case phaseCurrent < -g.DiodeActiveCurrentThreshold:
			return busVoltage + g.DiodeActiveVoltage, false
		default:
			return 0, true
		}
	}
}
