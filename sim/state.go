// Package sim owns the simulation state and the scheduler that clocks
// the controller, gate/PWM model, and physics integrator each tick.
package sim

import (
	"motorsim/board"
	"motorsim/control"
	"motorsim/motor"
)

// State aggregates everything the scheduler advances each tick. It is
// exclusively owned by the Scheduler across a tick; interactive
// parameter edits happen only between ticks.
type State struct {
	Time float64

	Motor *motor.State
	Board *board.State

	Mode            control.Mode
	SixStep         *control.SixStepConfig
	Foc             *control.FocState
	ManualCommanded [3]bool

	LoadTorque float64

	StepMultiplier int
	Paused         bool
}

// New builds a State with a quiescent motor, a board at the given bus
// voltage, and manual mode selected -- the sinusoidal bEMF,
// zero-cogging, zero-speed default lifecycle start.
func New(params *motor.Params, busVoltage, deadTime, diodeActiveVoltage, pwmCarrierHz, focPeriod float64) *State {
	return &State{
		Motor:          motor.NewState(params),
		Board:          board.NewState(busVoltage, deadTime, diodeActiveVoltage, pwmCarrierHz),
		Mode:           control.ModeManual,
		SixStep:        &control.SixStepConfig{},
		Foc:            control.NewFocState(focPeriod),
		StepMultiplier: 1,
	}
}
