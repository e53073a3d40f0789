// Package control implements the three commutation strategies that
// drive the gate array: manual pass-through, six-step trapezoidal
// commutation, and Field-Oriented Control.
//
// Commutation mode is a tagged enum dispatched with an exhaustive
// switch in Tick, not a virtual-dispatch interface hierarchy.
package control

import (
	"motorsim/board"
	"motorsim/motor"
)

// Mode is the commutation strategy in force.
type Mode int

const (
	ModeManual Mode = iota
	ModeSixStep
	ModeFOC
)

// Inputs bundles everything a controller tick may need to read or
// write, so Tick's signature stays stable as controllers gain fields.
type Inputs struct {
	Motor *motor.State
	Board *board.State

	SimTime float64

	// Manual mode.
	ManualCommanded [3]bool

	// Six-step mode.
	SixStep *SixStepConfig

	// FOC mode.
	Foc *FocState
}

// Tick dispatches to exactly one controller for the given mode. An
// unhandled mode is a programmer error: it is unreachable by
// construction since Mode has no other named values, and panics
// rather than silently doing nothing.
func Tick(mode Mode, in *Inputs) {
	switch mode {
	case ModeManual:
		manualTick(in)
	case ModeSixStep:
		sixStepTick(in)
	case ModeFOC:
		focTick(in)
	default:
		panic("control: unhandled commutation mode")
	}
}
