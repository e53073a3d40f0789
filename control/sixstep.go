package control

import (
	"motorsim/motor"
)

// SixStepConfig holds the one tunable six-step exposes to the
// operator: phase advance, in turns, clamped to [-0.5, 0.5].
type SixStepConfig struct {
	PhaseAdvance float64
}

// SetPhaseAdvance clamps to the valid range rather than rejecting,
// since any overshoot just wraps sectors.
func (c *SixStepConfig) SetPhaseAdvance(turns float64) {
	if turns < -0.5 {
		turns = -0.5
	}
	if turns > 0.5 {
		turns = 0.5
	}
	c.PhaseAdvance = turns
}

// sixStepSectors maps sector 0..5 to a (phaseA, phaseB, phaseC)
// triple, the standard commutation table: A+B-, A+C-, B+C-, B+A-,
// C+A-, C+B-. commanded is the Commanded bit for a driven phase; the
// third, undriven phase floats (board.GateState.Floating).
type sixStepPhase struct {
	floating  bool
	commanded bool
}

var sixStepSectors = [6][3]sixStepPhase{
	{{false, true}, {false, false}, {true, false}}, // A+B-
	{{false, true}, {true, false}, {false, false}}, // A+C-
	{{true, false}, {false, true}, {false, false}}, // B+C-
	{{false, false}, {false, true}, {true, false}}, // B+A-
	{{false, false}, {true, false}, {false, true}}, // C+A-
	{{true, false}, {false, false}, {false, true}}, // C+B-
}

// sixStepTick selects a sector from the phase-advanced electrical angle
// and writes the gate array accordingly. Each table entry's two-phase
// conduction pattern drives a stator current vector sitting 30 degrees
// before its row's own 60-degree boundary (row 0, A+B-, points at -30
// degrees; row 1, A+C-, at +30; and so on around the table): shifting
// the raw sector index by one row aligns the driven vector with the
// adjusted electrical angle itself, leading the rotor flux by 90
// degrees the way the q-axis does, instead of trailing it by a full
// sector.
func sixStepTick(in *Inputs) {
	cfg := in.SixStep
	thetaE := in.Motor.ElectricalAngle()

	adjusted := motor.WrapAngle(thetaE + motor.TwoPi*cfg.PhaseAdvance)
	sectorWidth := motor.TwoPi / 6
	sector := (int(adjusted/sectorWidth) + 1) % 6

	triple := sixStepSectors[sector]
	gate := in.Board.Gate
	for n := 0; n < 3; n++ {
		gate.Floating[n] = triple[n].floating
		gate.Commanded[n] = triple[n].commanded
	}
}
