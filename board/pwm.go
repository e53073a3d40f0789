package board

import (
	"github.com/orsinium-labs/tinymath"

	"motorsim/xmath"
)

// Resolution is a PWM duty quantization step. Zero disables
// quantization; the others are the discrete steps exposed to the
// operator.
type Resolution float64

const (
	ResolutionNone   Resolution = 0
	ResolutionOneBit Resolution = 1.0 / 2
	Resolution8Bit   Resolution = 1.0 / 256
	Resolution16Bit  Resolution = 1.0 / 65536
)

// PWMState is the triangle/sawtooth carrier and the per-phase duties
// it compares against.
type PWMState struct {
	Level      float64 // [0, 1)
	Duties     [3]float64
	Resolution Resolution
	CarrierHz  float64
}

// NewPWMState builds a carrier at the given switching frequency with
// quantization disabled.
func NewPWMState(carrierHz float64) *PWMState {
	return &PWMState{CarrierHz: carrierHz, Resolution: ResolutionNone}
}

// Quantize rounds duty to the nearest multiple of the state's
// resolution. Resolution 0 disables quantization. The rounding itself
// uses tinymath.Round: this is a coarse, non-precision-critical step
// (the PI/SVM pipeline upstream already did its math in float64), so
// float32 fast-math is a good fit here.
func (p *PWMState) Quantize(duty float64) float64 {
	if p.Resolution <= 0 {
		return xmath.Clamp(duty, 0, 1)
	}
	r := float64(p.Resolution)
	steps := tinymath.Round(float32(duty / r))
	return xmath.Clamp(float64(steps)*r, 0, 1)
}

// Advance moves the carrier forward by dt at CarrierHz and wraps at 1.
// Controllers that write Commanded directly (manual, six-step) may
// ignore the carrier entirely.
func (p *PWMState) Advance(dt float64) {
	p.Level += dt * p.CarrierHz
	p.Level -= float64(int64(p.Level))
	if p.Level < 0 {
		p.Level += 1
	}
}

// CommandFromDuties compares each quantized duty against the carrier
// level and writes the resulting commanded gate states:
// commanded = duty_q > level.
func (p *PWMState) CommandFromDuties(gate *GateState) {
	for n := 0; n < 3; n++ {
		dq := p.Quantize(p.Duties[n])
		gate.Commanded[n] = dq > p.Level
	}
}
