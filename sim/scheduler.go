package sim

import (
	"motorsim/control"
	"motorsim/observer"
	"motorsim/physics"
)

// Scheduler is the host loop: it owns dt and drives Tick in a fixed
// order. dt is fixed at construction and never changes.
type Scheduler struct {
	State      *State
	Integrator physics.Integrator
	dt         float64

	Samples *observer.Samples
}

// NewScheduler builds a scheduler over state with a fixed integration
// step dt and a ring buffer of the given capacity feeding observers.
func NewScheduler(state *State, dt float64, bufferCapacity int) *Scheduler {
	return &Scheduler{
		State:   state,
		dt:      state.clampOrDefaultDt(dt),
		Samples: observer.NewSamples(bufferCapacity),
	}
}

func (s *State) clampOrDefaultDt(dt float64) float64 {
	if dt <= 0 {
		return 1e-6
	}
	return dt
}

// DT returns the fixed integration step.
func (s *Scheduler) DT() float64 { return s.dt }

// RunFrame advances the simulation by StepMultiplier ticks, unless
// paused, one Tick per host frame iteration. StepMultiplier is clamped
// to [1, 5000].
func (s *Scheduler) RunFrame() {
	if s.State.Paused {
		return
	}
	n := s.State.StepMultiplier
	if n < 1 {
		n = 1
	}
	if n > 5000 {
		n = 5000
	}
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Tick performs one simulation step in a fixed order: (a) run the
// controller if its mode's period is due, (b) advance gate dead-time
// and the PWM carrier, (c) run the physics integrator, (d) append an
// observer sample. time advances by dt afterward.
func (s *Scheduler) Tick() {
	st := s.State

	in := &control.Inputs{
		Motor:           st.Motor,
		Board:           st.Board,
		SimTime:         st.Time,
		ManualCommanded: st.ManualCommanded,
		SixStep:         st.SixStep,
		Foc:             st.Foc,
	}
	control.Tick(st.Mode, in)

	if st.Mode == control.ModeFOC {
		st.Board.PWM.Advance(s.dt)
		st.Board.PWM.CommandFromDuties(st.Board.Gate)
	}

	st.Board.Gate.Step(s.dt)
	s.Integrator.Step(st.Motor, st.Board, st.LoadTorque, s.dt)

	s.Samples.Append(observer.Sample{
		Time:       st.Time,
		Torque:     st.Motor.Kinematic.Torque,
		BEmfs:      st.Motor.Electrical.BEmfs,
		Currents:   st.Motor.Electrical.PhaseCurrents,
		RotorAngle: st.Motor.Kinematic.RotorAngle,
		RotorOmega: st.Motor.Kinematic.RotorAngularVel,
	})

	st.Time += s.dt
}
