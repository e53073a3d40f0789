package board

// State is the board-level state: bus voltage plus the gate array and
// PWM carrier.
type State struct {
	BusVoltage float64
	Gate       *GateState
	PWM        *PWMState
}

// NewState builds a board at the given bus voltage with the given
// dead-time, diode drop, and PWM carrier frequency.
func NewState(busVoltage, deadTime, diodeActiveVoltage, carrierHz float64) *State {
	return &State{
		BusVoltage: busVoltage,
		Gate:       NewGateState(deadTime, diodeActiveVoltage),
		PWM:        NewPWMState(carrierHz),
	}
}

// SetBusVoltage validates and applies a new bus voltage; zero or
// negative is rejected.
func (s *State) SetBusVoltage(v float64) error {
	if v <= 0 {
		return CustomError("bus voltage must be strictly positive")
	}
	s.BusVoltage = v
	return nil
}

// CustomError mirrors motor.CustomError; kept distinct per package so
// each package's error domain stays self-contained.
type CustomError string

func (e CustomError) Error() string { return string(e) }
