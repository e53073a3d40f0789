package control

// PIState is a single-axis PI regulator.
type PIState struct {
	PGain, IGain float64
	Integral     float64
	Err          float64

	AntiWindup bool
	SatLimit   float64 // only consulted when AntiWindup is set
}

// Update runs one PI step over a tick of length period and returns the
// (possibly saturated) control output. Anti-windup, when enabled,
// clamps the output to +/-SatLimit and uses conditional integration:
// the integral only accumulates further when doing so would not
// deepen the saturation.
func (pi *PIState) Update(desired, measured, period float64) float64 {
	err := desired - measured
	pi.Err = err

	candidateIntegral := pi.Integral + err*period
	u := pi.PGain*err + pi.IGain*candidateIntegral

	if !pi.AntiWindup || pi.SatLimit <= 0 {
		pi.Integral = candidateIntegral
		return u
	}

	switch {
	case u > pi.SatLimit:
		u = pi.SatLimit
		if err < 0 {
			pi.Integral = candidateIntegral
		}
	case u < -pi.SatLimit:
		u = -pi.SatLimit
		if err > 0 {
			pi.Integral = candidateIntegral
		}
	default:
		pi.Integral = candidateIntegral
	}
	return u
}

// AutoTunePI is an automatic PI tuning convenience: given a target
// closed-loop bandwidth omegaC and the plant's R, L, it returns
// (pGain, iGain) = (omegaC*L, omegaC*R).
func AutoTunePI(omegaC, r, l float64) (pGain, iGain float64) {
	return omegaC * l, omegaC * r
}
