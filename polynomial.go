package hifi

import "fmt"

// Polynomial is a time scale correction a0 + a1·Δt + a2·Δt², as broadcast by
// GNSS constellations to relate their time scales to one another. Rate is the
// drift per second and Accel the drift per second squared, both expressed as durations.
type Polynomial struct {
	Constant Duration
	Rate     Duration
	Accel    Duration
}

// PolynomialFromConstantOffset returns a correction that is constant over time.
func PolynomialFromConstantOffset(constant Duration) Polynomial {
	return Polynomial{Constant: constant}
}

// PolynomialFromConstantOffsetNanoseconds returns a constant correction of ns nanoseconds.
func PolynomialFromConstantOffsetNanoseconds(ns float64) Polynomial {
	return Polynomial{Constant: FromNanoseconds(ns)}
}

// PolynomialFromOffsetAndRate returns a linear correction.
func PolynomialFromOffsetAndRate(constant, rate Duration) Polynomial {
	return Polynomial{Constant: constant, Rate: rate}
}

// PolynomialFromOffsetAndRateNanoseconds returns a linear correction of offset
// nanoseconds drifting by drift nanoseconds per second.
func PolynomialFromOffsetAndRateNanoseconds(offset, drift float64) Polynomial {
	return Polynomial{Constant: FromNanoseconds(offset), Rate: FromNanoseconds(drift)}
}

// CorrectionDuration evaluates the polynomial dt after its reference epoch.
// The evaluation is done in floating point seconds.
func (p Polynomial) CorrectionDuration(dt Duration) Duration {
	t := dt.ToSeconds()
	a0, a1, a2 := p.Constant.ToSeconds(), p.Rate.ToSeconds(), p.Accel.ToSeconds()
	return FromSeconds(a0 + a1*t + a2*t*t)
}

func (p Polynomial) String() string {
	return fmt.Sprintf("Polynomial(constant=%s, rate=%s/s, accel=%s/s²)", p.Constant, p.Rate, p.Accel)
}

// PrecisePolynomialCorrection applies poly, evaluated at e - ref, to e. The
// forward direction subtracts the correction and the backward direction adds
// it back. ref may be before or after e; the closer it is, the more accurate the correction.
func (e Epoch) PrecisePolynomialCorrection(ref Epoch, poly Polynomial, forward bool) Epoch {
	correction := poly.CorrectionDuration(e.Since(ref))
	if forward {
		return e.AddTAI(correction.Neg())
	}
	return e.AddTAI(correction)
}

// ToTimeScaleWithReference converts e to scale and refines the result with
// poly, a correction between the two scales referenced at ref.
func (e Epoch) ToTimeScaleWithReference(scale TimeScale, ref Epoch, poly Polynomial) Epoch {
	return e.ToTimeScale(scale).PrecisePolynomialCorrection(ref, poly, true)
}

// FromTimeScaleWithReference undoes ToTimeScaleWithReference, returning the
// epoch in scale.
func (e Epoch) FromTimeScaleWithReference(scale TimeScale, ref Epoch, poly Polynomial) Epoch {
	return e.PrecisePolynomialCorrection(ref, poly, false).ToTimeScale(scale)
}
