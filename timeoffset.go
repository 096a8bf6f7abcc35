package hifi

import "fmt"

// DefaultTimeOffsetValidity is the validity window used when a TimeOffset
// has none: one week on either side of the reference epoch, the span over
// which GNSS navigation messages keep a correction in use.
var DefaultTimeOffsetValidity = Week.Duration()

// TimeOffset is a broadcast correction between two time scales. Poly is
// referenced at Ref and applies to epochs no further than Validity from it.
type TimeOffset struct {
	From     TimeScale
	To       TimeScale
	Ref      Epoch
	Validity Duration
	Poly     Polynomial
}

// NewTimeOffset returns the correction from one scale to another. A zero or
// negative validity stands for DefaultTimeOffsetValidity.
func NewTimeOffset(from, to TimeScale, ref Epoch, validity Duration, poly Polynomial) (TimeOffset, error) {
	if from == to {
		return TimeOffset{}, fmt.Errorf("%w: %s", ErrIdenticalTimeScales, from)
	}
	if validity.IsNegative() || validity.IsZero() {
		validity = DefaultTimeOffsetValidity
	}
	return TimeOffset{From: from, To: to, Ref: ref, Validity: validity, Poly: poly}, nil
}

// Correction returns the polynomial evaluated at e, which must be expressed in
// From or To and lie within the validity window.
func (o TimeOffset) Correction(e Epoch) (Duration, error) {
	if err := o.check(e); err != nil {
		return Zero, err
	}
	return o.Poly.CorrectionDuration(e.Since(o.Ref)), nil
}

// Convert applies the correction to e. An epoch in From is carried to To,
// and an epoch in To is carried back to From.
func (o TimeOffset) Convert(e Epoch) (Epoch, error) {
	if err := o.check(e); err != nil {
		return Epoch{}, err
	}
	if e.TimeScale() == o.From {
		return e.ToTimeScaleWithReference(o.To, o.Ref, o.Poly), nil
	}
	return e.FromTimeScaleWithReference(o.From, o.Ref, o.Poly), nil
}

func (o TimeOffset) check(e Epoch) error {
	if o.From == o.To {
		return fmt.Errorf("%w: %s", ErrIdenticalTimeScales, o.From)
	}
	if scale := e.TimeScale(); scale != o.From && scale != o.To {
		return fmt.Errorf("%w: %s is neither %s nor %s", ErrTimeScaleNotSupported, scale, o.From, o.To)
	}
	if dt := e.Since(o.Ref).Abs(); dt.CompareSigned(o.Validity) > 0 {
		return fmt.Errorf("%w: %s from the reference, valid for %s", ErrOutdatedTimeOffset, dt, o.Validity)
	}
	return nil
}

func (o TimeOffset) String() string {
	return fmt.Sprintf("TimeOffset(%s to %s at %s for %s, %s)", o.From, o.To, o.Ref, o.Validity, o.Poly)
}
