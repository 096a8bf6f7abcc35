package hifi

import "golang.org/x/exp/constraints"

// Of returns q of u for any integer or floating point type, e.g. Of(90, Minute)
// or Of(float32(1.5), Hour). Integers are exact; floats follow Unit.TimesFloat.
func Of[T constraints.Integer | constraints.Float](q T, u Unit) Duration {
	var half T = 1
	half /= 2
	if half != 0 {
		return u.TimesFloat(float64(q))
	}
	var wrapped T
	wrapped--
	if wrapped > 0 {
		return u.Times(clampInt64(uint64(q)))
	}
	return u.Times(int64(q))
}

// Sum adds ds, saturating at MinDuration and MaxDuration.
func Sum(ds ...Duration) Duration {
	total := Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
