package hifi

import (
	"time"

	"github.com/clipperhouse/ntime"
)

// The system clock is read once, at package initialization. Later readings
// advance from it with the monotonic clock.
var (
	wallAnchor = FromTime(time.Now())
	monoAnchor = ntime.Now()
)

// Now returns the current instant as a UTC epoch. It never goes backward,
// even when the system clock is adjusted while the process runs.
func Now() Epoch {
	return wallAnchor.AddTAI(FromStd(ntime.Now().Sub(monoAnchor)))
}

// Elapsed returns the TAI duration since e.
func Elapsed(e Epoch) Duration {
	return Now().Since(e)
}
