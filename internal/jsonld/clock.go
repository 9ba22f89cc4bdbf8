package jsonld

import "time"

// Clock abstracts the wall-clock read used for default timestamp generation,
// keeping conversions deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Timestamp formats t the way generated checkpoint timestamps are stored.
// Nanosecond precision keeps two back-to-back conversions from producing the
// same dateModified value.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
