package reservation

import "time"

// Overlap reports whether the half-open intervals [a, a+d) and [b, b+d)
// intersect. Adjacent intervals do not overlap.
func Overlap(a, b TimeOfDay, d time.Duration) bool {
	span := TimeOfDay(d / time.Minute)
	return !(a >= b+span || a+span <= b)
}
