package pattern

import "math"

// Matches reports whether attempt reproduces stored within the given pixel
// tolerance.
//
// A length mismatch is an immediate rejection; there is no partial-length
// matching. Otherwise every attempted point is compared positionally against
// the stored point at the same index: the Euclidean distance must be at most
// tolerance (inclusive boundary). All indices must pass; there is no
// partial-credit scoring and no aggregate distance.
func Matches(stored, attempt Pattern, tolerance int) bool {
	if len(stored) != len(attempt) {
		return false
	}

	for i, sp := range stored {
		ap := attempt[i]
		dx := float64(sp.X - ap.X)
		dy := float64(sp.Y - ap.Y)
		if math.Sqrt(dx*dx+dy*dy) > float64(tolerance) {
			return false
		}
	}
	return true
}
