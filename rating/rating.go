// Package rating computes the derived quality score for a cafe from its
// seating capacity and amenity flags.
package rating

// Compute returns the cafe rating. Deterministic and side-effect free;
// result is always in [1,10].
//
// Base score from seats: 30+ seats → 3, 10–29 → 2, fewer → 1.
// Wifi and a toilet are worth 2 points each, sockets, call-friendliness
// and card payment 1 point each.
func Compute(seats int, hasWifi, hasToilet, hasSockets, canTakeCalls, canPayWithCard bool) int {
	score := 1
	switch {
	case seats >= 30:
		score = 3
	case seats >= 10:
		score = 2
	}
	if hasWifi {
		score += 2
	}
	if hasToilet {
		score += 2
	}
	if hasSockets {
		score++
	}
	if canTakeCalls {
		score++
	}
	if canPayWithCard {
		score++
	}
	return score
}
