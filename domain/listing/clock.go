package listing

import "time"

// Remaining reports how long until the deadline and whether it has passed.
// Callers must read the clock once per logical operation and reuse the same
// now across every listing they evaluate, so a batch is never partitioned
// against two different instants.
func Remaining(expireAt, now time.Time) (time.Duration, bool) {
	if !now.Before(expireAt) {
		return 0, true
	}
	return expireAt.Sub(now), false
}

// IsExpired is the liveness predicate. Expiry is never stored; it is always
// derived from the deadline.
func IsExpired(expireAt, now time.Time) bool {
	_, expired := Remaining(expireAt, now)
	return expired
}
