package main

import "errors"

// ErrMissingTimestamps is returned by operations that need the timestamp
// channel when the track does not carry one.
var ErrMissingTimestamps = errors.New("track has no timestamp channel")

// Speeds returns per-point speeds in m/s: entry 0 is always 0, entry i is
// the distance from point i-1 divided by the timestamp delta. A zero time
// delta is not special-cased: the IEEE result of the division propagates
// (+Inf, or NaN for a coincident pair), matching how the distance
// calculator treats non-finite input.
func Speeds(t *Track) ([]float64, error) {
	if !t.HasTime() {
		return nil, ErrMissingTimestamps
	}

	dist := pointDistances(t)
	speed := make([]float64, t.Len())
	for i := 1; i < len(speed); i++ {
		speed[i] = dist[i] / (t.Tstamp[i] - t.Tstamp[i-1])
	}
	return speed, nil
}
