package main

import (
	"errors"
	"math"
	"testing"
)

func TestSpeeds_KnownSpeed(t *testing.T) {
	track := &Track{
		Lat:    []float64{0, 1.1},
		Lon:    []float64{0, 1.1},
		Tstamp: []float64{0, 1000},
	}

	speed, err := Speeds(track)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(speed) != 2 {
		t.Fatalf("got %d speeds, want 2", len(speed))
	}
	if speed[0] != 0 {
		t.Errorf("speed[0]: got %v, want 0", speed[0])
	}
	// 172973.4 m over 1000 s.
	approxEqual(t, speed[1], 172.9734, 1e-3, "speed[1]")
}

func TestSpeeds_MissingTimestamps(t *testing.T) {
	track := &Track{
		Lat: []float64{0, 1.1},
		Lon: []float64{0, 1.1},
	}
	if _, err := Speeds(track); !errors.Is(err, ErrMissingTimestamps) {
		t.Errorf("got error %v, want ErrMissingTimestamps", err)
	}
}

func TestSpeeds_ZeroTimeDelta(t *testing.T) {
	// Duplicate timestamps are not special-cased: the division result
	// propagates as produced (+Inf for a positive distance, NaN for a
	// coincident pair).
	track := &Track{
		Lat:    []float64{0, 1.1, 1.1},
		Lon:    []float64{0, 1.1, 1.1},
		Tstamp: []float64{0, 0, 0},
	}

	speed, err := Speeds(track)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(speed[1], 1) {
		t.Errorf("speed[1]: got %v, want +Inf", speed[1])
	}
	if !math.IsNaN(speed[2]) {
		t.Errorf("speed[2]: got %v, want NaN", speed[2])
	}
}

func TestSpeeds_EmptyTrack(t *testing.T) {
	track := &Track{Tstamp: []float64{}}
	speed, err := Speeds(track)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(speed) != 0 {
		t.Errorf("got %d speeds, want 0", len(speed))
	}
}
