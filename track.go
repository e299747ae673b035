package main

import "time"

// Track holds a GPS track as parallel channels. Lat and Lon are always
// co-present and of equal length. Ele and Tstamp are optional: a nil slice
// means the channel is absent from the source data, a non-nil slice has one
// entry per point. TZ is metadata reattached to output timestamps; it does
// not affect any computation. A zero-value Track is a valid empty track.
type Track struct {
	Lat    []float64 // degrees
	Lon    []float64 // degrees
	Ele    []float64 // meters, nil when absent
	Tstamp []float64 // seconds since epoch, nil when absent
	TZ     *time.Location
}

func (t *Track) Len() int { return len(t.Lat) }

func (t *Track) HasElevation() bool { return t.Ele != nil }

func (t *Track) HasTime() bool { return t.Tstamp != nil }

// Location returns the timezone to attach to output timestamps (UTC when
// the source carried none).
func (t *Track) Location() *time.Location {
	if t.TZ == nil {
		return time.UTC
	}
	return t.TZ
}

// selectIndices builds a fresh track from the given point indices, filtering
// every present channel by the same index set. The receiver is not modified.
func (t *Track) selectIndices(keep []int) *Track {
	out := &Track{
		Lat: make([]float64, len(keep)),
		Lon: make([]float64, len(keep)),
		TZ:  t.TZ,
	}
	if t.HasElevation() {
		out.Ele = make([]float64, len(keep))
	}
	if t.HasTime() {
		out.Tstamp = make([]float64, len(keep))
	}
	for i, idx := range keep {
		out.Lat[i] = t.Lat[idx]
		out.Lon[i] = t.Lon[idx]
		if out.Ele != nil {
			out.Ele[i] = t.Ele[idx]
		}
		if out.Tstamp != nil {
			out.Tstamp[i] = t.Tstamp[idx]
		}
	}
	return out
}
