package main

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrInvalidResolution is returned when resolution mode is selected
	// with a resolution that is not strictly positive.
	ErrInvalidResolution = errors.New("interpolation resolution must be > 0")
	// ErrInvalidCount is returned for a negative target point count.
	ErrInvalidCount = errors.New("interpolation point count must be >= 0")
)

// Options configures the resampling step. Res is the target spacing in
// meters and is used only when Num <= 0; Num > 0 requests a fixed number of
// output points instead.
type Options struct {
	Res float64
	Num int
}

// DefaultOptions returns the stock configuration: 1 meter resolution,
// count mode disabled.
func DefaultOptions() Options {
	return Options{Res: 1.0}
}

// Interpolate resamples the track onto points evenly spaced along its
// cumulative great-circle distance. Latitude, longitude and, when present,
// elevation and time are each fitted against the distance axis with a
// shape-preserving piecewise cubic Hermite interpolant (linear when only two
// distinct points remain) and evaluated at the new positions. The first and
// last output points equal the input's first and last points exactly.
//
// Consecutive duplicate points are removed first so the distance axis is
// strictly increasing. Tracks with at most one distinct point are returned
// as-is. The input track is never modified.
func Interpolate(t *Track, opts Options) (*Track, error) {
	if opts.Num < 0 {
		return nil, ErrInvalidCount
	}
	if opts.Num == 0 && opts.Res <= 0 {
		return nil, ErrInvalidResolution
	}

	src := RemoveDuplicates(t)
	if src.Len() <= 1 {
		return src, nil
	}

	axis, total := cumulativeDistances(pointDistances(src))
	target := sampleAxis(total, opts)

	out := &Track{TZ: src.TZ}
	out.Lat = resampleChannel(axis, src.Lat, target)
	out.Lon = resampleChannel(axis, src.Lon, target)
	if src.HasElevation() {
		out.Ele = resampleChannel(axis, src.Ele, target)
	}
	if src.HasTime() {
		// Time is a dependent channel of distance, which keeps elapsed
		// time monotonic and smooth even when source timestamps are
		// irregular.
		out.Tstamp = resampleChannel(axis, src.Tstamp, target)
	}
	return out, nil
}

// sampleAxis builds the target cumulative-distance positions: Num evenly
// spaced points in count mode, ceil(total/Res) in resolution mode, spanning
// [0, total] inclusive with the last position clamped to exactly total.
func sampleAxis(total float64, opts Options) []float64 {
	m := opts.Num
	if m <= 0 {
		m = int(math.Ceil(total / opts.Res))
	}

	axis := make([]float64, m)
	if m < 2 {
		return axis
	}
	step := total / float64(m-1)
	for i := range axis {
		axis[i] = float64(i) * step
	}
	axis[m-1] = total
	return axis
}

// resampleChannel fits y over x and evaluates the fit at every target
// position. The endpoints are copied verbatim from y so resampled channels
// start and end on the input values bit-for-bit.
func resampleChannel(x, y, target []float64) []float64 {
	out := make([]float64, len(target))
	if len(target) == 0 {
		return out
	}

	fit := newHermiteFit(x, y)
	for i, u := range target {
		out[i] = fit.eval(u)
	}

	out[0] = y[0]
	if len(out) > 1 {
		out[len(out)-1] = y[len(y)-1]
	}
	return out
}

// hermiteFit is a piecewise cubic Hermite interpolant over a strictly
// increasing axis. Knot slopes follow the shape-preserving Fritsch-Carlson
// scheme, so the fit does not overshoot between data points. With only two
// knots the slopes equal the secant and the fit reduces to linear
// interpolation.
type hermiteFit struct {
	x, y []float64
	m    []float64 // slope at each knot
}

func newHermiteFit(x, y []float64) *hermiteFit {
	n := len(x)
	h := make([]float64, n-1)     // knot spacing
	delta := make([]float64, n-1) // secant slopes
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		delta[i] = (y[i+1] - y[i]) / h[i]
	}

	m := make([]float64, n)
	if n == 2 {
		m[0], m[1] = delta[0], delta[0]
		return &hermiteFit{x: x, y: y, m: m}
	}

	// Interior slopes: weighted harmonic mean of the adjacent secants,
	// zero at local extrema (secant sign change).
	for i := 1; i < n-1; i++ {
		if delta[i-1]*delta[i] <= 0 {
			continue
		}
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		m[i] = (w1 + w2) / (w1/delta[i-1] + w2/delta[i])
	}

	m[0] = edgeSlope(h[0], h[1], delta[0], delta[1])
	m[n-1] = edgeSlope(h[n-2], h[n-3], delta[n-2], delta[n-3])

	return &hermiteFit{x: x, y: y, m: m}
}

// edgeSlope is the one-sided three-point estimate for an end slope, clamped
// so the end segment stays shape-preserving.
func edgeSlope(h0, h1, d0, d1 float64) float64 {
	s := ((2*h0+h1)*d0 - h0*d1) / (h0 + h1)
	if s*d0 <= 0 {
		return 0
	}
	if d0*d1 < 0 && math.Abs(s) > 3*math.Abs(d0) {
		return 3 * d0
	}
	return s
}

// eval evaluates the interpolant at u, clamping outside the knot range.
func (f *hermiteFit) eval(u float64) float64 {
	n := len(f.x)
	if u <= f.x[0] {
		return f.y[0]
	}
	if u >= f.x[n-1] {
		return f.y[n-1]
	}

	j := sort.SearchFloat64s(f.x, u) - 1
	if j < 0 {
		j = 0
	}
	if j > n-2 {
		j = n - 2
	}

	h := f.x[j+1] - f.x[j]
	s := (u - f.x[j]) / h
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*f.y[j] + h10*h*f.m[j] + h01*f.y[j+1] + h11*h*f.m[j+1]
}
