package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// loadGPX reads and parses a GPX file.
func loadGPX(path string) (*gpx.GPX, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading GPX file %s: %w", path, err)
	}
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing GPX file %s: %w", path, err)
	}
	return doc, nil
}

// trackFromGPX flattens every track segment of the document into a single
// point sequence. The elevation channel is present only when every point
// carries a valid elevation, and the timestamp channel only when every point
// carries a timestamp; the first timestamp's location is kept as the track
// timezone.
func trackFromGPX(doc *gpx.GPX) *Track {
	track := &Track{}
	hasEle, hasTime := true, true
	var ele, tstamp []float64

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				track.Lat = append(track.Lat, p.Latitude)
				track.Lon = append(track.Lon, p.Longitude)

				if p.Elevation.NotNull() {
					ele = append(ele, p.Elevation.Value())
				} else {
					hasEle = false
				}

				if !p.Timestamp.IsZero() {
					tstamp = append(tstamp, float64(p.Timestamp.UnixNano())/1e9)
					if track.TZ == nil {
						track.TZ = p.Timestamp.Location()
					}
				} else {
					hasTime = false
				}
			}
		}
	}

	if hasEle && track.Len() > 0 {
		track.Ele = ele
	}
	if hasTime && track.Len() > 0 {
		track.Tstamp = tstamp
	}
	return track
}

// trackToGPX builds a single-track, single-segment GPX document from the
// track. Metadata is carried over from the source document when one is
// given. Coordinates and elevations are trimmed to 1e-6 and timestamps to
// hundredths of a second; the engine output itself is left untouched.
func trackToGPX(track *Track, source *gpx.GPX) *gpx.GPX {
	doc := &gpx.GPX{}
	doc.Creator = "gpx-interpolator"
	if source != nil {
		doc.Version = source.Version
		doc.Name = source.Name
		doc.Description = source.Description
		doc.AuthorName = source.AuthorName
		doc.Copyright = source.Copyright
		doc.CopyrightYear = source.CopyrightYear
		doc.CopyrightLicense = source.CopyrightLicense
		doc.Link = source.Link
		doc.LinkText = source.LinkText
		doc.Time = source.Time
		doc.Keywords = source.Keywords
	}

	doc.Tracks = append(doc.Tracks, gpx.GPXTrack{})
	doc.Tracks[0].Segments = append(doc.Tracks[0].Segments, gpx.GPXTrackSegment{})
	points := &doc.Tracks[0].Segments[0].Points

	loc := track.Location()
	for i := 0; i < track.Len(); i++ {
		var p gpx.GPXPoint
		p.Latitude = roundTo(track.Lat[i], 1e6)
		p.Longitude = roundTo(track.Lon[i], 1e6)
		if track.HasElevation() {
			p.Elevation = *gpx.NewNullableFloat64(roundTo(track.Ele[i], 1e6))
		}
		if track.HasTime() {
			p.Timestamp = timestampToTime(track.Tstamp[i], loc)
		}
		*points = append(*points, p)
	}

	return doc
}

// writeGPXFile serializes the document as indented GPX 1.1.
func writeGPXFile(path string, doc *gpx.GPX) error {
	xmlBytes, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("error converting GPX to XML for %s: %w", path, err)
	}
	if err := os.WriteFile(path, xmlBytes, 0644); err != nil {
		return fmt.Errorf("error writing GPX file %s: %w", path, err)
	}
	return nil
}

// roundTo rounds x to the given inverse precision (1e6 keeps six decimals).
func roundTo(x, scale float64) float64 {
	return math.Round(x*scale) / scale
}

// timestampToTime converts POSIX seconds to a wall-clock time in loc,
// trimmed to hundredths of a second.
func timestampToTime(tstamp float64, loc *time.Location) time.Time {
	sec := roundTo(tstamp, 1e2)
	return time.Unix(0, int64(sec*1e9)).In(loc)
}
