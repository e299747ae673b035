package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRecord is one exported row. The ele and time columns stay empty when
// the source track does not carry the channel, so a missing channel is
// distinguishable from sea level or the epoch; time is RFC3339 in the
// track's timezone.
type csvRecord struct {
	Lat  float64 `csv:"lat"`
	Lon  float64 `csv:"lon"`
	Ele  string  `csv:"ele"`
	Time string  `csv:"time"`
}

// writeCSV exports the track with lat,lon,ele,time columns. Values are
// trimmed the same way as the GPX output.
func writeCSV(path string, track *Track) error {
	records := make([]*csvRecord, track.Len())
	loc := track.Location()
	for i := range records {
		rec := &csvRecord{
			Lat: roundTo(track.Lat[i], 1e6),
			Lon: roundTo(track.Lon[i], 1e6),
		}
		if track.HasElevation() {
			rec.Ele = strconv.FormatFloat(roundTo(track.Ele[i], 1e6), 'f', -1, 64)
		}
		if track.HasTime() {
			rec.Time = timestampToTime(track.Tstamp[i], loc).Format(time.RFC3339)
		}
		records[i] = rec
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("error writing CSV file %s: %w", path, err)
	}
	return nil
}
