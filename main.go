package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
)

const outputSuffix = "_interpolated"

func main() {
	res := flag.Float64("res", 1.0, "interpolation resolution in meters (used when -num is 0)")
	num := flag.Int("num", 0, "interpolate to a fixed number of points (0 = use -res)")
	csvOut := flag.Bool("csv", false, "also write a CSV file next to the GPX output")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Println("Usage: gpx-interpolator [-res meters] [-num count] [-csv] <file1.gpx> [file2.gpx] ...")
		os.Exit(1)
	}

	opts := Options{Res: *res, Num: *num}

	var wg sync.WaitGroup
	bar := progressbar.Default(int64(len(files)), "interpolating")

	log.Printf("Starting interpolation for %d GPX file(s)...", len(files))

	for _, filePath := range files {
		wg.Add(1)

		go func(file string) {
			defer wg.Done()
			defer func() { _ = bar.Add(1) }()

			// Skip files this tool already produced.
			if strings.HasSuffix(strings.TrimSuffix(file, filepath.Ext(file)), outputSuffix) {
				log.Printf("Skipping %s (already interpolated)", file)
				return
			}

			if err := interpolateFile(file, opts, *csvOut); err != nil {
				log.Printf("Error interpolating %s: %v", file, err)
				return
			}
			log.Printf("Successfully interpolated %s", file)
		}(filePath)
	}

	wg.Wait()

	log.Println("All GPX files processed.")
}

// interpolateFile runs the pipeline for one file: parse, resample, write
// <name>_interpolated.gpx and optionally <name>_interpolated.csv.
func interpolateFile(path string, opts Options, withCSV bool) error {
	source, err := loadGPX(path)
	if err != nil {
		return err
	}

	track := trackFromGPX(source)

	result, err := Interpolate(track, opts)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))

	if err := writeGPXFile(base+outputSuffix+".gpx", trackToGPX(result, source)); err != nil {
		return err
	}
	if withCSV {
		if err := writeCSV(base+outputSuffix+".csv", result); err != nil {
			return err
		}
	}
	return nil
}
