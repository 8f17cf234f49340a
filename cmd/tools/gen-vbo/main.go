// Command gen-vbo generates a synthetic VBOX data file for testing export
// consumers and replay tooling.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"time"

	"github.com/banshee-data/vbo/internal/geo"
	"github.com/banshee-data/vbo/internal/vbo"
)

var (
	output = flag.String("o", "sample.vbo", "output path")
	rows   = flag.Int("n", 100, "number of sample rows")
	check  = flag.Bool("check", false, "re-parse the generated file and report its shape")
)

func main() {
	flag.Parse()

	doc, err := synthesize(*rows)
	if err != nil {
		log.Fatalf("failed to build document: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *output, err)
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		log.Fatalf("failed to write %s: %v", *output, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("failed to close %s: %v", *output, err)
	}
	log.Printf("wrote %s (%d rows)", *output, *rows)

	if *check {
		runCheck(*output)
	}
}

// synthesize builds a run around a fixed start point with a gentle
// acceleration up to cruising speed while the heading sweeps a circle.
func synthesize(rows int) (*vbo.Document, error) {
	doc := vbo.NewDocument()
	doc.SetCreationTime(time.Now().UTC())
	doc.SetComment("synthetic run generated by gen-vbo")

	channels := []vbo.Channel{
		vbo.NewChannel(vbo.ChannelSatellites),
		vbo.NewChannel(vbo.ChannelTime),
		vbo.NewChannel(vbo.ChannelLatitude),
		vbo.NewChannel(vbo.ChannelLongitude),
		vbo.NewChannelWithUnit(vbo.ChannelVelocity, vbo.UnitKmh),
		vbo.NewChannel(vbo.ChannelHeading),
		vbo.NewChannel(vbo.ChannelHeight),
	}
	for _, c := range channels {
		if err := doc.AddChannel(c); err != nil {
			return nil, err
		}
	}

	start := 10 * 3600 * 100 // 10:00:00.00
	for i := 0; i < rows; i++ {
		clock, err := vbo.TimeSinceMidnight(start + i*10)
		if err != nil {
			return nil, err
		}
		lat, err := geo.FromDecimal(51.985+float64(i)*1e-5, geo.Latitude)
		if err != nil {
			return nil, err
		}
		lon, err := geo.FromDecimal(-0.9749-float64(i)*1e-5, geo.Longitude)
		if err != nil {
			return nil, err
		}

		speed := 120 * (1 - math.Exp(-float64(i)/20))
		heading := math.Mod(float64(i)*3.6, 360)

		doc.AddSample([]vbo.ChannelValue{
			vbo.Satellites(9),
			clock,
			vbo.Coordinates{DMS: lat},
			vbo.Coordinates{DMS: lon},
			vbo.Velocity(speed),
			vbo.Heading(heading),
			vbo.Height(155 + math.Sin(float64(i)/10)*3),
		})
	}
	return doc, nil
}

func runCheck(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("check: failed to open %s: %v", path, err)
	}
	defer f.Close()

	parsed, err := vbo.Parse(f)
	if err != nil {
		log.Fatalf("check: failed to parse %s: %v", path, err)
	}
	log.Printf("check: %d channels, %d rows, created %s",
		len(parsed.Channels), len(parsed.Rows), parsed.CreatedAt.Format(time.RFC3339))
}
