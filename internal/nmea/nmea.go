// Package nmea parses the NMEA 0183 sentences emitted by consumer GPS
// receivers (GGA and RMC) and assembles them into position fixes aligned
// with the standard VBOX channel set.
package nmea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/banshee-data/vbo/internal/geo"
	"github.com/banshee-data/vbo/internal/units"
	"github.com/banshee-data/vbo/internal/vbo"
)

// Fix is one GPS position fix merged from a GGA/RMC sentence pair.
type Fix struct {
	Time        vbo.Time
	Latitude    geo.DMS
	Longitude   geo.DMS
	Satellites  uint8
	VelocityKmh float64
	Heading     float64
	Height      float64
}

// Channels returns the channel list matching the rows produced by Fix.Row,
// in column order.
func Channels() []vbo.Channel {
	return []vbo.Channel{
		vbo.NewChannel(vbo.ChannelSatellites),
		vbo.NewChannel(vbo.ChannelTime),
		vbo.NewChannel(vbo.ChannelLatitude),
		vbo.NewChannel(vbo.ChannelLongitude),
		vbo.NewChannelWithUnit(vbo.ChannelVelocity, vbo.UnitKmh),
		vbo.NewChannel(vbo.ChannelHeading),
		vbo.NewChannel(vbo.ChannelHeight),
	}
}

// Row converts the fix into one sample row in the order of Channels.
func (f *Fix) Row() []vbo.ChannelValue {
	return []vbo.ChannelValue{
		vbo.Satellites(f.Satellites),
		f.Time,
		vbo.Coordinates{DMS: f.Latitude},
		vbo.Coordinates{DMS: f.Longitude},
		vbo.Velocity(f.VelocityKmh),
		vbo.Heading(f.Heading),
		vbo.Height(f.Height),
	}
}

// Accumulator merges a serial stream of sentences into fixes. GGA carries
// position, satellite count and altitude; RMC carries speed and course. A
// fix is emitted on each GGA once at least one valid RMC has been seen, so
// speed and course may lag position by one receiver cycle.
type Accumulator struct {
	cur    Fix
	hasRMC bool
}

// Feed consumes one line. It returns the completed fix and true when the
// line finishes a fix. Sentence types other than GGA and RMC are ignored
// without error.
func (a *Accumulator) Feed(line string) (Fix, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Fix{}, false, nil
	}

	f, err := sentenceFields(line)
	if err != nil {
		return Fix{}, false, err
	}
	if len(f) == 0 {
		return Fix{}, false, fmt.Errorf("nmea: empty sentence %q", line)
	}

	// Field 0 is the talker+type, e.g. GPGGA, GNRMC.
	switch {
	case strings.HasSuffix(f[0], "GGA"):
		if err := a.feedGGA(f); err != nil {
			return Fix{}, false, err
		}
		if !a.hasRMC {
			return Fix{}, false, nil
		}
		return a.cur, true, nil
	case strings.HasSuffix(f[0], "RMC"):
		if err := a.feedRMC(f); err != nil {
			return Fix{}, false, err
		}
		return Fix{}, false, nil
	}
	return Fix{}, false, nil
}

// GGA: time, lat, N/S, lon, E/W, quality, satellites, hdop, altitude, ...
func (a *Accumulator) feedGGA(f []string) error {
	if len(f) < 10 {
		return fmt.Errorf("nmea: short GGA sentence (%d fields)", len(f))
	}

	clock, err := parseClock(f[1])
	if err != nil {
		return err
	}
	lat, err := parseCoord(f[2], f[3])
	if err != nil {
		return err
	}
	lon, err := parseCoord(f[4], f[5])
	if err != nil {
		return err
	}
	sats, err := strconv.ParseUint(f[7], 10, 8)
	if err != nil {
		return fmt.Errorf("nmea: satellites %q: %w", f[7], err)
	}
	alt, err := strconv.ParseFloat(f[9], 64)
	if err != nil {
		return fmt.Errorf("nmea: altitude %q: %w", f[9], err)
	}

	a.cur.Time = clock
	a.cur.Latitude = lat
	a.cur.Longitude = lon
	a.cur.Satellites = uint8(sats)
	a.cur.Height = alt
	return nil
}

// RMC: time, status, lat, N/S, lon, E/W, speed (knots), course, date, ...
func (a *Accumulator) feedRMC(f []string) error {
	if len(f) < 9 {
		return fmt.Errorf("nmea: short RMC sentence (%d fields)", len(f))
	}
	if f[2] != "A" {
		// Void fix; keep the previous speed and course.
		return nil
	}

	speed, err := strconv.ParseFloat(f[7], 64)
	if err != nil {
		return fmt.Errorf("nmea: speed %q: %w", f[7], err)
	}
	course, err := strconv.ParseFloat(f[8], 64)
	if err != nil {
		return fmt.Errorf("nmea: course %q: %w", f[8], err)
	}

	a.cur.VelocityKmh = units.KnotsToKmh(speed)
	a.cur.Heading = course
	a.hasRMC = true
	return nil
}

// sentenceFields validates the framing and checksum of a sentence and
// returns its comma-separated fields.
func sentenceFields(line string) ([]string, error) {
	if !strings.HasPrefix(line, "$") {
		return nil, fmt.Errorf("nmea: missing $ in %q", line)
	}
	body := line[1:]

	star := strings.LastIndexByte(body, '*')
	if star < 0 || len(body)-star != 3 {
		return nil, fmt.Errorf("nmea: missing checksum in %q", line)
	}
	want, err := strconv.ParseUint(body[star+1:], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("nmea: bad checksum field in %q: %w", line, err)
	}
	body = body[:star]

	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	if sum != byte(want) {
		return nil, fmt.Errorf("nmea: checksum mismatch in %q: have %02X, want %02X", line, sum, want)
	}

	return strings.Split(body, ","), nil
}

// parseClock converts hhmmss[.sss] to a time-of-day value, truncating the
// fraction to centiseconds.
func parseClock(s string) (vbo.Time, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if len(whole) != 6 {
		return vbo.Time{}, fmt.Errorf("nmea: bad clock %q", s)
	}

	hh, err1 := strconv.Atoi(whole[0:2])
	mm, err2 := strconv.Atoi(whole[2:4])
	ss, err3 := strconv.Atoi(whole[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return vbo.Time{}, fmt.Errorf("nmea: bad clock %q", s)
	}

	// The fraction is truncated to centiseconds digit-wise; going through a
	// binary float would render exact two-digit fractions like ".29" one
	// centisecond low.
	centis := 0
	if frac != "" {
		digits := frac
		if len(digits) > 2 {
			digits = digits[:2]
		}
		for len(digits) < 2 {
			digits += "0"
		}
		c, err := strconv.Atoi(digits)
		if err != nil {
			return vbo.Time{}, fmt.Errorf("nmea: bad clock fraction %q", s)
		}
		centis = c
	}

	t, err := vbo.NewTime(hh, mm, ss, centis)
	if err != nil {
		return vbo.Time{}, fmt.Errorf("nmea: clock %q: %w", s, err)
	}
	return t, nil
}

// parseCoord converts the ddmm.mmmm (latitude) or dddmm.mmmm (longitude)
// representation and its hemisphere field to a DMS coordinate. Latitude
// carries two degree digits, longitude three; the hemisphere field tells
// them apart.
func parseCoord(value, hemi string) (geo.DMS, error) {
	if len(hemi) != 1 {
		return geo.DMS{}, fmt.Errorf("nmea: bad hemisphere %q", hemi)
	}
	bearing := geo.Bearing(hemi[0])

	degDigits := 3
	if bearing == geo.North || bearing == geo.South {
		degDigits = 2
	}
	if len(value) < degDigits+2 {
		return geo.DMS{}, fmt.Errorf("nmea: coordinate %q too short", value)
	}

	deg, err := strconv.Atoi(value[:degDigits])
	if err != nil {
		return geo.DMS{}, fmt.Errorf("nmea: coordinate degrees %q: %w", value, err)
	}
	minF, err := strconv.ParseFloat(value[degDigits:], 64)
	if err != nil {
		return geo.DMS{}, fmt.Errorf("nmea: coordinate minutes %q: %w", value, err)
	}

	min := int(minF)
	sec := (minF - float64(min)) * 60

	d, err := geo.NewDMS(deg, min, sec, bearing)
	if err != nil {
		return geo.DMS{}, fmt.Errorf("nmea: coordinate %q %s: %w", value, hemi, err)
	}
	return d, nil
}
