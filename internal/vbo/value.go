package vbo

import (
	"fmt"
	"time"

	"github.com/banshee-data/vbo/internal/geo"
)

// ChannelValue is one recorded value of a sample row. Each kind carries its
// own fixed-width rendering rule; the rendered forms are consumed by
// downstream tooling that expects this literal layout, so widths, signs and
// zero padding are part of the contract.
//
// A value knows nothing about the channel it belongs to. Keeping a row's
// values aligned with the document's channel list is the caller's job.
type ChannelValue interface {
	// Format renders the value in its fixed-width textual form.
	Format() (string, error)
}

// Satellites is the number of satellites in use. Loggers add 64 when the
// brake trigger input is active and 128 when a DGPS correction is in use,
// e.g. 137 = 128 (DGPS) + 9 satellites.
type Satellites uint8

// Format renders the count zero-padded to three digits, e.g. "003".
func (s Satellites) Format() (string, error) {
	return fmt.Sprintf("%03d", uint8(s)), nil
}

// Time is a UTC time of day with centisecond resolution, rendered as
// HHMMSS.ss with no separators.
type Time struct {
	hour, minute, second, centis int
}

// NewTime validates the clock components and returns a Time. Centis is
// hundredths of a second in 0..99.
func NewTime(hour, minute, second, centis int) (Time, error) {
	switch {
	case hour < 0 || hour > 23:
		return Time{}, fmt.Errorf("vbo: hour out of range: %d", hour)
	case minute < 0 || minute > 59:
		return Time{}, fmt.Errorf("vbo: minute out of range: %d", minute)
	case second < 0 || second > 59:
		return Time{}, fmt.Errorf("vbo: second out of range: %d", second)
	case centis < 0 || centis > 99:
		return Time{}, fmt.Errorf("vbo: centiseconds out of range: %d", centis)
	}
	return Time{hour: hour, minute: minute, second: second, centis: centis}, nil
}

// ClockTime extracts the time of day from t, truncating sub-second
// precision to centiseconds.
func ClockTime(t time.Time) Time {
	return Time{
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		centis: t.Nanosecond() / 10_000_000,
	}
}

// TimeSinceMidnight rebuilds a Time from centiseconds since midnight, the
// representation the sample store persists.
func TimeSinceMidnight(centis int) (Time, error) {
	if centis < 0 || centis >= 24*360000 {
		return Time{}, fmt.Errorf("vbo: centiseconds since midnight out of range: %d", centis)
	}
	return Time{
		hour:   centis / 360000,
		minute: centis / 6000 % 60,
		second: centis / 100 % 60,
		centis: centis % 100,
	}, nil
}

// SinceMidnight returns the time of day as centiseconds since midnight.
func (t Time) SinceMidnight() int {
	return ((t.hour*60+t.minute)*60+t.second)*100 + t.centis
}

// Format renders the time of day as HHMMSS.ss, e.g. "170538.19".
func (t Time) Format() (string, error) {
	return fmt.Sprintf("%02d%02d%02d.%02d", t.hour, t.minute, t.second, t.centis), nil
}

// Coordinates is a latitude or longitude expressed in degrees, minutes and
// seconds with a hemisphere bearing.
type Coordinates struct {
	geo.DMS
}

// decimalMinutes converts a DMS coordinate into the minutes-only
// representation used by the VBOX format. Positive values are north or west
// of the origin: the N/W-positive sign is a deliberate convention of the
// format, not the usual E-positive longitude sign.
func decimalMinutes(d geo.DMS) float64 {
	minutes := float64(d.Degrees())*60 + float64(d.Minutes()) + d.Seconds()/60
	if b := d.Bearing(); b == geo.South || b == geo.East {
		minutes = -minutes
	}
	return minutes
}

// Format renders signed decimal minutes zero-padded to a total width of 13
// with six fractional digits, e.g. "+03119.099730".
func (c Coordinates) Format() (string, error) {
	return fmt.Sprintf("%+013.6f", decimalMinutes(c.DMS)), nil
}

// Velocity is speed over ground in km/h.
type Velocity float64

// Format renders the speed zero-padded to width 7 with three fractional
// digits and no sign, e.g. "058.493".
func (v Velocity) Format() (string, error) {
	return fmt.Sprintf("%07.3f", float64(v)), nil
}

// Heading is the course over ground in degrees from true north.
type Heading float64

// Format renders the heading zero-padded to width 6 with two fractional
// digits and no sign, e.g. "039.40".
func (h Heading) Format() (string, error) {
	return fmt.Sprintf("%06.2f", float64(h)), nil
}

// Height is altitude in metres above sea level on the WGS84 model.
type Height float64

// Format renders the height with an explicit sign, zero-padded to width 8
// with two fractional digits, e.g. "+0155.06".
func (h Height) Format() (string, error) {
	return fmt.Sprintf("%+08.2f", float64(h)), nil
}
