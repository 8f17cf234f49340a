// Package geo provides the degrees/minutes/seconds coordinate type used by
// the VBOX channel formatting and the NMEA ingest path.
package geo

import "fmt"

// Bearing is the hemisphere indicator of a DMS coordinate.
type Bearing byte

const (
	North Bearing = 'N'
	South Bearing = 'S'
	East  Bearing = 'E'
	West  Bearing = 'W'
)

func (b Bearing) valid() bool {
	return b == North || b == South || b == East || b == West
}

// DMS is a geographic coordinate in degrees, minutes and seconds with a
// hemisphere bearing. The zero value is 0°0'0" N.
type DMS struct {
	degrees int
	minutes int
	seconds float64
	bearing Bearing
}

// NewDMS validates the components and returns a DMS coordinate. Degrees must
// be in 0..180, minutes in 0..59, seconds in [0, 60) and the bearing one of
// N, S, E or W.
func NewDMS(degrees, minutes int, seconds float64, bearing Bearing) (DMS, error) {
	switch {
	case degrees < 0 || degrees > 180:
		return DMS{}, fmt.Errorf("geo: degrees out of range: %d", degrees)
	case minutes < 0 || minutes > 59:
		return DMS{}, fmt.Errorf("geo: minutes out of range: %d", minutes)
	case seconds < 0 || seconds >= 60:
		return DMS{}, fmt.Errorf("geo: seconds out of range: %g", seconds)
	case !bearing.valid():
		return DMS{}, fmt.Errorf("geo: invalid bearing %q", string(bearing))
	}
	return DMS{degrees: degrees, minutes: minutes, seconds: seconds, bearing: bearing}, nil
}

// Axis selects which bearing pair a signed decimal coordinate maps onto.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

// FromDecimal splits signed decimal degrees into DMS components. Negative
// values fall in the southern or western hemisphere of the given axis.
func FromDecimal(degrees float64, axis Axis) (DMS, error) {
	bearing := North
	if axis == Longitude {
		bearing = East
	}
	if degrees < 0 {
		degrees = -degrees
		if axis == Longitude {
			bearing = West
		} else {
			bearing = South
		}
	}

	whole := int(degrees)
	rem := (degrees - float64(whole)) * 60
	minutes := int(rem)
	seconds := (rem - float64(minutes)) * 60
	// Floating point error can push the remainder up to the next unit.
	if seconds >= 60 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		whole++
	}
	return NewDMS(whole, minutes, seconds, bearing)
}

// Degrees returns the whole degrees component.
func (d DMS) Degrees() int { return d.degrees }

// Minutes returns the whole minutes component.
func (d DMS) Minutes() int { return d.minutes }

// Seconds returns the fractional seconds component.
func (d DMS) Seconds() float64 { return d.seconds }

// Bearing returns the hemisphere indicator.
func (d DMS) Bearing() Bearing { return d.bearing }

// DecimalDegrees returns the coordinate as signed decimal degrees, negative
// for the southern and western hemispheres.
func (d DMS) DecimalDegrees() float64 {
	dec := float64(d.degrees) + float64(d.minutes)/60 + d.seconds/3600
	if d.bearing == South || d.bearing == West {
		dec = -dec
	}
	return dec
}

// String renders the coordinate as e.g. `51°59'5.98" N`.
func (d DMS) String() string {
	return fmt.Sprintf("%d°%d'%.2f\" %s", d.degrees, d.minutes, d.seconds, string(d.bearing))
}
