// Package vbo implements the VBOX flat-file data format: a typed channel and
// sample model and the serializer that renders it to the exact textual
// layout expected by downstream lap-timing and analysis tools.
package vbo

// ChannelName names one logged channel. The nine standard VBOX channels have
// fixed lowercase string forms; any other string is a device-specific custom
// channel and round-trips verbatim.
type ChannelName string

const (
	ChannelSatellites ChannelName = "satellites"
	ChannelTime       ChannelName = "time"
	ChannelLatitude   ChannelName = "latitude"
	ChannelLongitude  ChannelName = "longitude"
	ChannelVelocity   ChannelName = "velocity"
	ChannelHeading    ChannelName = "heading"
	ChannelHeight     ChannelName = "height"
	ChannelLongAccel  ChannelName = "long accel"
	ChannelLatAccel   ChannelName = "lat accel"
)

var standardNames = map[ChannelName]bool{
	ChannelSatellites: true,
	ChannelTime:       true,
	ChannelLatitude:   true,
	ChannelLongitude:  true,
	ChannelVelocity:   true,
	ChannelHeading:    true,
	ChannelHeight:     true,
	ChannelLongAccel:  true,
	ChannelLatAccel:   true,
}

// ParseChannelName maps a header string to a ChannelName. It never fails:
// unrecognised strings become custom channel names carrying the text
// verbatim, so ParseChannelName(s).String() == s for every s.
func ParseChannelName(s string) ChannelName { return ChannelName(s) }

func (n ChannelName) String() string { return string(n) }

// Standard reports whether the name is one of the nine standard VBOX
// channels rather than a device-specific custom channel.
func (n ChannelName) Standard() bool { return standardNames[n] }

// ChannelUnit is the unit annotation of a channel header line. Units outside
// the standard set round-trip verbatim as custom units.
type ChannelUnit string

const (
	UnitKmh ChannelUnit = "kmh"
	UnitG   ChannelUnit = "g"

	// UnitNone marks a channel with no unit annotation.
	UnitNone ChannelUnit = ""
)

// ParseChannelUnit maps a unit string to a ChannelUnit; like channel names,
// unrecognised units are carried verbatim and parsing never fails.
func ParseChannelUnit(s string) ChannelUnit { return ChannelUnit(s) }

func (u ChannelUnit) String() string { return string(u) }

// Standard reports whether the unit is one of the standard VBOX units.
func (u ChannelUnit) Standard() bool { return u == UnitKmh || u == UnitG }

// Channel is a named column of the data section with an optional unit.
// Channels are immutable once added to a Document.
type Channel struct {
	Name ChannelName
	Unit ChannelUnit
}

// NewChannel returns a channel with no unit annotation.
func NewChannel(name ChannelName) Channel {
	return Channel{Name: name, Unit: UnitNone}
}

// NewChannelWithUnit returns a channel annotated with a unit.
func NewChannelWithUnit(name ChannelName, unit ChannelUnit) Channel {
	return Channel{Name: name, Unit: unit}
}

// String renders the channel as its `[header]` line: the name, and the unit
// separated by a single space when present.
func (c Channel) String() string {
	if c.Unit == UnitNone {
		return string(c.Name)
	}
	return string(c.Name) + " " + string(c.Unit)
}
