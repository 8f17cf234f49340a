package geo

import (
	"math"
	"testing"
)

func TestNewDMSValidation(t *testing.T) {
	cases := []struct {
		name    string
		degrees int
		minutes int
		seconds float64
		bearing Bearing
		wantErr bool
	}{
		{"valid north", 51, 59, 5.9838, North, false},
		{"valid west zero degrees", 0, 58, 29.562, West, false},
		{"degrees negative", -1, 0, 0, North, true},
		{"degrees too large", 181, 0, 0, East, true},
		{"minutes too large", 10, 60, 0, North, true},
		{"seconds too large", 10, 10, 60.0, North, true},
		{"bad bearing", 10, 10, 10, Bearing('X'), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDMS(tc.degrees, tc.minutes, tc.seconds, tc.bearing)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewDMS(%d, %d, %g, %q) error = %v, wantErr %v",
					tc.degrees, tc.minutes, tc.seconds, string(tc.bearing), err, tc.wantErr)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	d, err := NewDMS(51, 59, 5.9838, North)
	if err != nil {
		t.Fatalf("NewDMS failed: %v", err)
	}

	if d.Degrees() != 51 {
		t.Errorf("Degrees() = %d, want 51", d.Degrees())
	}
	if d.Minutes() != 59 {
		t.Errorf("Minutes() = %d, want 59", d.Minutes())
	}
	if d.Seconds() != 5.9838 {
		t.Errorf("Seconds() = %g, want 5.9838", d.Seconds())
	}
	if d.Bearing() != North {
		t.Errorf("Bearing() = %q, want N", string(d.Bearing()))
	}
}

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		name    string
		decimal float64
		axis    Axis
		degrees int
		minutes int
		seconds float64
		bearing Bearing
	}{
		{"north", 51.9849955, Latitude, 51, 59, 5.9838, North},
		{"south", -51.9849955, Latitude, 51, 59, 5.9838, South},
		{"east", 0.9748783333, Longitude, 0, 58, 29.562, East},
		{"west", -0.9748783333, Longitude, 0, 58, 29.562, West},
		{"zero", 0, Latitude, 0, 0, 0, North},
		{"whole degrees", -3, Longitude, 3, 0, 0, West},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := FromDecimal(tc.decimal, tc.axis)
			if err != nil {
				t.Fatalf("FromDecimal(%g) failed: %v", tc.decimal, err)
			}
			if d.Degrees() != tc.degrees || d.Minutes() != tc.minutes {
				t.Errorf("FromDecimal(%g) = %v, want %d°%d'", tc.decimal, d, tc.degrees, tc.minutes)
			}
			if math.Abs(d.Seconds()-tc.seconds) > 1e-6 {
				t.Errorf("FromDecimal(%g) seconds = %.6f, want %.6f", tc.decimal, d.Seconds(), tc.seconds)
			}
			if d.Bearing() != tc.bearing {
				t.Errorf("FromDecimal(%g) bearing = %q, want %q", tc.decimal, string(d.Bearing()), string(tc.bearing))
			}
		})
	}
}

func TestFromDecimalRoundTrip(t *testing.T) {
	for _, dec := range []float64{51.9849955, -0.9748783333, 179.999, -0.0001} {
		d, err := FromDecimal(dec, Latitude)
		if err != nil {
			t.Fatalf("FromDecimal(%g) failed: %v", dec, err)
		}
		if got := d.DecimalDegrees(); math.Abs(got-dec) > 1e-9 {
			t.Errorf("round trip of %.10f = %.10f", dec, got)
		}
	}
}

func TestDecimalDegrees(t *testing.T) {
	cases := []struct {
		degrees int
		minutes int
		seconds float64
		bearing Bearing
		want    float64
	}{
		{51, 59, 5.9838, North, 51.9849955},
		{51, 59, 5.9838, South, -51.9849955},
		{0, 58, 29.562, West, -0.9748783333},
		{0, 58, 29.562, East, 0.9748783333},
	}

	for _, tc := range cases {
		d, err := NewDMS(tc.degrees, tc.minutes, tc.seconds, tc.bearing)
		if err != nil {
			t.Fatalf("NewDMS failed: %v", err)
		}
		if got := d.DecimalDegrees(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DecimalDegrees(%v) = %.10f, want %.10f", d, got, tc.want)
		}
	}
}
