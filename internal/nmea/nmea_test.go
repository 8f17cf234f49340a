package nmea

import (
	"math"
	"testing"

	"github.com/banshee-data/vbo/internal/geo"
)

const (
	ggaFixture = "$GPGGA,170538.19,5159.09973,N,00058.49270,W,1,09,0.9,155.06,M,47.0,M,,*43"
	rmcFixture = "$GPRMC,170538.19,A,5159.09973,N,00058.49270,W,31.585,039.40,060122,,,A*46"
	rmcVoid    = "$GPRMC,104530.00,V,,,,,,,060122,,,N*79"
)

func feedFix(t *testing.T, lines ...string) (Fix, bool) {
	t.Helper()
	var acc Accumulator
	var fix Fix
	var ok bool
	for _, line := range lines {
		var err error
		fix, ok, err = acc.Feed(line)
		if err != nil {
			t.Fatalf("Feed(%q) failed: %v", line, err)
		}
	}
	return fix, ok
}

func TestAccumulatorMergesRMCAndGGA(t *testing.T) {
	fix, ok := feedFix(t, rmcFixture, ggaFixture)
	if !ok {
		t.Fatal("expected a completed fix after RMC then GGA")
	}

	if fix.Satellites != 9 {
		t.Errorf("Satellites = %d, want 9", fix.Satellites)
	}
	if got, _ := fix.Time.Format(); got != "170538.19" {
		t.Errorf("Time = %q, want 170538.19", got)
	}

	lat := fix.Latitude
	if lat.Degrees() != 51 || lat.Minutes() != 59 || lat.Bearing() != geo.North {
		t.Errorf("Latitude = %v, want 51°59' N", lat)
	}
	if math.Abs(lat.Seconds()-5.9838) > 1e-6 {
		t.Errorf("Latitude seconds = %.6f, want 5.9838", lat.Seconds())
	}

	lon := fix.Longitude
	if lon.Degrees() != 0 || lon.Minutes() != 58 || lon.Bearing() != geo.West {
		t.Errorf("Longitude = %v, want 0°58' W", lon)
	}
	if math.Abs(lon.Seconds()-29.562) > 1e-6 {
		t.Errorf("Longitude seconds = %.6f, want 29.562", lon.Seconds())
	}

	// 31.585 knots over ground.
	if math.Abs(fix.VelocityKmh-58.49542) > 1e-9 {
		t.Errorf("VelocityKmh = %.6f, want 58.49542", fix.VelocityKmh)
	}
	if fix.Heading != 39.40 {
		t.Errorf("Heading = %.2f, want 39.40", fix.Heading)
	}
	if fix.Height != 155.06 {
		t.Errorf("Height = %.2f, want 155.06", fix.Height)
	}
}

func TestAccumulatorWaitsForRMC(t *testing.T) {
	if _, ok := feedFix(t, ggaFixture); ok {
		t.Error("GGA alone should not complete a fix")
	}
	if _, ok := feedFix(t, rmcVoid, ggaFixture); ok {
		t.Error("a void RMC should not complete a fix")
	}
}

func TestFeedIgnoresOtherSentences(t *testing.T) {
	var acc Accumulator
	_, ok, err := acc.Feed("$GPTXT,01,01,02,u-blox ag - www.u-blox.com*50")
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if ok {
		t.Error("unrelated sentence should not complete a fix")
	}
}

func TestFeedRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"no dollar", "GPGGA,170538.19,5159.09973,N,00058.49270,W,1,09,0.9,155.06,M,47.0,M,,*43"},
		{"no checksum", "$GPGGA,170538.19,5159.09973,N,00058.49270,W,1,09,0.9,155.06,M,47.0,M,,"},
		{"wrong checksum", "$GPGGA,170538.19,5159.09973,N,00058.49270,W,1,09,0.9,155.06,M,47.0,M,,*00"},
		{"short GGA", "$GPGGA,170538.19*54"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var acc Accumulator
			if _, _, err := acc.Feed(tc.line); err == nil {
				t.Errorf("Feed(%q) should have failed", tc.line)
			}
		})
	}
}

// Fractions whose binary float representation sits just below the exact
// value must still parse to the written digits, not one centisecond low.
func TestParseClockKeepsFractionDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"170538.29", "170538.29"},
		{"170538.58", "170538.58"},
		{"170538.57", "170538.57"},
		{"170538.19", "170538.19"},
		{"104530.00", "104530.00"},
		{"104530", "104530.00"},
		{"104530.5", "104530.50"},
		{"104530.199", "104530.19"},
	}

	for _, tc := range cases {
		clock, err := parseClock(tc.input)
		if err != nil {
			t.Fatalf("parseClock(%q) failed: %v", tc.input, err)
		}
		got, err := clock.Format()
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("parseClock(%q) renders %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseClockRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "1705", "1705381.9", "17053x.19", "170538.x9"} {
		if _, err := parseClock(input); err == nil {
			t.Errorf("parseClock(%q) should have failed", input)
		}
	}
}

func TestRowMatchesChannels(t *testing.T) {
	fix, ok := feedFix(t, rmcFixture, ggaFixture)
	if !ok {
		t.Fatal("expected a completed fix")
	}

	channels := Channels()
	row := fix.Row()
	if len(row) != len(channels) {
		t.Fatalf("row has %d values for %d channels", len(row), len(channels))
	}

	want := []string{"009", "170538.19", "+03119.099730", "+00058.492700", "058.495", "039.40", "+0155.06"}
	for i, v := range row {
		got, err := v.Format()
		if err != nil {
			t.Fatalf("Format failed for column %s: %v", channels[i].Name, err)
		}
		if got != want[i] {
			t.Errorf("column %s = %q, want %q", channels[i].Name, got, want[i])
		}
	}
}
