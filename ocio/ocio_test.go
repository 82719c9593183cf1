// seehuhn.de/go/color - colour space conversions and gamut mapping
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ocio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSVValues(t *testing.T) {
	cases := []struct {
		rgb  [3]float64
		want [3]float64
	}{
		{[3]float64{1, 0, 0}, [3]float64{0, 1, 1}},
		{[3]float64{0, 1, 0}, [3]float64{1.0 / 3, 1, 1}},
		{[3]float64{0, 0, 1}, [3]float64{2.0 / 3, 1, 1}},
		{[3]float64{1, 1, 1}, [3]float64{0, 0, 1}},
		{[3]float64{0.5, 0.5, 0}, [3]float64{1.0 / 6, 1, 0.5}},
	}
	for _, c := range cases {
		got := RGBToHSV(c.rgb)
		for i := range 3 {
			assert.InDelta(t, c.want[i], got[i], 1e-9, "rgb=%v i=%d", c.rgb, i)
		}
	}
}

// TestRGBHSVRoundTrip converts a grid of RGB colours, including
// colours with negative components, to HSV and back.
func TestRGBHSVRoundTrip(t *testing.T) {
	for r := -20; r <= 20; r++ {
		for g := -20; g <= 20; g++ {
			for b := -20; b <= 20; b++ {
				rgb := [3]float64{float64(r), float64(g), float64(b)}
				hsv := RGBToHSV(rgb)
				if hsv[2] == 0 {
					// colours which collapse to value 0 cannot be
					// recovered
					continue
				}
				got := HSVToRGB(hsv)
				for i := range 3 {
					if math.Abs(rgb[i]-got[i]) > 1e-6 {
						t.Fatalf("rgb=%v: got %v via hsv=%v", rgb, got, hsv)
					}
				}
			}
		}
	}
}

func TestXYZToUVYWhite(t *testing.T) {
	// D65 white has chromaticity u'=0.1978, v'=0.4683.
	uvy := XYZToUVY([3]float64{0.9505, 1, 1.089})
	assert.InDelta(t, 0.1978, uvy[0], 1e-4)
	assert.InDelta(t, 0.4683, uvy[1], 1e-4)
	assert.Equal(t, 1.0, uvy[2])
}

func TestXYZUVYRoundTrip(t *testing.T) {
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			for z := -20; z <= 20; z++ {
				xyz := [3]float64{float64(x), float64(y), float64(z)}
				uvy := XYZToUVY(xyz)
				if uvy[1] == 0 {
					continue
				}
				got := UVYToXYZ(uvy)
				for i := range 3 {
					if math.Abs(xyz[i]-got[i]) > 1e-6 {
						t.Fatalf("xyz=%v: got %v via uvy=%v", xyz, got, uvy)
					}
				}
			}
		}
	}
}

func TestZeroInputs(t *testing.T) {
	assert.Equal(t, [3]float64{0, 0, 0}, XYZToUVY([3]float64{0, 0, 0}))
	assert.Equal(t, [3]float64{0, 0, 0}, UVYToXYZ([3]float64{0, 0, 0}))
	assert.Equal(t, [3]float64{0, 0, 0}, RGBToHSV([3]float64{0, 0, 0}))
	assert.Equal(t, [3]float64{0, 0, 0}, HSVToRGB([3]float64{0, 0, 0}))
}
