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

package gamut

import (
	"math"
	"testing"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name       string
		from, to   [3]float64
		useCeiling bool
		useFloor   bool
		want       [3]float64
	}{
		{
			name: "ceiling hit",
			from: [3]float64{1.5, 0.5, 0.5},
			to:   [3]float64{0.5, 0.5, 0.5},
			useCeiling: true, useFloor: true,
			want: [3]float64{1.0, 0.5, 0.5},
		},
		{
			name: "floor hit",
			from: [3]float64{-0.5, 0.5, 0.5},
			to:   [3]float64{0.5, 0.5, 0.5},
			useCeiling: true, useFloor: true,
			want: [3]float64{0.0, 0.5, 0.5},
		},
		{
			name: "from in gamut",
			from: [3]float64{0.5, 0.2, 0.8},
			to:   [3]float64{0.3, 0.3, 0.3},
			useCeiling: true, useFloor: true,
			want: [3]float64{0.5, 0.2, 0.8},
		},
		{
			name: "no ceiling",
			from: [3]float64{3.0, 0.5, 0.5},
			to:   [3]float64{0.5, 0.5, 0.5},
			useCeiling: false, useFloor: true,
			want: [3]float64{3.0, 0.5, 0.5},
		},
		{
			// the segment never reaches the gamut box
			name: "miss",
			from: [3]float64{2.0, 0.5, 0.5},
			to:   [3]float64{2.0, 0.7, 0.5},
			useCeiling: true, useFloor: true,
			want: [3]float64{2.0, 0.7, 0.5},
		},
		{
			// without a floor, all-negative colours count as in
			// gamut, but the result is still clipped to zero
			name: "negative octant",
			from: [3]float64{-0.5, -0.5, -0.5},
			to:   [3]float64{-0.1, -0.2, -0.3},
			useCeiling: true, useFloor: false,
			want: [3]float64{0, 0, 0},
		},
		{
			// both endpoints beyond the ceiling on the same side
			name: "beyond ceiling",
			from: [3]float64{2, 2, 2},
			to:   [3]float64{3, 3, 3},
			useCeiling: true, useFloor: true,
			want: [3]float64{2, 2, 2},
		},
		{
			// a zero-direction axis sitting exactly on the gamut
			// boundary counts as a miss
			name: "on boundary",
			from: [3]float64{0.0, 1.5, 0.5},
			to:   [3]float64{0.0, 0.5, 0.5},
			useCeiling: true, useFloor: true,
			want: [3]float64{0.0, 0.5, 0.5},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Intersect(test.from, test.to, test.useCeiling, test.useFloor)
			if got != test.want {
				t.Errorf("Intersect(%v, %v, %v, %v) = %v, want %v",
					test.from, test.to, test.useCeiling, test.useFloor,
					got, test.want)
			}
		})
	}
}

func FuzzIntersect(f *testing.F) {
	f.Add(1.5, 0.5, 0.5, 0.5, 0.5, 0.5, true, true)
	f.Add(-0.5, -0.5, -0.5, -0.1, -0.2, -0.3, true, false)
	f.Add(0.0, 1.5, 0.5, 0.0, 0.5, 0.5, true, true)
	f.Add(2.0, 2.0, 2.0, 3.0, 3.0, 3.0, false, false)
	f.Fuzz(func(t *testing.T, f0, f1, f2, t0, t1, t2 float64, useCeiling, useFloor bool) {
		for _, v := range []float64{f0, f1, f2, t0, t1, t2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Skip("non-finite input")
			}
		}
		from := [3]float64{f0, f1, f2}
		to := [3]float64{t0, t1, t2}

		got := Intersect(from, to, useCeiling, useFloor)

		// the result is either `to` (no intersection), or a clipped
		// point with no negative channels
		if got != to {
			for i, v := range got {
				if v < 0 {
					t.Errorf("channel %d of %v is negative", i, got)
				}
			}
		}

		// colours strictly inside the gamut box are not moved
		ceiling := math.Inf(1)
		if useCeiling {
			ceiling = 1
		}
		inside := true
		for _, v := range from {
			if v <= 0 || v >= ceiling {
				inside = false
				break
			}
		}
		if inside && got != from {
			t.Errorf("in-gamut colour %v moved to %v", from, got)
		}
	})
}
