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

func TestSoftClamp(t *testing.T) {
	// protected == 1 must be an exact hard clip
	for _, x := range []float64{-2, -0.5, 0, 0.25, 0.5, 0.9, 1, 1.5, 10, 1e6} {
		got := softClamp(x, 1)
		want := min(x, 1.0)
		if got != want {
			t.Errorf("softClamp(%g, 1) = %g, want %g", x, got, want)
		}
	}
}

func TestSoftClampSmooth(t *testing.T) {
	const p = 0.8

	// below the protection point, values pass through unchanged
	if got := softClamp(0.5, p); got != 0.5 {
		t.Errorf("softClamp(0.5, %g) = %g, want 0.5", p, got)
	}
	if got := softClamp(p, p); got != p {
		t.Errorf("softClamp(%g, %g) = %g, want %g", p, p, got, p)
	}

	// above it, the curve is monotonic and stays below 1
	prev := p
	for x := p; x < 20; x += 0.01 {
		y := softClamp(x, p)
		if y < prev || y >= 1 {
			t.Fatalf("softClamp(%g, %g) = %g, previous value %g", x, p, y, prev)
		}
		prev = y
	}
}

func TestOpenDomainClip(t *testing.T) {
	// gray inputs come back unchanged
	gray := [3]float64{0.25, 0.25, 0.25}
	if got := OpenDomainClip(gray, 0.25, 1); got != gray {
		t.Errorf("gray input changed: %v -> %v", gray, got)
	}

	// in-gamut colours are unchanged under a hard clip
	rgb := [3]float64{0.1, 0.5, 0.3}
	if got := OpenDomainClip(rgb, 0.3, 1); got != rgb {
		t.Errorf("in-gamut input changed: %v -> %v", rgb, got)
	}

	// non-positive gray levels give black
	for _, grayLevel := range []float64{0, -1} {
		got := OpenDomainClip([3]float64{0.5, 0.5, 0.5}, grayLevel, 1)
		if got != [3]float64{} {
			t.Errorf("grayLevel %g: got %v, want black", grayLevel, got)
		}
	}

	// a hard clip moves the most negative channel to zero
	got := OpenDomainClip([3]float64{0.8, -0.2, 0.3}, 0.4, 1)
	if m := min(got[0], got[1], got[2]); math.Abs(m) > 1e-12 {
		t.Errorf("minimum channel of %v is %g, want 0", got, m)
	}
}

func TestClosedDomainClip(t *testing.T) {
	// in-gamut gray inputs come back unchanged
	gray := [3]float64{0.25, 0.25, 0.25}
	if got := ClosedDomainClip(gray, 0.25, 1); got != gray {
		t.Errorf("gray input changed: %v -> %v", gray, got)
	}

	// black stays black
	if got := ClosedDomainClip([3]float64{}, 0, 1); got != ([3]float64{}) {
		t.Errorf("black changed to %v", got)
	}

	// overbright gray hard-clips to white
	got := ClosedDomainClip([3]float64{1.5, 1.5, 1.5}, 1.5, 1)
	if d := vecMaxDiff(got, [3]float64{1, 1, 1}); d > 1e-12 {
		t.Errorf("overbright gray clipped to %v, want white", got)
	}

	// saturated overbright colours are scaled down and mixed towards
	// white to reach the target gray level
	got = ClosedDomainClip([3]float64{1.2, 0.2, 0.1}, 0.9, 1)
	want := [3]float64{1.0, 2.0 / 3.0, 0.6333333333333333}
	if d := vecMaxDiff(got, want); d > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func vecMaxDiff(a, b [3]float64) float64 {
	var max float64
	for i := 0; i < 3; i++ {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
