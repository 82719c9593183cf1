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

package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBToXYZ(t *testing.T) {
	got := RGBToXYZ(ACESAP0)
	want := Matrix{
		{0.9525523959, 0.0000000000, 0.0000936786},
		{0.3439664498, 0.7281660966, -0.0721325464},
		{0.0000000000, 0.0000000000, 1.0088251844},
	}
	if d := matrixMaxDiff(got, want); d > 1e-9 {
		t.Errorf("RGBToXYZ(ACESAP0) = %v, want %v (max diff %g)", got, want, d)
	}
}

func TestRGBToRGB(t *testing.T) {
	got := RGBToRGB(Rec709, ACESAP0)
	want := Matrix{
		{0.4329305201, 0.3753843595, 0.1893780579},
		{0.0894131371, 0.8165330211, 0.1030219928},
		{0.0191617131, 0.1181520660, 0.9422169143},
	}
	if d := matrixMaxDiff(got, want); d > 1e-9 {
		t.Errorf("RGBToRGB(Rec709, ACESAP0) = %v, want %v (max diff %g)", got, want, d)
	}
}

func TestRGBToXYZCrossCheck(t *testing.T) {
	// go-colorful implements the same sRGB/Rec.709 conversion
	// independently.
	m := RGBToXYZ(Rec709)

	vectors := [][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
		{0.18, 0.18, 0.18},
		{0.7, 0.2, 0.4},
	}
	for _, rgb := range vectors {
		got := m.Apply(rgb)
		x, y, z := colorful.LinearRgb(rgb[0], rgb[1], rgb[2]).Xyz()
		want := [3]float64{x, y, z}
		if d := vecMaxDiff(got, want); d > 1e-3 {
			t.Errorf("Apply(%v) = %v, go-colorful gives %v", rgb, got, want)
		}
	}
}

func TestChromaticAdaptation(t *testing.T) {
	// Adapting from the Rec.709 white point to the equal-energy point
	// must take the white colour 1,1,1 to XYZ 1,1,1.
	toXYZ := RGBToXYZ(Rec709)

	for _, method := range []AdaptationMethod{XYZScale, Hunt, Bradford} {
		t.Run(method.String(), func(t *testing.T) {
			adapt := ChromaticAdaptation(Rec709.W, E, method)
			white := toXYZ.Then(adapt).Apply([3]float64{1, 1, 1})
			if d := vecMaxDiff(white, [3]float64{1, 1, 1}); d > 1e-9 {
				t.Errorf("adapted white = %v, want 1,1,1 (max diff %g)", white, d)
			}
		})
	}
}

func TestChromaticAdaptationIdentity(t *testing.T) {
	// Adapting a white point to itself must give the identity matrix.
	whites := []Chromaticity{D50, D65, E, ACESAP0.W}
	for _, method := range []AdaptationMethod{XYZScale, Hunt, Bradford} {
		for _, w := range whites {
			got := ChromaticAdaptation(w, w, method)
			if d := matrixMaxDiff(got, identity); d > 1e-12 {
				t.Errorf("%v, white %v: matrix differs from identity by %g",
					method, w, d)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	m := RGBToXYZ(ACESAP0)
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("matrix reported as singular")
	}
	if d := matrixMaxDiff(m.Then(inv), identity); d > 1e-9 {
		t.Errorf("m * m^-1 differs from identity by %g", d)
	}
}

func TestInverseSingular(t *testing.T) {
	singular := []Matrix{
		{},
		{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		{{1, 2, 3}, {2, 4, 6}, {0, 1, 1.5}},
	}
	for i, m := range singular {
		if _, ok := m.Inverse(); ok {
			t.Errorf("matrix %d: expected singular, got an inverse", i)
		}
	}
}

func TestThen(t *testing.T) {
	a := RGBToXYZ(Rec709)
	b := RGBToXYZ(ACESAP0)
	combined := a.Then(b)

	vectors := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	for _, v := range vectors {
		separate := b.Apply(a.Apply(v))
		got := combined.Apply(v)
		if d := vecMaxDiff(separate, got); d > 1e-15 {
			t.Errorf("Then mismatch for %v: %v vs %v", v, separate, got)
		}
	}
}

func TestCompose(t *testing.T) {
	a := RGBToXYZ(Rec709)
	b := ChromaticAdaptation(Rec709.W, ACESAP0.W, Bradford)
	c, ok := RGBToXYZ(ACESAP0).Inverse()
	if !ok {
		t.Fatal("matrix reported as singular")
	}

	if got := Compose(a); got != a {
		t.Errorf("Compose(a) = %v, want %v", got, a)
	}
	if got, want := Compose(a, b), a.Then(b); got != want {
		t.Errorf("Compose(a, b) = %v, want %v", got, want)
	}
	if got, want := Compose(a, b, c), a.Then(b).Then(c); got != want {
		t.Errorf("Compose(a, b, c) = %v, want %v", got, want)
	}
}

func TestComposeEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Compose() did not panic")
		}
	}()
	Compose()
}

func TestWhitePointXYZ(t *testing.T) {
	tests := []struct {
		name string
		w    Chromaticity
		want [3]float64
	}{
		{"D65", D65, [3]float64{0.9505, 1, 1.0891}},
		{"D50", D50, [3]float64{0.9642, 1, 0.8249}},
		{"E", E, [3]float64{1, 1, 1}},
	}
	for _, tt := range tests {
		got := tt.w.XYZ()
		if d := vecMaxDiff(got, tt.want); d > 1e-4 {
			t.Errorf("%s: XYZ() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestXYYRoundTrip(t *testing.T) {
	xyz := [3]float64{0.25, 0.75, 0.5}
	xyy := XYZToXYY(xyz)
	if got := XYYToXYZ(xyy); got != xyz {
		t.Errorf("round trip changed %v to %v", xyz, got)
	}
}

func matrixMaxDiff(a, b Matrix) float64 {
	var max float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if d := math.Abs(a[i][j] - b[i][j]); d > max {
				max = d
			}
		}
	}
	return max
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
