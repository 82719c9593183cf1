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
	"fmt"
	"math"
)

// A Matrix is a 3x3 colour transform matrix, stored in row-major order.
type Matrix [3][3]float64

// RGBToXYZ computes the matrix which transforms linear RGB colours in
// the colour space c to CIE 1931 XYZ.
//
// The matrix is a plain basis transform into XYZ and does not attempt
// any chromatic adaptation.  In particular, the RGB colour 1,1,1 maps
// to the XYZ colour with the chromaticity of the white point of c.
func RGBToXYZ(c Chromaticities) Matrix {
	// X and Z coordinates of the RGB colour 1,1,1
	x := c.W.X / c.W.Y
	z := (1.0 - c.W.X - c.W.Y) / c.W.Y

	// scale factors for the matrix rows
	d := c.R.X*(c.B.Y-c.G.Y) + c.B.X*(c.G.Y-c.R.Y) + c.G.X*(c.R.Y-c.B.Y)

	sr := (x*(c.B.Y-c.G.Y) -
		c.G.X*((c.B.Y-1.0)+c.B.Y*(x+z)) +
		c.B.X*((c.G.Y-1.0)+c.G.Y*(x+z))) / d

	sg := (x*(c.R.Y-c.B.Y) +
		c.R.X*((c.B.Y-1.0)+c.B.Y*(x+z)) -
		c.B.X*((c.R.Y-1.0)+c.R.Y*(x+z))) / d

	sb := (x*(c.G.Y-c.R.Y) -
		c.R.X*((c.G.Y-1.0)+c.G.Y*(x+z)) +
		c.G.X*((c.R.Y-1.0)+c.R.Y*(x+z))) / d

	return Matrix{
		{sr * c.R.X, sg * c.G.X, sb * c.B.X},
		{sr * c.R.Y, sg * c.G.Y, sb * c.B.Y},
		{sr * (1.0 - c.R.X - c.R.Y), sg * (1.0 - c.G.X - c.G.Y), sb * (1.0 - c.B.X - c.B.Y)},
	}
}

// RGBToRGB computes the matrix which transforms linear RGB colours from
// the colour space src to the colour space dst.
//
// Like [RGBToXYZ], the result is a plain basis transform with no
// chromatic adaptation.  If the white points of the two spaces differ,
// the colour 1,1,1 in src does not map to 1,1,1 in dst; combine with
// [ChromaticAdaptation] where that is required.
//
// RGBToRGB panics if the XYZ matrix of dst cannot be inverted.
func RGBToRGB(src, dst Chromaticities) Matrix {
	fromXYZ, ok := RGBToXYZ(dst).Inverse()
	if !ok {
		panic("color: colour space has collinear primaries")
	}
	return RGBToXYZ(src).Then(fromXYZ)
}

// An AdaptationMethod selects the colour space in which
// [ChromaticAdaptation] applies von Kries scaling.
type AdaptationMethod int

const (
	// XYZScale scales the coordinates directly in CIE 1931 XYZ space.
	// This is generally considered a poor method, but can be useful in
	// some situations.
	XYZScale AdaptationMethod = iota

	// Hunt scales in the cone response space of the
	// Hunt-Pointer-Estevez LMS transform.
	Hunt

	// Bradford scales in the sharpened response space of the Bradford
	// RGB transform.
	Bradford
)

func (a AdaptationMethod) String() string {
	switch a {
	case XYZScale:
		return "XYZScale"
	case Hunt:
		return "Hunt"
	case Bradford:
		return "Bradford"
	default:
		return fmt.Sprintf("AdaptationMethod(%d)", int(a))
	}
}

var (
	identity = Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	// the Hunt-Pointer-Estevez LMS transform
	toLMSHunt = Matrix{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0.0, 0.0, 1.0},
	}

	// the Bradford RGB transform
	toRGBBradford = Matrix{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
)

// ChromaticAdaptation computes a matrix which chromatically adapts CIE
// 1931 XYZ colours from one white point to another.
//
// The matrix moves colours so that a colour at srcWhite maps to a
// colour at dstWhite.  For example, with srcWhite equal to [D65] and
// dstWhite equal to [E], the matrix takes a point at D65 to a point at
// E.  The matrix can only validly be applied to colours in CIE 1931
// XYZ space.
//
// ChromaticAdaptation panics if method is not one of the defined
// [AdaptationMethod] values.
func ChromaticAdaptation(srcWhite, dstWhite Chromaticity, method AdaptationMethod) Matrix {
	// The von Kries scaling happens in a space we call "ABC" here,
	// since whether it is LMS, RGB or XYZ depends on the method.
	var toABC Matrix
	switch method {
	case XYZScale:
		toABC = identity
	case Hunt:
		toABC = toLMSHunt
	case Bradford:
		toABC = toRGBBradford
	default:
		panic("color: unknown adaptation method " + method.String())
	}
	fromABC, _ := toABC.Inverse()

	srcABC := toABC.Apply(srcWhite.XYZ())
	dstABC := toABC.Apply(dstWhite.XYZ())

	scale := Matrix{
		{dstABC[0] / srcABC[0], 0, 0},
		{0, dstABC[1] / srcABC[1], 0},
		{0, 0, dstABC[2] / srcABC[2]},
	}

	return toABC.Then(scale).Then(fromABC)
}

// Inverse returns the inverse of the matrix.  The second return value
// is false if the matrix is singular.
//
// The inverse is computed by Gauss-Jordan elimination with partial
// pivoting.  Singularity is detected by an exactly zero pivot, so
// ill-conditioned but regular matrices still invert, with a
// correspondingly inaccurate result.
func (m Matrix) Inverse() (Matrix, bool) {
	s := identity
	t := m

	// forward elimination
	for i := 0; i < 2; i++ {
		pivot := i
		pivotsize := math.Abs(t[i][i])

		for j := i + 1; j < 3; j++ {
			if tmp := math.Abs(t[j][i]); tmp > pivotsize {
				pivot = j
				pivotsize = tmp
			}
		}

		if pivotsize == 0 {
			return Matrix{}, false
		}

		if pivot != i {
			t[i], t[pivot] = t[pivot], t[i]
			s[i], s[pivot] = s[pivot], s[i]
		}

		for j := i + 1; j < 3; j++ {
			f := t[j][i] / t[i][i]
			for k := 0; k < 3; k++ {
				t[j][k] -= f * t[i][k]
				s[j][k] -= f * s[i][k]
			}
		}
	}

	// backward substitution
	for i := 2; i >= 0; i-- {
		f := t[i][i]
		if f == 0 {
			return Matrix{}, false
		}

		for j := 0; j < 3; j++ {
			t[i][j] /= f
			s[i][j] /= f
		}

		for j := 0; j < i; j++ {
			f := t[j][i]
			for k := 0; k < 3; k++ {
				t[j][k] -= f * t[i][k]
				s[j][k] -= f * s[i][k]
			}
		}
	}

	return s, true
}

// Then returns the matrix which transforms colours first by m and then
// by n, so that m.Then(n).Apply(v) equals n.Apply(m.Apply(v)).
func (m Matrix) Then(n Matrix) Matrix {
	var c Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = n[i][0]*m[0][j] + n[i][1]*m[1][j] + n[i][2]*m[2][j]
		}
	}
	return c
}

// Compose combines a sequence of transform matrices into a single
// matrix which applies each of them in turn, leftmost first.
//
// Compose panics if called with no arguments.
func Compose(ms ...Matrix) Matrix {
	if len(ms) == 0 {
		panic("color: Compose needs at least one matrix")
	}
	c := ms[0]
	for _, m := range ms[1:] {
		c = c.Then(m)
	}
	return c
}

// Apply transforms the colour vector v by the matrix.
func (m Matrix) Apply(v [3]float64) [3]float64 {
	var c [3]float64
	for i := 0; i < 3; i++ {
		c[i] = v[0]*m[i][0] + v[1]*m[i][1] + v[2]*m[i][2]
	}
	return c
}
