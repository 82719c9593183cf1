// seehuhn.de/go/color - colour space conversions and gamut mapping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

	"seehuhn.de/go/color"
	"seehuhn.de/go/color/oklab"
)

// clipIterations is the fixed number of bisection steps used by
// [RGBClip] and [OkLabClip].  Keeping the count fixed, instead of
// iterating to a tolerance, makes outputs reproducible against
// reference values.
const clipIterations = 32

// RGBClip moves an out-of-gamut colour onto the gamut boundary by
// bisecting, in RGB space, the segment between from and to.
//
// The gamut box has a floor at 0,0,0 and a ceiling at
// ceiling,ceiling,ceiling; pass an infinite ceiling for an open
// domain.  to must be an in-gamut colour, typically an achromatic
// colour derived from from.  If from is already in gamut it is
// returned unchanged.
func RGBClip(from, to [3]float64, ceiling float64) [3]float64 {
	if inGamut(from, ceiling) {
		return from
	}

	for range clipIterations {
		mid := midpoint(from, to)
		if inGamut(mid, ceiling) {
			to = mid
		} else {
			from = mid
		}
	}
	return to
}

// OkLabClip moves an out-of-gamut colour onto the gamut boundary by
// bisection in the OkLab colour space.  The search desaturates
// towards a gray of equal lightness, preserving the colour's hue,
// which avoids the hue skews of straight RGB-space interpolation.
//
// toXYZ is the matrix converting rgb's colour space to CIE 1931 XYZ
// relative to the D65 white point; OkLabClip panics if it cannot be
// inverted.  The gamut box has a floor at 0,0,0 and a ceiling at
// ceiling,ceiling,ceiling; pass an infinite ceiling for an open
// domain.  If rgb is already in gamut it is returned unchanged.
func OkLabClip(rgb [3]float64, toXYZ color.Matrix, ceiling float64) [3]float64 {
	if inGamut(rgb, ceiling) {
		return rgb
	}
	fromXYZ, ok := toXYZ.Inverse()
	if !ok {
		panic("gamut: XYZ matrix is not invertible")
	}

	from := oklab.FromXYZ(toXYZ.Apply(rgb))

	// The search target has the same hue as the input, zero chroma,
	// and lightness restricted to the lightness range of the gamut.
	l := max(from[0], 0)
	if !math.IsInf(ceiling, 1) {
		white := oklab.FromXYZ(toXYZ.Apply([3]float64{ceiling, ceiling, ceiling}))
		l = min(l, white[0])
	}
	to := [3]float64{l, 0, 0}

	for range clipIterations {
		mid := midpoint(from, to)
		midRGB := fromXYZ.Apply(oklab.ToXYZ(mid))
		if inGamut(midRGB, ceiling) {
			to = mid
		} else {
			from = mid
		}
	}
	return fromXYZ.Apply(oklab.ToXYZ(to))
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{
		(a[0] + b[0]) * 0.5,
		(a[1] + b[1]) * 0.5,
		(a[2] + b[2]) * 0.5,
	}
}

func inGamut(rgb [3]float64, ceiling float64) bool {
	for _, v := range rgb {
		if v < 0 || v > ceiling {
			return false
		}
	}
	return true
}
