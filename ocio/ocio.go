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

// Package ocio reproduces fixed function transforms which are built
// into OpenColorIO.
//
// The functions here match the OpenColorIO implementations exactly,
// including their handling of extended range and out-of-gamut inputs.
package ocio

import "math"

// RGBToHSV converts a linear RGB colour to OpenColorIO's HSV
// representation.
//
// The hue is in the range [0, 1).  The saturation is in the range
// [0, 2), where values above 1 describe colours outside the RGB cube.
// The value component is unbounded.
func RGBToHSV(rgb [3]float64) [3]float64 {
	red, grn, blu := rgb[0], rgb[1], rgb[2]

	rgbMin := min(red, grn, blu)
	rgbMax := max(red, grn, blu)
	delta := rgbMax - rgbMin

	val := rgbMax
	sat := 0.0
	hue := 0.0

	if delta != 0 {
		if rgbMax != 0 {
			sat = delta / rgbMax
		}

		switch rgbMax {
		case red:
			hue = (grn - blu) / delta
		case grn:
			hue = 2 + (blu-red)/delta
		default:
			hue = 4 + (red-grn)/delta
		}
		if hue < 0 {
			hue += 6
		}
		hue *= 1.0 / 6.0
	}

	// extended range inputs
	if rgbMin < 0 {
		val += rgbMin
	}
	if -rgbMin > rgbMax {
		sat = (rgbMax - rgbMin) / -rgbMin
	}

	return [3]float64{hue, sat, val}
}

// maxSat is the saturation ceiling for [HSVToRGB].  OpenColorIO clips
// the saturation slightly below 2 to avoid a division by zero.
const maxSat = 1.999

// HSVToRGB converts a colour from OpenColorIO's HSV representation
// back to linear RGB.
//
// The hue wraps around within [0, 1), and the saturation is clipped
// to [0, 1.999] before processing.
func HSVToRGB(hsv [3]float64) [3]float64 {
	hue := (hsv[0] - math.Floor(hsv[0])) * 6
	sat := min(max(hsv[1], 0), maxSat)
	val := hsv[2]

	red := min(max(math.Abs(hue-3)-1, 0), 1)
	grn := min(max(2-math.Abs(hue-2), 0), 1)
	blu := min(max(2-math.Abs(hue-4), 0), 1)

	rgbMax := val
	rgbMin := val * (1 - sat)

	// extended range inputs
	if sat > 1 {
		rgbMin = val * (1 - sat) / (2 - sat)
		rgbMax = val - rgbMin
	}
	if val < 0 {
		rgbMin = val / (2 - sat)
		rgbMax = val - rgbMin
	}

	delta := rgbMax - rgbMin
	return [3]float64{
		red*delta + rgbMin,
		grn*delta + rgbMin,
		blu*delta + rgbMin,
	}
}

// XYZToUVY converts CIE 1931 XYZ coordinates to uvY, the CIE 1976 u'
// and v' chromaticity coordinates together with the linear Y
// component.
func XYZToUVY(xyz [3]float64) [3]float64 {
	x, y, z := xyz[0], xyz[1], xyz[2]

	var d float64
	if tmp := x + 15*y + 3*z; tmp != 0 {
		d = 1 / tmp
	}

	return [3]float64{4 * x * d, 9 * y * d, y}
}

// UVYToXYZ converts uvY coordinates back to CIE 1931 XYZ.
func UVYToXYZ(uvy [3]float64) [3]float64 {
	u, v, y := uvy[0], uvy[1], uvy[2]

	var d float64
	if v != 0 {
		d = 1 / v
	}
	x := (9.0 / 4.0) * y * u * d
	z := (3.0 / 4.0) * y * (4 - u - (20.0/3.0)*v) * d

	return [3]float64{x, y, z}
}
