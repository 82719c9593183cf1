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

// Package transfer implements the transfer functions ("gamma curves")
// of common display standards and of camera log formats.
//
// All curves are exposed through the [Curve] interface, which converts
// between linear light and non-linear encoded values.  [SRGB],
// [Rec709], [PQ] and [HLG] are display standards.  The remaining
// curves belong to camera vendors' log formats.  Most of these are not
// mappings from [0, 1] to [0, 1]: they convert scene-linear values to
// normalised code values, where scene-linear 0.0 typically encodes to
// a code value well above zero, and code value 1.0 decodes to a
// scene-linear value far above one.
package transfer

import "math"

// Curve converts between linear and non-linear ("encoded")
// representations of a colour component.
//
// Curves are immutable and safe for concurrent use.
type Curve interface {
	// FromLinear converts a linear value to its encoded form.
	FromLinear(x float64) float64

	// ToLinear converts an encoded value back to linear.
	ToLinear(x float64) float64
}

// SRGB is the sRGB gamma curve from IEC 61966-2-1.
var SRGB Curve = srgbCurve{}

type srgbCurve struct{}

func (srgbCurve) FromLinear(x float64) float64 {
	if x < 0.0031308 {
		return x * 12.92
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func (srgbCurve) ToLinear(x float64) float64 {
	if x < 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// Rec709 is the opto-electronic transfer function shared by Rec.709
// and Rec.2020.  The constants carry more precision than the Rec.709
// document gives, so that the curve is also exact for 12-bit Rec.2020
// use.
var Rec709 Curve = rec709Curve{}

const (
	rec709A = 1.09929682680944
	rec709B = 0.01805396851080
	rec709C = rec709A - 1
)

type rec709Curve struct{}

func (rec709Curve) FromLinear(x float64) float64 {
	if x < rec709B {
		return x * 4.5
	}
	return rec709A*math.Pow(x, 0.45) - rec709C
}

func (rec709Curve) ToLinear(x float64) float64 {
	if x < rec709B*4.5 {
		return x / 4.5
	}
	return math.Pow((x+rec709C)/rec709A, 1/0.45)
}

// PQLuminanceMax is the display luminance, in cd/m², which the PQ
// curve encodes as 1.0.
const PQLuminanceMax = 10000.0

// PQ is the Perceptual Quantizer from Rec.2100.  Linear values are
// display luminances in cd/m² between 0 and [PQLuminanceMax]; encoded
// values lie in [0, 1].  Negative inputs are handled by mirroring the
// curve around zero.
var PQ Curve = pqCurve{}

const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0
)

type pqCurve struct{}

func (pqCurve) FromLinear(x float64) float64 {
	neg := x < 0
	x = math.Abs(x)

	x /= PQLuminanceMax
	xm1 := math.Pow(x, pqM1)
	out := math.Pow((pqC1+pqC2*xm1)/(1+pqC3*xm1), pqM2)

	if neg {
		return -out
	}
	return out
}

func (pqCurve) ToLinear(x float64) float64 {
	neg := x < 0
	x = math.Abs(x)

	x1m2 := math.Pow(x, 1/pqM2)
	out := math.Pow(max(x1m2-pqC1, 0)/(pqC2-pqC3*x1m2), 1/pqM1) * PQLuminanceMax

	if neg {
		return -out
	}
	return out
}

// HLG is the Hybrid Log-Gamma curve from Rec.2100, as a mapping from
// [0, 1] to [0, 1].
var HLG Curve = hlgCurve{}

const (
	hlgA = 0.17883277
	hlgB = 1 - 4*hlgA
)

var hlgC = 0.5 - hlgA*math.Log(4*hlgA)

type hlgCurve struct{}

func (hlgCurve) FromLinear(x float64) float64 {
	if x <= 1.0/12.0 {
		return math.Sqrt(3 * x)
	}
	return hlgA*math.Log(12*x-hlgB) + hlgC
}

func (hlgCurve) ToLinear(x float64) float64 {
	if x <= 0.5 {
		return x * x / 3
	}
	return (math.Exp((x-hlgC)/hlgA) + hlgB) / 12
}
