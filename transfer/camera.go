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

package transfer

import "math"

// log10Curve is a curve with a linear toe and a logarithmic segment
// of the form d + c·log10(a·x + b).  Several vendors publish their
// log curves in this shape.
type log10Curve struct {
	cut1, cut2 float64
	a, b, c, d float64
	e, f       float64
}

func (l log10Curve) FromLinear(x float64) float64 {
	if x < l.cut1 {
		return l.e*x + l.f
	}
	return l.c*math.Log10(l.a*x+l.b) + l.d
}

func (l log10Curve) ToLinear(x float64) float64 {
	if x < l.cut2 {
		return (x - l.f) / l.e
	}
	return (math.Pow(10, (x-l.d)/l.c) - l.b) / l.a
}

// CanonLog is the original Canon Log curve.
var CanonLog Curve = canonLogCurve{a: 0.45310179, b: 10.1596, c: 0.12512248}

// CanonLog2 is the Canon Log 2 curve.
var CanonLog2 Curve = canonLogCurve{a: 0.24136077, b: 87.099375, c: 0.092864125}

// Canon Log and Canon Log 2 share the same shape, a logarithmic
// curve mirrored around scene-linear zero.
type canonLogCurve struct {
	a, b, c float64
}

func (l canonLogCurve) FromLinear(x float64) float64 {
	if x < 0 {
		return -l.a*math.Log10(1-l.b*x) + l.c
	}
	return l.a*math.Log10(1+l.b*x) + l.c
}

func (l canonLogCurve) ToLinear(x float64) float64 {
	if x < l.c {
		return -(math.Pow(10, (l.c-x)/l.a) - 1) / l.b
	}
	return (math.Pow(10, (x-l.c)/l.a) - 1) / l.b
}

// CanonLog3 is the Canon Log 3 curve.  Unlike [CanonLog] and
// [CanonLog2] it has a linear segment around scene-linear zero.
var CanonLog3 Curve = canonLog3Curve{}

const (
	cl3A = 14.98325
	cl3B = 1.9754798
	cl3C = 0.36726845
	cl3D = 0.12783901
	cl3E = 0.12512219
	cl3F = 0.12240537
)

type canonLog3Curve struct{}

func (canonLog3Curve) FromLinear(x float64) float64 {
	const bound = 0.014
	switch {
	case x < -bound:
		return -cl3C*math.Log10(1-cl3A*x) + cl3D
	case x <= bound:
		return cl3B*x + cl3E
	default:
		return cl3C*math.Log10(1+cl3A*x) + cl3F
	}
}

func (canonLog3Curve) ToLinear(x float64) float64 {
	const (
		bound1 = 0.097465473
		bound2 = 0.15277891
	)
	switch {
	case x < bound1:
		return -(math.Pow(10, (cl3D-x)/cl3C) - 1) / cl3A
	case x <= bound2:
		return (x - cl3E) / cl3B
	default:
		return (math.Pow(10, (x-cl3F)/cl3C) - 1) / cl3A
	}
}

// DLog is DJI's D-Log curve.
//
// For exposure indices above 1600, DJI applies an additional,
// undocumented s-shaped roll-off to keep code values in range.  This
// roll-off is not implemented here.
var DLog Curve = log10Curve{
	cut1: 0.0078, cut2: 0.14,
	a: 0.9892, b: 0.0108, c: 0.256663, d: 0.584555,
	e: 6.025, f: 0.0929,
}

// FLog is Fujifilm's F-Log curve.
var FLog Curve = log10Curve{
	cut1: 0.00089, cut2: 0.100537775223865,
	a: 0.555556, b: 0.009468, c: 0.344676, d: 0.790453,
	e: 8.735631, f: 0.092864,
}

// VLog is Panasonic's V-Log curve.
var VLog Curve = log10Curve{
	cut1: 0.01, cut2: 0.181,
	a: 1, b: 0.00873, c: 0.241514, d: 0.598206,
	e: 5.6, f: 0.125,
}

// NLog is Nikon's N-Log curve.
var NLog Curve = nlogCurve{}

// The cut points carry more precision than Nikon's specification
// document, which states them only to 10-bit accuracy.  These values
// join the two curve segments without a step.
const (
	nlogCut1 = 0.316731
	nlogCut2 = 0.436505
	nlogA    = 650.0 / 1023.0
	nlogB    = 0.0075
	nlogC    = 150.0 / 1023.0
	nlogD    = 619.0 / 1023.0
)

type nlogCurve struct{}

func (nlogCurve) FromLinear(x float64) float64 {
	if x < nlogCut1 {
		return nlogA * math.Pow(x+nlogB, 1.0/3.0)
	}
	return nlogC*math.Log(x) + nlogD
}

func (nlogCurve) ToLinear(x float64) float64 {
	if x < nlogCut2 {
		t := x / nlogA
		return t*t*t - nlogB
	}
	return math.Exp((x - nlogD) / nlogC)
}

// Log3G10 is RED's Log3G10 curve.  Scene-linear -0.01 encodes to
// code value 0.0, middle grey 0.18 to 1/3, and code value 1.0 decodes
// to scene-linear 184.32.
var Log3G10 Curve = log3G10Curve{}

const (
	log3g10A = 0.224282
	log3g10B = 155.975327
	log3g10C = 0.01
	log3g10G = 15.1927
)

type log3G10Curve struct{}

func (log3G10Curve) FromLinear(x float64) float64 {
	x += log3g10C
	if x < 0 {
		return x * log3g10G
	}
	return log3g10A * math.Log10(x*log3g10B+1)
}

func (log3G10Curve) ToLinear(x float64) float64 {
	if x < 0 {
		return x/log3g10G - log3g10C
	}
	return (math.Pow(10, x/log3g10A)-1)/log3g10B - log3g10C
}

// Code values in S-Log and S-Log2 are offset so that curve values 0.0
// and 1.0 correspond to the 10-bit levels 64 and 940.
const (
	slogBlack = 64.0 / 1023.0
	slogWhite = 940.0 / 1023.0

	slogA = 0.432699
	slogB = 0.037584
	slogC = 0.616596
)

// SLog is Sony's original S-Log curve.
var SLog Curve = slogCurve{}

type slogCurve struct{}

func (slogCurve) FromLinear(x float64) float64 {
	x /= 0.9
	y := slogA*math.Log10(x+slogB) + slogC + 0.03
	return y*(slogWhite-slogBlack) + slogBlack
}

func (slogCurve) ToLinear(x float64) float64 {
	x = (x - slogBlack) / (slogWhite - slogBlack)
	y := math.Pow(10, (x-slogC-0.03)/slogA) - slogB
	return y * 0.9
}

// SLog2 is Sony's S-Log2 curve.
var SLog2 Curve = slog2Curve{}

type slog2Curve struct{}

func (slog2Curve) FromLinear(x float64) float64 {
	x /= 0.9
	var y float64
	if x < 0 {
		y = x*3.53881278538813 + 0.030001222851889303
	} else {
		y = slogA*math.Log10(155.0*x/219.0+slogB) + slogC + 0.03
	}
	return y*(slogWhite-slogBlack) + slogBlack
}

func (slog2Curve) ToLinear(x float64) float64 {
	x = (x - slogBlack) / (slogWhite - slogBlack)
	var y float64
	if x < 0.030001222851889303 {
		y = (x - 0.030001222851889303) / 3.53881278538813
	} else {
		y = 219.0 * (math.Pow(10, (x-0.03-slogC)/slogA) - slogB) / 155.0
	}
	return y * 0.9
}

// SLog3 is Sony's S-Log3 curve.
var SLog3 Curve = slog3Curve{}

// slog3Cut is the 10-bit code value where the linear toe meets the
// logarithmic segment.
const slog3Cut = 171.2102946929

type slog3Curve struct{}

func (slog3Curve) FromLinear(x float64) float64 {
	if x < 0.01125 {
		return (x*(slog3Cut-95.0)/0.01125 + 95.0) / 1023.0
	}
	return (420.0 + math.Log10((x+0.01)/(0.18+0.01))*261.5) / 1023.0
}

func (slog3Curve) ToLinear(x float64) float64 {
	if x < slog3Cut/1023.0 {
		return (x*1023.0 - 95.0) * 0.01125 / (slog3Cut - 95.0)
	}
	return math.Pow(10, (x*1023.0-420.0)/261.5)*(0.18+0.01) - 0.01
}
