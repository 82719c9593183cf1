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

// Blackmagic Design only publishes the "Film Generation 5" and
// "DaVinci Intermediate" transfer functions.  The parameters of the
// older film curves below are reverse engineered; see
// https://psychopath.io/post/2022_04_23_blackmagic_design_color_spaces
// for how they were obtained.

// bmdLogCurve is the shape shared by all Blackmagic film curves, a
// linear toe followed by a natural-log segment e + d·ln(x + c).
type bmdLogCurve struct {
	a, b, c, d, e float64
	linCut        float64
}

func (l bmdLogCurve) FromLinear(x float64) float64 {
	if x < l.linCut {
		return x*l.a + l.b
	}
	return math.Log(x+l.c)*l.d + l.e
}

func (l bmdLogCurve) ToLinear(x float64) float64 {
	logCut := l.linCut*l.a + l.b
	if x < logCut {
		return (x - l.b) / l.a
	}
	return math.Exp((x-l.e)/l.d) - l.c
}

// BMDFilmGen5 is Blackmagic Design's "Film Generation 5" curve, from
// the Generation 5 Color Science white paper.
//
// The white paper also defines a variant using broadcast-legal 10-bit
// video levels.  The two are related by a linear map: curve values
// 0.0924657534246575 and 1.0 correspond to the 10-bit levels 145 and
// 940.  This implementation uses the full-range values.
var BMDFilmGen5 Curve = bmdLogCurve{
	a:      8.283605932402494,
	b:      0.09246575342465753,
	c:      0.005494072432257808,
	d:      0.08692876065491224,
	e:      0.5300133392291939,
	linCut: 0.005,
}

// DaVinciIntermediate is Blackmagic Design's "DaVinci Intermediate"
// curve, from the DaVinci Resolve 17 wide gamut white paper.
var DaVinciIntermediate Curve = davinciCurve{}

const (
	davinciA      = 0.0075
	davinciB      = 7.0
	davinciC      = 0.07329248
	davinciM      = 10.44426855
	davinciLinCut = 0.00262409
	davinciLogCut = davinciLinCut * davinciM
)

type davinciCurve struct{}

func (davinciCurve) FromLinear(x float64) float64 {
	if x < davinciLinCut {
		return x * davinciM
	}
	return (math.Log2(x+davinciA) + davinciB) * davinciC
}

func (davinciCurve) ToLinear(x float64) float64 {
	if x < davinciLogCut {
		return x / davinciM
	}
	return math.Exp2(x/davinciC-davinciB) - davinciA
}

// BMDFilm4K is the "Blackmagic 4K Film" curve.
var BMDFilm4K Curve = bmdLogCurve{
	a:      3.4845696382315063,
	b:      0.035388150275256276,
	c:      0.0797443784368146,
	d:      0.2952978430809614,
	e:      0.781640290185019,
	linCut: 0.005000044472991669,
}

// BMDFilm46KGen3 is the "Blackmagic 4.6K Film Gen 3" curve.
var BMDFilm46KGen3 Curve = bmdLogCurve{
	a:      4.6708570973650385,
	b:      0.07305940817239664,
	c:      0.0287284246696045,
	d:      0.15754052970309015,
	e:      0.6303838233991069,
	linCut: 0.00499997387034723,
}

// BMDBroadcastFilmGen4 is the "Blackmagic Broadcast Film Gen 4" curve.
var BMDBroadcastFilmGen4 Curve = bmdLogCurve{
	a:      5.2212906000378565,
	b:      -0.00007134598996420424,
	c:      0.03630411093543444,
	d:      0.21566456116952773,
	e:      0.7133134738229736,
	linCut: 0.00500072683168086,
}

// BMDFilm is the original "Blackmagic Film" curve.
var BMDFilm Curve = bmdLogCurve{
	a:      4.969340550061595,
	b:      0.03538815027497705,
	c:      0.03251848397268609,
	d:      0.1864420102390252,
	e:      0.6723093484094137,
	linCut: 0.004999977151237935,
}

// BMDPocket4KFilmGen4 is the "Blackmagic Pocket 4K Film Gen 4" curve.
var BMDPocket4KFilmGen4 Curve = bmdLogCurve{
	a:      4.323288448370592,
	b:      0.07305940818036996,
	c:      0.03444835397444396,
	d:      0.1703663112023471,
	e:      0.6454296550413368,
	linCut: 0.004958295208669562,
}

// BMDPocket6KFilmGen4 is the "Blackmagic Pocket 6K Film Gen 4" curve.
var BMDPocket6KFilmGen4 Curve = bmdLogCurve{
	a:      4.724515510884684,
	b:      0.07305940816299691,
	c:      0.027941380463157067,
	d:      0.15545874964938466,
	e:      0.6272665887366995,
	linCut: 0.004963316175308281,
}
