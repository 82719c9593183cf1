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

// Package oklab converts colours between CIE 1931 XYZ and the OkLab
// colour space.
//
// OkLab is a perceptually uniform colour space: Euclidean distances
// between OkLab coordinates approximate perceived colour differences.
// The first coordinate is lightness, the other two span the
// chromaticity plane.  [ToLCh] converts to the cylindrical OkLCh form
// with explicit chroma and hue coordinates.
//
// OkLab is defined relative to the D65 white point.  Colours relative
// to other white points must be chromatically adapted before
// conversion.
package oklab

import (
	"math"

	"seehuhn.de/go/color"
)

var (
	m1 = color.Matrix{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	m2 = color.Matrix{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}

	m1Inv = color.Matrix{
		{1.2270138511035211, -0.5577999806518222, 0.2812561489664678},
		{-0.040580178423280586, 1.11225686961683, -0.0716766786656012},
		{-0.0763812845057069, -0.4214819784180127, 1.5861632204407947},
	}
	m2Inv = color.Matrix{
		{0.9999999984505197, 0.3963377921737678, 0.21580375806075883},
		{1.0000000088817607, -0.10556134232365633, -0.063854174771706},
		{1.000000054672411, -0.08948418209496575, -1.2914855378640917},
	}
)

// FromXYZ converts a colour from CIE 1931 XYZ to OkLab.
//
// The cube root applied to the intermediate cone responses preserves
// sign, so slightly negative tristimulus values, as can occur in
// wide-gamut intermediate results, convert to finite OkLab
// coordinates.
func FromXYZ(xyz [3]float64) [3]float64 {
	lms := m1.Apply(xyz)
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}
	return m2.Apply(lms)
}

// ToXYZ converts a colour from OkLab to CIE 1931 XYZ.
func ToXYZ(lab [3]float64) [3]float64 {
	lms := m2Inv.Apply(lab)
	for i, v := range lms {
		lms[i] = v * v * v
	}
	return m1Inv.Apply(lms)
}

// ToLCh converts OkLab coordinates to the cylindrical OkLCh form,
// with coordinates lightness, chroma and hue.  The hue angle is in
// radians, in the range (-pi, pi].
func ToLCh(lab [3]float64) [3]float64 {
	c := math.Hypot(lab[1], lab[2])
	h := math.Atan2(lab[2], lab[1])
	return [3]float64{lab[0], c, h}
}

// FromLCh converts cylindrical OkLCh coordinates to OkLab.
func FromLCh(lch [3]float64) [3]float64 {
	a := lch[1] * math.Cos(lch[2])
	b := lch[1] * math.Sin(lch[2])
	return [3]float64{lch[0], a, b}
}
