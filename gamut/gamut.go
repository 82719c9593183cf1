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

// Package gamut maps out-of-gamut RGB colours back into gamut.
//
// The gamut is modelled as an axis-aligned box in linear RGB space,
// with an optional floor at 0,0,0 and an optional ceiling.  Colours
// are unconstrained 3-vectors; channels may be negative or exceed the
// ceiling, and "in gamut" is always relative to an explicitly chosen
// box.
//
// [OpenDomainClip] and [ClosedDomainClip] compress colours towards an
// achromatic value, with a smooth roll-off controlled by a protection
// parameter.  [Intersect] finds the gamut boundary geometrically along
// a line segment.  [RGBClip] and [OkLabClip] locate the boundary by
// bisection, the latter searching in the perceptually uniform OkLab
// space so that hue is preserved.
//
// All functions are pure; none of them can fail.  Degenerate inputs
// are handled by explicit special cases.
package gamut

import "math"

// OpenDomainClip clips an RGB colour to the open-domain gamut with a
// floor of 0,0,0 and no ceiling, making all channels non-negative.
//
// grayLevel is the achromatic value to clip towards.  For
// luminance-preserving clipping this is the achromatic value with the
// same luminance as rgb, but callers may compute it differently for
// different behaviours.  A grayLevel less than or equal to 0 returns
// black.
//
// protected selects how much of the gamut is protected from
// modification, between 0 (all colours may move) and 1 (only
// out-of-gamut colours are touched).  Lower values make the mapping
// softer, 1 is a hard clip.
func OpenDomainClip(rgb [3]float64, grayLevel, protected float64) [3]float64 {
	if grayLevel <= 0 {
		return [3]float64{}
	}

	minComponent := min(rgb[0], rgb[1], rgb[2])
	saturation := (grayLevel - minComponent) / grayLevel
	if saturation <= 0 {
		return rgb
	}
	t := softClamp(saturation, protected) / saturation

	// lerp from grayLevel towards rgb
	return [3]float64{
		grayLevel*(1.0-t) + rgb[0]*t,
		grayLevel*(1.0-t) + rgb[1]*t,
		grayLevel*(1.0-t) + rgb[2]*t,
	}
}

// ClosedDomainClip clips an RGB colour to the closed-domain gamut
// [0,1] on each channel.
//
// The input must already be within the open-domain gamut, with all
// channels non-negative; apply [OpenDomainClip] first where needed.
//
// grayLevel is the achromatic value to clip towards, as for
// [OpenDomainClip].  protected is the channel value up to which
// colours are left untouched: 1 protects the whole closed gamut and
// gives a hard clip, smaller values smooth the desaturation
// transition at the cost of also moving some in-gamut colours.
func ClosedDomainClip(rgb [3]float64, grayLevel, protected float64) [3]float64 {
	const epsilon = 1.0e-15

	// Scale the colour to be in gamut, and compute the gray level
	// corresponding to the scaled colour.
	maxComponent := max(rgb[0], rgb[1], rgb[2])
	if maxComponent <= epsilon {
		return [3]float64{}
	}
	fac := softClamp(maxComponent, protected) / maxComponent
	scaled := [3]float64{rgb[0] * fac, rgb[1] * fac, rgb[2] * fac}
	scaledGray := grayLevel * fac

	// Mix enough white into the scaled colour to reach the target
	// gray level.
	clampedGray := clamp(grayLevel, 0, 1)
	if scaledGray >= clampedGray {
		return scaled
	}
	t := clamp((clampedGray-scaledGray)/(1.0-scaledGray), 0, 1)
	return [3]float64{
		scaled[0]*(1.0-t) + t,
		scaled[1]*(1.0-t) + t,
		scaled[2]*(1.0-t) + t,
	}
}

// softClamp clamps x to at most 1, with a smooth transition
// controlled by protected: values up to protected are returned
// unchanged, 1 gives a perfectly sharp clip, and lower values give
// room for a progressively smoother roll-off.
func softClamp(x, protected float64) float64 {
	p := protected

	if p >= 1 || x <= p {
		// The curve below has a division by zero at p == 1, and for
		// negative p or x it is no longer a compression towards 1.
		return min(x, 1)
	}

	// remap, compress, remap back
	xr := (x - p) / (1 - p)
	tmp := xr / math.Sqrt(xr*xr+1)
	return tmp*(1-p) + p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
