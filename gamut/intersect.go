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

import "math"

// bboxMaxTAdjust widens the far hit of the slab test slightly, so
// that boundary hits are not lost to floating point rounding.
const bboxMaxTAdjust = 1.000_000_24

// Intersect intersects the directed line segment from->to with the
// gamut box, returning the closest in-gamut colour to from on the
// segment.
//
// to should normally be an in-gamut colour; if from is already in
// gamut, from is returned unchanged.  If the segment misses the gamut
// entirely, to is returned.
//
// With useCeiling, the box is given a ceiling of 1,1,1 (bounded
// luminance); otherwise it is open above.  With useFloor, the box is
// given a floor of 0,0,0; otherwise colours with all channels
// negative are treated as in-gamut colours with negative luminance.
func Intersect(from, to [3]float64, useCeiling, useFloor bool) [3]float64 {
	dir := [3]float64{to[0] - from[0], to[1] - from[1], to[2] - from[2]}
	dirInv := [3]float64{1.0 / dir[0], 1.0 / dir[1], 1.0 / dir[2]}

	ceiling := math.Inf(1)
	if useCeiling {
		ceiling = 1.0
	}
	posT, posHit := bboxIntersect(from, dirInv,
		[3]float64{0, 0, 0},
		[3]float64{ceiling, ceiling, ceiling})

	negT, negHit := 0.0, false
	if !useFloor {
		inf := math.Inf(-1)
		negT, negHit = bboxIntersect(from, dirInv,
			[3]float64{inf, inf, inf},
			[3]float64{0, 0, 0})
	}

	var hitT float64
	switch {
	case !posHit && !negHit:
		return to
	case posHit && negHit:
		hitT = min(posT, negT)
	case posHit:
		hitT = posT
	default:
		hitT = negT
	}

	// The max with 0 clips floating point rounding error in the hit
	// point.
	return [3]float64{
		fmax(from[0]+dir[0]*hitT, 0),
		fmax(from[1]+dir[1]*hitT, 0),
		fmax(from[2]+dir[2]*hitT, 0),
	}
}

// bboxIntersect computes the slab-method ray/box intersection used in
// ray tracing, restricted to the segment t in [0,1].
func bboxIntersect(from, dirInv, boxMin, boxMax [3]float64) (float64, bool) {
	// Slab intersections.  An axis with zero direction makes the
	// products below 0*Inf = NaN when from lies on a slab boundary;
	// fmin and fmax ignore NaN operands, so such an axis never
	// constrains the hit interval.
	var t1, t2 [3]float64
	for i := 0; i < 3; i++ {
		t1[i] = (boxMin[i] - from[i]) * dirInv[i]
		t2[i] = (boxMax[i] - from[i]) * dirInv[i]
	}

	// near and far hits
	var nearT, farT [3]float64
	for i := 0; i < 3; i++ {
		nearT[i] = fmin(t1[i], t2[i])
		farT[i] = fmax(t1[i], t2[i])
	}
	farHitT := fmin(fmin(fmin(farT[0], farT[1]), farT[2]), 1.0) * bboxMaxTAdjust
	nearHitT := fmax(fmax(nearT[0], nearT[1]), nearT[2])

	if nearHitT <= farHitT {
		return clamp(nearHitT, 0, 1), true
	}
	return 0, false
}

// fmin returns the smaller of a and b, ignoring NaN operands.
func fmin(a, b float64) float64 {
	if a < b || math.IsNaN(b) {
		return a
	}
	return b
}

// fmax returns the larger of a and b, ignoring NaN operands.
func fmax(a, b float64) float64 {
	if a > b || math.IsNaN(b) {
		return a
	}
	return b
}
