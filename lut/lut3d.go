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

package lut

// Lut3D is a three-dimensional look-up table for colour cubes.
//
// Range gives the input interval on each of the three axes, and
// Resolution the number of grid points per axis.  Tables holds one
// table per output channel, each with
// Resolution[0]*Resolution[1]*Resolution[2] entries.  The entry for
// grid position (x, y, z) is stored at index
//
//	x + y*Resolution[0] + z*Resolution[0]*Resolution[1]
type Lut3D struct {
	Range      [3]Range
	Resolution [3]int
	Tables     [][]float64
}

// Sample3D tabulates f on a grid with the given resolution, evenly
// spaced over the box spanned by min and max.
func Sample3D(resolution [3]int, min, max [3]float64, f func(x, y, z float64) [3]float64) *Lut3D {
	var inc [3]float64
	for i := range 3 {
		inc[i] = (max[i] - min[i]) / float64(resolution[i]-1)
	}

	n := resolution[0] * resolution[1] * resolution[2]
	tables := make([][]float64, 3)
	for i := range tables {
		tables[i] = make([]float64, 0, n)
	}
	for zi := range resolution[2] {
		for yi := range resolution[1] {
			for xi := range resolution[0] {
				v := f(min[0]+inc[0]*float64(xi),
					min[1]+inc[1]*float64(yi),
					min[2]+inc[2]*float64(zi))
				tables[0] = append(tables[0], v[0])
				tables[1] = append(tables[1], v[1])
				tables[2] = append(tables[2], v[2])
			}
		}
	}

	return &Lut3D{
		Range:      [3]Range{{min[0], max[0]}, {min[1], max[1]}, {min[2], max[2]}},
		Resolution: resolution,
		Tables:     tables,
	}
}

// LookUp evaluates the cube at the point (x, y, z) using tetrahedral
// interpolation.  The cube must have three output channels.  Inputs
// outside the cube's range are clamped.
func (l *Lut3D) LookUp(x, y, z float64) [3]float64 {
	if l.Resolution[0] < 2 || l.Resolution[1] < 2 || l.Resolution[2] < 2 {
		var out [3]float64
		for i := range 3 {
			if i < len(l.Tables) && len(l.Tables[i]) > 0 {
				out[i] = l.Tables[i][0]
			}
		}
		return out
	}

	pos := [3]float64{x, y, z}
	var idx [3]int
	var frac [3]float64
	for i := range 3 {
		r := l.Range[i]
		t := clamp((pos[i]-r.Min)/(r.Max-r.Min), 0, 1)

		p := t * float64(l.Resolution[i]-1)
		j := int(p)
		if j < 0 {
			j = 0
		}
		if j >= l.Resolution[i]-1 {
			j = l.Resolution[i] - 2
		}
		idx[i] = j
		frac[i] = clamp(p-float64(j), 0, 1)
	}

	// strides for the x-fastest table layout
	yStride := l.Resolution[0]
	zStride := l.Resolution[0] * l.Resolution[1]
	base := idx[0] + idx[1]*yStride + idx[2]*zStride

	c000 := base
	c100 := base + 1
	c010 := base + yStride
	c110 := base + yStride + 1
	c001 := base + zStride
	c101 := base + zStride + 1
	c011 := base + zStride + yStride
	c111 := base + zStride + yStride + 1

	fx, fy, fz := frac[0], frac[1], frac[2]

	var out [3]float64
	for i := range 3 {
		tab := l.Tables[i]

		// select the tetrahedron containing (fx, fy, fz) based on
		// which fractional component is largest
		if fx > fy {
			if fy > fz {
				out[i] = (1-fx)*tab[c000] +
					(fx-fy)*tab[c100] +
					(fy-fz)*tab[c110] +
					fz*tab[c111]
			} else if fx > fz {
				out[i] = (1-fx)*tab[c000] +
					(fx-fz)*tab[c100] +
					(fz-fy)*tab[c101] +
					fy*tab[c111]
			} else {
				out[i] = (1-fz)*tab[c000] +
					(fz-fx)*tab[c001] +
					(fx-fy)*tab[c101] +
					fy*tab[c111]
			}
		} else {
			if fx > fz {
				out[i] = (1-fy)*tab[c000] +
					(fy-fx)*tab[c010] +
					(fx-fz)*tab[c110] +
					fz*tab[c111]
			} else if fy > fz {
				out[i] = (1-fy)*tab[c000] +
					(fy-fz)*tab[c010] +
					(fz-fx)*tab[c011] +
					fx*tab[c111]
			} else {
				out[i] = (1-fz)*tab[c000] +
					(fz-fy)*tab[c001] +
					(fy-fx)*tab[c011] +
					fx*tab[c111]
			}
		}
	}

	return out
}
