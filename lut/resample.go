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

// Resample maps a table onto a new sampling grid.
//
// The returned table has newSamples entries, evenly spaced over the
// input interval newRange.  Values are read from oldTable, which covers
// oldRange, interpolating linearly between entries.  Samples outside
// oldRange take the first or last value of oldTable; there is no
// extrapolation.
func Resample(newSamples int, newRange Range, oldTable []float64, oldRange Range) []float64 {
	offset := (newRange.Min - oldRange.Min) / (oldRange.Max - oldRange.Min)
	norm := (newRange.Max - newRange.Min) / (oldRange.Max - oldRange.Min)

	newTable := make([]float64, newSamples)
	for i := range newSamples {
		// position in the old table, in normalised coordinates
		x := offset + float64(i)/float64(newSamples-1)*norm

		var y float64
		switch {
		case x <= 0:
			y = oldTable[0]
		case x >= 1:
			y = oldTable[len(oldTable)-1]
		default:
			j := x * float64(len(oldTable)-1)
			j1 := int(j)
			j2 := j1 + 1
			if j2 >= len(oldTable) {
				y = oldTable[len(oldTable)-1]
			} else {
				alpha := j - float64(j1)
				y = oldTable[j1]*(1-alpha) + oldTable[j2]*alpha
			}
		}
		newTable[i] = y
	}

	return newTable
}

// resampleInverse tabulates the inverse of a monotonic table.
//
// The old table maps positions in oldRange to values; the returned
// table maps newSamples evenly spaced values in newRange, on the value
// axis, back to positions in oldRange.  Values outside the old table
// clamp to the endpoints of oldRange.
func resampleInverse(newSamples int, newRange Range, oldTable []float64, oldRange Range) []float64 {
	oldNorm := (oldRange.Max - oldRange.Min) / float64(len(oldTable)-1)
	newNorm := (newRange.Max - newRange.Min) / float64(newSamples-1)

	newTable := make([]float64, newSamples)
	oldI1 := 0
	oldI2 := 1
	for i := range newSamples {
		newX := newRange.Min + float64(i)*newNorm

		switch {
		case newX < oldTable[0]:
			newTable[i] = oldRange.Min
		case newX > oldTable[len(oldTable)-1]:
			newTable[i] = oldRange.Max
		default:
			// advance to the interval that contains newX;
			// monotonicity means we never need to back up
			for newX > oldTable[oldI2] {
				oldI1++
				oldI2++
			}

			x1 := oldRange.Min + float64(oldI1)*oldNorm
			x2 := oldRange.Min + float64(oldI2)*oldNorm
			y1 := oldTable[oldI1]
			y2 := oldTable[oldI2]

			var alpha float64
			if y2-y1 > 0 {
				alpha = (newX - y1) / (y2 - y1)
			}
			newTable[i] = x1 + alpha*(x2-x1)
		}
	}

	return newTable
}
