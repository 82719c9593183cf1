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

package color

// XYZToXYY converts CIE 1931 XYZ coordinates to CIE xyY coordinates.
func XYZToXYY(xyz [3]float64) [3]float64 {
	n := xyz[0] + xyz[1] + xyz[2]
	return [3]float64{xyz[0] / n, xyz[1] / n, xyz[1]}
}

// XYYToXYZ converts CIE xyY coordinates to CIE 1931 XYZ coordinates.
func XYYToXYZ(xyy [3]float64) [3]float64 {
	x := xyy[2] / xyy[1] * xyy[0]
	z := xyy[2] / xyy[1] * (1.0 - xyy[0] - xyy[1])
	return [3]float64{x, xyy[2], z}
}
