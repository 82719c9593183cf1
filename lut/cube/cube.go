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

// Package cube reads and writes .cube LUT files.
//
// Two dialects of the format are supported.  The original IRIDAS
// format stores either a 1D or a 3D look-up table, with a per-channel
// input domain; see [ReadIridas1D], [ReadIridas3D] and the
// corresponding write functions.  The DaVinci Resolve variant stores a
// 1D shaper table, a 3D cube, or both in a single file, with a shared
// input range; see [ReadResolve] and [WriteResolve].
//
// Both dialects use the .cube file extension, and nothing in the file
// reliably identifies the dialect.  When the origin of a file is
// unknown, [ReadResolve] is the more forgiving choice.
package cube

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrFormat indicates a malformed .cube file.
var ErrFormat = errors.New("cube: invalid LUT file")

// maxSize3D bounds the edge length of a 3D LUT.  Real files stay far
// below this, and 1024*1024*1024 still fits into a 32-bit int.
const maxSize3D = 1024

// fmtFloat formats a table value for writing.  Non-finite values
// cannot be represented in the file and are replaced by zero.
func fmtFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseTriple parses a data line of three numbers.
func parseTriple(parts []string) ([3]float64, error) {
	var v [3]float64
	for i := range 3 {
		var err error
		v[i], err = strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return v, ErrFormat
		}
	}
	return v, nil
}

// checkTitle validates a TITLE line.  The title must be a single
// double-quoted string; its value is not used.
func checkTitle(line string) error {
	parts := strings.Split(strings.TrimSpace(line), `"`)
	if len(parts) != 3 || parts[2] != "" {
		return ErrFormat
	}
	return nil
}

func allFinite(tables [3][]float64) bool {
	for _, table := range tables {
		for _, v := range table {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

func finiteRange(min, max float64) bool {
	return !math.IsNaN(min) && !math.IsInf(min, 0) &&
		!math.IsNaN(max) && !math.IsInf(max, 0)
}
