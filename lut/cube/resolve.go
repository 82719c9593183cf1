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

package cube

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/color/lut"
)

// WriteResolve writes a DaVinci Resolve .cube file containing a 1D
// shaper LUT, a 3D LUT, or both.  At least one of the two must be
// non-nil.
//
// The format stores a single input range per LUT: a 1D LUT must have
// one shared range (see [seehuhn.de/go/color/lut.Lut1D.ResampleToSingleRange]),
// and a 3D LUT must have the same range and resolution on all axes.
func WriteResolve(w io.Writer, lut1D *lut.Lut1D, lut3D *lut.Lut3D) error {
	if lut1D == nil && lut3D == nil {
		return errors.New("cube: need a 1D LUT, a 3D LUT, or both")
	}

	if lut1D != nil {
		if len(lut1D.Tables) != 3 {
			return errors.New("cube: need exactly 3 channels")
		}
		if len(lut1D.Tables[1]) != len(lut1D.Tables[0]) ||
			len(lut1D.Tables[2]) != len(lut1D.Tables[0]) {
			return errors.New("cube: tables must have the same length")
		}
		if len(lut1D.Ranges) != 1 {
			return errors.New("cube: Resolve 1D LUTs use a single shared input range")
		}
	}
	if lut3D != nil {
		if len(lut3D.Tables) != 3 {
			return errors.New("cube: need exactly 3 channels")
		}
		res := lut3D.Resolution[0]
		if lut3D.Resolution[1] != res || lut3D.Resolution[2] != res {
			return errors.New("cube: resolution must be the same on all axes")
		}
		if len(lut3D.Tables[0]) != res*res*res ||
			len(lut3D.Tables[1]) != len(lut3D.Tables[0]) ||
			len(lut3D.Tables[2]) != len(lut3D.Tables[0]) {
			return errors.New("cube: table size does not match the resolution")
		}
		if lut3D.Range[1] != lut3D.Range[0] || lut3D.Range[2] != lut3D.Range[0] {
			return errors.New("cube: Resolve 3D LUTs use a single shared input range")
		}
	}

	b := bufio.NewWriter(w)
	if lut1D != nil {
		fmt.Fprintf(b, "LUT_1D_SIZE %d\n", len(lut1D.Tables[0]))
		fmt.Fprintf(b, "LUT_1D_INPUT_RANGE %s %s\n",
			fmtFloat(lut1D.Ranges[0].Min), fmtFloat(lut1D.Ranges[0].Max))
	}
	if lut3D != nil {
		fmt.Fprintf(b, "LUT_3D_SIZE %d\n", lut3D.Resolution[0])
		fmt.Fprintf(b, "LUT_3D_INPUT_RANGE %s %s\n",
			fmtFloat(lut3D.Range[0].Min), fmtFloat(lut3D.Range[0].Max))
	}
	if lut1D != nil {
		for i := range lut1D.Tables[0] {
			fmt.Fprintf(b, "%s %s %s\n",
				fmtFloat(lut1D.Tables[0][i]),
				fmtFloat(lut1D.Tables[1][i]),
				fmtFloat(lut1D.Tables[2][i]))
		}
	}
	if lut3D != nil {
		for i := range lut3D.Tables[0] {
			fmt.Fprintf(b, "%s %s %s\n",
				fmtFloat(lut3D.Tables[0][i]),
				fmtFloat(lut3D.Tables[1][i]),
				fmtFloat(lut3D.Tables[2][i]))
		}
	}
	return b.Flush()
}

// ReadResolve reads a DaVinci Resolve .cube file.  Either of the
// returned LUTs may be nil, but not both.
func ReadResolve(r io.Reader) (*lut.Lut1D, *lut.Lut3D, error) {
	var (
		range1D  = lut.Range{Max: 1}
		length1D int
		tables1D [3][]float64

		range3D  = lut.Range{Max: 1}
		size3D   int
		tables3D [3][]float64

		headerDone               bool
		remaining1D, remaining3D int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}

		if !headerDone {
			isHeader := true
			switch {
			case parts[0] == "TITLE" && len(parts) > 1:
				if err := checkTitle(line); err != nil {
					return nil, nil, err
				}
			case parts[0] == "LUT_1D_SIZE" && len(parts) == 2:
				var err error
				length1D, err = strconv.Atoi(parts[1])
				if err != nil || length1D < 0 {
					return nil, nil, ErrFormat
				}
			case parts[0] == "LUT_1D_INPUT_RANGE" && len(parts) == 3:
				var err error
				range1D, err = parseRange(parts[1], parts[2])
				if err != nil {
					return nil, nil, err
				}
			case parts[0] == "LUT_3D_SIZE" && len(parts) == 2:
				var err error
				size3D, err = strconv.Atoi(parts[1])
				if err != nil || size3D < 0 || size3D > maxSize3D {
					return nil, nil, ErrFormat
				}
			case parts[0] == "LUT_3D_INPUT_RANGE" && len(parts) == 3:
				var err error
				range3D, err = parseRange(parts[1], parts[2])
				if err != nil {
					return nil, nil, err
				}
			default:
				// first non-header line ends the header
				isHeader = false
			}
			if isHeader {
				continue
			}

			if length1D <= 0 && size3D <= 0 {
				return nil, nil, ErrFormat
			}
			headerDone = true
			remaining1D = length1D
			remaining3D = size3D * size3D * size3D
		}

		// 1D data comes first, then 3D data
		if len(parts) != 3 {
			return nil, nil, ErrFormat
		}
		v, err := parseTriple(parts)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case remaining1D > 0:
			for i := range 3 {
				tables1D[i] = append(tables1D[i], v[i])
			}
			remaining1D--
		case remaining3D > 0:
			for i := range 3 {
				tables3D[i] = append(tables3D[i], v[i])
			}
			remaining3D--
		default:
			// more data lines than the header announced
			return nil, nil, ErrFormat
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if !headerDone {
		if length1D <= 0 && size3D <= 0 {
			return nil, nil, ErrFormat
		}
		remaining1D = length1D
		remaining3D = size3D * size3D * size3D
	}
	if remaining1D > 0 || remaining3D > 0 {
		return nil, nil, ErrFormat
	}

	if !allFinite(tables1D) || !allFinite(tables3D) ||
		!finiteRange(range1D.Min, range1D.Max) ||
		!finiteRange(range3D.Min, range3D.Max) {
		return nil, nil, ErrFormat
	}

	var l1 *lut.Lut1D
	if len(tables1D[0]) > 0 {
		l1 = &lut.Lut1D{
			Ranges: []lut.Range{range1D},
			Tables: tables1D[:],
		}
	}
	var l3 *lut.Lut3D
	if len(tables3D[0]) > 0 {
		l3 = &lut.Lut3D{
			Range:      [3]lut.Range{range3D, range3D, range3D},
			Resolution: [3]int{size3D, size3D, size3D},
			Tables:     tables3D[:],
		}
	}

	return l1, l3, nil
}

// parseRange parses the two numbers of an INPUT_RANGE line.
func parseRange(minStr, maxStr string) (lut.Range, error) {
	min, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return lut.Range{}, ErrFormat
	}
	max, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return lut.Range{}, ErrFormat
	}
	return lut.Range{Min: min, Max: max}, nil
}
