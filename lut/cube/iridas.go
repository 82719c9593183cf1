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

// WriteIridas1D writes a 1D LUT as an IRIDAS .cube file.
//
// The LUT must have three tables of equal length, and either one shared
// input range or one range per channel.
func WriteIridas1D(w io.Writer, l *lut.Lut1D) error {
	if len(l.Tables) != 3 {
		return errors.New("cube: need exactly 3 channels")
	}
	if len(l.Tables[1]) != len(l.Tables[0]) || len(l.Tables[2]) != len(l.Tables[0]) {
		return errors.New("cube: tables must have the same length")
	}
	var ranges [3]lut.Range
	switch len(l.Ranges) {
	case 1:
		ranges = [3]lut.Range{l.Ranges[0], l.Ranges[0], l.Ranges[0]}
	case 3:
		copy(ranges[:], l.Ranges)
	default:
		return errors.New("cube: need 1 or 3 input ranges")
	}

	b := bufio.NewWriter(w)
	fmt.Fprintln(b, `TITLE "untitled"`)
	fmt.Fprintf(b, "DOMAIN_MIN %s %s %s\n",
		fmtFloat(ranges[0].Min), fmtFloat(ranges[1].Min), fmtFloat(ranges[2].Min))
	fmt.Fprintf(b, "DOMAIN_MAX %s %s %s\n",
		fmtFloat(ranges[0].Max), fmtFloat(ranges[1].Max), fmtFloat(ranges[2].Max))
	fmt.Fprintf(b, "LUT_1D_SIZE %d\n", len(l.Tables[0]))
	for i := range l.Tables[0] {
		fmt.Fprintf(b, "%s %s %s\n",
			fmtFloat(l.Tables[0][i]), fmtFloat(l.Tables[1][i]), fmtFloat(l.Tables[2][i]))
	}
	return b.Flush()
}

// WriteIridas3D writes a 3D LUT as an IRIDAS .cube file.
//
// The LUT must have three tables and the same resolution on all three
// axes.
func WriteIridas3D(w io.Writer, l *lut.Lut3D) error {
	if len(l.Tables) != 3 {
		return errors.New("cube: need exactly 3 channels")
	}
	res := l.Resolution[0]
	if l.Resolution[1] != res || l.Resolution[2] != res {
		return errors.New("cube: resolution must be the same on all axes")
	}
	if len(l.Tables[0]) != res*res*res ||
		len(l.Tables[1]) != len(l.Tables[0]) || len(l.Tables[2]) != len(l.Tables[0]) {
		return errors.New("cube: table size does not match the resolution")
	}

	b := bufio.NewWriter(w)
	fmt.Fprintln(b, `TITLE "untitled"`)
	fmt.Fprintf(b, "DOMAIN_MIN %s %s %s\n",
		fmtFloat(l.Range[0].Min), fmtFloat(l.Range[1].Min), fmtFloat(l.Range[2].Min))
	fmt.Fprintf(b, "DOMAIN_MAX %s %s %s\n",
		fmtFloat(l.Range[0].Max), fmtFloat(l.Range[1].Max), fmtFloat(l.Range[2].Max))
	fmt.Fprintf(b, "LUT_3D_SIZE %d\n", res)
	for i := range l.Tables[0] {
		fmt.Fprintf(b, "%s %s %s\n",
			fmtFloat(l.Tables[0][i]), fmtFloat(l.Tables[1][i]), fmtFloat(l.Tables[2][i]))
	}
	return b.Flush()
}

// ReadIridas1D reads a 1D LUT from an IRIDAS .cube file.
func ReadIridas1D(r io.Reader) (*lut.Lut1D, error) {
	ranges := [3]lut.Range{{Max: 1}, {Max: 1}, {Max: 1}}
	length := -1
	var tables [3][]float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)

		switch {
		case len(parts) == 0 || strings.HasPrefix(parts[0], "#"):
			// skip blank lines and comments
		case parts[0] == "TITLE" && len(parts) > 1:
			if err := checkTitle(line); err != nil {
				return nil, err
			}
		case parts[0] == "DOMAIN_MIN" && len(parts) == 4:
			v, err := parseTriple(parts[1:])
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				ranges[i].Min = v[i]
			}
		case parts[0] == "DOMAIN_MAX" && len(parts) == 4:
			v, err := parseTriple(parts[1:])
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				ranges[i].Max = v[i]
			}
		case parts[0] == "LUT_1D_SIZE" && len(parts) == 2:
			var err error
			length, err = strconv.Atoi(parts[1])
			if err != nil {
				return nil, ErrFormat
			}
		case len(parts) == 3:
			v, err := parseTriple(parts)
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				tables[i] = append(tables[i], v[i])
			}
		default:
			return nil, ErrFormat
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !allFinite(tables) {
		return nil, ErrFormat
	}
	for _, r := range ranges {
		if !finiteRange(r.Min, r.Max) {
			return nil, ErrFormat
		}
	}
	if length != len(tables[0]) {
		return nil, ErrFormat
	}

	return &lut.Lut1D{
		Ranges: ranges[:],
		Tables: tables[:],
	}, nil
}

// ReadIridas3D reads a 3D LUT from an IRIDAS .cube file.
func ReadIridas3D(r io.Reader) (*lut.Lut3D, error) {
	ranges := [3]lut.Range{{Max: 1}, {Max: 1}, {Max: 1}}
	resolution := -1
	var tables [3][]float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)

		switch {
		case len(parts) == 0 || strings.HasPrefix(parts[0], "#"):
			// skip blank lines and comments
		case parts[0] == "TITLE" && len(parts) > 1:
			if err := checkTitle(line); err != nil {
				return nil, err
			}
		case parts[0] == "DOMAIN_MIN" && len(parts) == 4:
			v, err := parseTriple(parts[1:])
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				ranges[i].Min = v[i]
			}
		case parts[0] == "DOMAIN_MAX" && len(parts) == 4:
			v, err := parseTriple(parts[1:])
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				ranges[i].Max = v[i]
			}
		case parts[0] == "LUT_3D_SIZE" && len(parts) == 2:
			var err error
			resolution, err = strconv.Atoi(parts[1])
			if err != nil || resolution > maxSize3D {
				return nil, ErrFormat
			}
		case len(parts) == 3:
			v, err := parseTriple(parts)
			if err != nil {
				return nil, err
			}
			for i := range 3 {
				tables[i] = append(tables[i], v[i])
			}
		default:
			return nil, ErrFormat
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !allFinite(tables) {
		return nil, ErrFormat
	}
	for _, r := range ranges {
		if !finiteRange(r.Min, r.Max) {
			return nil, ErrFormat
		}
	}
	if resolution < 0 || resolution*resolution*resolution != len(tables[0]) {
		return nil, ErrFormat
	}

	return &lut.Lut3D{
		Range:      ranges,
		Resolution: [3]int{resolution, resolution, resolution},
		Tables:     tables[:],
	}, nil
}
