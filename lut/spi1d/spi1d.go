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

// Package spi1d reads and writes Sony Pictures Imageworks .spi1d LUT
// files.
//
// The format stores a 1D look-up table with one to three components and
// a single shared input range.
package spi1d

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/color/lut"
)

// ErrFormat indicates a malformed .spi1d file.
var ErrFormat = errors.New("spi1d: invalid LUT file")

// Write writes the given tables as a .spi1d file.  Between 1 and 3
// tables of equal length can be given; the component count of the file
// matches the number of tables.
func Write(w io.Writer, rangeMin, rangeMax float64, tables ...[]float64) error {
	if len(tables) < 1 || len(tables) > 3 {
		return fmt.Errorf("spi1d: need 1 to 3 tables, got %d", len(tables))
	}
	for _, table := range tables {
		if len(table) != len(tables[0]) {
			return errors.New("spi1d: tables must have the same length")
		}
	}

	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "Version 1")
	fmt.Fprintf(b, "From %.7f %.7f\n", finite(rangeMin), finite(rangeMax))
	fmt.Fprintf(b, "Length %d\n", len(tables[0]))
	fmt.Fprintf(b, "Components %d\n", len(tables))
	fmt.Fprintln(b, "{")
	for i := range tables[0] {
		b.WriteString(" ")
		for _, table := range tables {
			fmt.Fprintf(b, " %.7f", finite(table[i]))
		}
		b.WriteString("\n")
	}
	fmt.Fprintln(b, "}")
	return b.Flush()
}

// Read reads a .spi1d file.
//
// The returned LUT always has three tables, following the convention
// used by OpenColorIO: with one component in the file, all three tables
// hold the same data; with two components, the third table is zero
// filled.  The second return value is the number of components stored
// in the file.
func Read(r io.Reader) (*lut.Lut1D, int, error) {
	var (
		rangeMin     float64
		rangeMax     = 1.0
		length       int
		components   int
		readingTable bool
	)
	var tables [3][]float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		if !readingTable {
			switch {
			case parts[0] == "Version" && len(parts) == 2:
				v, err := strconv.Atoi(parts[1])
				if err != nil || v != 1 {
					return nil, 0, ErrFormat
				}
			case parts[0] == "From" && len(parts) == 3:
				var err error
				rangeMin, err = strconv.ParseFloat(parts[1], 64)
				if err != nil {
					return nil, 0, ErrFormat
				}
				rangeMax, err = strconv.ParseFloat(parts[2], 64)
				if err != nil {
					return nil, 0, ErrFormat
				}
			case parts[0] == "Components" && len(parts) == 2:
				var err error
				components, err = strconv.Atoi(parts[1])
				if err != nil {
					return nil, 0, ErrFormat
				}
			case parts[0] == "Length" && len(parts) == 2:
				var err error
				length, err = strconv.Atoi(parts[1])
				if err != nil {
					return nil, 0, ErrFormat
				}
			case parts[0] == "{" && len(parts) == 1:
				if length == 0 || components < 1 || components > 3 {
					return nil, 0, ErrFormat
				}
				readingTable = true
			default:
				return nil, 0, ErrFormat
			}
			continue
		}

		if parts[0] == "}" {
			break
		}
		if len(parts) != components {
			return nil, 0, ErrFormat
		}
		var v [3]float64
		for i := range components {
			var err error
			v[i], err = strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return nil, 0, ErrFormat
			}
		}
		switch components {
		case 1:
			tables[0] = append(tables[0], v[0])
			tables[1] = append(tables[1], v[0])
			tables[2] = append(tables[2], v[0])
		case 2:
			tables[0] = append(tables[0], v[0])
			tables[1] = append(tables[1], v[1])
			tables[2] = append(tables[2], 0)
		case 3:
			tables[0] = append(tables[0], v[0])
			tables[1] = append(tables[1], v[1])
			tables[2] = append(tables[2], v[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	for _, table := range tables {
		for _, v := range table {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, ErrFormat
			}
		}
	}
	if math.IsNaN(rangeMin) || math.IsInf(rangeMin, 0) ||
		math.IsNaN(rangeMax) || math.IsInf(rangeMax, 0) {
		return nil, 0, ErrFormat
	}
	if length != len(tables[0]) {
		return nil, 0, ErrFormat
	}

	return &lut.Lut1D{
		Ranges: []lut.Range{{Min: rangeMin, Max: rangeMax}},
		Tables: tables[:],
	}, components, nil
}

// finite replaces non-finite values, which cannot be represented in
// the file, by zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
