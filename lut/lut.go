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

// Package lut stores, samples and resamples colour look-up tables.
//
// A [Lut1D] holds one or more channels of tabulated values over an
// input range and is evaluated by piecewise linear interpolation.  A
// [Lut3D] holds a sampled colour cube and is evaluated by tetrahedral
// interpolation.
//
// The subpackages spi1d and cube read and write look-up tables in
// common interchange file formats.
package lut

import (
	"math"
	"slices"
	"sort"
)

// Range is the input interval covered by a look-up table.
type Range struct {
	Min, Max float64
}

// Lut1D is a one-dimensional look-up table with one or more channels.
//
// Ranges gives the input interval that the table indices map to.  The
// number of ranges must either be 1, in which case the range is shared
// by all channels, or match the number of tables, in which case each
// channel has its own range.
//
// The inversion methods additionally require each table to be
// monotonically non-decreasing.  This is not checked; use
// [Lut1D.IsMonotonic] to verify a table of unknown origin.
type Lut1D struct {
	Ranges []Range
	Tables [][]float64
}

// Sample tabulates f at the given number of points, evenly spaced over
// the interval [min, max], and returns the result as a single-channel
// LUT.
func Sample(points int, min, max float64, f func(float64) float64) *Lut1D {
	inc := (max - min) / float64(points-1)
	table := make([]float64, points)
	for i := range points {
		table[i] = f(min + inc*float64(i))
	}

	return &Lut1D{
		Ranges: []Range{{min, max}},
		Tables: [][]float64{table},
	}
}

// Sample3 tabulates three functions over three input ranges and returns
// the result as a three-channel LUT.
func Sample3(points int, min, max [3]float64, f0, f1, f2 func(float64) float64) *Lut1D {
	var inc [3]float64
	for i := range 3 {
		inc[i] = (max[i] - min[i]) / float64(points-1)
	}

	tables := make([][]float64, 3)
	for i := range tables {
		tables[i] = make([]float64, points)
	}
	for i := range points {
		tables[0][i] = f0(min[0] + inc[0]*float64(i))
		tables[1][i] = f1(min[1] + inc[1]*float64(i))
		tables[2][i] = f2(min[2] + inc[2]*float64(i))
	}

	return &Lut1D{
		Ranges: []Range{{min[0], max[0]}, {min[1], max[1]}, {min[2], max[2]}},
		Tables: tables,
	}
}

// Clone returns a deep copy of the LUT.
func (l *Lut1D) Clone() *Lut1D {
	res := &Lut1D{
		Ranges: slices.Clone(l.Ranges),
		Tables: make([][]float64, len(l.Tables)),
	}
	for i, table := range l.Tables {
		res.Tables[i] = slices.Clone(table)
	}
	return res
}

// LookUp evaluates the table for the given channel at input position x,
// interpolating linearly between table entries.  Inputs outside the
// channel's range are clamped.
func (l *Lut1D) LookUp(x float64, channel int) float64 {
	table := l.Tables[channel]
	r := l.Ranges[0]
	if len(l.Ranges) > 1 {
		r = l.Ranges[channel]
	}

	t := clamp((x-r.Min)/(r.Max-r.Min), 0, 1)

	n := len(table)
	pos := t * float64(n-1)
	idx := int(pos)
	if idx < 0 {
		return table[0]
	}
	if idx >= n-1 {
		return table[n-1]
	}
	frac := pos - float64(idx)
	return table[idx] + (table[idx+1]-table[idx])*frac
}

// LookUpInverse evaluates the inverse of the table for the given
// channel: it returns the input position x for which LookUp(x, channel)
// gives y.  The table must be monotonically non-decreasing.
//
// Where several input positions map to y, the midpoint of the interval
// of solutions is returned.  Values of y outside the table are
// extrapolated from the first or last table interval.
func (l *Lut1D) LookUpInverse(y float64, channel int) float64 {
	table := l.Tables[channel]
	r := l.Ranges[0]
	if len(l.Ranges) > 1 {
		r = l.Ranges[channel]
	}

	n := len(table)
	i2 := sort.Search(n, func(i int) bool { return table[i] >= y })

	if i2 < n && table[i2] == y {
		// exact hit: return the midpoint of the run of equal entries
		j := i2
		for j+1 < n && table[j+1] == y {
			j++
		}
		t := (float64(i2) + float64(j)) / 2 / float64(n-1)
		return t*(r.Max-r.Min) + r.Min
	}

	// bracket y between two adjacent entries
	if i2 < 1 {
		i2 = 1
	} else if i2 > n-1 {
		i2 = n - 1
	}
	i1 := i2 - 1

	out1 := float64(i1) / float64(n-1)
	out2 := float64(i2) / float64(n-1)

	var t float64
	if table[i1] == table[i2] {
		t = (out1 + out2) * 0.5
	} else {
		alpha := (y - table[i1]) / (table[i2] - table[i1])
		t = out1 + (out2-out1)*alpha
	}

	return t*(r.Max-r.Min) + r.Min
}

// IsMonotonic reports whether every channel of the LUT is monotonically
// non-decreasing.
func (l *Lut1D) IsMonotonic() bool {
	for _, table := range l.Tables {
		n := table[0]
		for _, v := range table {
			if v < n {
				return false
			}
			n = v
		}
	}
	return true
}

// ResampleInverted returns the inverse of the LUT, with each channel
// resampled to the given number of samples.  The tables must be
// monotonically non-decreasing.
//
// The result has the same number of ranges and tables as the input.
// With a single shared range, the new range is the union of the value
// ranges of all tables; otherwise each channel's new range is the value
// range of its own table.
//
// ResampleInverted panics if the number of ranges neither is 1 nor
// matches the number of tables.
func (l *Lut1D) ResampleInverted(samples int) *Lut1D {
	switch {
	case len(l.Ranges) == 1:
		newRange := Range{math.Inf(1), math.Inf(-1)}
		for _, table := range l.Tables {
			newRange.Min = min(newRange.Min, table[0])
			newRange.Max = max(newRange.Max, table[len(table)-1])
		}

		res := &Lut1D{Ranges: []Range{newRange}}
		for _, table := range l.Tables {
			res.Tables = append(res.Tables,
				resampleInverse(samples, newRange, table, l.Ranges[0]))
		}
		return res

	case len(l.Ranges) == len(l.Tables):
		res := &Lut1D{}
		for i, table := range l.Tables {
			newRange := Range{table[0], table[len(table)-1]}
			res.Ranges = append(res.Ranges, newRange)
			res.Tables = append(res.Tables,
				resampleInverse(samples, newRange, table, l.Ranges[i]))
		}
		return res

	default:
		panic("lut: range count must either be 1 or match the table count")
	}
}

// ResampleToSingleRange resamples the LUT so that all channels share a
// single input range, the union of the existing ranges.
func (l *Lut1D) ResampleToSingleRange(samples int) *Lut1D {
	if len(l.Ranges) == 1 {
		resampled := true
		for _, table := range l.Tables {
			if len(table) != samples {
				resampled = false
				break
			}
		}
		if resampled {
			return l.Clone()
		}
	}

	union := Range{math.Inf(1), math.Inf(-1)}
	for _, r := range l.Ranges {
		union.Min = min(union.Min, r.Min)
		union.Max = max(union.Max, r.Max)
	}

	res := &Lut1D{Ranges: []Range{union}}
	for i, table := range l.Tables {
		r := l.Ranges[0]
		if i < len(l.Ranges) {
			r = l.Ranges[i]
		}
		res.Tables = append(res.Tables, Resample(samples, union, table, r))
	}
	return res
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
