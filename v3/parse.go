/*
 * parse.go, part of mdconf.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFixed reads a vector from s, which is expected to contain its three components
// in consecutive fields of width characters each. Spaces around each field are ignored,
// and so is anything after the third field.
// It returns ErrMissingValues if s is blank or has less than three fields, and
// an error wrapping ErrParseFloat if any of the three fields is not a number.
func ParseFixed(s string, width int) (Vec, error) {
	if width < 1 {
		panic(ErrBadWidth)
	}
	if strings.TrimSpace(s) == "" {
		return Vec{}, ErrMissingValues
	}
	var f [3]float64
	for i := range f {
		start := i * width
		if start >= len(s) {
			return Vec{}, ErrMissingValues
		}
		field := s[start:min(start+width, len(s))]
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Vec{}, fmt.Errorf("%w: field %d (%q)", ErrParseFloat, i+1, field)
		}
		f[i] = val
	}
	return Vec{f[0], f[1], f[2]}, nil
}

// ParseFields reads a vector from the first three whitespace-separated fields
// in s. Additional fields are ignored.
// It returns ErrMissingValues if s contains no fields at all, and an error wrapping
// ErrParseFloat if there are less than three, or any of them is not a number.
func ParseFields(s string) (Vec, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Vec{}, ErrMissingValues
	}
	if len(fields) < 3 {
		return Vec{}, fmt.Errorf("%w: %d fields, 3 expected", ErrParseFloat, len(fields))
	}
	var f [3]float64
	for i := range f {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Vec{}, fmt.Errorf("%w: field %d (%q)", ErrParseFloat, i+1, fields[i])
		}
		f[i] = val
	}
	return Vec{f[0], f[1], f[2]}, nil
}
