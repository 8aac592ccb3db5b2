/*
 * errors.go, part of mdconf.
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

import "fmt"

//Errors

// Error is the error type for failures in the v3 package that
// carry information about where they happened.
// It fulfills the chem.Error interface without importing chem,
// to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("goChem/v3: %s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// ParseError is the kind of error returned by the vector parsing functions.
// It can be compared with errors.Is.
type ParseError string

func (e ParseError) Error() string { return string(e) }

const (
	ErrMissingValues = ParseError("goChem/v3: Missing values for vector")
	ErrParseFloat    = ParseError("goChem/v3: Can't parse vector component")
)

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goChem/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("goChem/v3: Dimension mismatch")
	ErrBadAxis      = PanicMsg("goChem/v3: Invalid axis")
	ErrBadWidth     = PanicMsg("goChem/v3: Field width must be positive")
)
