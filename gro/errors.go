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

package gro

import (
	"errors"
	"fmt"

	chem "github.com/rmera/mdconf"
)

// Issue describes what is wrong with a malformed line. Issues are the
// causes wrapped by FormatError, so they can be tested with errors.Is.
type Issue string

func (i Issue) Error() string { return string(i) }

const (
	MissingLine Issue = "expected line not found"
	InvalidUTF8 Issue = "invalid UTF-8"
	ShortLine   Issue = "atom line too short"
	BadCount    Issue = "can't read the number of atoms"
	BadPosition Issue = "can't read atom position"
	BadVelocity Issue = "can't read atom velocity"
	BadBox      Issue = "can't read box size"
)

// StreamError is returned when the underlying reader or writer fails.
type StreamError struct {
	Line     int   //1-based line being read or written when the failure happened
	Err      error //the failure of the stream
	filename string
	deco     []string
}

func (err *StreamError) Error() string {
	return fmt.Sprintf("gro file %s error: I/O failure at line %d: %v", err.filename, err.Line, err.Err)
}

func (err *StreamError) Unwrap() error { return err.Err }

// Decorate adds new information to the error.
func (err *StreamError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err *StreamError) FileName() string { return err.filename }

// Format returns the format of the file (always "gro") associated to the error.
func (err *StreamError) Format() string { return "gro" }

// Critical returns true if the error is critical, false otherwise.
func (err *StreamError) Critical() bool { return true }

// FormatError is returned when a line of the input is missing, too short, or
// can't be parsed.
type FormatError struct {
	Line     int //1-based number of the offending line
	cause    error
	filename string
	deco     []string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("gro file %s error: line %d: %v", err.filename, err.Line, err.cause)
}

func (err *FormatError) Unwrap() error { return err.cause }

// Decorate adds new information to the error.
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err *FormatError) FileName() string { return err.filename }

// Format returns the format of the file (always "gro") associated to the error.
func (err *FormatError) Format() string { return "gro" }

// Critical returns true if the error is critical, false otherwise.
func (err *FormatError) Critical() bool { return true }

// GroupingError is returned by Write when the atoms of a configuration can't be
// grouped into complete residues. It wraps the *chem.ResidueError of the failed group.
type GroupingError struct {
	Residue  int //1-based ordinal of the failed residue group
	Err      *chem.ResidueError
	filename string
	deco     []string
}

func (err *GroupingError) Error() string {
	return fmt.Sprintf("gro file %s error: can't write residue %d: %v", err.filename, err.Residue, err.Err)
}

func (err *GroupingError) Unwrap() error { return err.Err }

// Decorate adds new information to the error.
func (err *GroupingError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err *GroupingError) FileName() string { return err.filename }

// Format returns the format of the file (always "gro") associated to the error.
func (err *GroupingError) Format() string { return "gro" }

// Critical returns true if the error is critical, false otherwise.
func (err *GroupingError) Critical() bool { return true }

// errDecorate decorates err with the caller's name, if err implements chem.Error,
// and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// withFileName sets the file name of the gro errors in err's chain.
func withFileName(err error, name string) error {
	var serr *StreamError
	var ferr *FormatError
	var gerr *GroupingError
	switch {
	case errors.As(err, &serr):
		serr.filename = name
	case errors.As(err, &ferr):
		ferr.filename = name
	case errors.As(err, &gerr):
		gerr.filename = name
	}
	return err
}
