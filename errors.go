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

package chem

import "fmt"

//Errors

// CError is the general error type for the chem package. It fulfills the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate is a helper function that asserts that the error
// implements chem.Error and decorates the error with the caller's name before returning it.
// Errors that don't implement chem.Error are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// ResidueError is returned by ResidueIter for a group of atoms that doesn't
// match the template of the residue of its first atom.
type ResidueError struct {
	Index int //position, in the atom list, of the first atom of the failed group.
	Span  int //number of atoms consumed by the failed group.
	deco  []string
}

func (err *ResidueError) Error() string {
	return fmt.Sprintf("Bad residue starting at index %d (%d atoms)", err.Index, err.Span)
}

// Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *ResidueError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
