/*
 * interfaces.go, part of mdconf.
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

import v3 "github.com/rmera/mdconf/v3"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing.
}

// Atomer is the interface for any object that contains a list of atoms
// that can be accessed by index.
type Atomer interface {
	//Atom returns the Atom corresponding to the index i.
	Atom(i int) *Atom
	Len() int
}

// Boxer is an Atomer that is enclosed in a periodic box.
type Boxer interface {
	Atomer
	//Box returns the origin and the dimensions of the periodic box.
	Box() (origin, size v3.Vec)
}
