/*
 * gro.go, part of mdconf.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	chem "github.com/rmera/mdconf"
	v3 "github.com/rmera/mdconf/v3"
)

const (
	minLineLen  int = 44     //shortest possible atom line: indexes, names and position.
	fieldWidth  int = 8      //width of each position and velocity component.
	maxOrdinal  int = 100000 //indexes are written modulo this, to fit in 5 columns.
	velocityCol int = 44
	maxPrealloc int = 1 << 16 //most atom slots reserved before reading the atom lines.
)

// atomLine is the content of one atom record. The residue and atom
// indexes are not read, since they are not needed to build the configuration.
type atomLine struct {
	resname  string
	atomname string
	pos      v3.Vec
	vel      *v3.Vec
}

// parseAtomLine parses a fixed-width atom record. The line must not include
// the line terminator. A blank velocity region gives a nil velocity.
func parseAtomLine(line string) (atomLine, error) {
	var ret atomLine
	if len(line) < minLineLen {
		return ret, ShortLine
	}
	ret.resname = strings.TrimSpace(line[5:10])
	ret.atomname = strings.TrimSpace(line[10:15])
	//a multibyte character can be split by the column edges.
	if !utf8.ValidString(ret.resname) || !utf8.ValidString(ret.atomname) {
		return ret, InvalidUTF8
	}
	var err error
	ret.pos, err = v3.ParseFixed(line[20:], fieldWidth)
	if err != nil {
		return ret, fmt.Errorf("%w: %w", BadPosition, err)
	}
	velreg := line[velocityCol:]
	if strings.TrimSpace(velreg) == "" {
		return ret, nil
	}
	vel, err := v3.ParseFixed(velreg, fieldWidth)
	if err != nil {
		return ret, fmt.Errorf("%w: %w", BadVelocity, err)
	}
	ret.vel = &vel
	return ret, nil
}

// lineReader reads a stream line by line, keeping the 1-based number of
// the last line read.
type lineReader struct {
	r    *bufio.Reader
	line int
}

// next returns the following line, without its terminator. A missing line is
// a FormatError, any other read failure is a StreamError. The last line
// doesn't need to be terminated.
func (L *lineReader) next() (string, error) {
	L.line++
	s, err := L.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		if errors.Is(err, io.EOF) {
			return "", &FormatError{Line: L.line, cause: MissingLine}
		}
		return "", &StreamError{Line: L.line, Err: err}
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if !utf8.ValidString(s) {
		return "", &FormatError{Line: L.line, cause: InvalidUTF8}
	}
	return s, nil
}

func (L *lineReader) formatError(cause error) error {
	return &FormatError{Line: L.line, cause: cause}
}

// Read reads a configuration in GROMOS87 (.gro) format from r. Residue and atom
// names are interned in the residue set of the returned configuration, in the order
// they first appear. The origin of the box is always the zero vector.
// Read either returns a complete configuration, or a nil one and a *FormatError
// or *StreamError describing the first problem found.
func Read(r io.Reader) (*chem.Configuration, error) {
	L := &lineReader{r: bufio.NewReader(r)}
	title, err := L.next()
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	C := chem.NewConfiguration(strings.TrimRight(title, " \t\r\n\v\f"))
	s, err := L.next()
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, errDecorate(L.formatError(fmt.Errorf("%w: %w", BadCount, err)), "Read")
	}
	if natoms < 0 {
		return nil, errDecorate(L.formatError(fmt.Errorf("%w: %d", BadCount, natoms)), "Read")
	}
	//the count is not trusted until the lines are read.
	C.Atoms = make([]*chem.Atom, 0, min(natoms, maxPrealloc))
	for range natoms {
		s, err = L.next()
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
		a, err := parseAtomLine(s)
		if err != nil {
			return nil, errDecorate(L.formatError(err), "Read")
		}
		C.AddAtom(a.resname, a.atomname, a.pos, a.vel)
	}
	s, err = L.next()
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	C.Size, err = v3.ParseFields(s)
	if err != nil {
		return nil, errDecorate(L.formatError(fmt.Errorf("%w: %w", BadBox, err)), "Read")
	}
	if f := strings.Fields(s); len(f) > 3 {
		log.Printf("gro: %d extra fields in the box line will be ignored", len(f)-3)
	}
	return C, nil
}

// Group splits the atoms of C into residues, as Write does before writing anything.
// It returns a *GroupingError for the first group that doesn't match its residue.
func Group(C *chem.Configuration) ([][]*chem.Atom, error) {
	var groups [][]*chem.Atom
	R := C.IterResidues()
	for {
		atoms, ok, err := R.Next()
		if !ok {
			return groups, nil
		}
		if err != nil {
			var rerr *chem.ResidueError
			errors.As(err, &rerr)
			return nil, &GroupingError{Residue: len(groups) + 1, Err: rerr}
		}
		groups = append(groups, atoms)
	}
}

// lineWriter writes lines to a buffered stream, keeping the 1-based number
// of the line being written.
type lineWriter struct {
	w    *bufio.Writer
	line int
}

func (L *lineWriter) printf(format string, a ...any) error {
	L.line++
	if _, err := fmt.Fprintf(L.w, format, a...); err != nil {
		return &StreamError{Line: L.line, Err: err}
	}
	return nil
}

// Write writes C to w in GROMOS87 (.gro) format. The atoms are grouped into residues
// with Group before anything is written, so, if any group doesn't
// match its residue, Write returns a *GroupingError and w is left untouched.
// Residue and atom indexes are written modulo 100000. Positions are written with
// 3 decimal places, and velocities, if the atom has one, with 4.
func Write(w io.Writer, C *chem.Configuration) error {
	groups, err := Group(C)
	if err != nil {
		return errDecorate(err, "Write")
	}
	return errDecorate(write(w, C, groups), "Write")
}

// write writes C to w, numbering residues after groups, which must
// be the result of Group(C).
func write(w io.Writer, C *chem.Configuration, groups [][]*chem.Atom) error {
	L := &lineWriter{w: bufio.NewWriter(w)}
	if err := L.printf("%s\n", C.Title); err != nil {
		return err
	}
	if err := L.printf("%d\n", C.Len()); err != nil {
		return err
	}
	atomnum := 0
	for i, g := range groups {
		resnum := (i + 1) % maxOrdinal
		for _, a := range g {
			atomnum = (atomnum + 1) % maxOrdinal
			if err := writeAtom(L, resnum, atomnum, a); err != nil {
				return err
			}
		}
	}
	if err := L.printf(" %12.5f %12.5f %12.5f\n", C.Size.X, C.Size.Y, C.Size.Z); err != nil {
		return err
	}
	if err := L.w.Flush(); err != nil {
		return &StreamError{Line: L.line, Err: err}
	}
	return nil
}

func writeAtom(L *lineWriter, resnum, atomnum int, a *chem.Atom) error {
	p := a.Position
	if a.Velocity == nil {
		return L.printf("%5d%-5.5s%5.5s%5d%8.3f%8.3f%8.3f\n",
			resnum, a.Residue.Name(), a.Name, atomnum, p.X, p.Y, p.Z)
	}
	v := a.Velocity
	return L.printf("%5d%-5.5s%5.5s%5d%8.3f%8.3f%8.3f%8.4f%8.4f%8.4f\n",
		resnum, a.Residue.Name(), a.Name, atomnum, p.X, p.Y, p.Z, v.X, v.Y, v.Z)
}
