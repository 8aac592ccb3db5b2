/*
 * iter.go, part of mdconf.
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

// ResidueIter groups a list of atoms as the residues they form. Each step takes
// the residue of the first atom not yet consumed as the template, and checks that
// the following atoms occupy, in order, the atom slots that residue declares.
//
// A group that doesn't match is reported as a *ResidueError and skipped, and the
// iteration continues after it: if the first atom is not the first slot of its
// residue, only that atom is skipped. If the mismatch happens at the jth atom of
// the group (j>0), the j atoms before it are skipped, and the mismatching atom is
// tried as the start of the next group.
//
// Every step consumes at least one atom, so the iteration always ends. A
// ResidueIter can't be restarted, a new one is needed to go over the atoms again.
type ResidueIter struct {
	index int
	atoms []*Atom
}

// NewResidueIter returns an iterator over the residues formed by atoms.
func NewResidueIter(atoms []*Atom) *ResidueIter {
	return &ResidueIter{atoms: atoms}
}

// Index returns the position in the atom list of the next atom to be consumed.
func (R *ResidueIter) Index() int {
	return R.index
}

// Next returns the atoms of the next residue. ok is false, and atoms and err nil,
// when no atoms remain. Otherwise, either atoms has the complete residue, or
// err is a *ResidueError describing the failed group.
// The returned slice shares memory with the iterated atom list.
func (R *ResidueIter) Next() (atoms []*Atom, ok bool, err error) {
	if R.index >= len(R.atoms) {
		return nil, false, nil
	}
	first := R.atoms[R.index]
	if first == nil || first.Residue.Len() == 0 || first.Name != first.Residue.Atom(0) {
		return nil, true, R.fail(1)
	}
	template := first.Residue
	n := template.Len()
	for j := 1; j < n; j++ {
		k := R.index + j
		if k >= len(R.atoms) || R.atoms[k] == nil || R.atoms[k].Name != template.Atom(j) {
			return nil, true, R.fail(j)
		}
	}
	atoms = R.atoms[R.index : R.index+n : R.index+n]
	R.index += n
	return atoms, true, nil
}

// fail returns the error for a group starting at the current
// position, and skips span atoms.
func (R *ResidueIter) fail(span int) error {
	err := &ResidueError{Index: R.index, Span: span}
	R.index += span
	return err
}
