/*
 * names.go, part of mdconf.
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

import (
	"fmt"
	"slices"
)

// Name is a shared, mutable piece of text, such as the name of a residue or of
// one of the atoms a residue declares. Holders keep a pointer to it, so renaming
// a Name is seen by all of them. The pointer is also the identity of the Name:
// two Names with the same text are still different slots.
type Name struct {
	text string
}

// NewName returns a new Name, not interned anywhere.
func NewName(text string) *Name {
	return &Name{text: text}
}

// String returns the current text of the name.
func (N *Name) String() string {
	if N == nil {
		return ""
	}
	return N.text
}

// Rename changes the text of N. All holders of N see the change, and N
// keeps its identity.
func (N *Name) Rename(text string) {
	N.text = text
}

// findName returns the position of an element of items named text, or -1.
// The index only works as a hint, since names can be renamed without the index
// noticing: a hit is checked against the current text, and a miss falls back to a
// scan in declaration order, which also repairs the index.
func findName[T any](index map[string]int, items []T, text string, name func(T) *Name) int {
	if i, ok := index[text]; ok && i < len(items) && name(items[i]).text == text {
		return i
	}
	for i, v := range items {
		if name(v).text == text {
			index[text] = i
			return i
		}
	}
	return -1
}

// Residue is a named group of atoms. It declares an ordered list of atom names
// (its template), in the order they were first seen.
// Within a residue the same atom name is never interned twice.
type Residue struct {
	name  *Name
	slots []*Name
	index map[string]int
}

// NewResidue returns a residue called name, which declares the given atom names, in order.
// Repeated atom names are declared only once.
func NewResidue(name string, atomnames ...string) *Residue {
	R := &Residue{name: NewName(name), index: make(map[string]int, len(atomnames))}
	for _, v := range atomnames {
		R.LookupOrInsertAtom(v)
	}
	return R
}

// Name returns the name handle of the residue.
func (R *Residue) Name() *Name {
	return R.name
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s%v", R.name, R.slots)
}

// Len returns the number of atom names declared by the residue.
func (R *Residue) Len() int {
	if R == nil {
		return 0
	}
	return len(R.slots)
}

// Atom returns the ith atom name declared by the residue. It panics if
// i is out of range.
func (R *Residue) Atom(i int) *Name {
	return R.slots[i]
}

// Atoms returns a copy of the list of atom names declared by the residue.
// The names themselves are the shared handles, not copies.
func (R *Residue) Atoms() []*Name {
	return slices.Clone(R.slots)
}

// Slot returns the position of the handle N in the residue template, or -1
// if N is not declared by the residue. The comparison is by identity.
func (R *Residue) Slot(N *Name) int {
	return slices.Index(R.slots, N)
}

// LookupOrInsertAtom returns the atom name of R with the text name. If
// there is none, a new one is declared at the end of the template and returned.
func (R *Residue) LookupOrInsertAtom(name string) *Name {
	if R.index == nil {
		R.index = make(map[string]int)
	}
	if i := findName(R.index, R.slots, name, func(n *Name) *Name { return n }); i >= 0 {
		return R.slots[i]
	}
	N := NewName(name)
	R.index[name] = len(R.slots)
	R.slots = append(R.slots, N)
	return N
}

// ResidueSet is an ordered set of residues with unique names, in the order they
// were added. Residues are never removed from a set.
type ResidueSet struct {
	residues []*Residue
	index    map[string]int
}

func resname(R *Residue) *Name { return R.name }

// NewResidueSet returns a set containing the given residues, in order.
// It returns an error if two of them have the same name.
func NewResidueSet(residues ...*Residue) (*ResidueSet, error) {
	S := &ResidueSet{index: make(map[string]int, len(residues))}
	for _, v := range residues {
		if err := S.Add(v); err != nil {
			return nil, errDecorate(err, "NewResidueSet")
		}
	}
	return S, nil
}

// Len returns the number of residues in the set.
func (S *ResidueSet) Len() int {
	if S == nil {
		return 0
	}
	return len(S.residues)
}

// At returns the ith residue in the set. It panics if i is out of range.
func (S *ResidueSet) At(i int) *Residue {
	return S.residues[i]
}

// All returns a copy of the list of residues in the set.
func (S *ResidueSet) All() []*Residue {
	if S == nil {
		return nil
	}
	return slices.Clone(S.residues)
}

// Index returns the position of the residue R in the set, or -1 if R is not
// in it. The comparison is by identity: an equal residue that is not R is not found.
func (S *ResidueSet) Index(R *Residue) int {
	if S == nil {
		return -1
	}
	return slices.Index(S.residues, R)
}

// Find returns the residue in the set with the given name, or nil.
func (S *ResidueSet) Find(name string) *Residue {
	if S == nil {
		return nil
	}
	if S.index == nil {
		S.index = make(map[string]int)
	}
	if i := findName(S.index, S.residues, name, resname); i >= 0 {
		return S.residues[i]
	}
	return nil
}

// LookupOrInsert returns the residue in the set with the given name. If
// there is none, a new residue, with no atoms declared, is appended to the set
// and returned.
func (S *ResidueSet) LookupOrInsert(name string) *Residue {
	if R := S.Find(name); R != nil {
		return R
	}
	R := NewResidue(name)
	S.index[name] = len(S.residues)
	S.residues = append(S.residues, R)
	return R
}

// Add appends R to the set. It returns an error if R, or a residue with
// the same name, is already in the set.
func (S *ResidueSet) Add(R *Residue) error {
	if R == nil {
		return CError{"Can't add a nil residue", []string{"Add"}}
	}
	if S.Index(R) >= 0 {
		return CError{fmt.Sprintf("Residue %s already in the set", R.name), []string{"Add"}}
	}
	if S.Find(R.name.text) != nil {
		return CError{fmt.Sprintf("A residue called %s is already in the set", R.name), []string{"Add"}}
	}
	S.index[R.name.text] = len(S.residues)
	S.residues = append(S.residues, R)
	return nil
}

// Clone returns a new set with the same residues. The residues are shared, not copied,
// but adding residues to one set doesn't affect the other.
func (S *ResidueSet) Clone() *ResidueSet {
	N := &ResidueSet{index: make(map[string]int, S.Len())}
	if S == nil {
		return N
	}
	N.residues = slices.Clone(S.residues)
	for k, v := range S.index {
		N.index[k] = v
	}
	return N
}

// LookupOrInsertAtomAndResidue returns the residue called resname in the set S,
// and its atom name atomname, creating and declaring them if needed.
// This is the only way in which a configuration being built should obtain residues
// and atom names, so that all atoms with the same names share the same handles.
func LookupOrInsertAtomAndResidue(resname, atomname string, S *ResidueSet) (*Residue, *Name) {
	R := S.LookupOrInsert(resname)
	return R, R.LookupOrInsertAtom(atomname)
}
