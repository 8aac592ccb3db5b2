/*
 * chem.go, part of mdconf.
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
	"iter"

	v3 "github.com/rmera/mdconf/v3"
)

// Atom is one atom of a configuration. Its name and residue are shared handles,
// owned by the residue set of the configuration. Velocity is nil if unknown.
type Atom struct {
	Name     *Name
	Residue  *Residue
	Position v3.Vec
	Velocity *v3.Vec
}

// Copy returns a copy of the Atom. The name and residue handles are shared
// with the original, the vectors are copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	B := &Atom{Name: A.Name, Residue: A.Residue, Position: A.Position}
	if A.Velocity != nil {
		vel := *A.Velocity
		B.Velocity = &vel
	}
	return B
}

func (A *Atom) String() string {
	var res *Name
	if A.Residue != nil {
		res = A.Residue.Name()
	}
	return fmt.Sprintf("%s/%s %v", res, A.Name, A.Position)
}

// Configuration is a snapshot of a molecular system: its atoms, the residues
// they belong to, and the periodic box that contains them.
// Atoms are not necessarily grouped by residue; use IterResidues to get the groups.
type Configuration struct {
	Title    string
	Origin   v3.Vec
	Size     v3.Vec //dimensions of the periodic box
	Residues *ResidueSet
	Atoms    []*Atom
}

// NewConfiguration returns an empty configuration with the given title.
func NewConfiguration(title string) *Configuration {
	return &Configuration{Title: title, Residues: new(ResidueSet)}
}

// AddAtom appends a new atom at the end of the configuration, and returns it.
// The residue and atom names are interned in the configuration's residue set.
func (C *Configuration) AddAtom(resname, atomname string, pos v3.Vec, vel *v3.Vec) *Atom {
	if C.Residues == nil {
		C.Residues = new(ResidueSet)
	}
	R, N := LookupOrInsertAtomAndResidue(resname, atomname, C.Residues)
	A := &Atom{Name: N, Residue: R, Position: pos}
	if vel != nil {
		v := *vel
		A.Velocity = &v
	}
	C.Atoms = append(C.Atoms, A)
	return A
}

// Len returns the number of atoms in the configuration.
func (C *Configuration) Len() int {
	return len(C.Atoms)
}

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (C *Configuration) Atom(i int) *Atom {
	if i >= C.Len() || i < 0 {
		panic(fmt.Sprintf("Configuration: Requested Atom %d out of bounds", i))
	}
	return C.Atoms[i]
}

// HasVelocities returns true if all the atoms in the configuration have
// velocities. An empty configuration has no velocities.
func (C *Configuration) HasVelocities() bool {
	if len(C.Atoms) == 0 {
		return false
	}
	for _, v := range C.Atoms {
		if v.Velocity == nil {
			return false
		}
	}
	return true
}

// Coords returns a matrix with the positions of all the atoms, one per row.
// The matrix is a copy, changing it doesn't change the configuration.
func (C *Configuration) Coords() *v3.Matrix {
	M := v3.Zeros(len(C.Atoms))
	for i, v := range C.Atoms {
		M.SetVec(i, v.Position)
	}
	return M
}

// SetCoords sets the positions of the atoms to the rows of M, which must have
// one row per atom.
func (C *Configuration) SetCoords(M *v3.Matrix) error {
	if M == nil || M.NVecs() != len(C.Atoms) {
		n := 0
		if M != nil {
			n = M.NVecs()
		}
		return CError{fmt.Sprintf("Wrong number of coordinates: %d for %d atoms", n, len(C.Atoms)), []string{"SetCoords"}}
	}
	for i, v := range C.Atoms {
		v.Position = M.Vec(i)
	}
	return nil
}

// Corrupted checks whether the configuration is corrupted, i.e. some atom lacks
// a name or residue, or its residue is not in the residue set of the configuration
// (an equal copy of the residue doesn't count). It returns nil if the configuration
// is consistent.
func (C *Configuration) Corrupted() error {
	inset := make(map[*Residue]bool, C.Residues.Len())
	for _, v := range C.Residues.All() {
		inset[v] = true
	}
	for i, v := range C.Atoms {
		if v == nil || v.Name == nil || v.Residue == nil {
			return CError{fmt.Sprintf("Atom %d is nil or lacks name or residue", i), []string{"Corrupted"}}
		}
		if !inset[v.Residue] {
			return CError{fmt.Sprintf("Residue %s of atom %d is not in the configuration", v.Residue.Name(), i), []string{"Corrupted"}}
		}
	}
	return nil
}

// IterResidues returns an iterator that groups the atoms of the configuration
// as the residues they form.
func (C *Configuration) IterResidues() *ResidueIter {
	return NewResidueIter(C.Atoms)
}

// ResidueGroups returns a sequence with the same results as IterResidues, to be used
// in range loops. Failed groups are given as a nil slice and a *ResidueError.
func (C *Configuration) ResidueGroups() iter.Seq2[[]*Atom, error] {
	return func(yield func([]*Atom, error) bool) {
		R := C.IterResidues()
		for {
			atoms, ok, err := R.Next()
			if !ok || !yield(atoms, err) {
				return
			}
		}
	}
}

// PBCMultiply returns a new configuration which extends C along each direction
// by nx, ny and nz periodic images, respectively. The new box is the old one multiplied
// by the number of images. For each image, copies of all the atoms of C are translated,
// with the z image changing fastest, then y, then x. The copies share the name and residue
// handles of the originals. Negative numbers of images are taken as zero.
func (C *Configuration) PBCMultiply(nx, ny, nz int) *Configuration {
	nx, ny, nz = max(nx, 0), max(ny, 0), max(nz, 0)
	N := &Configuration{
		Title:    C.Title,
		Origin:   C.Origin,
		Size:     C.Size.PBCMultiply(nx, ny, nz),
		Residues: C.Residues.Clone(),
		Atoms:    make([]*Atom, 0, len(C.Atoms)*nx*ny*nz),
	}
	for ix := 1; ix <= nx; ix++ {
		for iy := 1; iy <= ny; iy++ {
			for iz := 1; iz <= nz; iz++ {
				dr := C.Size.PBCMultiply(ix-1, iy-1, iz-1)
				for _, v := range C.Atoms {
					A := v.Copy()
					A.Position = v.Position.Add(dr)
					N.Atoms = append(N.Atoms, A)
				}
			}
		}
	}
	return N
}

// Box returns the origin and size of the periodic box of the configuration.
func (C *Configuration) Box() (origin, size v3.Vec) {
	return C.Origin, C.Size
}
