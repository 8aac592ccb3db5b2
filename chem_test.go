/*
 * chem_test.go, part of mdconf.
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
	"errors"
	"fmt"
	"testing"

	v3 "github.com/rmera/mdconf/v3"
)

func TestInterning(Te *testing.T) {
	fmt.Println("Interning test!")
	S := new(ResidueSet)
	r1, n1 := LookupOrInsertAtomAndResidue("SOL", "OW", S)
	r2, n2 := LookupOrInsertAtomAndResidue("SOL", "OW", S)
	if r1 != r2 || n1 != n2 {
		Te.Error("Interning the same names twice should give the same handles")
	}
	_, h1 := LookupOrInsertAtomAndResidue("SOL", "HW1", S)
	if h1 == n1 {
		Te.Error("Different atom names should not share a handle")
	}
	r3, n3 := LookupOrInsertAtomAndResidue("NA", "OW", S)
	if r3 == r1 || n3 == n1 {
		Te.Error("The same atom name in different residues should be different slots")
	}
	if S.Len() != 2 || S.At(0) != r1 || S.At(1) != r3 {
		Te.Errorf("Residues should be kept in first-seen order: %v", S.All())
	}
	if r1.Len() != 2 || r1.Atom(0) != n1 || r1.Atom(1) != h1 || r1.Slot(h1) != 1 {
		Te.Errorf("Bad template for %s", r1)
	}
	if S.Index(NewResidue("SOL", "OW", "HW1")) != -1 {
		Te.Error("An equal residue should not be found by identity")
	}
	R := NewResidue("ALA", "N", "CA", "N", "C")
	if R.Len() != 3 {
		Te.Errorf("Repeated atom names should collapse: %s", R)
	}
	if err := S.Add(R); err != nil {
		Te.Error(err)
	}
	if err := S.Add(R); err == nil {
		Te.Error("Adding a residue twice should fail")
	}
	if err := S.Add(NewResidue("ALA")); err == nil {
		Te.Error("Adding a residue with a taken name should fail")
	}
	if _, err := NewResidueSet(NewResidue("A"), NewResidue("A")); err == nil {
		Te.Error("NewResidueSet should reject repeated names")
	}
	C := S.Clone()
	C.LookupOrInsert("CL")
	if S.Len() != 3 || C.Len() != 4 || C.At(0) != r1 {
		Te.Errorf("Clone should share residues but not the list: %d %d", S.Len(), C.Len())
	}
}

func TestRename(Te *testing.T) {
	fmt.Println("Rename test!")
	C := NewConfiguration("rename")
	a := C.AddAtom("SOL", "OW", v3.Vec{}, nil)
	b := C.AddAtom("SOL", "OW", v3.Vec{X: 1, Y: 1, Z: 1}, nil)
	a.Name.Rename("O")
	if b.Name.String() != "O" {
		Te.Errorf("Rename should be seen by all holders, got %s", b.Name)
	}
	R, N := LookupOrInsertAtomAndResidue("SOL", "O", C.Residues)
	if N != a.Name || R.Len() != 1 {
		Te.Error("Lookup after a rename should find the renamed handle")
	}
	_, N = LookupOrInsertAtomAndResidue("SOL", "OW", C.Residues)
	if N == a.Name || R.Len() != 2 {
		Te.Error("The old text should not find the renamed handle")
	}
	R.Name().Rename("WAT")
	if C.Residues.Find("WAT") != R || C.Residues.Find("SOL") != nil {
		Te.Error("Residue lookups should follow renames")
	}
	if err := C.Corrupted(); err != nil {
		Te.Error(err)
	}
}

// template [AT1, AT2]
func twoAtomConf(names ...string) *Configuration {
	C := NewConfiguration("grouping")
	LookupOrInsertAtomAndResidue("RES", "AT1", C.Residues)
	LookupOrInsertAtomAndResidue("RES", "AT2", C.Residues)
	for i, v := range names {
		C.AddAtom("RES", v, v3.Vec{X: float64(i), Y: 0, Z: 0}, nil)
	}
	return C
}

type group struct {
	ok    bool
	start int
	span  int
}

func groups(Te *testing.T, C *Configuration) []group {
	var ret []group
	R := C.IterResidues()
	for {
		start := R.Index()
		atoms, ok, err := R.Next()
		if !ok {
			break
		}
		if err != nil {
			var rerr *ResidueError
			if !errors.As(err, &rerr) {
				Te.Fatalf("Unexpected error type %T", err)
			}
			if rerr.Index != start {
				Te.Errorf("Error index %d, expected %d", rerr.Index, start)
			}
			ret = append(ret, group{false, rerr.Index, rerr.Span})
			continue
		}
		if atoms[0] != C.Atoms[start] {
			Te.Errorf("Group should start at atom %d", start)
		}
		ret = append(ret, group{true, start, len(atoms)})
	}
	if _, ok, _ := R.Next(); ok {
		Te.Error("A finished iterator should stay finished")
	}
	return ret
}

func TestResidueIter(Te *testing.T) {
	fmt.Println("Residue grouping test!")
	cases := []struct {
		names []string
		want  []group
	}{
		{nil, nil},
		{[]string{"AT1", "AT2"}, []group{{true, 0, 2}}},
		{[]string{"AT1", "AT2", "AT1", "AT2"}, []group{{true, 0, 2}, {true, 2, 2}}},
		{[]string{"AT2"}, []group{{false, 0, 1}}},
		{[]string{"AT1"}, []group{{false, 0, 1}}},
		{[]string{"AT2", "AT1", "AT2"}, []group{{false, 0, 1}, {true, 1, 2}}},
		{[]string{"AT1", "AT2", "AT1", "AT1", "AT1", "AT2"},
			[]group{{true, 0, 2}, {false, 2, 1}, {false, 3, 1}, {true, 4, 2}}},
	}
	for _, c := range cases {
		got := groups(Te, twoAtomConf(c.names...))
		if fmt.Sprint(got) != fmt.Sprint(c.want) {
			Te.Errorf("Atoms %v: got %v, want %v", c.names, got, c.want)
		}
		total := 0
		for _, v := range got {
			total += v.span
		}
		if total != len(c.names) {
			Te.Errorf("Atoms %v: spans add to %d", c.names, total)
		}
	}
}

func TestResidueIterMixed(Te *testing.T) {
	C := NewConfiguration("mixed")
	for range 2 {
		C.AddAtom("SOL", "OW", v3.Vec{}, nil)
		C.AddAtom("SOL", "HW1", v3.Vec{}, nil)
		C.AddAtom("SOL", "HW2", v3.Vec{}, nil)
		C.AddAtom("NA", "NA", v3.Vec{}, nil)
	}
	C.AddAtom("SOL", "OW", v3.Vec{}, nil)
	C.AddAtom("SOL", "HW1", v3.Vec{}, nil)
	C.AddAtom("NA", "NA", v3.Vec{}, nil)
	want := []group{{true, 0, 3}, {true, 3, 1}, {true, 4, 3}, {true, 7, 1}, {false, 8, 2}, {true, 10, 1}}
	if got := groups(Te, C); fmt.Sprint(got) != fmt.Sprint(want) {
		Te.Errorf("got %v, want %v", got, want)
	}
	n := 0
	for atoms, err := range C.ResidueGroups() {
		if err != nil {
			n++
			if atoms != nil {
				Te.Error("Failed groups should have no atoms")
			}
		}
	}
	if n != 1 {
		Te.Errorf("ResidueGroups gave %d errors, expected 1", n)
	}
}

func TestPBCMultiply(Te *testing.T) {
	fmt.Println("Replication test!")
	C := NewConfiguration("pbc")
	C.Size = v3.Vec{X: 1, Y: 2, Z: 3}
	vel := v3.Vec{X: 0.1, Y: 0.2, Z: 0.3}
	C.AddAtom("SOL", "OW", v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, &vel)
	C.AddAtom("SOL", "HW1", v3.Vec{X: 0.6, Y: 0.5, Z: 0.5}, &vel)
	P := C.PBCMultiply(2, 1, 3)
	if P.Size != (v3.Vec{X: 2, Y: 2, Z: 9}) || P.Title != C.Title {
		Te.Errorf("Bad replicated box %v", P.Size)
	}
	if P.Len() != 12 {
		Te.Fatalf("Expected 12 atoms, got %d", P.Len())
	}
	//z changes fastest.
	if p := P.Atom(2).Position; p != (v3.Vec{X: 0.5, Y: 0.5, Z: 3.5}) {
		Te.Errorf("Bad position for the second image: %v", p)
	}
	if p := P.Atom(6).Position; p != (v3.Vec{X: 1.5, Y: 0.5, Z: 0.5}) {
		Te.Errorf("Bad position for the first x image: %v", p)
	}
	if P.Atom(7).Name != C.Atom(1).Name || P.Atom(7).Residue != C.Atom(1).Residue {
		Te.Error("Images should share the handles of the original atoms")
	}
	if *P.Atom(11).Velocity != vel || P.Atom(11).Velocity == C.Atom(1).Velocity {
		Te.Error("Images should have copies of the velocities")
	}
	if err := P.Corrupted(); err != nil {
		Te.Error(err)
	}
	if Z := C.PBCMultiply(2, 0, 2); Z.Len() != 0 {
		Te.Errorf("Zero images should give no atoms, got %d", Z.Len())
	}
	if N := C.PBCMultiply(-1, 1, 1); N.Len() != 0 {
		Te.Errorf("Negative images should give no atoms, got %d", N.Len())
	}
}

func TestCoords(Te *testing.T) {
	C := twoAtomConf("AT1", "AT2")
	M := C.Coords()
	if M.NVecs() != 2 || M.Vec(1) != (v3.Vec{X: 1, Y: 0, Z: 0}) {
		Te.Errorf("Bad coordinates %v", M)
	}
	M.AddVec(M, v3.Vec{X: 0, Y: 1, Z: 0})
	if err := C.SetCoords(M); err != nil {
		Te.Fatal(err)
	}
	if C.Atom(1).Position != (v3.Vec{X: 1, Y: 1, Z: 0}) {
		Te.Errorf("SetCoords didn't set the positions: %v", C.Atom(1))
	}
	if err := C.SetCoords(v3.Zeros(3)); err == nil {
		Te.Error("SetCoords should fail with the wrong number of vectors")
	}
	if C.HasVelocities() {
		Te.Error("Configuration has no velocities")
	}
	C.Atoms = append(C.Atoms, &Atom{Name: NewName("X"), Residue: NewResidue("X", "X")})
	if err := C.Corrupted(); err == nil {
		Te.Error("A residue outside the set should be detected")
	}
}
