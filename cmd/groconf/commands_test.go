/*
 * commands_test.go, part of mdconf.
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

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	chem "github.com/rmera/mdconf"
	"github.com/rmera/mdconf/gro"
	v3 "github.com/rmera/mdconf/v3"
)

const water = "../../gro/test/water.gro"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParsePBC(t *testing.T) {
	n, err := parsePBC("2, 1,3")
	if err != nil || n != [3]int{2, 1, 3} {
		t.Errorf("parsePBC = %v, %v", n, err)
	}
	for _, s := range []string{"", "1,2", "1,2,x", "1,0,1", "1,2,3,4"} {
		if _, err := parsePBC(s); err == nil {
			t.Errorf("parsePBC(%q) should fail", s)
		}
	}
}

func TestSummarize(t *testing.T) {
	C, err := gro.FileRead(water)
	if err != nil {
		t.Fatal(err)
	}
	s, err := summarize(water, C)
	if err != nil {
		t.Fatal(err)
	}
	if s.Atoms != 7 || len(s.Residues) != 2 || s.Residues[0].Groups != 2 || s.Residues[1].Groups != 1 || s.BadGroups != 0 {
		t.Errorf("summary = %+v", s)
	}
	var b bytes.Buffer
	s.print(&b)
	if !strings.Contains(b.String(), "SOL        2 x [OW HW1 HW2]") {
		t.Errorf("printed summary = %q", b.String())
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back summary
	if err := yaml.Unmarshal(out, &back); err != nil || back.Title != s.Title || back.Residues[0].Atoms[2] != "HW2" {
		t.Errorf("YAML summary = %s, %v", out, err)
	}
}

func TestSummarizeForeignResidue(t *testing.T) {
	C := chem.NewConfiguration("foreign")
	C.AddAtom("SOL", "OW", v3.Vec{}, nil)
	C.Atoms = append(C.Atoms, &chem.Atom{Name: chem.NewName("NA"), Residue: chem.NewResidue("NA", "NA")})
	if _, err := summarize("foreign", C); err == nil {
		t.Error("a residue outside the set should fail")
	}
}

func TestConvertAndCheck(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "big.gro.zst")
	C, err := convert(water, out, "2,2,1", "Replicated", 3)
	if err != nil {
		t.Fatal(err)
	}
	if C.Len() != 28 || C.Title != "Replicated" {
		t.Errorf("converted configuration has %d atoms, title %q", C.Len(), C.Title)
	}
	bad := filepath.Join(dir, "bad.gro")
	content := "Broken water\n4\n" +
		"    1SOL     OW    1   0.126   1.624   1.679\n" +
		"    1SOL    HW1    2   0.190   1.661   1.747\n" +
		"    1SOL    HW2    3   0.177   1.568   1.613\n" +
		"    2SOL    HW1    4   1.337   0.002   0.680\n" +
		"   1.86206   1.86206   1.86206\n"
	if err := os.WriteFile(bad, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.gro")
	reports, err := checkFiles(context.Background(), []string{out, bad, missing, water}, 2, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if !reports[0].ok() || reports[0].Groups != 12 {
		t.Errorf("report for %s = %+v", out, reports[0])
	}
	if reports[1].ok() || len(reports[1].Bad) != 1 || reports[1].Bad[0].Index != 3 || reports[1].Groups != 1 {
		t.Errorf("report for %s = %+v", bad, reports[1])
	}
	if reports[2].Err == nil {
		t.Errorf("a missing file should fail")
	}
	if !reports[3].ok() || reports[3].File != water {
		t.Errorf("reports should keep the order of the files: %+v", reports[3])
	}
}
