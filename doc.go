/*
 * doc.go, part of mdconf.
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

/*
Package chem is the main package of mdconf. It provides the data model for molecular
dynamics configurations: atoms, the residues they belong to, their positions and
velocities, and the periodic box that contains them.

Residue and atom names are interned. Each residue keeps the ordered list of the atom
names it declares (its template) as shared *Name handles, and every Atom points to one
of those handles and to its Residue. Renaming a Name is thus seen by every atom holding
it, and comparing handles (not text) tells whether an atom occupies a given slot of its
residue's template.

The atoms of a Configuration are stored as a flat slice. Residues are not stored as
groups but reconstructed on demand by ResidueIter, which checks each group against its
residue's template and reports the ones that don't match.

Reading and writing the GROMOS87 (.gro) format is implemented in the gro subpackage.
*/
package chem
