/*
 * matrix.go, part of mdconf.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, one per row. Within the package it is
// understood that a "vector" is a row vector, i.e. the cartesian coordinates of a
// point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	if vecs == 0 {
		//gonum doesn't allow zero-length dimensions.
		return &Matrix{new(mat.Dense)}
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	if F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) Vec {
	row := F.RawRowView(i)
	return Vec{row[0], row[1], row[2]}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v Vec) {
	row := F.RawRowView(i)
	row[0], row[1], row[2] = v.X, v.Y, v.Z
}

// VecView returns a view of the ith vector of F. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// Col returns a copy of the components of all vectors along the axis a.
func (F *Matrix) Col(a Axis) []float64 {
	if F.NVecs() == 0 {
		return nil
	}
	return mat.Col(nil, int(a), F.Dense)
}

// AddVec adds the vector v to each vector of the matrix A, putting the
// result in the receiver. Panics if the matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, v Vec) {
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		F.SetVec(i, A.Vec(i).Add(v))
	}
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
