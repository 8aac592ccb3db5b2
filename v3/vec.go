/*
 * vec.go, part of mdconf.
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
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point, or a displacement, in 3D space. It has no identity, copies
// are independent.
type Vec struct {
	X, Y, Z float64
}

// Axis identifies one of the three principal axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// ParseAxis returns the axis named by s ("x", "y" or "z", case insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return X, Error{fmt.Sprintf("Unknown axis %q", s), []string{"ParseAxis"}, true}
}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Add returns v+u
func (v Vec) Add(u Vec) Vec {
	return Vec(r3.Add(r3.Vec(v), r3.Vec(u)))
}

// Sub returns v-u
func (v Vec) Sub(u Vec) Vec {
	return Vec(r3.Sub(r3.Vec(v), r3.Vec(u)))
}

// Neg returns -v
func (v Vec) Neg() Vec {
	return Vec(r3.Scale(-1, r3.Vec(v)))
}

// Scale returns v multiplied by f.
func (v Vec) Scale(f float64) Vec {
	return Vec(r3.Scale(f, r3.Vec(v)))
}

// Dot returns the dot product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(u))
}

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	return r3.Norm(r3.Vec(v))
}

// Distance returns the Euclidean distance between v and u.
func (v Vec) Distance(u Vec) float64 {
	return r3.Norm(r3.Sub(r3.Vec(u), r3.Vec(v)))
}

// Component returns the component of v along the axis a.
// It panics if a is not a valid axis.
func (v Vec) Component(a Axis) float64 {
	switch a {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	}
	panic(ErrBadAxis)
}

// WithComponent returns a copy of v where the component along a is replaced by f.
func (v Vec) WithComponent(a Axis, f float64) Vec {
	switch a {
	case X:
		v.X = f
	case Y:
		v.Y = f
	case Z:
		v.Z = f
	default:
		panic(ErrBadAxis)
	}
	return v
}

// CylDistance decomposes the distance between v and u in cylindrical terms around
// the principal axis a. axial is the absolute separation along a, radial is the
// distance between both points projected on the plane perpendicular to a.
func (v Vec) CylDistance(u Vec, a Axis) (axial, radial float64) {
	d := u.Sub(v)
	axial = math.Abs(d.Component(a))
	radial = d.WithComponent(a, 0).Norm()
	return axial, radial
}

// PBCMultiply returns v with each component multiplied by the corresponding
// number of periodic images. This is used to obtain both the size of a replicated box
// and the translation of each image.
func (v Vec) PBCMultiply(nx, ny, nz int) Vec {
	return Vec{v.X * float64(nx), v.Y * float64(ny), v.Z * float64(nz)}
}

// String returns a compact representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
