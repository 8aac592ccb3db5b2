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
Package v3 implements the 3D vector type used for positions, velocities and box sizes
in mdconf, the parsing primitives the fixed-width codecs need to read them, and a Matrix
type representing a row-major Nx3 block of such vectors.

Vec is a plain value based on gonum's spatial/r3 vector. Matrix is based on gonum's
(gonum.org/v1/gonum/mat) Dense type, with some additional restrictions because of the fixed
number of columns, and with the functions that were found useful for the purposes of mdconf.
*/
package v3
