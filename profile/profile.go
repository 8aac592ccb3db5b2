/*
 * profile.go, part of mdconf.
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

package profile

import (
	"fmt"
	"math"
	"slices"
	"strings"

	chem "github.com/rmera/mdconf"
	v3 "github.com/rmera/mdconf/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Profile is a histogram of the positions of a set of atoms along one axis
// of their periodic box. The bins evenly divide the box along the axis.
type Profile struct {
	Axis       v3.Axis
	Dividers   []float64 //bin edges, one more than the bins.
	Counts     []float64 //number of atoms in each bin, or their fraction, if normalized.
	Total      int       //atoms in the histogram.
	area       float64   //section of the box perpendicular to the axis.
	normalized bool
}

// wrap returns the image of x in the periodic interval [o, o+l).
func wrap(x, o, l float64) float64 {
	r := math.Mod(x-o, l)
	if r < 0 {
		r += l
	}
	x = r + o
	if x >= o+l {
		//rounding.
		x = math.Nextafter(o+l, math.Inf(-1))
	}
	return x
}

// Density returns the profile of the atoms in B along the axis, with bins bins over the
// periodic box of B. Atoms outside the box are counted where their periodic image
// inside the box falls. The box must have a non-zero size along the axis.
func Density(B chem.Boxer, axis v3.Axis, bins int) (*Profile, error) {
	if bins < 1 {
		return nil, fmt.Errorf("mdconf/profile: at least one bin needed, got %d", bins)
	}
	if axis < v3.X || axis > v3.Z {
		return nil, fmt.Errorf("mdconf/profile: invalid axis %d", axis)
	}
	o, size := B.Box()
	l := size.Component(axis)
	if l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return nil, fmt.Errorf("mdconf/profile: box size along %s is %g", axis, l)
	}
	P := &Profile{Axis: axis, Counts: make([]float64, bins), Total: B.Len()}
	start := o.Component(axis)
	P.Dividers = floats.Span(make([]float64, bins+1), start, start+l)
	x := make([]float64, 0, B.Len())
	for i := range B.Len() {
		x = append(x, wrap(B.Atom(i).Position.Component(axis), start, l))
	}
	slices.Sort(x)
	stat.Histogram(P.Counts, P.Dividers, x, nil)
	P.area = 1
	for _, v := range []v3.Axis{v3.X, v3.Y, v3.Z} {
		if v != axis {
			P.area *= size.Component(v)
		}
	}
	return P, nil
}

// Bins returns the number of bins in the profile.
func (P *Profile) Bins() int {
	return len(P.Counts)
}

// Centers returns the middle points of the bins.
func (P *Profile) Centers() []float64 {
	c := make([]float64, len(P.Counts))
	for i := range c {
		c[i] = (P.Dividers[i] + P.Dividers[i+1]) / 2
	}
	return c
}

// Normalized returns true if the profile is normalized.
func (P *Profile) Normalized() bool {
	return P.normalized
}

// Normalize divides the counts by the total number of atoms, so they add to 1.
// It does nothing to a normalized or empty profile.
func (P *Profile) Normalize() {
	if P.normalized || P.Total == 0 {
		return
	}
	floats.Scale(1/float64(P.Total), P.Counts)
	P.normalized = true
}

// Densities returns the number of atoms per volume unit in each bin. It fails if
// the box has no volume.
func (P *Profile) Densities() ([]float64, error) {
	width := P.Dividers[1] - P.Dividers[0]
	vol := P.area * width
	if vol <= 0 {
		return nil, fmt.Errorf("mdconf/profile: box has no volume")
	}
	d := slices.Clone(P.Counts)
	if P.normalized {
		floats.Scale(float64(P.Total), d)
	}
	floats.Scale(1/vol, d)
	return d, nil
}

// Mean returns the average position of the atoms along the axis, taking each atom
// as placed in the center of its bin.
func (P *Profile) Mean() float64 {
	if floats.Sum(P.Counts) == 0 {
		return math.NaN()
	}
	return stat.Mean(P.Centers(), P.Counts)
}

// String prints a two-column table with the centers of the bins and the counts.
func (P *Profile) String() string {
	lines := make([]string, 0, len(P.Counts))
	c := P.Centers()
	format := "%9.4f %9.0f"
	if P.normalized {
		format = "%9.4f %9.5f"
	}
	for i, v := range P.Counts {
		lines = append(lines, fmt.Sprintf(format, c[i], v))
	}
	return strings.Join(lines, "\n")
}

// Plot saves a line plot of the profile to filename. The format of the
// image is taken from the extension of filename (png, svg, pdf, etc).
func (P *Profile) Plot(filename, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = P.Axis.String() + " (nm)"
	p.Y.Label.Text = "Atoms"
	if P.normalized {
		p.Y.Label.Text = "Fraction of atoms"
	}
	p.X.Min = P.Dividers[0]
	p.X.Max = P.Dividers[len(P.Dividers)-1]
	pts := make(plotter.XYs, len(P.Counts))
	for i, v := range P.Centers() {
		pts[i].X = v
		pts[i].Y = P.Counts[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mdconf/profile: can't plot: %w", err)
	}
	p.Add(plotter.NewGrid(), l)
	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("mdconf/profile: can't save plot to %s: %w", filename, err)
	}
	return nil
}
