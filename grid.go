/*
 * grid.go, part of gocrystal.
 *
 * Copyright 2024 Rodrigo Solis <rsolis{at}protonDOTme>
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

package crystal

import "fmt"

// Grid is a scalar field sampled on a regular grid spanning the cell of an
// associated geometry. Values are stored with the first index varying
// fastest, the order in which plane-wave codes write them.
type Grid struct {
	shape [3]int
	data  []float64
	geom  *Geometry
}

// NewGrid returns a zero-filled grid with the given number of points along
// each lattice vector. geom may be nil.
func NewGrid(shape [3]int, geom *Geometry) (*Grid, error) {
	n := shape[0] * shape[1] * shape[2]
	if n <= 0 {
		return nil, fmt.Errorf("Grid of invalid shape %v", shape)
	}
	return &Grid{shape: shape, data: make([]float64, n), geom: geom}, nil
}

// GridFromData wraps the given values, which must be len =
// shape[0]*shape[1]*shape[2], without copying them.
func GridFromData(shape [3]int, data []float64, geom *Geometry) (*Grid, error) {
	if len(data) != shape[0]*shape[1]*shape[2] {
		return nil, fmt.Errorf("Grid of shape %v needs %d values, got %d", shape, shape[0]*shape[1]*shape[2], len(data))
	}
	return &Grid{shape: shape, data: data, geom: geom}, nil
}

// Shape returns the number of grid points along each lattice vector.
func (g *Grid) Shape() [3]int {
	return g.shape
}

// Len returns the total number of grid points.
func (g *Grid) Len() int {
	return len(g.data)
}

// Geometry returns the geometry the grid spans, nil if there is none.
func (g *Grid) Geometry() *Geometry {
	return g.geom
}

// Data returns the underlying values. It is not a copy.
func (g *Grid) Data() []float64 {
	return g.data
}

// At returns the value at grid point (i, j, k). Panics if out of range.
func (g *Grid) At(i, j, k int) float64 {
	return g.data[g.index(i, j, k)]
}

// Set sets the value at grid point (i, j, k). Panics if out of range.
func (g *Grid) Set(i, j, k int, v float64) {
	g.data[g.index(i, j, k)] = v
}

func (g *Grid) index(i, j, k int) int {
	if i < 0 || j < 0 || k < 0 || i >= g.shape[0] || j >= g.shape[1] || k >= g.shape[2] {
		panic(fmt.Sprintf("Grid: point (%d %d %d) out of a %v grid", i, j, k, g.shape))
	}
	return i + g.shape[0]*(j+g.shape[1]*k)
}

// Scale multiplies every value by f.
func (g *Grid) Scale(f float64) {
	for i := range g.data {
		g.data[i] *= f
	}
}

// Sum returns the sum of all values.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.data {
		s += v
	}
	return s
}
