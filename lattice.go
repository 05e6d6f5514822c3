/*
 * lattice.go, part of gocrystal.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*Note: several functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong with a 3x3 cell the
 * program is way-most likely wrong and should crash.*/

// Lattice holds the 3 lattice vectors of a periodic cell, one per row.
type Lattice struct {
	cell *mat.Dense //3x3, row i is the ith lattice vector
}

// NewLattice builds a lattice from a 3x3 matrix with one lattice vector
// per row. The data is copied.
func NewLattice(vectors *mat.Dense) (*Lattice, error) {
	r, c := vectors.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("Lattice needs a 3x3 cell, got %dx%d", r, c)
	}
	L := &Lattice{cell: mat.NewDense(3, 3, nil)}
	L.cell.Copy(vectors)
	return L, nil
}

// LatticeFromVectors builds a lattice from 3 explicit lattice vectors.
func LatticeFromVectors(v [3][3]float64) *Lattice {
	L := &Lattice{cell: mat.NewDense(3, 3, nil)}
	for i := 0; i < 3; i++ {
		L.cell.SetRow(i, v[i][:])
	}
	return L
}

// CubicLattice returns a cubic cell with lattice parameter alat.
func CubicLattice(alat float64) *Lattice {
	return DiagonalLattice([3]float64{alat, alat, alat})
}

// DiagonalLattice returns an orthogonal cell with the given vector lengths
// along the cartesian axes.
func DiagonalLattice(lengths [3]float64) *Lattice {
	L := &Lattice{cell: mat.NewDense(3, 3, nil)}
	for i := 0; i < 3; i++ {
		L.cell.Set(i, i, lengths[i])
	}
	return L
}

// LatticeFromParams builds a lattice from cell lengths a, b, c and the
// angles alpha, beta, gamma (in degrees) between them, with the first
// vector along x and the second in the xy plane.
func LatticeFromParams(a, b, c, alpha, beta, gamma float64) *Lattice {
	ca := math.Cos(alpha * math.Pi / 180)
	cb := math.Cos(beta * math.Pi / 180)
	cg := math.Cos(gamma * math.Pi / 180)
	sg := math.Sin(gamma * math.Pi / 180)
	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(1 - cb*cb - cy*cy)
	return LatticeFromVectors([3][3]float64{
		{a, 0, 0},
		{b * cg, b * sg, 0},
		{c * cb, c * cy, c * cz},
	})
}

// Copy returns a deep copy of the lattice.
func (L *Lattice) Copy() *Lattice {
	if L == nil {
		return nil
	}
	N, _ := NewLattice(L.cell) //cant fail, the receiver cell is 3x3
	return N
}

// At returns the jth cartesian component of the ith lattice vector.
func (L *Lattice) At(i, j int) float64 {
	return L.cell.At(i, j)
}

// Set sets the jth cartesian component of the ith lattice vector.
func (L *Lattice) Set(i, j int, v float64) {
	L.cell.Set(i, j, v)
}

// Vec returns a copy of the ith lattice vector.
func (L *Lattice) Vec(i int) [3]float64 {
	return [3]float64{L.cell.At(i, 0), L.cell.At(i, 1), L.cell.At(i, 2)}
}

// Cell returns a copy of the 3x3 cell matrix.
func (L *Lattice) Cell() *mat.Dense {
	r := mat.NewDense(3, 3, nil)
	r.Copy(L.cell)
	return r
}

// Volume returns the absolute value of the cell volume.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.cell))
}

// Scale multiplies every lattice vector by f.
func (L *Lattice) Scale(f float64) {
	L.cell.Scale(f, L.cell)
}

// ScaleVec multiplies the ith lattice vector by f.
func (L *Lattice) ScaleVec(i int, f float64) {
	for j := 0; j < 3; j++ {
		L.cell.Set(i, j, L.cell.At(i, j)*f)
	}
}

// AddVacuum lengthens the given lattice vector along its own axis-aligned
// component by length, which separates a slab from its periodic images.
// It panics if the axis is out of range.
func (L *Lattice) AddVacuum(axis int, length float64) {
	if axis < 0 || axis > 2 {
		panic("Lattice: vacuum axis out of range")
	}
	L.cell.Set(axis, axis, L.cell.At(axis, axis)+length)
}

// Inverse returns the inverse of the cell matrix, used to obtain
// fractional coordinates. It fails on a singular (zero volume) cell.
func (L *Lattice) Inverse() (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(L.cell); err != nil {
		return nil, fmt.Errorf("Lattice: cell is singular: %v", err)
	}
	return &inv, nil
}
