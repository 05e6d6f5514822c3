/*
 * crystal.go, part of gocrystal.
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
	"sort"

	v3 "github.com/rsolis/gocrystal/v3"
)

// Atom contains the per-atom data except for the coordinates, which are
// kept in a matrix with one row per atom.
type Atom struct {
	Symbol string
	Tag    int //room for anything a caller wants to keep that is not a float
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := new(Atom)
	N.Symbol = A.Symbol
	N.Tag = A.Tag
	return N
}

// Geometry is a set of atoms with cartesian coordinates and, optionally, a
// periodic lattice. A nil lattice means an isolated (molecular) system.
type Geometry struct {
	coords *v3.Matrix
	atoms  []*Atom
	lat    *Lattice
}

// NewGeometry builds a geometry from coordinates (one row per atom), the
// corresponding atoms and a lattice, which may be nil. It returns an error
// if coords or atoms are nil or their lengths don't match.
func NewGeometry(coords *v3.Matrix, atoms []*Atom, lat *Lattice) (*Geometry, error) {
	if coords == nil {
		return nil, fmt.Errorf("Supplied a nil coordinate matrix")
	}
	if atoms == nil {
		return nil, fmt.Errorf("Supplied a nil atom slice")
	}
	if coords.NVecs() != len(atoms) {
		return nil, fmt.Errorf("Inconsistent coordinates/atoms: %d vs %d", coords.NVecs(), len(atoms))
	}
	g := new(Geometry)
	g.coords = coords
	g.atoms = atoms
	g.lat = lat
	return g, nil
}

// SingleAtomGeometry is a convenience for the common "1 atom in a cell"
// starting point of crystal builders.
func SingleAtomGeometry(atom *Atom, lat *Lattice) *Geometry {
	g, _ := NewGeometry(v3.Zeros(1), []*Atom{atom}, lat) //cant fail
	return g
}

// Len returns the number of atoms in the geometry.
func (G *Geometry) Len() int {
	return len(G.atoms)
}

// Atom returns the Atom corresponding to the index i. Panics if out of range.
func (G *Geometry) Atom(i int) *Atom {
	if i >= G.Len() {
		panic("Geometry: Requested Atom out of bounds")
	}
	return G.atoms[i]
}

// Coords returns the coordinate matrix of the geometry. It is not a copy:
// changes to the returned matrix affect the geometry.
func (G *Geometry) Coords() *v3.Matrix {
	return G.coords
}

// Lattice returns the lattice of the geometry, nil for isolated systems.
func (G *Geometry) Lattice() *Lattice {
	return G.lat
}

// Symbols returns the chemical symbols of all atoms, in order.
func (G *Geometry) Symbols() []string {
	s := make([]string, G.Len())
	for i, at := range G.atoms {
		s[i] = at.Symbol
	}
	return s
}

// Copy returns a deep copy of the geometry.
func (G *Geometry) Copy() *Geometry {
	coords := v3.Zeros(G.Len())
	coords.Copy(G.coords)
	atoms := make([]*Atom, G.Len())
	for i, at := range G.atoms {
		atoms[i] = at.Copy()
	}
	N, _ := NewGeometry(coords, atoms, G.lat.Copy()) //copying a consistent geometry cant fail
	return N
}

// Move returns a copy of the geometry with every atom displaced by x, y, z.
func (G *Geometry) Move(x, y, z float64) *Geometry {
	N := G.Copy()
	N.coords.AddRow(N.coords, x, y, z)
	return N
}

// Tile returns a copy of the geometry repeated n times along the given
// lattice vector, with that lattice vector grown accordingly. Atoms keep
// their original order within each replica, replicas are appended in order.
func (G *Geometry) Tile(n, axis int) *Geometry {
	if n < 1 {
		panic("Geometry: Tile needs n >= 1")
	}
	if G.lat == nil {
		panic("Geometry: Tile needs a lattice")
	}
	nat := G.Len()
	coords := v3.Zeros(nat * n)
	atoms := make([]*Atom, 0, nat*n)
	vec := G.lat.Vec(axis)
	for k := 0; k < n; k++ {
		block := coords.View(k*nat, 0, nat, 3)
		block.AddRow(G.coords, vec[0]*float64(k), vec[1]*float64(k), vec[2]*float64(k))
		for _, at := range G.atoms {
			atoms = append(atoms, at.Copy())
		}
	}
	lat := G.lat.Copy()
	lat.ScaleVec(axis, float64(n))
	N, _ := NewGeometry(coords, atoms, lat)
	return N
}

// Add returns a geometry with the atoms of B appended after the atoms of
// the receiver. The lattice of the receiver is kept.
func (G *Geometry) Add(B *Geometry) (*Geometry, error) {
	if B == nil {
		return nil, fmt.Errorf("Supplied a nil geometry")
	}
	coords := v3.Zeros(G.Len() + B.Len())
	coords.Stack(G.coords, B.coords)
	atoms := make([]*Atom, 0, G.Len()+B.Len())
	for _, at := range G.atoms {
		atoms = append(atoms, at.Copy())
	}
	for _, at := range B.atoms {
		atoms = append(atoms, at.Copy())
	}
	return NewGeometry(coords, atoms, G.lat.Copy())
}

// Fractional returns the coordinates of all atoms in units of the lattice
// vectors. It fails for isolated systems and singular cells.
func (G *Geometry) Fractional() (*v3.Matrix, error) {
	if G.lat == nil {
		return nil, fmt.Errorf("Geometry: fractional coordinates need a lattice")
	}
	inv, err := G.lat.Inverse()
	if err != nil {
		return nil, err
	}
	frac := v3.Zeros(G.Len())
	frac.Mul(G.coords, inv)
	return frac, nil
}

// WrapToCell translates every atom by integer multiples of the lattice
// vectors so that all fractional coordinates end up in [0, 1).
func (G *Geometry) WrapToCell() error {
	frac, err := G.Fractional()
	if err != nil {
		return err
	}
	for i := 0; i < G.Len(); i++ {
		for j := 0; j < 3; j++ {
			f := frac.At(i, j)
			frac.Set(i, j, f-math.Floor(f))
		}
	}
	G.coords.Mul(frac, G.lat.cell)
	return nil
}

// SortZYX reorders the atoms by their fractional coordinate along the third
// lattice vector, breaking ties with the second and then the first. Slab
// builders rely on this to obtain a layer-by-layer atom order.
func (G *Geometry) SortZYX() error {
	frac, err := G.Fractional()
	if err != nil {
		return err
	}
	idx := make([]int, G.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		for _, ax := range [3]int{2, 1, 0} {
			if frac.At(ia, ax) != frac.At(ib, ax) {
				return frac.At(ia, ax) < frac.At(ib, ax)
			}
		}
		return false
	})
	coords := v3.Zeros(G.Len())
	atoms := make([]*Atom, G.Len())
	for to, from := range idx {
		coords.SetVec(to, G.coords.VecView(from))
		atoms[to] = G.atoms[from]
	}
	G.coords = coords
	G.atoms = atoms
	return nil
}

// ClampToOrigin zeroes any (numerically) negative cartesian component of
// every atom. It is meant to clean up roundoff left behind by wrapping.
func (G *Geometry) ClampToOrigin() {
	for i := 0; i < G.Len(); i++ {
		for j := 0; j < 3; j++ {
			if G.coords.At(i, j) < 0 {
				G.coords.Set(i, j, 0)
			}
		}
	}
}
