/*
 * geom.go, part of gocrystal
 *
 * Copyright 2024 Rodrigo Solis <rsolis{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

//Package geom builds common crystal structures and surface slabs.
package geom

import (
	"math"

	chem "github.com/rsolis/gocrystal"
	v3 "github.com/rsolis/gocrystal/v3"
)

var (
	s30 = 0.5
	s60 = math.Sqrt(3) / 2
	c30 = s60
	c60 = s30
)

//SC returns a simple cubic lattice with one atom.
func SC(alat float64, atom *chem.Atom) *chem.Geometry {
	return chem.SingleAtomGeometry(atom, chem.CubicLattice(alat))
}

//BCC returns a body-centered cubic lattice, with one atom in the
//primitive cell or two in the orthogonal (conventional) one.
func BCC(alat float64, atom *chem.Atom, orthogonal bool) *chem.Geometry {
	if orthogonal {
		ah := alat / 2
		coords, _ := v3.NewMatrix([]float64{
			0, 0, 0,
			ah, ah, ah,
		})
		g, _ := chem.NewGeometry(coords, []*chem.Atom{atom.Copy(), atom.Copy()}, chem.CubicLattice(alat))
		return g
	}
	lat := chem.LatticeFromVectors([3][3]float64{
		{-alat / 2, alat / 2, alat / 2},
		{alat / 2, -alat / 2, alat / 2},
		{alat / 2, alat / 2, -alat / 2},
	})
	return chem.SingleAtomGeometry(atom, lat)
}

//FCC returns a face-centered cubic lattice, with one atom in the
//primitive cell or four in the orthogonal (conventional) one.
func FCC(alat float64, atom *chem.Atom, orthogonal bool) *chem.Geometry {
	if orthogonal {
		ah := alat / 2
		coords, _ := v3.NewMatrix([]float64{
			0, 0, 0,
			ah, ah, 0,
			ah, 0, ah,
			0, ah, ah,
		})
		atoms := []*chem.Atom{atom.Copy(), atom.Copy(), atom.Copy(), atom.Copy()}
		g, _ := chem.NewGeometry(coords, atoms, chem.CubicLattice(alat))
		return g
	}
	lat := chem.LatticeFromVectors([3][3]float64{
		{0, alat / 2, alat / 2},
		{alat / 2, 0, alat / 2},
		{alat / 2, alat / 2, 0},
	})
	return chem.SingleAtomGeometry(atom, lat)
}

//HCP returns a hexagonal closed packed lattice, with two atoms in the
//primitive cell or four in an orthogonal one. coa is the c/a ratio; the
//ideal packing has c/a = 1.63333.
func HCP(a float64, atom *chem.Atom, coa float64, orthogonal bool) *chem.Geometry {
	c := a * coa
	if !orthogonal {
		lat := chem.LatticeFromParams(a, a, c, 90, 90, 60)
		a3sq := a / math.Sqrt(3)
		coords, _ := v3.NewMatrix([]float64{
			0, 0, 0,
			a3sq * c30, a3sq * s30, c / 2,
		})
		g, _ := chem.NewGeometry(coords, []*chem.Atom{atom.Copy(), atom.Copy()}, lat)
		return g
	}
	lat := chem.DiagonalLattice([3]float64{a + a*c60*2, a * c30 * 2, c / 2})
	coords, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		a, 0, 0,
		a * s30, a * c30, 0,
		a * (1 + s30), a * c30, 0,
	})
	atoms := []*chem.Atom{atom.Copy(), atom.Copy(), atom.Copy(), atom.Copy()}
	bottom, _ := chem.NewGeometry(coords, atoms, lat)
	//the top half is the bottom one mirrored through the cell edge
	top := bottom.Copy()
	tc := top.Coords()
	by := lat.At(1, 1)
	tc.Set(0, 1, tc.At(0, 1)+by)
	tc.Set(1, 1, tc.At(1, 1)+by)
	mins := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	for i := 0; i < top.Len(); i++ {
		for j := 0; j < 3; j++ {
			if tc.At(i, j) < mins[j] {
				mins[j] = tc.At(i, j)
			}
		}
	}
	top = top.Move(-mins[0], -mins[1]+a*s30/2, -mins[2])
	return appendAlong(bottom, top, 2)
}

//Rocksalt returns a two-element rocksalt crystal, two interlocked FCC
//lattices, with 2 atoms in the primitive cell or 8 in the orthogonal one.
func Rocksalt(alat float64, atoms [2]*chem.Atom, orthogonal bool) *chem.Geometry {
	g1 := FCC(alat, atoms[0], orthogonal)
	g2 := FCC(alat, atoms[1], orthogonal).Move(alat/2, alat/2, alat/2)
	g, _ := g1.Add(g2)
	tidy(g)
	return g
}

func twoAtomCoords(x1, y1, z1, x2, y2, z2 float64) *v3.Matrix {
	m, _ := v3.NewMatrix([]float64{x1, y1, z1, x2, y2, z2})
	return m
}

//appendAlong stacks B after A along the given lattice vector, growing
//that vector by B's. Both geometries must share the remaining vectors.
func appendAlong(A, B *chem.Geometry, axis int) *chem.Geometry {
	vec := A.Lattice().Vec(axis)
	moved := B.Move(vec[0], vec[1], vec[2])
	g, _ := A.Add(moved)
	lat := g.Lattice()
	bvec := B.Lattice().Vec(axis)
	for j := 0; j < 3; j++ {
		lat.Set(axis, j, lat.At(axis, j)+bvec[j])
	}
	return g
}

//tidy wraps all atoms into the cell and sorts them layer by layer. The
//tiny displacement keeps atoms sitting exactly on the far cell boundary
//from being wrapped to the opposite side by roundoff.
func tidy(g *chem.Geometry) {
	const d = 1e-4
	c := g.Coords()
	c.AddRow(c, d, d, d)
	g.WrapToCell()
	c = g.Coords()
	c.AddRow(c, -d, -d, -d)
	g.ClampToOrigin()
	g.SortZYX()
}
