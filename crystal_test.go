/*
 * crystal_test.go
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
 */

package crystal

import (
	"math"
	"testing"

	v3 "github.com/rsolis/gocrystal/v3"
)

func water(Te *testing.T, lat *Lattice) *Geometry {
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0.757, 0.586, 0,
		-0.757, 0.586, 0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	g, err := NewGeometry(coords, atoms, lat)
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func TestLatticeVolume(Te *testing.T) {
	if v := CubicLattice(3).Volume(); math.Abs(v-27) > 1e-12 {
		Te.Errorf("cubic volume: got %v, want 27", v)
	}
	//a left-handed cell still has positive volume
	lat := LatticeFromVectors([3][3]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	if v := lat.Volume(); math.Abs(v-1) > 1e-12 {
		Te.Errorf("swapped cell volume: got %v, want 1", v)
	}
}

func TestLatticeFromParams(Te *testing.T) {
	lat := LatticeFromParams(2, 2, 2, 90, 90, 90)
	cubic := CubicLattice(2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(lat.At(i, j)-cubic.At(i, j)) > 1e-9 {
				Te.Errorf("cell element (%d %d): got %v, want %v", i, j, lat.At(i, j), cubic.At(i, j))
			}
		}
	}
	//hexagonal cell, gamma of 60 degrees
	hex := LatticeFromParams(2, 2, 3, 90, 90, 60)
	if math.Abs(hex.At(1, 0)-1) > 1e-9 || math.Abs(hex.At(1, 1)-math.Sqrt(3)) > 1e-9 {
		Te.Errorf("hexagonal second vector: got %v %v", hex.At(1, 0), hex.At(1, 1))
	}
}

func TestLatticeVacuum(Te *testing.T) {
	lat := CubicLattice(4)
	lat.AddVacuum(2, 10)
	if lat.At(2, 2) != 14 {
		Te.Errorf("vacuum: got %v, want 14", lat.At(2, 2))
	}
}

func TestGeometryMoveTile(Te *testing.T) {
	g := water(Te, CubicLattice(10))
	moved := g.Move(1, 2, 3)
	if moved.Coords().At(0, 0) != 1 || g.Coords().At(0, 0) != 0 {
		Te.Error("Move must not touch the original")
	}
	tiled := g.Tile(3, 0)
	if tiled.Len() != 9 {
		Te.Fatalf("tiled atoms: got %d, want 9", tiled.Len())
	}
	//second replica shifted by one lattice vector
	if x := tiled.Coords().At(3, 0); math.Abs(x-10) > 1e-12 {
		Te.Errorf("replica offset: got %v, want 10", x)
	}
	if v := tiled.Lattice().Vec(0); v[0] != 30 {
		Te.Errorf("tiled lattice vector: got %v, want 30", v[0])
	}
}

func TestGeometryAdd(Te *testing.T) {
	a := water(Te, CubicLattice(10))
	b := water(Te, CubicLattice(10)).Move(5, 0, 0)
	g, err := a.Add(b)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 6 {
		Te.Fatalf("added atoms: got %d, want 6", g.Len())
	}
	if g.Coords().At(3, 0) != 5 {
		Te.Errorf("appended coordinates: got %v, want 5", g.Coords().At(3, 0))
	}
}

func TestWrapAndSort(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{
		11, 0, 7,
		-1, 0, 3,
	})
	atoms := []*Atom{{Symbol: "A"}, {Symbol: "B"}}
	g, err := NewGeometry(coords, atoms, CubicLattice(10))
	if err != nil {
		Te.Fatal(err)
	}
	if err := g.WrapToCell(); err != nil {
		Te.Fatal(err)
	}
	if x := g.Coords().At(0, 0); math.Abs(x-1) > 1e-9 {
		Te.Errorf("wrapped x: got %v, want 1", x)
	}
	if x := g.Coords().At(1, 0); math.Abs(x-9) > 1e-9 {
		Te.Errorf("wrapped x: got %v, want 9", x)
	}
	if err := g.SortZYX(); err != nil {
		Te.Fatal(err)
	}
	//B sits lower along z, so it comes first now
	if g.Atom(0).Symbol != "B" {
		Te.Errorf("sorted order: %v", g.Symbols())
	}
}

func TestFractional(Te *testing.T) {
	g := water(Te, CubicLattice(10)).Move(5, 5, 5)
	frac, err := g.Fractional()
	if err != nil {
		Te.Fatal(err)
	}
	if f := frac.At(0, 0); math.Abs(f-0.5) > 1e-12 {
		Te.Errorf("fractional: got %v, want 0.5", f)
	}
	isolated := water(Te, nil)
	if _, err := isolated.Fractional(); err == nil {
		Te.Error("fractional coordinates of an isolated system must fail")
	}
}

func TestClampToOrigin(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{-1e-12, 1, -2, 0, 0, 0})
	g, err := NewGeometry(coords, []*Atom{{Symbol: "A"}, {Symbol: "B"}}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	g.ClampToOrigin()
	if g.Coords().At(0, 0) != 0 || g.Coords().At(0, 2) != 0 {
		Te.Error("negative components survived the clamp")
	}
	if g.Coords().At(0, 1) != 1 {
		Te.Error("positive component was clamped")
	}
}

func TestGridIndexing(Te *testing.T) {
	g, err := NewGrid([3]int{2, 3, 4}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 24 {
		Te.Fatalf("grid size: got %d, want 24", g.Len())
	}
	g.Set(1, 2, 3, 42)
	if g.At(1, 2, 3) != 42 {
		Te.Error("roundtrip through At/Set failed")
	}
	//first index varies fastest
	if g.Data()[1+2*2+3*6] != 42 {
		Te.Error("unexpected data layout")
	}
	g.Scale(0.5)
	if g.Sum() != 21 {
		Te.Errorf("scaled sum: got %v, want 21", g.Sum())
	}
}
