/*
 * pack_test.go
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

package pack

import (
	"math"
	"path/filepath"
	"testing"

	chem "github.com/rsolis/gocrystal"
	"github.com/rsolis/gocrystal/multi"
	v3 "github.com/rsolis/gocrystal/v3"
)

func testGeometry(Te *testing.T, z float64) *chem.Geometry {
	coords, err := v3.NewMatrix([]float64{
		0, 0, z,
		0.757, 0.586, z,
		-0.757, 0.586, z,
	})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := []*chem.Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	g, err := chem.NewGeometry(coords, atoms, chem.CubicLattice(10))
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func TestRoundtrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "geoms.mp.zst")
	w, err := NewWriter(name)
	if err != nil {
		Te.Fatal(err)
	}
	comments := []string{"zero", "one", "two"}
	for i, c := range comments {
		if err := w.WNext(testGeometry(Te, float64(i)), c); err != nil {
			Te.Error(err)
		}
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}

	r := New(name)
	all, err := r.Geometries().Collect()
	if err != nil {
		Te.Fatal(err)
	}
	if len(all) != 3 {
		Te.Fatalf("read back %d records, want 3", len(all))
	}
	for i, g := range all {
		if g.Len() != 3 || g.Atom(0).Symbol != "O" {
			Te.Errorf("record %d: %d atoms, %v", i, g.Len(), g.Symbols())
		}
		if math.Abs(g.Coords().At(0, 2)-float64(i)) > 1e-12 {
			Te.Errorf("record %d: z = %v", i, g.Coords().At(0, 2))
		}
		if g.Lattice() == nil || math.Abs(g.Lattice().Volume()-1000) > 1e-9 {
			Te.Errorf("record %d: lattice not preserved", i)
		}
	}
}

func TestSelections(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "geoms.mp.gz")
	w, err := NewWriter(name)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := w.WNext(testGeometry(Te, float64(i)), ""); err != nil {
			Te.Error(err)
		}
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}

	r := New(name)
	last, err := r.Geometries().Last().One()
	if err != nil {
		Te.Fatal(err)
	}
	if last.Coords().At(0, 2) != 4.0 {
		Te.Errorf("last record z: got %v, want 4", last.Coords().At(0, 2))
	}
	window, err := r.Geometries().Select(multi.Slice(1, 4)).Collect()
	if err != nil {
		Te.Fatal(err)
	}
	if len(window) != 3 || window[0].Coords().At(0, 2) != 1.0 {
		Te.Errorf("window: %d records", len(window))
	}
	_, err = r.Geometries().Select(multi.Index(9)).One()
	if err == nil || !chem.IsLastRecord(err) {
		Te.Errorf("record beyond the end: got %v, want end-of-records", err)
	}
}

func TestComments(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "geoms.mp")
	w, err := NewWriter(name)
	if err != nil {
		Te.Fatal(err)
	}
	w.WNext(testGeometry(Te, 0), "first")
	w.WNext(testGeometry(Te, 1), "second")
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	r := New(name)
	pairs, err := r.Commented().Collect()
	if err != nil {
		Te.Fatal(err)
	}
	_, comments := multi.TransposePairs(pairs)
	if len(comments) != 2 || comments[1] != "second" {
		Te.Errorf("comments: %v", comments)
	}
}
