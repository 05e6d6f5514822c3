/*
 * xyz_test.go
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

package xyz

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rsolis/gocrystal"
	"github.com/rsolis/gocrystal/multi"
	v3 "github.com/rsolis/gocrystal/v3"
)

const testTraj = `3
first
O   0.000000  0.000000  0.000000
H   0.757000  0.586000  0.000000
H  -0.757000  0.586000  0.000000
3
second
O   0.000000  0.000000  1.000000
H   0.757000  0.586000  1.000000
H  -0.757000  0.586000  1.000000
3
third
O   0.000000  0.000000  2.000000
H   0.757000  0.586000  2.000000
H  -0.757000  0.586000  2.000000
`

func writeTestTraj(Te *testing.T) string {
	name := filepath.Join(Te.TempDir(), "traj.xyz")
	if err := os.WriteFile(name, []byte(testTraj), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestXYZNext(Te *testing.T) {
	traj, err := New(writeTestTraj(Te))
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	i := 0
	for ; ; i++ {
		mat := v3.Zeros(3)
		err := traj.Next(mat)
		if err != nil {
			if chem.IsLastRecord(err) {
				break
			}
			Te.Error(err)
			break
		}
		if i == 1 && mat.At(0, 2) != 1.0 {
			Te.Errorf("record %d: got z = %v, want 1.0", i, mat.At(0, 2))
		}
	}
	if i != 3 {
		Te.Errorf("read %d records, want 3", i)
	}
}

func TestXYZGeometries(Te *testing.T) {
	traj, err := New(writeTestTraj(Te))
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	g, err := traj.Geometries().Read()
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 3 || g.Atom(0).Symbol != "O" {
		Te.Errorf("first geometry: %d atoms, first symbol %q", g.Len(), g.Atom(0).Symbol)
	}
	last, err := traj.Geometries().Last().One()
	if err != nil {
		Te.Fatal(err)
	}
	if last.Coords().At(0, 2) != 2.0 {
		Te.Errorf("last record z: got %v, want 2.0", last.Coords().At(0, 2))
	}
	tail, err := traj.Geometries().Select(multi.From(1)).Collect()
	if err != nil {
		Te.Fatal(err)
	}
	if len(tail) != 2 {
		Te.Errorf("records from 1: got %d, want 2", len(tail))
	}
	_, err = traj.Geometries().Select(multi.Index(7)).One()
	if err == nil || !chem.IsLastRecord(err) {
		Te.Errorf("record beyond the end: got %v, want end-of-records", err)
	}
}

func TestXYZFrames(Te *testing.T) {
	traj, err := New(writeTestTraj(Te))
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	pairs, err := traj.Frames().Select(multi.All()).Collect()
	if err != nil {
		Te.Fatal(err)
	}
	coords, comments := multi.TransposePairs(pairs)
	if len(coords) != 3 || comments[1] != "second" {
		Te.Errorf("got %d records, comment[1] = %q", len(coords), comments[1])
	}
}

func TestXYZWriteRead(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "out.xyz.gz")
	w, err := NewWriter(name)
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1.1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	syms := []string{"Na", "Cl"}
	for i := 0; i < 2; i++ {
		if err := w.WNext(coords, syms, "salt"); err != nil {
			Te.Error(err)
		}
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	traj, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	all, err := traj.Geometries().Select(multi.All()).Collect()
	if err != nil {
		Te.Fatal(err)
	}
	if len(all) != 2 {
		Te.Fatalf("read back %d records, want 2", len(all))
	}
	if all[1].Atom(1).Symbol != "Cl" || all[1].Coords().At(1, 0) != 1.1 {
		Te.Errorf("roundtrip mismatch: %v %v", all[1].Symbols(), all[1].Coords().At(1, 0))
	}
}
