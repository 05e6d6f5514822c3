/*
 * v3_test.go, part of gocrystal.
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

package v3

import "testing"

func TestSetMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	F := Zeros(4)
	F.SetMatrix(1, 0, A)
	want := [][3]float64{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}, {0, 0, 0}}
	for i, w := range want {
		for k := 0; k < 3; k++ {
			if F.At(i, k) != w[k] {
				Te.Errorf("SetMatrix: row %d col %d: got %v, want %v", i, k, F.At(i, k), w[k])
			}
		}
	}
}

func TestStack(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	B, err := NewMatrix([]float64{4, 5, 6, 7, 8, 9})
	if err != nil {
		Te.Fatal(err)
	}
	F := Zeros(3)
	F.Stack(A, B)
	want := [][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for i, w := range want {
		for k := 0; k < 3; k++ {
			if F.At(i, k) != w[k] {
				Te.Errorf("Stack: row %d col %d: got %v, want %v", i, k, F.At(i, k), w[k])
			}
		}
	}
}

func TestVecViewAliases(Te *testing.T) {
	A := Zeros(2)
	v := A.VecView(1)
	v.Set(0, 0, 42)
	if A.At(1, 0) != 42 {
		Te.Errorf("VecView is not a view: got %v, want 42", A.At(1, 0))
	}
	if A.NVecs() != 2 || v.NVecs() != 1 {
		Te.Errorf("NVecs: got %d and %d, want 2 and 1", A.NVecs(), v.NVecs())
	}
}

func TestAddVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	if err != nil {
		Te.Fatal(err)
	}
	d, err := NewMatrix([]float64{1, 0, -1})
	if err != nil {
		Te.Fatal(err)
	}
	A.AddVec(A, d)
	want := [][3]float64{{2, 1, 0}, {3, 2, 1}}
	for i, w := range want {
		for k := 0; k < 3; k++ {
			if A.At(i, k) != w[k] {
				Te.Errorf("AddVec: row %d col %d: got %v, want %v", i, k, A.At(i, k), w[k])
			}
		}
	}
}
