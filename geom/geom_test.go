/*
 * geom_test.go
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

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rsolis/gocrystal"
)

const alat = 4.08 //gold

func gold() *chem.Atom {
	return &chem.Atom{Symbol: "Au"}
}

func TestBasicCounts(Te *testing.T) {
	assert.Equal(Te, 1, SC(alat, gold()).Len())
	assert.Equal(Te, 1, BCC(alat, gold(), false).Len())
	assert.Equal(Te, 2, BCC(alat, gold(), true).Len())
	assert.Equal(Te, 1, FCC(alat, gold(), false).Len())
	assert.Equal(Te, 4, FCC(alat, gold(), true).Len())
	assert.Equal(Te, 2, HCP(alat, gold(), 1.63333, false).Len())
	assert.Equal(Te, 8, HCP(alat, gold(), 1.63333, true).Len())
	nacl := [2]*chem.Atom{{Symbol: "Na"}, {Symbol: "Cl"}}
	assert.Equal(Te, 2, Rocksalt(5.64, nacl, false).Len())
	assert.Equal(Te, 8, Rocksalt(5.64, nacl, true).Len())
}

func TestPrimitiveVolumes(Te *testing.T) {
	v := FCC(alat, gold(), false).Lattice().Volume()
	assert.InDelta(Te, alat*alat*alat/4, v, 1e-9)
	v = BCC(alat, gold(), false).Lattice().Volume()
	assert.InDelta(Te, alat*alat*alat/2, v, 1e-9)
}

func TestRocksaltInterlocked(Te *testing.T) {
	nacl := [2]*chem.Atom{{Symbol: "Na"}, {Symbol: "Cl"}}
	g := Rocksalt(5.64, nacl, false)
	syms := g.Symbols()
	assert.Contains(Te, syms, "Na")
	assert.Contains(Te, syms, "Cl")
	//same cell as the single-element fcc
	assert.InDelta(Te, FCC(5.64, gold(), false).Lattice().Volume(), g.Lattice().Volume(), 1e-9)
}

func TestFCCSlab100(Te *testing.T) {
	g, err := FCCSlab(alat, gold(), "100", nil)
	require.NoError(Te, err)
	//one atom per layer, one full stacking period by default
	assert.Equal(Te, 2, g.Len())
	//layers sorted bottom to top
	for i := 1; i < g.Len(); i++ {
		assert.LessOrEqual(Te, g.Coords().At(i-1, 2), g.Coords().At(i, 2))
	}
	//the vacuum sits on top of the stacked layers
	assert.InDelta(Te, 0.5*alat*2+20.0, g.Lattice().At(2, 2), 1e-9)
}

func TestFCCSlab111(Te *testing.T) {
	o := DefaultOptions()
	o.Layers(6)
	g, err := FCCSlab(alat, gold(), "111", o)
	require.NoError(Te, err)
	assert.Equal(Te, 6, g.Len())

	o = DefaultOptions()
	o.Layers(6)
	o.Orthogonal(true)
	g, err = FCCSlab(alat, gold(), "111", o)
	require.NoError(Te, err)
	assert.Equal(Te, 12, g.Len())
}

func TestFCCSlabStart(Te *testing.T) {
	//starting on B, the atom at the origin belongs to the B plane, so no
	//atom sits at (x, y) = (0, 0) in the A sense; the bottom layer is
	//still at z = 0 after sorting
	o := DefaultOptions()
	o.Layers(3)
	o.Start("B")
	g, err := FCCSlab(alat, gold(), "111", o)
	require.NoError(Te, err)
	assert.Equal(Te, 3, g.Len())
	assert.InDelta(Te, 0.0, g.Coords().At(0, 2), 1e-6)

	//equivalent digit spelling
	o2 := DefaultOptions()
	o2.Layers(3)
	o2.Start("1")
	g2, err := FCCSlab(alat, gold(), "111", o2)
	require.NoError(Te, err)
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, g.Coords().At(i, j), g2.Coords().At(i, j), 1e-9)
		}
	}
}

func TestSlabBadOptions(Te *testing.T) {
	o := DefaultOptions()
	o.Start("A")
	o.End("B")
	_, err := FCCSlab(alat, gold(), "111", o)
	assert.Error(Te, err)

	//stacking and start must conform
	o = DefaultOptions()
	o.Stacking("BCA")
	o.Start("A")
	_, err = FCCSlab(alat, gold(), "111", o)
	assert.Error(Te, err)

	//a stacking fault is not representable
	o = DefaultOptions()
	o.Stacking("AAB")
	_, err = FCCSlab(alat, gold(), "111", o)
	assert.Error(Te, err)

	_, err = FCCSlab(alat, gold(), "210", DefaultOptions())
	assert.Error(Te, err)
}

func TestSlabStacking(Te *testing.T) {
	o := DefaultOptions()
	o.Stacking("BCABCA")
	g, err := FCCSlab(alat, gold(), "111", o)
	require.NoError(Te, err)
	assert.Equal(Te, 6, g.Len())
}

func TestBCCSlab(Te *testing.T) {
	g, err := BCCSlab(alat, gold(), "100", nil)
	require.NoError(Te, err)
	assert.Equal(Te, 2, g.Len())

	o := DefaultOptions()
	o.Layers(4)
	o.Orthogonal(true)
	g, err = BCCSlab(alat, gold(), "110", o)
	require.NoError(Te, err)
	assert.Equal(Te, 8, g.Len())

	o = DefaultOptions()
	o.Layers(6)
	g, err = BCCSlab(alat, gold(), "111", o)
	require.NoError(Te, err)
	assert.Equal(Te, 6, g.Len())
}

func TestRocksaltSlab(Te *testing.T) {
	nacl := [2]*chem.Atom{{Symbol: "Na"}, {Symbol: "Cl"}}
	g, err := RocksaltSlab(5.64, nacl, "100", nil)
	require.NoError(Te, err)
	//two interlocked fcc slabs, one atom of each element per layer
	assert.Equal(Te, 4, g.Len())
	syms := g.Symbols()
	assert.Contains(Te, syms, "Na")
	assert.Contains(Te, syms, "Cl")

	//without vacuum the slab is fully periodic
	o := DefaultOptions()
	o.NoVacuum()
	g2, err := RocksaltSlab(5.64, nacl, "100", o)
	require.NoError(Te, err)
	assert.InDelta(Te, g.Lattice().At(2, 2)-20.0, g2.Lattice().At(2, 2), 1e-9)
}

func TestHCPHeight(Te *testing.T) {
	coa := 1.63333
	g := HCP(alat, gold(), coa, true)
	//two half-cells stacked along z
	assert.InDelta(Te, alat*coa, g.Lattice().At(2, 2), 1e-9)
	zmax := 0.0
	for i := 0; i < g.Len(); i++ {
		zmax = math.Max(zmax, g.Coords().At(i, 2))
	}
	assert.Less(Te, zmax, alat*coa)
}
