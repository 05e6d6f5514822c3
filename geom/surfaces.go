/*
 * surfaces.go, part of gocrystal
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

package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	chem "github.com/rsolis/gocrystal"
)

const stackingLetters = "ABCDEF"

//layer2int converts a layer given as a letter ("B") or a digit ("1") to
//its index within the stacking period. An empty layer gives -1, unset.
func layer2int(layer string, periodicity int) (int, error) {
	layer = strings.TrimSpace(layer)
	if layer == "" {
		return -1, nil
	}
	if n, err := strconv.Atoi(layer); err == nil {
		return ((n % periodicity) + periodicity) % periodicity, nil
	}
	i := strings.Index(stackingLetters, strings.ToUpper(layer))
	if i < 0 || len(layer) != 1 {
		return -1, fmt.Errorf("geom: invalid layer specification %q", layer)
	}
	return i % periodicity, nil
}

//stackInfo resolves the layer options against the stacking period of the
//facet, returning the number of layers and the index of the first one.
func stackInfo(o *Options, periodicity int) (nlayers, offset int, err error) {
	if o.start != "" && o.end != "" {
		return 0, 0, fmt.Errorf("geom: only one of start or end may be given")
	}
	stacking := stackingLetters[:periodicity]
	start, err := layer2int(o.start, periodicity)
	if err != nil {
		return 0, 0, err
	}
	end, err := layer2int(o.end, periodicity)
	if err != nil {
		return 0, 0, err
	}
	var seq string
	if o.stacking == "" {
		nlayers = o.layers
		if nlayers == 0 {
			nlayers = periodicity
		}
		//the + 2 leaves room for rotating the sequence
		rep := strings.Repeat(stacking, nlayers/periodicity+2)
		switch {
		case start < 0 && end < 0:
			seq = rep[:nlayers]
		case start < 0:
			rot := rep[end+1:] + rep[:end+1]
			seq = rot[len(rot)-nlayers:]
		default:
			rot := rep[start:] + rep[:start]
			seq = rot[:nlayers]
		}
	} else {
		seq = strings.ToUpper(o.stacking)
		nlayers = len(seq)
		rep := strings.Repeat(stacking, nlayers/periodicity+2)
		if !strings.Contains(rep, seq) {
			return 0, 0, fmt.Errorf("geom: stacking faults are not implemented, requested %s with stacking %s", seq, stacking)
		}
		first, err := layer2int(seq[:1], periodicity)
		if err != nil {
			return 0, 0, err
		}
		last, err := layer2int(seq[len(seq)-1:], periodicity)
		if err != nil {
			return 0, 0, err
		}
		if start >= 0 && first != start {
			return 0, 0, fmt.Errorf("geom: layers %s and start %c do not conform", seq, stackingLetters[start])
		}
		if end >= 0 && last != end {
			return 0, 0, fmt.Errorf("geom: layers %s and end %c do not conform", seq, stackingLetters[end])
		}
	}
	offset, err = layer2int(seq[:1], periodicity)
	if err != nil {
		return 0, 0, err
	}
	return nlayers, offset, nil
}

func normalizeMiller(miller string) (string, error) {
	m := strings.TrimSpace(miller)
	if len(m) != 3 {
		return "", fmt.Errorf("geom: invalid Miller indices %q, must have 3 digits", miller)
	}
	return m, nil
}

//shiftLayers displaces every stride-th atom of g, starting at atom start,
//by f times vec.
func shiftLayers(g *chem.Geometry, start, stride int, vec [3]float64, f float64) {
	c := g.Coords()
	for i := start; i < g.Len(); i += stride {
		row := c.VecView(i)
		row.AddRow(row, vec[0]*f, vec[1]*f, vec[2]*f)
	}
}

func vecSum(a, b [3]float64, f float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) * f, (a[1] + b[1]) * f, (a[2] + b[2]) * f}
}

func finishSlab(g *chem.Geometry, o *Options) *chem.Geometry {
	tidy(g)
	if o.hasVacuum {
		g.Lattice().AddVacuum(2, o.vacuum)
	}
	return g
}

//FCCSlab builds a surface slab from a face-centered cubic crystal, with
//the layers stacked along the z axis. The default stacking starts with an
//A layer, the plane holding an atom at the origin. A nil opts uses
//DefaultOptions.
func FCCSlab(alat float64, atom *chem.Atom, miller string, opts *Options) (*chem.Geometry, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m, err := normalizeMiller(miller)
	if err != nil {
		return nil, err
	}
	var g *chem.Geometry
	switch m {
	case "100", "110":
		nlayers, offset, err := stackInfo(opts, 2)
		if err != nil {
			return nil, err
		}
		var lat *chem.Lattice
		if m == "100" {
			lat = chem.DiagonalLattice([3]float64{math.Sqrt(0.5) * alat, math.Sqrt(0.5) * alat, 0.5 * alat})
		} else {
			lat = chem.DiagonalLattice([3]float64{alat, math.Sqrt(0.5) * alat, math.Sqrt(0.125) * alat})
		}
		g = chem.SingleAtomGeometry(atom, lat).Tile(nlayers, 2)
		B := (offset + 1) % 2
		vec := vecSum(lat.Vec(0), lat.Vec(1), 0.5)
		shiftLayers(g, B, 2, vec, 1)
	case "111":
		nlayers, offset, err := stackInfo(opts, 3)
		if err != nil {
			return nil, err
		}
		if opts.orthogonal {
			lat := chem.DiagonalLattice([3]float64{math.Sqrt(0.5) * alat, math.Sqrt(1.5) * alat, math.Sqrt(1.0/3.0) * alat})
			base, _ := chem.NewGeometry(twoAtomCoords(
				0, 0, 0,
				math.Sqrt(0.125)*alat, math.Sqrt(0.375)*alat, 0,
			), []*chem.Atom{atom.Copy(), atom.Copy()}, lat)
			g = base.Tile(nlayers, 2)
			B := 2 * (offset + 1) % 6
			C := 2 * (offset + 2) % 6
			vec := [3]float64{
				(3*lat.Vec(0)[0] + lat.Vec(1)[0]) / 6,
				(3*lat.Vec(0)[1] + lat.Vec(1)[1]) / 6,
				(3*lat.Vec(0)[2] + lat.Vec(1)[2]) / 6,
			}
			shiftLayers(g, B, 6, vec, 1)
			shiftLayers(g, B+1, 6, vec, 1)
			shiftLayers(g, C, 6, vec, 2)
			shiftLayers(g, C+1, 6, vec, 2)
		} else {
			lat := chem.LatticeFromVectors([3][3]float64{
				{math.Sqrt(0.5) * alat, 0, 0},
				{math.Sqrt(0.125) * alat, math.Sqrt(0.375) * alat, 0},
				{0, 0, math.Sqrt(1.0/3.0) * alat},
			})
			g = chem.SingleAtomGeometry(atom, lat).Tile(nlayers, 2)
			B := (offset + 1) % 3
			C := (offset + 2) % 3
			vec := vecSum(lat.Vec(0), lat.Vec(1), 1.0/3.0)
			shiftLayers(g, B, 3, vec, 1)
			shiftLayers(g, C, 3, vec, 2)
		}
	default:
		return nil, fmt.Errorf("geom: FCCSlab miller=%s is not implemented", m)
	}
	return finishSlab(g, opts), nil
}

//BCCSlab builds a surface slab from a body-centered cubic crystal, with
//the layers stacked along the z axis. A nil opts uses DefaultOptions.
func BCCSlab(alat float64, atom *chem.Atom, miller string, opts *Options) (*chem.Geometry, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m, err := normalizeMiller(miller)
	if err != nil {
		return nil, err
	}
	var g *chem.Geometry
	switch m {
	case "100":
		nlayers, offset, err := stackInfo(opts, 2)
		if err != nil {
			return nil, err
		}
		lat := chem.DiagonalLattice([3]float64{alat, alat, 0.5 * alat})
		g = chem.SingleAtomGeometry(atom, lat).Tile(nlayers, 2)
		B := (offset + 1) % 2
		vec := vecSum(lat.Vec(0), lat.Vec(1), 0.5)
		shiftLayers(g, B, 2, vec, 1)
	case "110":
		nlayers, offset, err := stackInfo(opts, 2)
		if err != nil {
			return nil, err
		}
		if opts.orthogonal {
			lat := chem.DiagonalLattice([3]float64{alat, math.Sqrt(2) * alat, math.Sqrt(0.5) * alat})
			base, _ := chem.NewGeometry(twoAtomCoords(
				0, 0, 0,
				0.5*alat, math.Sqrt(0.5)*alat, 0,
			), []*chem.Atom{atom.Copy(), atom.Copy()}, lat)
			g = base.Tile(nlayers, 2)
			B := 2 * (offset + 1) % 4
			vec := [3]float64{lat.Vec(1)[0] / 2, lat.Vec(1)[1] / 2, lat.Vec(1)[2] / 2}
			shiftLayers(g, B, 4, vec, 1)
			shiftLayers(g, B+1, 4, vec, 1)
		} else {
			lat := chem.LatticeFromVectors([3][3]float64{
				{alat, 0, 0},
				{0.5 * alat, math.Sqrt(0.5) * alat, 0},
				{0, 0, math.Sqrt(0.5) * alat},
			})
			g = chem.SingleAtomGeometry(atom, lat).Tile(nlayers, 2)
			B := (offset + 1) % 2
			vec := [3]float64{lat.Vec(0)[0] / 2, lat.Vec(0)[1] / 2, lat.Vec(0)[2] / 2}
			shiftLayers(g, B, 2, vec, 1)
		}
	case "111":
		nlayers, offset, err := stackInfo(opts, 3)
		if err != nil {
			return nil, err
		}
		if opts.orthogonal {
			lat := chem.DiagonalLattice([3]float64{math.Sqrt(2) * alat, math.Sqrt(6) * alat, math.Sqrt(1.0/12.0) * alat})
			base, _ := chem.NewGeometry(twoAtomCoords(
				0, 0, 0,
				math.Sqrt(0.5)*alat, math.Sqrt(1.5)*alat, 0,
			), []*chem.Atom{atom.Copy(), atom.Copy()}, lat)
			g = base.Tile(nlayers, 2)
			B := 2 * (offset + 1) % 6
			C := 2 * (offset + 2) % 6
			vec := vecSum(lat.Vec(0), lat.Vec(1), 1.0/3.0)
			for i := 0; i < 2; i++ {
				shiftLayers(g, B+i, 6, vec, 1)
				shiftLayers(g, C+i, 6, vec, 2)
			}
		} else {
			lat := chem.LatticeFromVectors([3][3]float64{
				{math.Sqrt(2) * alat, 0, 0},
				{math.Sqrt(0.5) * alat, math.Sqrt(1.5) * alat, 0},
				{0, 0, math.Sqrt(1.0/12.0) * alat},
			})
			g = chem.SingleAtomGeometry(atom, lat).Tile(nlayers, 2)
			B := (offset + 1) % 3
			C := (offset + 2) % 3
			vec := vecSum(lat.Vec(0), lat.Vec(1), 1.0/3.0)
			shiftLayers(g, B, 3, vec, 1)
			shiftLayers(g, C, 3, vec, 2)
		}
	default:
		return nil, fmt.Errorf("geom: BCCSlab miller=%s is not implemented", m)
	}
	return finishSlab(g, opts), nil
}

//RocksaltSlab builds a surface slab from a two-element rocksalt crystal,
//two interlocked FCC slabs. The default stacking starts with an A layer,
//the plane holding the first atom at the origin. A nil opts uses
//DefaultOptions.
func RocksaltSlab(alat float64, atoms [2]*chem.Atom, miller string, opts *Options) (*chem.Geometry, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m, err := normalizeMiller(miller)
	if err != nil {
		return nil, err
	}
	inner := opts.copyNoVacuum()
	g1, err := FCCSlab(alat, atoms[0], m, inner)
	if err != nil {
		return nil, err
	}
	g2, err := FCCSlab(alat, atoms[1], m, inner)
	if err != nil {
		return nil, err
	}
	switch m {
	case "100":
		g2 = g2.Move(math.Sqrt(0.5)*alat/2, math.Sqrt(0.5)*alat/2, 0)
	case "110":
		g2 = g2.Move(alat/2, 0, 0)
	case "111":
		g2 = g2.Move(0, math.Sqrt(2.0/3.0)*alat/2, math.Sqrt(1.0/3.0)*alat/2)
	}
	g, err := g1.Add(g2)
	if err != nil {
		return nil, err
	}
	return finishSlab(g, opts), nil
}
