/*
 * poscar.go, part of gocrystal
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

//Package vasp reads and writes VASP structure (POSCAR/CONTCAR) and
//charge density (CHG/CHGCAR) files, plain or compressed.
package vasp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	chem "github.com/rsolis/gocrystal"
	v3 "github.com/rsolis/gocrystal/v3"
)

//ReadPoscar reads the geometry from the POSCAR/CONTCAR file with the
//given name.
func ReadPoscar(filename string) (*chem.Geometry, error) {
	f, err := chem.OpenDecompressed(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"ReadPoscar"}, true}
	}
	defer f.Close()
	g, err := parsePoscar(bufio.NewReader(f), filename)
	if err != nil {
		return nil, errDecorate(err, "ReadPoscar")
	}
	return g, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

//parsePoscar reads a full POSCAR header plus coordinates, leaving r just
//past the last atom line. A negative scale factor is taken as a target
//cell volume, as VASP does.
func parsePoscar(r *bufio.Reader, filename string) (*chem.Geometry, error) {
	if _, err := readLine(r); err != nil { //comment line
		return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
	}
	line, err := readLine(r)
	if err != nil {
		return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return nil, Error{fmt.Sprintf("%s: scale line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
	}
	var vecs [3][3]float64
	for i := 0; i < 3; i++ {
		line, err := readLine(r)
		if err != nil {
			return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, Error{fmt.Sprintf("%s: cell line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
		}
		for j := 0; j < 3; j++ {
			vecs[i][j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: cell line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
			}
		}
	}
	lat := chem.LatticeFromVectors(vecs)
	if scale < 0 {
		//the scale is the desired volume
		scale = math.Cbrt(-scale / lat.Volume())
	}
	lat.Scale(scale)

	//VASP 5 has a line with the species names before the counts, VASP 4
	//does not. Species without names get placeholder symbols.
	line, err = readLine(r)
	if err != nil {
		return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
	}
	var species []string
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, Error{fmt.Sprintf("%s: empty species line", WrongFormat), filename, []string{"parsePoscar"}, true}
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		species = fields
		line, err = readLine(r)
		if err != nil {
			return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
		}
		fields = strings.Fields(line)
	}
	counts := make([]int, len(fields))
	natoms := 0
	for i, f := range fields {
		counts[i], err = strconv.Atoi(f)
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: counts line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
		}
		natoms += counts[i]
	}
	if species == nil {
		log.Printf("parsePoscar: %s carries no species names (VASP 4 header). Using placeholder symbols", filename)
		species = make([]string, len(counts))
		for i := range species {
			species[i] = fmt.Sprintf("X%d", i+1)
		}
	}
	if len(species) != len(counts) {
		return nil, Error{fmt.Sprintf("%d species for %d counts", len(species), len(counts)), filename, []string{"parsePoscar"}, true}
	}

	line, err = readLine(r)
	if err != nil {
		return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "s") {
		//selective dynamics flags are not kept
		line, err = readLine(r)
		if err != nil {
			return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
		}
	}
	mode := strings.ToLower(strings.TrimSpace(line))
	cartesian := strings.HasPrefix(mode, "c") || strings.HasPrefix(mode, "k")

	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		line, err := readLine(r)
		if err != nil {
			return nil, Error{ReadError, filename, []string{"parsePoscar"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, Error{fmt.Sprintf("%s: coordinate line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: coordinate line %q", WrongFormat, line), filename, []string{"parsePoscar"}, true}
			}
			coords.Set(i, j, v)
		}
	}
	atoms := make([]*chem.Atom, 0, natoms)
	for i, sp := range species {
		for j := 0; j < counts[i]; j++ {
			atoms = append(atoms, &chem.Atom{Symbol: sp})
		}
	}
	g, err := chem.NewGeometry(coords, atoms, lat)
	if err != nil {
		return nil, errDecorate(err, "parsePoscar")
	}
	if cartesian {
		g.Coords().Scale(scale, g.Coords().Dense)
		return g, nil
	}
	//direct coordinates: cartesian = fractional times the cell matrix
	cart := v3.Zeros(natoms)
	cart.Mul(coords.Dense, lat.Cell())
	g.Coords().SetMatrix(0, 0, cart)
	return g, nil
}

//WritePoscar writes g to the file with the given name, in VASP 5 format
//with Cartesian coordinates. Atoms of the same species should be
//contiguous; VASP has no per-atom symbols so interleaved species get
//written as separate blocks in file order.
func WritePoscar(filename string, g *chem.Geometry, comment string) error {
	f, err := chem.CreateCompressed(filename)
	if err != nil {
		return Error{UnableToOpen, filename, []string{"WritePoscar"}, true}
	}
	defer f.Close()
	if err := writePoscar(f, g, comment); err != nil {
		return errDecorate(err, "WritePoscar")
	}
	return nil
}

func writePoscar(w io.Writer, g *chem.Geometry, comment string) error {
	lat := g.Lattice()
	if lat == nil {
		return Error{NoLattice, "", []string{"writePoscar"}, true}
	}
	fmt.Fprintf(w, "%s\n", comment)
	fmt.Fprintf(w, "%19.16f\n", 1.0)
	for i := 0; i < 3; i++ {
		v := lat.Vec(i)
		fmt.Fprintf(w, " %21.16f %21.16f %21.16f\n", v[0], v[1], v[2])
	}
	var species []string
	var counts []int
	for i := 0; i < g.Len(); i++ {
		s := g.Atom(i).Symbol
		if len(species) == 0 || species[len(species)-1] != s {
			species = append(species, s)
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}
	for _, s := range species {
		fmt.Fprintf(w, " %4s", s)
	}
	fmt.Fprint(w, "\n")
	for _, c := range counts {
		fmt.Fprintf(w, " %4d", c)
	}
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, "Cartesian\n")
	coords := g.Coords()
	for i := 0; i < g.Len(); i++ {
		_, err := fmt.Fprintf(w, " %19.14f %19.14f %19.14f\n", coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return Error{err.Error(), "", []string{"writePoscar"}, true}
		}
	}
	return nil
}
