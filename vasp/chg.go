/*
 * chg.go, part of gocrystal
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

package vasp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rsolis/gocrystal"
	"github.com/rsolis/gocrystal/multi"
)

//ChgFile is a VASP charge density file (CHG or CHGCAR), which holds a
//POSCAR geometry followed by one grid of values per spin component. A
//spin-polarized calculation writes two grids, a non-collinear one four.
type ChgFile struct {
	filename   string
	ioread     io.ReadCloser
	chg        *bufio.Reader
	geom       *chem.Geometry
	nx, ny, nz int
	atValues   bool //positioned at the first value line of a record?

	grids *multi.Reader[*ChgFile, *chem.Grid]
}

//New creates a reader for the CHG/CHGCAR file with the given name. The
//header is not parsed until the file is opened.
func New(filename string) *ChgFile {
	return &ChgFile{filename: filename}
}

//Open opens the file, or reopens it from the start, and parses the
//geometry header and the grid dimensions, leaving the reader at the
//values of the first grid.
func (C *ChgFile) Open() error {
	if C.ioread != nil {
		C.ioread.Close()
		C.ioread = nil
	}
	f, err := chem.OpenDecompressed(C.filename)
	if err != nil {
		return Error{UnableToOpen, C.filename, []string{"Open"}, true}
	}
	C.ioread = f
	C.chg = bufio.NewReader(f)
	C.geom, err = parsePoscar(C.chg, C.filename)
	if err != nil {
		C.Close()
		return errDecorate(err, "Open")
	}
	//a blank line, then the grid dimensions
	for {
		line, err := readLine(C.chg)
		if err != nil {
			C.Close()
			return Error{ReadError, C.filename, []string{"Open"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			C.Close()
			return Error{fmt.Sprintf("%s: grid dimensions line %q", WrongFormat, line), C.filename, []string{"Open"}, true}
		}
		dims := make([]int, 3)
		for i, f := range fields {
			dims[i], err = strconv.Atoi(f)
			if err != nil {
				C.Close()
				return Error{fmt.Sprintf("%s: grid dimensions line %q", WrongFormat, line), C.filename, []string{"Open"}, true}
			}
		}
		C.nx, C.ny, C.nz = dims[0], dims[1], dims[2]
		break
	}
	C.atValues = true
	return nil
}

//Close closes the underlying file.
func (C *ChgFile) Close() error {
	C.atValues = false
	if C.ioread == nil {
		return nil
	}
	err := C.ioread.Close()
	C.ioread = nil
	return err
}

//Geometry reads the geometry in the file's POSCAR header. The file is
//opened for the call and closed again.
func (C *ChgFile) Geometry() (*chem.Geometry, error) {
	if err := C.Open(); err != nil {
		return nil, errDecorate(err, "Geometry")
	}
	defer C.Close()
	return C.geom, nil
}

//Shape returns the grid dimensions, valid after Open.
func (C *ChgFile) Shape() [3]int {
	return [3]int{C.nx, C.ny, C.nz}
}

//seekValues advances to the first value line of the next grid. Grids
//after the first are preceded by a repeat of the dimensions line, and in
//CHGCAR files by augmentation occupancy blocks, which are skipped.
func (C *ChgFile) seekValues() error {
	if C.atValues {
		C.atValues = false
		return nil
	}
	want := fmt.Sprintf("%d %d %d", C.nx, C.ny, C.nz)
	for {
		line, err := readLine(C.chg)
		if err != nil {
			return newlastRecordError(C.filename, "seekValues")
		}
		if strings.Join(strings.Fields(line), " ") == want {
			return nil
		}
	}
}

//readGrid parses the values of one grid. The stored values are the
//density times the cell volume, as VASP writes them; they are divided by
//the volume so the grid holds the plain density.
func (C *ChgFile) readGrid() (*chem.Grid, error) {
	if err := C.seekValues(); err != nil {
		return nil, err
	}
	n := C.nx * C.ny * C.nz
	vals := make([]float64, 0, n)
	for len(vals) < n {
		line, err := readLine(C.chg)
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: grid truncated at %d of %d values", ReadError, len(vals), n), C.filename, []string{"readGrid"}, true}
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: value %q", WrongFormat, f), C.filename, []string{"readGrid"}, true}
			}
			vals = append(vals, v)
		}
	}
	vals = vals[:n]
	g, err := chem.GridFromData([3]int{C.nx, C.ny, C.nz}, vals, C.geom)
	if err != nil {
		return nil, errDecorate(err, "readGrid")
	}
	g.Scale(1 / C.geom.Lattice().Volume())
	return g, nil
}

//skipGrid advances past one grid without keeping its values.
func (C *ChgFile) skipGrid() error {
	if err := C.seekValues(); err != nil {
		return err
	}
	n := C.nx * C.ny * C.nz
	count := 0
	for count < n {
		line, err := readLine(C.chg)
		if err != nil {
			return Error{fmt.Sprintf("%s: grid truncated at %d of %d values", ReadError, count, n), C.filename, []string{"skipGrid"}, true}
		}
		count += len(strings.Fields(line))
	}
	return nil
}

var grids = multi.NewBinder(
	(*ChgFile).readGrid,
	multi.WithSkip[*ChgFile, *chem.Grid]((*ChgFile).skipGrid),
	multi.WithDefault[*ChgFile, *chem.Grid](multi.Index(0)),
	multi.WithDoc[*ChgFile, *chem.Grid]("Grids reads charge density grids. A spin-polarized file holds two records (total, magnetization), a non-collinear one four (total, x, y, z)."),
)

//Grids gives sliceable access to the density grids of the file. A bare
//Read returns the first, the total density.
func (C *ChgFile) Grids() *multi.Reader[*ChgFile, *chem.Grid] {
	return grids.Bind(C, &C.grids)
}

//ReadGrid reads the grid with the given index, counting from 0 for the
//total density. Negative indices count from the last grid.
func (C *ChgFile) ReadGrid(index int) (*chem.Grid, error) {
	return C.Grids().Select(multi.Index(index)).One()
}
