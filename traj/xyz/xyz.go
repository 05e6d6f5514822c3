/*
 * xyz.go, part of gocrystal
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

//Package xyz reads and writes multi-record XYZ files, plain or
//compressed (.gz, .zst). Each record holds an atom count, a comment line
//and one symbol-plus-coordinates line per atom.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rsolis/gocrystal"
	"github.com/rsolis/gocrystal/multi"
	v3 "github.com/rsolis/gocrystal/v3"
)

//Container for an XYZ file open for reading.
type XyzR struct {
	natoms   int //atoms in the last record read, 0 before the first
	readable bool
	filename string
	ioread   io.ReadCloser
	xyz      *bufio.Reader

	geometries *multi.Reader[*XyzR, *chem.Geometry]
	frames     *multi.Reader[*XyzR, multi.Pair[*v3.Matrix, string]]
}

//New creates an XYZ reader from the file with the given name and opens
//it, positioned at the first record.
func New(filename string) (*XyzR, error) {
	traj := new(XyzR)
	traj.filename = filename
	if err := traj.Open(); err != nil {
		return nil, errDecorate(err, "New")
	}
	return traj, nil
}

//Open positions the reader at the first record of the file, reopening it
//when it was already open. Compressed streams cannot seek backwards so a
//rewind is always a fresh open.
func (X *XyzR) Open() error {
	if X.ioread != nil {
		X.ioread.Close()
		X.ioread = nil
	}
	f, err := chem.OpenDecompressed(X.filename)
	if err != nil {
		return Error{UnableToOpen, X.filename, []string{"Open"}, true}
	}
	X.ioread = f
	X.xyz = bufio.NewReader(f)
	X.readable = true
	return nil
}

//Close closes the underlying file. The reader can be reused after a
//further Open.
func (X *XyzR) Close() error {
	X.readable = false
	if X.ioread == nil {
		return nil
	}
	err := X.ioread.Close()
	X.ioread = nil
	return err
}

//Readable returns true if the object is ready to be read from,
//false otherwise. It doesnt guarantee that there is something
//to read.
func (X *XyzR) Readable() bool {
	return X.readable
}

//Len returns the number of atoms in the last record read.
//0 means that no record has been read yet.
func (X *XyzR) Len() int {
	return X.natoms
}

//header reads the atom-count line of the next record. Running out of
//input here is the normal end of the trajectory; anywhere later in a
//record it is a corrupt file.
func (X *XyzR) header() (int, error) {
	if !X.readable {
		return 0, Error{TrajUnIni, X.filename, []string{"header"}, true}
	}
	line, err := X.xyz.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		X.readable = false
		return 0, newlastRecordError(X.filename, "header")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, Error{fmt.Sprintf("%s: %s", WrongFormat, line), X.filename, []string{"strconv.Atoi", "header"}, true}
	}
	X.natoms = natoms
	return natoms, nil
}

//readFrame parses the next record. A nil keep allocates a new matrix;
//symbols and the comment line are always returned.
func (X *XyzR) readFrame(keep *v3.Matrix) (*v3.Matrix, []string, string, error) {
	natoms, err := X.header()
	if err != nil {
		return nil, nil, "", err
	}
	comment, err := X.xyz.ReadString('\n')
	if err != nil {
		return nil, nil, "", Error{ReadError, X.filename, []string{"readFrame"}, true}
	}
	comment = strings.TrimRight(comment, "\n")
	if keep == nil {
		keep = v3.Zeros(natoms)
	} else if keep.NVecs() != natoms {
		return nil, nil, "", Error{NotEnoughSpace, X.filename, []string{"readFrame"}, true}
	}
	symbols := make([]string, natoms)
	for i := 0; i < natoms; i++ {
		line, err := X.xyz.ReadString('\n')
		if err != nil && line == "" {
			return nil, nil, "", Error{ReadError, X.filename, []string{"readFrame"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, "", Error{fmt.Sprintf("%s: atom line %d", WrongFormat, i), X.filename, []string{"readFrame"}, true}
		}
		symbols[i] = fields[0]
		for j := 0; j < 3; j++ {
			coord, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, nil, "", Error{fmt.Sprint("Unable to read coordinates from XYZ file ", err.Error()), X.filename, []string{"strconv.ParseFloat", "readFrame"}, true}
			}
			keep.Set(i, j, coord)
		}
	}
	return keep, symbols, comment, nil
}

//skipFrame advances past the next record without parsing coordinates.
func (X *XyzR) skipFrame() error {
	natoms, err := X.header()
	if err != nil {
		return err
	}
	for i := 0; i < natoms+1; i++ {
		line, err := X.xyz.ReadString('\n')
		if err != nil && line == "" {
			return Error{ReadError, X.filename, []string{"skipFrame"}, true}
		}
	}
	return nil
}

//Next reads the next record into keep, which must have as many rows as
//the record has atoms. A nil keep discards the record while still
//advancing past it.
func (X *XyzR) Next(keep *v3.Matrix) error {
	if keep == nil {
		return X.skipFrame()
	}
	_, _, _, err := X.readFrame(keep)
	return err
}

var geometries = multi.NewBinder(
	func(X *XyzR) (*chem.Geometry, error) {
		coords, symbols, _, err := X.readFrame(nil)
		if err != nil {
			return nil, err
		}
		atoms := make([]*chem.Atom, len(symbols))
		for i, s := range symbols {
			atoms[i] = &chem.Atom{Symbol: s}
		}
		return chem.NewGeometry(coords, atoms, nil)
	},
	multi.WithSkip[*XyzR, *chem.Geometry]((*XyzR).skipFrame),
	multi.WithDefault[*XyzR, *chem.Geometry](multi.Index(0)),
	multi.WithDoc[*XyzR, *chem.Geometry]("Geometries reads records as full geometries, symbols included. XYZ files carry no lattice, so the geometries have none."),
)

var frames = multi.NewBinder(
	func(X *XyzR) (multi.Pair[*v3.Matrix, string], error) {
		coords, _, comment, err := X.readFrame(nil)
		if err != nil {
			return multi.Pair[*v3.Matrix, string]{}, err
		}
		return multi.Pair[*v3.Matrix, string]{A: coords, B: comment}, nil
	},
	multi.WithSkip[*XyzR, multi.Pair[*v3.Matrix, string]]((*XyzR).skipFrame),
	multi.WithDefault[*XyzR, multi.Pair[*v3.Matrix, string]](multi.Index(0)),
)

//Geometries gives sliceable access to the records of the file as
//geometries. A bare Read returns the first record.
func (X *XyzR) Geometries() *multi.Reader[*XyzR, *chem.Geometry] {
	return geometries.Bind(X, &X.geometries)
}

//Frames gives sliceable access to the records of the file as bare
//coordinate matrices paired with their comment lines.
func (X *XyzR) Frames() *multi.Reader[*XyzR, multi.Pair[*v3.Matrix, string]] {
	return frames.Bind(X, &X.frames)
}
