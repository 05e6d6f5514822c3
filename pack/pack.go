/*
 * pack.go, part of gocrystal
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

//Package pack stores sequences of geometries in a compact binary
//container, one MessagePack record per geometry, normally compressed
//(use a .zst or .gz file name). Unlike the text formats it keeps the
//lattice with every record.
package pack

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	chem "github.com/rsolis/gocrystal"
	"github.com/rsolis/gocrystal/multi"
	v3 "github.com/rsolis/gocrystal/v3"
)

//record is the on-disk form of one geometry.
type record struct {
	Symbols []string  `msgpack:"symbols"`
	Cell    []float64 `msgpack:"cell,omitempty"` //9 values, row-major, empty for isolated systems
	Coords  []float64 `msgpack:"coords"`
	Comment string    `msgpack:"comment,omitempty"`
}

//Writer appends geometries to a container file.
type Writer struct {
	filename string
	iowrite  io.WriteCloser
	enc      *msgpack.Encoder
}

//NewWriter creates the container file with the given name, compressed
//according to its extension.
func NewWriter(filename string) (*Writer, error) {
	f, err := chem.CreateCompressed(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"NewWriter"}, true}
	}
	return &Writer{filename: filename, iowrite: f, enc: msgpack.NewEncoder(f)}, nil
}

//WNext appends one geometry with an attached comment.
func (W *Writer) WNext(g *chem.Geometry, comment string) error {
	if W.enc == nil {
		return Error{WriterClosed, W.filename, []string{"WNext"}, true}
	}
	coords := g.Coords()
	rec := record{
		Symbols: g.Symbols(),
		Coords:  make([]float64, 0, g.Len()*3),
		Comment: comment,
	}
	for i := 0; i < g.Len(); i++ {
		rec.Coords = append(rec.Coords, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
	}
	if lat := g.Lattice(); lat != nil {
		rec.Cell = make([]float64, 0, 9)
		for i := 0; i < 3; i++ {
			v := lat.Vec(i)
			rec.Cell = append(rec.Cell, v[0], v[1], v[2])
		}
	}
	if err := W.enc.Encode(&rec); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

//Close flushes and closes the container. The writer cannot be reused.
func (W *Writer) Close() error {
	if W.enc == nil {
		return nil
	}
	W.enc = nil
	return W.iowrite.Close()
}

//Reader reads geometries back from a container file.
type Reader struct {
	filename string
	ioread   io.ReadCloser
	dec      *msgpack.Decoder

	geometries *multi.Reader[*Reader, *chem.Geometry]
	comments   *multi.Reader[*Reader, multi.Pair[*chem.Geometry, string]]
}

//New creates a reader for the container file with the given name. The
//file is opened on the first read.
func New(filename string) *Reader {
	return &Reader{filename: filename}
}

//Open opens the container, or reopens it from its first record.
func (R *Reader) Open() error {
	if R.ioread != nil {
		R.ioread.Close()
		R.ioread = nil
	}
	f, err := chem.OpenDecompressed(R.filename)
	if err != nil {
		return Error{UnableToOpen, R.filename, []string{"Open"}, true}
	}
	R.ioread = f
	R.dec = msgpack.NewDecoder(f)
	return nil
}

//Close closes the underlying file.
func (R *Reader) Close() error {
	R.dec = nil
	if R.ioread == nil {
		return nil
	}
	err := R.ioread.Close()
	R.ioread = nil
	return err
}

//next decodes one record and rebuilds its geometry.
func (R *Reader) next() (*chem.Geometry, string, error) {
	if R.dec == nil {
		return nil, "", Error{ReaderClosed, R.filename, []string{"next"}, true}
	}
	var rec record
	if err := R.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, "", newlastRecordError(R.filename, "next")
		}
		return nil, "", Error{err.Error(), R.filename, []string{"next"}, true}
	}
	if len(rec.Coords) != len(rec.Symbols)*3 {
		return nil, "", Error{fmt.Sprintf("%s: %d coordinates for %d atoms", WrongFormat, len(rec.Coords), len(rec.Symbols)), R.filename, []string{"next"}, true}
	}
	coords, err := v3.NewMatrix(rec.Coords)
	if err != nil {
		return nil, "", Error{err.Error(), R.filename, []string{"next"}, true}
	}
	atoms := make([]*chem.Atom, len(rec.Symbols))
	for i, s := range rec.Symbols {
		atoms[i] = &chem.Atom{Symbol: s}
	}
	var lat *chem.Lattice
	if len(rec.Cell) == 9 {
		var vecs [3][3]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				vecs[i][j] = rec.Cell[i*3+j]
			}
		}
		lat = chem.LatticeFromVectors(vecs)
	} else if len(rec.Cell) != 0 {
		return nil, "", Error{fmt.Sprintf("%s: cell with %d values", WrongFormat, len(rec.Cell)), R.filename, []string{"next"}, true}
	}
	g, err := chem.NewGeometry(coords, atoms, lat)
	if err != nil {
		return nil, "", Error{err.Error(), R.filename, []string{"next"}, true}
	}
	return g, rec.Comment, nil
}

var geometries = multi.NewBinder(
	func(R *Reader) (*chem.Geometry, error) {
		g, _, err := R.next()
		return g, err
	},
	multi.WithDefault[*Reader, *chem.Geometry](multi.All()),
)

var commented = multi.NewBinder(
	func(R *Reader) (multi.Pair[*chem.Geometry, string], error) {
		g, comment, err := R.next()
		if err != nil {
			return multi.Pair[*chem.Geometry, string]{}, err
		}
		return multi.Pair[*chem.Geometry, string]{A: g, B: comment}, nil
	},
	multi.WithDefault[*Reader, multi.Pair[*chem.Geometry, string]](multi.All()),
)

//Geometries gives sliceable access to the records of the container. A
//bare Collect returns all of them.
func (R *Reader) Geometries() *multi.Reader[*Reader, *chem.Geometry] {
	return geometries.Bind(R, &R.geometries)
}

//Commented gives sliceable access to the records paired with their
//comments.
func (R *Reader) Commented() *multi.Reader[*Reader, multi.Pair[*chem.Geometry, string]] {
	return commented.Bind(R, &R.comments)
}
