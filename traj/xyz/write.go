/*
 * write.go, part of gocrystal
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

package xyz

import (
	"fmt"
	"io"

	chem "github.com/rsolis/gocrystal"
	v3 "github.com/rsolis/gocrystal/v3"
)

//Container for an XYZ file open for writing.
type XyzW struct {
	filename  string
	iowrite   io.WriteCloser
	writeable bool
}

//NewWriter creates the file with the given name, compressing it when the
//name ends in .gz or .zst, and returns a writer of XYZ records to it.
func NewWriter(filename string) (*XyzW, error) {
	f, err := chem.CreateCompressed(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"NewWriter"}, true}
	}
	return &XyzW{filename: filename, iowrite: f, writeable: true}, nil
}

//WNext appends one record with the given coordinates, symbols and comment
//line. symbols must have one entry per coordinate row.
func (W *XyzW) WNext(coords *v3.Matrix, symbols []string, comment string) error {
	if !W.writeable {
		return Error{TrajWClosed, W.filename, []string{"WNext"}, true}
	}
	if coords == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	natoms := coords.NVecs()
	if len(symbols) != natoms {
		return Error{fmt.Sprintf("%d symbols for %d atoms", len(symbols), natoms), W.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(W.iowrite, "%-4d\n", natoms)
	fmt.Fprintf(W.iowrite, "%s\n", comment)
	for i := 0; i < natoms; i++ {
		_, err := fmt.Fprintf(W.iowrite, "%-2s  %12.6f%12.6f%12.6f\n", symbols[i], coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return Error{err.Error(), W.filename, []string{"WNext"}, true}
		}
	}
	return nil
}

//WGeometry appends one record taken from a geometry, with an empty
//comment line.
func (W *XyzW) WGeometry(g *chem.Geometry) error {
	return W.WNext(g.Coords(), g.Symbols(), "")
}

//Close flushes and closes the file. The writer cannot be reused.
func (W *XyzW) Close() error {
	if !W.writeable {
		return nil
	}
	W.writeable = false
	return W.iowrite.Close()
}
