/*
 * interfaces.go, part of gocrystal.
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

package crystal

import v3 "github.com/rsolis/gocrystal/v3"

// Atomer is the basic interface for anything that holds a list of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Coorder can hand out the cartesian coordinates of its atoms.
type Coorder interface {
	Atomer

	//Coords returns the coordinates of all atoms, one row per atom.
	Coords() *v3.Matrix
}

//Errors

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. Each call appends the
// given string to the decoration slice and returns the slice resulting from the
// current call; if passed an empty string, it just returns the current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors produced while parsing a file
// of records.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastRecordError has a useless function to distinguish the harmless errors
// (i.e. the file simply ran out of records) so they can be filtered in a type
// switch that looks for this interface.
type LastRecordError interface {
	FileError
	NormalLastRecordTermination() //does nothing, just to separate this interface from other FileError's
}

// IsLastRecord returns whether err just signals that there are no further
// records to be read, as opposed to an actual parsing or I/O problem.
func IsLastRecord(err error) bool {
	_, ok := err.(LastRecordError)
	return ok
}
