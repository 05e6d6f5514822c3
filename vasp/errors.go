/*
 * errors.go, part of gocrystal
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
	"fmt"

	chem "github.com/rsolis/gocrystal"
)

//errDecorate is a helper function that asserts that the error
//implements chem.Error and decorates the error with the caller's name
//before returning it. If used with a non-chem.Error error, it will cause
//a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for VASP file errors. It fullfills
//chem.Error and chem.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("VASP file %s error: %s", err.filename, err.message)
}

func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "VASP" }

func (err Error) Critical() bool { return err.critical }

const (
	ReadError    = "Error reading file"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the VASP file"
	NoLattice    = "Geometry has no lattice"
)

//lastRecordError implements chem.LastRecordError
type lastRecordError struct {
	deco     []string
	fileName string
}

//NormalLastRecordTermination does nothing
func (E lastRecordError) NormalLastRecordTermination() {}

func (E lastRecordError) FileName() string { return E.fileName }

func (E lastRecordError) Error() string { return "EOF" }

func (E lastRecordError) Critical() bool { return false }

func (E lastRecordError) Format() string { return "VASP" }

func (E lastRecordError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastRecordError(filename string, caller string) *lastRecordError {
	e := new(lastRecordError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
