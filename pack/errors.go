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

package pack

import (
	"fmt"
)

//Error is the general structure for container errors. It fullfills
//chem.Error and chem.FileError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("geometry container %s error: %s", err.filename, err.message)
}

func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "pack" }

func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	WriterClosed = "Writer already closed"
	ReaderClosed = "Reader not open"
	WrongFormat  = "Inconsistent record in container"
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

func (E lastRecordError) Format() string { return "pack" }

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
