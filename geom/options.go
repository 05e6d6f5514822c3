/*
 * options.go, part of gocrystal
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

//Options contains the various options for the slab builders.
type Options struct {
	layers     int    //number of layers, 0 means one full stacking period
	stacking   string //explicit layer sequence, overrides layers
	start      string //first layer, a letter or a digit, empty means unset
	end        string //last layer, a letter or a digit, empty means unset
	vacuum     float64
	hasVacuum  bool
	orthogonal bool
}

//DefaultOptions returns reasonable options for a slab: one full stacking
//period of layers, 20 A of vacuum and a non-orthogonal lattice where the
//crystal has one.
func DefaultOptions() *Options {
	r := new(Options)
	r.vacuum = 20.0
	r.hasVacuum = true
	return r
}

//Returns the number of layers in the slab,
//and sets it to a new value, if given.
func (O *Options) Layers(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.layers = n[0]
	}
	return O.layers
}

//Returns the explicit layer sequence (say, "ABCABC"),
//and sets it to a new value, if given. A non-empty sequence
//overrides the plain layer count.
func (O *Options) Stacking(s ...string) string {
	if len(s) > 0 {
		O.stacking = s[0]
	}
	return O.stacking
}

//Returns the first layer of the slab, a letter ("A") or a digit ("0"),
//and sets it to a new value, if given. Only one of Start and End
//may be set.
func (O *Options) Start(layer ...string) string {
	if len(layer) > 0 {
		O.start = layer[0]
	}
	return O.start
}

//Returns the last layer of the slab, a letter or a digit,
//and sets it to a new value, if given. Only one of Start and End
//may be set.
func (O *Options) End(layer ...string) string {
	if len(layer) > 0 {
		O.end = layer[0]
	}
	return O.end
}

//Returns the vacuum added along the third lattice vector to separate the
//slab from its periodic images, and sets it to a new value, if given.
func (O *Options) Vacuum(v ...float64) float64 {
	if len(v) > 0 {
		O.vacuum = v[0]
		O.hasVacuum = true
	}
	return O.vacuum
}

//NoVacuum makes the slab fully periodic, with no vacuum added. Useful
//when appending geometries together.
func (O *Options) NoVacuum() {
	O.hasVacuum = false
}

//Returns whether the slab lattice is forced to be orthogonal,
//and sets it, if given.
func (O *Options) Orthogonal(b ...bool) bool {
	if len(b) > 0 {
		O.orthogonal = b[0]
	}
	return O.orthogonal
}

func (O *Options) copyNoVacuum() *Options {
	c := *O
	c.hasVacuum = false
	return &c
}
