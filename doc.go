/*
 * doc.go, part of gocrystal.
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

//Package crystal provides atom, lattice, geometry and grid structures for
//periodic atomistic systems, facilities for reading and writing some files
//used in solid-state electronic-structure calculations, and building blocks
//for bulk crystal phases and surface slabs.
//
//Files that contain a repeated sequence of records (trajectory frames, the
//spin components of a density grid) are accessed through the multi
//subpackage, which turns a "read the next record" function into indexed
//and sliced access over the whole file.
package crystal
