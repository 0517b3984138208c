/*
 * interfaces.go, part of godirac.
 *
 * Copyright 2024 The godirac authors
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

package dirac

// Orbitaler is the interface for orbital descriptors. The numeric core
// only ever reads the two quantum numbers; building and validating
// descriptors (say, from a label like "2p-") is the business of the
// orbital subpackage or of whatever the caller prefers.
type Orbitaler interface {

	//N returns the principal quantum number.
	N() int

	//Kappa returns the relativistic angular quantum number.
	Kappa() int
}

// RadialSolution is the capability of producing the radial large/small
// component pair of a Dirac bound state at a given radius. The required
// concrete case is the closed-form RefSolution; alternative numeric
// schemes (series expansions with different stability properties, etc.)
// can be added as further implementations without touching the energy
// calculator or any call site.
type RadialSolution interface {

	//PQ returns the large (P) and small (Q) radial components at radius r.
	PQ(r float64) (float64, float64)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate allows you to add information when you pass the error up. Each call also returns the current "decoration" slice of strings. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}
