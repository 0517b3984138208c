/*
 * doc.go, part of godirac.
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

/*Package dirac computes analytic properties of hydrogenic (one-electron,
point-nucleus) atoms under the relativistic Dirac equation: bound-state
energy levels and the radial wavefunction components. Every quantity is
produced by a direct, closed-form formula; nothing is solved iteratively.



	**goDirac capabilities**


    Computes the exact relativistic energy of a hydrogenic orbital from
	(Z, n, kappa), in atomic units (electron mass = 1, hbar = 1,
	c = 1/alpha).

    Continues the energy formula analytically to complex values, so that
	charges beyond the critical charge |kappa|/alpha yield a complex
	energy (an unstable state) instead of an error.

    Evaluates the radial large/small component pair (P(r), Q(r)) of the
	Dirac bispinor for any bound orbital, from the closed-form solution
	built on generalized Laguerre polynomials and the Gamma function.

    Evaluates solutions over whole radial grids, serially or
	concurrently.

    Parses spectroscopic orbital labels ("1s", "2p-", "3d") into quantum
	numbers (subpackage orbital).

    Plots radial wavefunctions with the Plotinum/gonum plot library
	(subpackage diracplot).

    Writes and reads compressed wavefunction tables (subpackage table).


The orbital labels follow the usual relativistic convention: a trailing
"-" selects kappa = l (j = l - 1/2), its absence selects kappa = -(l+1)
(j = l + 1/2). Thus "2p-" is the j = 1/2 sub-shell of 2p and "2p" the
j = 3/2 one.

The library performs no validation of n >= |kappa| in the numeric core;
that is the responsibility of the caller, normally discharged by building
descriptors with the orbital subpackage.
*/
package dirac
