/*
 * energy.go, part of godirac.
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

import (
	"math"
	"math/cmplx"
)

//Energy returns the exact relativistic bound-state energy, in atomic
//units, of the hydrogenic orbital (n, kappa) around a point nucleus of
//charge Z:
//
//  E = 1 / ( Alpha^2 * sqrt( 1 + ( Z*Alpha / (n - |kappa| + sqrt(D)) )^2 ) )
//
//with D = kappa^2 - (Z*Alpha)^2. It returns a *DomainError when D < 0,
//i.e. when Z exceeds the critical charge |kappa|/Alpha: past that point
//the real eigenvalue no longer exists. At Z = 0 the result is exactly the
//rest energy 1/Alpha^2; at the critical charge itself it is exactly 0 for
//n = |kappa| states. Consistency of n and kappa (n >= |kappa|) is not
//checked.
func Energy(Z float64, n, kappa int) (float64, error) {
	za := Z * Alpha
	delta := float64(kappa*kappa) - za*za
	if delta < 0 {
		return 0, &DomainError{Z: Z, Kappa: kappa}
	}
	x := za / (float64(n-iAbs(kappa)) + math.Sqrt(delta))
	return 1 / (Alpha * Alpha * math.Sqrt(1+x*x)), nil
}

//EnergyComplex returns the analytic continuation of Energy: the same
//formula, with D promoted to a complex value before its principal square
//root is taken. It never fails on domain grounds. Below the critical
//charge the result is real (bit-identical to Energy, with a zero
//imaginary part); beyond it the nonzero imaginary part signals an
//unstable, resonant state rather than an error.
func EnergyComplex(Z float64, n, kappa int) complex128 {
	za := Z * Alpha
	delta := float64(kappa*kappa) - za*za
	den := addReal(float64(n-iAbs(kappa)), cmplx.Sqrt(complex(delta, 0)))
	x := complex(za, 0) / den
	return complex(1, 0) / (complex(Alpha*Alpha, 0) * cmplx.Sqrt(addReal(1, x*x)))
}

//addReal adds a real number to a complex one componentwise. Going through
//complex(a, 0) instead would turn a negative zero imaginary part into a
//positive one, which selects the wrong branch of a square root taken
//right on its cut (supercritical charges land exactly there).
func addReal(a float64, z complex128) complex128 {
	return complex(a+real(z), imag(z))
}

//OrbitalEnergy returns the real-branch energy of the given orbital,
//extracting the quantum numbers from the descriptor. Equivalent to
//Energy(Z, o.N(), o.Kappa()).
func OrbitalEnergy(Z float64, o Orbitaler) (float64, error) {
	if o == nil {
		return 0, CError{"goDirac: nil orbital descriptor", []string{"OrbitalEnergy"}}
	}
	E, err := Energy(Z, o.N(), o.Kappa())
	if err != nil {
		return 0, errDecorate(err, "OrbitalEnergy")
	}
	return E, nil
}

//OrbitalEnergyComplex returns the complex-branch energy of the given
//orbital. Equivalent to EnergyComplex(Z, o.N(), o.Kappa()).
func OrbitalEnergyComplex(Z float64, o Orbitaler) complex128 {
	return EnergyComplex(Z, o.N(), o.Kappa())
}
