/*
 * laguerre.go, part of godirac.
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

//Special-function adapters. The Gamma function comes straight from the
//standard library (math.Gamma); the generalized Laguerre polynomials are
//evaluated here by the three-term recurrence, since gonum's mathext does
//not carry them. The degrees involved in a radial solution are n - |kappa|
//at most, so the recurrence is both cheap and stable for every physical
//input.

//genLaguerre evaluates the generalized Laguerre polynomial of the given
//nonnegative integer degree and real parameter at x, by the recurrence
//
//  (k+1)*L(k+1) = (2k+1+param-x)*L(k) - (k+param)*L(k-1)
//
//starting from L(0) = 1 and L(1) = 1 + param - x.
func genLaguerre(degree int, param, x float64) float64 {
	if degree <= 0 {
		return 1
	}
	prev := 1.0
	cur := 1 + param - x
	for k := 1; k < degree; k++ {
		prev, cur = cur, ((float64(2*k+1)+param-x)*cur-(float64(k)+param)*prev)/float64(k+1)
	}
	return cur
}

//factorial returns n! as a float64. n is a small radial quantum number
//here, so overflow is not a concern.
func factorial(n int) float64 {
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return r
}
