/*
 * dirac.go, part of godirac.
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

//Alpha is the fine-structure constant. It fixes the unit system of the
//whole library: with the electron mass and hbar at 1, the speed of light
//is 1/Alpha and the electron rest energy is 1/Alpha^2.
const Alpha float64 = 0.0072973525664

//CriticalZ returns the critical nuclear charge |kappa|/Alpha for the
//given angular quantum number. At that charge the real-branch energy of
//the corresponding orbitals reaches zero; beyond it, it is undefined.
func CriticalZ(kappa int) float64 {
	return float64(iAbs(kappa)) / Alpha
}

//iAbs returns the absolute value of an int.
func iAbs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
