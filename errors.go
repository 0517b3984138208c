/*
 * errors.go, part of godirac.
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

import "fmt"

//CError is the concrete error type for errors originated in this package.
//It fulfills the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//DomainError signals that a real-branch energy is mathematically undefined
//because the nuclear charge exceeds the critical charge for the given
//angular quantum number (the eigenvalue has become complex). It is not
//recoverable within the call: the caller must either reject the input or
//explicitly request the complex branch with EnergyComplex.
type DomainError struct {
	Z     float64 //the offending charge
	Kappa int     //the angular quantum number for which Z is supercritical
	deco  []string
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("goDirac: charge Z=%v exceeds the critical charge %v for kappa=%d, the real-branch energy is undefined. Use EnergyComplex for supercritical charges", err.Z, CriticalZ(err.Kappa), err.Kappa)
}

//Decorate adds new information to the error.
func (err *DomainError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//CriticalZ returns the critical charge for the kappa that caused the error.
func (err *DomainError) CriticalZ() float64 {
	return CriticalZ(err.Kappa)
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
