/*
 * orbital.go, part of godirac.
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

//Package orbital maps spectroscopic labels like "1s", "2p-" or "3d" to
//relativistic quantum numbers (n, kappa), and represents the result as an
//immutable descriptor satisfying the dirac.Orbitaler interface. A
//trailing "-" selects kappa = l (j = l - 1/2); its absence selects
//kappa = -(l+1) (j = l + 1/2). All the validity checking that the numeric
//core deliberately omits lives here.
package orbital

import (
	"fmt"
	"strconv"
	"strings"
)

//shells holds the spectroscopic letters indexed by l. The letter "j" is
//skipped by convention.
var shells = []string{"s", "p", "d", "f", "g", "h", "i", "k"}

//Orbital is an immutable orbital descriptor. It satisfies
//dirac.Orbitaler.
type Orbital struct {
	n     int
	kappa int
}

//New returns a descriptor for the quantum numbers (n, kappa), or an
//error if no such orbital exists: kappa must be nonzero, n positive,
//the orbital angular momentum l at most n-1.
func New(n, kappa int) (*Orbital, error) {
	if kappa == 0 {
		return nil, Error{message: fmt.Sprintf("kappa must be nonzero (n=%d)", n)}
	}
	if n < 1 {
		return nil, Error{message: fmt.Sprintf("the principal quantum number must be positive, got %d", n)}
	}
	l := kappa
	if kappa < 0 {
		l = -kappa - 1
	}
	if l > n-1 {
		return nil, Error{message: fmt.Sprintf("no such orbital: n=%d kappa=%d implies l=%d > n-1", n, kappa, l)}
	}
	return &Orbital{n: n, kappa: kappa}, nil
}

//Parse builds a descriptor from a spectroscopic label such as "1s",
//"2p-" or "4f". Case is ignored.
func Parse(label string) (*Orbital, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	minus := strings.HasSuffix(s, "-")
	s = strings.TrimSuffix(s, "-")
	if len(s) < 2 {
		return nil, Error{message: "label too short", label: label}
	}
	letter := s[len(s)-1:]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return nil, Error{message: "the label must start with the principal quantum number", label: label}
	}
	l := -1
	for i, v := range shells {
		if v == letter {
			l = i
			break
		}
	}
	if l < 0 {
		return nil, Error{message: fmt.Sprintf("unknown shell letter %q", letter), label: label}
	}
	kappa := -(l + 1)
	if minus {
		if l == 0 {
			//s orbitals have j = 1/2 only; kappa = l would be 0.
			return nil, Error{message: "s orbitals have no j = l - 1/2 sub-shell", label: label}
		}
		kappa = l
	}
	O, err2 := New(n, kappa)
	if err2 != nil {
		e := err2.(Error)
		e.label = label
		return nil, e
	}
	return O, nil
}

//N returns the principal quantum number.
func (O *Orbital) N() int {
	return O.n
}

//Kappa returns the relativistic angular quantum number.
func (O *Orbital) Kappa() int {
	return O.kappa
}

//L returns the orbital angular momentum quantum number.
func (O *Orbital) L() int {
	if O.kappa < 0 {
		return -O.kappa - 1
	}
	return O.kappa
}

//TwoJ returns twice the total angular momentum, i.e. 2j = 2|kappa| - 1.
func (O *Orbital) TwoJ() int {
	k := O.kappa
	if k < 0 {
		k = -k
	}
	return 2*k - 1
}

//String returns the spectroscopic label of the orbital, in the same
//convention Parse reads.
func (O *Orbital) String() string {
	suffix := ""
	if O.kappa > 0 {
		suffix = "-"
	}
	return fmt.Sprintf("%d%s%s", O.n, shells[O.L()], suffix)
}

//Error is the error type for bad labels and nonexistent orbitals. It
//fulfills dirac.Error.
type Error struct {
	message string
	label   string //the offending label, or empty if none
	deco    []string
}

func (err Error) Error() string {
	if err.label == "" {
		return fmt.Sprintf("goDirac/orbital: %s", err.message)
	}
	return fmt.Sprintf("goDirac/orbital: label %q: %s", err.label, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Label returns the label that failed to parse, if any.
func (err Error) Label() string {
	return err.label
}
