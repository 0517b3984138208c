/*
 * radial_test.go, part of godirac.
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
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

//pqCase is a precomputed reference point, from an independent
//high-precision evaluation of the closed forms.
type pqCase struct {
	r, P, Q float64
}

func checkPQ(Te *testing.T, R *RefSolution, cases []pqCase) {
	for _, c := range cases {
		P, Q := R.PQ(c.r)
		if !scalar.EqualWithinAbsOrRel(P, c.P, 1e-13, 1e-10) {
			Te.Errorf("(Z=%v n=%d kappa=%d) P(%v)=%.17g, want %.17g", R.Z, R.N(), R.Kappa(), c.r, P, c.P)
		}
		if !scalar.EqualWithinAbsOrRel(Q, c.Q, 1e-13, 1e-10) {
			Te.Errorf("(Z=%v n=%d kappa=%d) Q(%v)=%.17g, want %.17g", R.Z, R.N(), R.Kappa(), c.r, Q, c.Q)
		}
	}
}

//TestRadialOrigin checks that both components vanish exactly at r=0 for
//stretched and non-stretched states alike.
func TestRadialOrigin(Te *testing.T) {
	for _, nk := range [][3]int{{1, 1, -1}, {1, 2, -1}, {1, 2, 1}, {2, 3, -2}, {80, 2, -2}} {
		R, err := NewRefSolution(float64(nk[0]), nk[1], nk[2])
		if err != nil {
			Te.Fatal(err)
		}
		P, Q := R.PQ(0)
		if P != 0 || Q != 0 {
			Te.Errorf("(Z=%d n=%d kappa=%d) P(0)=%v Q(0)=%v, want exact zeros", nk[0], nk[1], nk[2], P, Q)
		}
	}
}

//TestRadialStretched pins the no-node closed form for the hydrogen
//ground state (n = -kappa).
func TestRadialStretched(Te *testing.T) {
	R, err := NewRefSolution(1, 1, -1)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("1s energy:", R.Energy(), "gamma:", R.Gamma())
	checkPQ(Te, R, []pqCase{
		{0.5, 0.60654152474695122, 0.0022131031391973495},
		{1, 0.73575848318933523, 0.0026845802676358026},
		{2, 0.54133084850191138, 0.0019751673237273551},
		{5, 0.067376546091811249, 0.0002458384786206872},
		{10, 0.00090794243617488019, 3.3128321371688851e-06},
	})
}

//TestRadialGeneral pins the Laguerre-based closed form for states with
//radial nodes, for both signs of kappa and Z > 1.
func TestRadialGeneral(Te *testing.T) {
	R, err := NewRefSolution(1, 2, -1)
	if err != nil {
		Te.Fatal(err)
	}
	checkPQ(Te, R, []pqCase{
		{0.5, 0.4818826846418966, 0.0018838476771709388},
		{1, 0.64334264591167678, 0.0027386125257705353},
		{2, 0.52026414182476555, 0.0028474605380514502},
		{5, -0.14511053177987193, 0.00079416295855351993},
		{10, -0.14293096427737573, -8.6922668778860774e-05},
	})
	R, err = NewRefSolution(1, 2, 1)
	if err != nil {
		Te.Fatal(err)
	}
	checkPQ(Te, R, []pqCase{
		{0.5, 0.039751224972859857, -0.0016677167666524755},
		{1, 0.12382096515478797, -0.0024846502902369704},
		{2, 0.30038730564810878, -0.0027399762598580082},
		{5, 0.41888891447497073, -0.0010698676413528863},
		{10, 0.13753434691843425, -5.0179592888838443e-05},
	})
	R, err = NewRefSolution(2, 3, -2)
	if err != nil {
		Te.Fatal(err)
	}
	checkPQ(Te, R, []pqCase{
		{0.5, 0.16344951399053828, 0.00062123186620515348},
		{1, 0.40989242357422567, 0.0016380233277263109},
		{2, 0.60124736762349829, 0.0027788081625846816},
		{5, -0.10172213950158381, 0.00086587901993137497},
		{10, -0.15964545421314233, -0.0002294755075193431},
	})
}

//TestRadialSequence checks that grid evaluation is an elementwise,
//order-preserving map identical to evaluating each point on its own, and
//that the concurrent version changes nothing.
func TestRadialSequence(Te *testing.T) {
	R, err := NewRefSolution(1, 2, -1)
	if err != nil {
		Te.Fatal(err)
	}
	rs := floats.Span(make([]float64, 101), 0, 20)
	P, Q := PQs(R, rs)
	if len(P) != len(rs) || len(Q) != len(rs) {
		Te.Fatalf("got %d P and %d Q values for %d radii", len(P), len(Q), len(rs))
	}
	for i, r := range rs {
		p, q := R.PQ(r)
		if P[i] != p || Q[i] != q {
			Te.Errorf("sequence evaluation differs from the pointwise one at r=%v", r)
		}
	}
	Pc, Qc := PQsConc(R, rs)
	if !floats.Equal(P, Pc) || !floats.Equal(Q, Qc) {
		Te.Error("concurrent evaluation differs from the serial one")
	}
}

//TestRadialSupercritical checks that the closed form refuses to build
//past the critical charge, where gamma would turn imaginary.
func TestRadialSupercritical(Te *testing.T) {
	_, err := NewRefSolution(138, 1, -1)
	if err == nil {
		Te.Fatal("NewRefSolution(138,1,-1) did not fail")
	}
	if _, ok := err.(*DomainError); !ok {
		Te.Errorf("expected a *DomainError, got %T: %v", err, err)
	}
}
