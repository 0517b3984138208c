/*
 * radial.go, part of godirac.
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

import "math"

//RefSolution is the closed-form analytic radial solution of the Dirac
//equation for a hydrogenic bound state, built from generalized Laguerre
//polynomials and the Gamma function. It is the reference implementation
//of the RadialSolution capability. The derived quantities that do not
//depend on the radius (energy, gamma, the normalization amplitude) are
//computed once at construction; everything else is recomputed per
//evaluated point, so a RefSolution is immutable after construction and
//safe to evaluate from many goroutines at once.
type RefSolution struct {
	Z      float64
	n      int
	kappa  int
	energy float64
	gamma  float64
	c      float64 //Z/n, the inverse length scale of the orbital
	amp    float64 //normalization amplitude
}

//NewRefSolution builds the closed-form radial solution for the orbital
//(n, kappa) of a hydrogenic atom with nuclear charge Z. It fails, with
//the energy calculator's *DomainError, when Z exceeds the critical charge
//for kappa: the closed form is defined only below criticality, where
//gamma is real.
func NewRefSolution(Z float64, n, kappa int) (*RefSolution, error) {
	E, err := Energy(Z, n, kappa)
	if err != nil {
		return nil, errDecorate(err, "NewRefSolution")
	}
	R := new(RefSolution)
	R.Z = Z
	R.n = n
	R.kappa = kappa
	R.energy = E
	za := Z * Alpha
	R.gamma = math.Sqrt(float64(kappa*kappa) - za*za)
	R.c = Z / float64(n)
	fn := float64(n)
	fk := float64(kappa)
	if n == -kappa {
		//stretched state (1s, 2p at j=3/2, ...): no radial node.
		R.amp = math.Sqrt(R.c / (2 * fn * (fn + R.gamma) * R.gamma * math.Gamma(2*R.gamma)))
	} else {
		nr := n - iAbs(kappa) //number of radial nodes
		w := Alpha * Alpha * E * fk / R.gamma
		R.amp = math.Sqrt(0.5*(R.c/(float64(nr)+R.gamma))*(factorial(nr-1)/math.Gamma(float64(nr)+2*R.gamma+1))*(w*w+w)) /
			math.Sqrt(2*fk*(fk-R.gamma))
	}
	return R, nil
}

//PQ returns the large and small radial components at radius r. Both
//carry the factor rho^gamma with gamma > 0, so both vanish exactly at
//r = 0.
func (R *RefSolution) PQ(r float64) (float64, float64) {
	rho := 2 * R.c * r
	pre := math.Pow(rho, R.gamma) * math.Exp(-rho/2)
	fn := float64(R.n)
	fk := float64(R.kappa)
	if R.n == -R.kappa {
		return R.amp * (fn + R.gamma) * pre, R.amp * R.Z * Alpha * pre
	}
	nr := R.n - iAbs(R.kappa)
	l1 := genLaguerre(nr-1, 2*R.gamma+1, rho)
	l2 := genLaguerre(nr, 2*R.gamma+1, rho)
	t := (R.gamma/(Alpha*Alpha) - fk*R.energy) * Alpha / R.c
	p := R.amp * pre * (R.Z*Alpha*rho*l1 + (R.gamma-fk)*t*l2)
	q := R.amp * pre * ((R.gamma-fk)*rho*l1 + R.Z*Alpha*t*l2)
	return p, q
}

//Energy returns the (real-branch) energy eigenvalue of the solution.
func (R *RefSolution) Energy() float64 {
	return R.energy
}

//Gamma returns the derived exponent gamma = sqrt(kappa^2 - (Z*Alpha)^2).
func (R *RefSolution) Gamma() float64 {
	return R.gamma
}

//N returns the principal quantum number of the solution.
func (R *RefSolution) N() int {
	return R.n
}

//Kappa returns the angular quantum number of the solution.
func (R *RefSolution) Kappa() int {
	return R.kappa
}

//PQs evaluates the solution s at every radius in rs, returning the large
//components and the small components in two slices with the same length
//and order as rs. Each point is evaluated independently; there is no
//shared accumulator.
func PQs(s RadialSolution, rs []float64) ([]float64, []float64) {
	P := make([]float64, len(rs))
	Q := make([]float64, len(rs))
	for i, r := range rs {
		P[i], Q[i] = s.PQ(r)
	}
	return P, Q
}

//PQsConc does the same as PQs, but evaluates the radii concurrently, one
//goroutine per point. Solutions only read immutable state, so no
//synchronization beyond the completion channel is needed. The results
//are identical to those of PQs, in the same order.
func PQsConc(s RadialSolution, rs []float64) ([]float64, []float64) {
	points := len(rs)
	P := make([]float64, points)
	Q := make([]float64, points)
	ended := make(chan bool, points)
	for i := 0; i < points; i++ {
		go func(i int) {
			P[i], Q[i] = s.PQ(rs[i])
			ended <- true
		}(i)
	}
	for i := 0; i < points; i++ {
		<-ended
	}
	return P, Q
}
