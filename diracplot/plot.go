/*
 * plot.go, part of godirac.
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

//Package diracplot draws radial wavefunctions computed by the parent
//package, using the gonum plot library.
package diracplot

import (
	"fmt"
	"image/color"

	dirac "github.com/godirac/godirac"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicRadialPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "r (a.u.)"
	p.Y.Label.Text = "P(r), Q(r)"
	p.Add(plotter.NewGrid())
	return p
}

//RadialPlot plots the large component (solid) and the small component
//(dashed) of every solution in sols over points radii spanning [0, rmax],
//one color per solution, and saves the result as plotname.png. labels,
//if not nil, must contain one legend entry per solution. The small
//components are drawn magnified by qscale, since on the scale of P they
//are invisible for light atoms (they are of order Z*Alpha).
func RadialPlot(sols []dirac.RadialSolution, labels []string, rmax float64, points int, qscale float64, title, plotname string) error {
	if len(sols) == 0 {
		return Error{message: NilSolutions, plotname: plotname, deco: []string{"RadialPlot"}}
	}
	if labels != nil && len(labels) < len(sols) {
		return Error{message: NotEnoughLabels, plotname: plotname, deco: []string{"RadialPlot"}}
	}
	if points < 2 || rmax <= 0 {
		return Error{message: BadGrid, plotname: plotname, deco: []string{"RadialPlot"}}
	}
	p := basicRadialPlot(title)
	rs := floats.Span(make([]float64, points), 0, rmax)
	for key, sol := range sols {
		P, Q := dirac.PQs(sol, rs)
		r, g, b := colors(key, len(sols))
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		pline, err := plotter.NewLine(xys(rs, P, 1))
		if err != nil {
			return err
		}
		pline.Color = col
		qline, err := plotter.NewLine(xys(rs, Q, qscale))
		if err != nil {
			return err
		}
		qline.Color = col
		qline.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(pline, qline)
		if labels != nil {
			p.Legend.Add(labels[key], pline)
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

func xys(rs, vals []float64, scale float64) plotter.XYs {
	pts := make(plotter.XYs, len(rs))
	for i, r := range rs {
		pts[i].X = r
		pts[i].Y = vals[i] * scale
	}
	return pts
}
