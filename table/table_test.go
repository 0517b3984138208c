/*
 * table_test.go, part of godirac.
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

package table

import (
	"fmt"
	"io"
	"testing"

	dirac "github.com/godirac/godirac"
	"gonum.org/v1/gonum/floats"
)

//roundTrip writes the hydrogen ground state to name and reads it back,
//checking that every row survives exactly.
func roundTrip(Te *testing.T, name string) {
	s, err := dirac.NewRefSolution(1, 1, -1)
	if err != nil {
		Te.Fatal(err)
	}
	rs := floats.Span(make([]float64, 200), 0, 25)
	P, Q := dirac.PQs(s, rs)
	header := map[string]string{"orbital": "1s", "Z": "1"}
	if err := WriteSolution(name, s, rs, header); err != nil {
		Te.Fatal(err)
	}
	T, gotHeader, err := NewReader(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer T.Close()
	if gotHeader["orbital"] != "1s" || gotHeader["Z"] != "1" {
		Te.Errorf("header came back as %v", gotHeader)
	}
	for i := 0; ; i++ {
		r, p, q, err := T.Next()
		if err == io.EOF {
			if i != len(rs) {
				Te.Errorf("table %s holds %d rows, want %d", name, i, len(rs))
			}
			break
		}
		if err != nil {
			Te.Fatal(err)
		}
		if i >= len(rs) {
			Te.Fatalf("table %s holds more rows than were written", name)
		}
		if r != rs[i] || p != P[i] || q != Q[i] {
			Te.Errorf("row %d of %s came back as (%v %v %v), want (%v %v %v)", i, name, r, p, q, rs[i], P[i], Q[i])
		}
	}
}

//TestRoundTrip exercises every compressor the extension switch knows.
func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"h1s.wtab.zst", "h1s.wtab.gz", "h1s.wtab"} {
		fmt.Println("table round trip:", name)
		roundTrip(Te, dir+"/"+name)
	}
}

func TestWriterErrors(Te *testing.T) {
	if err := WriteSolution(Te.TempDir()+"/nil.wtab", nil, []float64{1}, nil); err == nil {
		Te.Error("WriteSolution accepted a nil solution")
	}
	if _, _, err := NewReader(Te.TempDir() + "/absent.wtab"); err == nil {
		Te.Error("NewReader opened a file that does not exist")
	}
	T := new(TableW)
	if err := T.WNext(1, 2, 3); err == nil {
		Te.Error("an uninitialized writer accepted a row")
	}
}
