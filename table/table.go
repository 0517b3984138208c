/*
 * table.go, part of godirac.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	dirac "github.com/godirac/godirac"
	"github.com/klauspost/compress/zstd"
)

const flateLevel int = 9

//TableW writes a wavefunction table.
type TableW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

//NewWriter creates the file name and returns a writer for it. The
//compressor is chosen from the extension (see the package documentation).
//The header map, if not nil, is written as key=value lines before the
//data.
func NewWriter(name string, header map[string]string) (*TableW, error) {
	T := new(TableW)
	var err error
	T.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flateLevel) }
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch {
	case strings.HasSuffix(name, ".zst"):
		anyNewWriter = zstdwriter
	case strings.HasSuffix(name, ".gz"):
		anyNewWriter = gzipwriter
	default:
		anyNewWriter = flatewriter
	}
	T.h, err = anyNewWriter(T.f)
	if err != nil {
		T.f.Close()
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	T.filename = name
	T.writeable = true
	for k, v := range header {
		fmt.Fprintf(T.h, "%s=%v\n", k, v)
	}
	T.h.Write([]byte("**\n"))
	return T, nil
}

//WNext writes the next table row.
func (T *TableW) WNext(r, p, q float64) error {
	if !T.writeable {
		return Error{TableUnIniWrite, T.filename, []string{"WNext"}, true}
	}
	_, err := fmt.Fprintf(T.h, "%s %s %s\n", ftoa(r), ftoa(p), ftoa(q))
	if err != nil {
		return Error{err.Error(), T.filename, []string{"WNext"}, true}
	}
	return nil
}

//Close flushes and closes the table. The writer can not be used after
//this call.
func (T *TableW) Close() {
	if T == nil || !T.writeable {
		return
	}
	T.h.Close()
	T.f.Close()
	T.writeable = false
}

//ftoa prints a float64 so that parsing it back recovers the exact value.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//WriteSolution evaluates s at every radius in rs and writes the whole
//table to the file name, header included. It is the usual way to produce
//a table in one call.
func WriteSolution(name string, s dirac.RadialSolution, rs []float64, header map[string]string) error {
	if s == nil {
		return Error{NilSolution, name, []string{"WriteSolution"}, true}
	}
	T, err := NewWriter(name, header)
	if err != nil {
		return errDecorate(err, "WriteSolution")
	}
	defer T.Close()
	P, Q := dirac.PQs(s, rs)
	for i, r := range rs {
		if err := T.WNext(r, P[i], Q[i]); err != nil {
			return errDecorate(err, "WriteSolution")
		}
	}
	return nil
}

//zstd.Decoder does not implement io.ReadCloser (its Close returns
//nothing), so it gets a little help.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//TableR reads a wavefunction table written by this package.
type TableR struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
}

//NewReader opens the table file name and returns a reader positioned on
//the first data row, plus the header map (empty if the file carries no
//header).
func NewReader(name string) (*TableR, map[string]string, error) {
	T := new(TableR)
	var err error
	T.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err2 := zstd.NewReader(T.f)
		if err2 != nil {
			T.f.Close()
			return nil, nil, Error{UnableToOpen + ": " + err2.Error(), name, []string{"NewReader"}, true}
		}
		T.z = zstdql{closeql: d.Close, Decoder: d}
	case strings.HasSuffix(name, ".gz"):
		T.z, err = gzip.NewReader(T.f)
		if err != nil {
			T.f.Close()
			return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
		}
	default:
		T.z = flate.NewReader(T.f)
	}
	T.h = bufio.NewReader(T.z)
	T.filename = name
	header := map[string]string{}
	for {
		line, err := T.h.ReadString('\n')
		if err != nil {
			T.Close()
			return nil, nil, Error{WrongFormat + ": header never closed", name, []string{"NewReader"}, true}
		}
		line = strings.TrimRight(line, "\n")
		if line == "**" {
			break
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			T.Close()
			return nil, nil, Error{WrongFormat + ": bad header line " + line, name, []string{"NewReader"}, true}
		}
		header[k] = v
	}
	T.readable = true
	return T, header, nil
}

//Next returns the next table row. At the end of the table it returns
//io.EOF, which is not an actual error.
func (T *TableR) Next() (r, p, q float64, err error) {
	if !T.readable {
		return 0, 0, 0, Error{TableUnIniRead, T.filename, []string{"Next"}, true}
	}
	line, err := T.h.ReadString('\n')
	if err == io.EOF && line == "" {
		return 0, 0, 0, io.EOF
	}
	if err != nil && err != io.EOF {
		return 0, 0, 0, Error{err.Error(), T.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, Error{WrongFormat + ": " + line, T.filename, []string{"Next"}, true}
	}
	var vals [3]float64
	for i, v := range fields {
		vals[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, 0, Error{WrongFormat + ": " + line, T.filename, []string{"Next"}, true}
		}
	}
	return vals[0], vals[1], vals[2], nil
}

//Close closes the reader. It can not be used after this call.
func (T *TableR) Close() {
	if T == nil {
		return
	}
	if T.z != nil {
		T.z.Close()
	}
	if T.f != nil {
		T.f.Close()
	}
	T.readable = false
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(dirac.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for wavefunction table errors. It
//fulfills dirac.Error.
type Error struct {
	message  string
	filename string //the table file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("table file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing table was associated.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TableUnIniRead  = "Table object uninitialized to read"
	TableUnIniWrite = "Table object uninitialized to write"
	UnableToOpen    = "Unable to open file"
	WrongFormat     = "Wrong format in the table file or row"
	NilSolution     = "Given nil solution"
)
