/*
 * doc.go, part of godirac.
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

/*Package table writes and reads radial wavefunction tables as compressed
text files.

A table file is a stream of lines "r P Q", one per evaluated radius, with
every number printed so that it survives the round trip to text exactly.
Before the data come optional header lines of the form key=value, closed
by a line containing only "**". The whole stream is compressed; the
compressor is chosen from the file name: ".zst" files use z-standard
(through the klauspost implementation, which is considerably faster than
a pure-text format deserves but costs nothing to use), ".gz" files use
gzip, anything else raw flate. The reader makes the same choice, so a
file written by this package is read back by giving the same name.

Tables exist so that a computed solution can be handed to plotting or
fitting tools outside this library without recomputing it; they are not a
persistence layer for the library itself, which recomputes everything
from (Z, n, kappa) on demand.
*/
package table
