/*
 * files.go, part of molgeo.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * molgeo is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package molgeo

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/molgeo/v3"
)

//openDecompressed opens the file xyzname and, based on its extension, wraps
//it in the corresponding decompressor. Plain files are returned as they are.
func openDecompressed(xyzname string) (io.Reader, func() error, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(xyzname, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, CError{err.Error(), []string{"zstd.NewReader", "openDecompressed"}}
		}
		closer := func() error {
			z.Close()
			return f.Close()
		}
		return z, closer, nil
	case strings.HasSuffix(xyzname, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, CError{err.Error(), []string{"gzip.NewReader", "openDecompressed"}}
		}
		closer := func() error {
			g.Close()
			return f.Close()
		}
		return g, closer, nil
	}
	return f, f.Close, nil
}

// XYZRead reads an xyz file, including multi-frame ones, and returns a
// Molecule with one coordinate frame per geometry in the file, and an error.
// Files with the .gz or .zst extensions are decompressed on the fly.
// Masses are filled from the element table; elements not in the table get
// mass 0.
func XYZRead(xyzname string) (*Molecule, error) {
	r, closer, err := openDecompressed(xyzname)
	if err != nil {
		return nil, err
	}
	defer closer()
	xyz := bufio.NewReader(r)
	var ats []*Atom
	coords := make([]*v3.Matrix, 0, 1)
	for frame := 0; ; frame++ {
		atoms, frameats, err := xyzReadFrame(xyz, xyzname)
		if err != nil {
			if err == io.EOF {
				if frame > 0 {
					break //no more frames, and at least one was read
				}
				return nil, CError{fmt.Sprintf("empty XYZ file %s", xyzname), []string{"XYZRead"}}
			}
			return nil, errDecorate(err, fmt.Sprintf("XYZRead: frame %d", frame))
		}
		if frame == 0 {
			ats = frameats
		} else if len(frameats) != len(ats) {
			return nil, CError{fmt.Sprintf("frame %d has %d atoms, first frame has %d", frame, len(frameats), len(ats)), []string{"XYZRead"}}
		}
		coords = append(coords, atoms)
	}
	set, err := NewAtomSet(ats)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	mol, err := NewMolecule(set, coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//xyzReadFrame reads one geometry from an XYZ stream. It returns io.EOF,
//untouched, when the stream ends cleanly before the frame starts.
func xyzReadFrame(xyz *bufio.Reader, xyzname string) (*v3.Matrix, []*Atom, error) {
	line, err := xyz.ReadString('\n')
	for err == nil && strings.TrimSpace(line) == "" { //blank lines between frames, or a trailing one
		line, err = xyz.ReadString('\n')
	}
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return nil, nil, io.EOF
		}
		return nil, nil, CError{fmt.Sprintf("ill-formatted XYZ file %s", xyzname), []string{"xyzReadFrame"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, nil, CError{fmt.Sprintf("ill-formatted XYZ file %s: bad atom count %q", xyzname, strings.TrimSpace(line)), []string{"xyzReadFrame"}}
	}
	if _, err := xyz.ReadString('\n'); err != nil { //the comment line
		return nil, nil, CError{fmt.Sprintf("ill-formatted XYZ file %s: truncated frame", xyzname), []string{"xyzReadFrame"}}
	}
	ats := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err := xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, nil, CError{fmt.Sprintf("line %d in file %s missing", i, xyzname), []string{"xyzReadFrame"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, CError{fmt.Sprintf("line %d in file %s ill-formed", i, xyzname), []string{"xyzReadFrame"}}
		}
		ats[i] = new(Atom)
		ats[i].Symbol = fields[0]
		ats[i].ID = i + 1
		ats[i].Mass = symbolMass[ats[i].Symbol]
		errs := make([]error, 3)
		coords[i*3], errs[0] = strconv.ParseFloat(fields[1], 64)
		coords[i*3+1], errs[1] = strconv.ParseFloat(fields[2], 64)
		coords[i*3+2], errs[2] = strconv.ParseFloat(fields[3], 64)
		for _, e := range errs {
			if e != nil {
				return nil, nil, CError{fmt.Sprintf("malformed coordinate in line %d of file %s: %v", i, xyzname, e), []string{"xyzReadFrame"}}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "xyzReadFrame")
	}
	return mcoords, ats, nil
}

// XYZWrite writes the frame frame of the molecule mol in an XYZ file with
// name xyzname, which will be created for that. If the file exists it will
// be overwritten.
func XYZWrite(xyzname string, mol *Molecule, frame int) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	if frame >= mol.LenFrames() {
		return CError{fmt.Sprintf("frame %d requested, only %d available", frame, mol.LenFrames()), []string{"XYZWrite"}}
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZWrite"}}
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", mol.Len())
	fmt.Fprintf(out, "\n")
	towrite := mol.Coords[frame]
	c := make([]float64, 3)
	for i := range mol.Atoms {
		towrite.Row(c, i)
		_, err = fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f \n", mol.Atoms[i].Symbol, c[0], c[1], c[2])
		if err != nil {
			return CError{err.Error(), []string{"fmt.Fprintf", "XYZWrite"}}
		}
	}
	return nil
}
