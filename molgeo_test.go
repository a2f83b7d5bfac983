/*
 * molgeo_test.go, part of molgeo.
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
 */

package molgeo

import (
	"fmt"
	"testing"

	v3 "github.com/rmera/molgeo/v3"
)

//TestXYZIO tests that XYZ files are opened and read correctly.
func TestXYZIO(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz")
	if err != nil {
		fmt.Println("There was an error!", err.Error())
		Te.Error(err)
		return
	}
	fmt.Println("XYZ read!")
	if mol.Len() != 6 {
		Te.Errorf("expected 6 atoms, got %d", mol.Len())
	}
	if mol.LenFrames() != 1 {
		Te.Errorf("expected 1 frame, got %d", mol.LenFrames())
	}
	if mol.Atom(0).Symbol != "C" || mol.Atom(1).Symbol != "O" {
		Te.Errorf("wrong atoms read: %v %v", mol.Atom(0), mol.Atom(1))
	}
	if mol.Atom(0).Mass != 12.01 {
		Te.Errorf("mass not assigned from the element table: %v", mol.Atom(0).Mass)
	}
	err = XYZWrite("test/sampleIO.xyz", mol, 0)
	if err != nil {
		Te.Error(err)
	}
	mol2, err := XYZRead("test/sampleIO.xyz")
	if err != nil {
		Te.Error(err)
		return
	}
	if mol2.Len() != mol.Len() {
		Te.Errorf("roundtrip lost atoms: %d vs %d", mol2.Len(), mol.Len())
	}
}

//compressed files should read the same as the plain one.
func TestXYZReadGz(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz.gz")
	if err != nil {
		Te.Fatal(err)
	}
	plain, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != plain.Len() || mol.LenFrames() != plain.LenFrames() {
		Te.Errorf("gzipped file read differently: %d atoms, %d frames", mol.Len(), mol.LenFrames())
	}
}

func TestXYZReadMissing(Te *testing.T) {
	_, err := XYZRead("test/does_not_exist.xyz")
	if err == nil {
		Te.Error("expected an error for a missing file")
	}
}

func TestFormula(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if f := mol.Formula(); f != "CH4O" {
		Te.Errorf("methanol formula: expected CH4O, got %s", f)
	}
	water, err := FromSymbols([]string{"O", "H", "H"})
	if err != nil {
		Te.Fatal(err)
	}
	if f := water.Formula(); f != "H2O" {
		Te.Errorf("water formula: expected H2O, got %s", f)
	}
	salt, err := FromSymbols([]string{"Na", "Cl"})
	if err != nil {
		Te.Fatal(err)
	}
	if f := salt.Formula(); f != "ClNa" {
		Te.Errorf("no-carbon formula should be alphabetical: expected ClNa, got %s", f)
	}
}

func TestAtomSet(Te *testing.T) {
	set, err := FromSymbols([]string{"C", "H", "H", "H", "H"})
	if err != nil {
		Te.Fatal(err)
	}
	if set.Len() != 5 {
		Te.Errorf("expected 5 atoms, got %d", set.Len())
	}
	masses, err := set.Masses()
	if err != nil {
		Te.Error(err)
	}
	if masses[0] != 12.01 || masses[1] != 1.0 {
		Te.Errorf("wrong masses: %v", masses)
	}
	some, err := set.SomeAtoms([]int{0, 2})
	if err != nil {
		Te.Error(err)
	}
	if some.Len() != 2 || some.Atom(1).Symbol != "H" {
		Te.Errorf("wrong selection: %v", some.Atoms)
	}
	_, err = set.SomeAtoms([]int{22})
	if err == nil {
		Te.Error("expected an error for an out-of-range selection")
	}
	cp := set.Copy()
	cp.Atom(0).Symbol = "N"
	if set.Atom(0).Symbol != "C" {
		Te.Error("Copy is not deep")
	}
}

func TestNewMolecule(Te *testing.T) {
	set, err := FromSymbols([]string{"O", "H"})
	if err != nil {
		Te.Fatal(err)
	}
	good, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if _, err := NewMolecule(set, []*v3.Matrix{good}); err != nil {
		Te.Error(err)
	}
	bad, _ := v3.NewMatrix([]float64{0, 0, 0})
	if _, err := NewMolecule(set, []*v3.Matrix{bad}); err == nil {
		Te.Error("expected an error for inconsistent atoms/coordinates")
	}
	if _, err := NewMolecule(nil, []*v3.Matrix{good}); err == nil {
		Te.Error("expected an error for a nil atom reference")
	}
}
