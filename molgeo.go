/*
 * molgeo.go, part of molgeo.
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
	"fmt"
	"sort"
	"strings"

	v3 "github.com/rmera/molgeo/v3"
)

/**Note: Several functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong in them (nil object, out of
 * bounds access) the program is way-most-likely wrong and should crash.**/

//Atom contains the data for one atom, except for the coordinates, which go
//in a v3.Matrix, one row per atom, in the same order as the AtomSet.
type Atom struct {
	Name   string  //PDB-style name, if any. May be empty.
	ID     int     //The atom's index in the input, starting from 1.
	Symbol string  //Chemical element symbol.
	Mass   float64 //In Daltons.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	at := new(Atom)
	at.Name = A.Name
	at.ID = A.ID
	at.Symbol = A.Symbol
	at.Mass = A.Mass
	return at
}

// Atomer is the basic interface for an ordered set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the set. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the massess of all atoms
	Masses() ([]float64, error)
}

//AtomSet is an ordered sequence of atoms. It holds everything about a
//molecule which is not expected to change in time, i.e. everything except for
//the coordinates.
type AtomSet struct {
	Atoms []*Atom
}

// NewAtomSet makes an AtomSet with the atoms ats and returns it.
// Atoms with no mass assigned get it from the element table, when the symbol
// is known. It returns an error if ats is nil.
func NewAtomSet(ats []*Atom) (*AtomSet, error) {
	if ats == nil {
		return nil, CError{"nil atom slice given", []string{"NewAtomSet"}}
	}
	for _, at := range ats {
		if at.Mass == 0 {
			at.Mass = symbolMass[at.Symbol] //stays 0 for unknown elements
		}
	}
	set := new(AtomSet)
	set.Atoms = ats
	return set, nil
}

// FromSymbols builds an AtomSet from a list of element symbols, in order.
// IDs are assigned sequentially from 1.
func FromSymbols(symbols []string) (*AtomSet, error) {
	if len(symbols) == 0 {
		return nil, CError{"empty symbol list given", []string{"FromSymbols"}}
	}
	ats := make([]*Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &Atom{Symbol: s, ID: i + 1}
	}
	set, err := NewAtomSet(ats)
	if err != nil {
		return nil, errDecorate(err, "FromSymbols")
	}
	return set, nil
}

//Atom returns the Atom corresponding to the index i of the Atom slice in the
//AtomSet. Panics if out of range.
func (S *AtomSet) Atom(i int) *Atom {
	if i >= S.Len() {
		panic(ErrAtomOutOfRange)
	}
	return S.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the set to at. Panics if out of range.
func (S *AtomSet) SetAtom(i int, at *Atom) {
	if i >= S.Len() {
		panic(ErrAtomOutOfRange)
	}
	S.Atoms[i] = at
}

//Len returns the number of atoms in the set.
func (S *AtomSet) Len() int {
	return len(S.Atoms)
}

//Copy returns a deep copy of the AtomSet.
func (S *AtomSet) Copy() *AtomSet {
	set := new(AtomSet)
	set.Atoms = make([]*Atom, S.Len())
	for key, val := range S.Atoms {
		set.Atoms[key] = val.Copy()
	}
	return set
}

//AddAtom returns a copy of the set with the atom at appended at the end.
func (S *AtomSet) AddAtom(at *Atom) *AtomSet {
	set := S.Copy()
	set.Atoms = append(set.Atoms, at)
	return set
}

//SomeAtoms, given a list of ints, returns an AtomSet with the atoms at the
//corresponding positions in the original set. Changes to these atoms affect
//the original set.
func (S *AtomSet) SomeAtoms(atomlist []int) (*AtomSet, error) {
	var ret []*Atom
	lenatoms := S.Len()
	for k, j := range atomlist {
		if j > lenatoms-1 {
			return nil, CError{fmt.Sprintf("atom requested (position %d, value %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ret = append(ret, S.Atoms[j])
	}
	return &AtomSet{Atoms: ret}, nil
}

//Masses returns a slice with the masses of all atoms, and an error if any
//of them has not been assigned.
func (S *AtomSet) Masses() ([]float64, error) {
	mass := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.Mass == 0 {
			return nil, CError{fmt.Sprintf("not all the masses have been obtained: %d %v", i, at), []string{"Masses"}}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}

// Formula returns the chemical formula of the set in Hill convention:
// carbon first, hydrogen second, every other element in alphabetical order.
// If no carbon is present, all elements go in alphabetical order.
// A count of 1 is omitted, as in "H2O".
func (S *AtomSet) Formula() string {
	counts := map[string]int{}
	for _, at := range S.Atoms {
		counts[at.Symbol]++
	}
	elements := make([]string, 0, len(counts))
	for s := range counts {
		if s != "C" && s != "H" {
			elements = append(elements, s)
		}
	}
	sort.Strings(elements)
	if counts["C"] > 0 {
		if counts["H"] > 0 {
			elements = append([]string{"C", "H"}, elements...)
		} else {
			elements = append([]string{"C"}, elements...)
		}
	} else if counts["H"] > 0 {
		//no carbon: H sorts alphabetically with the rest
		elements = append(elements, "H")
		sort.Strings(elements)
	}
	var b strings.Builder
	for _, s := range elements {
		b.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&b, "%d", counts[s])
		}
	}
	return b.String()
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that
//is expected to change between states, the coordinates, is stored separately
//from the atomic data, one v3.Matrix per frame.
type Molecule struct {
	*AtomSet
	Coords []*v3.Matrix
}

// NewMolecule makes a molecule from an Atomer and a slice of coordinate
// frames, and returns it. It returns an error if either argument is nil or
// if any frame doesn't match the number of atoms.
func NewMolecule(ats Atomer, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil {
		return nil, CError{"nil atom reference given", []string{"NewMolecule"}}
	}
	if coords == nil {
		return nil, CError{"nil coordinate slice given", []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	if set, ok := ats.(*AtomSet); ok {
		mol.AtomSet = set
	} else {
		mol.AtomSet = new(AtomSet)
		mol.Atoms = make([]*Atom, ats.Len())
		for i := 0; i < ats.Len(); i++ {
			mol.Atoms[i] = ats.Atom(i)
		}
	}
	mol.Coords = coords
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the coordinates
//don't match the number of atoms in some frame.
func (M *Molecule) Corrupted() error {
	for i := range M.Coords {
		if M.Len() != M.Coords[i].NVecs() {
			return CError{fmt.Sprintf("inconsistent coordinates/atoms in frame %d: atoms %d, coords: %d", i, M.Len(), M.Coords[i].NVecs()), []string{"Corrupted"}}
		}
	}
	return nil
}

//Coord returns a view of the position of the atom atom in the frame frame.
//Panics if either is out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame >= len(M.Coords) {
		panic(fmt.Sprintf("frame requested (%d) out of range", frame))
	}
	if atom >= M.Coords[frame].NVecs() {
		panic(ErrAtomOutOfRange)
	}
	return M.Coords[frame].VecView(atom)
}

//LenFrames returns the number of frames in the molecule.
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

//Copy returns a deep copy of the molecule, including coordinates.
func (M *Molecule) Copy() *Molecule {
	if err := M.Corrupted(); err != nil {
		panic(err.Error()) //copying a corrupted molecule means the program is wrong
	}
	mol := new(Molecule)
	mol.AtomSet = M.AtomSet.Copy()
	mol.Coords = make([]*v3.Matrix, 0, len(M.Coords))
	for _, val := range M.Coords {
		frame := v3.Zeros(val.NVecs())
		frame.Copy(val)
		mol.Coords = append(mol.Coords, frame)
	}
	return mol
}
