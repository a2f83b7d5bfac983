/*
 * dist.go, part of molgeo.
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

/*Package dist computes pairwise interatomic distance matrices and their
frequency distributions. All the functions here are pure: the coordinates
given are never modified, and recomputing on the same input yields
bit-identical results. Every error returned reports invalid input; there is
nothing to retry and no partial results are ever returned.*/
package dist

import (
	"fmt"
	"math"
	"sort"

	molgeo "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/histo"
	v3 "github.com/rmera/molgeo/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//PairwiseMatrix returns the NxN matrix of euclidean distances between the N
//points in coords. The matrix is symmetric, non-negative and has a zero
//diagonal, which the SymDense representation guarantees structurally (only
//the upper triangle is stored). The computation is exact, O(N²), with no
//approximation. It returns an error if coords is nil or empty, or if any
//coordinate is NaN or infinite.
func PairwiseMatrix(coords *v3.Matrix) (*mat.SymDense, error) {
	if coords == nil || coords.Dense == nil {
		return nil, Error{"nil coordinates given", []string{"PairwiseMatrix"}}
	}
	n := coords.NVecs()
	if n < 1 {
		return nil, Error{"empty coordinate set given", []string{"PairwiseMatrix"}}
	}
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			if v := coords.At(i, k); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, Error{fmt.Sprintf("atom %d lacks a well-defined position: %v", i, v), []string{"PairwiseMatrix"}}
			}
		}
	}
	D := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := coords.At(i, 0) - coords.At(j, 0)
			dy := coords.At(i, 1) - coords.At(j, 1)
			dz := coords.At(i, 2) - coords.At(j, 2)
			D.SetSym(i, j, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
	}
	return D, nil
}

//Flatten returns all N² entries of the distance matrix D as a row-major
//slice, self-distances (the zero diagonal) included. This is the shape the
//histogram functions expect; the zeros are excluded in practice by binning
//with a range minimum above 0.
func Flatten(D *mat.SymDense) []float64 {
	n := D.SymmetricDim()
	ret := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ret = append(ret, D.At(i, j))
		}
	}
	return ret
}

//Dividers returns bins+1 equally spaced dividers partitioning [min,max],
//suitable for building histograms. It returns an error if bins is not
//positive or if min is not strictly smaller than max.
func Dividers(bins int, min, max float64) ([]float64, error) {
	if bins <= 0 {
		return nil, Error{fmt.Sprintf("bin count must be positive, got %d", bins), []string{"Dividers"}}
	}
	if min >= max {
		return nil, Error{fmt.Sprintf("degenerate value range [%v,%v]", min, max), []string{"Dividers"}}
	}
	return floats.Span(make([]float64, bins+1), min, max), nil
}

//Histogram bins values into bins equal-width bins partitioning [min,max]
//and returns the result. Each bin is half-open, [lo,hi), except the final
//one, which is closed. Values outside [min,max] are excluded from all bin
//counts; that is not an error. The values slice is not modified. It returns
//an error if values is empty, bins is not positive, or min >= max.
func Histogram(values []float64, bins int, min, max float64) (*histo.Data, error) {
	if len(values) == 0 {
		return nil, Error{"empty value sequence given", []string{"Histogram"}}
	}
	dividers, err := Dividers(bins, min, max)
	if err != nil {
		return nil, errDecorate(err, "Histogram")
	}
	return histo.NewData(dividers, values), nil
}

//PairTypeHistograms bins the pairwise distances of a molecule into one
//histogram per pair of element types, in the manner of a per-species radial
//distribution function. It returns a symmetric histo.Matrix whose rows and
//columns follow the returned (alphabetically sorted) element type slice.
//Each unordered atom pair contributes once to the (i,j) and (j,i) cells if
//the types differ, and once to the diagonal cell if they match.
//Self-distances are never counted.
func PairTypeHistograms(mol molgeo.Atomer, coords *v3.Matrix, bins int, min, max float64) (*histo.Matrix, []string, error) {
	if mol == nil || coords == nil {
		return nil, nil, Error{"nil molecule or coordinates given", []string{"PairTypeHistograms"}}
	}
	if mol.Len() != coords.NVecs() {
		return nil, nil, Error{fmt.Sprintf("inconsistent atoms (%d) and coordinates (%d)", mol.Len(), coords.NVecs()), []string{"PairTypeHistograms"}}
	}
	dividers, err := Dividers(bins, min, max)
	if err != nil {
		return nil, nil, errDecorate(err, "PairTypeHistograms")
	}
	D, err := PairwiseMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "PairTypeHistograms")
	}
	seen := map[string]int{}
	types := []string{}
	for i := 0; i < mol.Len(); i++ {
		s := mol.Atom(i).Symbol
		if _, ok := seen[s]; !ok {
			seen[s] = 0
			types = append(types, s)
		}
	}
	sort.Strings(types)
	for i, t := range types {
		seen[t] = i
	}
	M := histo.NewMatrix(len(types), len(types), dividers)
	M.Fill()
	for i := 0; i < mol.Len(); i++ {
		ti := seen[mol.Atom(i).Symbol]
		for j := i + 1; j < mol.Len(); j++ {
			tj := seen[mol.Atom(j).Symbol]
			M.AddData(ti, tj, D.At(i, j))
			if ti != tj {
				M.AddData(tj, ti, D.At(i, j))
			}
		}
	}
	return M, types, nil
}

//CloseContacts returns the pairs of atom indexes of mol whose distance is
//smaller than scale times the sum of their van der Waals radii. With a scale
//around 0.6 the pairs returned are steric clashes; at 1.0 most bonded pairs
//qualify. Pairs are returned with the lower index first, in row-major order.
//It returns an error if scale is not positive, if the atoms and coordinates
//are inconsistent, or if some element lacks a tabulated radius.
func CloseContacts(mol molgeo.Atomer, coords *v3.Matrix, scale float64) ([][2]int, error) {
	if mol == nil || coords == nil {
		return nil, Error{"nil molecule or coordinates given", []string{"CloseContacts"}}
	}
	if scale <= 0 {
		return nil, Error{fmt.Sprintf("scale must be positive, got %v", scale), []string{"CloseContacts"}}
	}
	if mol.Len() != coords.NVecs() {
		return nil, Error{fmt.Sprintf("inconsistent atoms (%d) and coordinates (%d)", mol.Len(), coords.NVecs()), []string{"CloseContacts"}}
	}
	radii := make([]float64, mol.Len())
	for i := range radii {
		s := mol.Atom(i).Symbol
		r, ok := molgeo.SymbolVdW(s)
		if !ok {
			return nil, Error{fmt.Sprintf("no van der Waals radius tabulated for element %s", s), []string{"CloseContacts"}}
		}
		radii[i] = r
	}
	D, err := PairwiseMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "CloseContacts")
	}
	var ret [][2]int
	for i := 0; i < mol.Len(); i++ {
		for j := i + 1; j < mol.Len(); j++ {
			if D.At(i, j) < scale*(radii[i]+radii[j]) {
				ret = append(ret, [2]int{i, j})
			}
		}
	}
	return ret, nil
}

//Errors

//Error is the concrete error type of the dist package. Everything it
//reports is invalid input.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//local restatement of the library-wide Error interface.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}
