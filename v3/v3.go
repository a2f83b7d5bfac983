/*
 * v3.go, part of molgeo.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, stored as an Nx3 gonum Dense
//matrix. Each row is the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense into a v3.Matrix. It panics if
//the Dense doesn't have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l == 0 {
		return nil, Error{"empty data slice given", []string{"NewMatrix"}}
	}
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors. It panics if vecs
//is smaller than 1, as the underlying gonum matrix cannot be empty.
func Zeros(vecs int) *Matrix {
	if vecs < 1 {
		panic(ErrShape)
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dense.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i and spanning r rows. Changes in
//the view are reflected in F and vice-versa. Notice that very little memory
//allocation happens, only a couple of ints and pointers.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//SomeVecs puts in the receiver copies of the vectors of A with the indexes
//given in clist. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar := A.NVecs()
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrIndexOutOfRange)
		}
		F.Dense.SetRow(key, A.Dense.RawRowView(val))
	}
}

//Row puts the ith vector of the matrix in dst, allocating a new slice if dst
//is nil, and returns it.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, F.Dense)
}

//Sub subtracts B from A, putting the result in the receiver.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add adds A and B, putting the result in the receiver.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Scale scales A by v, putting the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Copy copies A into the receiver.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//SubVec subtracts the row vector vec from each vector of A, putting the
//result in the receiver. Panics if vec is not a single vector.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	row := vec.Dense.RawRowView(0)
	ar := A.NVecs()
	for i := 0; i < ar; i++ {
		a := A.Dense.RawRowView(i)
		F.Dense.SetRow(i, []float64{a[0] - row[0], a[1] - row[1], a[2] - row[2]})
	}
}

//AddVec adds the row vector vec to each vector of A, putting the result in
//the receiver. Panics if vec is not a single vector.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	row := vec.Dense.RawRowView(0)
	ar := A.NVecs()
	for i := 0; i < ar; i++ {
		a := A.Dense.RawRowView(i)
		F.Dense.SetRow(i, []float64{a[0] + row[0], a[1] + row[1], a[2] + row[2]})
	}
}

//Dot returns the dot product between the receiver and B, both of which must
//be single vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrVecDotProduct)
	}
	a := F.Dense.RawRowView(0)
	b := B.Dense.RawRowView(0)
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//Cross puts the cross product of a and b in the receiver. All three must be
//single vectors.
func (F *Matrix) Cross(a, b *Matrix) {
	if F.NVecs() != 1 || a.NVecs() != 1 || b.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	av := a.Dense.RawRowView(0)
	bv := b.Dense.RawRowView(0)
	F.Dense.SetRow(0, []float64{
		av[1]*bv[2] - av[2]*bv[1],
		av[2]*bv[0] - av[0]*bv[2],
		av[0]*bv[1] - av[1]*bv[0],
	})
}

//Norm returns the Frobenius norm of the receiver. For a single vector this
//is its euclidean length.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Unit puts in the receiver the unit vector in the direction of A. Both must
//be single vectors.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	F.Scale(1.0/n, A)
}

//Errors

//Error is the concrete error type of the v3 package. It satisfies the
//library-wide Error interface, redeclared by the packages using it to avoid
//a circular import.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error
//interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("molgeo/v3: a Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("molgeo/v3: invalid matrix for cross product")
	ErrVecDotProduct   = PanicMsg("molgeo/v3: dot product requires two single vectors")
	ErrShape           = PanicMsg("molgeo/v3: dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("molgeo/v3: index out of range")
)
