package histo

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//A Matrix is a matrix of histograms. It is used for families of related
//distributions, such as one distance distribution per pair of element types
//in a molecule.
type Matrix struct {
	rows, cols int       //total
	d          []*Data   //row-major
	dividers   []float64 //if not nil, all histograms have the same dividers
}

//NewMatrix returns a new matrix of *Data with r rows and c columns
//and dividers dividers. Dividers can be nil, in which case, elements
//of the matrix will not be forced to have the same dividers.
func NewMatrix(r, c int, dividers []float64) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	ret.dividers = dividers
	return ret
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

//returns the index in the []*Data slice of a matrix given
//the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	M.Check(r, c, true)
	return M.cols*r + c
}

//Check checks if the given row and column indexes are within range.
//If pan is given and true, it panics if either is out of range,
//otherwise, it returns an error.
func (M *Matrix) Check(r, c int, pan ...bool) error {
	p := false
	var err error
	if len(pan) > 0 && pan[0] {
		p = true
	}
	if r >= M.rows {
		err = fmt.Errorf("molgeo/histo: row out of range")
	}
	if c >= M.cols {
		err = fmt.Errorf("molgeo/histo: column out of range")
	}
	if err != nil && p {
		panic(err.Error())
	}
	return err
}

//Fill fills the matrix with empty histograms.
//The matrix must have a non-nil dividers slice,
//which is used for all the histograms created.
func (M *Matrix) Fill() {
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			M.NewHisto(i, j, M.dividers, nil)
		}
	}
}

//NewHisto puts a new histogram in the r,c position in the matrix. Dividers
//can be nil, in which case, the matrix needs to have its own dividers. If
//there are no dividers at all, the function will panic. rawdata can also be
//nil, in which case, an empty histogram is put in the position.
func (M *Matrix) NewHisto(r, c int, dividers []float64, rawdata []float64, ID ...int) {
	if dividers == nil {
		if M.dividers != nil {
			dividers = M.dividers
		} else {
			panic("molgeo/histo.Matrix.NewHisto: dividers not given, and can't be taken from the matrix")
		}
	} else if M.dividers != nil && !floats.Equal(M.dividers, dividers) {
		//Maybe this should be returned as an error instead
		log.Printf("molgeo/histo.Matrix.NewHisto: dividers given but don't match the dividers of the matrix. The matrix's dividers will be used.")
		dividers = M.dividers
	}
	M.d[M.rc2i(r, c)] = NewData(dividers, rawdata, ID...)
}

//View returns a view of the histogram in the r,c position in the matrix.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

//AddData adds one or more data points to the histogram in the r,c position
//in the matrix.
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

//NormalizeAll normalizes all the histograms in the matrix.
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		v.Normalize()
	}
}

//UnNormalizeAll un-normalizes all the histograms in the matrix.
func (M *Matrix) UnNormalizeAll() {
	for _, v := range M.d {
		v.UnNormalize()
	}
}

//CopyDividers copies the dividers shared by the histograms of the matrix,
//or returns nil if the matrix doesn't force shared dividers.
func (M *Matrix) CopyDividers(dest ...[]float64) []float64 {
	if M.dividers == nil {
		return nil
	}
	d := getCopySlice(len(M.dividers), dest...)
	return floats.ScaleTo(d, 1, M.dividers)
}

//MatrixCombine combines 2 matrices element-wise using the function f, which
//should take the 2 histograms to be combined and one more where the result
//of the operation is stored.
func MatrixCombine(f func(a, b, dest *Data), a, b, dest *Matrix) {
	if a.rows != b.rows || a.cols != b.cols || a.rows != dest.rows || a.cols != dest.cols {
		panic("molgeo/histo.MatrixCombine: ill-formed matrices for combining")
	}
	//This should work if they are both nil
	if !(a.dividers == nil && b.dividers == nil) && !floats.Equal(a.dividers, b.dividers) {
		panic("molgeo/histo.MatrixCombine: matrices don't have the same dividers")
	}
	for i, v := range dest.d {
		f(a.d[i], b.d[i], v)
	}
}

//FromAll applies the f function to each element in the matrix, the results
//are returned as a [][]float64. Also returns an error upon failure, or nil.
func (M *Matrix) FromAll(f func(D *Data) (float64, error)) ([][]float64, error) {
	r := make([][]float64, M.rows)
	var err error
	for i := 0; i < M.rows; i++ {
		r[i] = make([]float64, M.cols)
		for j := 0; j < M.cols; j++ {
			r[i][j], err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return nil, fmt.Errorf("molgeo/histo.Matrix.FromAll: error at %d, %d: %v", i, j, err)
			}
		}
	}
	return r, nil
}

//ToAll applies the f function to each element in the matrix. Returns an
//error upon failure, or nil.
func (M *Matrix) ToAll(f func(D *Data) error) error {
	var err error
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return fmt.Errorf("molgeo/histo.Matrix.ToAll: error at %d, %d: %v", i, j, err)
			}
		}
	}
	return err
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rows     int       `json:"rows"`
		Cols     int       `json:"cols"`
		D        []*Data   `json:"data"`
		Dividers []float64 `json:"dividers"`
	}{
		Rows:     M.rows,
		Cols:     M.cols,
		D:        M.d,
		Dividers: M.dividers,
	})
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a struct {
		Rows     int       `json:"rows"`
		Cols     int       `json:"cols"`
		D        []*Data   `json:"data"`
		Dividers []float64 `json:"dividers"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	M.rows = a.Rows
	M.cols = a.Cols
	M.d = a.D
	M.dividers = a.Dividers
	return nil
}
