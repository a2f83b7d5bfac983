package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element: %v", A.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := A.VecView(1)
	if v.At(0, 0) != 4 {
		Te.Errorf("wrong view: %v", v.At(0, 0))
	}
	v.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("changes in the view should be reflected in the matrix")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	B := Zeros(2)
	B.SomeVecs(A, []int{0, 2})
	if B.At(1, 0) != 7 {
		Te.Errorf("wrong selection: %v", B.At(1, 0))
	}
}

func TestVecOps(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	if d := x.Dot(y); d != 0 {
		Te.Errorf("expected orthogonal vectors, dot %v", d)
	}
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v %v %v", z.At(0, 0), z.At(0, 1), z.At(0, 2))
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if n := v.Norm(); n != 5.0 {
		Te.Errorf("expected norm 5, got %v", n)
	}
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm()-1) > 1e-12 {
		Te.Errorf("unit vector norm should be 1, got %v", u.Norm())
	}
}

func TestSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	vec, _ := NewMatrix([]float64{1, 1, 1})
	R := Zeros(2)
	R.SubVec(A, vec)
	if R.At(0, 0) != 0 || R.At(1, 0) != 1 {
		Te.Errorf("wrong subtraction: %v %v", R.At(0, 0), R.At(1, 0))
	}
	R.AddVec(R, vec)
	if R.At(1, 1) != 2 {
		Te.Errorf("wrong addition: %v", R.At(1, 1))
	}
}
