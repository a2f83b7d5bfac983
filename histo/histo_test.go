package histo

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestAddData(Te *testing.T) {
	D := NewData([]float64{0, 1, 2, 3}, nil)
	D.AddData(0.5, 1.0, 1.5, 2.999)
	h := D.View()
	if h[0] != 1 || h[1] != 2 || h[2] != 1 {
		Te.Errorf("wrong counts: %v", h)
	}
	//a value on the last divider belongs to the last bin
	D.AddData(3.0)
	if h[2] != 2 {
		Te.Errorf("value equal to the last divider should count in the last bin: %v", h)
	}
	//out-of-range values are omitted, not an error
	D.AddData(-1, 3.0001, 44)
	if D.Sum() != 5 || D.Total() != 5 {
		Te.Errorf("out-of-range values should not be counted: sum %v, total %d", D.Sum(), D.Total())
	}
}

func TestReHistoKeepsInput(Te *testing.T) {
	raw := []float64{5, 1, 3, 2, 4}
	D := NewData([]float64{0, 2, 4, 6}, raw)
	if raw[0] != 5 || raw[4] != 4 {
		Te.Errorf("binning should not reorder the caller's data: %v", raw)
	}
	if D.Total() != 5 {
		Te.Errorf("expected 5 values binned, got %d", D.Total())
	}
	if h := D.View(); h[0] != 1 || h[1] != 2 || h[2] != 2 {
		Te.Errorf("wrong counts: %v", h)
	}
}

func TestBins(Te *testing.T) {
	D := NewData([]float64{1, 2, 3}, []float64{1.0, 1.5, 2.0, 2.5})
	bins := D.Bins()
	if len(bins) != 2 {
		Te.Fatalf("expected 2 bins, got %d", len(bins))
	}
	if bins[0].Lo != 1 || bins[0].Hi != 2 || bins[0].Count != 2 {
		Te.Errorf("wrong first bin: %+v", bins[0])
	}
	if bins[1].Lo != 2 || bins[1].Hi != 3 || bins[1].Count != 2 {
		Te.Errorf("wrong second bin: %+v", bins[1])
	}
}

//a value exactly on the last divider must land in the closed last bin,
//also when it arrives through binning raw data (not only through AddData).
func TestReHistoClosedLastBin(Te *testing.T) {
	D := NewData([]float64{1, 2, 3}, []float64{1, 1.5, 3})
	if h := D.View(); h[0] != 2 || h[1] != 1 {
		Te.Errorf("wrong counts: %v", h)
	}
	if D.Total() != 3 {
		Te.Errorf("expected 3 values binned, got %d", D.Total())
	}
	//same, with values beyond the last divider mixed in
	D.ReHisto([]float64{0.5, 1, 2.5, 3, 3, 3.5})
	if h := D.View(); h[0] != 1 || h[1] != 3 {
		Te.Errorf("wrong counts with out-of-range values: %v", h)
	}
	if D.Total() != 4 {
		Te.Errorf("expected 4 values binned, got %d", D.Total())
	}
}

func TestNormalize(Te *testing.T) {
	D := NewData([]float64{0, 1, 2}, []float64{0.5, 0.6, 1.5, 1.6})
	D.Normalize()
	if !D.Normalized() || D.Sum() != 1 {
		Te.Errorf("normalized counts should sum to 1, got %v", D.Sum())
	}
	D.UnNormalize()
	if D.Sum() != 4 {
		Te.Errorf("un-normalized counts should sum to 4, got %v", D.Sum())
	}
}

func TestAddSub(Te *testing.T) {
	a := NewData([]float64{0, 1, 2}, []float64{0.5, 1.5})
	b := NewData([]float64{0, 1, 2}, []float64{0.5, 0.6})
	sum := NewData([]float64{0, 1, 2}, nil)
	sum.Add(a, b)
	if h := sum.View(); h[0] != 3 || h[1] != 1 {
		Te.Errorf("wrong addition: %v", h)
	}
	diff := NewData([]float64{0, 1, 2}, nil)
	diff.Sub(b, a, true)
	if h := diff.View(); h[0] != 1 || h[1] != 1 {
		Te.Errorf("wrong absolute subtraction: %v", h)
	}
}

func TestHistoIO(Te *testing.T) {
	fmt.Println("Histogram JSON output test!")
	M := NewMatrix(3, 3, []float64{0, 1, 2, 3, 4, 8})
	M.Fill()
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	M.NewHisto(0, 1, nil, rawdata)
	v := M.View(0, 1)
	fmt.Println(v.String())
	j, err := json.Marshal(M)
	if err != nil {
		Te.Error(err)
	}
	M2 := new(Matrix)
	if err := json.Unmarshal(j, M2); err != nil {
		Te.Error(err)
	}
	r, c := M2.Dims()
	if r != 3 || c != 3 {
		Te.Errorf("wrong dimensions after roundtrip: %d %d", r, c)
	}
	if M2.View(0, 1).Total() != v.Total() {
		Te.Errorf("totals don't survive the roundtrip: %d vs %d", M2.View(0, 1).Total(), v.Total())
	}
}
