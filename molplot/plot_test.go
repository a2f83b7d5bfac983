package molplot

import (
	"os"
	"testing"

	"github.com/rmera/molgeo/dist"
	"github.com/rmera/molgeo/histo"
)

func TestDistanceHist(Te *testing.T) {
	values := []float64{0.9, 1.0, 1.4, 1.4, 1.9, 2.3, 2.3, 2.3, 2.8}
	h, err := dist.Histogram(values, 8, 0.5, 3.0)
	if err != nil {
		Te.Fatal(err)
	}
	err = DistanceHist(h, "Test distance histogram", "../test/histplot")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("../test/histplot.png"); err != nil {
		Te.Error("the plot file was not written")
	}
	if err := DistanceHist(nil, "nope", "../test/nope"); err == nil {
		Te.Error("expected an error for a nil histogram")
	}
}

func TestDistanceHistCompare(Te *testing.T) {
	a, err := dist.Histogram([]float64{0.9, 1.0, 1.4}, 5, 0.5, 2.0)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := dist.Histogram([]float64{1.1, 1.6, 1.6}, 5, 0.5, 2.0)
	if err != nil {
		Te.Fatal(err)
	}
	err = DistanceHistCompare([]*histo.Data{a, b}, []string{"C-H", "O-H"}, "Comparison", "../test/histplotcomp")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("../test/histplotcomp.png"); err != nil {
		Te.Error("the plot file was not written")
	}
	//mismatched labels
	if err := DistanceHistCompare([]*histo.Data{a, b}, []string{"only one"}, "t", "../test/nope"); err == nil {
		Te.Error("expected an error for a mismatched label slice")
	}
}
