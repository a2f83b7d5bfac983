//Package histo provides binned frequency distributions over a numeric range.
//Histograms are built from a slice of dividers: a histogram with n bins has
//n+1 dividers, and the bin i counts the values v for which
//dividers[i] <= v < dividers[i+1]. The last bin also includes values equal
//to the last divider. Values outside the range of the dividers are omitted,
//not an error.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//A Bin is one bin of a histogram: the half-open interval [Lo,Hi) and the
//count of values that fell in it. For the last bin of a histogram the
//interval is closed.
type Bin struct {
	Lo    float64
	Hi    float64
	Count float64
}

type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//If an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. It panics if less than 2 dividers are given, or if they are
//not strictly increasing. The rawdata slice is not modified.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("molgeo/histo.NewData: at least 2 dividers needed")
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			panic("molgeo/histo.NewData: dividers must be strictly increasing")
		}
	}
	d := new(Data)
	//We copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//ReHisto replaces the counts of the histogram with those obtained from
//binning rawdata with the current dividers. Values outside the range of the
//dividers are omitted. Unlike gonum's stat.Histogram, a value equal to the
//last divider counts towards the last bin. rawdata is left untouched.
func (D *Data) ReHisto(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata) //stat.Histogram wants sorted data, and we promised not to reorder the caller's
	sort.Float64s(data)
	//stat.Histogram just panics on values that are off limits, including values
	//equal to the last divider, so we remove them all here before the call. The
	//values on the last divider belong to the closed last bin and are counted
	//back by hand.
	max := D.dividers[len(D.dividers)-1]
	maxi := sort.SearchFloat64s(data, max)
	over := sort.Search(len(data), func(i int) bool { return data[i] > max })
	atmax := over - maxi
	mini := sort.SearchFloat64s(data, D.dividers[0])
	if maxi < len(data) {
		data = data[:maxi]
	}
	if mini != 0 {
		data = data[mini:]
	}
	D.total = len(data) + atmax
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
	D.histo[len(D.histo)-1] += float64(atmax)
}

//ID returns the ID of the histogram.
func (D *Data) ID() int {
	return D.id
}

//Len returns the number of bins in the histogram.
func (D *Data) Len() int {
	return len(D.histo)
}

//Total returns the number of data points binned so far. Out-of-range
//values never enter the total.
func (D *Data) Total() int {
	return D.total
}

//AddData adds the given data point(s) to the histogram. Points outside the
//range of the dividers are omitted. A point equal to the last divider goes
//to the last bin.
func (M *Data) AddData(point ...float64) {
	var norma bool
	if M.normalized {
		norma = true
		M.UnNormalize()
	}
	last := len(M.dividers) - 1
	for _, v := range point {
		if v == M.dividers[last] {
			M.histo[last-1]++ //the final bin is closed
			M.total++
			continue
		}
		for j, w := range M.dividers {
			if j == last {
				break //v is beyond the last divider
			}
			if w <= v && v < M.dividers[j+1] {
				M.histo[j]++
				M.total++
				break
			}
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		M.Normalize()
	}
}

//Bin returns the ith bin of the histogram as a (lower, upper, count) triple.
//Panics if out of range.
func (D *Data) Bin(i int) Bin {
	if i >= len(D.histo) {
		panic("molgeo/histo.Data.Bin: bin out of range")
	}
	return Bin{Lo: D.dividers[i], Hi: D.dividers[i+1], Count: D.histo[i]}
}

//Bins returns the ordered sequence of bins of the histogram. The bins are
//contiguous and non-overlapping, and the sum of their counts equals the
//number of in-range values binned (unless the histogram is normalized).
func (D *Data) Bins() []Bin {
	ret := make([]Bin, len(D.histo))
	for i := range D.histo {
		ret[i] = D.Bin(i)
	}
	return ret
}

//Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram, so its counts sum to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram, restoring the original counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true.
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//CopyDividers copies the dividers of the histogram, into the first element
//of dest, if given and large enough, or into a newly allocated slice.
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the counts of the histogram, into the first element of dest,
//if given and large enough, or into a newly allocated slice.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the counts of the histogram. The slice is not a copy, changes
//to it are reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of the counts of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Add adds the histograms a and b putting the result in the receiver.
//Panics if the dividers of a and b don't match.
func (D *Data) Add(a, b *Data) {
	D.dividers = a.CopyDividers(D.dividers)
	if len(a.dividers) != len(b.dividers) {
		panic("molgeo/histo.Data.Add: ill-formed histograms for addition")
	}
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	for i, v := range a.dividers {
		if v != b.dividers[i] {
			panic("molgeo/histo.Data.Add: dividers must match in added histograms")
		}
		if i == len(a.dividers)-1 {
			break //histo has 1 less element than dividers, so we skip the last one.
		}
		D.histo[i] = a.histo[i] + b.histo[i]
	}
	D.total = a.total + b.total
}

//Sub subtracts the histogram b from a putting the result in the receiver.
//If abs is given and true (only the first element is considered) the
//absolute value of each difference is taken.
func (D *Data) Sub(a, b *Data, abs ...bool) {
	f := func(a float64) float64 { return a }
	if len(abs) > 0 && abs[0] {
		f = math.Abs
	}
	D.dividers = a.CopyDividers(D.dividers)
	if len(a.dividers) != len(b.dividers) {
		panic("molgeo/histo.Data.Sub: ill-formed histograms for subtraction")
	}
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	for i, v := range a.dividers {
		if v != b.dividers[i] {
			panic("molgeo/histo.Data.Sub: dividers must match in subtracted histograms")
		}
		if i == len(a.dividers)-1 {
			break
		}
		D.histo[i] = f(a.histo[i] - b.histo[i])
	}
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//getCopySlice returns the first element of dest, resliced to N, if given and
//large enough, or a newly allocated slice of N elements.
func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
