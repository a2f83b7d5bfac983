// Package cfg reads and validates the TOML run configuration for the
// distance-analysis driver. The parameters mirror what one would pass
// literally in a script: an input structure, a bin count and a distance
// range for the histogram, and where to leave the outputs.
package cfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Defaults for the histogram parameters. A range maximum of 0 means
// "up to the largest distance found in the structure".
const (
	DefaultBins = 200
	DefaultRMin = 0.5
)

// Cfg is a structure where the analysis parameters are stored. It can be
// instanced through the New method, which fills defaults and validates.
type Cfg struct {
	FileIn  string `toml:"file_in"`
	FileOut string `toml:"file_out"`

	Title string `toml:"title"`

	Bins int     `toml:"bins"`
	RMin float64 `toml:"rmin"`
	RMax float64 `toml:"rmax"`

	PerElement bool `toml:"per_element"`
}

// New returns an instance of the Cfg structure. It opens and reads the
// configuration file given in argument, which must use the TOML format,
// fills in defaults for parameters left out, and validates the rest.
func New(path string) (Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return Cfg{}, err
	}
	defer f.Close()

	cfg := Cfg{Bins: DefaultBins, RMin: DefaultRMin}
	dec := toml.NewDecoder(f)
	err = dec.Decode(&cfg)
	if err != nil {
		return Cfg{}, err
	}

	if cfg.FileIn == "" {
		return Cfg{}, errors.New("file_in is required")
	}
	if cfg.FileOut == "" {
		return Cfg{}, errors.New("file_out is required")
	}
	if cfg.Bins <= 0 {
		return Cfg{}, fmt.Errorf("bins must be positive (got %d)", cfg.Bins)
	}
	if cfg.RMax != 0 && cfg.RMin >= cfg.RMax {
		return Cfg{}, fmt.Errorf("rmin (%v) is not smaller than rmax (%v)", cfg.RMin, cfg.RMax)
	}
	return cfg, nil
}
