package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	molgeo "github.com/rmera/molgeo"
	"github.com/rmera/molgeo/cfg"
	"github.com/rmera/molgeo/dist"
	"github.com/rmera/molgeo/histo"
	"github.com/rmera/molgeo/molplot"
	"gonum.org/v1/gonum/floats"
)

func main() {
	log := log.New(os.Stdout, "", log.LstdFlags)

	if len(os.Args) != 2 {
		log.Fatal("one argument is needed: path of the configuration file")
	}

	c, err := cfg.New(os.Args[1])
	if err != nil {
		log.Fatal(fmt.Errorf("cfg.New: %w", err))
	}

	mol, err := molgeo.XYZRead(c.FileIn)
	if err != nil {
		log.Fatal(fmt.Errorf("XYZRead: %w", err))
	}
	log.Printf("read %s: %d atoms, %d frame(s), formula %s", c.FileIn, mol.Len(), mol.LenFrames(), mol.Formula())

	coords := mol.Coords[0]
	com, err := molgeo.CenterOfMass(coords, mol)
	if err != nil {
		//some element may be missing from the mass table; the geometric
		//center is still meaningful.
		log.Printf("no masses available (%v), using the geometric center", err)
		com, err = molgeo.CenterOfMass(coords, nil)
		if err != nil {
			log.Fatal(fmt.Errorf("CenterOfMass: %w", err))
		}
	}
	log.Printf("center of mass: %7.4f %7.4f %7.4f", com.At(0, 0), com.At(0, 1), com.At(0, 2))

	if clashes, err := dist.CloseContacts(mol, coords, 0.6); err != nil {
		log.Printf("skipping the steric check: %v", err)
	} else if len(clashes) > 0 {
		log.Printf("warning: %d atom pair(s) closer than 0.6 times their van der Waals radii sum: %v", len(clashes), clashes)
	}

	D, err := dist.PairwiseMatrix(coords)
	if err != nil {
		log.Fatal(fmt.Errorf("PairwiseMatrix: %w", err))
	}
	values := dist.Flatten(D)

	rmax := c.RMax
	if rmax == 0 {
		rmax = floats.Max(values)
	}
	h, err := dist.Histogram(values, c.Bins, c.RMin, rmax)
	if err != nil {
		log.Fatal(fmt.Errorf("Histogram: %w", err))
	}
	log.Printf("binned %d of %d distances into %d bins over [%v,%v]", h.Total(), len(values), h.Len(), c.RMin, rmax)

	title := c.Title
	if title == "" {
		title = fmt.Sprintf("Pairwise distances, %s", mol.Formula())
	}
	if err := molplot.DistanceHist(h, title, c.FileOut); err != nil {
		log.Fatal(fmt.Errorf("DistanceHist: %w", err))
	}
	if err := writeJSON(c.FileOut+".json", h); err != nil {
		log.Fatal(fmt.Errorf("writeJSON: %w", err))
	}
	log.Printf("wrote %s.png and %s.json", c.FileOut, c.FileOut)

	if c.PerElement {
		if err := perElement(c, mol, rmax); err != nil {
			log.Fatal(fmt.Errorf("perElement: %w", err))
		}
		log.Printf("wrote %s_elements.png", c.FileOut)
	}
}

//perElement plots one distance distribution per pair of element types,
//all on the same axes.
func perElement(c cfg.Cfg, mol *molgeo.Molecule, rmax float64) error {
	M, types, err := dist.PairTypeHistograms(mol, mol.Coords[0], c.Bins, c.RMin, rmax)
	if err != nil {
		return err
	}
	var hs []*histo.Data
	var labels []string
	for i := range types {
		for j := i; j < len(types); j++ {
			hs = append(hs, M.View(i, j))
			labels = append(labels, fmt.Sprintf("%s-%s", types[i], types[j]))
		}
	}
	title := fmt.Sprintf("Per-element pairwise distances, %s", mol.Formula())
	return molplot.DistanceHistCompare(hs, labels, title, c.FileOut+"_elements")
}

func writeJSON(name string, h *histo.Data) error {
	j, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return os.WriteFile(name, j, 0644)
}
