/*
 * plot.go, part of molgeo.
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

//Package molplot draws distance-distribution plots for molecules, using the
//gonum/plot library. Only 2D statistical plots live here; rendering of the
//3D structures themselves is left to external programs.
package molplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/molgeo/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicHistPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "distance (Å)"
	p.Y.Label.Text = "count"
	p.Add(plotter.NewGrid())
	return p
}

//DistanceHist draws the distance frequency histogram d as a stepped outline
//and saves it, in png format, as plotname.png (the extension is appended
//here). Returns an error or nil.
func DistanceHist(d *histo.Data, title, plotname string) error {
	if d == nil {
		return fmt.Errorf("molplot.DistanceHist: given nil histogram")
	}
	p := basicHistPlot(title)
	bins := d.Bins()
	//two points per bin, so the line steps along the bin tops.
	pts := make(plotter.XYs, 0, 2*len(bins))
	for _, b := range bins {
		pts = append(pts, plotter.XY{X: b.Lo, Y: b.Count}, plotter.XY{X: b.Hi, Y: b.Count})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{R: 60, G: 90, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.X.Min = bins[0].Lo
	p.X.Max = bins[len(bins)-1].Hi
	p.Y.Min = 0
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

//DistanceHistCompare draws several distance histograms on the same axes,
//one color per histogram, and saves the result as plotname.png. The labels
//slice, if non-nil, must have one element per histogram and is used for the
//legend. Returns an error or nil.
func DistanceHistCompare(ds []*histo.Data, labels []string, title, plotname string) error {
	if len(ds) == 0 {
		return fmt.Errorf("molplot.DistanceHistCompare: given no histograms")
	}
	if labels != nil && len(labels) != len(ds) {
		return fmt.Errorf("molplot.DistanceHistCompare: if a non-nil label slice is provided it must contain an element for each histogram")
	}
	p := basicHistPlot(title)
	for key, d := range ds {
		bins := d.Bins()
		pts := make(plotter.XYs, 0, 2*len(bins))
		for _, b := range bins {
			pts = append(pts, plotter.XY{X: b.Lo, Y: b.Count}, plotter.XY{X: b.Hi, Y: b.Count})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(ds))
		line.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		if labels != nil {
			p.Legend.Add(labels[key], line)
		}
	}
	p.Y.Min = 0
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, pp, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = float64(int(h))
	f = h - i
	pp = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = pp
	case 1:
		r = q
		g = v
		b = pp
	case 2:
		r = pp
		g = v
		b = t
	case 3:
		r = pp
		g = q
		b = v
	case 4:
		r = t
		g = pp
		b = v
	default: //case 5
		r = v
		g = pp
		b = q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}
