/*
 * geometric_test.go, part of molgeo.
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
 */

package molgeo

import (
	"math"
	"testing"

	v3 "github.com/rmera/molgeo/v3"
)

func TestDistance(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{0, 0, 0})
	b, _ := v3.NewMatrix([]float64{3, 4, 0})
	if d := Distance(a, b); d != 5.0 {
		Te.Errorf("expected exactly 5.0, got %v", d)
	}
	if d := Distance(a, a); d != 0 {
		Te.Errorf("self distance should be 0, got %v", d)
	}
}

func TestAngle(Te *testing.T) {
	x, _ := v3.NewMatrix([]float64{1, 0, 0})
	y, _ := v3.NewMatrix([]float64{0, 2, 0})
	if a := Angle(x, y); math.Abs(a-math.Pi/2) > appzero {
		Te.Errorf("expected pi/2, got %v", a)
	}
	if a := Angle(x, x); a != 0 {
		Te.Errorf("angle with itself should be 0, got %v", a)
	}
	minusx, _ := v3.NewMatrix([]float64{-3, 0, 0})
	if a := Angle(x, minusx); math.Abs(a-math.Pi) > appzero {
		Te.Errorf("expected pi, got %v", a)
	}
}

func TestDihedral(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{1, 0, 0})
	b, _ := v3.NewMatrix([]float64{0, 0, 0})
	c, _ := v3.NewMatrix([]float64{0, 1, 0})
	cis, _ := v3.NewMatrix([]float64{1, 1, 0})
	trans, _ := v3.NewMatrix([]float64{-1, 1, 0})
	if d := Dihedral(a, b, c, cis); math.Abs(d) > appzero {
		Te.Errorf("cis dihedral should be 0, got %v", d)
	}
	if d := Dihedral(a, b, c, trans); math.Abs(math.Abs(d)-math.Pi) > appzero {
		Te.Errorf("trans dihedral should be pi, got %v", d)
	}
}

func TestCenterOfMass(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 4, 0, 0})
	set, err := NewAtomSet([]*Atom{
		{Symbol: "X", Mass: 1},
		{Symbol: "Y", Mass: 3},
	})
	if err != nil {
		Te.Fatal(err)
	}
	com, err := CenterOfMass(coords, set)
	if err != nil {
		Te.Fatal(err)
	}
	if com.At(0, 0) != 3.0 || com.At(0, 1) != 0 || com.At(0, 2) != 0 {
		Te.Errorf("expected (3,0,0), got (%v,%v,%v)", com.At(0, 0), com.At(0, 1), com.At(0, 2))
	}
	//nil Masser means geometric center
	center, err := CenterOfMass(coords, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if center.At(0, 0) != 2.0 {
		Te.Errorf("expected geometric center x=2, got %v", center.At(0, 0))
	}
	if _, err := CenterOfMass(nil, nil); err == nil {
		Te.Error("expected an error for nil coordinates")
	}
}
