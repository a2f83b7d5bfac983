/*
 * geometric.go, part of molgeo.
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

package molgeo

import (
	"fmt"
	"math"

	v3 "github.com/rmera/molgeo/v3"
	"gonum.org/v1/gonum/floats"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//cross takes 2 3-len row vectors and returns a row vector with the cross
//product of them. Panics on badly shaped input.
func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//Distance returns the euclidean distance between the points a and b.
//It does not check for correctness!
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(b, a)
	return d.Norm()
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Dihedral calculates the dihedral angle, in radians, between the points
//a, b, c, d, where the first plane is defined by abc and the second by bcd.
//Panics on badly shaped input.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(ErrNilData)
		}
		if point.NVecs() != 1 {
			panic(fmt.Sprintf("molgeo: Dihedral: vector %d has invalid shape", number))
		}
	}
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(), bma)
	first := bmascaled.Dot(cross(cmb, dmc))
	v1 := cross(bma, cmb)
	v2 := cross(cmb, dmc)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

//CenterOfMass returns the center of mass of the atoms represented by the
//coordinates in geometry and the masses given by mol, and an error. If mol
//is nil, it calculates the geometric center.
func CenterOfMass(geometry *v3.Matrix, mol Masser) (*v3.Matrix, error) {
	if geometry == nil {
		return nil, CError{"nil matrix to get the center of mass", []string{"CenterOfMass"}}
	}
	gr := geometry.NVecs()
	if gr == 0 {
		return nil, CError{"empty matrix to get the center of mass", []string{"CenterOfMass"}}
	}
	var mass []float64
	if mol == nil { //just obtain the geometric center
		mass = make([]float64, gr)
		for i := range mass {
			mass[i] = 1.0
		}
	} else {
		var err error
		mass, err = mol.Masses()
		if err != nil {
			return nil, errDecorate(err, "CenterOfMass")
		}
		if len(mass) != gr {
			return nil, CError{"inconsistent coordinates/masses", []string{"CenterOfMass"}}
		}
	}
	com := v3.Zeros(1)
	row := make([]float64, 3)
	for i := 0; i < gr; i++ {
		geometry.Row(row, i)
		floats.Scale(mass[i], row)
		com.Set(0, 0, com.At(0, 0)+row[0])
		com.Set(0, 1, com.At(0, 1)+row[1])
		com.Set(0, 2, com.At(0, 2)+row[2])
	}
	com.Scale(1.0/floats.Sum(mass), com)
	return com, nil
}
