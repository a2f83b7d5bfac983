/*
 * doc.go, part of molgeo.
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

/*Package molgeo provides atom and molecule structures, reading and writing of
XYZ coordinate files, and elementary geometric properties of molecules:
chemical formulas, centers of mass, interatomic distances, angles and
dihedrals.

The heavier analyses live in the subdirectories:

    v3       Nx3 coordinate matrices, based on gonum's Dense type.
    dist     pairwise-distance matrices and their frequency histograms.
    histo    binned frequency data.
    molplot  plots of distance distributions (uses the gonum/plot library).

Coordinates are kept apart from the atom data, in v3.Matrix objects, where
each row is the cartesian position of one atom, in the same order as the
corresponding AtomSet. Atom order carries no meaning beyond matching the
input order.*/
package molgeo
