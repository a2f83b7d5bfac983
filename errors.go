/*
 * errors.go, part of molgeo.
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

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. If passed an empty
// string, Decorate should just return the current decoration slice, not add
// the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the library. Every error returned by
// molgeo and its subpackages reports invalid input: the operations here are
// pure, so a failed call will fail again until the caller corrects what was
// given. No partial results accompany a non-nil CError.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error, unless dec is empty,
// and returns the resulting slice. The decoration should contain the names of
// the functions in the calling stack, plus, for each, any relevant extra
// information.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements molgeo.Error and decorates it with
// the caller's name before returning it. It panics on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It satisfies the error interface, but
// for returned errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData         = PanicMsg("molgeo: nil data given")
	ErrNilAtom         = PanicMsg("molgeo: nil atom given")
	ErrAtomOutOfRange  = PanicMsg("molgeo: requested atom out of range")
	ErrNotEnoughAtoms  = PanicMsg("molgeo: not enough atoms in set")
	ErrInconsistentSet = PanicMsg("molgeo: inconsistent atoms/coordinates")
)
