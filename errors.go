/*
 * errors.go, part of gocryst.
 *
 * Copyright 2017 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package cryst

import (
	"errors"
	"fmt"
	"strings"
)

//ErrorKind tells what went wrong in a goCryst function.
type ErrorKind int

const (
	NoError ErrorKind = iota
	//Wrong number of commas, dangling signs, empty or invalid terms.
	MalformedTriplet
	//A fraction in a triplet with a denominator other than 1, 2, 3, 4 or 6.
	UnsupportedDenominator
	//A character that has no business in a triplet.
	UnexpectedCharacter
	//Any violation of the Hall symbol grammar.
	InvalidHallSymbol
	//Inversion of a matrix with determinant other than 1 or -1.
	InvalidRotation
	//A key that is not in the Hall symbol table.
	UnknownSymbol
)

var kindNames = [...]string{
	NoError:                "no error",
	MalformedTriplet:       "malformed triplet",
	UnsupportedDenominator: "unsupported denominator",
	UnexpectedCharacter:    "unexpected character",
	InvalidHallSymbol:      "invalid Hall symbol",
	InvalidRotation:        "invalid rotation",
	UnknownSymbol:          "unknown symbol",
}

func (K ErrorKind) String() string {
	if K < 0 || int(K) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(K))
	}
	return kindNames[K]
}

//Error is the error type returned by all the functions in this package.
//It fulfills the Decorate interface used in gochem, so callers can add
//the names of the functions the error went through.
type Error struct {
	kind    ErrorKind
	message string
	input   string //the text (or part of it) that caused the problem, if any.
	deco    []string
}

func newError(kind ErrorKind, input, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), input: input}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("goCryst: ")
	b.WriteString(err.kind.String())
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	if err.input != "" {
		fmt.Fprintf(&b, " in %q", err.input)
	}
	if len(err.deco) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(err.deco, " <- "))
	}
	return b.String()
}

//Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

//Input returns the text that caused the error, or an empty string.
func (err *Error) Input() string { return err.input }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//KindOf returns the ErrorKind of err, NoError if err is nil, and
//NoError too if err was not produced by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return NoError
}

//errDecorate adds the caller's name to err if it is a goCryst error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
