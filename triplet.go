/*
 * triplet.go, part of gocryst.
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
	"strconv"
	"strings"
)

//The letters accepted for each axis. x,y,z is the usual notation,
//h,k,l is used for reciprocal space and a,b,c for the cell edges.
const (
	axisLetters0 = "xXhHaA"
	axisLetters1 = "yYkKbB"
	axisLetters2 = "zZlLcC"
)

//ParseTriplet parses a coordinate triplet, such as "-x,y+1/2,-z" into
//a symmetry operation. The returned operation is not normalized.
func ParseTriplet(s string) (Op, error) {
	if n := strings.Count(s, ","); n != 2 {
		return Op{}, newError(MalformedTriplet, s, "expected exactly two commas, found %d", n)
	}
	parts := strings.Split(s, ",")
	var op Op
	for i, p := range parts {
		row, tran, err := parseTripletPart(p)
		if err != nil {
			return Op{}, errDecorate(err, "ParseTriplet")
		}
		op.Rot[i] = row
		op.Tran[i] = tran
	}
	return op, nil
}

//parseTripletPart parses one of the three comma-separated expressions of a triplet.
//it returns the row of the rotation matrix and the translation, in 1/12 units.
func parseTripletPart(s string) ([3]int, int, error) {
	var row [3]int
	tran := 0
	sign := 1
	signed := false //a sign was read and is waiting for its term.
	terms := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			continue
		case c == '+' || c == '-':
			if signed {
				return row, 0, newError(MalformedTriplet, s, "sign not followed by a term")
			}
			sign = 1
			if c == '-' {
				sign = -1
			}
			signed = true
			continue
		case c == '/':
			return row, 0, newError(MalformedTriplet, s, "fraction without numerator")
		}
		isDigit := c >= '0' && c <= '9'
		axis := strings.IndexByte(axisLetters0+axisLetters1+axisLetters2, c)
		if !isDigit && axis < 0 {
			return row, 0, newError(UnexpectedCharacter, s, "unexpected character %q", c)
		}
		if terms > 0 && !signed {
			return row, 0, newError(MalformedTriplet, s, "missing sign before %q", s[i:])
		}
		if !isDigit {
			row[axis/len(axisLetters0)] += sign
		} else {
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			num, err := strconv.Atoi(s[i:j])
			if err != nil {
				return row, 0, newError(MalformedTriplet, s, "bad number %q", s[i:j])
			}
			den := 1
			if j < len(s) && s[j] == '/' {
				k := j + 1
				for k < len(s) && s[k] >= '0' && s[k] <= '9' {
					k++
				}
				if k == j+1 {
					return row, 0, newError(MalformedTriplet, s, "missing denominator")
				}
				den, err = strconv.Atoi(s[j+1 : k])
				if err != nil {
					return row, 0, newError(MalformedTriplet, s, "bad denominator %q", s[j+1:k])
				}
				if den != 1 && den != 2 && den != 3 && den != 4 && den != 6 {
					return row, 0, newError(UnsupportedDenominator, s, "denominator %d", den)
				}
				j = k
			}
			tran += sign * num * (TranDen / den)
			i = j - 1
		}
		terms++
		signed = false
		sign = 1
	}
	if signed {
		return row, 0, newError(MalformedTriplet, s, "trailing sign")
	}
	if terms == 0 {
		return row, 0, newError(MalformedTriplet, s, "empty expression")
	}
	return row, tran, nil
}

//makeTripletPart writes one row of a triplet. w is the translation in 1/12 units.
func makeTripletPart(row [3]int, w int) string {
	var b strings.Builder
	for i, v := range row {
		if v == 0 {
			continue
		}
		if v < 0 {
			b.WriteByte('-')
		} else if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteByte(byte('x' + i))
	}
	if w != 0 {
		//reduce w/12 to lowest terms
		den := 1
		for _, factor := range []int{2, 2, 3} {
			if w%factor == 0 {
				w /= factor
			} else {
				den *= factor
			}
		}
		if w > 0 && b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(w))
		if den != 1 {
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(den))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

//Triplet returns the operation in the triplet notation, e.g. -x,y+1/2,-z.
//The translation is normalized first, so ParseTriplet(O.Triplet()) == O.Normalized().
//The rotation elements are expected to be -1, 0 or 1.
func (O Op) Triplet() string {
	n := O.Normalized()
	return makeTripletPart(n.Rot[0], n.Tran[0]) + "," +
		makeTripletPart(n.Rot[1], n.Tran[1]) + "," +
		makeTripletPart(n.Rot[2], n.Tran[2])
}

//RotTriplet returns the triplet of the rotation part only.
func (O Op) RotTriplet() string {
	return Op{Rot: O.Rot}.Triplet()
}

//String returns the triplet.
func (O Op) String() string {
	return O.Triplet()
}

//MarshalText implements encoding.TextMarshaler, using the triplet notation.
func (O Op) MarshalText() ([]byte, error) {
	return []byte(O.Triplet()), nil
}

//UnmarshalText implements encoding.TextUnmarshaler. It accepts anything ParseTriplet accepts.
func (O *Op) UnmarshalText(text []byte) error {
	op, err := ParseTriplet(string(text))
	if err != nil {
		return errDecorate(err, "UnmarshalText")
	}
	*O = op
	return nil
}
