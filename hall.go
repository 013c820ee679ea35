/*
 * hall.go, part of gocryst.
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

//Interpretation of Hall symbols,
//based on http://cci.lbl.gov/sginfo/hall_symbols.html

//LatticeTranslations returns the centering vectors of the lattice with the given symbol
//(P, A, B, C, I, R, S, T or F, case insensitive). The first one is always 0,0,0.
func LatticeTranslations(symbol byte) ([]Tran, error) {
	switch symbol &^ 0x20 {
	case 'P':
		return []Tran{{0, 0, 0}}, nil
	case 'A':
		return []Tran{{0, 0, 0}, {0, 6, 6}}, nil
	case 'B':
		return []Tran{{0, 0, 0}, {6, 0, 6}}, nil
	case 'C':
		return []Tran{{0, 0, 0}, {6, 6, 0}}, nil
	case 'I':
		return []Tran{{0, 0, 0}, {6, 6, 6}}, nil
	case 'R':
		return []Tran{{0, 0, 0}, {8, 4, 4}, {4, 8, 8}}, nil
	case 'S':
		return []Tran{{0, 0, 0}, {4, 4, 8}, {8, 4, 8}}, nil
	case 'T':
		return []Tran{{0, 0, 0}, {4, 8, 4}, {8, 4, 8}}, nil
	case 'F':
		return []Tran{{0, 0, 0}, {0, 6, 6}, {6, 0, 6}, {6, 6, 0}}, nil
	}
	return nil, newError(InvalidHallSymbol, string(symbol), "not a lattice symbol")
}

//rotationAroundZ returns the N-fold proper rotation around the z axis.
func rotationAroundZ(N int) (Rot, bool) {
	switch N {
	case 1:
		return Rot{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true
	case 2:
		return Rot{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, true
	case 3:
		return Rot{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}, true
	case 4:
		return Rot{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, true
	case 6:
		return Rot{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}, true
	}
	return Rot{}, false
}

//translationFromSymbol returns the translation for the lowercase letters
//of a matrix symbol.
func translationFromSymbol(c byte) (Tran, bool) {
	switch c {
	case 'a':
		return Tran{6, 0, 0}, true
	case 'b':
		return Tran{0, 6, 0}, true
	case 'c':
		return Tran{0, 0, 6}, true
	case 'n':
		return Tran{6, 6, 6}, true
	case 'u':
		return Tran{3, 0, 0}, true
	case 'v':
		return Tran{0, 3, 0}, true
	case 'w':
		return Tran{0, 0, 3}, true
	case 'd':
		return Tran{3, 3, 3}, true
	}
	return Tran{}, false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func skipBlank(s string) string {
	return strings.TrimLeft(s, " \t")
}

//rotOrder returns the rotation order of a matrix symbol, skipping
//the leading minus sign, if present. It returns 0 if there is no valid order.
func rotOrder(sym string) int {
	sym = strings.TrimPrefix(sym, "-")
	if sym == "" {
		return 0
	}
	switch c := sym[0]; c {
	case '1', '2', '3', '4', '6':
		return int(c - '0')
	}
	return 0
}

//hallMatrixSymbol builds the operation for one matrix symbol of a Hall symbol,
//such as 2ac, -4 or 3*. pos is the 1-based position of the symbol in the Hall symbol
//and first is the rotation order of the first matrix symbol, which determines
//the implicit axes.
func hallMatrixSymbol(sym string, pos, first int) (Op, error) {
	op := Identity()
	neg := strings.HasPrefix(sym, "-")
	p := strings.TrimPrefix(sym, "-")
	N := rotOrder(p)
	if N == 0 {
		return op, newError(InvalidHallSymbol, sym, "wrong n-fold order notation")
	}
	screw := 0
	var principal, diagonal byte
	for i := 1; i < len(p); i++ {
		c := p[i]
		switch {
		case c >= '1' && c <= '5':
			if screw != 0 {
				return op, newError(InvalidHallSymbol, sym, "two numeric subscripts")
			}
			screw = int(c - '0')
		case c == '\'' || c == '"' || c == '*':
			want := 2
			if c == '*' {
				want = 3
			}
			if N != want {
				return op, newError(InvalidHallSymbol, sym, "diagonal axis %q for a %d-fold axis", c, N)
			}
			if principal != 0 || diagonal != 0 {
				return op, newError(InvalidHallSymbol, sym, "conflicting axis markers")
			}
			diagonal = c
		case c == 'x' || c == 'y' || c == 'z':
			if principal != 0 || diagonal != 0 {
				return op, newError(InvalidHallSymbol, sym, "conflicting axis markers")
			}
			principal = c
		default:
			t, ok := translationFromSymbol(c)
			if !ok {
				return op, newError(InvalidHallSymbol, sym, "unknown symbol %q", c)
			}
			op = op.Translated(t)
		}
	}
	//implicit axes
	if principal == 0 && diagonal == 0 {
		switch {
		case pos == 1 || N == 1:
			principal = 'z'
		case pos == 2 && N == 2 && (first == 2 || first == 4):
			principal = 'x'
		case pos == 2 && N == 2 && (first == 3 || first == 6):
			diagonal = '\''
		case pos == 3 && N == 3:
			diagonal = '*'
		default:
			return op, newError(InvalidHallSymbol, sym, "missing axis")
		}
	}
	switch diagonal {
	case 0:
		op.Rot, _ = rotationAroundZ(N)
	case '\'':
		op.Rot = Rot{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}
	case '"':
		op.Rot = Rot{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}
	case '*':
		op.Rot = Rot{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	}
	if neg {
		op.Rot = op.NegatedRot()
	}
	if screw != 0 {
		if principal == 0 {
			return op, newError(InvalidHallSymbol, sym, "screw translation without principal axis")
		}
		op.Tran[principal-'x'] += TranDen / N * screw
	}
	r := op.Rot
	switch principal {
	case 'x':
		op.Rot = Rot{
			{r[2][2], r[2][0], r[2][1]},
			{r[0][2], r[0][0], r[0][1]},
			{r[1][2], r[1][0], r[1][1]},
		}
	case 'y':
		op.Rot = Rot{
			{r[1][1], r[1][2], r[1][0]},
			{r[2][1], r[2][2], r[2][0]},
			{r[0][1], r[0][2], r[0][0]},
		}
	}
	return op.Normalized(), nil
}

//parseOriginShift parses the inside of the parentheses of an origin shift, "0 0 1".
//The components are in 1/12 units, and are wrapped into [0,12).
func parseOriginShift(s string) (Tran, error) {
	var t Tran
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return t, newError(InvalidHallSymbol, s, "origin shift needs 3 components")
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return t, newError(InvalidHallSymbol, s, "wrong format of origin shift")
		}
		t[i] = v % TranDen
		if t[i] < 0 {
			t[i] += TranDen
		}
	}
	return t, nil
}

//ParseHall interprets a Hall symbol, such as "-P 2ac 2ab", and returns the generators and
//centering vectors of the space group. All the errors returned are of kind InvalidHallSymbol.
//An origin shift in parentheses, e.g. "P 31 2c (0 0 1)" is applied to the generator
//that precedes it.
func ParseHall(hall string) (*SymOps, error) {
	s := skipBlank(hall)
	if s == "" {
		return nil, newError(InvalidHallSymbol, hall, "empty symbol")
	}
	ops := &SymOps{hall: strings.TrimSpace(hall)}
	ops.sym = append(ops.sym, Identity())
	if s[0] == '-' {
		ops.sym = append(ops.sym, Identity().Negated())
		s = skipBlank(s[1:])
		if s == "" {
			return nil, newError(InvalidHallSymbol, hall, "missing lattice symbol")
		}
	}
	var err error
	ops.cen, err = LatticeTranslations(s[0])
	if err != nil {
		return nil, errDecorate(err, "ParseHall")
	}
	s = skipBlank(s[1:])
	counter := 0
	first := 0
	for s != "" {
		if s[0] == '(' {
			rb := strings.IndexByte(s, ')')
			if rb < 0 {
				return nil, newError(InvalidHallSymbol, hall, "missing ')'")
			}
			if counter == 0 {
				return nil, newError(InvalidHallSymbol, hall, "misplaced origin shift")
			}
			if rb+1 < len(s) && !isBlank(s[rb+1]) {
				return nil, newError(InvalidHallSymbol, hall, "unexpected %q after origin shift", s[rb+1:])
			}
			v, err := parseOriginShift(s[1:rb])
			if err != nil {
				return nil, errDecorate(err, "ParseHall")
			}
			last := len(ops.sym) - 1
			ops.sym[last] = ops.sym[last].ShiftedOrigin(v)
			s = skipBlank(s[rb+1:])
			continue
		}
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			end = len(s)
		}
		sym := s[:end]
		if strings.ContainsAny(sym, "()") {
			return nil, newError(InvalidHallSymbol, hall, "misplaced parenthesis in %q", sym)
		}
		counter++
		if counter == 1 {
			first = rotOrder(sym)
		}
		if sym != "1" {
			op, err := hallMatrixSymbol(sym, counter, first)
			if err != nil {
				return nil, errDecorate(err, "ParseHall")
			}
			ops.sym = append(ops.sym, op)
		}
		s = skipBlank(s[end:])
	}
	return ops, nil
}
