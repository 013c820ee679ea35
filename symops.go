/*
 * symops.go, part of gocryst.
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

import "strings"

//SymOps contains the generator operations of a space group and the
//centering vectors of its lattice. The operations of the group are all the
//generator/centering combinations, which are produced on demand,
//either by index (At) or by an iterator (Iter). A SymOps is not modified after
//it is built.
type SymOps struct {
	sym  []Op   //the first one is always the identity
	cen  []Tran //the first one is always 0,0,0
	hall string
}

//NewSymOps returns a SymOps with copies of the given generators and centering
//vectors. If cen is empty, the primitive lattice (a single 0,0,0 vector) is used.
//The caller is responsible for putting the identity first in gens.
func NewSymOps(gens []Op, cen []Tran) *SymOps {
	return NewHallSymOps("", gens, cen)
}

//NewHallSymOps is like NewSymOps, but also records the Hall symbol the
//generators come from. The symbol is not checked against them.
func NewHallSymOps(hall string, gens []Op, cen []Tran) *SymOps {
	S := &SymOps{sym: make([]Op, len(gens)), hall: strings.TrimSpace(hall)}
	copy(S.sym, gens)
	if len(cen) == 0 {
		S.cen = []Tran{{0, 0, 0}}
	} else {
		S.cen = make([]Tran, len(cen))
		copy(S.cen, cen)
	}
	return S
}

//Generators returns a copy of the generator operations.
func (S *SymOps) Generators() []Op {
	ret := make([]Op, len(S.sym))
	copy(ret, S.sym)
	return ret
}

//Centering returns a copy of the centering vectors.
func (S *SymOps) Centering() []Tran {
	ret := make([]Tran, len(S.cen))
	copy(ret, S.cen)
	return ret
}

//Hall returns the Hall symbol the set was obtained from, or an empty string.
func (S *SymOps) Hall() string {
	return S.hall
}

//Centrosymmetric returns true if the negated identity, -x,-y,-z, is
//the second generator, which is how ParseHall marks centrosymmetric groups.
func (S *SymOps) Centrosymmetric() bool {
	return len(S.sym) > 1 && S.sym[1].Equiv(Identity().Negated())
}

//Len returns the number of operations, i.e. number of generators times
//number of centering vectors.
func (S *SymOps) Len() int {
	return len(S.sym) * len(S.cen)
}

//At returns the ith operation. The centering index runs faster than
//the generator index. The result is normalized. It panics if i is out of range.
func (S *SymOps) At(i int) Op {
	if i < 0 || i >= S.Len() {
		panic(PanicMsg("goCryst: index out of range"))
	}
	nc := len(S.cen)
	return S.sym[i/nc].Translated(S.cen[i%nc]).Normalized()
}

//All returns all the operations in a new slice.
func (S *SymOps) All() []Op {
	ret := make([]Op, 0, S.Len())
	it := S.Iter()
	for op, ok := it.Next(); ok; op, ok = it.Next() {
		ret = append(ret, op)
	}
	return ret
}

//Iter returns a new iterator placed before the first operation.
//Several iterators over the same SymOps are independent of each other.
func (S *SymOps) Iter() *SymOpsIter {
	return &SymOpsIter{parent: S}
}

//SymOpsIter goes through the operations of a SymOps. It is not
//safe to share one iterator among goroutines.
type SymOpsIter struct {
	parent *SymOps
	nSym   int
	nCen   int
}

//Next returns the next operation (normalized) and true, or a zero Op and
//false when there are no more operations.
func (I *SymOpsIter) Next() (Op, bool) {
	p := I.parent
	if I.nSym >= len(p.sym) || len(p.cen) == 0 {
		return Op{}, false
	}
	op := p.sym[I.nSym].Translated(p.cen[I.nCen]).Normalized()
	I.nCen++
	if I.nCen == len(p.cen) {
		I.nCen = 0
		I.nSym++
	}
	return op, true
}

//Reset puts the iterator back before the first operation.
func (I *SymOpsIter) Reset() {
	I.nSym = 0
	I.nCen = 0
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
