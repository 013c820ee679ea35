/*
 * op_test.go, part of gocryst.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//Hall symbols covering all lattices, orders, screws, glides, diagonal axes and
//origin shifts.
var testHalls = []string{
	"P 1", "-P 1", "P 2y", "P 2yb", "C 2y", "P -2y", "P -2yc", "-P 2ybc",
	"P 2 2", "P 2ac 2ab", "-P 2ac 2ab", "C 2c 2", "F 2 2", "I 2 2", "A 2 -2",
	"P 4", "P 4w", "P 4c", "I 4", "I 4bw", "P -4", "-P 4", "-P 4a 2b", "P 4n 2n -1n",
	"P 3", "P 31", "P 32", "R 3", "-R 3", "S 3", "T 3", "P 31 2c (0 0 1)", "P 3 2\"", "P 3*", "-P 3*",
	"P 6", "P 61", "P 65", "P 6c", "-P 6 2", "P 6c 2c",
	"P 2 2 3", "F 2 2 3", "I 2 2 3", "P 4 2 3", "-P 4 2 3", "-F 4 2 3", "P 4n 2 3 -1n", "F 4d 2 3 -1d",
	"P 2 2 (1 1 1)", "P 21x", "P 2x1",
}

//testOps returns all the operations of all the groups in testHalls.
func testOps(Te *testing.T) []Op {
	var ret []Op
	for _, h := range testHalls {
		ops, err := ParseHall(h)
		if err != nil {
			Te.Fatalf("ParseHall(%q): %v", h, err)
		}
		ret = append(ret, ops.All()...)
	}
	return ret
}

func mustTriplet(Te *testing.T, s string) Op {
	Te.Helper()
	op, err := ParseTriplet(s)
	if err != nil {
		Te.Fatalf("ParseTriplet(%q): %v", s, err)
	}
	return op
}

func rot2Dense(r Rot) *mat.Dense {
	d := make([]float64, 0, 9)
	for i := range r {
		for j := range r[i] {
			d = append(d, float64(r[i][j]))
		}
	}
	return mat.NewDense(3, 3, d)
}

func TestIdentity(Te *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		Te.Errorf("Identity is not the identity: %#v", id)
	}
	if id.Det() != 1 {
		Te.Errorf("det(identity) = %d", id.Det())
	}
	for _, op := range testOps(Te) {
		raw := op.Translated(Tran{-12, 25, -7})
		if l := Compose(id, raw); l != raw.Normalized() {
			Te.Errorf("identity∘%v = %v", raw.Triplet(), l.Triplet())
		}
		if r := Compose(raw, id); r != raw.Normalized() {
			Te.Errorf("%v∘identity = %v", raw.Triplet(), r.Triplet())
		}
	}
}

func TestComposeNotCommutative(Te *testing.T) {
	four := mustTriplet(Te, "-y,x,z")
	twox := mustTriplet(Te, "x,-y,-z")
	if got := Compose(four, twox).Triplet(); got != "y,x,-z" {
		Te.Errorf("4∘2x = %s", got)
	}
	if got := Compose(twox, four).Triplet(); got != "-y,-x,-z" {
		Te.Errorf("2x∘4 = %s", got)
	}
	shift := mustTriplet(Te, "x+1/2,y,z")
	if got := Compose(four, shift).Triplet(); got != "-y,x+1/2,z" {
		Te.Errorf("4∘t = %s", got)
	}
	if got := Compose(shift, four).Triplet(); got != "-y+1/2,x,z" {
		Te.Errorf("t∘4 = %s", got)
	}
	//b is applied first, and the result is normalized.
	a := mustTriplet(Te, "-x,y+1/2,-z")
	c := Compose(a, shift)
	if c.Tran != (Tran{6, 6, 0}) {
		Te.Errorf("translation of a∘b is %v, expected [6 6 0]", c.Tran)
	}
}

func TestComposeAssociative(Te *testing.T) {
	ops := testOps(Te)
	for i := 0; i+2 < len(ops); i += 3 {
		a, b, c := ops[i], ops[i+1], ops[i+2]
		if Compose(Compose(a, b), c) != Compose(a, Compose(b, c)) {
			Te.Errorf("(%v∘%v)∘%v != %v∘(%v∘%v)", a, b, c, a, b, c)
		}
	}
}

func TestInverse(Te *testing.T) {
	id := Identity()
	for _, op := range testOps(Te) {
		inv, err := op.Inverted()
		if err != nil {
			Te.Fatal(err)
		}
		if Compose(op, inv).Normalized() != id {
			Te.Errorf("%v∘inverse = %v", op, Compose(op, inv))
		}
		if Compose(inv, op).Normalized() != id {
			Te.Errorf("inverse∘%v = %v", op, Compose(inv, op))
		}
		//compare with gonum's floating point inverse.
		var ginv mat.Dense
		if err := ginv.Inverse(rot2Dense(op.Rot)); err != nil {
			Te.Fatal(err)
		}
		if !mat.EqualApprox(&ginv, rot2Dense(inv.Rot), 1e-9) {
			Te.Errorf("inverse of %v: %v, gonum says %v", op, inv.Rot, mat.Formatted(&ginv))
		}
		//the inverse maps the image of a point back to the point.
		p := Tran{1, 5, 7}
		if back := inv.Apply(op.Apply(p)); back != p {
			Te.Errorf("%v: point %v goes back to %v", op, p, back)
		}
	}
}

//Inverted, unlike Compose, does not normalize.
func TestInverseNotNormalized(Te *testing.T) {
	op := mustTriplet(Te, "-y,x,z+1/4")
	inv, err := op.Inverted()
	if err != nil {
		Te.Fatal(err)
	}
	want := Op{Rot: Rot{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}, Tran: Tran{0, 0, -3}}
	if inv != want {
		Te.Errorf("got %#v, expected %#v", inv, want)
	}
	if inv.Normalized().Tran != (Tran{0, 0, 9}) {
		Te.Errorf("normalized inverse: %#v", inv.Normalized())
	}
	if inv.Triplet() != "y,-x,z+3/4" {
		Te.Errorf("triplet of inverse: %s", inv.Triplet())
	}
}

func TestInvalidRotation(Te *testing.T) {
	for _, s := range []string{"x+y,x+y,z", "x,y,0", "x,x,z", "x+y,x-y,z"} {
		op := mustTriplet(Te, s)
		_, err := op.Inverted()
		if KindOf(err) != InvalidRotation {
			Te.Errorf("%s: expected InvalidRotation, got %v", s, err)
		}
	}
}

func TestDeterminant(Te *testing.T) {
	ops := testOps(Te)
	for _, op := range ops {
		d := op.Det()
		if d != 1 && d != -1 {
			Te.Errorf("det(%v) = %d", op, d)
		}
		if g := mat.Det(rot2Dense(op.Rot)); math.Abs(g-float64(d)) > 1e-9 {
			Te.Errorf("det(%v) = %d, gonum says %f", op, d, g)
		}
	}
	for i := 1; i < len(ops); i++ {
		a, b := ops[i-1], ops[i]
		if Compose(a, b).Det() != a.Det()*b.Det() {
			Te.Errorf("det(%v∘%v) = %d", a, b, Compose(a, b).Det())
		}
	}
}

func TestNormalize(Te *testing.T) {
	op := Op{Rot: Identity().Rot, Tran: Tran{-1, 12, 30}}
	n := op.Normalized()
	if n.Tran != (Tran{11, 0, 6}) {
		Te.Errorf("normalized: %v", n.Tran)
	}
	if n.Normalized() != n {
		Te.Errorf("normalization is not idempotent: %v", n.Normalized())
	}
	if op.Tran != (Tran{-1, 12, 30}) {
		Te.Errorf("Normalized modified the receiver: %v", op.Tran)
	}
	for _, o := range testOps(Te) {
		n := o.Translated(Tran{-25, 13, 0}).Normalized()
		for _, t := range n.Tran {
			if t < 0 || t >= TranDen {
				Te.Errorf("%#v not normalized", n)
			}
		}
	}
}

func TestNegate(Te *testing.T) {
	op := mustTriplet(Te, "-y,x-y,z+1/3")
	neg := op.Negated()
	want := Op{Rot: Rot{{0, 1, 0}, {-1, 1, 0}, {0, 0, -1}}, Tran: Tran{0, 0, -4}}
	if neg != want {
		Te.Errorf("got %#v", neg)
	}
	if neg.Det() != -op.Det() {
		Te.Errorf("negation should flip the determinant")
	}
	if neg.Negated() != op {
		Te.Errorf("double negation: %#v", neg.Negated())
	}
}

func TestTranslated(Te *testing.T) {
	op := mustTriplet(Te, "-y,x,z")
	t := op.Translated(Tran{6, 6, 18})
	//no rotation applied to the vector, no normalization.
	if t.Tran != (Tran{6, 6, 18}) || t.Rot != op.Rot {
		Te.Errorf("got %#v", t)
	}
}

func TestShiftedOrigin(Te *testing.T) {
	two := mustTriplet(Te, "-x,-y,z")
	s := two.ShiftedOrigin(Tran{3, 0, 6})
	//t + v - R·v = (0+3+3, 0, 0+6-6)
	if s.Tran != (Tran{6, 0, 0}) {
		Te.Errorf("got %#v", s)
	}
	//a shift along the rotation axis changes nothing
	if z := two.ShiftedOrigin(Tran{0, 0, 5}); z != two {
		Te.Errorf("got %#v", z)
	}
	//the identity is not affected by origin shifts
	if id := Identity().ShiftedOrigin(Tran{1, 2, 3}); id != Identity() {
		Te.Errorf("got %#v", id)
	}
	//shifting back recovers the operation
	back := s.ShiftedOrigin(Tran{-3, 0, -6})
	if back != two {
		Te.Errorf("got %#v", back)
	}
}

func TestEquiv(Te *testing.T) {
	a := mustTriplet(Te, "x-1/2,y,z+1")
	b := mustTriplet(Te, "x+1/2,y,z")
	if a == b {
		Te.Errorf("raw operations should differ")
	}
	if !a.Equiv(b) {
		Te.Errorf("%#v and %#v should be equivalent", a, b)
	}
}
