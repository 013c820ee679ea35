/*
 * op.go, part of gocryst.
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

import "fmt"

//TranDen is the denominator of all translations: a Tran component of 6 means
//half a cell edge.
const TranDen = 12

//Rot is a rotation (or rotoinversion) matrix. In all the operations
//produced by this package the elements are -1, 0 or 1.
type Rot [3][3]int

//Tran is a translation in units of 1/12 of the cell edges.
type Tran [3]int

//Op is a crystallographic symmetry operation, x' = Rot*x + Tran/12,
//where x are fractional coordinates.
//Op is a plain value and can be compared with ==. Two operations that
//differ only by whole cell translations are only equal after Normalized
//is called on both (or you can just use Equiv).
type Op struct {
	Rot  Rot
	Tran Tran
}

//Identity returns the identity operation, x,y,z.
func Identity() Op {
	return Op{Rot: Rot{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

//Compose returns the operation a∘b, that is, b is applied first and then a.
//The result is normalized. The composition is associative but, in general,
//not commutative.
func Compose(a, b Op) Op {
	var r Op
	for i := 0; i < 3; i++ {
		r.Tran[i] = a.Tran[i]
		for j := 0; j < 3; j++ {
			r.Rot[i][j] = a.Rot[i][0]*b.Rot[0][j] + a.Rot[i][1]*b.Rot[1][j] + a.Rot[i][2]*b.Rot[2][j]
			r.Tran[i] += a.Rot[i][j] * b.Tran[j]
		}
	}
	return r.Normalized()
}

//Det returns the determinant of the rotation matrix. It should be
//1 (proper rotation) or -1 (rotoinversion) for any valid operation.
func (O Op) Det() int {
	r := O.Rot
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

//Inverted returns the inverse of the operation. The translation of the
//result is not normalized (unlike Compose). It returns an error of kind
//InvalidRotation if the determinant of the rotation is not 1 or -1.
func (O Op) Inverted() (Op, error) {
	d := O.Det()
	if d != 1 && d != -1 {
		return Op{}, newError(InvalidRotation, O.RotTriplet(), "determinant is %d", d)
	}
	r := O.Rot
	var inv Op
	//adjugate/det, which is adjugate*det when det is 1 or -1.
	inv.Rot[0][0] = d * (r[1][1]*r[2][2] - r[2][1]*r[1][2])
	inv.Rot[0][1] = d * (r[0][2]*r[2][1] - r[0][1]*r[2][2])
	inv.Rot[0][2] = d * (r[0][1]*r[1][2] - r[0][2]*r[1][1])
	inv.Rot[1][0] = d * (r[1][2]*r[2][0] - r[1][0]*r[2][2])
	inv.Rot[1][1] = d * (r[0][0]*r[2][2] - r[0][2]*r[2][0])
	inv.Rot[1][2] = d * (r[1][0]*r[0][2] - r[0][0]*r[1][2])
	inv.Rot[2][0] = d * (r[1][0]*r[2][1] - r[2][0]*r[1][1])
	inv.Rot[2][1] = d * (r[2][0]*r[0][1] - r[0][0]*r[2][1])
	inv.Rot[2][2] = d * (r[0][0]*r[1][1] - r[1][0]*r[0][1])
	for i := 0; i < 3; i++ {
		inv.Tran[i] = -(O.Tran[0]*inv.Rot[i][0] + O.Tran[1]*inv.Rot[i][1] + O.Tran[2]*inv.Rot[i][2])
	}
	return inv, nil
}

//NegatedRot returns the rotation matrix with all its elements negated.
func (O Op) NegatedRot() Rot {
	var r Rot
	for i := range O.Rot {
		for j := range O.Rot[i] {
			r[i][j] = -O.Rot[i][j]
		}
	}
	return r
}

//Negated returns the operation with both rotation and translation negated,
//i.e. O composed with the inversion center. It doesn't normalize.
func (O Op) Negated() Op {
	return Op{Rot: O.NegatedRot(), Tran: Tran{-O.Tran[0], -O.Tran[1], -O.Tran[2]}}
}

//Normalized returns a copy of the operation with the translation
//components wrapped into [0,12).
func (O Op) Normalized() Op {
	for i := range O.Tran {
		O.Tran[i] %= TranDen
		if O.Tran[i] < 0 {
			O.Tran[i] += TranDen
		}
	}
	return O
}

//Translated returns the operation with t added to its translation.
//t is not multiplied by the rotation, and the result is not normalized.
func (O Op) Translated(t Tran) Op {
	for i := range O.Tran {
		O.Tran[i] += t[i]
	}
	return O
}

//ShiftedOrigin returns the operation expressed with the origin moved by v,
//that is, the conjugation (I|v)·O·(I|-v): the new translation is
//t + v - R·v. The result is normalized.
func (O Op) ShiftedOrigin(v Tran) Op {
	for i := 0; i < 3; i++ {
		O.Tran[i] += v[i] - (O.Rot[i][0]*v[0] + O.Rot[i][1]*v[1] + O.Rot[i][2]*v[2])
	}
	return O.Normalized()
}

//Equiv returns true if O and B are the same operation modulo whole cell
//translations.
func (O Op) Equiv(B Op) bool {
	return O.Normalized() == B.Normalized()
}

//IsIdentity returns true if O is x,y,z, modulo whole cell translations.
func (O Op) IsIdentity() bool {
	return O.Equiv(Identity())
}

//Apply returns the result of applying O to the fractional position given
//as numerators over 12, i.e. R*p + t. Nothing is normalized.
func (O Op) Apply(p Tran) Tran {
	var r Tran
	for i := 0; i < 3; i++ {
		r[i] = O.Rot[i][0]*p[0] + O.Rot[i][1]*p[1] + O.Rot[i][2]*p[2] + O.Tran[i]
	}
	return r
}

//GoString prints the raw content of the operation, which String doesn't.
func (O Op) GoString() string {
	return fmt.Sprintf("cryst.Op{Rot:%v, Tran:%v}", O.Rot, O.Tran)
}
