/*
 * symop.go, part of gocryst.
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

package v3

import (
	"math"

	cryst "github.com/rmera/gocryst"
	"gonum.org/v1/gonum/mat"
)

//RotDense returns the rotation matrix r as a gonum Dense.
func RotDense(r cryst.Rot) *mat.Dense {
	d := make([]float64, 0, 9)
	for i := range r {
		for j := range r[i] {
			d = append(d, float64(r[i][j]))
		}
	}
	return mat.NewDense(3, 3, d)
}

//SymOp puts in F the result of applying op to each vector of A, x' = R*x + t.
//Since the vectors are rows, this is A*Rᵀ plus t in every row.
//F and A can be the same matrix. The result is not wrapped into the cell.
func (F *Matrix) SymOp(A *Matrix, op cryst.Op) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != fr {
		panic(ErrShape)
	}
	F.Dense.Mul(A.Dense, RotDense(op.Rot).T())
	for i := 0; i < fr; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, F.At(i, j)+float64(op.Tran[j])/cryst.TranDen)
		}
	}
}

//Wrap puts every coordinate of F in [0,1), i.e. moves the points
//into the unit cell.
func (F *Matrix) Wrap() {
	F.Apply(func(_, _ int, v float64) float64 {
		w := v - math.Floor(v)
		if w >= 1 { //can happen for tiny negative v
			w = 0
		}
		return w
	}, F.Dense)
}

//Images returns a new Matrix for each operation in ops, with the result of
//applying the operation to A, wrapped into the unit cell. The images are in the
//same order as the operations produced by ops.Iter().
func Images(A *Matrix, ops *cryst.SymOps) []*Matrix {
	ret := make([]*Matrix, 0, ops.Len())
	it := ops.Iter()
	for op, ok := it.Next(); ok; op, ok = it.Next() {
		F := Dense2Matrix(mat.DenseCopyOf(A.Dense))
		F.SymOp(F, op)
		F.Wrap()
		ret = append(ret, F)
	}
	return ret
}

//Multiplicity returns the number of distinct images of the ith vector of A under
//the operations of ops, comparing coordinates modulo whole cell translations with
//tolerance tol. A point on a special position gives fewer images than ops.Len().
func Multiplicity(A *Matrix, i int, ops *cryst.SymOps, tol float64) int {
	p := A.VecView(i)
	var seen []*Matrix
	for _, img := range Images(p, ops) {
		dup := false
		for _, s := range seen {
			if sameInCell(img, s, tol) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, img)
		}
	}
	return len(seen)
}

//sameInCell returns true if the 1x3 matrices a and b are the same point modulo
//whole cell translations.
func sameInCell(a, b *Matrix, tol float64) bool {
	for j := 0; j < 3; j++ {
		d := math.Abs(a.At(0, j) - b.At(0, j))
		d = math.Min(d, 1-d)
		if d > tol {
			return false
		}
	}
	return true
}
