/*
 * v3_test.go, part of gocryst.
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
	"errors"
	"testing"

	cryst "github.com/rmera/gocryst"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Errorf("a 4-element slice should not make a Matrix")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Errorf("an empty slice should not make a Matrix")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("NVecs: %d", A.NVecs())
	}
	v := A.VecView(1)
	v.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("VecView is not a view")
	}
}

func TestMatrixError(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2})
	var e *Error
	if !errors.As(err, &e) {
		Te.Fatalf("wrong error type %T", err)
	}
	e.Decorate("TestMatrixError")
	if d := e.Decorate(""); len(d) != 2 || d[0] != "NewMatrix" || d[1] != "TestMatrixError" {
		Te.Errorf("decoration not kept: %v", d)
	}
	if !e.Critical() {
		Te.Errorf("a bad slice length should be critical")
	}
}

func TestDense2Matrix(Te *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	A := Dense2Matrix(d)
	A.Set(1, 2, 60)
	if d.At(1, 2) != 60 || A.NVecs() != 2 {
		Te.Errorf("Dense2Matrix should wrap, not copy")
	}
	defer func() {
		if r := recover(); r != ErrNotXx3Matrix {
			Te.Errorf("expected %v, got %v", ErrNotXx3Matrix, r)
		}
	}()
	Dense2Matrix(mat.NewDense(2, 2, nil))
}

func TestSymOp(Te *testing.T) {
	op, err := cryst.ParseTriplet("-x,y+1/2,-z")
	if err != nil {
		Te.Fatal(err)
	}
	A, _ := NewMatrix([]float64{0.1, 0.2, 0.3, 0.5, 0.5, 0.5})
	F := Zeros(2)
	F.SymOp(A, op)
	want := []float64{-0.1, 0.7, -0.3, -0.5, 1.0, -0.5}
	if !floats.EqualApprox(F.RawMatrix().Data, want, 1e-12) {
		Te.Errorf("got %v", F)
	}
	F.Wrap()
	want = []float64{0.9, 0.7, 0.7, 0.5, 0, 0.5}
	if !floats.EqualApprox(F.RawMatrix().Data, want, 1e-12) {
		Te.Errorf("wrapped: got %v", F)
	}
	//in place
	A.SymOp(A, op)
	A.SymOp(A, op)
	orig := []float64{0.1, 1.2, 0.3, 0.5, 1.5, 0.5}
	if !floats.EqualApprox(A.RawMatrix().Data, orig, 1e-12) {
		Te.Errorf("applying a 2-fold screw twice: %v", A)
	}
}

//The exact inverse undoes the operation on float coordinates too.
func TestSymOpInverse(Te *testing.T) {
	ops, err := cryst.ParseHall("-P 6 2")
	if err != nil {
		Te.Fatal(err)
	}
	A, _ := NewMatrix([]float64{0.11, 0.23, 0.37, 0.9, 0.01, 0.5})
	for _, op := range ops.All() {
		inv, err := op.Inverted()
		if err != nil {
			Te.Fatal(err)
		}
		F := Zeros(2)
		F.SymOp(A, op)
		F.SymOp(F, inv)
		if !mat.EqualApprox(F, A, 1e-12) {
			Te.Errorf("%v: got %v, expected %v", op, F, A)
		}
	}
}

func TestImages(Te *testing.T) {
	ops, err := cryst.ParseHall("I 4")
	if err != nil {
		Te.Fatal(err)
	}
	A, _ := NewMatrix([]float64{0.1, 0.2, 0.3})
	imgs := Images(A, ops)
	if len(imgs) != 4 {
		Te.Fatalf("%d images", len(imgs))
	}
	want := [][]float64{{0.1, 0.2, 0.3}, {0.6, 0.7, 0.8}, {0.8, 0.1, 0.3}, {0.3, 0.6, 0.8}}
	for i, w := range want {
		if !floats.EqualApprox(imgs[i].RawMatrix().Data, w, 1e-12) {
			Te.Errorf("image %d: got %v, expected %v", i, imgs[i], w)
		}
	}
}

func TestMultiplicity(Te *testing.T) {
	ops, err := cryst.ParseHall("-P 1")
	if err != nil {
		Te.Fatal(err)
	}
	//the origin is an inversion center, 0.1,0.2,0.3 is a general position
	A, _ := NewMatrix([]float64{0, 0, 0, 0.1, 0.2, 0.3, 0.5, 0, 0.5})
	for i, want := range []int{1, 2, 1} {
		if m := Multiplicity(A, i, ops, 1e-6); m != want {
			Te.Errorf("point %d: multiplicity %d, expected %d", i, m, want)
		}
	}
}
