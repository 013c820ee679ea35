/*
 * json.go, part of gocryst.
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

package symjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	cryst "github.com/rmera/gocryst"
	v3 "github.com/rmera/gocryst/v3"
	"gonum.org/v1/gonum/mat"
)

//SymOps is a ready-to-serialize container for a set of symmetry operations.
//If Generators is empty, the set is rebuilt from the Hall symbol.
type SymOps struct {
	Hall       string       `json:",omitempty"`
	Generators []cryst.Op   `json:",omitempty"`
	Centering  []cryst.Tran `json:",omitempty"`
}

//Coords is a ready-to-serialize container for one vector of fractional coordinates.
type Coords struct {
	Coords []float64
}

//Error is an easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InSymOps      bool   //If error, was it in the symmetry operations?
	InCoords      bool   //Was it in the coordinates?
	InPostProcess bool   //was it in preparing the output?
	Kind          string //the cryst.ErrorKind, if the error came from goCryst
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-able error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "symops":
		jerr.InSymOps = true
	case "coords":
		jerr.InCoords = true
	default:
		jerr.InPostProcess = true
	}
	if k := cryst.KindOf(err); k != cryst.NoError {
		jerr.Kind = k.String()
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

//SendSymOps encodes ops and writes them to out. If hallOnly is true and
//ops was obtained from a Hall symbol, only the symbol is sent.
func SendSymOps(ops *cryst.SymOps, hallOnly bool, out io.Writer) *Error {
	const funcname = "SendSymOps"
	j := &SymOps{Hall: ops.Hall()}
	if !hallOnly || j.Hall == "" {
		j.Generators = ops.Generators()
		j.Centering = ops.Centering()
	}
	if err := json.NewEncoder(out).Encode(j); err != nil {
		return NewError("postprocess", funcname, err)
	}
	return nil
}

//DecodeSymOps reads a line from stream and decodes it into a set of symmetry operations.
func DecodeSymOps(stream *bufio.Reader) (*cryst.SymOps, *Error) {
	const funcname = "DecodeSymOps"
	line, err := stream.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("symops", funcname, err)
	}
	j := new(SymOps)
	if err := json.Unmarshal(line, j); err != nil {
		return nil, NewError("symops", funcname, err)
	}
	if len(j.Generators) > 0 {
		return cryst.NewHallSymOps(j.Hall, j.Generators, j.Centering), nil
	}
	if j.Hall == "" {
		return nil, NewError("symops", funcname, fmt.Errorf("neither generators nor Hall symbol given"))
	}
	ops, err := cryst.ParseHall(j.Hall)
	if err != nil {
		return nil, NewError("symops", funcname, err)
	}
	return ops, nil
}

//EncodeCoords encodes a set of coordinates into JSON, one vector per line.
func EncodeCoords(coords *v3.Matrix, enc *json.Encoder) *Error {
	c := new(Coords)
	t := make([]float64, 3)
	for i := 0; i < coords.NVecs(); i++ {
		c.Coords = mat.Row(t, i, coords)
		if err := enc.Encode(c); err != nil {
			return NewError("postprocess", "symjson.EncodeCoords", err)
		}
	}
	return nil
}

//DecodeCoords decodes streams from a bufio.Reader containing atomnumber JSON vectors into a v3.Matrix with atomnumber rows.
func DecodeCoords(stream *bufio.Reader, atomnumber int) (*v3.Matrix, *Error) {
	const funcname = "DecodeCoords"
	rawcoords := make([]float64, 0, 3*atomnumber)
	for i := 0; i < atomnumber; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			return nil, NewError("coords", funcname, fmt.Errorf("Error reading vector %d: %s", i, err.Error()))
		}
		ctemp := new(Coords)
		if err = json.Unmarshal(line, ctemp); err != nil {
			return nil, NewError("coords", funcname, err)
		}
		if len(ctemp.Coords) != 3 {
			return nil, NewError("coords", funcname, fmt.Errorf("vector %d has %d components", i, len(ctemp.Coords)))
		}
		rawcoords = append(rawcoords, ctemp.Coords...)
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError("coords", funcname, err)
	}
	return coords, nil
}

//SendImages writes the images of coords under all the operations in ops
//(see v3.Images) to out, one image after the other.
func SendImages(ops *cryst.SymOps, coords *v3.Matrix, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	for _, img := range v3.Images(coords, ops) {
		if err := EncodeCoords(img, enc); err != nil {
			err.Decorate("SendImages")
			return err
		}
	}
	return nil
}
