/*
 * interfaces.go, part of gocryst.
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

//HallTable gives the Hall symbol for a key (a space group name, a number,
//or whatever the table uses). goCryst does not carry space group data;
//the user supplies it through this interface.
type HallTable interface {
	Hall(key string) (string, bool)
}

//HallMap is the simplest HallTable, a map from keys to Hall symbols.
type HallMap map[string]string

//Hall returns the Hall symbol for key and true, or an empty string
//and false if key is not in the map.
func (M HallMap) Hall(key string) (string, bool) {
	h, ok := M[key]
	return h, ok
}

//SymOpsFromTable looks up key in table and interprets the Hall symbol found.
//It returns an error of kind UnknownSymbol if the key is not in the table, and
//the errors of ParseHall if the symbol is not valid.
func SymOpsFromTable(table HallTable, key string) (*SymOps, error) {
	if table == nil {
		return nil, newError(UnknownSymbol, key, "no table given")
	}
	hall, ok := table.Hall(key)
	if !ok {
		return nil, newError(UnknownSymbol, key, "not in the table")
	}
	ops, err := ParseHall(hall)
	if err != nil {
		return nil, errDecorate(err, "SymOpsFromTable: "+key)
	}
	return ops, nil
}
