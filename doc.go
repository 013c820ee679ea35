/*
 * doc.go, part of gocryst.
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

/*Package cryst is the main package of the goCryst library. It handles the symmetry
operations of crystallographic space groups using exact arithmetic. No floating point
is involved: rotations are 3x3 integer matrices and translations are integers in units of
1/12 of a cell edge (12 being the least common multiple of the denominators that show up in
crystallographic translations: 1, 2, 3, 4 and 6).



	**goCryst Capabilities**


    Parses and writes coordinate triplets, such as -x,y+1/2,-z. The h,k,l and a,b,c
	notations are also understood.

    Composes, inverts, negates and normalizes symmetry operations.

    Interprets Hall symbols (such as -P 2ac 2ab) into the generator operations
	and lattice centering vectors of the space group, following
	http://cci.lbl.gov/sginfo/hall_symbols.html

    Enumerates lazily all the generator/centering combinations of a group,
	either with an iterator or by index.

    Gets Hall symbols from a table supplied by the user, so the library does not
	need to carry the space group data.

    Applies symmetry operations to fractional coordinates (subpackage v3) and
	serializes sets of operations to JSON (subpackage symjson).


A SymOps value is never modified after it is built, so it can be read from
several goroutines at the same time. Iterators, on the other hand, belong to
whoever created them.

*/
package cryst
