/*
Copyright © 2024 the Pourbaix authors.
This file is part of Pourbaix.

Pourbaix is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pourbaix is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pourbaix.  If not, see <http://www.gnu.org/licenses/>.
*/

package pourbaix

// LastCrossing returns the last index i at which a[i] <= b[i]. ok is
// false if there is no such index. a and b are sampled on the same grid
// and must have the same length.
func LastCrossing(a, b []float64) (i int, ok bool) {
	if len(a) != len(b) {
		panic("pourbaix: LastCrossing: curves have different lengths")
	}
	for i = len(a) - 1; i >= 0; i-- {
		if a[i] <= b[i] {
			return i, true
		}
	}
	return 0, false
}
