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

import "testing"

func TestLastCrossing(t *testing.T) {
	for _, test := range []struct {
		name string
		a, b []float64
		i    int
		ok   bool
	}{
		{name: "crossing", a: []float64{0, 0, 0, 0}, b: []float64{3, 1, 0, -1}, i: 2, ok: true},
		{name: "always below", a: []float64{0, 0, 0}, b: []float64{1, 1, 1}, i: 2, ok: true},
		{name: "never", a: []float64{2, 2, 2}, b: []float64{1, 1, 1}, i: 0, ok: false},
		{name: "empty", ok: false},
	} {
		t.Run(test.name, func(t *testing.T) {
			i, ok := LastCrossing(test.a, test.b)
			if i != test.i || ok != test.ok {
				t.Errorf("have (%d, %v), want (%d, %v)", i, ok, test.i, test.ok)
			}
		})
	}
}
