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

func TestSelectRegime(t *testing.T) {
	const hydroxo, passivation, eps = 4.4, 5.7, 1.e-9
	for _, test := range []struct {
		pZn  float64
		want Regime
	}{
		{0, OxidePassive},
		{hydroxo - eps, OxidePassive},
		{hydroxo, HydroxoPassive},
		{hydroxo + eps, HydroxoPassive},
		{passivation - eps, HydroxoPassive},
		{passivation, SolubleHydroxide},
		{8, SolubleHydroxide},
	} {
		if r := SelectRegime(test.pZn, hydroxo, passivation); r != test.want {
			t.Errorf("pZn=%g: have %s, want %s", test.pZn, r, test.want)
		}
	}
}

func TestSelectRegimeMonotone(t *testing.T) {
	for _, th := range [][2]float64{{4.4, 5.7}, {5.7, 4.4}} {
		prev := OxidePassive
		for pZn := 0.; pZn <= 8; pZn += 0.01 {
			r := SelectRegime(pZn, th[0], th[1])
			if r < prev {
				t.Fatalf("thresholds %v: regime decreased at pZn=%g", th, pZn)
			}
			prev = r
		}
	}
}

func TestParseSolid(t *testing.T) {
	for _, s := range []Solid{ZincOxide, EpsilonHydroxide} {
		s2, err := ParseSolid(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if s2 != s {
			t.Errorf("have %s, want %s", s2, s)
		}
	}
	if _, err := ParseSolid("aq"); err == nil {
		t.Error("expected an error")
	}
}

func TestLayout(t *testing.T) {
	for _, s := range []Solid{ZincOxide, EpsilonHydroxide} {
		for _, r := range []Regime{OxidePassive, HydroxoPassive, SolubleHydroxide} {
			l := r.layout(s)
			if len(l.verticals) != len(l.chain)-1 || len(l.domains) != len(l.chain) {
				t.Errorf("%s/%s: inconsistent layout", r, s)
			}
		}
	}
}
