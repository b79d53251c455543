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

import (
	"math"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	if math.Abs(a-b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestDefaultTableCopy(t *testing.T) {
	tbl := DefaultTable()
	tbl[ZnO] = Formation{G: 1}
	if DefaultTable().Formation(ZnO).G != -320.479e3 {
		t.Error("modifying a copy changed the default table")
	}
}

func TestHess(t *testing.T) {
	set := Aggregate(DefaultTable())
	for _, test := range []struct {
		id ReactionID
		g  float64
	}{
		{id: RxnX, g: -6870},
		{id: RxnIXOx, g: 18259},
		{id: RxnVIIIOx, g: -95976},
		{id: RxnXII, g: 32559},
		{id: RxnW, g: 79900},
		{id: RxnHER, g: 0},
		{id: RxnI, g: 147203},
	} {
		t.Run(test.id.String(), func(t *testing.T) {
			th := set.Thermo(test.id)
			if absDifferent(th.G, test.g, 1.e-6) {
				t.Errorf("ΔG: have %g, want %g", th.G, test.g)
			}
			if absDifferent(th.H, th.G+TRef*th.S, 1.e-9) {
				t.Errorf("ΔH = %g is not ΔG + TΔS", th.H)
			}
		})
	}
}

func TestHessHeatCapacity(t *testing.T) {
	// ZnO + H2O + OH- = Zn(OH)3^-
	th := RxnIXOx.Reaction().Hess(DefaultTable())
	want := [3]float64{94 - 45.338 - 75 + 149, -7.289e-3, 0.573e6}
	for i := range want {
		if absDifferent(th.Cp[i], want[i], 1.e-9) {
			t.Errorf("ΔCp[%d]: have %g, want %g", i, th.Cp[i], want[i])
		}
	}
}

func TestStoichiometry(t *testing.T) {
	for _, test := range []struct {
		id                 ReactionID
		protons, hydroxide float64
		zinc               float64
		electrochemical    bool
	}{
		{id: RxnI, zinc: 1, electrochemical: true},
		{id: RxnII, protons: 1, zinc: 1, electrochemical: true},
		{id: RxnIIIOx, protons: 2, electrochemical: true},
		{id: RxnIIIAq, protons: 2, zinc: 1, electrochemical: true},
		{id: RxnV, protons: 4, zinc: 1, electrochemical: true},
		{id: RxnVIIIOx, hydroxide: 2, zinc: 1},
		{id: RxnVIIIAq, hydroxide: 2},
		{id: RxnIXOx, hydroxide: 1, zinc: -1},
		{id: RxnX, hydroxide: 1},
		{id: RxnXII, zinc: -1},
		{id: RxnHER, protons: 4, electrochemical: true},
	} {
		t.Run(test.id.String(), func(t *testing.T) {
			r := test.id.Reaction()
			if r.Protons() != test.protons {
				t.Errorf("protons: have %g, want %g", r.Protons(), test.protons)
			}
			if r.Hydroxides() != test.hydroxide {
				t.Errorf("hydroxides: have %g, want %g", r.Hydroxides(), test.hydroxide)
			}
			if r.DissolvedZinc() != test.zinc {
				t.Errorf("dissolved zinc: have %g, want %g", r.DissolvedZinc(), test.zinc)
			}
			if r.Electrochemical() != test.electrochemical {
				t.Errorf("electrochemical: have %v", r.Electrochemical())
			}
		})
	}
}

func TestParseReaction(t *testing.T) {
	for i := ReactionID(0); i < numReactions; i++ {
		id, err := ParseReaction(i.String())
		if err != nil {
			t.Fatal(err)
		}
		if id != i {
			t.Errorf("%s: have %d, want %d", i, id, i)
		}
	}
	if _, err := ParseReaction("XIII"); err == nil {
		t.Error("expected an error for an unknown reaction")
	}
}
