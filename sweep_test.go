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
	"context"
	"testing"
)

func TestSweeper(t *testing.T) {
	s := NewSweeper(DefaultConfig())
	temps := []float64{25, 100}
	pZns := []float64{0, 5, 6}
	ds, err := s.Diagrams(context.Background(), temps, pZns)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 6 {
		t.Fatalf("have %d diagrams, want 6", len(ds))
	}
	for i, tc := range temps {
		for j, pZn := range pZns {
			d := ds[i*len(pZns)+j]
			if absDifferent(d.Celsius(), tc, 1.e-9) || d.PZn != pZn {
				t.Errorf("diagram %d,%d has %s", i, j, d.Conditions)
			}
		}
	}
	d, err := s.Diagram(context.Background(), 25, 5)
	if err != nil {
		t.Fatal(err)
	}
	if d != ds[1] {
		t.Error("repeated request should be served from the cache")
	}
	if d.Regime != HydroxoPassive {
		t.Errorf("regime: have %s", d.Regime)
	}
}

func TestSweeperDomainError(t *testing.T) {
	s := NewSweeper(DefaultConfig())
	if _, err := s.Diagrams(context.Background(), []float64{25}, []float64{9}); err == nil {
		t.Error("expected an error")
	}
}

func TestSweeperTableKey(t *testing.T) {
	s := NewSweeper(DefaultConfig())
	d1, err := s.Diagram(context.Background(), 25, 0)
	if err != nil {
		t.Fatal(err)
	}
	tbl := DefaultTable()
	tbl[ZnO].G -= 5.e3
	s.Config.Table = tbl
	d2, err := s.Diagram(context.Background(), 25, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatal("a different table was served from the cache")
	}
	if !(d2.Verticals[0].PH < d1.Verticals[0].PH) {
		t.Errorf("a more stable ZnO should lower the Zn^2+/ZnO pH: have %g and %g",
			d1.Verticals[0].PH, d2.Verticals[0].PH)
	}
	s.Config.Table = DefaultTable()
	d3, err := s.Diagram(context.Background(), 25, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d3 != d1 {
		t.Error("an equal table should share the cached diagram")
	}
}
