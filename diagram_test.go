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
	"errors"
	"math"
	"testing"

	"github.com/kr/pretty"
)

func testDiagram(t *testing.T, tc, pZn float64, s Solid) *Diagram {
	c, err := NewConditions(Celsius(tc), pZn)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Solid = s
	d, err := New(cfg, c)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

type diagramSummary struct {
	Regime    Regime
	Lines     []ReactionID
	Verticals []ReactionID
	Domains   []Species
}

func summarize(d *Diagram) diagramSummary {
	s := diagramSummary{Regime: d.Regime}
	for _, l := range d.Lines {
		s.Lines = append(s.Lines, l.Reaction)
	}
	for _, v := range d.Verticals {
		s.Verticals = append(s.Verticals, v.Reaction)
	}
	for _, dom := range d.Domains {
		s.Domains = append(s.Domains, dom.Species)
	}
	return s
}

func TestDiagramRegimes(t *testing.T) {
	for _, test := range []struct {
		name    string
		tc, pZn float64
		solid   Solid
		want    diagramSummary
	}{
		{
			name: "oxide passive", tc: 25, pZn: 3, solid: ZincOxide,
			want: diagramSummary{
				Regime:    OxidePassive,
				Lines:     []ReactionID{RxnI, RxnIIIOx, RxnV},
				Verticals: []ReactionID{RxnVIIIOx, RxnXIOx},
				Domains:   []Species{ZnIon, ZnO, ZnOH4, Zn},
			},
		},
		{
			name: "hydroxo passive", tc: 25, pZn: 5, solid: ZincOxide,
			want: diagramSummary{
				Regime:    HydroxoPassive,
				Lines:     []ReactionID{RxnI, RxnIIIOx, RxnIV, RxnV},
				Verticals: []ReactionID{RxnVIIIOx, RxnIXOx, RxnX},
				Domains:   []Species{ZnIon, ZnO, ZnOH3, ZnOH4, Zn},
			},
		},
		{
			name: "soluble hydroxide", tc: 25, pZn: 6, solid: ZincOxide,
			want: diagramSummary{
				Regime:    SolubleHydroxide,
				Lines:     []ReactionID{RxnI, RxnIIIAq, RxnIV, RxnV},
				Verticals: []ReactionID{RxnVIIIAq, RxnIXAq, RxnX},
				Domains:   []Species{ZnIon, ZnOH2Aq, ZnOH3, ZnOH4, Zn},
			},
		},
		{
			name: "epsilon passive", tc: 25, pZn: 3, solid: EpsilonHydroxide,
			want: diagramSummary{
				Regime:    OxidePassive,
				Lines:     []ReactionID{RxnI, RxnIIIEps, RxnV},
				Verticals: []ReactionID{RxnVIIIEps, RxnXIEps},
				Domains:   []Species{ZnIon, ZnOH2Eps, ZnOH4, Zn},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			have := summarize(testDiagram(t, test.tc, test.pZn, test.solid))
			if diff := pretty.Diff(have, test.want); len(diff) > 0 {
				t.Errorf("%v", diff)
			}
		})
	}
}

func TestDiagramGeometry(t *testing.T) {
	d := testDiagram(t, 25, 3, ZincOxide)
	if len(d.HER.Points) != 1600 || len(d.OER.Points) != 1600 {
		t.Errorf("water lines have %d and %d points", len(d.HER.Points), len(d.OER.Points))
	}
	// Consecutive lines share their end points.
	for i := 1; i < len(d.Lines); i++ {
		prev := d.Lines[i-1].Points
		if prev[len(prev)-1].X != d.Lines[i].Points[0].X {
			t.Errorf("line %d starts at pH %g but line %d ends at pH %g", i,
				d.Lines[i].Points[0].X, i-1, prev[len(prev)-1].X)
		}
	}
	if absDifferent(d.Lines[0].Points[0].Y, -0.85157, 1.e-5) {
		t.Errorf("E_I(pH 0): have %g, want -0.85157", d.Lines[0].Points[0].Y)
	}
	if absDifferent(d.Verticals[0].PH, 7.0907, 1.e-3) {
		t.Errorf("VIII pH: have %g", d.Verticals[0].PH)
	}
	if d.Lines[0].Label != "Zn^2+ - Zn(s)" {
		t.Errorf("label: %s", d.Lines[0].Label)
	}
	// E_V(pH 15.99) is below EMin, so the metal domain has no extra corner.
	if n := len(d.Domains[3].Polygon[0]); n != 5 {
		t.Errorf("metal domain has %d vertices, want 5", n)
	}
	d0 := testDiagram(t, 25, 0, ZincOxide)
	if n := len(d0.Domains[3].Polygon[0]); n != 6 {
		t.Errorf("metal domain has %d vertices, want 6", n)
	}
	for _, dom := range d.Domains {
		if dom.Area() <= 0 {
			t.Errorf("%s has area %g", dom.Label, dom.Area())
		}
	}
	if absDifferent(d.Neutral.PH, 7, 0.05) {
		t.Errorf("neutral pH: %g", d.Neutral.PH)
	}
}

func TestStableAt(t *testing.T) {
	for _, test := range []struct {
		tc, pZn float64
		ph, e   float64
		want    Species
	}{
		{25, 0, 2, 0, ZnIon},
		{25, 0, 9, 0, ZnO},
		{25, 0, 15.5, 0, ZnOH4},
		{25, 0, 7, -1.4, Zn},
		{25, 0, 15.9, -1.45, Zn},
		{25, 3, 1, -1, Zn},
		{25, 3, 12.5, 0, ZnO},
		{25, 3, 15.9, -1.45, ZnOH4},
		{25, 5, 12.5, 0, ZnOH3},
		{25, 5, 13, 0.5, ZnOH4},
		{25, 6, 9, 0, ZnOH2Aq},
		{25, 6, 12.5, 0, ZnOH3},
		{100, 4, 9, 0, ZnO},
		{100, 4, 12.5, 0, ZnOH4},
	} {
		d := testDiagram(t, test.tc, test.pZn, ZincOxide)
		s, ok := d.StableAt(test.ph, test.e)
		if !ok || s != test.want {
			t.Errorf("T=%g °C, pZn=%g, (%g, %g): have %s (%v), want %s",
				test.tc, test.pZn, test.ph, test.e, s, ok, test.want)
		}
	}
	d := testDiagram(t, 25, 0, ZincOxide)
	if _, ok := d.StableAt(20, 0); ok {
		t.Error("point outside the diagram should not be stable anywhere")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(DefaultConfig(), Conditions{T: 200, PZn: 0}); err == nil {
		t.Error("expected a domain error")
	}
	cfg := DefaultConfig()
	cfg.Grid.PHStep = 0
	if _, err := New(cfg, Conditions{T: TRef, PZn: 0}); err == nil {
		t.Error("expected a grid error")
	}
}

func TestGridPH(t *testing.T) {
	ph := DefaultGrid.PH()
	if len(ph) != 1600 {
		t.Fatalf("have %d points, want 1600", len(ph))
	}
	if absDifferent(ph[len(ph)-1], 15.99, 1.e-9) {
		t.Errorf("last pH: %g", ph[len(ph)-1])
	}
}

func TestGridCheck(t *testing.T) {
	for _, g := range []Grid{
		{PHMin: 0, PHMax: 16, PHStep: 40, EMin: -1.5, EMax: 1.5},
		{PHMin: 0, PHMax: 16, PHStep: 0, EMin: -1.5, EMax: 1.5},
		{PHMin: 7, PHMax: 7, PHStep: 0.01, EMin: -1.5, EMax: 1.5},
		{PHMin: math.NaN(), PHMax: 16, PHStep: 0.01, EMin: -1.5, EMax: 1.5},
		{PHMin: 0, PHMax: math.Inf(1), PHStep: 0.01, EMin: -1.5, EMax: 1.5},
		{PHMin: 0, PHMax: 16, PHStep: 0.01, EMin: -1.5, EMax: math.NaN()},
		{PHMin: 0, PHMax: 16, PHStep: 0.01, EMin: 1.5, EMax: -1.5},
	} {
		if err := g.Check(); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("%+v: have %v, want a domain error", g, err)
		}
		cfg := DefaultConfig()
		cfg.Grid = g
		if _, err := New(cfg, Conditions{T: TRef, PZn: 0}); err == nil {
			t.Errorf("%+v: New accepted the grid", g)
		}
	}
	one := Grid{PHMin: 0, PHMax: 16, PHStep: 16, EMin: -1.5, EMax: 1.5}
	if err := one.Check(); err != nil {
		t.Errorf("single step grid: %v", err)
	}
	if n := len(one.PH()); n != 1 {
		t.Errorf("single step grid has %d samples", n)
	}
}

// Above pH 13 the Zn^2+ curve never falls below the ZnO curve, so Zn^2+
// has no domain and ZnO reaches the left edge of the window.
func TestDiagramNarrowWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = Grid{PHMin: 13, PHMax: 16, PHStep: 0.01, EMin: -1.5, EMax: 1.5}
	c, err := NewConditions(Celsius(25), 0)
	if err != nil {
		t.Fatal(err)
	}
	d, err := New(cfg, c)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range d.Lines {
		if l.Reaction == RxnI {
			t.Errorf("Zn^2+ line present: %# v", pretty.Formatter(l.Points[:2]))
		}
	}
	if len(d.Verticals) != 1 || d.Verticals[0].Reaction != RxnXIOx {
		t.Fatalf("verticals: %# v", pretty.Formatter(d.Verticals))
	}
	v := d.Verticals[0]
	if absDifferent(v.PH, 14.9954, 1.e-3) {
		t.Errorf("XI-ox pH: have %g", v.PH)
	}
	for _, dom := range d.Domains {
		switch dom.Species {
		case ZnIon:
			if a := dom.Polygon.Area(); absDifferent(a, 0, 1.e-9) {
				t.Errorf("Zn^2+ domain area: have %g, want 0", a)
			}
		case Zn:
			ring := dom.Polygon[0]
			for _, p := range ring {
				if p.Y > -1 {
					t.Errorf("metal vertex %v is above the ZnO line", p)
				}
			}
			p := ring[len(ring)-1]
			if p.X != 13 || absDifferent(p.Y, -1.2012, 1.e-3) {
				t.Errorf("metal left vertex: have %v, want (13, -1.2012)", p)
			}
		}
	}
	for _, test := range []struct {
		ph, e float64
		want  Species
	}{
		{13.5, -1, ZnO},
		{15.5, 0, ZnOH4},
		{13.5, -1.4, Zn},
	} {
		if s, ok := d.StableAt(test.ph, test.e); !ok || s != test.want {
			t.Errorf("(%g, %g): have %s (%v), want %s", test.ph, test.e, s, ok, test.want)
		}
	}
}
