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

	"github.com/ctessum/geom"
)

// Grid is the pH sampling and potential window of a diagram.
type Grid struct {
	PHMin, PHMax, PHStep float64
	EMin, EMax           float64 // [V vs. SHE]
}

// DefaultGrid spans pH 0 to 16 in steps of 0.01 and -1.5 to 1.5 V.
var DefaultGrid = Grid{PHMin: 0, PHMax: 16, PHStep: 0.01, EMin: -1.5, EMax: 1.5}

// Check returns an error if g cannot be sampled. The pH range must hold
// at least one step.
func (g Grid) Check() error {
	for _, b := range []struct {
		name string
		v    float64
	}{
		{"grid PHMin", g.PHMin}, {"grid PHMax", g.PHMax}, {"grid PHStep", g.PHStep},
		{"grid EMin", g.EMin}, {"grid EMax", g.EMax},
	} {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return &DomainError{Name: b.name, Value: b.v, Min: math.Inf(-1), Max: math.Inf(1)}
		}
	}
	if !(g.PHMax > g.PHMin) {
		return &DomainError{Name: "grid PHMax", Value: g.PHMax, Min: g.PHMin, Max: math.Inf(1)}
	}
	if !(g.PHStep > 0) || (g.PHMax-g.PHMin)/g.PHStep < 1 {
		return &DomainError{Name: "grid PHStep", Value: g.PHStep, Min: 0, Max: g.PHMax - g.PHMin}
	}
	if !(g.EMax > g.EMin) {
		return &DomainError{Name: "grid EMax", Value: g.EMax, Min: g.EMin, Max: math.Inf(1), Units: " V"}
	}
	return nil
}

// PH returns the pH samples PHMin, PHMin+PHStep, ... below PHMax.
func (g Grid) PH() []float64 {
	n := int(math.Round((g.PHMax - g.PHMin) / g.PHStep))
	ph := make([]float64, n)
	for i := range ph {
		ph[i] = g.PHMin + float64(i)*g.PHStep
	}
	return ph
}

func (g Grid) clampPH(ph float64) float64 {
	return math.Max(g.PHMin, math.Min(g.PHMax, ph))
}

// Line is an electrochemical boundary.
type Line struct {
	Label    string
	Reaction ReactionID
	Points   geom.LineString
}

// Vertical is a chemical (pH) boundary running from EMin up to EMax.
type Vertical struct {
	Label      string
	Reaction   ReactionID
	PH         float64
	EMin, EMax float64
}

// Domain is the region in which Species is the stable form of zinc.
type Domain struct {
	Label   string
	Species Species
	Polygon geom.Polygon
}

// Area returns the area of the domain in pH·V.
func (d Domain) Area() float64 { return d.Polygon.Area() }

// Centroid returns the centroid of the domain.
func (d Domain) Centroid() geom.Point { return d.Polygon.Centroid() }

// Diagram is a potential-pH stability diagram.
type Diagram struct {
	Conditions
	Approximation Approximation
	Solid         Solid
	Regime        Regime
	Thresholds    Thresholds
	PKw           float64
	NeutralPH     float64
	Grid          Grid

	Lines     []Line
	Verticals []Vertical
	Domains   []Domain

	// HER and OER are the water stability lines.
	HER, OER Line
	Neutral  Vertical
}

// Config holds the settings of a diagram calculation.
type Config struct {
	// Table holds formation data. DefaultTable is used if it is nil.
	Table *Table

	Approximation Approximation
	Solid         Solid
	Grid          Grid
}

// DefaultConfig returns the default diagram settings.
func DefaultConfig() Config {
	return Config{
		Approximation: HeatCapacity,
		Solid:         ZincOxide,
		Grid:          DefaultGrid,
	}
}

// New calculates the stability diagram at conditions c.
func New(cfg Config, c Conditions) (*Diagram, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	if err := cfg.Grid.Check(); err != nil {
		return nil, err
	}
	tbl := cfg.Table
	if tbl == nil {
		tbl = DefaultTable()
	}
	calc := NewCalculator(Aggregate(tbl), cfg.Approximation, c)
	th := calc.Thresholds()
	d := &Diagram{
		Conditions:    c,
		Approximation: cfg.Approximation,
		Solid:         cfg.Solid,
		Regime:        SelectRegime(c.PZn, th.Hydroxo(cfg.Solid), th.Passivation(cfg.Solid)),
		Thresholds:    th,
		PKw:           calc.PKw(),
		NeutralPH:     calc.NeutralPH(),
		Grid:          cfg.Grid,
	}
	d.assemble(calc, d.Regime.layout(cfg.Solid))
	return d, nil
}

func (d *Diagram) assemble(calc *Calculator, lay layout) {
	g := d.Grid
	ph := g.PH()
	last := len(ph) - 1
	k := len(lay.chain) - 1

	curves := make([][]float64, len(lay.chain))
	for j, id := range lay.chain {
		curves[j] = calc.PotentialCurve(id, ph)
	}

	// Crossing indices are kept non-decreasing so that a domain that
	// vanishes collapses to a point rather than reversing. A pair of
	// curves that never cross in the window means the lower-pH domain is
	// absent, so its neighbour extends to the window edge.
	idx := make([]int, k)
	absent := make([]bool, k)
	for j := 0; j < k; j++ {
		i, ok := LastCrossing(curves[j], curves[j+1])
		if !ok {
			i = 0
			absent[j] = true
		}
		if j > 0 && i < idx[j-1] {
			i = idx[j-1]
		}
		idx[j] = i
	}
	vph := make([]float64, k)
	xs := make([]float64, k) // vertex pH of each vertical
	ys := make([]float64, k) // vertex potential of each vertical
	for j, id := range lay.verticals {
		vph[j] = calc.BoundaryPH(id)
		xs[j] = g.clampPH(vph[j])
		ys[j] = curves[j][idx[j]]
		if absent[j] {
			xs[j] = ph[idx[j]]
			ys[j] = curves[j+1][idx[j]]
		}
		if j > 0 && xs[j] < xs[j-1] {
			xs[j] = xs[j-1]
		}
	}
	for j := k - 2; j >= 0; j-- {
		if absent[j] && absent[j+1] && idx[j] == idx[j+1] {
			ys[j] = ys[j+1]
		}
	}

	// Adjacent pieces share the sample at the crossing index.
	for j, id := range lay.chain {
		if j < k && absent[j] {
			continue
		}
		start, end := 0, last
		if j > 0 {
			start = idx[j-1]
		}
		if j < k {
			end = idx[j]
		}
		pts := make(geom.LineString, 0, end-start+1)
		for i := start; i <= end; i++ {
			pts = append(pts, geom.Point{X: ph[i], Y: curves[j][i]})
		}
		d.Lines = append(d.Lines, Line{
			Label:    lay.domains[j].String() + " - " + Zn.String(),
			Reaction: id,
			Points:   pts,
		})
	}

	for j, id := range lay.verticals {
		if absent[j] || vph[j] < g.PHMin || vph[j] > g.PHMax {
			continue
		}
		d.Verticals = append(d.Verticals, Vertical{
			Label:    lay.domains[j].String() + " - " + lay.domains[j+1].String(),
			Reaction: id,
			PH:       vph[j],
			EMin:     ys[j],
			EMax:     g.EMax,
		})
	}

	// first is the chain curve that bounds the metal at PHMin.
	first := 0
	for first < k && absent[first] && idx[first] == 0 {
		first++
	}
	for j, sp := range lay.domains {
		left := geom.Point{X: g.PHMin, Y: curves[0][0]}
		if j > 0 {
			left = geom.Point{X: xs[j-1], Y: curves[j][idx[j-1]]}
		}
		right := geom.Point{X: g.PHMax, Y: curves[k][last]}
		if j < k {
			right = geom.Point{X: xs[j], Y: ys[j]}
		}
		d.Domains = append(d.Domains, Domain{
			Label:   sp.String(),
			Species: sp,
			Polygon: geom.Polygon{[]geom.Point{
				left, right,
				{X: right.X, Y: g.EMax},
				{X: left.X, Y: g.EMax},
			}},
		})
	}

	metal := []geom.Point{{X: g.PHMin, Y: g.EMin}}
	if curves[k][last] > g.EMin {
		metal = append(metal, geom.Point{X: g.PHMax, Y: g.EMin})
	}
	metal = append(metal, geom.Point{X: g.PHMax, Y: curves[k][last]})
	for j := k - 1; j >= 0; j-- {
		metal = appendDistinct(metal, geom.Point{X: xs[j], Y: ys[j]})
	}
	metal = appendDistinct(metal, geom.Point{X: g.PHMin, Y: curves[first][0]})
	d.Domains = append(d.Domains, Domain{
		Label:   Zn.String(),
		Species: Zn,
		Polygon: geom.Polygon{metal},
	})

	d.HER = waterLine(calc, RxnHER, ph)
	d.OER = waterLine(calc, RxnOER, ph)
	d.Neutral = Vertical{
		Label:    "neutral",
		Reaction: RxnW,
		PH:       d.NeutralPH,
		EMin:     g.EMin,
		EMax:     g.EMax,
	}
}

// appendDistinct appends p unless it repeats the last point.
func appendDistinct(pts []geom.Point, p geom.Point) []geom.Point {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}

func waterLine(calc *Calculator, id ReactionID, ph []float64) Line {
	pts := make(geom.LineString, len(ph))
	for i, p := range ph {
		pts[i] = geom.Point{X: p, Y: calc.Potential(id, p)}
	}
	return Line{Label: id.String(), Reaction: id, Points: pts}
}

// StableAt returns the stable zinc species at the given pH and potential.
// ok is false if the point is outside every domain.
func (d *Diagram) StableAt(pH, e float64) (s Species, ok bool) {
	p := geom.Point{X: pH, Y: e}
	for _, dom := range d.Domains {
		if p.Within(dom.Polygon) != geom.Outside {
			return dom.Species, true
		}
	}
	return -1, false
}
