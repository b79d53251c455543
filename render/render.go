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

// Package render draws potential-pH diagrams and speciation profiles.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/ctessum/geom"
	"github.com/zabat/pourbaix"
	"github.com/zabat/pourbaix/speciation"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure dimensions.
const (
	Width  = 7 * vg.Inch
	Height = 6 * vg.Inch
)

func pointsXY(pts []geom.Point) plotter.XYs {
	o := make(plotter.XYs, len(pts))
	for i, p := range pts {
		o[i].X, o[i].Y = p.X, p.Y
	}
	return o
}

// Diagram plots the stability domains, boundaries and water lines of d.
func Diagram(d *pourbaix.Diagram) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("Zn-H2O, %s (%s)", d.Conditions, d.Regime)
	p.X.Label.Text = "pH"
	p.Y.Label.Text = "E (V vs. SHE)"
	p.X.Min, p.X.Max = d.Grid.PHMin, d.Grid.PHMax
	p.Y.Min, p.Y.Max = d.Grid.EMin, d.Grid.EMax

	for i, dom := range d.Domains {
		poly, err := plotter.NewPolygon(pointsXY(dom.Polygon[0]))
		if err != nil {
			return nil, fmt.Errorf("render: domain %s: %v", dom.Label, err)
		}
		poly.Color = lighten(plotutil.Color(i))
		poly.LineStyle.Width = 0
		p.Add(poly)
		p.Legend.Add(dom.Label, poly)
	}
	for _, l := range d.Lines {
		line, err := plotter.NewLine(pointsXY(l.Points))
		if err != nil {
			return nil, fmt.Errorf("render: line %s: %v", l.Label, err)
		}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}
	for _, v := range append(append([]pourbaix.Vertical{}, d.Verticals...), d.Neutral) {
		line, err := plotter.NewLine(plotter.XYs{{X: v.PH, Y: v.EMin}, {X: v.PH, Y: v.EMax}})
		if err != nil {
			return nil, fmt.Errorf("render: vertical %s: %v", v.Label, err)
		}
		line.LineStyle.Width = vg.Points(2)
		if v.Reaction == pourbaix.RxnW {
			line.LineStyle.Width = vg.Points(1)
			line.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		}
		p.Add(line)
	}
	for _, l := range []pourbaix.Line{d.HER, d.OER} {
		line, err := plotter.NewLine(pointsXY(l.Points))
		if err != nil {
			return nil, fmt.Errorf("render: line %s: %v", l.Label, err)
		}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)
		p.Legend.Add(l.Label, line)
	}
	return p, nil
}

// Profile plots the concentrations of the species with the given keys
// on a logarithmic axis. All species are plotted if keys is empty.
// Samples that did not converge or have zero concentration are skipped.
func Profile(prof *speciation.Profile, keys []string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%s system speciation", prof.System.Name)
	p.X.Label.Text = "pH"
	p.Y.Label.Text = "Concentration (mol/L)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	if len(keys) == 0 {
		keys = prof.Keys
	}
	for i, k := range keys {
		row, err := prof.Row(k)
		if err != nil {
			return nil, fmt.Errorf("render: %v", err)
		}
		var xy plotter.XYs
		for j, c := range row {
			if c > 0 && !math.IsInf(c, 0) {
				xy = append(xy, plotter.XYs{{X: prof.PH[j], Y: c}}...)
			}
		}
		if len(xy) == 0 {
			continue
		}
		line, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("render: %s: %v", k, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		line.Width = vg.Points(2)
		p.Add(line)
		idx, _ := prof.System.Index(k)
		p.Legend.Add(prof.System.Species[idx].Label, line)
	}
	return p, nil
}

// Save writes p to a file whose format is given by its extension, e.g.
// ".png" or ".svg".
func Save(p *plot.Plot, file string) error {
	return p.Save(Width, Height, file)
}

// Write writes p to w in the given format, e.g. "png".
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// lighten blends c with two parts white.
func lighten(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	f := func(v uint32) uint8 { return uint8((v>>8)/3 + 2*255/3) }
	return color.RGBA{R: f(r), G: f(g), B: f(b), A: 255}
}
