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

package pourbaixutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/zabat/pourbaix"
)

// Feature is a GeoJSON feature with the pH on the X axis and the
// potential [V vs. SHE] on the Y axis.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection holds every element of a diagram.
type FeatureCollection struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Features   []*Feature             `json:"features"`
}

func newFeature(g geom.Geom, kind, label string, props map[string]interface{}) (*Feature, error) {
	gj, err := geojson.ToGeoJSON(g)
	if err != nil {
		return nil, fmt.Errorf("pourbaix: encoding %s %s: %v", kind, label, err)
	}
	if props == nil {
		props = make(map[string]interface{})
	}
	props["kind"] = kind
	props["label"] = label
	return &Feature{Type: "Feature", Geometry: gj, Properties: props}, nil
}

// closeRing returns a copy of r whose last point equals its first.
func closeRing(r []geom.Point) []geom.Point {
	o := append([]geom.Point{}, r...)
	if len(o) > 0 && o[0] != o[len(o)-1] {
		o = append(o, o[0])
	}
	return o
}

// NewFeatureCollection converts d to a GeoJSON feature collection of domain
// polygons, boundary lines, and water lines.
func NewFeatureCollection(d *pourbaix.Diagram) (*FeatureCollection, error) {
	fc := &FeatureCollection{
		Type: "FeatureCollection",
		Properties: map[string]interface{}{
			"temperature_C": d.Celsius(),
			"pZn":           d.PZn,
			"approximation": d.Approximation.String(),
			"solid":         d.Solid.String(),
			"regime":        d.Regime.String(),
			"pKw":           d.PKw,
			"neutral_pH":    d.NeutralPH,
		},
	}
	add := func(g geom.Geom, kind, label string, props map[string]interface{}) error {
		f, err := newFeature(g, kind, label, props)
		if err != nil {
			return err
		}
		fc.Features = append(fc.Features, f)
		return nil
	}
	for _, dom := range d.Domains {
		poly := make(geom.Polygon, len(dom.Polygon))
		for i, r := range dom.Polygon {
			poly[i] = closeRing(r)
		}
		if err := add(poly, "domain", dom.Label, map[string]interface{}{
			"species": dom.Species.String(),
			"area":    dom.Area(),
		}); err != nil {
			return nil, err
		}
	}
	for _, l := range d.Lines {
		if err := add(l.Points, "boundary", l.Label, map[string]interface{}{"reaction": l.Reaction.String()}); err != nil {
			return nil, err
		}
	}
	for _, v := range append(append([]pourbaix.Vertical{}, d.Verticals...), d.Neutral) {
		ls := geom.LineString{{X: v.PH, Y: v.EMin}, {X: v.PH, Y: v.EMax}}
		kind := "boundary"
		if v.Reaction == pourbaix.RxnW {
			kind = "neutral"
		}
		if err := add(ls, kind, v.Label, map[string]interface{}{"reaction": v.Reaction.String(), "pH": v.PH}); err != nil {
			return nil, err
		}
	}
	for _, l := range []pourbaix.Line{d.HER, d.OER} {
		if err := add(l.Points, "water", l.Label, map[string]interface{}{"reaction": l.Reaction.String()}); err != nil {
			return nil, err
		}
	}
	return fc, nil
}

// WriteGeoJSON writes d to w as a GeoJSON feature collection.
func WriteGeoJSON(w io.Writer, d *pourbaix.Diagram) error {
	fc, err := NewFeatureCollection(d)
	if err != nil {
		return err
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(fc); err != nil {
		return fmt.Errorf("pourbaix: writing GeoJSON: %v", err)
	}
	return nil
}

func writeGeoJSONFile(file string, d *pourbaix.Diagram) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("pourbaix: creating output file: %v", err)
	}
	if err := WriteGeoJSON(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Log.WithField("file", file).Info("wrote diagram")
	return nil
}
