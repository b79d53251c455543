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
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tealeg/xlsx"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "pourbaixutil")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func execute(t *testing.T, args ...string) string {
	b := new(bytes.Buffer)
	Root.SetOutput(b)
	defer Root.SetOutput(nil)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, "pourbaix v") {
		t.Errorf("version output: %q", out)
	}
}

func TestDiagramCmd(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	for _, test := range []struct {
		pZn      float64
		regime   string
		features int
	}{
		{pZn: 3, regime: "OxidePassive", features: 12},
		{pZn: 5, regime: "HydroxoPassive", features: 15},
	} {
		t.Run(test.regime, func(t *testing.T) {
			out := filepath.Join(dir, "diagram.geojson")
			Cfg.Set("Temperature", 25.0)
			Cfg.Set("PZn", test.pZn)
			Cfg.Set("OutputFile", out)
			Cfg.Set("PlotFile", filepath.Join(dir, "diagram.png"))
			defer Cfg.Set("PlotFile", "")
			execute(t, "diagram")

			b, err := ioutil.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			var fc struct {
				Type       string                 `json:"type"`
				Properties map[string]interface{} `json:"properties"`
				Features   []struct {
					Type     string `json:"type"`
					Geometry struct {
						Type string `json:"type"`
					} `json:"geometry"`
					Properties map[string]interface{} `json:"properties"`
				} `json:"features"`
			}
			if err := json.Unmarshal(b, &fc); err != nil {
				t.Fatal(err)
			}
			if fc.Type != "FeatureCollection" {
				t.Errorf("type: %s", fc.Type)
			}
			if r := fc.Properties["regime"]; r != test.regime {
				t.Errorf("regime: have %v, want %s", r, test.regime)
			}
			if len(fc.Features) != test.features {
				t.Errorf("have %d features, want %d", len(fc.Features), test.features)
			}
			for _, f := range fc.Features {
				want := "LineString"
				if f.Properties["kind"] == "domain" {
					want = "Polygon"
				}
				if f.Geometry.Type != want {
					t.Errorf("%v: geometry %s, want %s", f.Properties["label"], f.Geometry.Type, want)
				}
			}
			if fi, err := os.Stat(filepath.Join(dir, "diagram.png")); err != nil || fi.Size() == 0 {
				t.Errorf("plot not written: %v", err)
			}
		})
	}
}

func TestDiagramCmdOutOfDomain(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	Cfg.Set("PZn", 9.0)
	defer Cfg.Set("PZn", 0.0)
	Cfg.Set("OutputFile", filepath.Join(dir, "diagram.geojson"))
	Root.SetOutput(ioutil.Discard)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"diagram"})
	err := Root.Execute()
	if err == nil || !strings.Contains(err.Error(), "pZn=9") {
		t.Errorf("expected pZn domain error, got %v", err)
	}
}

func TestSweepCmd(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	Cfg.Set("Temperatures", []string{"25"})
	Cfg.Set("PZns", []string{"0", "5"})
	Cfg.Set("OutputFile", filepath.Join(dir, "sweep.geojson"))
	out := execute(t, "sweep")

	for _, f := range []string{"sweep_T25_pZn0.geojson", "sweep_T25_pZn5.geojson"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
	for _, s := range []string{"OxidePassive", "HydroxoPassive"} {
		if !strings.Contains(out, s) {
			t.Errorf("summary is missing %s:\n%s", s, out)
		}
	}
}

func TestThresholdsCmd(t *testing.T) {
	Cfg.Set("Temperature", 25.0)
	Cfg.Set("PZn", 0.0)
	out := execute(t, "thresholds")
	for _, s := range []string{"13.9978", "4.4024", "5.7041", "-0.76283", "OxidePassive"} {
		if !strings.Contains(out, s) {
			t.Errorf("summary is missing %s:\n%s", s, out)
		}
	}
}

func TestSpeciationCmd(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "speciation.xlsx")
	Cfg.Set("System", "fluoride")
	Cfg.Set("Recipe", map[string]string{"KOH": "7"})
	Cfg.Set("DerivedVariables", map[string]string{"fluoro": "ZnF / sum(Zn, ZnF)"})
	Cfg.Set("SpeciationFile", out)
	execute(t, "speciation")

	f, err := xlsx.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		sheet string
		rows  int
	}{
		{sheet: SpeciesSheet, rows: 19},
		{sheet: StatusSheet, rows: 152},
		{sheet: DerivedSheet, rows: 2},
	} {
		s, ok := f.Sheet[test.sheet]
		if !ok {
			t.Errorf("missing sheet %s", test.sheet)
			continue
		}
		if len(s.Rows) != test.rows {
			t.Errorf("sheet %s: have %d rows, want %d", test.sheet, len(s.Rows), test.rows)
		}
	}
	if v := f.Sheet[DerivedSheet].Rows[1].Cells[0].Value; v != "fluoro" {
		t.Errorf("derived variable name: %s", v)
	}
}

func TestConfigCmd(t *testing.T) {
	out := execute(t, "config")
	for _, s := range []string{"[Grid]", "PHMax = 16.0", "Approximation = \"heatcapacity\""} {
		if !strings.Contains(out, s) {
			t.Errorf("configuration is missing %s:\n%s", s, out)
		}
	}

	dir := tempDir(t)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "pourbaix.toml")
	execute(t, "config", file)
	Cfg.Set("config", file)
	defer Cfg.Set("config", "")
	execute(t, "thresholds")
}
