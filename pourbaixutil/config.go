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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/zabat/pourbaix"
	"github.com/zabat/pourbaix/speciation"
)

// conditions returns the temperature and pZn specified in cfg.
func conditions(cfg *viper.Viper) (pourbaix.Conditions, error) {
	c, err := pourbaix.NewConditions(pourbaix.Celsius(cfg.GetFloat64("Temperature")), cfg.GetFloat64("PZn"))
	if err != nil {
		return c, fmt.Errorf("parsing configuration: %v", err)
	}
	return c, nil
}

// diagramConfig returns the diagram settings specified in cfg.
func diagramConfig(cfg *viper.Viper) (pourbaix.Config, error) {
	dc := pourbaix.DefaultConfig()
	var err error
	dc.Approximation, err = pourbaix.ParseApproximation(cfg.GetString("Approximation"))
	if err != nil {
		return dc, fmt.Errorf("parsing configuration: %v", err)
	}
	dc.Solid, err = pourbaix.ParseSolid(cfg.GetString("Solid"))
	if err != nil {
		return dc, fmt.Errorf("parsing configuration: %v", err)
	}
	dc.Grid = pourbaix.Grid{
		PHMin:  cfg.GetFloat64("Grid.PHMin"),
		PHMax:  cfg.GetFloat64("Grid.PHMax"),
		PHStep: cfg.GetFloat64("Grid.PHStep"),
		EMin:   cfg.GetFloat64("Grid.EMin"),
		EMax:   cfg.GetFloat64("Grid.EMax"),
	}
	if err := dc.Grid.Check(); err != nil {
		return dc, fmt.Errorf("parsing configuration: %v", err)
	}
	return dc, nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="pourbaix.geojson")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("pourbaix: the output file directory doesn't exist: %v", err)
	}
	return f, nil
}

// sweepFileName adds the temperature and pZn to the name of f.
func sweepFileName(f string, c pourbaix.Conditions) string {
	ext := filepath.Ext(f)
	return fmt.Sprintf("%s_T%.4g_pZn%g%s", strings.TrimSuffix(f, ext), c.Celsius(), c.PZn, ext)
}

// system returns the electrolyte system with the given name.
func system(name string) (*speciation.System, error) {
	switch strings.ToLower(name) {
	case "fluoride":
		return speciation.Fluoride(), nil
	case "ammonia":
		return speciation.Ammonia(), nil
	default:
		return nil, fmt.Errorf("parsing configuration: System is '%s' but should be fluoride or ammonia", name)
	}
}

// recipe returns the default recipe of sys with any ingredients in
// overrides replaced. Ingredient names are not case sensitive.
func recipe(sys *speciation.System, overrides map[string]string) (speciation.Recipe, error) {
	r := speciation.DefaultFluorideRecipe
	if sys.LigandSalt == "NH4OH" {
		r = speciation.DefaultAmmoniaRecipe
	}
	fields := map[string]*float64{
		"zn":    &r.Zn,
		"koh":   &r.KOH,
		"k2co3": &r.K2CO3,
		"kf":    &r.KF,
		"nh4oh": &r.NH4OH,
	}
	for k, v := range overrides {
		p, ok := fields[strings.ToLower(k)]
		if !ok {
			return r, fmt.Errorf("parsing configuration: invalid Recipe ingredient '%s'; valid options are Zn, KOH, K2CO3, KF, and NH4OH", k)
		}
		f, err := cast.ToFloat64E(strings.TrimSpace(os.ExpandEnv(v)))
		if err != nil {
			return r, fmt.Errorf("parsing configuration: Recipe ingredient %s: %v", k, err)
		}
		*p = f
	}
	return r, nil
}

// checkDerivedVariables removes end lines from the derived variable
// expressions.
func checkDerivedVariables(vars map[string]string) map[string]string {
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		vars[k] = strings.Replace(v, "\n", " ", -1)
	}
	return vars
}

// toFloat64SliceE converts a list option to floats. The option may be a
// slice from a flag or configuration file, or a comma-separated string
// from an environment variable.
func toFloat64SliceE(i interface{}) ([]float64, error) {
	var s []interface{}
	switch v := i.(type) {
	case []interface{}:
		s = v
	case []string:
		for _, x := range v {
			s = append(s, x)
		}
	case []float64:
		return v, nil
	case string:
		for _, x := range strings.Split(v, ",") {
			s = append(s, strings.TrimSpace(x))
		}
	default:
		return nil, fmt.Errorf("invalid list %#v", i)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("list is empty")
	}
	o := make([]float64, len(s))
	for j, x := range s {
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, err
		}
		o[j] = f
	}
	return o, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		if v == "" {
			return make(map[string]string), nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("parsing configuration: %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("parsing configuration: invalid type for %s: %#v", varName, i)
	}
}
