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

package speciation

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Default CO2 saturation parameters.
const (
	DefaultHenryCO2 = 0.031 // mol/(L atm)
	DefaultPCO2     = 0.06  // atm
)

// Profile holds species concentrations [mol/L] over a pH sweep.
type Profile struct {
	System *System
	Totals Totals
	PH     []float64

	// Keys and Labels name the rows of Conc.
	Keys, Labels []string

	// Conc holds concentrations indexed by [species, sample]. Columns of
	// samples that did not converge are NaN.
	Conc *mat.Dense

	// Converged reports whether each sample converged. Errs holds the
	// *ConvergenceError of each sample that did not.
	Converged []bool
	Errs      []error
}

// Row returns a copy of the concentrations of the species with the given
// key at every sample.
func (p *Profile) Row(key string) ([]float64, error) {
	i, err := p.System.Index(key)
	if err != nil {
		return nil, err
	}
	return append([]float64{}, p.Conc.RawRowView(i)...), nil
}

// Failed returns the indices of samples that did not converge.
func (p *Profile) Failed() []int {
	var f []int
	for i, ok := range p.Converged {
		if !ok {
			f = append(f, i)
		}
	}
	return f
}

// Balance returns the calculated total of each component at sample i.
func (p *Profile) Balance(i int) Totals {
	var t Totals
	col := mat.Col(nil, i, p.Conc)
	w := make([]float64, len(col))
	for j := range t {
		for k, sp := range p.System.Species {
			w[k] = sp.Weight[j]
		}
		t[j] = floats.Dot(w, col)
	}
	return t
}

// Fraction returns the share of component j's total held by the species
// with the given key at every sample.
func (p *Profile) Fraction(key string, j Component) ([]float64, error) {
	i, err := p.System.Index(key)
	if err != nil {
		return nil, err
	}
	if p.Totals[j] == 0 {
		return nil, fmt.Errorf("speciation: total %s is zero", p.System.Components[j])
	}
	f, err := p.Row(key)
	if err != nil {
		return nil, err
	}
	floats.Scale(p.System.Species[i].Weight[j]/p.Totals[j], f)
	return f, nil
}

// CO2SaturationPH returns the highest pH at which the dissolved CO2
// concentration exceeds the saturation concentration henry*pCO2. ok is
// false if CO2 is below saturation at every sample.
func (p *Profile) CO2SaturationPH(henry, pCO2 float64) (pH float64, ok bool) {
	co2, err := p.Row("CO2")
	if err != nil {
		return math.NaN(), false
	}
	sat := henry * pCO2
	for i := len(co2) - 1; i >= 0; i-- {
		if co2[i]-sat > 0 {
			return p.PH[i], true
		}
	}
	return math.NaN(), false
}

// DerivedFunctions are available to the expressions passed to Derive.
var DerivedFunctions = map[string]govaluate.ExpressionFunction{
	"log10": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("speciation: got %d arguments for function 'log10', but needs 1", len(arg))
		}
		v, err := numeric("log10", arg[0])
		if err != nil {
			return nil, err
		}
		return math.Log10(v), nil
	},
	"exp": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("speciation: got %d arguments for function 'exp', but needs 1", len(arg))
		}
		v, err := numeric("exp", arg[0])
		if err != nil {
			return nil, err
		}
		return math.Exp(v), nil
	},
	"sum": func(arg ...interface{}) (interface{}, error) {
		var s float64
		for _, a := range arg {
			v, err := numeric("sum", a)
			if err != nil {
				return nil, err
			}
			s += v
		}
		return s, nil
	},
}

func numeric(fn string, a interface{}) (float64, error) {
	v, ok := a.(float64)
	if !ok {
		return 0, fmt.Errorf("speciation: %s: argument must be numeric but is %T", fn, a)
	}
	return v, nil
}

// Derive evaluates user-defined expressions of the species concentrations
// at every sample. Expressions may refer to species by key, to "pH", and
// to the functions in DerivedFunctions, e.g.
//  "ZnOH4 / sum(Zn, ZnOH, ZnOH2, ZnOH3, ZnOH4)".
// Samples that did not converge evaluate to NaN.
func (p *Profile) Derive(exprs map[string]string) (map[string][]float64, error) {
	known := make(map[string]int, len(p.Keys))
	for i, k := range p.Keys {
		known[k] = i
	}
	o := make(map[string][]float64, len(exprs))
	for name, e := range exprs {
		if _, ok := known[name]; ok || name == "pH" {
			return nil, fmt.Errorf("speciation: derived variable '%s' has the same name as a species", name)
		}
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(e, DerivedFunctions)
		if err != nil {
			return nil, fmt.Errorf("speciation: parsing derived variable '%s': %v", name, err)
		}
		vars := expression.Vars()
		for _, v := range vars {
			if _, ok := known[v]; !ok && v != "pH" {
				return nil, fmt.Errorf("speciation: derived variable '%s' refers to unknown species '%s'", name, v)
			}
		}
		vals := make([]float64, len(p.PH))
		params := make(map[string]interface{}, len(vars))
		for i, ph := range p.PH {
			if !p.Converged[i] {
				vals[i] = math.NaN()
				continue
			}
			for _, v := range vars {
				if v == "pH" {
					params[v] = ph
				} else {
					params[v] = p.Conc.At(known[v], i)
				}
			}
			r, err := expression.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("speciation: evaluating derived variable '%s' at pH %g: %v", name, ph, err)
			}
			f, ok := r.(float64)
			if !ok {
				return nil, fmt.Errorf("speciation: derived variable '%s' is not numeric", name)
			}
			vals[i] = f
		}
		o[name] = vals
	}
	return o, nil
}
