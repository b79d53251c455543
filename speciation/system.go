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

// Package speciation calculates the distribution of dissolved zinc,
// carbonate and ligand species in concentrated potassium hydroxide
// solutions as a function of pH.
package speciation

import (
	"fmt"
	"math"
)

// Component is a conserved quantity whose free concentration is
// solved for.
type Component int

// Conserved components. Ligand is fluoride or ammonium depending on the
// system.
const (
	Zinc Component = iota
	Carbonate
	Potassium
	Ligand
	numComponents
)

// Totals holds the total concentration of each component [mol/L].
type Totals [numComponents]float64

// Species is a dissolved species in mass-action form:
//  log10 c = LogK + H*log10[H+] + OH*log10[OH-] + Σ_j Comp[j]*log10 x_j
// where x_j is the free concentration of component j.
type Species struct {
	// Key identifies the species in derived expressions, e.g. "ZnOH4".
	Key string

	// Label is the chemical formula, e.g. "Zn(OH)4^2-".
	Label string

	LogK  float64
	H, OH float64
	Comp  [numComponents]float64

	// Weight is the number of units of each component the species
	// contributes to the component's mass balance.
	Weight [numComponents]float64
}

// System is a set of species in equilibrium.
type System struct {
	Name string

	// Components holds the name of each component's mass balance.
	Components [numComponents]string

	// LigandSalt is the name of the salt that supplies the ligand.
	LigandSalt string

	// PKw is -log10 of the ionic product of water.
	PKw float64

	Species []Species
}

// Index returns the index of the species with the given key.
func (s *System) Index(key string) (int, error) {
	for i, sp := range s.Species {
		if sp.Key == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("speciation: %s system has no species '%s'", s.Name, key)
}

// Keys returns the species keys in order.
func (s *System) Keys() []string {
	k := make([]string, len(s.Species))
	for i, sp := range s.Species {
		k[i] = sp.Key
	}
	return k
}

// Labels returns the species labels in order.
func (s *System) Labels() []string {
	l := make([]string, len(s.Species))
	for i, sp := range s.Species {
		l[i] = sp.Label
	}
	return l
}

// concentrations fills c with the concentration of every species at pH
// given the log10 free component concentrations lx. Components that are
// not active have zero free concentration.
func (s *System) concentrations(c []float64, pH float64, lx *[numComponents]float64, active *[numComponents]bool) {
	lh := -pH
	loh := -s.PKw + pH
	for i, sp := range s.Species {
		l := sp.LogK + sp.H*lh + sp.OH*loh
		zero := false
		for j, n := range sp.Comp {
			if n == 0 {
				continue
			}
			if !active[j] {
				zero = true
				break
			}
			l += n * lx[j]
		}
		if zero {
			c[i] = 0
		} else {
			c[i] = math.Pow(10, l)
		}
	}
}

// balance returns the calculated total of each component.
func (s *System) balance(c []float64) Totals {
	var t Totals
	for i, sp := range s.Species {
		for j, w := range sp.Weight {
			t[j] += w * c[i]
		}
	}
	return t
}

// Recipe is the composition of an electrolyte [mol/L].
type Recipe struct {
	Zn    float64 // dissolved zinc
	KOH   float64
	K2CO3 float64
	KF    float64
	NH4OH float64
}

// DefaultFluorideRecipe and DefaultAmmoniaRecipe are the reference
// electrolytes of the two systems.
var (
	DefaultFluorideRecipe = Recipe{Zn: 1.e-6, KOH: 7, K2CO3: 1.4, KF: 1.4}
	DefaultAmmoniaRecipe  = Recipe{Zn: 1, KOH: 6, K2CO3: 1.5, NH4OH: 1}
)

// Totals returns the component totals of recipe r in system s. All
// salts are assumed to dissociate completely.
func (s *System) Totals(r Recipe) (Totals, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{{"Zn", r.Zn}, {"KOH", r.KOH}, {"K2CO3", r.K2CO3}, {"KF", r.KF}, {"NH4OH", r.NH4OH}} {
		if v.value < 0 || math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return Totals{}, &TotalsError{Name: v.name, Value: v.value, Msg: "must be a finite value >= 0"}
		}
	}
	var t Totals
	t[Zinc] = r.Zn
	t[Carbonate] = r.K2CO3
	t[Potassium] = r.KOH + 2*r.K2CO3 + r.KF
	switch s.LigandSalt {
	case "KF":
		if r.NH4OH != 0 {
			return Totals{}, &TotalsError{Name: "NH4OH", Value: r.NH4OH, Msg: "is not part of the " + s.Name + " system"}
		}
		t[Ligand] = r.KF
	case "NH4OH":
		if r.KF != 0 {
			return Totals{}, &TotalsError{Name: "KF", Value: r.KF, Msg: "is not part of the " + s.Name + " system"}
		}
		t[Ligand] = r.NH4OH
	default:
		return Totals{}, fmt.Errorf("speciation: system %s has unknown ligand salt '%s'", s.Name, s.LigandSalt)
	}
	return t, nil
}

// Check returns a *TotalsError if any total is negative or not finite.
func (t Totals) Check(s *System) error {
	for j, v := range t {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &TotalsError{Name: s.Components[j], Value: v, Msg: "must be a finite value >= 0"}
		}
	}
	return nil
}
