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

// Package pourbaix calculates potential-pH (Pourbaix) stability diagrams
// for zinc in water between 25 and 100 °C. Standard formation data are
// combined into reaction free energies, extrapolated in temperature,
// turned into equilibrium boundaries in (pH, E) space and assembled into
// labeled stability domains.
package pourbaix

import "fmt"

// physical constants
const (
	R    = 8.31451 // J/(K mol), universal gas constant
	F    = 96485.  // C/mol, Faraday constant
	TRef = 298.15  // K, reference temperature of the formation data

	ln10 = 2.302585092994046
)

// Species identifies a chemical species in the zinc-water system.
type Species int

// Species in the zinc-water system.
const (
	Zn Species = iota
	ZnIon
	ZnOH
	ZnOH2Aq
	ZnOH2Eps
	ZnOH3
	ZnOH4
	ZnO
	HIon
	H2O
	OHIon
	H2
	O2
	numSpecies
)

var speciesNames = [numSpecies]string{
	Zn:       "Zn(s)",
	ZnIon:    "Zn^2+",
	ZnOH:     "Zn(OH)^+",
	ZnOH2Aq:  "Zn(OH)2(aq)",
	ZnOH2Eps: "ε-Zn(OH)2(s)",
	ZnOH3:    "Zn(OH)3^-",
	ZnOH4:    "Zn(OH)4^2-",
	ZnO:      "ZnO(s)",
	HIon:     "H^+",
	H2O:      "H2O",
	OHIon:    "OH^-",
	H2:       "H2(g)",
	O2:       "O2(g)",
}

func (s Species) String() string {
	if s < 0 || s >= numSpecies {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// DissolvedZinc reports whether s is a zinc species in solution, whose
// activity is set by pZn.
func (s Species) DissolvedZinc() bool {
	switch s {
	case ZnIon, ZnOH, ZnOH2Aq, ZnOH3, ZnOH4:
		return true
	}
	return false
}

// Formation holds the standard formation properties of a species at TRef.
type Formation struct {
	// G is the Gibbs free energy of formation [J/mol].
	G float64

	// S is the standard entropy [J/(K mol)].
	S float64

	// Cp holds the coefficients of the heat capacity polynomial
	// Cp(T) = Cp[0] + Cp[1]*T + Cp[2]/T² [J/(K mol)].
	Cp [3]float64
}

// Table holds formation data for every species. It is a value type:
// copies can't modify the default data.
type Table [numSpecies]Formation

// Formation returns the formation data for species s.
func (t *Table) Formation(s Species) Formation {
	return t[s]
}

// defaultTable holds data from the revised Pourbaix diagram for zinc
// (Beverskog and Puigdomenech, 1997). Gas entropies and heat
// capacities are SI textbook values.
var defaultTable = Table{
	Zn:       {G: 0, S: 41.63, Cp: [3]float64{21.334, 11.648e-3, 0.054e6}},
	ZnIon:    {G: -147.203e3, S: -109.8, Cp: [3]float64{-25.8, 0, 0}},
	ZnOH:     {G: -333.20e3, S: -24, Cp: [3]float64{10, 0, 0}},
	ZnOH2Aq:  {G: -525.02e3, S: 42, Cp: [3]float64{70, 0, 0}},
	ZnOH2Eps: {G: -555.82e3, S: 77, Cp: [3]float64{74.27, 0, 0}},
	ZnOH3:    {G: -696.52e3, S: 40, Cp: [3]float64{94, 0, 0}},
	ZnOH4:    {G: -860.59e3, S: 15, Cp: [3]float64{-284, 0, 0}},
	ZnO:      {G: -320.479e3, S: 43.65, Cp: [3]float64{45.338, 7.289e-3, -0.573e6}},
	HIon:     {G: 0, S: 0, Cp: [3]float64{0, 0, 0}},
	H2O:      {G: -237.1e3, S: 70, Cp: [3]float64{75, 0, 0}},
	OHIon:    {G: -157.2e3, S: -11, Cp: [3]float64{-149, 0, 0}},
	H2:       {G: 0, S: 131, Cp: [3]float64{29, 0, 0}},
	O2:       {G: 0, S: 205, Cp: [3]float64{29, 0, 0}},
}

// DefaultTable returns a copy of the standard formation data.
func DefaultTable() *Table {
	t := defaultTable
	return &t
}
