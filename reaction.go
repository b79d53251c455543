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

import "fmt"

// ReactionID identifies one of the half-reactions or chemical equilibria
// in the zinc-water system. Roman numerals follow the usual literature
// numbering; the Eps, Aq and Ox suffixes select the ε-Zn(OH)2(s),
// Zn(OH)2(aq) and ZnO(s) forms of the zinc(II) hydroxide.
type ReactionID int

// Reactions in the zinc-water system.
const (
	RxnI ReactionID = iota // Zn^2+ + 2e- = Zn
	RxnII                  // Zn(OH)^+ + H^+ + 2e- = Zn + H2O
	RxnIIIEps              // ε-Zn(OH)2 + 2H^+ + 2e- = Zn + 2H2O
	RxnIIIAq               // Zn(OH)2(aq) + 2H^+ + 2e- = Zn + 2H2O
	RxnIIIOx               // ZnO + 2H^+ + 2e- = Zn + H2O
	RxnIV                  // Zn(OH)3^- + 3H^+ + 2e- = Zn + 3H2O
	RxnV                   // Zn(OH)4^2- + 4H^+ + 2e- = Zn + 4H2O
	RxnVIIIEps             // Zn^2+ + 2OH^- = ε-Zn(OH)2
	RxnVIIIAq              // Zn^2+ + 2OH^- = Zn(OH)2(aq)
	RxnVIIIOx              // Zn^2+ + 2OH^- = ZnO + H2O
	RxnIXEps               // ε-Zn(OH)2 + OH^- = Zn(OH)3^-
	RxnIXAq                // Zn(OH)2(aq) + OH^- = Zn(OH)3^-
	RxnIXOx                // ZnO + H2O + OH^- = Zn(OH)3^-
	RxnX                   // Zn(OH)3^- + OH^- = Zn(OH)4^2-
	RxnXIEps               // ε-Zn(OH)2 + 2OH^- = Zn(OH)4^2-
	RxnXIAq                // Zn(OH)2(aq) + 2OH^- = Zn(OH)4^2-
	RxnXIOx                // ZnO + H2O + 2OH^- = Zn(OH)4^2-
	RxnXII                 // ZnO + H2O = Zn(OH)2(aq)
	RxnHER                 // 4H^+ + 4e- = 2H2
	RxnOER                 // O2 + 4H^+ + 4e- = 2H2O
	RxnW                   // H2O = H^+ + OH^-
	numReactions
)

// Term is one species with its stoichiometric coefficient.
type Term struct {
	Species Species
	Coef    float64
}

// Reaction is a balanced reaction written as a reduction (for
// electrochemical reactions) or a hydroxide addition (for chemical ones).
type Reaction struct {
	ID        ReactionID
	Name      string
	Reactants []Term
	Products  []Term

	// Electrons is the number of electrons transferred. It is zero
	// for chemical equilibria.
	Electrons int
}

// Electrochemical reports whether the reaction transfers electrons, and
// therefore defines a potential boundary rather than a pH boundary.
func (r Reaction) Electrochemical() bool { return r.Electrons > 0 }

func (r Reaction) String() string { return r.Name }

// sumCoef sums the coefficients of the terms whose species match.
func sumCoef(terms []Term, match func(Species) bool) float64 {
	var c float64
	for _, t := range terms {
		if match(t.Species) {
			c += t.Coef
		}
	}
	return c
}

// Protons returns the number of H^+ consumed by the reaction.
func (r Reaction) Protons() float64 {
	return sumCoef(r.Reactants, is(HIon)) - sumCoef(r.Products, is(HIon))
}

// Hydroxides returns the number of OH^- consumed by the reaction.
func (r Reaction) Hydroxides() float64 {
	return sumCoef(r.Reactants, is(OHIon)) - sumCoef(r.Products, is(OHIon))
}

// DissolvedZinc returns the net number of dissolved zinc species consumed
// by the reaction. All dissolved zinc species share the activity set by
// pZn.
func (r Reaction) DissolvedZinc() float64 {
	dz := func(s Species) bool { return s.DissolvedZinc() }
	return sumCoef(r.Reactants, dz) - sumCoef(r.Products, dz)
}

func is(s Species) func(Species) bool {
	return func(s2 Species) bool { return s == s2 }
}

func term(s Species, c float64) Term { return Term{Species: s, Coef: c} }

var reactions = [numReactions]Reaction{
	RxnI: {Name: "I", Electrons: 2,
		Reactants: []Term{term(ZnIon, 1)}, Products: []Term{term(Zn, 1)}},
	RxnII: {Name: "II", Electrons: 2,
		Reactants: []Term{term(ZnOH, 1), term(HIon, 1)}, Products: []Term{term(Zn, 1), term(H2O, 1)}},
	RxnIIIEps: {Name: "III-eps", Electrons: 2,
		Reactants: []Term{term(ZnOH2Eps, 1), term(HIon, 2)}, Products: []Term{term(Zn, 1), term(H2O, 2)}},
	RxnIIIAq: {Name: "III", Electrons: 2,
		Reactants: []Term{term(ZnOH2Aq, 1), term(HIon, 2)}, Products: []Term{term(Zn, 1), term(H2O, 2)}},
	RxnIIIOx: {Name: "III-ox", Electrons: 2,
		Reactants: []Term{term(ZnO, 1), term(HIon, 2)}, Products: []Term{term(Zn, 1), term(H2O, 1)}},
	RxnIV: {Name: "IV", Electrons: 2,
		Reactants: []Term{term(ZnOH3, 1), term(HIon, 3)}, Products: []Term{term(Zn, 1), term(H2O, 3)}},
	RxnV: {Name: "V", Electrons: 2,
		Reactants: []Term{term(ZnOH4, 1), term(HIon, 4)}, Products: []Term{term(Zn, 1), term(H2O, 4)}},
	RxnVIIIEps: {Name: "VIII-eps",
		Reactants: []Term{term(ZnIon, 1), term(OHIon, 2)}, Products: []Term{term(ZnOH2Eps, 1)}},
	RxnVIIIAq: {Name: "VIII",
		Reactants: []Term{term(ZnIon, 1), term(OHIon, 2)}, Products: []Term{term(ZnOH2Aq, 1)}},
	RxnVIIIOx: {Name: "VIII-ox",
		Reactants: []Term{term(ZnIon, 1), term(OHIon, 2)}, Products: []Term{term(ZnO, 1), term(H2O, 1)}},
	RxnIXEps: {Name: "IX-eps",
		Reactants: []Term{term(ZnOH2Eps, 1), term(OHIon, 1)}, Products: []Term{term(ZnOH3, 1)}},
	RxnIXAq: {Name: "IX",
		Reactants: []Term{term(ZnOH2Aq, 1), term(OHIon, 1)}, Products: []Term{term(ZnOH3, 1)}},
	RxnIXOx: {Name: "IX-ox",
		Reactants: []Term{term(ZnO, 1), term(H2O, 1), term(OHIon, 1)}, Products: []Term{term(ZnOH3, 1)}},
	RxnX: {Name: "X",
		Reactants: []Term{term(ZnOH3, 1), term(OHIon, 1)}, Products: []Term{term(ZnOH4, 1)}},
	RxnXIEps: {Name: "XI-eps",
		Reactants: []Term{term(ZnOH2Eps, 1), term(OHIon, 2)}, Products: []Term{term(ZnOH4, 1)}},
	RxnXIAq: {Name: "XI",
		Reactants: []Term{term(ZnOH2Aq, 1), term(OHIon, 2)}, Products: []Term{term(ZnOH4, 1)}},
	RxnXIOx: {Name: "XI-ox",
		Reactants: []Term{term(ZnO, 1), term(H2O, 1), term(OHIon, 2)}, Products: []Term{term(ZnOH4, 1)}},
	RxnXII: {Name: "XII",
		Reactants: []Term{term(ZnO, 1), term(H2O, 1)}, Products: []Term{term(ZnOH2Aq, 1)}},
	RxnHER: {Name: "HER", Electrons: 4,
		Reactants: []Term{term(HIon, 4)}, Products: []Term{term(H2, 2)}},
	RxnOER: {Name: "OER", Electrons: 4,
		Reactants: []Term{term(O2, 1), term(HIon, 4)}, Products: []Term{term(H2O, 2)}},
	RxnW: {Name: "W",
		Reactants: []Term{term(H2O, 1)}, Products: []Term{term(HIon, 1), term(OHIon, 1)}},
}

func init() {
	for i := range reactions {
		reactions[i].ID = ReactionID(i)
	}
}

// Reaction returns the definition of reaction id.
func (id ReactionID) Reaction() Reaction {
	return reactions[id]
}

func (id ReactionID) String() string {
	if id < 0 || id >= numReactions {
		return fmt.Sprintf("ReactionID(%d)", int(id))
	}
	return reactions[id].Name
}

// ParseReaction returns the reaction with the given name, e.g. "IX-ox".
func ParseReaction(name string) (ReactionID, error) {
	for _, r := range reactions {
		if r.Name == name {
			return r.ID, nil
		}
	}
	return -1, fmt.Errorf("pourbaix: invalid reaction name '%s'", name)
}

// Thermo holds standard reaction properties at TRef.
type Thermo struct {
	G  float64    // Gibbs free energy of reaction [J/mol]
	S  float64    // entropy of reaction [J/(K mol)]
	H  float64    // enthalpy of reaction [J/mol]
	Cp [3]float64 // heat capacity polynomial coefficients [J/(K mol)]
}

// Hess combines the formation data in tbl into the reaction properties
// of r, as products minus reactants. The enthalpy is derived from the
// free energy and entropy rather than looked up.
func (r Reaction) Hess(tbl *Table) Thermo {
	var th Thermo
	add := func(terms []Term, sign float64) {
		for _, tm := range terms {
			f := tbl.Formation(tm.Species)
			th.G += sign * tm.Coef * f.G
			th.S += sign * tm.Coef * f.S
			for i, c := range f.Cp {
				th.Cp[i] += sign * tm.Coef * c
			}
		}
	}
	add(r.Products, 1)
	add(r.Reactants, -1)
	th.H = th.G + TRef*th.S
	return th
}

// ReactionSet holds the reference-temperature properties of every
// reaction.
type ReactionSet [numReactions]Thermo

// Aggregate applies Hess' law to every reaction using the formation data
// in tbl.
func Aggregate(tbl *Table) *ReactionSet {
	var rs ReactionSet
	for i, r := range reactions {
		rs[i] = r.Hess(tbl)
	}
	return &rs
}

// Thermo returns the properties of reaction id.
func (rs *ReactionSet) Thermo(id ReactionID) Thermo {
	return rs[id]
}
