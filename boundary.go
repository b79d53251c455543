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
	"fmt"
	"math"
)

// Calculator computes equilibrium boundaries in (pH, E) space for one
// set of conditions.
type Calculator struct {
	set    *ReactionSet
	approx Approximation
	cond   Conditions

	// l is RT ln(10) [J/mol].
	l float64

	dg [numReactions]float64
}

// NewCalculator returns a calculator for the reactions in set at
// conditions c, using approximation a to correct free energies for
// temperature.
func NewCalculator(set *ReactionSet, a Approximation, c Conditions) *Calculator {
	calc := &Calculator{
		set:    set,
		approx: a,
		cond:   c,
		l:      R * c.T * ln10,
	}
	for i := range calc.dg {
		calc.dg[i] = a.DeltaG(set[i], c.T)
	}
	return calc
}

// Conditions returns the conditions the calculator was created with.
func (c *Calculator) Conditions() Conditions { return c.cond }

// DeltaG returns the free energy of reaction id [J/mol] at the
// calculator temperature.
func (c *Calculator) DeltaG(id ReactionID) float64 { return c.dg[id] }

// L returns RT ln(10) [J/mol].
func (c *Calculator) L() float64 { return c.l }

func (c *Calculator) electrochemical(id ReactionID) Reaction {
	r := id.Reaction()
	if !r.Electrochemical() {
		panic(fmt.Errorf("pourbaix: reaction %s is not electrochemical", r.Name))
	}
	return r
}

func (c *Calculator) chemical(id ReactionID) Reaction {
	r := id.Reaction()
	if r.Electrochemical() || r.Hydroxides() == 0 {
		panic(fmt.Errorf("pourbaix: reaction %s does not define a pH boundary", r.Name))
	}
	return r
}

// StandardPotential returns the standard reduction potential [V vs. SHE]
// of electrochemical reaction id, -ΔG/(nF).
func (c *Calculator) StandardPotential(id ReactionID) float64 {
	r := c.electrochemical(id)
	return -c.dg[id] / (float64(r.Electrons) * F)
}

// StandardPotentialNernst returns the standard reduction potential of
// reaction id extrapolated from TRef with the entropy of reaction.
func (c *Calculator) StandardPotentialNernst(id ReactionID) float64 {
	r := c.electrochemical(id)
	th := c.set.Thermo(id)
	e1 := -th.G / (float64(r.Electrons) * F)
	return StandardPotentialAt(e1, th.S, TRef, c.cond.T, r.Electrons)
}

// Potential returns the equilibrium potential [V vs. SHE] of
// electrochemical reaction id at the given pH. Every dissolved zinc
// species has activity 10^-pZn.
func (c *Calculator) Potential(id ReactionID, pH float64) float64 {
	r := c.electrochemical(id)
	nF := float64(r.Electrons) * F
	return -c.dg[id]/nF - c.l/nF*(r.DissolvedZinc()*c.cond.PZn+r.Protons()*pH)
}

// PotentialCurve returns Potential(id, pH[i]) for each i.
func (c *Calculator) PotentialCurve(id ReactionID, pH []float64) []float64 {
	e := make([]float64, len(pH))
	for i, p := range pH {
		e[i] = c.Potential(id, p)
	}
	return e
}

// BoundaryPH returns the pH at which chemical reaction id is at
// equilibrium.
func (c *Calculator) BoundaryPH(id ReactionID) float64 {
	r := c.chemical(id)
	z := r.Hydroxides()
	return c.PKw() + c.dg[id]/(z*c.l) + r.DissolvedZinc()/z*c.cond.PZn
}

// PKw returns -log10 of the ionic product of water.
func (c *Calculator) PKw() float64 {
	return -math.Log10(math.Exp(-c.dg[RxnW] / (R * c.cond.T)))
}

// NeutralPH returns the pH at which [H+] = [OH-].
func (c *Calculator) NeutralPH() float64 { return c.PKw() / 2 }

// Thresholds holds the pZn values at which the topology of the diagram
// changes.
type Thresholds struct {
	// Hydroxo* are the pZn values below which the Zn(OH)3^- domain
	// vanishes for each form of Zn(OH)2.
	HydroxoEps, HydroxoAq, HydroxoOx float64

	// Passivation* are the pZn values above which the solid dissolves as
	// Zn(OH)2(aq).
	PassivationOx, PassivationEps float64
}

// Thresholds returns the pZn thresholds at the calculator temperature.
func (c *Calculator) Thresholds() Thresholds {
	dgX := c.dg[RxnX]
	dgVIII := c.dg[RxnVIIIAq]
	return Thresholds{
		HydroxoEps:     (c.dg[RxnIXEps] - dgX) / c.l,
		HydroxoAq:      (c.dg[RxnIXAq] - dgX) / c.l,
		HydroxoOx:      (c.dg[RxnIXOx] - dgX) / c.l,
		PassivationOx:  (dgVIII - c.dg[RxnVIIIOx]) / c.l,
		PassivationEps: (dgVIII - c.dg[RxnVIIIEps]) / c.l,
	}
}

// Hydroxo returns the Zn(OH)3^- threshold for the given solid.
func (t Thresholds) Hydroxo(s Solid) float64 {
	if s == EpsilonHydroxide {
		return t.HydroxoEps
	}
	return t.HydroxoOx
}

// Passivation returns the passivation threshold for the given solid.
func (t Thresholds) Passivation(s Solid) float64 {
	if s == EpsilonHydroxide {
		return t.PassivationEps
	}
	return t.PassivationOx
}

// StandardPotential is one row of a standard potential table.
type StandardPotential struct {
	Reaction ReactionID
	DeltaG   float64 // [J/mol]
	E0       float64 // -ΔG/(nF) [V]
	E0Nernst float64 // extrapolated with ΔS/(nF) [V]
}

// StandardPotentials returns the standard potentials of every
// electrochemical reaction, in reaction order.
func (c *Calculator) StandardPotentials() []StandardPotential {
	var o []StandardPotential
	for _, r := range reactions {
		if !r.Electrochemical() {
			continue
		}
		o = append(o, StandardPotential{
			Reaction: r.ID,
			DeltaG:   c.dg[r.ID],
			E0:       c.StandardPotential(r.ID),
			E0Nernst: c.StandardPotentialNernst(r.ID),
		})
	}
	return o
}
