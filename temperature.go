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

// DeltaGVantHoff estimates the free energy of reaction at t2 [K] from
// its free energy g1 [J/mol] and enthalpy h1 [J/mol] at t1 [K], assuming
// constant pressure and an enthalpy independent of temperature.
func DeltaGVantHoff(g1, h1, t1, t2 float64) float64 {
	return g1*(t2/t1) + h1*(1-t2/t1)
}

// DeltaGWeak estimates the free energy of reaction at t2 [K] assuming
// that the enthalpy h1 [J/mol] and entropy s1 [J/(K mol)] of reaction
// are weak functions of temperature.
func DeltaGWeak(h1, s1, t2 float64) float64 {
	return h1 - t2*s1
}

// DeltaGHeatCapacity estimates the free energy of reaction at t2 [K] by
// integrating the heat capacity of reaction
// Cp(T) = cp[0] + cp[1]*T + cp[2]/T² from t1 to t2, starting from the
// enthalpy h1 [J/mol] and entropy s1 [J/(K mol)] at t1.
func DeltaGHeatCapacity(h1, s1 float64, cp [3]float64, t1, t2 float64) float64 {
	h2 := h1 + cp[0]*(t2-t1) + cp[1]*(t2*t2-t1*t1) - cp[2]*(1/t2-1/t1)
	s2 := s1 + cp[0]*math.Log(t2/t1) + cp[1]*(t2-t1) - cp[2]/2*(1/(t2*t2)-1/(t1*t1))
	return h2 - t2*s2
}

// StandardPotentialAt extrapolates the standard reduction potential e1
// [V vs. SHE] at t1 to t2 using dE/dT = ΔS/(nF), where s1 is the entropy
// of reaction [J/(K mol)] and n is the number of electrons.
func StandardPotentialAt(e1, s1, t1, t2 float64, n int) float64 {
	return e1 + s1/(float64(n)*F)*(t2-t1)
}

// Approximation selects how free energies of reaction are extrapolated
// away from the reference temperature.
type Approximation int

const (
	// HeatCapacity integrates the heat capacity polynomials. It is the
	// most accurate option and the default.
	HeatCapacity Approximation = iota

	// VantHoff assumes a temperature-independent enthalpy of reaction.
	VantHoff

	// WeakTemperature assumes temperature-independent enthalpy and
	// entropy of reaction.
	WeakTemperature

	// Reference ignores temperature and uses the free energy at TRef.
	Reference
)

var approximationNames = map[Approximation]string{
	HeatCapacity:    "heatcapacity",
	VantHoff:        "vanthoff",
	WeakTemperature: "weak",
	Reference:       "reference",
}

func (a Approximation) String() string {
	if s, ok := approximationNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Approximation(%d)", int(a))
}

// ParseApproximation returns the approximation with the given name.
func ParseApproximation(name string) (Approximation, error) {
	for a, s := range approximationNames {
		if s == name {
			return a, nil
		}
	}
	return -1, fmt.Errorf("pourbaix: invalid temperature approximation '%s'; valid options are heatcapacity, vanthoff, weak, and reference", name)
}

// DeltaG returns the free energy of reaction [J/mol] at temperature tk [K].
func (a Approximation) DeltaG(th Thermo, tk float64) float64 {
	switch a {
	case HeatCapacity:
		return DeltaGHeatCapacity(th.H, th.S, th.Cp, TRef, tk)
	case VantHoff:
		return DeltaGVantHoff(th.G, th.H, TRef, tk)
	case WeakTemperature:
		return DeltaGWeak(th.H, th.S, tk)
	case Reference:
		return th.G
	default:
		panic(fmt.Errorf("pourbaix: invalid approximation %d", int(a)))
	}
}
