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

import "fmt"

// pKaNH4 is the acid constant of NH4^+.
const pKaNH4 = 9.246

// ammine returns the Zn^2+ + n NH3 + m OH^- complex with formation
// constant 10^logK, written in terms of free NH4^+.
func ammine(logK, n, m float64) Species {
	key := "ZnNH3"
	label := "Zn(NH3)"
	if n > 1 {
		key += fmt.Sprintf("_%g", n)
		label += fmt.Sprintf("%g", n)
	}
	if m > 0 {
		key += "OH"
		label += "(OH)"
		if m > 1 {
			key += fmt.Sprintf("%g", m)
			label += fmt.Sprintf("%g", m)
		}
	}
	return Species{
		Key:    key,
		Label:  label,
		LogK:   logK - n*pKaNH4,
		H:      -n,
		OH:     m,
		Comp:   [numComponents]float64{Zinc: 1, Ligand: n},
		Weight: [numComponents]float64{Zinc: 1, Ligand: n},
	}
}

// Ammonia returns the Zn-OH-CO3-NH3 system in KOH/K2CO3/NH4OH
// electrolyte.
func Ammonia() *System {
	s := &System{
		Name:       "ammonia",
		Components: [numComponents]string{Zinc: "Zn", Carbonate: "COx", Potassium: "K", Ligand: "NHx"},
		LigandSalt: "NH4OH",
		PKw:        pKw,
	}
	cx := carbonate()
	s.Species = append(s.Species,
		free("Zn", "Zn^2+", Zinc),
		zincHydroxo("ZnOH4", "Zn(OH)4^2-", 17.66, 4),
		zincHydroxo("ZnOH3", "Zn(OH)3^-", 14.14, 3),
		zincHydroxo("ZnOH2", "Zn(OH)2(aq)", 11.3, 2),
		zincHydroxo("ZnOH", "Zn(OH)^+", 4.4, 1),
		zincHydroxo("ZnO", "ZnO", -15.96, 2),
		cx[0],
		ammine(2.37, 1, 0),
		ammine(4.81, 2, 0),
		ammine(7.31, 3, 0),
		ammine(9.46, 4, 0),
		ammine(9.23, 1, 1),
		ammine(10.80, 2, 1),
		ammine(12, 3, 1),
		ammine(13, 1, 2),
		ammine(13.6, 2, 2),
		ammine(14.50, 1, 3),
		Species{Key: "NH3", Label: "NH3", LogK: -pKaNH4, H: -1,
			Comp:   [numComponents]float64{Ligand: 1},
			Weight: [numComponents]float64{Ligand: 1}},
		free("NH4", "NH4^+", Ligand),
	)
	s.Species = append(s.Species, cx[1:]...)
	s.Species = append(s.Species, free("K", "K^+", Potassium))
	s.Species = append(s.Species, water()...)
	return s
}
