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

// pKw is the ionic product of water used by both systems.
const pKw = 13.96

// free returns the species that is the free form of component j.
func free(key, label string, j Component) Species {
	s := Species{Key: key, Label: label}
	s.Comp[j] = 1
	s.Weight[j] = 1
	return s
}

// zincHydroxo returns Zn^2+ + n OH^- species with formation constant
// 10^logK.
func zincHydroxo(key, label string, logK, n float64) Species {
	return Species{Key: key, Label: label, LogK: logK, OH: n,
		Comp: [numComponents]float64{Zinc: 1}, Weight: [numComponents]float64{Zinc: 1}}
}

// carbonate returns the carbonate species, from CO2(aq) to CO3^2-, and
// ZnCO3.
func carbonate() []Species {
	const (
		logKHCO3  = 9.56  // CO3^2- + H+ = HCO3^-
		logKH2CO3 = 6.33  // HCO3^- + H+ = H2CO3
		logKCO2   = -1.55 // H2CO3 = CO2(aq) + H2O
		logKZnCO3 = -10.
	)
	c := func(key, label string, logK, h float64) Species {
		return Species{Key: key, Label: label, LogK: logK, H: h,
			Comp: [numComponents]float64{Carbonate: 1}, Weight: [numComponents]float64{Carbonate: 1}}
	}
	return []Species{
		{Key: "ZnCO3", Label: "ZnCO3", LogK: logKZnCO3,
			Comp:   [numComponents]float64{Zinc: 1, Carbonate: 1},
			Weight: [numComponents]float64{Zinc: 1, Carbonate: 1}},
		c("CO2", "CO2(aq)", logKHCO3+logKH2CO3+logKCO2, 2),
		c("H2CO3", "H2CO3", logKHCO3+logKH2CO3, 2),
		c("HCO3", "HCO3^-", logKHCO3, 1),
		free("CO3", "CO3^2-", Carbonate),
	}
}

func water() []Species {
	return []Species{
		{Key: "H", Label: "H^+", H: 1},
		{Key: "OH", Label: "OH^-", OH: 1},
	}
}

// Fluoride returns the Zn-OH-CO3-F system in KOH/K2CO3/KF electrolyte.
func Fluoride() *System {
	const (
		logKHF  = 3.3  // H+ + F- = HF
		logKHF2 = 0.86 // HF + F- = HF2^-
		logKZnF = 0.8
		logKZnO = -15.96
		logKOH4 = 18.
		logKOH3 = 13.7
		logKOH2 = 8.3
		logKOH1 = 5.0
	)
	s := &System{
		Name:       "fluoride",
		Components: [numComponents]string{Zinc: "Zn", Carbonate: "COx", Potassium: "K", Ligand: "F"},
		LigandSalt: "KF",
		PKw:        pKw,
	}
	s.Species = append(s.Species,
		free("Zn", "Zn^2+", Zinc),
		zincHydroxo("ZnOH4", "Zn(OH)4^2-", logKOH4, 4),
		zincHydroxo("ZnOH3", "Zn(OH)3^-", logKOH3, 3),
		zincHydroxo("ZnOH2", "Zn(OH)2(aq)", logKOH2, 2),
		zincHydroxo("ZnOH", "Zn(OH)^+", logKOH1, 1),
		zincHydroxo("ZnO", "ZnO", logKZnO, 2),
	)
	cx := carbonate()
	s.Species = append(s.Species, cx[0],
		Species{Key: "ZnF", Label: "ZnF^+", LogK: logKZnF,
			Comp:   [numComponents]float64{Zinc: 1, Ligand: 1},
			Weight: [numComponents]float64{Zinc: 1, Ligand: 1}},
	)
	s.Species = append(s.Species, cx[1:]...)
	s.Species = append(s.Species,
		free("K", "K^+", Potassium),
		free("F", "F^-", Ligand),
		Species{Key: "HF", Label: "HF", LogK: logKHF, H: 1,
			Comp:   [numComponents]float64{Ligand: 1},
			Weight: [numComponents]float64{Ligand: 1}},
		Species{Key: "HF2", Label: "HF2^-", LogK: logKHF + logKHF2, H: 1,
			Comp:   [numComponents]float64{Ligand: 2},
			Weight: [numComponents]float64{Ligand: 2}},
	)
	s.Species = append(s.Species, water()...)
	return s
}
