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

// Regime is a topological class of diagram.
type Regime int

// Diagram regimes, in order of increasing pZn.
const (
	// OxidePassive diagrams have a passivating solid and no Zn(OH)3^-
	// domain.
	OxidePassive Regime = iota

	// HydroxoPassive diagrams have a passivating solid and a Zn(OH)3^-
	// domain.
	HydroxoPassive

	// SolubleHydroxide diagrams have Zn(OH)2(aq) in place of the solid.
	SolubleHydroxide
)

func (r Regime) String() string {
	switch r {
	case OxidePassive:
		return "OxidePassive"
	case HydroxoPassive:
		return "HydroxoPassive"
	case SolubleHydroxide:
		return "SolubleHydroxide"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// SelectRegime returns the regime for pZn given the hydroxo and
// passivation thresholds.
func SelectRegime(pZn, hydroxo, passivation float64) Regime {
	if pZn < hydroxo {
		return OxidePassive
	} else if pZn < passivation {
		return HydroxoPassive
	}
	return SolubleHydroxide
}

// Solid is the zinc(II) solid that passivates the metal.
type Solid int

// Passivating solids.
const (
	ZincOxide Solid = iota
	EpsilonHydroxide
)

func (s Solid) String() string {
	switch s {
	case ZincOxide:
		return "oxide"
	case EpsilonHydroxide:
		return "epsilon"
	}
	return fmt.Sprintf("Solid(%d)", int(s))
}

// ParseSolid returns the solid with the given name.
func ParseSolid(name string) (Solid, error) {
	switch name {
	case "oxide", "ZnO":
		return ZincOxide, nil
	case "epsilon", "eps":
		return EpsilonHydroxide, nil
	}
	return -1, fmt.Errorf("pourbaix: invalid solid '%s'; valid options are oxide and epsilon", name)
}

// Species returns the solid species.
func (s Solid) Species() Species {
	if s == EpsilonHydroxide {
		return ZnOH2Eps
	}
	return ZnO
}

// solidReactions holds the reactions that involve the passivating solid.
type solidReactions struct {
	reduction, precipitation, hydroxo, tetrahydroxo ReactionID
}

func (s Solid) reactions() solidReactions {
	if s == EpsilonHydroxide {
		return solidReactions{RxnIIIEps, RxnVIIIEps, RxnIXEps, RxnXIEps}
	}
	return solidReactions{RxnIIIOx, RxnVIIIOx, RxnIXOx, RxnXIOx}
}

// layout is the sequence of reactions that bound the domains of a
// regime, from low to high pH. Domain j lies above chain[j] and between
// verticals[j-1] and verticals[j].
type layout struct {
	chain     []ReactionID
	verticals []ReactionID
	domains   []Species
}

func (r Regime) layout(s Solid) layout {
	sr := s.reactions()
	switch r {
	case OxidePassive:
		return layout{
			chain:     []ReactionID{RxnI, sr.reduction, RxnV},
			verticals: []ReactionID{sr.precipitation, sr.tetrahydroxo},
			domains:   []Species{ZnIon, s.Species(), ZnOH4},
		}
	case HydroxoPassive:
		return layout{
			chain:     []ReactionID{RxnI, sr.reduction, RxnIV, RxnV},
			verticals: []ReactionID{sr.precipitation, sr.hydroxo, RxnX},
			domains:   []Species{ZnIon, s.Species(), ZnOH3, ZnOH4},
		}
	case SolubleHydroxide:
		return layout{
			chain:     []ReactionID{RxnI, RxnIIIAq, RxnIV, RxnV},
			verticals: []ReactionID{RxnVIIIAq, RxnIXAq, RxnX},
			domains:   []Species{ZnIon, ZnOH2Aq, ZnOH3, ZnOH4},
		}
	}
	panic(fmt.Errorf("pourbaix: invalid regime %d", int(r)))
}
