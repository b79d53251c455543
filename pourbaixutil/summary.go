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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zabat/pourbaix"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle   = lipgloss.NewStyle().Width(28).Foreground(lipgloss.Color("240"))
	cellStyle    = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
	regimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

func summaryLine(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "%s%s\n", labelStyle.Render(label), cellStyle.Render(fmt.Sprintf("%.4f", v)))
}

func tableRow(cells ...string) string {
	o := make([]string, len(cells))
	for i, c := range cells {
		o[i] = cellStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, o...) + "\n"
}

// Summary returns a report of the ionic product of water, the regime
// thresholds, and the standard potentials at the conditions of calc.
func Summary(calc *pourbaix.Calculator) string {
	c := calc.Conditions()
	b := new(strings.Builder)
	fmt.Fprintln(b, titleStyle.Render("Zn-H2O at "+c.String()))

	fmt.Fprintln(b, headingStyle.Render("Water"))
	summaryLine(b, "pKw", calc.PKw())
	summaryLine(b, "neutral pH", calc.NeutralPH())

	t := calc.Thresholds()
	fmt.Fprintln(b, headingStyle.Render("pZn thresholds"))
	summaryLine(b, "Zn(OH)3^- (ε-Zn(OH)2)", t.HydroxoEps)
	summaryLine(b, "Zn(OH)3^- (Zn(OH)2(aq))", t.HydroxoAq)
	summaryLine(b, "Zn(OH)3^- (ZnO)", t.HydroxoOx)
	summaryLine(b, "passivation (ZnO)", t.PassivationOx)
	summaryLine(b, "passivation (ε-Zn(OH)2)", t.PassivationEps)
	for _, s := range []pourbaix.Solid{pourbaix.ZincOxide, pourbaix.EpsilonHydroxide} {
		r := pourbaix.SelectRegime(c.PZn, t.Hydroxo(s), t.Passivation(s))
		fmt.Fprintf(b, "%s%s\n", labelStyle.Render("regime ("+s.String()+")"), regimeStyle.Render(r.String()))
	}

	fmt.Fprintln(b, headingStyle.Render("Standard potentials [V vs. SHE]"))
	b.WriteString(tableRow("reaction", "ΔG [kJ/mol]", "E0", "E0 (ΔS/nF)"))
	for _, e := range calc.StandardPotentials() {
		b.WriteString(tableRow(e.Reaction.String(),
			fmt.Sprintf("%.3f", e.DeltaG/1000),
			fmt.Sprintf("%.5f", e.E0),
			fmt.Sprintf("%.5f", e.E0Nernst)))
	}
	return b.String()
}

// SweepSummary returns a table of the regime of each diagram.
func SweepSummary(ds []*pourbaix.Diagram) string {
	b := new(strings.Builder)
	fmt.Fprintln(b, titleStyle.Render("Diagram regimes"))
	b.WriteString(tableRow("T [°C]", "pZn", "solid", "regime"))
	for _, d := range ds {
		b.WriteString(tableRow(fmt.Sprintf("%.4g", d.Celsius()), fmt.Sprintf("%g", d.PZn),
			d.Solid.String(), d.Regime.String()))
	}
	return b.String()
}
