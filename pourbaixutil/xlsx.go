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
	"math"
	"sort"

	"github.com/tealeg/xlsx"
	"github.com/zabat/pourbaix/speciation"
)

// Sheet names in the speciation workbook.
const (
	SpeciesSheet = "Species"
	StatusSheet  = "Status"
	DerivedSheet = "Derived"
)

// setFloat leaves the cell empty for samples that are not defined.
func setFloat(c *xlsx.Cell, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	c.SetFloat(v)
}

func headerRow(s *xlsx.Sheet, first []string, pH []float64) {
	row := s.AddRow()
	for _, h := range first {
		row.AddCell().SetString(h)
	}
	for _, v := range pH {
		row.AddCell().SetFloat(v)
	}
}

// ProfileXLSX converts p and any derived variables to a workbook with one
// row per species on the species sheet and one column per pH sample.
func ProfileXLSX(p *speciation.Profile, derived map[string][]float64) (*xlsx.File, error) {
	f := xlsx.NewFile()
	species, err := f.AddSheet(SpeciesSheet)
	if err != nil {
		return nil, err
	}
	headerRow(species, []string{"species", "label"}, p.PH)
	for i, k := range p.Keys {
		row := species.AddRow()
		row.AddCell().SetString(k)
		row.AddCell().SetString(p.Labels[i])
		for j := range p.PH {
			setFloat(row.AddCell(), p.Conc.At(i, j))
		}
	}

	status, err := f.AddSheet(StatusSheet)
	if err != nil {
		return nil, err
	}
	row := status.AddRow()
	for _, h := range []string{"pH", "converged", "error"} {
		row.AddCell().SetString(h)
	}
	for j, ph := range p.PH {
		row := status.AddRow()
		row.AddCell().SetFloat(ph)
		row.AddCell().SetString(fmt.Sprint(p.Converged[j]))
		if p.Errs[j] != nil {
			row.AddCell().SetString(p.Errs[j].Error())
		}
	}

	if len(derived) > 0 {
		d, err := f.AddSheet(DerivedSheet)
		if err != nil {
			return nil, err
		}
		headerRow(d, []string{"variable"}, p.PH)
		names := make([]string, 0, len(derived))
		for n := range derived {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			vals := derived[n]
			if len(vals) != len(p.PH) {
				return nil, fmt.Errorf("pourbaix: derived variable %s has %d values but there are %d pH samples", n, len(vals), len(p.PH))
			}
			row := d.AddRow()
			row.AddCell().SetString(n)
			for _, v := range vals {
				setFloat(row.AddCell(), v)
			}
		}
	}
	return f, nil
}

// WriteProfileXLSX writes p and any derived variables to an Excel file.
func WriteProfileXLSX(file string, p *speciation.Profile, derived map[string][]float64) error {
	f, err := ProfileXLSX(p, derived)
	if err != nil {
		return err
	}
	if err := f.Save(file); err != nil {
		return fmt.Errorf("pourbaix: writing speciation file: %v", err)
	}
	return nil
}
