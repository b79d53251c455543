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

	"github.com/ctessum/unit"
)

// Admissible input ranges.
const (
	MinCelsius = 25.
	MaxCelsius = 100.
	MinPZn     = 0.
	MaxPZn     = 8.

	kelvinOffset = 273.15
	domainTol    = 1.e-9
)

// Celsius returns a temperature in °C as a unit in Kelvin.
func Celsius(c float64) *unit.Unit {
	return unit.New(c+kelvinOffset, unit.Kelvin)
}

// Conditions are the state variables of one diagram.
type Conditions struct {
	// T is temperature [K].
	T float64

	// PZn is -log10 of the activity of dissolved zinc.
	PZn float64
}

// NewConditions checks that temperature has dimensions of Kelvin and
// that it and pZn are within the admissible range, returning a
// *DomainError otherwise.
func NewConditions(temperature *unit.Unit, pZn float64) (Conditions, error) {
	if temperature == nil {
		return Conditions{}, fmt.Errorf("pourbaix: temperature is not set")
	}
	if err := temperature.Check(unit.Kelvin); err != nil {
		return Conditions{}, fmt.Errorf("pourbaix: temperature: %v", err)
	}
	c := Conditions{T: temperature.Value(), PZn: pZn}
	return c, c.Check()
}

// Check returns a *DomainError if c is outside the admissible range.
func (c Conditions) Check() error {
	if tc := c.Celsius(); tc < MinCelsius-domainTol || tc > MaxCelsius+domainTol || tc != tc {
		return &DomainError{Name: "temperature", Value: tc, Min: MinCelsius, Max: MaxCelsius, Units: " °C"}
	}
	if c.PZn < MinPZn || c.PZn > MaxPZn || c.PZn != c.PZn {
		return &DomainError{Name: "pZn", Value: c.PZn, Min: MinPZn, Max: MaxPZn}
	}
	return nil
}

// Celsius returns the temperature in °C.
func (c Conditions) Celsius() float64 { return c.T - kelvinOffset }

func (c Conditions) String() string {
	return fmt.Sprintf("T=%.2f °C, pZn=%g", c.Celsius(), c.PZn)
}
