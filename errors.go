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
	"errors"
	"fmt"
	"math"
)

// ErrOutOfDomain is returned, wrapped in a *DomainError, when an input
// is outside the range the thermodynamic data support.
var ErrOutOfDomain = errors.New("pourbaix: input outside admissible domain")

// DomainError describes an input that is out of range.
type DomainError struct {
	Name     string
	Value    float64
	Min, Max float64
	Units    string
}

func (e *DomainError) Error() string {
	if math.IsInf(e.Min, -1) && math.IsInf(e.Max, 1) {
		return fmt.Sprintf("pourbaix: %s=%g%s but should be finite", e.Name, e.Value, e.Units)
	}
	return fmt.Sprintf("pourbaix: %s=%g%s but should be in [%g, %g]%s",
		e.Name, e.Value, e.Units, e.Min, e.Max, e.Units)
}

// Unwrap allows errors.Is(err, ErrOutOfDomain).
func (e *DomainError) Unwrap() error { return ErrOutOfDomain }
