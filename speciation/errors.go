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

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConvergence is wrapped by every *ConvergenceError.
	ErrNoConvergence = errors.New("speciation: solver did not converge")

	// ErrInvalidTotals is wrapped by every *TotalsError.
	ErrInvalidTotals = errors.New("speciation: invalid total concentration")
)

// ConvergenceError describes a pH sample at which the mass balances
// could not be satisfied.
type ConvergenceError struct {
	System     string
	PH         float64
	Iterations int

	// Residual is the largest remaining mass-balance residual, as
	// log10(calculated/total).
	Residual float64

	// Err is the underlying error, if any.
	Err error
}

func (e *ConvergenceError) Error() string {
	msg := fmt.Sprintf("speciation: %s system did not converge at pH %.2f after %d iterations (residual %.3g)",
		e.System, e.PH, e.Iterations, e.Residual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrNoConvergence).
func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }

// TotalsError describes an invalid total or solution recipe.
type TotalsError struct {
	Name  string
	Value float64
	Msg   string
}

func (e *TotalsError) Error() string {
	return fmt.Sprintf("speciation: %s=%g %s", e.Name, e.Value, e.Msg)
}

// Unwrap allows errors.Is(err, ErrInvalidTotals).
func (e *TotalsError) Unwrap() error { return ErrInvalidTotals }
