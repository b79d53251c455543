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
	"fmt"
	"math"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver defaults.
const (
	DefaultTol     = 1.e-10
	DefaultMaxIter = 100

	// maxStep is the largest Newton step [log10 units].
	maxStep = 5.
	// maxHalvings is the number of times a step is halved before it is
	// accepted regardless of the residual.
	maxHalvings = 30
)

// DefaultPH returns the pH samples 0, 0.1, ..., 15.
func DefaultPH() []float64 {
	ph := make([]float64, 151)
	for i := range ph {
		ph[i] = float64(i) / 10
	}
	return ph
}

// Solver calculates the equilibrium speciation of a System over a range
// of pH.
type Solver struct {
	System *System
	Totals Totals

	// PH holds the pH samples. DefaultPH is used if it is empty.
	PH []float64

	// Tol is the convergence tolerance on the largest mass-balance
	// residual, log10(calculated/total).
	Tol float64

	MaxIter int

	// Log receives a warning for every sample that fails to converge.
	Log logrus.FieldLogger

	// solve replaces newton when set.
	solve func(pH float64, seed [numComponents]float64, active *[numComponents]bool, idx []int) ([numComponents]float64, error)
}

// NewSolver returns a solver for system s with the given totals and
// default settings.
func NewSolver(s *System, t Totals) (*Solver, error) {
	if err := t.Check(s); err != nil {
		return nil, err
	}
	return &Solver{
		System:  s,
		Totals:  t,
		PH:      DefaultPH(),
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Log:     logrus.StandardLogger(),
	}, nil
}

func (s *Solver) defaults() {
	if len(s.PH) == 0 {
		s.PH = DefaultPH()
	}
	if s.Tol <= 0 {
		s.Tol = DefaultTol
	}
	if s.MaxIter <= 0 {
		s.MaxIter = DefaultMaxIter
	}
	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}
}

// Solve calculates the speciation at every pH sample. Samples that do
// not converge are flagged in the returned profile rather than returned
// as an error; an error is only returned for invalid input.
func (s *Solver) Solve() (*Profile, error) {
	if s.System == nil {
		return nil, fmt.Errorf("speciation: solver has no system")
	}
	if err := s.Totals.Check(s.System); err != nil {
		return nil, err
	}
	s.defaults()

	var active [numComponents]bool
	var cold [numComponents]float64
	var idx []int
	for j, t := range s.Totals {
		if t > 0 {
			active[j] = true
			cold[j] = math.Log10(t)
			idx = append(idx, j)
		}
	}

	ns := len(s.System.Species)
	p := &Profile{
		System:    s.System,
		Totals:    s.Totals,
		PH:        append([]float64{}, s.PH...),
		Keys:      s.System.Keys(),
		Labels:    s.System.Labels(),
		Conc:      mat.NewDense(ns, len(s.PH), nil),
		Converged: make([]bool, len(s.PH)),
		Errs:      make([]error, len(s.PH)),
	}
	c := make([]float64, ns)
	var warm *[numComponents]float64
	solve := s.newton
	if s.solve != nil {
		solve = s.solve
	}

	for i, pH := range s.PH {
		var lx [numComponents]float64
		attempt := 0
		op := func() error {
			attempt++
			seed, from := cold, "cold"
			if warm != nil && attempt == 1 {
				seed, from = *warm, "warm"
			}
			var err error
			lx, err = solve(pH, seed, &active, idx)
			if err != nil {
				s.Log.WithFields(logrus.Fields{
					"system":  s.System.Name,
					"pH":      pH,
					"attempt": attempt,
					"seed":    from,
				}).Debug(err)
			}
			return err
		}
		var err error
		if warm == nil {
			err = op()
		} else {
			// Retry once from the totals.
			err = backoff.Retry(op, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1))
		}
		if err != nil {
			s.Log.WithFields(logrus.Fields{
				"system":   s.System.Name,
				"pH":       pH,
				"attempts": attempt,
			}).Warn(err)
			p.Errs[i] = err
			for k := 0; k < ns; k++ {
				p.Conc.Set(k, i, math.NaN())
			}
			continue
		}
		s.System.concentrations(c, pH, &lx, &active)
		p.Conc.SetCol(i, c)
		p.Converged[i] = true
		w := lx
		warm = &w
	}
	return p, nil
}

// newton solves the mass balances of the active components at pH by a
// damped Newton method on log10 free concentrations, starting at seed.
func (s *Solver) newton(pH float64, seed [numComponents]float64, active *[numComponents]bool, idx []int) ([numComponents]float64, error) {
	n := len(idx)
	lx := seed
	if n == 0 {
		return lx, nil
	}
	c := make([]float64, len(s.System.Species))
	residual := func(r, y []float64) {
		l := seed
		for k, j := range idx {
			l[j] = y[k]
		}
		s.System.concentrations(c, pH, &l, active)
		calc := s.System.balance(c)
		for k, j := range idx {
			r[k] = math.Log10(calc[j] / s.Totals[j])
		}
	}
	norm := func(r []float64) float64 {
		v := floats.Norm(r, math.Inf(1))
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}

	y := make([]float64, n)
	for k, j := range idx {
		y[k] = seed[j]
	}
	r := make([]float64, n)
	residual(r, y)
	rn := norm(r)

	yTry := make([]float64, n)
	rTry := make([]float64, n)
	jac := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	var step mat.VecDense
	settings := &fd.JacobianSettings{Formula: fd.Central}

	it := 0
	for ; it < s.MaxIter && !(rn < s.Tol); it++ {
		fd.Jacobian(jac, residual, y, settings)
		for k := range r {
			rhs.SetVec(k, -r[k])
		}
		if err := step.SolveVec(jac, rhs); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				return lx, &ConvergenceError{System: s.System.Name, PH: pH, Iterations: it, Residual: rn, Err: err}
			}
		}
		d := step.RawVector().Data
		if m := floats.Norm(d, math.Inf(1)); m > maxStep {
			floats.Scale(maxStep/m, d)
		} else if math.IsNaN(m) {
			return lx, &ConvergenceError{System: s.System.Name, PH: pH, Iterations: it, Residual: rn,
				Err: fmt.Errorf("singular Jacobian")}
		}
		var rnTry float64
		alpha := 1.
		for h := 0; ; h++ {
			floats.AddScaledTo(yTry, y, alpha, d)
			residual(rTry, yTry)
			rnTry = norm(rTry)
			if rnTry < rn || h == maxHalvings {
				break
			}
			alpha /= 2
		}
		y, yTry = yTry, y
		r, rTry = rTry, r
		rn = rnTry
	}
	if !(rn < s.Tol) {
		return lx, &ConvergenceError{System: s.System.Name, PH: pH, Iterations: it, Residual: rn}
	}
	for k, j := range idx {
		lx[j] = y[k]
	}
	return lx, nil
}
