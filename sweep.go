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
	"context"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/zabat/pourbaix/internal/hash"
)

// Sweeper calculates diagrams for many sets of conditions in parallel.
// Results are cached, so callers must not modify the returned diagrams.
// It is safe for concurrent use.
type Sweeper struct {
	Config Config

	// CacheSize is the number of diagrams to hold in memory.
	CacheSize int

	cacheInit sync.Once
	cache     *requestcache.Cache
}

// NewSweeper returns a sweeper that uses cfg for every diagram.
func NewSweeper(cfg Config) *Sweeper {
	return &Sweeper{Config: cfg, CacheSize: 100}
}

// Diagram returns the diagram at temperature tc [°C] and pZn.
func (s *Sweeper) Diagram(ctx context.Context, tc, pZn float64) (*Diagram, error) {
	s.cacheInit.Do(func() {
		s.cache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			c := request.(Conditions)
			return New(s.Config, c)
		}, runtime.GOMAXPROCS(-1),
			requestcache.Deduplicate(), requestcache.Memory(s.CacheSize))
	})
	c, err := NewConditions(Celsius(tc), pZn)
	if err != nil {
		return nil, err
	}
	cfg := s.Config
	if cfg.Table == nil {
		cfg.Table = DefaultTable()
	}
	req := s.cache.NewRequest(ctx, c, hash.Key(*cfg.Table, cfg.Approximation, cfg.Solid, cfg.Grid, c.T, c.PZn))
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.(*Diagram), nil
}

// Diagrams returns the diagrams for every combination of temperature
// [°C] and pZn, ordered by temperature and then pZn.
func (s *Sweeper) Diagrams(ctx context.Context, temps, pZns []float64) ([]*Diagram, error) {
	o := make([]*Diagram, len(temps)*len(pZns))
	errs := make([]error, len(o))
	var wg sync.WaitGroup
	for i, tc := range temps {
		for j, pZn := range pZns {
			wg.Add(1)
			go func(k int, tc, pZn float64) {
				defer wg.Done()
				o[k], errs[k] = s.Diagram(ctx, tc, pZn)
			}(i*len(pZns)+j, tc, pZn)
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}
