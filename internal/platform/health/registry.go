// Package health runs the checks blogctl needs before it trusts seeded data.
// Components implementing [ports.HealthChecker] register with a Registry.
// CheckAll runs them and Err turns the results into one error.
package health

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds health checkers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. A later checker with the same name replaces the
// earlier one's result in CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker in registration order and returns the results
// keyed by checker name; nil means healthy. Checks run outside the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Healthy reports whether every result in a CheckAll map is nil.
func Healthy(results map[string]error) bool {
	return Err(results) == nil
}

// Err joins the failed results in name order, each prefixed with its
// checker name. It returns nil when all results are healthy.
func Err(results map[string]error) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(results)) {
		if err := results[name]; err != nil {
			errs = append(errs, fmt.Errorf("%s unhealthy: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
