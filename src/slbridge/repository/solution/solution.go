// Package solution holds the solution currently open in the IDE.
package solution

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"github.com/uber/slcore-bridge/src/slbridge/model"
)

// Repository is the in-memory store of the open solution. At most one solution is open at a time.
type Repository interface {
	// Current returns a copy of the open solution.
	Current(ctx context.Context) (*entity.Solution, bool)
	// Open replaces the open solution. The IDE session in ctx, if any, becomes its owner.
	Open(ctx context.Context, s *entity.Solution) error
	// Close closes the open solution. Returns false if none was open.
	Close(ctx context.Context) bool
	// CloseSession closes the open solution if it was opened by the given session.
	CloseSession(ctx context.Context, session uuid.UUID) bool
	// SetBinding replaces the binding of the open solution. A nil binding unbinds it.
	SetBinding(ctx context.Context, binding *entity.Binding) error
}

type repository struct {
	mu      sync.Mutex
	current *model.Solution
	stats   tally.Scope
}

// New returns an empty solution repository.
func New(stats tally.Scope) Repository {
	return &repository{
		stats: stats,
	}
}

func (r *repository) Current(ctx context.Context) (*entity.Solution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, false
	}
	return mapper.ModelToSolution(r.current), true
}

func (r *repository) Open(ctx context.Context, s *entity.Solution) error {
	if s == nil {
		return errors.New("can't open nil solution")
	}
	if s.Name == "" {
		return errors.ErrMissingScopeID
	}

	m := mapper.SolutionToModel(s)
	if session, err := mapper.ContextToSessionUUID(ctx); err == nil {
		m.Session = session
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = m
	r.updateGauge()
	return nil
}

func (r *repository) Close(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	r.current = nil
	r.updateGauge()
	return true
}

func (r *repository) CloseSession(ctx context.Context, session uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.Session != session {
		return false
	}
	r.current = nil
	r.updateGauge()
	return true
}

func (r *repository) SetBinding(ctx context.Context, binding *entity.Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return errors.New("no solution is open")
	}
	r.current.BindingConnectionID = ""
	r.current.BindingProjectKey = ""
	if binding != nil {
		r.current.BindingConnectionID = binding.ConnectionID
		r.current.BindingProjectKey = binding.ProjectKey
	}
	return nil
}

func (r *repository) updateGauge() {
	open := 0
	if r.current != nil {
		open = 1
	}
	r.stats.Gauge("open_solutions").Update(float64(open))
}
