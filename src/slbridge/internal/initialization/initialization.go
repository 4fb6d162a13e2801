// Package initialization sequences a component's startup after the components it depends on.
package initialization

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Initializable is implemented by components whose startup can be awaited by others.
type Initializable interface {
	InitializationProcessor() Processor
}

// Processor runs a component's initialization exactly once, after its dependencies have initialized.
type Processor interface {
	// Initialize initializes all dependencies, then runs the owner's initialization.
	// Only the first call does any work; concurrent and later calls wait for it and return its result.
	Initialize(ctx context.Context) error
	// Wait blocks until initialization has finished or ctx is done.
	Wait(ctx context.Context) error
	// Done is closed once initialization has finished, successfully or not.
	Done() <-chan struct{}
	// IsFinalized reports whether initialization has finished.
	IsFinalized() bool
}

// Params configure a new Processor.
type Params struct {
	// Owner names the component being initialized, for logging.
	Owner string
	// Dependencies must finish initializing before Initialize runs.
	Dependencies []Initializable
	// Initialize is the owner's own initialization step. May be nil.
	Initialize func(ctx context.Context) error
	Logger     *zap.SugaredLogger
}

type processor struct {
	owner        string
	dependencies []Initializable
	initialize   func(ctx context.Context) error
	logger       *zap.SugaredLogger

	once sync.Once
	done chan struct{}
	err  error
}

// New creates a Processor that has not started yet.
func New(p Params) Processor {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &processor{
		owner:        p.Owner,
		dependencies: p.Dependencies,
		initialize:   p.Initialize,
		logger:       logger.With("initialization", p.Owner),
		done:         make(chan struct{}),
	}
}

func (p *processor) Initialize(ctx context.Context) error {
	p.once.Do(func() {
		defer close(p.done)
		p.err = p.run(ctx)
		if p.err != nil {
			p.logger.Errorf("initialization failed: %v", p.err)
			return
		}
		p.logger.Debug("initialization finished")
	})
	return p.err
}

func (p *processor) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *processor) Done() <-chan struct{} {
	return p.done
}

func (p *processor) IsFinalized() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *processor) run(ctx context.Context) error {
	p.logger.Debugf("initialization started with %d dependencies", len(p.dependencies))
	for _, dep := range p.dependencies {
		if dep == nil {
			continue
		}
		if err := dep.InitializationProcessor().Initialize(ctx); err != nil {
			return fmt.Errorf("initializing dependency of %s: %w", p.owner, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if p.initialize == nil {
		return nil
	}
	return p.initialize(ctx)
}
