// Package scopeupdater translates the solution open in the IDE into the active configuration scope.
package scopeupdater

import (
	"context"
	"fmt"

	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/asynclock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"github.com/uber/slcore-bridge/src/slbridge/repository/connection"
	"github.com/uber/slcore-bridge/src/slbridge/repository/solution"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller keeps the active configuration scope in line with the open solution.
type Controller interface {
	// UpdateConfigScopeForCurrentSolution declares, rebinds or removes the active scope
	// so that it matches the solution repository. Must not be called on a dispatch context.
	// Calls run one at a time and each reads the solution once it runs, so the last call wins.
	UpdateConfigScopeForCurrentSolution(ctx context.Context) error
}

// Params are inbound parameters to initialize a new scope updater.
type Params struct {
	fx.In

	Tracker     configscope.Controller
	Solutions   solution.Repository
	Connections connection.Repository
	Logger      *zap.SugaredLogger
}

type controller struct {
	tracker     configscope.Controller
	solutions   solution.Repository
	connections connection.Repository
	logger      *zap.SugaredLogger

	lock *asynclock.Lock
}

// New creates a scope updater.
func New(p Params) Controller {
	return &controller{
		tracker:     p.Tracker,
		solutions:   p.Solutions,
		connections: p.Connections,
		logger:      p.Logger.With("component", "scope-updater"),
		lock:        asynclock.New(),
	}
}

func (c *controller) UpdateConfigScopeForCurrentSolution(ctx context.Context) error {
	if err := threading.EnsureBackground(ctx, "UpdateConfigScopeForCurrentSolution"); err != nil {
		return err
	}
	defer c.lock.Acquire().Release()

	sln, ok := c.solutions.Current(ctx)
	if !ok {
		return c.tracker.RemoveCurrentConfigScope(ctx)
	}

	connectionID, projectKey := c.resolveBinding(ctx, sln)
	err := c.tracker.SetCurrentConfigScope(ctx, sln.Name, connectionID, projectKey)
	if current, _, conflict := errors.ScopeConflict(err); conflict {
		// The IDE switched solutions without closing the previous one.
		c.logger.Warnf("replacing stale configuration scope %q with %q", current, sln.Name)
		if err := c.tracker.RemoveCurrentConfigScope(ctx); err != nil {
			return fmt.Errorf("removing stale configuration scope %q: %w", current, err)
		}
		err = c.tracker.SetCurrentConfigScope(ctx, sln.Name, connectionID, projectKey)
	}
	if err != nil {
		return err
	}

	if sln.RootPath == "" {
		return nil
	}
	baseDir := sln.BaseDir
	if baseDir == "" {
		baseDir = sln.RootPath
	}
	_, err = c.tracker.TryUpdateRootOnCurrentConfigScope(ctx, sln.Name, sln.RootPath, baseDir)
	return err
}

// resolveBinding maps the solution's binding onto the backend connection id.
// A binding to an unknown connection is declared unbound.
func (c *controller) resolveBinding(ctx context.Context, sln *entity.Solution) (connectionID, projectKey string) {
	if sln.Binding == nil {
		return "", ""
	}

	conn, ok := c.connections.TryGet(ctx, sln.Binding.ConnectionID)
	if !ok {
		c.logger.Warnw("solution is bound to an unknown connection",
			zap.String("solution", sln.Name),
			zap.String("connectionId", sln.Binding.ConnectionID),
		)
		return "", ""
	}
	return mapper.ConnectionID(conn), sln.Binding.ProjectKey
}
