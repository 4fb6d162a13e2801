// Package configscope tracks the active configuration scope and declares it to the backend.
package configscope

import (
	"context"
	"fmt"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/asynclock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/notify"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _serviceName = "ConfigurationScopeService"

// Controller owns the single active configuration scope.
// Mutations must not be called on a dispatch context; they block on the backend.
type Controller interface {
	// Current returns a copy of the active scope, or nil when there is none.
	Current(ctx context.Context) *entity.ConfigurationScope
	// SetCurrentConfigScope declares a new scope, or rebinds the active one when id matches it.
	// Returns a *errors.ScopeConflictError if a scope with a different id is active.
	SetCurrentConfigScope(ctx context.Context, id, connectionID, projectID string) error
	// RemoveCurrentConfigScope removes the active scope. Does nothing when there is none.
	RemoveCurrentConfigScope(ctx context.Context) error
	// TryUpdateRootOnCurrentConfigScope sets the root and base directory if id is the active scope.
	TryUpdateRootOnCurrentConfigScope(ctx context.Context, id, root, baseDir string) (bool, error)
	// TryUpdateAnalysisReadinessOnCurrentConfigScope sets the readiness if id is the active scope.
	TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx context.Context, id string, ready bool) (bool, error)
	// Reset forgets the active scope without telling the backend.
	Reset()
	// SubscribeScopeChanged registers fn to run after every change of the active scope.
	SubscribeScopeChanged(fn func(entity.ScopeChangedEvent)) (unsubscribe func())
}

// Params are inbound parameters to initialize a new config scope controller.
type Params struct {
	fx.In

	Services slcore.ServiceProvider
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

type controller struct {
	services slcore.ServiceProvider
	logger   *zap.SugaredLogger
	stats    tally.Scope

	lock    *asynclock.Lock
	current *entity.ConfigurationScope

	scopeChanged notify.Listeners[entity.ScopeChangedEvent]
}

// New creates a config scope controller with no active scope.
func New(p Params) Controller {
	return &controller{
		services: p.Services,
		logger:   p.Logger.With("component", "config-scope"),
		stats:    p.Stats.SubScope("config_scope"),
		lock:     asynclock.New(),
	}
}

func (c *controller) Current(ctx context.Context) *entity.ConfigurationScope {
	defer c.lock.Acquire().Release()

	if c.current == nil {
		return nil
	}
	snapshot := *c.current
	return &snapshot
}

func (c *controller) SetCurrentConfigScope(ctx context.Context, id, connectionID, projectID string) error {
	if err := threading.EnsureBackground(ctx, "SetCurrentConfigScope"); err != nil {
		return err
	}
	if id == "" {
		return errors.ErrMissingScopeID
	}

	if err := c.setCurrentConfigScope(ctx, id, connectionID, projectID); err != nil {
		return err
	}
	c.raiseScopeChanged(true)
	return nil
}

func (c *controller) setCurrentConfigScope(ctx context.Context, id, connectionID, projectID string) error {
	defer c.lock.Acquire().Release()

	svc, err := c.configurationScopeService()
	if err != nil {
		return err
	}

	if c.current != nil {
		if c.current.ID != id {
			return &errors.ScopeConflictError{CurrentID: c.current.ID, RequestedID: id}
		}

		c.stats.Tagged(map[string]string{"call": "update_binding"}).Counter("backend_calls").Inc(1)
		if err := svc.UpdateBinding(ctx, id, mapper.BindingToDto(connectionID, projectID)); err != nil {
			return fmt.Errorf("updating binding of configuration scope %q: %w", id, err)
		}

		updated := *c.current
		updated.ConnectionID = connectionID
		updated.SonarProjectID = projectID
		c.current = &updated
		c.logger.Infof("configuration scope %q rebound to connection %q", id, connectionID)
		return nil
	}

	scope := entity.ConfigurationScope{
		ID:             id,
		ConnectionID:   connectionID,
		SonarProjectID: projectID,
	}
	c.stats.Tagged(map[string]string{"call": "add_scopes"}).Counter("backend_calls").Inc(1)
	if err := svc.AddScopes(ctx, []slcore.ConfigurationScopeDto{mapper.ConfigurationScopeToDto(scope)}); err != nil {
		return fmt.Errorf("declaring configuration scope %q: %w", id, err)
	}

	c.current = &scope
	c.logger.Infof("configuration scope %q declared, bound: %t", id, scope.IsBound())
	return nil
}

func (c *controller) RemoveCurrentConfigScope(ctx context.Context) error {
	if err := threading.EnsureBackground(ctx, "RemoveCurrentConfigScope"); err != nil {
		return err
	}

	removed, err := c.removeCurrentConfigScope(ctx)
	if err != nil {
		return err
	}
	if removed {
		c.raiseScopeChanged(true)
	}
	return nil
}

func (c *controller) removeCurrentConfigScope(ctx context.Context) (bool, error) {
	defer c.lock.Acquire().Release()

	if c.current == nil {
		return false, nil
	}

	svc, err := c.configurationScopeService()
	if err != nil {
		return false, err
	}

	id := c.current.ID
	c.stats.Tagged(map[string]string{"call": "remove_scope"}).Counter("backend_calls").Inc(1)
	if err := svc.RemoveScope(ctx, id); err != nil {
		return false, fmt.Errorf("removing configuration scope %q: %w", id, err)
	}

	c.current = nil
	c.logger.Infof("configuration scope %q removed", id)
	return true, nil
}

func (c *controller) TryUpdateRootOnCurrentConfigScope(ctx context.Context, id, root, baseDir string) (bool, error) {
	if err := threading.EnsureBackground(ctx, "TryUpdateRootOnCurrentConfigScope"); err != nil {
		return false, err
	}

	updated := c.tryUpdate(id, func(s *entity.ConfigurationScope) {
		s.RootPath = root
		s.BaseDir = baseDir
	})
	if updated {
		c.raiseScopeChanged(false)
	}
	return updated, nil
}

func (c *controller) TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx context.Context, id string, ready bool) (bool, error) {
	if err := threading.EnsureBackground(ctx, "TryUpdateAnalysisReadinessOnCurrentConfigScope"); err != nil {
		return false, err
	}

	updated := c.tryUpdate(id, func(s *entity.ConfigurationScope) {
		s.IsReadyForAnalysis = ready
	})
	if updated {
		c.raiseScopeChanged(false)
	}
	return updated, nil
}

// tryUpdate replaces the active scope with an updated copy if its id matches.
func (c *controller) tryUpdate(id string, update func(s *entity.ConfigurationScope)) bool {
	defer c.lock.Acquire().Release()

	if c.current == nil || c.current.ID != id {
		return false
	}
	updated := *c.current
	update(&updated)
	c.current = &updated
	return true
}

func (c *controller) Reset() {
	defer c.lock.Acquire().Release()

	if c.current != nil {
		c.logger.Infof("configuration scope %q reset", c.current.ID)
	}
	c.current = nil
}

func (c *controller) SubscribeScopeChanged(fn func(entity.ScopeChangedEvent)) func() {
	return c.scopeChanged.Subscribe(fn)
}

func (c *controller) configurationScopeService() (slcore.ConfigurationScopeService, error) {
	svc, ok := slcore.TryGetService[slcore.ConfigurationScopeService](c.services)
	if !ok {
		return nil, &errors.ServiceUnavailableError{Service: _serviceName}
	}
	return svc, nil
}

// raiseScopeChanged is called after the lock has been released so that listeners may read Current.
func (c *controller) raiseScopeChanged(definitionChanged bool) {
	c.stats.Tagged(map[string]string{"definition_changed": fmt.Sprint(definitionChanged)}).Counter("scope_changes").Inc(1)
	c.scopeChanged.Notify(entity.ScopeChangedEvent{DefinitionChanged: definitionChanged})
}
