// Package analyzer dispatches file analyses to the backend and reports their outcome.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/gofrs/uuid"
	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/clock"
	"github.com/uber/slcore-bridge/src/slbridge/repository/settings"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Name identifies this analyzer in status notifications.
const Name = "slcore"

const (
	_reasonNotReady           = "configuration scope is not ready for analysis"
	_reasonServiceUnavailable = "analysis service is not available"
	_reasonFilesFailed        = "the backend could not analyze the file"
)

// Analyzer runs analyses on the backend.
type Analyzer interface {
	// ExecuteAnalysis analyzes one file and blocks until the backend call resolves or ctx is done.
	// Every outcome, including errors, is reported through a StatusNotifier.
	ExecuteAnalysis(ctx context.Context, filePath string, analysisID uuid.UUID, languages entity.AnalysisLanguages, options entity.AnalyzerOptions)
}

// Params are inbound parameters to create an Analyzer.
type Params struct {
	fx.In

	Services  slcore.ServiceProvider
	Tracker   configscope.Controller
	Settings  settings.Repository
	Locator   CompileDatabaseLocator
	Notifiers NotifierFactory
	Clock     clock.Clock
	Logger    *zap.SugaredLogger
}

type analyzer struct {
	services  slcore.ServiceProvider
	tracker   configscope.Controller
	settings  settings.Repository
	locator   CompileDatabaseLocator
	notifiers NotifierFactory
	clock     clock.Clock
	logger    *zap.SugaredLogger
}

// New creates an Analyzer.
func New(p Params) Analyzer {
	return &analyzer{
		services:  p.Services,
		tracker:   p.Tracker,
		settings:  p.Settings,
		locator:   p.Locator,
		notifiers: p.Notifiers,
		clock:     p.Clock,
		logger:    p.Logger.With("component", "analyzer"),
	}
}

func (a *analyzer) ExecuteAnalysis(ctx context.Context, filePath string, analysisID uuid.UUID, languages entity.AnalysisLanguages, options entity.AnalyzerOptions) {
	notifier := a.notifiers.Create(ctx, Name, filePath, analysisID)
	defer func() {
		if r := recover(); r != nil {
			notifier.AnalysisFailedWithError(fmt.Errorf("analysis panicked: %v", r))
		}
	}()
	notifier.AnalysisStarted()

	scope := a.tracker.Current(ctx)
	if scope == nil || !scope.IsReadyForAnalysis {
		notifier.AnalysisNotReady(_reasonNotReady)
		return
	}

	svc, ok := slcore.TryGetService[slcore.AnalysisService](a.services)
	if !ok {
		notifier.AnalysisFailed(_reasonServiceUnavailable)
		return
	}

	properties := a.extraProperties(ctx, scope, filePath, languages, options)
	defer properties.close()

	resp, err := svc.AnalyzeFilesAndTrack(ctx, slcore.AnalyzeFilesAndTrackParams{
		ConfigurationScopeID:    scope.ID,
		AnalysisID:              analysisID,
		FilesToAnalyze:          []uri.URI{uri.File(filePath)},
		ExtraProperties:         properties.values,
		ShouldFetchServerIssues: options.IsOnOpen,
		StartTime:               a.clock.Now().UnixMilli(),
	})

	switch {
	case err != nil && (ctx.Err() != nil || errors.Is(err, context.Canceled)):
		notifier.AnalysisCancelled()
	case err != nil:
		notifier.AnalysisFailedWithError(err)
	case resp != nil && len(resp.FailedAnalysisFiles) > 0:
		notifier.AnalysisFailed(_reasonFilesFailed)
	default:
		var result entity.AnalysisResult
		if resp != nil {
			result.RawIssues = resp.RawIssues
		}
		notifier.AnalysisFinished(result)
	}
}

type extraProperties struct {
	values  map[string]string
	handles []CompileDatabaseHandle
	logger  *zap.SugaredLogger
}

func (p *extraProperties) close() {
	for _, h := range p.handles {
		if err := h.Close(); err != nil {
			p.logger.Warnf("failed to remove temporary compilation database %s: %v", h.Path(), err)
		}
	}
}

// extraProperties merges the user properties with those derived for this analysis.
// Derived values only apply to this call and are never written back to the settings.
func (a *analyzer) extraProperties(ctx context.Context, scope *entity.ConfigurationScope, filePath string, languages entity.AnalysisLanguages, options entity.AnalyzerOptions) *extraProperties {
	p := &extraProperties{
		values: maps.Clone(a.settings.AnalysisProperties(ctx, scope.ID)),
		logger: a.logger,
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}

	if languages.Contains(entity.AnalysisLanguageCFamily) {
		if _, explicit := p.values[entity.PropertyCFamilyCompileCommands]; !explicit {
			handle, err := a.locator.Locate(ctx, filePath, scope.RootPath)
			switch {
			case err != nil:
				a.logger.Warnf("failed to locate compilation database for %s: %v", filePath, err)
			case handle != nil:
				p.handles = append(p.handles, handle)
				p.values[entity.PropertyCFamilyCompileCommands] = handle.Path()
			}
		}
	}

	if options.CreateReproducer {
		p.values[entity.PropertyCFamilyReproducer] = filePath
	}
	return p
}
