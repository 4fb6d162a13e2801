package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	ideclient "github.com/uber/slcore-bridge/src/slbridge/gateway/ide-client"
	"github.com/uber/slcore-bridge/src/slbridge/internal/clock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"github.com/uber/slcore-bridge/src/slbridge/internal/outputlog"
	"github.com/uber/slcore-bridge/src/slbridge/internal/serverinfofile"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// StatusNotifier reports the progress of a single analysis.
type StatusNotifier interface {
	AnalysisStarted()
	AnalysisNotReady(reason string)
	AnalysisFailed(reason string)
	AnalysisFailedWithError(err error)
	AnalysisCancelled()
	AnalysisFinished(result entity.AnalysisResult)
}

// NotifierFactory creates a StatusNotifier per analysis.
type NotifierFactory interface {
	// Create returns a notifier for one analysis. Notifications keep the values of ctx but not its cancellation.
	Create(ctx context.Context, analyzerName, filePath string, analysisID uuid.UUID) StatusNotifier
}

// NotifierFactoryParams are inbound parameters to create a NotifierFactory.
type NotifierFactoryParams struct {
	fx.In

	IdeGateway ideclient.Gateway
	Clock      clock.Clock
	Output     *outputlog.Output `optional:"true"`
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type notifierFactory struct {
	ideGateway ideclient.Gateway
	clock      clock.Clock
	output     *outputlog.Output
	logger     *zap.SugaredLogger
	stats      tally.Scope
}

const _outputName = "slbridge-analysis"

// OutputParams are inbound parameters to create the analysis output file.
type OutputParams struct {
	fx.In

	FS             fs.BridgeFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// NewOutput creates the output file that lists the outcome of every analysis.
func NewOutput(p OutputParams) (*outputlog.Output, error) {
	return outputlog.New(outputlog.Params{
		FS:             p.FS,
		Lifecycle:      p.Lifecycle,
		ServerInfoFile: p.ServerInfoFile,
	}, _outputName)
}

// NewNotifierFactory creates a NotifierFactory that logs, records metrics and forwards status to the IDE.
func NewNotifierFactory(p NotifierFactoryParams) NotifierFactory {
	return &notifierFactory{
		ideGateway: p.IdeGateway,
		clock:      p.Clock,
		output:     p.Output,
		logger:     p.Logger.With("component", "analysis-status"),
		stats:      p.Stats.SubScope("analysis"),
	}
}

func (f *notifierFactory) Create(ctx context.Context, analyzerName, filePath string, analysisID uuid.UUID) StatusNotifier {
	return &notifier{
		ctx:        context.WithoutCancel(ctx),
		ideGateway: f.ideGateway,
		clock:      f.clock,
		output:     f.output,
		logger: f.logger.With(
			zap.String("analyzer", analyzerName),
			zap.String("file", filePath),
			zap.String("analysisId", analysisID.String()),
		),
		stats:      f.stats.Tagged(map[string]string{"analyzer": analyzerName}),
		analyzer:   analyzerName,
		fileURI:    uri.File(filePath),
		analysisID: analysisID,
	}
}

type notifier struct {
	ctx        context.Context
	ideGateway ideclient.Gateway
	clock      clock.Clock
	output     *outputlog.Output
	logger     *zap.SugaredLogger
	stats      tally.Scope

	analyzer   string
	fileURI    uri.URI
	analysisID uuid.UUID
	startedAt  time.Time
}

func (n *notifier) AnalysisStarted() {
	n.startedAt = n.clock.Now()
	n.logger.Debug("analysis started")
	n.send(entity.AnalysisStatusStarted, "", 0)
}

func (n *notifier) AnalysisNotReady(reason string) {
	n.logger.Infof("analysis not ready: %s", reason)
	n.output.Printf("%s: not ready, %s", n.fileURI.Filename(), reason)
	n.send(entity.AnalysisStatusNotReady, reason, 0)
}

func (n *notifier) AnalysisFailed(reason string) {
	n.logger.Warnf("analysis failed: %s", reason)
	n.output.Printf("%s: failed, %s", n.fileURI.Filename(), reason)
	n.send(entity.AnalysisStatusFailed, reason, 0)
	n.logToIDE(reason)
}

func (n *notifier) AnalysisFailedWithError(err error) {
	n.logger.Errorf("analysis failed: %v", err)
	n.output.Printf("%s: failed, %v", n.fileURI.Filename(), err)
	n.send(entity.AnalysisStatusFailed, err.Error(), 0)
	n.logToIDE(err.Error())
}

func (n *notifier) AnalysisCancelled() {
	n.logger.Debug("analysis cancelled")
	n.output.Printf("%s: cancelled", n.fileURI.Filename())
	n.send(entity.AnalysisStatusCancelled, "", 0)
}

func (n *notifier) AnalysisFinished(result entity.AnalysisResult) {
	issueCount := 0
	for _, issues := range result.RawIssues {
		issueCount += len(issues)
	}
	n.stats.Counter("issues").Inc(int64(issueCount))
	var elapsed time.Duration
	if !n.startedAt.IsZero() {
		elapsed = n.clock.Now().Sub(n.startedAt)
		n.stats.Timer("duration").Record(elapsed)
	}
	n.output.Printf("%s: %d issue(s) in %s", n.fileURI.Filename(), issueCount, elapsed)

	n.logger.Infof("analysis finished with %d issue(s)", issueCount)
	n.publishDiagnostics(result)
	n.send(entity.AnalysisStatusFinished, "", issueCount)
}

func (n *notifier) send(status entity.AnalysisStatus, reason string, issueCount int) {
	n.stats.Counter(string(status)).Inc(1)
	err := n.ideGateway.AnalysisStatus(n.ctx, &entity.AnalysisStatusParams{
		AnalysisID: n.analysisID,
		FileURI:    n.fileURI,
		Analyzer:   n.analyzer,
		Status:     status,
		Reason:     reason,
		IssueCount: issueCount,
	})
	if err != nil {
		n.logger.Warnw("failed to send analysis status", zap.String("status", string(status)), zap.Error(err))
	}
}

func (n *notifier) logToIDE(reason string) {
	err := n.ideGateway.LogMessage(n.ctx, &protocol.LogMessageParams{
		Type:    protocol.MessageTypeError,
		Message: fmt.Sprintf("Analysis of %s failed: %s", n.fileURI.Filename(), reason),
	})
	if err != nil {
		n.logger.Warnf("failed to log analysis failure to the IDE: %v", err)
	}
}

// publishDiagnostics publishes the issues of every reported file. The analyzed file is always published so that stale diagnostics are cleared.
func (n *notifier) publishDiagnostics(result entity.AnalysisResult) {
	files := make(map[uri.URI][]entity.RawIssue, len(result.RawIssues)+1)
	files[n.fileURI] = nil
	for file, issues := range result.RawIssues {
		files[uri.URI(file)] = issues
	}

	for file, issues := range files {
		err := n.ideGateway.PublishDiagnostics(n.ctx, &protocol.PublishDiagnosticsParams{
			URI:         file,
			Diagnostics: mapper.RawIssuesToDiagnostics(issues),
		})
		if err != nil {
			n.logger.Warnw("failed to publish diagnostics", zap.String("uri", string(file)), zap.Error(err))
		}
	}
}
