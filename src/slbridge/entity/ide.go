package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/uri"
)

// IDE method names handled by the bridge.
const (
	MethodSolutionDidOpen                = "solution/didOpen"
	MethodSolutionDidClose               = "solution/didClose"
	MethodSolutionDidChangeBinding       = "solution/didChangeBinding"
	MethodConnectionDidChangeCredentials = "connection/didChangeCredentials"
	MethodAnalysisAnalyze                = "analysis/analyze"
	MethodAnalysisCancel                 = "analysis/cancel"
)

// SolutionDidOpenParams is sent by the IDE when a solution has been opened.
type SolutionDidOpenParams struct {
	Name     string   `json:"name"`
	RootPath string   `json:"rootPath,omitempty"`
	BaseDir  string   `json:"baseDir,omitempty"`
	Binding  *Binding `json:"binding,omitempty"`
}

// SolutionDidChangeBindingParams is sent when the binding of the open solution changed. A nil binding unbinds.
type SolutionDidChangeBindingParams struct {
	Binding *Binding `json:"binding,omitempty"`
}

// ConnectionDidChangeCredentialsParams is sent after the user updated the token of a connection.
type ConnectionDidChangeCredentialsParams struct {
	ConnectionID string `json:"connectionId"`
}

// AnalyzeParams requests the analysis of a single file.
type AnalyzeParams struct {
	FileURI          uri.URI           `json:"fileUri"`
	Languages        AnalysisLanguages `json:"languages"`
	IsOnOpen         bool              `json:"isOnOpen"`
	CreateReproducer bool              `json:"createReproducer"`
}

// AnalyzeResult is returned for an accepted analysis request.
type AnalyzeResult struct {
	AnalysisID uuid.UUID `json:"analysisId"`
}

// CancelAnalysisParams cancels a scheduled or running analysis.
type CancelAnalysisParams struct {
	AnalysisID uuid.UUID `json:"analysisId"`
}

type keyType string

// SessionContextKey identifies the IDE session UUID in a context.
const SessionContextKey keyType = "SessionUUID"

// AnalysisStatus is the state of one analysis as reported to the IDE.
type AnalysisStatus string

const (
	AnalysisStatusStarted   AnalysisStatus = "started"
	AnalysisStatusNotReady  AnalysisStatus = "notReady"
	AnalysisStatusFailed    AnalysisStatus = "failed"
	AnalysisStatusCancelled AnalysisStatus = "cancelled"
	AnalysisStatusFinished  AnalysisStatus = "finished"
)

// MethodAnalysisDidChangeStatus is sent to the IDE whenever an analysis changes status.
const MethodAnalysisDidChangeStatus = "analysis/didChangeStatus"

// AnalysisStatusParams is sent with MethodAnalysisDidChangeStatus.
type AnalysisStatusParams struct {
	AnalysisID uuid.UUID      `json:"analysisId"`
	FileURI    uri.URI        `json:"fileUri"`
	Analyzer   string         `json:"analyzer"`
	Status     AnalysisStatus `json:"status"`
	Reason     string         `json:"reason,omitempty"`
	IssueCount int            `json:"issueCount,omitempty"`
}
