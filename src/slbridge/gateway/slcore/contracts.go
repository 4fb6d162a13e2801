// Package slcore is the outbound gateway to the analysis backend.
package slcore

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"go.lsp.dev/uri"
)

// Outbound backend methods.
const (
	MethodDidAddConfigurationScopes    = "configurationScope/didAddConfigurationScopes"
	MethodDidRemoveConfigurationScope  = "configurationScope/didRemoveConfigurationScope"
	MethodDidUpdateBinding             = "binding/didUpdateBinding"
	MethodDidUpdateConnections         = "connection/didUpdateConnections"
	MethodDidChangeCredentials         = "connection/didChangeCredentials"
	MethodAnalyzeFilesAndTrack         = "analysis/analyzeFilesAndTrack"
	MethodDidSetUserAnalysisProperties = "analysis/didSetUserAnalysisProperties"
)

// Inbound backend methods.
const (
	MethodDidChangeAnalysisReadiness = "analysis/didChangeAnalysisReadiness"
)

// ConfigurationScopeService declares configuration scopes and their bindings to the backend.
type ConfigurationScopeService interface {
	AddScopes(ctx context.Context, scopes []ConfigurationScopeDto) error
	UpdateBinding(ctx context.Context, scopeID string, binding BindingConfigurationDto) error
	RemoveScope(ctx context.Context, scopeID string) error
}

// ConnectionService mirrors the locally known connections to the backend.
type ConnectionService interface {
	ReplaceConnections(ctx context.Context, cloud []SonarCloudConnectionConfigurationDto, selfManaged []SonarQubeConnectionConfigurationDto) error
	RefreshCredentials(ctx context.Context, connectionID string) error
}

// AnalysisService runs analyses. The call returns once the backend has finished or ctx is done.
type AnalysisService interface {
	AnalyzeFilesAndTrack(ctx context.Context, params AnalyzeFilesAndTrackParams) (*AnalyzeFilesResponse, error)
}

// AnalysisPropertiesService holds the user analysis properties of each configuration scope.
type AnalysisPropertiesService interface {
	SetAnalysisProperties(ctx context.Context, scopeID string, properties map[string]string) error
}

// BindingConfigurationDto is the binding of a configuration scope. Empty fields mean unbound.
type BindingConfigurationDto struct {
	ConnectionID              string `json:"connectionId,omitempty"`
	SonarProjectKey           string `json:"sonarProjectKey,omitempty"`
	BindingSuggestionDisabled bool   `json:"bindingSuggestionDisabled"`
}

// ConfigurationScopeDto declares a configuration scope.
type ConfigurationScopeDto struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Bindable bool                    `json:"bindable"`
	Binding  BindingConfigurationDto `json:"binding"`
}

// SonarQubeConnectionConfigurationDto describes a self-managed connection.
type SonarQubeConnectionConfigurationDto struct {
	ConnectionID        string `json:"connectionId"`
	ServerURL           string `json:"serverUrl"`
	DisableNotification bool   `json:"disableNotification"`
}

// SonarCloudConnectionConfigurationDto describes a cloud connection.
type SonarCloudConnectionConfigurationDto struct {
	ConnectionID        string `json:"connectionId"`
	Organization        string `json:"organization"`
	Region              string `json:"region"`
	DisableNotification bool   `json:"disableNotification"`
}

// DidAddConfigurationScopesParams is sent with MethodDidAddConfigurationScopes.
type DidAddConfigurationScopesParams struct {
	AddedScopes []ConfigurationScopeDto `json:"addedScopes"`
}

// DidRemoveConfigurationScopeParams is sent with MethodDidRemoveConfigurationScope.
type DidRemoveConfigurationScopeParams struct {
	RemovedID string `json:"removedId"`
}

// DidUpdateBindingParams is sent with MethodDidUpdateBinding.
type DidUpdateBindingParams struct {
	ConfigScopeID  string                  `json:"configScopeId"`
	UpdatedBinding BindingConfigurationDto `json:"updatedBinding"`
}

// DidUpdateConnectionsParams is sent with MethodDidUpdateConnections.
type DidUpdateConnectionsParams struct {
	SonarQubeConnections  []SonarQubeConnectionConfigurationDto  `json:"sonarQubeConnections"`
	SonarCloudConnections []SonarCloudConnectionConfigurationDto `json:"sonarCloudConnections"`
}

// DidChangeCredentialsParams is sent with MethodDidChangeCredentials.
type DidChangeCredentialsParams struct {
	ConnectionID string `json:"connectionId"`
}

// DidSetUserAnalysisPropertiesParams is sent with MethodDidSetUserAnalysisProperties.
type DidSetUserAnalysisPropertiesParams struct {
	ConfigurationScopeID string            `json:"configurationScopeId"`
	Properties           map[string]string `json:"properties"`
}

// AnalyzeFilesAndTrackParams requests an analysis.
type AnalyzeFilesAndTrackParams struct {
	ConfigurationScopeID    string            `json:"configurationScopeId"`
	AnalysisID              uuid.UUID         `json:"analysisId"`
	FilesToAnalyze          []uri.URI         `json:"filesToAnalyze"`
	ExtraProperties         map[string]string `json:"extraProperties"`
	ShouldFetchServerIssues bool              `json:"shouldFetchServerIssues"`
	StartTime               int64             `json:"startTime"`
}

// AnalyzeFilesResponse lists the files the backend could not analyze, together with the raw issues it found.
type AnalyzeFilesResponse struct {
	FailedAnalysisFiles []uri.URI                    `json:"failedAnalysisFiles"`
	RawIssues           map[string][]entity.RawIssue `json:"rawIssues,omitempty"`
}

// DidChangeAnalysisReadinessParams is received with MethodDidChangeAnalysisReadiness.
type DidChangeAnalysisReadinessParams struct {
	ConfigurationScopeIDs []string `json:"configurationScopeIds"`
	AreReadyForAnalysis   bool     `json:"areReadyForAnalysis"`
}
