// Package entity contains the domain types of the bridge.
package entity

// ConfigurationScope is the backend's unit of context, one per open IDE solution.
// Values are snapshots: a changed scope is a new value, never an in-place update.
type ConfigurationScope struct {
	// ID is derived from the solution and never changes for the lifetime of the scope.
	ID string `json:"id" zap:"id"`
	// ConnectionID identifies the bound server connection. Empty when unbound.
	ConnectionID string `json:"connectionId,omitempty" zap:"connectionId"`
	// SonarProjectID is the project key on the bound connection. Empty when unbound.
	SonarProjectID string `json:"sonarProjectId,omitempty" zap:"sonarProjectId"`
	RootPath       string `json:"rootPath,omitempty" zap:"rootPath"`
	BaseDir        string `json:"baseDir,omitempty" zap:"baseDir"`
	// IsReadyForAnalysis is set once the backend reports that it has prepared the scope.
	IsReadyForAnalysis bool `json:"isReadyForAnalysis" zap:"isReadyForAnalysis"`
}

// IsBound reports whether the scope is bound to a remote project.
func (s ConfigurationScope) IsBound() bool {
	return s.ConnectionID != "" && s.SonarProjectID != ""
}

// ScopeChangedEvent is raised after the active configuration scope has been replaced.
type ScopeChangedEvent struct {
	// DefinitionChanged is true when the scope was added, removed or rebound,
	// and false when only details such as the root or readiness were filled in.
	DefinitionChanged bool
}
