package entity

// Solution describes the workspace currently open in the IDE.
type Solution struct {
	// Name is stable for the solution and is used as the configuration scope id.
	Name     string   `json:"name" zap:"name"`
	RootPath string   `json:"rootPath,omitempty" zap:"rootPath"`
	BaseDir  string   `json:"baseDir,omitempty" zap:"baseDir"`
	Binding  *Binding `json:"binding,omitempty" zap:"binding"`
}

// Binding links a solution to a project on a locally stored connection.
type Binding struct {
	// ConnectionID is the local id of the connection in the connection repository.
	ConnectionID string `json:"connectionId" zap:"connectionId"`
	ProjectKey   string `json:"projectKey" zap:"projectKey"`
}

// SettingsChangedEvent is raised when the locally configured user settings changed.
type SettingsChangedEvent struct{}
