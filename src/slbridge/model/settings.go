package model

// SettingsFile is the on-disk shape of the user settings.
type SettingsFile struct {
	AnalysisProperties map[string]string           `yaml:"analysisProperties,omitempty"`
	Solutions          map[string]SolutionSettings `yaml:"solutions,omitempty"`
}

// SolutionSettings override the global settings for one solution.
type SolutionSettings struct {
	AnalysisProperties map[string]string `yaml:"analysisProperties,omitempty"`
}
