package entity

import (
	"slices"
)

// AnalysisLanguage groups the languages that share an analyzer on the backend.
type AnalysisLanguage string

const (
	AnalysisLanguageJavascript           AnalysisLanguage = "javascript"
	AnalysisLanguageTypeScript           AnalysisLanguage = "typescript"
	AnalysisLanguageCascadingStyleSheets AnalysisLanguage = "css"
	AnalysisLanguageCFamily              AnalysisLanguage = "cfamily"
	AnalysisLanguageRoslynFamily         AnalysisLanguage = "roslyn"
)

const (
	// PropertyCFamilyCompileCommands points the C-family analyzer at a compilation database.
	PropertyCFamilyCompileCommands = "sonar.cfamily.compile-commands"
	// PropertyCFamilyReproducer asks the C-family analyzer to produce a reproducer for the given file.
	PropertyCFamilyReproducer = "sonar.cfamily.reproducer"
)

// AnalysisLanguages is the set of languages requested for one analysis.
type AnalysisLanguages []AnalysisLanguage

// Contains reports whether the language is requested.
func (l AnalysisLanguages) Contains(language AnalysisLanguage) bool {
	return slices.Contains(l, language)
}

// AnalyzerOptions tune a single analysis.
type AnalyzerOptions struct {
	// IsOnOpen is set when the analysis was triggered by opening the file.
	IsOnOpen bool `json:"isOnOpen"`
	// CreateReproducer asks the C-family analyzer to produce a reproducer bundle.
	CreateReproducer bool `json:"createReproducer"`
}

// TextRange locates an issue in a file. Lines are 1-based and offsets 0-based.
type TextRange struct {
	StartLine       int `json:"startLine"`
	StartLineOffset int `json:"startLineOffset"`
	EndLine         int `json:"endLine"`
	EndLineOffset   int `json:"endLineOffset"`
}

// RawIssue is an issue as reported by the backend, before any enrichment.
type RawIssue struct {
	RuleKey        string     `json:"ruleKey"`
	PrimaryMessage string     `json:"primaryMessage"`
	Severity       string     `json:"severity,omitempty"`
	Type           string     `json:"type,omitempty"`
	TextRange      *TextRange `json:"textRange,omitempty"`
}

// AnalysisResult is the raw outcome of a successful analysis, keyed by file URI.
type AnalysisResult struct {
	RawIssues map[string][]RawIssue
}
