package mapper

import (
	"strings"

	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"go.lsp.dev/protocol"
)

const _diagnosticSource = "sonarlint"

// RawIssuesToDiagnostics maps the raw issues of one file to LSP diagnostics.
// Issues without a text range are reported on the first line.
func RawIssuesToDiagnostics(issues []entity.RawIssue) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(issues))
	for _, issue := range issues {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    TextRangeToRange(issue.TextRange),
			Severity: severityToDiagnosticSeverity(issue.Severity),
			Code:     issue.RuleKey,
			Source:   _diagnosticSource,
			Message:  issue.PrimaryMessage,
		})
	}
	return diagnostics
}

// TextRangeToRange converts a 1-based line range into a 0-based LSP range.
func TextRangeToRange(r *entity.TextRange) protocol.Range {
	if r == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: protocol.Position{Line: lineToPosition(r.StartLine), Character: uint32(max(r.StartLineOffset, 0))},
		End:   protocol.Position{Line: lineToPosition(r.EndLine), Character: uint32(max(r.EndLineOffset, 0))},
	}
}

func lineToPosition(line int) uint32 {
	if line <= 1 {
		return 0
	}
	return uint32(line - 1)
}

func severityToDiagnosticSeverity(severity string) protocol.DiagnosticSeverity {
	switch strings.ToUpper(severity) {
	case "BLOCKER", "CRITICAL", "HIGH":
		return protocol.DiagnosticSeverityError
	case "MINOR", "LOW":
		return protocol.DiagnosticSeverityInformation
	case "INFO":
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityWarning
	}
}
