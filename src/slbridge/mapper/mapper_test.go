package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestConfigurationScopeToDto(t *testing.T) {
	scope := entity.ConfigurationScope{ID: "sln", ConnectionID: "sq|http://a", SonarProjectID: "proj"}
	assert.Equal(t, slcore.ConfigurationScopeDto{
		ID:       "sln",
		Name:     "sln",
		Bindable: true,
		Binding:  slcore.BindingConfigurationDto{ConnectionID: "sq|http://a", SonarProjectKey: "proj"},
	}, ConfigurationScopeToDto(scope))
}

func TestSolutionMapping(t *testing.T) {
	bound := factory.Solution("sln", "local", "proj")
	assert.Equal(t, bound, ModelToSolution(SolutionToModel(bound)))

	unbound := factory.Solution("sln", "", "")
	assert.Nil(t, ModelToSolution(SolutionToModel(unbound)).Binding)

	params := &entity.SolutionDidOpenParams{Name: "sln", RootPath: "/r", Binding: &entity.Binding{ConnectionID: "local", ProjectKey: "p"}}
	s := SolutionDidOpenParamsToSolution(params)
	assert.Equal(t, "/r", s.RootPath)
	params.Binding.ProjectKey = "changed"
	assert.Equal(t, "p", s.Binding.ProjectKey, "binding must be copied")
}

func TestRequestDecoding(t *testing.T) {
	t.Run("solution did open", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodSolutionDidOpen, map[string]any{"name": "sln", "rootPath": "/r"})
		params, err := RequestToSolutionDidOpenParams(req)
		require.NoError(t, err)
		assert.Equal(t, &entity.SolutionDidOpenParams{Name: "sln", RootPath: "/r"}, params)
	})

	t.Run("solution did open without name", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodSolutionDidOpen, map[string]any{"rootPath": "/r"})
		_, err := RequestToSolutionDidOpenParams(req)
		assert.True(t, errors.IsBadRequest(err))
	})

	t.Run("malformed params", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodSolutionDidChangeBinding, []int{1})
		_, err := RequestToSolutionDidChangeBindingParams(req)
		assert.ErrorIs(t, err, errors.ErrParseParams)
	})

	t.Run("analyze", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodAnalysisAnalyze, map[string]any{
			"fileUri":   "file:///src/a.cpp",
			"languages": []string{"cfamily"},
			"isOnOpen":  true,
		})
		params, err := RequestToAnalyzeParams(req)
		require.NoError(t, err)
		assert.Equal(t, uri.URI("file:///src/a.cpp"), params.FileURI)
		assert.True(t, params.Languages.Contains(entity.AnalysisLanguageCFamily))
		assert.True(t, params.IsOnOpen)
	})

	t.Run("analyze without file", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodAnalysisAnalyze, map[string]any{})
		_, err := RequestToAnalyzeParams(req)
		assert.ErrorIs(t, err, errors.ErrParseParams)
	})

	t.Run("cancel", func(t *testing.T) {
		id := factory.UUID()
		req := factory.JSONRPCRequest(entity.MethodAnalysisCancel, map[string]any{"analysisId": id.String()})
		params, err := RequestToCancelAnalysisParams(req)
		require.NoError(t, err)
		assert.Equal(t, id, params.AnalysisID)
	})

	t.Run("credentials", func(t *testing.T) {
		req := factory.JSONRPCRequest(entity.MethodConnectionDidChangeCredentials, map[string]any{"connectionId": "local"})
		params, err := RequestToConnectionDidChangeCredentialsParams(req)
		require.NoError(t, err)
		assert.Equal(t, "local", params.ConnectionID)
	})

	t.Run("analysis readiness", func(t *testing.T) {
		req := factory.JSONRPCNotification(slcore.MethodDidChangeAnalysisReadiness, map[string]any{
			"configurationScopeIds": []string{"sln"},
			"areReadyForAnalysis":   true,
		})
		params, err := RequestToDidChangeAnalysisReadinessParams(req)
		require.NoError(t, err)
		assert.Equal(t, &slcore.DidChangeAnalysisReadinessParams{ConfigurationScopeIDs: []string{"sln"}, AreReadyForAnalysis: true}, params)
	})
}

func TestRawIssuesToDiagnostics(t *testing.T) {
	issues := []entity.RawIssue{
		{
			RuleKey:        "cpp:S100",
			PrimaryMessage: "Rename this function.",
			Severity:       "CRITICAL",
			TextRange:      &entity.TextRange{StartLine: 3, StartLineOffset: 4, EndLine: 3, EndLineOffset: 10},
		},
		{RuleKey: "cpp:S200", PrimaryMessage: "File level issue.", Severity: "INFO"},
	}

	got := RawIssuesToDiagnostics(issues)
	require.Len(t, got, 2)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 2, Character: 10},
	}, got[0].Range)
	assert.Equal(t, protocol.DiagnosticSeverityError, got[0].Severity)
	assert.Equal(t, "cpp:S100", got[0].Code)
	assert.Equal(t, protocol.Range{}, got[1].Range)
	assert.Equal(t, protocol.DiagnosticSeverityHint, got[1].Severity)
	assert.Empty(t, RawIssuesToDiagnostics(nil))
}
