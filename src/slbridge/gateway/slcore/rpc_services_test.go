package slcore

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/slcore-bridge/idl/mock/jsonrpc2mock"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func registeredServices(t *testing.T, conn jsonrpc2.Conn) ServiceProvider {
	p := NewServiceProvider()
	RegisterServices(p, conn, zap.NewNop().Sugar())
	return p
}

func TestConfigurationScopeRPC(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	conn := jsonrpc2mock.NewMockConn(ctrl)
	svc, ok := TryGetService[ConfigurationScopeService](registeredServices(t, conn))
	require.True(t, ok)

	scopes := []ConfigurationScopeDto{{ID: "sln", Name: "sln", Bindable: true}}
	conn.EXPECT().Notify(ctx, MethodDidAddConfigurationScopes, &DidAddConfigurationScopesParams{AddedScopes: scopes})
	assert.NoError(t, svc.AddScopes(ctx, scopes))

	binding := BindingConfigurationDto{ConnectionID: "sq|http://localhost", SonarProjectKey: "proj"}
	conn.EXPECT().Notify(ctx, MethodDidUpdateBinding, &DidUpdateBindingParams{ConfigScopeID: "sln", UpdatedBinding: binding})
	assert.NoError(t, svc.UpdateBinding(ctx, "sln", binding))

	conn.EXPECT().Notify(ctx, MethodDidRemoveConfigurationScope, &DidRemoveConfigurationScopeParams{RemovedID: "sln"}).Return(errors.New("closed"))
	assert.Error(t, svc.RemoveScope(ctx, "sln"))
}

func TestConnectionRPC(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	conn := jsonrpc2mock.NewMockConn(ctrl)
	svc, ok := TryGetService[ConnectionService](registeredServices(t, conn))
	require.True(t, ok)

	conn.EXPECT().Notify(ctx, MethodDidUpdateConnections, &DidUpdateConnectionsParams{
		SonarQubeConnections:  []SonarQubeConnectionConfigurationDto{},
		SonarCloudConnections: []SonarCloudConnectionConfigurationDto{},
	})
	assert.NoError(t, svc.ReplaceConnections(ctx, nil, nil))

	conn.EXPECT().Notify(ctx, MethodDidChangeCredentials, &DidChangeCredentialsParams{ConnectionID: "sc|org"})
	assert.NoError(t, svc.RefreshCredentials(ctx, "sc|org"))
}

func TestAnalysisPropertiesRPC(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	conn := jsonrpc2mock.NewMockConn(ctrl)
	svc, ok := TryGetService[AnalysisPropertiesService](registeredServices(t, conn))
	require.True(t, ok)

	conn.EXPECT().Notify(ctx, MethodDidSetUserAnalysisProperties, &DidSetUserAnalysisPropertiesParams{
		ConfigurationScopeID: "sln",
		Properties:           map[string]string{},
	})
	assert.NoError(t, svc.SetAnalysisProperties(ctx, "sln", nil))
}

func TestAnalysisRPC(t *testing.T) {
	params := AnalyzeFilesAndTrackParams{
		ConfigurationScopeID: "sln",
		AnalysisID:           uuid.Must(uuid.NewV4()),
		FilesToAnalyze:       []uri.URI{uri.File("/src/a.cpp")},
		StartTime:            42,
	}

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		conn := jsonrpc2mock.NewMockConn(ctrl)
		svc, ok := TryGetService[AnalysisService](registeredServices(t, conn))
		require.True(t, ok)

		conn.EXPECT().Call(ctx, MethodAnalyzeFilesAndTrack, &params, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, p any, result any) (jsonrpc2.ID, error) {
				resp := result.(*AnalyzeFilesResponse)
				resp.RawIssues = map[string][]entity.RawIssue{"file:///src/a.cpp": {{RuleKey: "cpp:S1"}}}
				return jsonrpc2.NewNumberID(1), nil
			})

		resp, err := svc.AnalyzeFilesAndTrack(ctx, params)
		require.NoError(t, err)
		assert.Empty(t, resp.FailedAnalysisFiles)
		assert.Len(t, resp.RawIssues["file:///src/a.cpp"], 1)
	})

	t.Run("cancelled call is cancelled on the backend", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ctrl := gomock.NewController(t)
		conn := jsonrpc2mock.NewMockConn(ctrl)
		svc, ok := TryGetService[AnalysisService](registeredServices(t, conn))
		require.True(t, ok)

		id := jsonrpc2.NewNumberID(7)
		conn.EXPECT().Call(ctx, MethodAnalyzeFilesAndTrack, &params, gomock.Any()).Return(id, context.Canceled)
		conn.EXPECT().Notify(gomock.Any(), protocol.MethodCancelRequest, &protocol.CancelParams{ID: id})

		_, err := svc.AnalyzeFilesAndTrack(ctx, params)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("backend error", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		conn := jsonrpc2mock.NewMockConn(ctrl)
		svc, ok := TryGetService[AnalysisService](registeredServices(t, conn))
		require.True(t, ok)

		conn.EXPECT().Call(ctx, MethodAnalyzeFilesAndTrack, &params, gomock.Any()).Return(jsonrpc2.NewNumberID(1), errors.New("internal error"))

		_, err := svc.AnalyzeFilesAndTrack(ctx, params)
		assert.EqualError(t, err, "internal error")
	})
}
