package slcore

import (
	"context"
	"errors"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// RegisterServices registers the JSON-RPC implementations of all backend services on conn.
func RegisterServices(p ServiceProvider, conn jsonrpc2.Conn, logger *zap.SugaredLogger) {
	Register[ConfigurationScopeService](p, &configurationScopeRPC{conn: conn})
	Register[ConnectionService](p, &connectionRPC{conn: conn})
	Register[AnalysisService](p, &analysisRPC{conn: conn, logger: logger})
	Register[AnalysisPropertiesService](p, &analysisPropertiesRPC{conn: conn})
}

type configurationScopeRPC struct {
	conn jsonrpc2.Conn
}

func (s *configurationScopeRPC) AddScopes(ctx context.Context, scopes []ConfigurationScopeDto) error {
	return s.conn.Notify(ctx, MethodDidAddConfigurationScopes, &DidAddConfigurationScopesParams{AddedScopes: scopes})
}

func (s *configurationScopeRPC) UpdateBinding(ctx context.Context, scopeID string, binding BindingConfigurationDto) error {
	return s.conn.Notify(ctx, MethodDidUpdateBinding, &DidUpdateBindingParams{ConfigScopeID: scopeID, UpdatedBinding: binding})
}

func (s *configurationScopeRPC) RemoveScope(ctx context.Context, scopeID string) error {
	return s.conn.Notify(ctx, MethodDidRemoveConfigurationScope, &DidRemoveConfigurationScopeParams{RemovedID: scopeID})
}

type connectionRPC struct {
	conn jsonrpc2.Conn
}

func (s *connectionRPC) ReplaceConnections(ctx context.Context, cloud []SonarCloudConnectionConfigurationDto, selfManaged []SonarQubeConnectionConfigurationDto) error {
	if cloud == nil {
		cloud = []SonarCloudConnectionConfigurationDto{}
	}
	if selfManaged == nil {
		selfManaged = []SonarQubeConnectionConfigurationDto{}
	}
	return s.conn.Notify(ctx, MethodDidUpdateConnections, &DidUpdateConnectionsParams{
		SonarQubeConnections:  selfManaged,
		SonarCloudConnections: cloud,
	})
}

func (s *connectionRPC) RefreshCredentials(ctx context.Context, connectionID string) error {
	return s.conn.Notify(ctx, MethodDidChangeCredentials, &DidChangeCredentialsParams{ConnectionID: connectionID})
}

type analysisRPC struct {
	conn   jsonrpc2.Conn
	logger *zap.SugaredLogger
}

// AnalyzeFilesAndTrack waits for the backend's answer. When ctx ends first, the backend is asked to cancel the request.
func (s *analysisRPC) AnalyzeFilesAndTrack(ctx context.Context, params AnalyzeFilesAndTrackParams) (*AnalyzeFilesResponse, error) {
	var resp AnalyzeFilesResponse
	id, err := s.conn.Call(ctx, MethodAnalyzeFilesAndTrack, &params, &resp)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			s.cancelRequest(id)
		}
		return nil, err
	}
	return &resp, nil
}

func (s *analysisRPC) cancelRequest(id jsonrpc2.ID) {
	if err := s.conn.Notify(context.Background(), protocol.MethodCancelRequest, &protocol.CancelParams{ID: id}); err != nil && s.logger != nil {
		s.logger.Warnf("failed to cancel backend request: %v", err)
	}
}

type analysisPropertiesRPC struct {
	conn jsonrpc2.Conn
}

func (s *analysisPropertiesRPC) SetAnalysisProperties(ctx context.Context, scopeID string, properties map[string]string) error {
	if properties == nil {
		properties = map[string]string{}
	}
	return s.conn.Notify(ctx, MethodDidSetUserAnalysisProperties, &DidSetUserAnalysisPropertiesParams{
		ConfigurationScopeID: scopeID,
		Properties:           properties,
	})
}
