// Package factory builds values for tests and for request handling.
package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params any) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params any) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// ConfigurationScope is a factory for an unbound scope that is ready for analysis.
func ConfigurationScope(id string) entity.ConfigurationScope {
	return entity.ConfigurationScope{
		ID:                 id,
		RootPath:           "/home/user/" + id,
		BaseDir:            "/home/user/" + id,
		IsReadyForAnalysis: true,
	}
}

// SelfManagedConnection is a factory for a self-managed ServerConnection.
func SelfManagedConnection(id, serverURL string) entity.ServerConnection {
	return entity.ServerConnection{
		ID:        id,
		Kind:      entity.ConnectionKindSelfManaged,
		ServerURL: serverURL,
	}
}

// CloudConnection is a factory for a cloud ServerConnection.
func CloudConnection(id, organization string, region entity.CloudRegion) entity.ServerConnection {
	return entity.ServerConnection{
		ID:           id,
		Kind:         entity.ConnectionKindCloud,
		Organization: organization,
		Region:       region,
	}
}

// Solution is a factory for an open solution, bound to the given connection when connectionID is set.
func Solution(name, connectionID, projectKey string) *entity.Solution {
	s := &entity.Solution{
		Name:     name,
		RootPath: "/home/user/" + name,
		BaseDir:  "/home/user/" + name,
	}
	if connectionID != "" {
		s.Binding = &entity.Binding{ConnectionID: connectionID, ProjectKey: projectKey}
	}
	return s
}
