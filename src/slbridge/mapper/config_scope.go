package mapper

import (
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
)

// ConfigurationScopeToDto maps a scope to the declaration sent to the backend.
func ConfigurationScopeToDto(s entity.ConfigurationScope) slcore.ConfigurationScopeDto {
	return slcore.ConfigurationScopeDto{
		ID:       s.ID,
		Name:     s.ID,
		Bindable: true,
		Binding:  BindingToDto(s.ConnectionID, s.SonarProjectID),
	}
}

// BindingToDto maps a binding to its backend form. Empty values mean unbound.
func BindingToDto(connectionID, projectID string) slcore.BindingConfigurationDto {
	return slcore.BindingConfigurationDto{
		ConnectionID:    connectionID,
		SonarProjectKey: projectID,
	}
}
