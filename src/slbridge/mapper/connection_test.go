package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/model"
)

func TestConnectionID(t *testing.T) {
	tests := []struct {
		name       string
		connection entity.ServerConnection
		want       string
	}{
		{
			name:       "self-managed",
			connection: factory.SelfManagedConnection("a", "https://sonar.example.com"),
			want:       "sq|https://sonar.example.com",
		},
		{
			name:       "self-managed url is normalized",
			connection: factory.SelfManagedConnection("a", " HTTPS://Sonar.Example.com/sonar/ "),
			want:       "sq|https://sonar.example.com/sonar",
		},
		{
			name:       "cloud default region",
			connection: factory.CloudConnection("b", "my-org", ""),
			want:       "sc|my-org",
		},
		{
			name:       "cloud EU region",
			connection: factory.CloudConnection("b", "my-org", entity.CloudRegionEU),
			want:       "sc|my-org",
		},
		{
			name:       "cloud US region",
			connection: factory.CloudConnection("b", "my-org", "us"),
			want:       "sc|US|my-org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnectionID(tt.connection))
		})
	}
}

func TestNormalizeServerURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000", NormalizeServerURL("http://LOCALHOST:9000///"))
	assert.Equal(t, "not a url", NormalizeServerURL("not a url/"))
}

func TestModelToServerConnection(t *testing.T) {
	tests := []struct {
		name    string
		model   model.Connection
		want    entity.ServerConnection
		wantErr bool
	}{
		{
			name:  "self-managed",
			model: model.Connection{ID: "a", ServerURL: "http://localhost:9000", DisableNotifications: true},
			want:  entity.ServerConnection{ID: "a", Kind: entity.ConnectionKindSelfManaged, ServerURL: "http://localhost:9000", DisableNotifications: true},
		},
		{
			name:  "cloud defaults to EU",
			model: model.Connection{ID: "b", Organization: "org"},
			want:  entity.ServerConnection{ID: "b", Kind: entity.ConnectionKindCloud, Organization: "org", Region: entity.CloudRegionEU},
		},
		{
			name:    "missing id",
			model:   model.Connection{ServerURL: "http://localhost:9000"},
			wantErr: true,
		},
		{
			name:    "both url and organization",
			model:   model.Connection{ID: "c", ServerURL: "http://localhost:9000", Organization: "org"},
			wantErr: true,
		},
		{
			name:    "neither url nor organization",
			model:   model.Connection{ID: "d"},
			wantErr: true,
		},
		{
			name:    "unknown region",
			model:   model.Connection{ID: "e", Organization: "org", Region: "APAC"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModelToServerConnection(tt.model)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			back, err := ModelToServerConnection(ServerConnectionToModel(got))
			require.NoError(t, err)
			assert.Equal(t, got, back)
		})
	}
}

func TestServerConnectionsToDescriptors(t *testing.T) {
	connections := []entity.ServerConnection{
		factory.SelfManagedConnection("a", "http://a/"),
		factory.CloudConnection("b", "org-b", entity.CloudRegionUS),
		factory.SelfManagedConnection("c", "http://c"),
	}

	d := ServerConnectionsToDescriptors(connections)
	assert.Equal(t, []entity.SelfManagedConnectionDescriptor{
		{ConnectionID: "sq|http://a", ServerURL: "http://a/"},
		{ConnectionID: "sq|http://c", ServerURL: "http://c"},
	}, d.SelfManaged)
	assert.Equal(t, []entity.CloudConnectionDescriptor{
		{ConnectionID: "sc|US|org-b", OrganizationKey: "org-b", Region: entity.CloudRegionUS},
	}, d.Cloud)

	cloud, selfManaged := DescriptorsToConnectionDtos(d)
	assert.Equal(t, []slcore.SonarCloudConnectionConfigurationDto{
		{ConnectionID: "sc|US|org-b", Organization: "org-b", Region: "US"},
	}, cloud)
	assert.Len(t, selfManaged, 2)

	d = ServerConnectionsToDescriptors([]entity.ServerConnection{
		factory.SelfManagedConnection("a", "http://a/"),
		factory.SelfManagedConnection("b", "HTTP://A"),
		factory.CloudConnection("c", "org", entity.CloudRegionEU),
		factory.CloudConnection("d", "org", entity.CloudRegionEU),
	})
	assert.Equal(t, []entity.SelfManagedConnectionDescriptor{
		{ConnectionID: "sq|http://a", ServerURL: "http://a/"},
	}, d.SelfManaged)
	assert.Equal(t, []entity.CloudConnectionDescriptor{
		{ConnectionID: "sc|org", OrganizationKey: "org", Region: entity.CloudRegionEU},
	}, d.Cloud)

	cloud, selfManaged = DescriptorsToConnectionDtos(entity.ConnectionDescriptors{})
	assert.NotNil(t, cloud)
	assert.NotNil(t, selfManaged)
}
