// Package mapper converts between the bridge's entities, repository models and wire types.
package mapper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/model"
)

const (
	_selfManagedPrefix = "sq"
	_cloudPrefix       = "sc"
	_idSeparator       = "|"
)

// ConnectionID derives the stable backend id of a connection.
// Self-managed connections are keyed by their normalized server URL, cloud connections by organization and region.
func ConnectionID(c entity.ServerConnection) string {
	if c.Kind == entity.ConnectionKindCloud {
		region := normalizeRegion(c.Region)
		if region == entity.CloudRegionEU {
			return strings.Join([]string{_cloudPrefix, c.Organization}, _idSeparator)
		}
		return strings.Join([]string{_cloudPrefix, string(region), c.Organization}, _idSeparator)
	}
	return strings.Join([]string{_selfManagedPrefix, NormalizeServerURL(c.ServerURL)}, _idSeparator)
}

// NormalizeServerURL lower-cases the scheme and host and strips trailing slashes.
// Values that do not parse as URLs are only trimmed.
func NormalizeServerURL(serverURL string) string {
	trimmed := strings.TrimSpace(serverURL)
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(trimmed, "/")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return u.String()
}

// ModelToServerConnection validates a stored connection and maps it to its entity equivalent.
func ModelToServerConnection(m model.Connection) (entity.ServerConnection, error) {
	if m.ID == "" {
		return entity.ServerConnection{}, errors.New("connection is missing an id")
	}

	switch {
	case m.ServerURL != "" && m.Organization != "":
		return entity.ServerConnection{}, fmt.Errorf("connection %q sets both serverUrl and organization", m.ID)
	case m.ServerURL != "":
		return entity.ServerConnection{
			ID:                   m.ID,
			Kind:                 entity.ConnectionKindSelfManaged,
			ServerURL:            m.ServerURL,
			DisableNotifications: m.DisableNotifications,
		}, nil
	case m.Organization != "":
		region := normalizeRegion(entity.CloudRegion(m.Region))
		if region != entity.CloudRegionEU && region != entity.CloudRegionUS {
			return entity.ServerConnection{}, fmt.Errorf("connection %q has unknown region %q", m.ID, m.Region)
		}
		return entity.ServerConnection{
			ID:                   m.ID,
			Kind:                 entity.ConnectionKindCloud,
			Organization:         m.Organization,
			Region:               region,
			DisableNotifications: m.DisableNotifications,
		}, nil
	default:
		return entity.ServerConnection{}, fmt.Errorf("connection %q needs either serverUrl or organization", m.ID)
	}
}

// ServerConnectionToModel maps a ServerConnection entity to its model equivalent.
func ServerConnectionToModel(c entity.ServerConnection) model.Connection {
	m := model.Connection{
		ID:                   c.ID,
		DisableNotifications: c.DisableNotifications,
	}
	if c.Kind == entity.ConnectionKindCloud {
		m.Organization = c.Organization
		m.Region = string(normalizeRegion(c.Region))
	} else {
		m.ServerURL = c.ServerURL
	}
	return m
}

// ServerConnectionsToDescriptors derives the backend descriptors of the given connections, preserving their order within each bucket.
// A connection whose backend id was already derived from an earlier one is dropped.
func ServerConnectionsToDescriptors(connections []entity.ServerConnection) entity.ConnectionDescriptors {
	var d entity.ConnectionDescriptors
	seen := make(map[string]struct{}, len(connections))
	for _, c := range connections {
		id := ConnectionID(c)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if c.Kind == entity.ConnectionKindCloud {
			d.Cloud = append(d.Cloud, entity.CloudConnectionDescriptor{
				ConnectionID:         id,
				OrganizationKey:      c.Organization,
				Region:               normalizeRegion(c.Region),
				DisableNotifications: c.DisableNotifications,
			})
			continue
		}
		d.SelfManaged = append(d.SelfManaged, entity.SelfManagedConnectionDescriptor{
			ConnectionID:         id,
			ServerURL:            c.ServerURL,
			DisableNotifications: c.DisableNotifications,
		})
	}
	return d
}

// DescriptorsToConnectionDtos maps descriptors to the two lists the backend connection service expects.
func DescriptorsToConnectionDtos(d entity.ConnectionDescriptors) ([]slcore.SonarCloudConnectionConfigurationDto, []slcore.SonarQubeConnectionConfigurationDto) {
	cloud := make([]slcore.SonarCloudConnectionConfigurationDto, 0, len(d.Cloud))
	for _, c := range d.Cloud {
		cloud = append(cloud, slcore.SonarCloudConnectionConfigurationDto{
			ConnectionID:        c.ConnectionID,
			Organization:        c.OrganizationKey,
			Region:              string(c.Region),
			DisableNotification: c.DisableNotifications,
		})
	}

	selfManaged := make([]slcore.SonarQubeConnectionConfigurationDto, 0, len(d.SelfManaged))
	for _, c := range d.SelfManaged {
		selfManaged = append(selfManaged, slcore.SonarQubeConnectionConfigurationDto{
			ConnectionID:        c.ConnectionID,
			ServerURL:           c.ServerURL,
			DisableNotification: c.DisableNotifications,
		})
	}
	return cloud, selfManaged
}

func normalizeRegion(r entity.CloudRegion) entity.CloudRegion {
	if r == "" {
		return entity.CloudRegionEU
	}
	return entity.CloudRegion(strings.ToUpper(string(r)))
}
