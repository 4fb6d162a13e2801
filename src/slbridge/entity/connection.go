package entity

// ConnectionKind distinguishes the two kinds of remote server.
type ConnectionKind string

const (
	// ConnectionKindSelfManaged is a self-hosted server reachable at a URL.
	ConnectionKindSelfManaged ConnectionKind = "selfManaged"
	// ConnectionKindCloud is an organization on the cloud service.
	ConnectionKindCloud ConnectionKind = "cloud"
)

// CloudRegion identifies a cloud service region.
type CloudRegion string

const (
	// CloudRegionEU is the default cloud region.
	CloudRegionEU CloudRegion = "EU"
	// CloudRegionUS is the US cloud region.
	CloudRegionUS CloudRegion = "US"
)

// ServerConnection is a connection as stored in the local connection repository.
type ServerConnection struct {
	// ID is the local identifier used by solution bindings.
	ID                   string         `json:"id" zap:"id"`
	Kind                 ConnectionKind `json:"kind" zap:"kind"`
	ServerURL            string         `json:"serverUrl,omitempty" zap:"serverUrl"`
	Organization         string         `json:"organization,omitempty" zap:"organization"`
	Region               CloudRegion    `json:"region,omitempty" zap:"region"`
	DisableNotifications bool           `json:"disableNotifications" zap:"disableNotifications"`
}

// SelfManagedConnectionDescriptor is the backend's view of a self-managed connection.
type SelfManagedConnectionDescriptor struct {
	ConnectionID         string
	ServerURL            string
	DisableNotifications bool
}

// CloudConnectionDescriptor is the backend's view of a cloud connection.
type CloudConnectionDescriptor struct {
	ConnectionID         string
	OrganizationKey      string
	Region               CloudRegion
	DisableNotifications bool
}

// ConnectionDescriptors partitions the derived connections into the buckets the backend recognizes.
type ConnectionDescriptors struct {
	SelfManaged []SelfManagedConnectionDescriptor
	Cloud       []CloudConnectionDescriptor
}

// Len returns the total number of connections.
func (d ConnectionDescriptors) Len() int {
	return len(d.SelfManaged) + len(d.Cloud)
}

// ConnectionIDs returns the backend ids of all connections, self-managed first.
func (d ConnectionDescriptors) ConnectionIDs() []string {
	ids := make([]string, 0, d.Len())
	for _, c := range d.SelfManaged {
		ids = append(ids, c.ConnectionID)
	}
	for _, c := range d.Cloud {
		ids = append(ids, c.ConnectionID)
	}
	return ids
}

// ConnectionsChangedEvent is raised when any connection was added, removed or modified.
type ConnectionsChangedEvent struct{}

// CredentialsChangedEvent is raised when the credentials of a single connection changed.
type CredentialsChangedEvent struct {
	// ConnectionID is the local id of the connection.
	ConnectionID string
}
