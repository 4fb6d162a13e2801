// Package model contains the repository layer representations of the bridge's local state.
package model

// ConnectionsFile is the on-disk shape of the connection repository.
type ConnectionsFile struct {
	Connections []Connection `yaml:"connections"`
}

// Connection is a single stored connection. Exactly one of ServerURL and Organization is set.
type Connection struct {
	ID                   string `yaml:"id"`
	ServerURL            string `yaml:"serverUrl,omitempty"`
	Organization         string `yaml:"organization,omitempty"`
	Region               string `yaml:"region,omitempty"`
	DisableNotifications bool   `yaml:"disableNotifications,omitempty"`
}
