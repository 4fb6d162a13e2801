package model

import "github.com/gofrs/uuid"

// Solution is the repository layer model for the solution open in the IDE.
type Solution struct {
	Name                string
	RootPath            string
	BaseDir             string
	BindingConnectionID string
	BindingProjectKey   string
	// Session is the IDE session that opened the solution, uuid.Nil when unknown.
	Session uuid.UUID
}
