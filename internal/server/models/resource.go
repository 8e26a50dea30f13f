package models

import "time"

// Resource is one row of a synchronized collection: a test suite or an
// activity entry, distinguished by Kind. Payload and Permissions are stored
// as JSONB.
type Resource struct {
	ID          string
	Kind        string
	ScopeKind   string
	OwnerID     string
	Name        string
	Status      string
	CreatedAt   time.Time
	Payload     map[string]string
	Permissions map[string]string
}
