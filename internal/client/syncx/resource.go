package syncx

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ScopeKind distinguishes the two ownership flavours a collection slice
// can belong to.
type ScopeKind string

const (
	ScopeIndividual   ScopeKind = "individual"
	ScopeOrganization ScopeKind = "organization"
)

// OwnerScope identifies who owns a resource: a single principal or an
// organization.
type OwnerScope struct {
	Kind    ScopeKind
	OwnerID string
}

// OwnerKey is the composite identifier partitioning which slice of a
// collection a cache entry represents.
type OwnerKey string

// Key renders the scope as an owner key, e.g. "individual/u1".
func (s OwnerScope) Key() OwnerKey {
	return OwnerKey(string(s.Kind) + "/" + s.OwnerID)
}

// ParseOwnerKey splits an owner key back into its scope. The inverse of
// OwnerScope.Key.
func ParseOwnerKey(key OwnerKey) (OwnerScope, error) {
	kind, owner, ok := strings.Cut(string(key), "/")
	if !ok || owner == "" {
		return OwnerScope{}, &ValidationError{Field: "ownerKey", Reason: "must look like <scope>/<owner-id>"}
	}
	switch ScopeKind(kind) {
	case ScopeIndividual, ScopeOrganization:
		return OwnerScope{Kind: ScopeKind(kind), OwnerID: owner}, nil
	default:
		return OwnerScope{}, &ValidationError{Field: "ownerKey", Reason: "unknown scope kind " + kind}
	}
}

// Resource is one item of a synchronized collection. The id is assigned by
// the store and immutable once set; the name is unique within the owner
// scope (best-effort, re-checked authoritatively at write time).
type Resource struct {
	ID          string
	Scope       OwnerScope
	Name        string
	Status      string
	CreatedAt   time.Time
	Payload     map[string]string
	Permissions map[string]string
}

const (
	nameMinLen = 3
	nameMaxLen = 100
)

// ValidateName checks the name shape rule: non-empty after trimming and
// between 3 and 100 characters.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n < nameMinLen || n > nameMaxLen {
		return &ValidationError{Field: "name", Reason: "must be between 3 and 100 characters"}
	}
	return nil
}

func cloneResources(items []Resource) []Resource {
	if items == nil {
		return nil
	}
	dup := make([]Resource, len(items))
	copy(dup, items)
	return dup
}
