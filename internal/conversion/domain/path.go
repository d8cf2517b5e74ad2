package domain

import "github.com/google/uuid"

// PathKind names a conversion strategy.
type PathKind string

const (
	PathNewProspect     PathKind = "NewProspect"
	PathExistingAccount PathKind = "ExistingAccount"
	PathNewProperty     PathKind = "NewProperty"
)

// AccountRef points at an existing account chosen from the duplicate
// candidates.
type AccountRef struct {
	ID   uuid.UUID
	Name string
}

// Path is the chosen conversion strategy. It is a small sum type: only the
// ExistingAccount variant carries an account reference, so "selected account
// present iff path is ExistingAccount" holds by construction.
type Path struct {
	kind     PathKind
	selected *AccountRef
}

// NewProspectPath creates a path that spawns a fresh account.
func NewProspectPath() *Path {
	return &Path{kind: PathNewProspect}
}

// ExistingAccountPath creates a path that links the lead to the given
// existing account.
func ExistingAccountPath(ref AccountRef) *Path {
	return &Path{kind: PathExistingAccount, selected: &ref}
}

// NewPropertyPath creates a path that spawns a fresh account plus a property.
func NewPropertyPath() *Path {
	return &Path{kind: PathNewProperty}
}

// Kind returns the strategy name.
func (p *Path) Kind() PathKind {
	return p.kind
}

// SelectedAccount returns the chosen existing account. ok is false for every
// kind other than ExistingAccount.
func (p *Path) SelectedAccount() (AccountRef, bool) {
	if p.selected == nil {
		return AccountRef{}, false
	}
	return *p.selected, true
}
