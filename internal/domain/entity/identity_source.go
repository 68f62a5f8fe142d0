// Package entity contains the core business objects of the project.
package entity

// IdentitySource represents how an account authenticates.
type IdentitySource string

const (
	// IdentitySourceLocal indicates the account authenticates with an email and password.
	IdentitySourceLocal IdentitySource = "local"
	// IdentitySourceExternal indicates the account authenticates through an external identity provider.
	IdentitySourceExternal IdentitySource = "external"
)

// String returns the string representation of the IdentitySource.
func (s IdentitySource) String() string {
	return string(s)
}

// IsValid checks if the IdentitySource is a valid value.
func (s IdentitySource) IsValid() bool {
	switch s {
	case IdentitySourceLocal, IdentitySourceExternal:
		return true
	default:
		return false
	}
}
