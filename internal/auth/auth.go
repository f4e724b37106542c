// Package auth provides the credential layer for the Binder console. The
// core never hard-codes credentials or storage access; it depends on the
// CredentialProvider interface, and the in-memory implementation here carries
// the demo account table the prototype ships with.
package auth

import (
	"context"
	"errors"
)

// Role enumerates the access levels a user can hold.
type Role string

const (
	RoleMasterAdmin Role = "master-admin"
	RoleManager     Role = "manager"
	RoleTenant      Role = "tenant"
)

// DisplayName returns the human-readable role label shown in the UI.
func (r Role) DisplayName() string {
	switch r {
	case RoleMasterAdmin:
		return "Master Admin"
	case RoleManager:
		return "Manager"
	case RoleTenant:
		return "Tenant"
	default:
		return string(r)
	}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMasterAdmin, RoleManager, RoleTenant:
		return true
	}
	return false
}

// User is an authenticated identity, never carrying the password.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// WelcomeLine returns the role-specific greeting shown on the Home panel.
func (u User) WelcomeLine() string {
	switch u.Role {
	case RoleMasterAdmin:
		return "You have full administrative access to the system."
	case RoleManager:
		return "Manage your tenants efficiently."
	case RoleTenant:
		return "View your information and tasks here."
	default:
		return ""
	}
}

// Credential is an email/password pair exposed for the login form's demo
// autofill.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authentication failures. The per-role variants mirror the distinct
// messages the role-specific logins return.
var (
	ErrUserNotFound      = errors.New("User not found. Please check your email.")
	ErrWrongPassword     = errors.New("Incorrect password. Please try again.")
	ErrRoleEmailMismatch = errors.New("invalid credentials for role")
	ErrRolePassword      = errors.New("incorrect password for role")
)

// CredentialProvider authenticates users and exposes the demo credential
// catalogue.
type CredentialProvider interface {
	// Authenticate matches an email/password pair against any account.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// AuthenticateRole matches the pair against the single account holding
	// the given role, rejecting with role-specific errors otherwise.
	AuthenticateRole(ctx context.Context, role Role, email, password string) (*User, error)

	// UserByID returns the account for a previously issued identity.
	UserByID(ctx context.Context, id string) (*User, error)

	// Credentials returns the demo email/password pairs per role.
	Credentials() map[Role]Credential
}

type account struct {
	User
	password string
}

// memoryProvider is the in-memory credential table.
type memoryProvider struct {
	accounts []account
}

// NewMemoryProvider returns a provider seeded with the three demo accounts.
func NewMemoryProvider() CredentialProvider {
	return &memoryProvider{accounts: []account{
		{User: User{ID: "1", Name: "John Admin", Email: "admin@binder.com", Role: RoleMasterAdmin}, password: "admin123"},
		{User: User{ID: "2", Name: "Sarah Manager", Email: "manager@binder.com", Role: RoleManager}, password: "manager123"},
		{User: User{ID: "3", Name: "Mike Tenant", Email: "tenant@binder.com", Role: RoleTenant}, password: "tenant123"},
	}}
}

func (p *memoryProvider) Authenticate(_ context.Context, email, password string) (*User, error) {
	for _, acc := range p.accounts {
		if acc.Email == email {
			if acc.password != password {
				return nil, ErrWrongPassword
			}
			u := acc.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (p *memoryProvider) AuthenticateRole(_ context.Context, role Role, email, password string) (*User, error) {
	for _, acc := range p.accounts {
		if acc.Role != role {
			continue
		}
		if acc.Email != email {
			return nil, ErrRoleEmailMismatch
		}
		if acc.password != password {
			return nil, ErrRolePassword
		}
		u := acc.User
		return &u, nil
	}
	return nil, ErrUserNotFound
}

func (p *memoryProvider) UserByID(_ context.Context, id string) (*User, error) {
	for _, acc := range p.accounts {
		if acc.ID == id {
			u := acc.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (p *memoryProvider) Credentials() map[Role]Credential {
	out := make(map[Role]Credential, len(p.accounts))
	for _, acc := range p.accounts {
		out[acc.Role] = Credential{Email: acc.Email, Password: acc.password}
	}
	return out
}
