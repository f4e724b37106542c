package auth_test

import (
	"context"
	"errors"
	"testing"

	"binder/internal/auth"
)

func TestMemoryProvider_Authenticate(t *testing.T) {
	p := auth.NewMemoryProvider()
	ctx := context.Background()

	user, err := p.Authenticate(ctx, "admin@binder.com", "admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Name != "John Admin" || user.Role != auth.RoleMasterAdmin {
		t.Errorf("user = %+v", user)
	}

	if _, err := p.Authenticate(ctx, "nobody@binder.com", "x"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want ErrUserNotFound", err)
	}
	if _, err := p.Authenticate(ctx, "admin@binder.com", "wrong"); !errors.Is(err, auth.ErrWrongPassword) {
		t.Errorf("wrong password error = %v, want ErrWrongPassword", err)
	}
}

func TestMemoryProvider_AuthenticateRole(t *testing.T) {
	p := auth.NewMemoryProvider()
	ctx := context.Background()

	user, err := p.AuthenticateRole(ctx, auth.RoleManager, "manager@binder.com", "manager123")
	if err != nil {
		t.Fatalf("AuthenticateRole: %v", err)
	}
	if user.Name != "Sarah Manager" {
		t.Errorf("user = %+v", user)
	}

	// The manager account cannot log in through the tenant door.
	if _, err := p.AuthenticateRole(ctx, auth.RoleTenant, "manager@binder.com", "manager123"); !errors.Is(err, auth.ErrRoleEmailMismatch) {
		t.Errorf("cross-role error = %v, want ErrRoleEmailMismatch", err)
	}
	if _, err := p.AuthenticateRole(ctx, auth.RoleTenant, "tenant@binder.com", "wrong"); !errors.Is(err, auth.ErrRolePassword) {
		t.Errorf("wrong password error = %v, want ErrRolePassword", err)
	}
}

func TestMemoryProvider_UserByID(t *testing.T) {
	p := auth.NewMemoryProvider()
	ctx := context.Background()

	user, err := p.UserByID(ctx, "3")
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if user.Email != "tenant@binder.com" {
		t.Errorf("user = %+v", user)
	}

	if _, err := p.UserByID(ctx, "42"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("unknown id error = %v, want ErrUserNotFound", err)
	}
}

func TestCredentialsPerRole(t *testing.T) {
	creds := auth.NewMemoryProvider().Credentials()
	if len(creds) != 3 {
		t.Fatalf("got %d credential entries, want 3", len(creds))
	}
	if creds[auth.RoleMasterAdmin].Email != "admin@binder.com" {
		t.Errorf("master admin credential = %+v", creds[auth.RoleMasterAdmin])
	}
}

func TestWelcomeLine(t *testing.T) {
	tests := []struct {
		role auth.Role
		want string
	}{
		{auth.RoleMasterAdmin, "You have full administrative access to the system."},
		{auth.RoleManager, "Manage your tenants efficiently."},
		{auth.RoleTenant, "View your information and tasks here."},
	}
	for _, tt := range tests {
		u := auth.User{Role: tt.role}
		if got := u.WelcomeLine(); got != tt.want {
			t.Errorf("WelcomeLine(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
