package app

import (
	"context"

	"binder/internal/auth"
	"binder/internal/core"
)

// ApplicationService is the single interface all transport adapters call. It
// decouples presentation from business logic; implementations contain no
// HTTP, no HTML, and no display logic of any kind.
type ApplicationService interface {
	// AuthenticateUser matches credentials against any account. Applies the
	// configured artificial submission delay.
	AuthenticateUser(ctx context.Context, email, password string) (*SessionResult, error)

	// AuthenticateRole matches credentials against the single account holding
	// the given role, with the role-specific rejection messages.
	AuthenticateRole(ctx context.Context, role auth.Role, email, password string) (*SessionResult, error)

	// GetUser returns the profile for a previously authenticated identity.
	GetUser(ctx context.Context, userID string) (*auth.User, error)

	// DemoCredentials returns the demo email/password pairs for the login
	// form autofill.
	DemoCredentials() map[auth.Role]auth.Credential

	// GenerateBuyerCode validates the form, allocates the next buyer code and
	// persists the record. Rejects an overlapping buyer submission.
	GenerateBuyerCode(ctx context.Context, req GenerateBuyerCodeRequest) (*BuyerCodeResult, error)

	// ListBuyerCodes returns all generated buyer records, oldest first.
	ListBuyerCodes(ctx context.Context) (*BuyerListResult, error)

	// GenerateVendorCode validates the form, allocates the next vendor code
	// and persists the record. Rejects an overlapping vendor submission.
	GenerateVendorCode(ctx context.Context, req GenerateVendorCodeRequest) (*VendorCodeResult, error)

	// VendorFormOptions returns the job-work category and sub-category option
	// lists for the vendor form dropdowns.
	VendorFormOptions() *VendorOptionsResult

	// VendorSheet returns the merged, searched, sorted master sheet view.
	VendorSheet(ctx context.Context, req VendorSheetRequest) (*VendorSheetResult, error)

	// GetVendor returns one merged record for the detail view.
	GetVendor(ctx context.Context, code string) (*core.VendorRecord, error)

	// DeleteVendor removes a record by code. Refuses without confirmation;
	// there is no undo.
	DeleteVendor(ctx context.Context, code string, confirmed bool) error

	// ListFAQs returns help-center entries filtered by search and category.
	ListFAQs(search, category string) *FAQResult

	// Chat answers a user question about the software. Never returns an
	// error: any collaborator failure degrades to the fixed fallback message.
	Chat(ctx context.Context, message string) *ChatResult
}
