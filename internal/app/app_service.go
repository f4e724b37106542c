package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"binder/internal/ai"
	"binder/internal/auth"
	"binder/internal/core"

	"github.com/google/uuid"
)

// ErrSubmissionInFlight is returned when a second submission for the same
// category arrives while one is still being processed, the server-side
// analogue of disabling the submit button.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

type binderService struct {
	provider    auth.CredentialProvider
	codes       *core.CodeService
	sheet       *core.MasterSheet
	assistant   ai.AssistantService
	submitDelay time.Duration

	// One guard per code category: read-modify-write on a category's list
	// must not interleave, and rapid double submits are rejected outright.
	buyerGate  chan struct{}
	vendorGate chan struct{}
}

// NewBinderService constructs the ApplicationService implementation.
// submitDelay simulates the network latency of the original flows; zero
// disables it.
func NewBinderService(
	provider auth.CredentialProvider,
	codes *core.CodeService,
	sheet *core.MasterSheet,
	assistant ai.AssistantService,
	submitDelay time.Duration,
) ApplicationService {
	s := &binderService{
		provider:    provider,
		codes:       codes,
		sheet:       sheet,
		assistant:   assistant,
		submitDelay: submitDelay,
		buyerGate:   make(chan struct{}, 1),
		vendorGate:  make(chan struct{}, 1),
	}
	return s
}

// AuthenticateUser matches credentials against any account.
func (s *binderService) AuthenticateUser(ctx context.Context, email, password string) (*SessionResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	user, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &SessionResult{
		Token:   sessionToken(email),
		User:    user,
		Message: "Login successful",
	}, nil
}

// AuthenticateRole matches credentials against the account holding the role.
func (s *binderService) AuthenticateRole(ctx context.Context, role auth.Role, email, password string) (*SessionResult, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	user, err := s.provider.AuthenticateRole(ctx, role, email, password)
	if err != nil {
		return nil, err
	}
	return &SessionResult{
		Token:   sessionToken(email),
		User:    user,
		Message: role.DisplayName() + " login successful",
	}, nil
}

func (s *binderService) GetUser(ctx context.Context, userID string) (*auth.User, error) {
	return s.provider.UserByID(ctx, userID)
}

func (s *binderService) DemoCredentials() map[auth.Role]auth.Credential {
	return s.provider.Credentials()
}

// GenerateBuyerCode runs the buyer submission inside the buyer gate.
func (s *binderService) GenerateBuyerCode(ctx context.Context, req GenerateBuyerCodeRequest) (*BuyerCodeResult, error) {
	release, err := acquire(s.buyerGate)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	rec, err := s.codes.GenerateBuyerCode(ctx, req.BuyerInput)
	if err != nil {
		return nil, err
	}
	return &BuyerCodeResult{Record: rec}, nil
}

func (s *binderService) ListBuyerCodes(ctx context.Context) (*BuyerListResult, error) {
	records, err := s.codes.ListBuyerCodes(ctx)
	if err != nil {
		return nil, err
	}
	return &BuyerListResult{Records: records}, nil
}

// GenerateVendorCode runs the vendor submission inside the vendor gate.
func (s *binderService) GenerateVendorCode(ctx context.Context, req GenerateVendorCodeRequest) (*VendorCodeResult, error) {
	release, err := acquire(s.vendorGate)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	rec, err := s.codes.GenerateVendorCode(ctx, req.VendorInput)
	if err != nil {
		return nil, err
	}
	return &VendorCodeResult{Record: rec}, nil
}

func (s *binderService) VendorFormOptions() *VendorOptionsResult {
	return &VendorOptionsResult{
		Categories:    core.JobWorkCategories,
		SubCategories: core.JobWorkSubCategories,
	}
}

// VendorSheet loads the merged sheet, applies search, then the sort toggle
// policy and ordering.
func (s *binderService) VendorSheet(ctx context.Context, req VendorSheetRequest) (*VendorSheetResult, error) {
	merged, err := s.sheet.LoadMerged(ctx)
	if err != nil {
		return nil, err
	}

	matching := core.Search(merged, req.Search)

	sortState := req.PrevSort
	if req.HasClick {
		sortState = req.PrevSort.Toggle(req.SortKey)
	}
	ordered := core.SortRecords(matching, sortState)

	return &VendorSheetResult{
		Records:  ordered,
		Total:    len(merged),
		Matching: len(matching),
		Sort:     sortState,
	}, nil
}

func (s *binderService) GetVendor(ctx context.Context, code string) (*core.VendorRecord, error) {
	return s.sheet.Get(ctx, code)
}

func (s *binderService) DeleteVendor(ctx context.Context, code string, confirmed bool) error {
	return s.sheet.Delete(ctx, code, confirmed)
}

func (s *binderService) ListFAQs(search, category string) *FAQResult {
	return &FAQResult{
		Categories: core.FAQCategories(),
		Entries:    core.FilterFAQs(core.AllFAQs(), search, category),
	}
}

// Chat never fails: a collaborator error is logged and degraded to the fixed
// fallback sentence. The reply has **bold** converted for display.
func (s *binderService) Chat(ctx context.Context, message string) *ChatResult {
	reply, err := s.assistant.Reply(ctx, message)
	if err != nil {
		log.Printf("assistant: %v", err)
		return &ChatResult{Text: ai.FallbackMessage, Fallback: true}
	}
	return &ChatResult{Text: ai.FormatBold(reply)}
}

// acquire takes the gate without blocking; a held gate means a submission is
// already in flight.
func acquire(gate chan struct{}) (func(), error) {
	select {
	case gate <- struct{}{}:
		return func() { <-gate }, nil
	default:
		return nil, ErrSubmissionInFlight
	}
}

// delay sleeps for the configured artificial latency, honoring cancellation.
func (s *binderService) delay(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.submitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sessionToken mints an opaque per-login token in the original's format. The
// browser session itself is carried by the signed cookie; this token is only
// echoed back to the client.
func sessionToken(email string) string {
	return fmt.Sprintf("binder_token_%s_%s", email, uuid.NewString())
}
