package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"binder/internal/store"
)

// CodeService runs the read-allocate-append-write workflow for buyer and
// vendor code generation against the key-value store. Validation happens
// before any storage access; a rejected submission never touches the store.
type CodeService struct {
	kv store.KeyValueStore
}

// NewCodeService constructs a CodeService over the given store.
func NewCodeService(kv store.KeyValueStore) *CodeService {
	return &CodeService{kv: kv}
}

// GenerateBuyerCode validates the input, allocates the next buyer code and
// persists the new record. A buyer list that cannot be decoded falls back to
// a timestamp-derived code on a fresh list so generation never fails outright.
func (s *CodeService) GenerateBuyerCode(ctx context.Context, in BuyerInput) (*BuyerRecord, error) {
	if verr := ValidateBuyerInput(in); verr != nil {
		return nil, verr
	}

	existing, decodeErr := s.loadBuyerCodes(ctx)
	if decodeErr != nil {
		return nil, decodeErr
	}

	var code string
	if existing == nil {
		// Marker from loadBuyerCodes: the stored list was corrupt.
		code = FallbackBuyerCode(time.Now())
		existing = []BuyerRecord{}
	} else {
		code = NextBuyerCode(existing)
	}

	rec := BuyerRecord{
		Code:          code,
		BuyerName:     trimmed(in.BuyerName),
		BuyerAddress:  trimmed(in.BuyerAddress),
		ContactPerson: trimmed(in.ContactPerson),
		Retailer:      trimmed(in.Retailer),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	existing = append(existing, rec)
	if err := s.writeList(ctx, store.KeyBuyerCodes, existing); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListBuyerCodes returns all persisted buyer records, oldest first.
func (s *CodeService) ListBuyerCodes(ctx context.Context) ([]BuyerRecord, error) {
	records, err := s.loadBuyerCodes(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []BuyerRecord{}, nil
	}
	return records, nil
}

// GenerateVendorCode validates the input, allocates the next vendor code
// (last-element rule) and persists the new record.
func (s *CodeService) GenerateVendorCode(ctx context.Context, in VendorInput) (*VendorRecord, error) {
	if verr := ValidateVendorInput(in); verr != nil {
		return nil, verr
	}

	existing, err := s.LoadVendorCodes(ctx)
	if err != nil {
		return nil, err
	}

	code, err := NextVendorCode(existing)
	if err != nil {
		return nil, err
	}

	rec := VendorRecord{
		Code:               code,
		VendorName:         trimmed(in.VendorName),
		Address:            trimmed(in.Address),
		GST:                trimmed(in.GST),
		BankName:           trimmed(in.BankName),
		AccNo:              trimmed(in.AccNo),
		IFSCCode:           trimmed(in.IFSCCode),
		JobWorkCategory:    trimmed(in.JobWorkCategory),
		JobWorkSubCategory: trimmed(in.JobWorkSubCategory),
		ContactPerson:      trimmed(in.ContactPerson),
		WhatsappNo:         trimmed(in.WhatsappNo),
		AltWhatsappNo:      trimmed(in.AltWhatsappNo),
		Email:              trimmed(in.Email),
		PaymentTerms:       trimmed(in.PaymentTerms),
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}

	existing = append(existing, rec)
	if err := s.writeList(ctx, store.KeyVendorCodes, existing); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadVendorCodes returns the persisted vendor list. A list that cannot be
// decoded degrades to empty; the condition is logged, never surfaced.
func (s *CodeService) LoadVendorCodes(ctx context.Context) ([]VendorRecord, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyVendorCodes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []VendorRecord{}, nil
	}
	var records []VendorRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("store: malformed %s, treating as empty: %v", store.KeyVendorCodes, err)
		return []VendorRecord{}, nil
	}
	return records, nil
}

// loadBuyerCodes returns (nil, nil) when the stored list is corrupt, which
// GenerateBuyerCode maps to the timestamp fallback code.
func (s *CodeService) loadBuyerCodes(ctx context.Context) ([]BuyerRecord, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyBuyerCodes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []BuyerRecord{}, nil
	}
	var records []BuyerRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("store: malformed %s: %v", store.KeyBuyerCodes, err)
		return nil, nil
	}
	return records, nil
}

func (s *CodeService) writeList(ctx context.Context, key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data))
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
