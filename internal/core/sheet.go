package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"binder/internal/store"
)

var (
	// ErrVendorNotFound is returned when no record carries the requested code.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrConfirmationRequired is returned when a destructive action is
	// attempted without explicit confirmation. The store is not mutated.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// SortDirection orders a sorted column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState tracks which column the sheet is sorted by. The zero value means
// original order.
type SortState struct {
	Key       string        `json:"key,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Toggle applies a column-header click: clicking the currently sorted column
// reverses direction, clicking a new column resets to ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == SortAsc {
		return SortState{Key: key, Direction: SortDesc}
	}
	return SortState{Key: key, Direction: SortAsc}
}

// MasterSheet reconciles the built-in vendor seed data with user-persisted
// records into one de-duplicated, display-ready list, and keeps the store in
// sync. Editing a record is deliberately unimplemented; the sheet exposes
// merge, search, sort and delete only.
type MasterSheet struct {
	kv store.KeyValueStore
}

// NewMasterSheet constructs a MasterSheet over the given store.
func NewMasterSheet(kv store.KeyValueStore) *MasterSheet {
	return &MasterSheet{kv: kv}
}

// SeedVendors returns the vendor records that ship with the product.
func SeedVendors() []VendorRecord {
	return []VendorRecord{
		{
			Code:               "101",
			VendorName:         "ABC Textiles Pvt Ltd",
			Address:            "123, Industrial Area, Phase-1, Chandigarh, 160002",
			GST:                "03AABCA1234A1Z5",
			BankName:           "State Bank of India",
			AccNo:              "12345678901",
			IFSCCode:           "SBIN0001234",
			JobWorkCategory:    "Fabric",
			JobWorkSubCategory: "Cotton Yarn",
			ContactPerson:      "Rajesh Kumar",
			WhatsappNo:         "9876543210",
			AltWhatsappNo:      "9876543211",
			Email:              "rajesh@abctextiles.com",
			PaymentTerms:       "30 days credit after delivery",
			CreatedAt:          "2024-01-15T10:30:00Z",
		},
		{
			Code:               "102",
			VendorName:         "Global Yarn Industries",
			Address:            "456, Export Promotion Industrial Park, Ludhiana, Punjab, 141003",
			GST:                "03BBCDE5678B2Y4",
			BankName:           "HDFC Bank",
			AccNo:              "23456789012",
			IFSCCode:           "HDFC0002345",
			JobWorkCategory:    "Greige Yarn",
			JobWorkSubCategory: "Fine Count UV 24Ne to 60Ne",
			ContactPerson:      "Priya Sharma",
			WhatsappNo:         "8765432109",
			Email:              "priya@globalyarn.com",
			PaymentTerms:       "45 days credit after delivery and quality check",
			CreatedAt:          "2024-01-20T14:45:00Z",
		},
		{
			Code:               "103",
			VendorName:         "Premium Fabric Solutions",
			Address:            "789, Textile Hub, Sector-15, Noida, Uttar Pradesh, 201301",
			GST:                "09CDEFG9012C3X6",
			BankName:           "ICICI Bank",
			AccNo:              "34567890123",
			IFSCCode:           "ICIC0003456",
			JobWorkCategory:    "DYE",
			JobWorkSubCategory: "Polyester Yarn",
			ContactPerson:      "Amit Singh",
			WhatsappNo:         "7654321098",
			AltWhatsappNo:      "7654321099",
			Email:              "amit@premiumfabric.com",
			PaymentTerms:       "60 days credit with 2% early payment discount",
			CreatedAt:          "2024-01-25T09:15:00Z",
		},
	}
}

// LoadMerged returns the seed list merged with the persisted list: every
// persisted record whose code is not already present is appended in persisted
// order, so the seed's version of a duplicated code wins. The merged result is
// written back so the two views converge after first load. A malformed
// persisted list degrades to empty and is logged.
func (m *MasterSheet) LoadMerged(ctx context.Context) ([]VendorRecord, error) {
	merged := SeedVendors()
	seen := make(map[string]bool, len(merged))
	for _, rec := range merged {
		seen[rec.Code] = true
	}

	raw, ok, err := m.kv.Get(ctx, store.KeyVendorCodes)
	if err != nil {
		return nil, err
	}
	if ok {
		var persisted []VendorRecord
		if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
			log.Printf("store: malformed %s, showing seed data only: %v", store.KeyVendorCodes, err)
		} else {
			for _, rec := range persisted {
				if !seen[rec.Code] {
					merged = append(merged, rec)
					seen[rec.Code] = true
				}
			}
		}
	}

	if err := m.write(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Get returns the merged record with the given code.
func (m *MasterSheet) Get(ctx context.Context, code string) (*VendorRecord, error) {
	records, err := m.LoadMerged(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Code == code {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("vendor %q: %w", code, ErrVendorNotFound)
}

// Delete removes the record with the given code and rewrites the persisted
// list without it. Refuses to act without confirmation; there is no undo.
func (m *MasterSheet) Delete(ctx context.Context, code string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	records, err := m.LoadMerged(ctx)
	if err != nil {
		return err
	}
	kept := records[:0:0]
	for _, rec := range records {
		if rec.Code != code {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("vendor %q: %w", code, ErrVendorNotFound)
	}
	return m.write(ctx, kept)
}

// Search filters records by a case-insensitive substring match across every
// exposed textual field. An empty term returns the input unchanged.
func Search(records []VendorRecord, term string) []VendorRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	var out []VendorRecord
	for _, rec := range records {
		for _, field := range rec.textFields() {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// SortRecords orders records by the given column, stable so that equal keys
// keep their original order. An empty or unknown key leaves the order as-is.
func SortRecords(records []VendorRecord, state SortState) []VendorRecord {
	field, ok := sortFields[state.Key]
	if !ok {
		return records
	}
	out := make([]VendorRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := field(out[i]), field(out[j])
		if state.Direction == SortDesc {
			return a > b
		}
		return a < b
	})
	return out
}

// sortFields maps sortable column keys to field accessors.
var sortFields = map[string]func(VendorRecord) string{
	"code":            func(v VendorRecord) string { return v.Code },
	"vendorName":      func(v VendorRecord) string { return v.VendorName },
	"contactPerson":   func(v VendorRecord) string { return v.ContactPerson },
	"jobWorkCategory": func(v VendorRecord) string { return v.JobWorkCategory },
	"paymentTerms":    func(v VendorRecord) string { return v.PaymentTerms },
	"createdAt":       func(v VendorRecord) string { return v.CreatedAt },
}

func (m *MasterSheet) write(ctx context.Context, records []VendorRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", store.KeyVendorCodes, err)
	}
	return m.kv.Set(ctx, store.KeyVendorCodes, string(data))
}
