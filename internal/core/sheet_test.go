package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"binder/internal/core"
	"binder/internal/store"
)

func newSheet(t *testing.T) (*core.MasterSheet, store.KeyValueStore) {
	t.Helper()
	kv, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return core.NewMasterSheet(kv), kv
}

func putVendors(t *testing.T, kv store.KeyValueStore, records []core.VendorRecord) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := kv.Set(context.Background(), store.KeyVendorCodes, string(data)); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func codesOf(records []core.VendorRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Code
	}
	return out
}

func TestMasterSheet_LoadMerged_EmptyStoreYieldsSeed(t *testing.T) {
	sheet, _ := newSheet(t)

	records, err := sheet.LoadMerged(context.Background())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	want := []string{"101", "102", "103"}
	got := codesOf(records)
	if len(got) != len(want) {
		t.Fatalf("merged codes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("merged[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMasterSheet_LoadMerged_SeedWinsOnDuplicateCode(t *testing.T) {
	sheet, kv := newSheet(t)

	putVendors(t, kv, []core.VendorRecord{
		{Code: "101", VendorName: "Shadow Vendor"}, // collides with a seed code
		{Code: "999", VendorName: "Custom Vendor"},
	})

	records, err := sheet.LoadMerged(context.Background())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("merged length = %d, want 4 (3 seed + 1 persisted), codes %v", len(records), codesOf(records))
	}
	if records[0].VendorName != "ABC Textiles Pvt Ltd" {
		t.Errorf("seed record for 101 was shadowed: got %q", records[0].VendorName)
	}
	if records[3].Code != "999" || records[3].VendorName != "Custom Vendor" {
		t.Errorf("persisted record not appended: got %+v", records[3])
	}

	// The merged result is written back so subsequent reads converge.
	raw, ok, err := kv.Get(context.Background(), store.KeyVendorCodes)
	if err != nil || !ok {
		t.Fatalf("Get after merge: ok=%v err=%v", ok, err)
	}
	var persisted []core.VendorRecord
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted: %v", err)
	}
	if len(persisted) != 4 {
		t.Errorf("persisted length after merge = %d, want 4", len(persisted))
	}
}

func TestMasterSheet_LoadMerged_MalformedStoreDegradesToSeed(t *testing.T) {
	sheet, kv := newSheet(t)

	if err := kv.Set(context.Background(), store.KeyVendorCodes, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	records, err := sheet.LoadMerged(context.Background())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("merged codes = %v, want the three seed vendors", codesOf(records))
	}
}

func TestMasterSheet_Get(t *testing.T) {
	sheet, _ := newSheet(t)

	rec, err := sheet.Get(context.Background(), "102")
	if err != nil {
		t.Fatalf("Get(102): %v", err)
	}
	if rec.VendorName != "Global Yarn Industries" {
		t.Errorf("Get(102) = %q, want Global Yarn Industries", rec.VendorName)
	}

	if _, err := sheet.Get(context.Background(), "404"); !errors.Is(err, core.ErrVendorNotFound) {
		t.Errorf("Get(404) error = %v, want ErrVendorNotFound", err)
	}
}

func TestMasterSheet_Delete(t *testing.T) {
	sheet, kv := newSheet(t)
	ctx := context.Background()

	if err := sheet.Delete(ctx, "102", false); !errors.Is(err, core.ErrConfirmationRequired) {
		t.Fatalf("unconfirmed delete error = %v, want ErrConfirmationRequired", err)
	}

	if err := sheet.Delete(ctx, "102", true); err != nil {
		t.Fatalf("Delete(102): %v", err)
	}

	raw, ok, err := kv.Get(ctx, store.KeyVendorCodes)
	if err != nil || !ok {
		t.Fatalf("Get after delete: ok=%v err=%v", ok, err)
	}
	var persisted []core.VendorRecord
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted: %v", err)
	}
	got := codesOf(persisted)
	if len(got) != 2 || got[0] != "101" || got[1] != "103" {
		t.Errorf("persisted codes after delete = %v, want [101 103]", got)
	}

	if err := sheet.Delete(ctx, "404", true); !errors.Is(err, core.ErrVendorNotFound) {
		t.Errorf("Delete(404) error = %v, want ErrVendorNotFound", err)
	}
}

func TestMasterSheet_DeletedSeedResurrectsOnNextLoad(t *testing.T) {
	sheet, _ := newSheet(t)
	ctx := context.Background()

	if err := sheet.Delete(ctx, "102", true); err != nil {
		t.Fatalf("Delete(102): %v", err)
	}

	// Every load starts from the built-in seed list, so a deleted seed
	// record comes back on the next merge. Only user-generated records are
	// permanently removable.
	records, err := sheet.LoadMerged(ctx)
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	got := codesOf(records)
	if len(got) != 3 || got[1] != "102" {
		t.Errorf("codes after reload = %v, want the full seed list back", got)
	}
}

func TestMasterSheet_DeletedGeneratedVendorStaysGone(t *testing.T) {
	sheet, kv := newSheet(t)
	ctx := context.Background()

	if _, err := sheet.LoadMerged(ctx); err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	seed := core.SeedVendors()
	putVendors(t, kv, append(seed, core.VendorRecord{Code: "104", VendorName: "Delta Dyeing"}))

	if err := sheet.Delete(ctx, "104", true); err != nil {
		t.Fatalf("Delete(104): %v", err)
	}

	records, err := sheet.LoadMerged(ctx)
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	for _, r := range records {
		if r.Code == "104" {
			t.Error("deleted vendor 104 resurrected")
		}
	}
	if len(records) != 3 {
		t.Errorf("codes after reload = %v, want only the seeds", codesOf(records))
	}
}

func TestSearch(t *testing.T) {
	records := core.SeedVendors()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term returns all", term: "", want: []string{"101", "102", "103"}},
		{name: "matches name case-insensitively", term: "global YARN", want: []string{"102"}},
		{name: "matches code", term: "103", want: []string{"103"}},
		{name: "matches address", term: "noida", want: []string{"103"}},
		{name: "matches payment terms", term: "discount", want: []string{"103"}},
		{name: "no match", term: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codesOf(core.Search(records, tt.term))
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tt.term, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSortState_Toggle(t *testing.T) {
	var s core.SortState

	s = s.Toggle("vendorName")
	if s != (core.SortState{Key: "vendorName", Direction: core.SortAsc}) {
		t.Fatalf("first click = %+v, want vendorName asc", s)
	}

	s = s.Toggle("vendorName")
	if s != (core.SortState{Key: "vendorName", Direction: core.SortDesc}) {
		t.Fatalf("second click = %+v, want vendorName desc", s)
	}

	s = s.Toggle("code")
	if s != (core.SortState{Key: "code", Direction: core.SortAsc}) {
		t.Fatalf("new column = %+v, want code asc", s)
	}
}

func TestSortRecords(t *testing.T) {
	records := []core.VendorRecord{
		{Code: "103", VendorName: "Charlie"},
		{Code: "101", VendorName: "alpha"},
		{Code: "102", VendorName: "Bravo"},
	}

	asc := core.SortRecords(records, core.SortState{Key: "code", Direction: core.SortAsc})
	if got := codesOf(asc); got[0] != "101" || got[2] != "103" {
		t.Errorf("ascending sort = %v", got)
	}

	desc := core.SortRecords(records, core.SortState{Key: "code", Direction: core.SortDesc})
	if got := codesOf(desc); got[0] != "103" || got[2] != "101" {
		t.Errorf("descending sort = %v", got)
	}

	// Unknown key leaves order untouched.
	same := core.SortRecords(records, core.SortState{Key: "bogus"})
	if got := codesOf(same); got[0] != "103" {
		t.Errorf("unknown key reordered: %v", got)
	}

	// Input order is never mutated.
	if records[0].Code != "103" {
		t.Errorf("SortRecords mutated its input: %v", codesOf(records))
	}
}
