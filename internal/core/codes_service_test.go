package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"binder/internal/core"
	"binder/internal/store"
)

func newCodeService(t *testing.T) (*core.CodeService, store.KeyValueStore) {
	t.Helper()
	kv, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return core.NewCodeService(kv), kv
}

func validBuyerInput() core.BuyerInput {
	return core.BuyerInput{
		BuyerName:     "Acme Exports",
		BuyerAddress:  "1 Main St",
		ContactPerson: "Jo",
		Retailer:      "MegaMart",
	}
}

func TestCodeService_GenerateBuyerCode_Sequence(t *testing.T) {
	svc, _ := newCodeService(t)
	ctx := context.Background()

	first, err := svc.GenerateBuyerCode(ctx, validBuyerInput())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if first.Code != "101A" {
		t.Errorf("first code = %q, want 101A", first.Code)
	}

	second, err := svc.GenerateBuyerCode(ctx, validBuyerInput())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if second.Code != "102A" {
		t.Errorf("second code = %q, want 102A", second.Code)
	}

	list, err := svc.ListBuyerCodes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Code != "101A" || list[1].Code != "102A" {
		t.Errorf("persisted list = %+v", list)
	}
	if list[0].CreatedAt == "" {
		t.Error("CreatedAt not stamped")
	}
}

func TestCodeService_GenerateBuyerCode_TrimsFields(t *testing.T) {
	svc, _ := newCodeService(t)

	in := validBuyerInput()
	in.BuyerName = "  Acme Exports  "
	rec, err := svc.GenerateBuyerCode(context.Background(), in)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rec.BuyerName != "Acme Exports" {
		t.Errorf("BuyerName = %q, want trimmed", rec.BuyerName)
	}
}

func TestCodeService_GenerateBuyerCode_RejectsInvalid(t *testing.T) {
	svc, _ := newCodeService(t)

	_, err := svc.GenerateBuyerCode(context.Background(), core.BuyerInput{})
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 4 {
		t.Errorf("flagged fields = %v, want all four", verr.Fields)
	}
}

func TestCodeService_GenerateBuyerCode_CorruptListFallsBackToTimestamp(t *testing.T) {
	svc, kv := newCodeService(t)
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyBuyerCodes, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rec, err := svc.GenerateBuyerCode(ctx, validBuyerInput())
	if err != nil {
		t.Fatalf("generate over corrupt list: %v", err)
	}
	if len(rec.Code) != 4 || !strings.HasSuffix(rec.Code, "A") {
		t.Errorf("fallback code = %q, want three digits plus A", rec.Code)
	}

	// The corrupt list was replaced with a fresh one holding the record.
	list, err := svc.ListBuyerCodes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Code != rec.Code {
		t.Errorf("rebuilt list = %+v", list)
	}
}

func TestCodeService_GenerateVendorCode_Sequence(t *testing.T) {
	svc, _ := newCodeService(t)
	ctx := context.Background()

	first, err := svc.GenerateVendorCode(ctx, validVendorInput())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if first.Code != "101" {
		t.Errorf("first code = %q, want 101", first.Code)
	}

	second, err := svc.GenerateVendorCode(ctx, validVendorInput())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if second.Code != "102" {
		t.Errorf("second code = %q, want 102", second.Code)
	}
}

func TestCodeService_GenerateVendorCode_UnparseableTail(t *testing.T) {
	svc, kv := newCodeService(t)
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyVendorCodes, `[{"code":"101"},{"code":"abc"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := svc.GenerateVendorCode(ctx, validVendorInput()); !errors.Is(err, core.ErrVendorCodeUnparseable) {
		t.Errorf("error = %v, want ErrVendorCodeUnparseable", err)
	}
}

func TestCodeService_LoadVendorCodes_MalformedDegradesToEmpty(t *testing.T) {
	svc, kv := newCodeService(t)
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeyVendorCodes, "]["); err != nil {
		t.Fatalf("Set: %v", err)
	}

	records, err := svc.LoadVendorCodes(ctx)
	if err != nil {
		t.Fatalf("LoadVendorCodes: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v, want empty", records)
	}
}
