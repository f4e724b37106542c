package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(ctx, "buyerCodes", `[{"code":"101A"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, "buyerCodes")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if got != `[{"code":"101A"}]` {
		t.Errorf("Get = %q, want stored value", got)
	}

	// Overwrite replaces, it does not append.
	if err := s.Set(ctx, "buyerCodes", `[]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _, _ = s.Get(ctx, "buyerCodes")
	if got != `[]` {
		t.Errorf("Get after overwrite = %q, want []", got)
	}

	if err := s.Remove(ctx, "buyerCodes"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "buyerCodes"); ok {
		t.Error("Get after Remove reports key present")
	}
}

func TestSQLiteStore_MemorySurvivesConcurrentUse(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	// Parallel access makes database/sql spin up extra pooled connections,
	// and every fresh :memory: connection is a separate empty database. The
	// single-connection pin keeps all goroutines on the one holding the kv
	// table.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			for j := 0; j < 25; j++ {
				if err := s.Set(ctx, key, fmt.Sprintf("%d", j)); err != nil {
					t.Errorf("Set(%s): %v", key, err)
					return
				}
				if _, ok, err := s.Get(ctx, key); err != nil || !ok {
					t.Errorf("Get(%s) = ok=%v err=%v", key, ok, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("key-%d", i)
		got, ok, err := s.Get(ctx, key)
		if err != nil || !ok || got != "24" {
			t.Errorf("Get(%s) = %q ok=%v err=%v, want final write", key, got, ok, err)
		}
	}
}
