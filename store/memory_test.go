package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMemoryStorePutLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	site := Site{
		BaseURL:      "http://example.com/public",
		IndexPage:    "index.php",
		AllowedHosts: []string{"www.example.jp"},
	}
	if err := s.Put(ctx, "main", site); err != nil {
		t.Fatal(err)
	}

	got, err := s.Lookup(ctx, "main")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, site) {
		t.Errorf("Lookup = %+v, want %+v", got, site)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Lookup(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Put(ctx, "main", Site{BaseURL: "http://example.com/"})
	if err := s.Remove(ctx, "main"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Lookup(ctx, "main"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after remove: expected ErrNotFound, got: %v", err)
	}

	// Removing an unknown site is not an error.
	if err := s.Remove(ctx, "missing"); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}
}

func TestMemoryStoreNames(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Put(ctx, "b", Site{BaseURL: "http://b.example/"})
	s.Put(ctx, "a", Site{BaseURL: "http://a.example/"})

	names, err := s.Names(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Names = %v, want %v", names, want)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	hosts := []string{"www.example.jp"}
	s.Put(ctx, "main", Site{BaseURL: "http://example.com/", AllowedHosts: hosts})

	// Mutating the caller's slice must not change the stored record.
	hosts[0] = "evil.example.org"
	got, _ := s.Lookup(ctx, "main")
	if got.AllowedHosts[0] != "www.example.jp" {
		t.Error("stored record shares backing array with caller slice")
	}

	// Mutating the returned slice must not change the stored record either.
	got.AllowedHosts[0] = "evil.example.org"
	again, _ := s.Lookup(ctx, "main")
	if again.AllowedHosts[0] != "www.example.jp" {
		t.Error("returned record shares backing array with store")
	}
}
