package material

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "thermal.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupAluminum(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Lookup(context.Background(), "Aluminum")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if p.Conductivity != 225.94 {
		t.Errorf("expected conductivity 225.94, got %v", p.Conductivity)
	}
	if p.Diffusivity != 91 || p.SpecificHeat != 921 || p.Effusivity != 23688 || p.Density != 2698 {
		t.Errorf("unexpected tuple: %+v", p)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want, err := s.Lookup(ctx, "Aluminum")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	for _, name := range []string{"aluminum", "ALUMINUM", "aLuMiNuM"} {
		got, err := s.Lookup(ctx, name)
		if err != nil {
			t.Fatalf("%s: lookup failed: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: expected %+v, got %+v", name, want, got)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	s := openTestStore(t)

	// Spelled like the British.
	_, err := s.Lookup(context.Background(), "Aluminium")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.Material != "Aluminium" {
		t.Errorf("error should carry the requested name, got %q", nf.Material)
	}
	if len(nf.Known) == 0 {
		t.Fatal("expected known material names in the error")
	}
	found := false
	for _, n := range nf.Known {
		if n == "Aluminum" {
			found = true
		}
	}
	if !found {
		t.Error("known names should include Aluminum")
	}
}

func TestNamesSorted(t *testing.T) {
	s := openTestStore(t)

	names, err := s.Names(context.Background())
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}
	if len(names) != len(seedData) {
		t.Errorf("expected %d names, got %d", len(seedData), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names should be sorted")
	}
}

func TestSeedOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	entries, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(entries) != len(seedData) {
		t.Errorf("expected %d rows after reopen, got %d", len(seedData), len(entries))
	}
}
