package pattern_test

import (
	"reflect"
	"testing"

	"github.com/uxforge/uxlint/internal/pattern"
)

// TestDefaultRegistryAliases: every alias resolves to the same pattern as
// the canonical name, case-insensitively.
func TestDefaultRegistryAliases(t *testing.T) {
	reg := pattern.Default()

	for _, p := range reg.All() {
		canonical, ok := reg.Lookup(p.Name)
		if !ok {
			t.Fatalf("Lookup(%q) missed its own canonical name", p.Name)
		}
		for _, alias := range reg.Aliases(p.Name) {
			got, ok := reg.Lookup(alias)
			if !ok {
				t.Errorf("Lookup(%q) = none, want %q", alias, p.Name)
				continue
			}
			if got.Name != canonical.Name {
				t.Errorf("Lookup(%q) = %q, want %q", alias, got.Name, canonical.Name)
			}
		}
	}
}

// TestRegistryLookupCaseInsensitive covers case and whitespace folding.
func TestRegistryLookupCaseInsensitive(t *testing.T) {
	reg := pattern.Default()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"canonical exact", "Progressive.Disclosure", "Progressive.Disclosure", true},
		{"canonical lowered", "progressive.disclosure", "Progressive.Disclosure", true},
		{"canonical shouting", "PROGRESSIVE.DISCLOSURE", "Progressive.Disclosure", true},
		{"alias", "disclosure", "Progressive.Disclosure", true},
		{"alias mixed case", "DisClosure", "Progressive.Disclosure", true},
		{"alias padded", "  wizard  ", "Guided.Flow", true},
		{"unknown", "Nav.Breadcrumbs", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reg.Lookup(tt.in)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got.Name != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.in, got.Name, tt.want)
			}
		})
	}

	if reg.Has("Nav.Breadcrumbs") {
		t.Error("Has(unknown) = true, want false")
	}
	if !reg.Has("forms") {
		t.Error("Has(forms) = false, want true")
	}
}

// TestRegistryOrderIndependence: two registries built from the same
// entries in different orders expose identical views.
func TestRegistryOrderIndependence(t *testing.T) {
	entries := []pattern.Entry{
		{Pattern: pattern.ProgressiveDisclosure(), Aliases: []string{"disclosure"}},
		{Pattern: pattern.FormBasic(), Aliases: []string{"form"}},
		{Pattern: pattern.TableSimple(), Aliases: []string{"table"}},
		{Pattern: pattern.GuidedFlow(), Aliases: []string{"flow"}},
	}
	reversed := make([]pattern.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	a := pattern.NewRegistry(entries...)
	b := pattern.NewRegistry(reversed...)

	namesOf := func(r *pattern.Registry) []string {
		var out []string
		for _, p := range r.All() {
			out = append(out, p.Name)
		}
		return out
	}
	if !reflect.DeepEqual(namesOf(a), namesOf(b)) {
		t.Errorf("All() order differs: %v vs %v", namesOf(a), namesOf(b))
	}
	for _, name := range []string{"form", "flow", "disclosure", "table"} {
		pa, _ := a.Lookup(name)
		pb, _ := b.Lookup(name)
		if pa.Name != pb.Name {
			t.Errorf("Lookup(%q) differs across registration orders: %q vs %q", name, pa.Name, pb.Name)
		}
	}
}

// TestRegistryAllSorted pins canonical-name ordering of All().
func TestRegistryAllSorted(t *testing.T) {
	reg := pattern.Default()
	var names []string
	for _, p := range reg.All() {
		names = append(names, p.Name)
	}
	want := []string{"Form.Basic", "Guided.Flow", "Progressive.Disclosure", "Table.Simple"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("All() names = %v, want %v", names, want)
	}
	if reg.Len() != 4 {
		t.Errorf("Len() = %d, want 4", reg.Len())
	}
}

// TestRegistryAliasCollisionPanics documents the construction contract.
func TestRegistryAliasCollisionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRegistry with colliding aliases did not panic")
		}
	}()
	pattern.NewRegistry(
		pattern.Entry{Pattern: pattern.FormBasic(), Aliases: []string{"shared"}},
		pattern.Entry{Pattern: pattern.TableSimple(), Aliases: []string{"shared"}},
	)
}

// TestRegistryAliasesUnknown returns nil for unknown canonical names.
func TestRegistryAliasesUnknown(t *testing.T) {
	if got := pattern.Default().Aliases("Nav.Breadcrumbs"); got != nil {
		t.Errorf("Aliases(unknown) = %v, want nil", got)
	}
}
