package fieldpath

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		segments int
		wantErr  bool
	}{
		{"single segment", "ssn", 1, false},
		{"nested", "owner.contact.email", 3, false},
		{"empty", "", 0, true},
		{"leading dot", ".owner", 0, true},
		{"trailing dot", "owner.", 0, true},
		{"double dot", "owner..email", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.path)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("expected ErrInvalidPath, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.path, err)
			}
			if len(p.segments) != tt.segments {
				t.Errorf("segment count = %d, want %d", len(p.segments), tt.segments)
			}
			if p.String() != tt.path {
				t.Errorf("String() = %q, want %q", p.String(), tt.path)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	p, err := Parse("owner.contact.email")
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Terminal(); got != "email" {
		t.Errorf("Terminal() = %q, want %q", got, "email")
	}
}

func TestResolveParent(t *testing.T) {
	obj := map[string]any{
		"id": "asset-1",
		"owner": map[string]any{
			"name": "holder",
			"contact": map[string]any{
				"email": "h@example.com",
			},
		},
		"tags": []any{"a", "b"},
	}

	tests := []struct {
		name      string
		path      string
		wantFound bool
		wantKey   string
	}{
		{"top level", "id", true, "id"},
		{"one deep", "owner.name", true, "name"},
		{"two deep", "owner.contact.email", true, "email"},
		{"missing intermediate", "issuer.name", false, ""},
		{"non-map intermediate", "tags.first", false, ""},
		{"scalar intermediate", "id.sub", false, ""},
		{"parent exists terminal missing", "owner.missing", true, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.path)
			if err != nil {
				t.Fatal(err)
			}

			parent, ok := p.ResolveParent(obj)
			if ok != tt.wantFound {
				t.Fatalf("ResolveParent() found = %v, want %v", ok, tt.wantFound)
			}

			if !tt.wantFound {
				return
			}

			if parent == nil {
				t.Fatal("found parent is nil")
			}
			if p.Terminal() != tt.wantKey {
				t.Errorf("Terminal() = %q, want %q", p.Terminal(), tt.wantKey)
			}
		})
	}
}

func TestResolveParent_NilRoot(t *testing.T) {
	p, err := Parse("a.b")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := p.ResolveParent(nil); ok {
		t.Error("nil root resolved")
	}
}
