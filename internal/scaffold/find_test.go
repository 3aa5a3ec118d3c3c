package scaffold_test

import (
	"testing"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// TestFindByID verifies identity lookup, including inside hidden regions.
func TestFindByID(t *testing.T) {
	root := vstack("root",
		textNode("t1", "a"),
		hide(box("hiddenBox", button("buried", "Go"))),
	)

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"root itself", "root", true},
		{"visible child", "t1", true},
		{"invisible node", "hiddenBox", true},
		{"node inside hidden subtree", "buried", true},
		{"unknown id", "nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scaffold.FindByID(root, tt.id)
			if (got != nil) != tt.want {
				t.Errorf("FindByID(%q) found = %v, want %v", tt.id, got != nil, tt.want)
			}
			if got != nil && got.ID != tt.id {
				t.Errorf("FindByID(%q) returned node %q", tt.id, got.ID)
			}
		})
	}
}

// TestFindByIDFirstMatchWins documents that lookup is document-order over
// the structural tree.
func TestFindByIDFirstMatchWins(t *testing.T) {
	inner := button("target", "Go")
	root := vstack("root", box("bx", inner), textNode("after", "x"))

	if got := scaffold.FindByID(root, "target"); got != inner {
		t.Errorf("FindByID returned %+v, want the nested button node", got)
	}
}
