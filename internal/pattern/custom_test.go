package pattern_test

import (
	"strings"
	"testing"

	"github.com/uxforge/uxlint/internal/pattern"
)

// TestCompileCustomPattern covers rule compilation and evaluation against
// the node environment.
func TestCompileCustomPattern(t *testing.T) {
	p, err := pattern.CompileCustomPattern([]pattern.CustomRuleSpec{
		{
			ID:          "button-text-short",
			Level:       "should",
			Description: "button text stays under 25 characters",
			AppliesTo:   "button",
			Expr:        `size(node.text) < 25`,
		},
		{
			ID:        "ids-are-kebab",
			Level:     "must",
			Expr:      `node.id.matches("^[a-z][a-z0-9-]*$")`,
			AppliesTo: "",
		},
	})
	if err != nil {
		t.Fatalf("CompileCustomPattern() error: %v", err)
	}
	if p.Name != pattern.CustomPatternName {
		t.Errorf("Name = %q, want %q", p.Name, pattern.CustomPatternName)
	}
	if len(p.Must) != 1 || len(p.Should) != 1 {
		t.Fatalf("rule split = %d must / %d should, want 1/1", len(p.Must), len(p.Should))
	}

	root := vstack("root",
		button("ok", "Go"),
		button("chatty", "This button text is far far too long to sit on a button"),
		textNode("BadId", "x"),
	)

	shouldIssues := p.Should[0].Check(root)
	if len(shouldIssues) != 1 {
		t.Fatalf("button-text-short issues = %d, want 1", len(shouldIssues))
	}
	is := shouldIssues[0]
	if is.NodeID != "chatty" || is.Severity != pattern.SeverityWarn {
		t.Errorf("issue = %+v, want warn on chatty", is)
	}
	if !strings.Contains(is.Message, "button text stays under 25 characters") {
		t.Errorf("Message = %q, want the rule description woven in", is.Message)
	}

	mustIssues := p.Must[0].Check(root)
	if len(mustIssues) != 1 || mustIssues[0].NodeID != "BadId" {
		t.Fatalf("ids-are-kebab issues = %v, want one error on BadId", mustIssues)
	}
	if mustIssues[0].Severity != pattern.SeverityError {
		t.Errorf("must-rule severity = %q, want error", mustIssues[0].Severity)
	}
}

// TestCustomRuleAppliesToFilter: a kind filter keeps other kinds out of
// the rule's sight entirely.
func TestCustomRuleAppliesToFilter(t *testing.T) {
	p, err := pattern.CompileCustomPattern([]pattern.CustomRuleSpec{
		{ID: "fields-labeled", Level: "must", AppliesTo: "field", Expr: `size(node.label) > 0`},
	})
	if err != nil {
		t.Fatalf("CompileCustomPattern() error: %v", err)
	}

	root := vstack("root",
		field("bad", "", false),
		button("unaffected", ""), // would fail size(node.label) if visited
	)

	issues := p.Must[0].Check(root)
	if len(issues) != 1 || issues[0].NodeID != "bad" {
		t.Errorf("issues = %v, want exactly one on the field", issues)
	}
}

// TestCustomRuleEvalErrorEmitsNothing: an expression that errors on a node
// (here: a missing field) stays silent for that node, keeping the rule
// total.
func TestCustomRuleEvalErrorEmitsNothing(t *testing.T) {
	p, err := pattern.CompileCustomPattern([]pattern.CustomRuleSpec{
		{ID: "labels-long", Level: "should", Expr: `size(node.label) > 2`},
	})
	if err != nil {
		t.Fatalf("CompileCustomPattern() error: %v", err)
	}

	// Buttons carry no label key; evaluation errors and emits nothing for
	// them, while the short-labeled field is still caught.
	root := vstack("root", button("b", "Go"), field("f", "x", false))

	issues := p.Should[0].Check(root)
	if len(issues) != 1 || issues[0].NodeID != "f" {
		t.Errorf("issues = %v, want exactly one on the field", issues)
	}
}

// TestCompileCustomPatternRejects covers configuration failure modes.
func TestCompileCustomPatternRejects(t *testing.T) {
	tests := []struct {
		name    string
		specs   []pattern.CustomRuleSpec
		wantSub string
	}{
		{
			name:    "empty id",
			specs:   []pattern.CustomRuleSpec{{Level: "must", Expr: "true"}},
			wantSub: "empty id",
		},
		{
			name: "duplicate id",
			specs: []pattern.CustomRuleSpec{
				{ID: "r", Level: "must", Expr: "true"},
				{ID: "r", Level: "should", Expr: "true"},
			},
			wantSub: "duplicate custom rule id",
		},
		{
			name:    "bad level",
			specs:   []pattern.CustomRuleSpec{{ID: "r", Level: "blocking", Expr: "true"}},
			wantSub: "unknown rule level",
		},
		{
			name:    "missing expr",
			specs:   []pattern.CustomRuleSpec{{ID: "r", Level: "must"}},
			wantSub: "no expr",
		},
		{
			name:    "unparseable expr",
			specs:   []pattern.CustomRuleSpec{{ID: "r", Level: "must", Expr: "size("}},
			wantSub: "compile",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.CompileCustomPattern(tt.specs)
			if err == nil {
				t.Fatal("CompileCustomPattern() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

// TestCompileCustomPatternEmpty: no specs yields an empty pattern without
// error, so a project with no custom rules costs nothing.
func TestCompileCustomPatternEmpty(t *testing.T) {
	p, err := pattern.CompileCustomPattern(nil)
	if err != nil {
		t.Fatalf("CompileCustomPattern(nil) error: %v", err)
	}
	if len(p.Must)+len(p.Should) != 0 {
		t.Errorf("empty spec list produced %d rules", len(p.Must)+len(p.Should))
	}
}
