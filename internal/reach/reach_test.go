package reach_test

import (
	"reflect"
	"testing"

	"github.com/uxforge/uxlint/internal/reach"
	"github.com/uxforge/uxlint/internal/scaffold"
)

func vstack(id string, children ...*scaffold.Node) *scaffold.Node {
	return &scaffold.Node{ID: id, Data: &scaffold.StackData{Direction: "vertical", Children: children}}
}

func box(id string, child *scaffold.Node) *scaffold.Node {
	return &scaffold.Node{ID: id, Data: &scaffold.BoxData{Child: child}}
}

func textNode(id, s string) *scaffold.Node {
	return &scaffold.Node{ID: id, Data: &scaffold.TextData{Text: s}}
}

func button(id, text string) *scaffold.Node {
	return &scaffold.Node{ID: id, Data: &scaffold.ButtonData{Text: text}}
}

func field(id, label string) *scaffold.Node {
	return &scaffold.Node{ID: id, Data: &scaffold.FieldData{Label: label}}
}

func hide(n *scaffold.Node) *scaffold.Node {
	f := false
	n.Visible = &f
	return n
}

func collapsible(n *scaffold.Node, state scaffold.State) *scaffold.Node {
	n.Behaviors = &scaffold.Behaviors{Disclosure: &scaffold.Disclosure{Collapsible: true, DefaultState: state}}
	return n
}

func ids(nodes []*scaffold.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestTabOrder(t *testing.T) {
	tests := []struct {
		name string
		root *scaffold.Node
		want []string
	}{
		{
			name: "document order over stack and form",
			root: vstack("root",
				textNode("title", "Sign up"),
				button("help", "Help"),
				&scaffold.Node{ID: "f", Data: &scaffold.FormData{
					Fields:  []*scaffold.Node{field("email", "Email"), field("pw", "Password")},
					Actions: []*scaffold.Node{button("submit", "Create account")},
				}},
			),
			want: []string{"help", "email", "pw", "submit"},
		},
		{
			name: "invisible subtree unreachable",
			root: vstack("root",
				button("a", "A"),
				hide(vstack("gone", button("b", "B"))),
				button("c", "C"),
			),
			want: []string{"a", "c"},
		},
		{
			name: "collapsed content unreachable",
			root: vstack("root",
				button("toggle", "Show advanced"),
				collapsible(box("adv", field("extra", "Extra")), scaffold.StateCollapsed),
				button("done", "Done"),
			),
			want: []string{"toggle", "done"},
		},
		{
			name: "expanded content reachable",
			root: vstack("root",
				button("toggle", "Hide advanced"),
				collapsible(box("adv", field("extra", "Extra")), scaffold.StateExpanded),
			),
			want: []string{"toggle", "extra"},
		},
		{
			name: "nothing focusable",
			root: vstack("root", textNode("t", "hello")),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(reach.TabOrder(tt.root))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TabOrder = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionAndReachable(t *testing.T) {
	root := vstack("root",
		button("first", "One"),
		collapsible(box("adv", button("buried", "Hidden")), scaffold.StateCollapsed),
		field("second", "Two"),
	)

	if got := reach.Position(root, "first"); got != 0 {
		t.Errorf("Position(first) = %d, want 0", got)
	}
	if got := reach.Position(root, "second"); got != 1 {
		t.Errorf("Position(second) = %d, want 1", got)
	}
	if got := reach.Position(root, "buried"); got != -1 {
		t.Errorf("Position(buried) = %d, want -1", got)
	}
	if !reach.Reachable(root, "second") {
		t.Error("Reachable(second) = false, want true")
	}
	if reach.Reachable(root, "buried") {
		t.Error("Reachable(buried) = true, want false")
	}
	if reach.Reachable(root, "missing") {
		t.Error("Reachable(missing) = true, want false")
	}
}

func TestFocusable(t *testing.T) {
	if !reach.Focusable(button("b", "B")) {
		t.Error("button should be focusable")
	}
	if !reach.Focusable(field("f", "F")) {
		t.Error("field should be focusable")
	}
	if reach.Focusable(textNode("t", "T")) {
		t.Error("text should not be focusable")
	}
	if reach.Focusable(vstack("s")) {
		t.Error("stack should not be focusable")
	}
}
