package pattern

import (
	"fmt"
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// FormBasic returns the pattern guarding form structure: a form needs
// fields and a way to submit them; fields should be labeled, primary
// actions singular, and required input should come first.
func FormBasic() Pattern {
	return Pattern{
		Name: NameFormBasic,
		Source: Source{
			Pattern: NameFormBasic,
			Name:    "Web Form Design",
			URL:     "https://www.nngroup.com/articles/web-form-design/",
		},
		Must: []Rule{
			{
				ID:          RuleFormEmpty,
				Level:       LevelMust,
				Description: "every form declares at least one input field",
				Check:       checkFormEmpty,
			},
			{
				ID:          RuleFormNoSubmit,
				Level:       LevelMust,
				Description: "every form has a visible action button",
				Check:       checkFormNoSubmit,
			},
		},
		Should: []Rule{
			{
				ID:          RuleFormFieldUnlabeled,
				Level:       LevelShould,
				Description: "every field carries a label",
				Check:       checkFormFieldUnlabeled,
			},
			{
				ID:          RuleFormMultiplePrimary,
				Level:       LevelShould,
				Description: "a form has at most one primary action",
				Check:       checkFormMultiplePrimary,
			},
			{
				ID:          RuleFormRequiredAfterOptional,
				Level:       LevelShould,
				Description: "required fields precede optional ones",
				Check:       checkFormRequiredAfterOptional,
			},
		},
	}
}

// forEachVisibleForm walks visible Form nodes in document order.
func forEachVisibleForm(root *scaffold.Node, fn func(n *scaffold.Node, fd *scaffold.FormData)) {
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		if fd, ok := n.Data.(*scaffold.FormData); ok {
			fn(n, fd)
		}
		return true
	})
}

func checkFormEmpty(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisibleForm(root, func(n *scaffold.Node, fd *scaffold.FormData) {
		if len(fd.Fields) > 0 {
			return
		}
		issues = append(issues, Issue{
			ID:       RuleFormEmpty,
			Severity: SeverityError,
			Message:  fmt.Sprintf("form %q declares no input fields", n.ID),
			NodeID:   n.ID,
		})
	})
	return issues
}

func checkFormNoSubmit(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisibleForm(root, func(n *scaffold.Node, fd *scaffold.FormData) {
		for _, a := range fd.Actions {
			if _, ok := a.Data.(*scaffold.ButtonData); ok && a.IsVisible() {
				return
			}
		}
		issues = append(issues, Issue{
			ID:       RuleFormNoSubmit,
			Severity: SeverityError,
			Message:  fmt.Sprintf("form %q has no visible action button", n.ID),
			NodeID:   n.ID,
		})
	})
	return issues
}

func checkFormFieldUnlabeled(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisibleForm(root, func(n *scaffold.Node, fd *scaffold.FormData) {
		for _, f := range fd.Fields {
			if !f.IsVisible() {
				continue
			}
			d, ok := f.Data.(*scaffold.FieldData)
			if !ok || strings.TrimSpace(d.Label) != "" {
				continue
			}
			issues = append(issues, Issue{
				ID:       RuleFormFieldUnlabeled,
				Severity: SeverityWarn,
				Message:  fmt.Sprintf("field %q in form %q has no label", f.ID, n.ID),
				NodeID:   f.ID,
			})
		}
	})
	return issues
}

func checkFormMultiplePrimary(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisibleForm(root, func(n *scaffold.Node, fd *scaffold.FormData) {
		var primaries []string
		for _, a := range fd.Actions {
			if !a.IsVisible() {
				continue
			}
			if bd, ok := a.Data.(*scaffold.ButtonData); ok && bd.RoleHint == "primary" {
				primaries = append(primaries, a.ID)
			}
		}
		if len(primaries) <= 1 {
			return
		}
		issues = append(issues, Issue{
			ID:       RuleFormMultiplePrimary,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("form %q has %d primary actions", n.ID, len(primaries)),
			NodeID:   n.ID,
			Details: map[string]any{
				"primaries": primaries,
			},
		})
	})
	return issues
}

func checkFormRequiredAfterOptional(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisibleForm(root, func(n *scaffold.Node, fd *scaffold.FormData) {
		seenOptional := false
		for _, f := range fd.Fields {
			if !f.IsVisible() {
				continue
			}
			d, ok := f.Data.(*scaffold.FieldData)
			if !ok {
				continue
			}
			if !d.Required {
				seenOptional = true
				continue
			}
			if seenOptional {
				issues = append(issues, Issue{
					ID:       RuleFormRequiredAfterOptional,
					Severity: SeverityWarn,
					Message:  fmt.Sprintf("required field %q comes after optional fields in form %q", f.ID, n.ID),
					NodeID:   f.ID,
				})
				return
			}
		}
	})
	return issues
}
