package pattern

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// CustomPatternName is the canonical name under which project-defined
// rules register.
const CustomPatternName = "Project.Custom"

// CustomRuleSpec is the configuration shape for one project-defined rule.
// Expr is a CEL expression over a `node` variable; a node passes when the
// expression evaluates to true.
type CustomRuleSpec struct {
	ID          string `yaml:"id" json:"id"`
	Level       string `yaml:"level" json:"level"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	AppliesTo   string `yaml:"appliesTo,omitempty" json:"appliesTo,omitempty"`
	Expr        string `yaml:"expr" json:"expr"`
}

// CompileCustomPattern compiles project-defined rules into a pattern. All
// expressions are compiled up front so a broken rule fails configuration
// loading, not a later validation run. Evaluation is capped by a cost
// limit; a rule whose expression errors on some node emits nothing for
// that node, keeping every rule total.
func CompileCustomPattern(specs []CustomRuleSpec) (Pattern, error) {
	p := Pattern{
		Name: CustomPatternName,
		Source: Source{
			Pattern: CustomPatternName,
			Name:    "Project rules",
		},
	}
	if len(specs) == 0 {
		return p, nil
	}

	env, err := cel.NewEnv(cel.Variable("node", cel.DynType))
	if err != nil {
		return Pattern{}, fmt.Errorf("create rule environment: %w", err)
	}

	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.ID == "" {
			return Pattern{}, fmt.Errorf("custom rule with empty id")
		}
		if seen[spec.ID] {
			return Pattern{}, fmt.Errorf("duplicate custom rule id %q", spec.ID)
		}
		seen[spec.ID] = true

		level, err := ParseLevel(spec.Level)
		if err != nil {
			return Pattern{}, fmt.Errorf("custom rule %q: %w", spec.ID, err)
		}
		if spec.Expr == "" {
			return Pattern{}, fmt.Errorf("custom rule %q has no expr", spec.ID)
		}

		ast, issues := env.Compile(spec.Expr)
		if issues != nil && issues.Err() != nil {
			return Pattern{}, fmt.Errorf("custom rule %q: compile: %w", spec.ID, issues.Err())
		}
		prg, err := env.Program(ast,
			cel.InterruptCheckFrequency(100),
			cel.CostLimit(10000),
		)
		if err != nil {
			return Pattern{}, fmt.Errorf("custom rule %q: program: %w", spec.ID, err)
		}

		rule := Rule{
			ID:          spec.ID,
			Level:       level,
			Description: spec.Description,
			Check:       customCheck(spec, prg),
		}
		if level == LevelMust {
			p.Must = append(p.Must, rule)
		} else {
			p.Should = append(p.Should, rule)
		}
	}
	return p, nil
}

// customCheck builds the Check closure for one compiled rule.
func customCheck(spec CustomRuleSpec, prg cel.Program) func(root *scaffold.Node) []Issue {
	severity := SeverityWarn
	if level, err := ParseLevel(spec.Level); err == nil {
		severity = level.Severity()
	}
	return func(root *scaffold.Node) []Issue {
		var issues []Issue
		forEachVisible(root, func(n *scaffold.Node, _ []*scaffold.Node) {
			if spec.AppliesTo != "" && string(n.Kind()) != spec.AppliesTo {
				return
			}
			out, _, err := prg.Eval(map[string]any{"node": nodeEnv(n)})
			if err != nil {
				return
			}
			pass, ok := out.Value().(bool)
			if !ok || pass {
				return
			}
			msg := fmt.Sprintf("node %q fails project rule %q", n.ID, spec.ID)
			if spec.Description != "" {
				msg = fmt.Sprintf("node %q: %s", n.ID, spec.Description)
			}
			issues = append(issues, Issue{
				ID:       spec.ID,
				Severity: severity,
				Message:  msg,
				NodeID:   n.ID,
			})
		})
		return issues
	}
}

// nodeEnv flattens a node into the map exposed to rule expressions.
func nodeEnv(n *scaffold.Node) map[string]any {
	affordances := AffordanceTokens(n)
	if affordances == nil {
		affordances = []string{}
	}
	m := map[string]any{
		"id":          n.ID,
		"type":        string(n.Kind()),
		"visible":     n.IsVisible(),
		"affordances": affordances,
		"collapsible": n.IsCollapsible(),
		"childCount":  len(scaffold.Children(n)),
	}
	if d := n.Disclosure(); d != nil {
		m["defaultState"] = string(d.EffectiveState())
		m["controlsId"] = d.ControlsID
	}
	switch d := n.Data.(type) {
	case *scaffold.StackData:
		m["direction"] = d.Direction
	case *scaffold.GridData:
		m["columns"] = d.Columns
	case *scaffold.TextData:
		m["text"] = d.Text
	case *scaffold.ButtonData:
		m["text"] = d.Text
		m["roleHint"] = d.RoleHint
	case *scaffold.FieldData:
		m["label"] = d.Label
		m["required"] = d.Required
	case *scaffold.FormData:
		m["fieldCount"] = len(d.Fields)
		m["actionCount"] = len(d.Actions)
	case *scaffold.TableData:
		m["columns"] = d.Columns
	}
	return m
}
