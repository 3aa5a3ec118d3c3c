package pattern

import (
	"fmt"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// maxTableColumns is the advisory width limit before a table should be
// split or given responsive treatment.
const maxTableColumns = 8

// TableSimple returns the pattern guarding tabular presentation: a table
// needs columns, should stay narrow enough to scan, and should carry a
// caption.
func TableSimple() Pattern {
	return Pattern{
		Name: NameTableSimple,
		Source: Source{
			Pattern: NameTableSimple,
			Name:    "Data Tables",
			URL:     "https://www.nngroup.com/articles/data-tables/",
		},
		Must: []Rule{
			{
				ID:          RuleTableNoColumns,
				Level:       LevelMust,
				Description: "every table declares at least one column",
				Check:       checkTableNoColumns,
			},
		},
		Should: []Rule{
			{
				ID:          RuleTableTooWide,
				Level:       LevelShould,
				Description: "tables stay at or below eight columns",
				Check:       checkTableTooWide,
			},
			{
				ID:          RuleTableNoCaption,
				Level:       LevelShould,
				Description: "every table is introduced by a caption text",
				Check:       checkTableNoCaption,
			},
		},
	}
}

func checkTableNoColumns(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisible(root, func(n *scaffold.Node, _ []*scaffold.Node) {
		td, ok := n.Data.(*scaffold.TableData)
		if !ok || len(td.Columns) > 0 {
			return
		}
		issues = append(issues, Issue{
			ID:       RuleTableNoColumns,
			Severity: SeverityError,
			Message:  fmt.Sprintf("table %q declares no columns", n.ID),
			NodeID:   n.ID,
		})
	})
	return issues
}

func checkTableTooWide(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisible(root, func(n *scaffold.Node, _ []*scaffold.Node) {
		td, ok := n.Data.(*scaffold.TableData)
		if !ok || len(td.Columns) <= maxTableColumns {
			return
		}
		issues = append(issues, Issue{
			ID:       RuleTableTooWide,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("table %q has %d columns; more than %d is hard to scan", n.ID, len(td.Columns), maxTableColumns),
			NodeID:   n.ID,
			Details: map[string]any{
				"columns": len(td.Columns),
				"max":     maxTableColumns,
			},
		})
	})
	return issues
}

func checkTableNoCaption(root *scaffold.Node) []Issue {
	var issues []Issue
	forEachVisible(root, func(n *scaffold.Node, siblings []*scaffold.Node) {
		if _, ok := n.Data.(*scaffold.TableData); !ok {
			return
		}
		if idx := indexOf(n.ID, siblings); idx > 0 && isVisibleText(siblings[idx-1]) {
			return
		}
		issues = append(issues, Issue{
			ID:       RuleTableNoCaption,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("table %q has no caption text directly before it", n.ID),
			NodeID:   n.ID,
		})
	})
	return issues
}
