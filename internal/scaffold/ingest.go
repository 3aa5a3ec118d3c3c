package scaffold

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
)

// versionConstraint is the range of scaffold document versions this engine
// understands. Anything outside it is rejected at ingest so version skew
// surfaces as one clear error instead of rule misfires.
var versionConstraint = mustConstraint("^1")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic("scaffold: version constraint: " + err.Error())
	}
	return c
}

// Scaffold is a parsed scaffold document: the declared format version, the
// layout settings, and the root of the node tree.
type Scaffold struct {
	Version  string
	Settings Settings
	Root     *Node
}

// Settings carries the document-level layout knobs. Zero values are
// replaced by defaults at ingest.
type Settings struct {
	ViewportWidth int
	Gap           int
	Padding       int
	Breakpoints   []Breakpoint
}

// Breakpoint overrides the viewport width when the target width is at most
// MaxWidth. Breakpoints are kept in document order.
type Breakpoint struct {
	MaxWidth      int
	ViewportWidth int
}

// Default layout settings applied when a scaffold omits them.
const (
	DefaultViewportWidth = 1280
	DefaultGap           = 8
	DefaultPadding       = 16
)

// rawScaffold and rawNode mirror the JSON document shape. Columns is held
// raw because it is an integer on grids and a string array on tables.
type rawScaffold struct {
	Version  string       `json:"version"`
	Settings *rawSettings `json:"settings"`
	Root     *rawNode     `json:"root"`
}

type rawSettings struct {
	ViewportWidth int             `json:"viewportWidth"`
	Gap           *int            `json:"gap"`
	Padding       *int            `json:"padding"`
	Breakpoints   []rawBreakpoint `json:"breakpoints"`
}

type rawBreakpoint struct {
	MaxWidth      int `json:"maxWidth"`
	ViewportWidth int `json:"viewportWidth"`
}

type rawNode struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Visible     *bool           `json:"visible"`
	Affordances []string        `json:"affordances"`
	Behaviors   *Behaviors      `json:"behaviors"`
	Direction   string          `json:"direction"`
	Columns     json.RawMessage `json:"columns"`
	Children    []*rawNode      `json:"children"`
	Child       *rawNode        `json:"child"`
	Text        string          `json:"text"`
	RoleHint    string          `json:"roleHint"`
	Label       string          `json:"label"`
	Required    bool            `json:"required"`
	Fields      []*rawNode      `json:"fields"`
	Actions     []*rawNode      `json:"actions"`
}

// Parse validates src against the scaffold schema and builds the typed
// tree. All structural trust downstream rests on this function: it rejects
// invalid UTF-8, schema violations, unsupported versions, and duplicate
// node ids, so rules never have to.
func Parse(ctx context.Context, src []byte) (*Scaffold, error) {
	_ = ctx

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("scaffold contains invalid UTF-8 content")
	}

	var doc any
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("parse scaffold JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("scaffold does not match schema: %w", err)
	}

	var raw rawScaffold
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("decode scaffold: %w", err)
	}

	v, err := semver.NewVersion(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("scaffold version %q is not a semantic version: %w", raw.Version, err)
	}
	if !versionConstraint.Check(v) {
		return nil, fmt.Errorf("unsupported scaffold version %q: this tool understands %s", raw.Version, versionConstraint)
	}

	seen := make(map[string]bool)
	root, err := buildNode(raw.Root, seen)
	if err != nil {
		return nil, err
	}

	return &Scaffold{
		Version:  raw.Version,
		Settings: buildSettings(raw.Settings),
		Root:     root,
	}, nil
}

// buildSettings applies defaults for anything the document omits.
func buildSettings(raw *rawSettings) Settings {
	s := Settings{
		ViewportWidth: DefaultViewportWidth,
		Gap:           DefaultGap,
		Padding:       DefaultPadding,
	}
	if raw == nil {
		return s
	}
	if raw.ViewportWidth > 0 {
		s.ViewportWidth = raw.ViewportWidth
	}
	if raw.Gap != nil {
		s.Gap = *raw.Gap
	}
	if raw.Padding != nil {
		s.Padding = *raw.Padding
	}
	for _, b := range raw.Breakpoints {
		s.Breakpoints = append(s.Breakpoints, Breakpoint(b))
	}
	return s
}

// buildNode converts one raw node and its subtree, enforcing tree-wide id
// uniqueness via seen.
func buildNode(raw *rawNode, seen map[string]bool) (*Node, error) {
	if raw == nil {
		return nil, nil
	}
	if seen[raw.ID] {
		return nil, fmt.Errorf("duplicate node id %q", raw.ID)
	}
	seen[raw.ID] = true

	n := &Node{
		ID:          raw.ID,
		Visible:     raw.Visible,
		Affordances: raw.Affordances,
		Behaviors:   raw.Behaviors,
	}

	data, err := buildData(raw, seen)
	if err != nil {
		return nil, err
	}
	n.Data = data
	return n, nil
}

// buildData decodes the variant payload for one raw node.
func buildData(raw *rawNode, seen map[string]bool) (Data, error) {
	switch Kind(raw.Type) {
	case KindStack:
		children, err := buildNodes(raw.Children, seen)
		if err != nil {
			return nil, err
		}
		return &StackData{Direction: raw.Direction, Children: children}, nil
	case KindGrid:
		cols, err := intColumns(raw)
		if err != nil {
			return nil, err
		}
		children, err := buildNodes(raw.Children, seen)
		if err != nil {
			return nil, err
		}
		return &GridData{Columns: cols, Children: children}, nil
	case KindBox:
		child, err := buildNode(raw.Child, seen)
		if err != nil {
			return nil, err
		}
		return &BoxData{Child: child}, nil
	case KindText:
		return &TextData{Text: raw.Text}, nil
	case KindButton:
		return &ButtonData{Text: raw.Text, RoleHint: raw.RoleHint}, nil
	case KindField:
		return &FieldData{Label: raw.Label, Required: raw.Required}, nil
	case KindForm:
		fields, err := buildNodes(raw.Fields, seen)
		if err != nil {
			return nil, err
		}
		actions, err := buildNodes(raw.Actions, seen)
		if err != nil {
			return nil, err
		}
		return &FormData{Fields: fields, Actions: actions}, nil
	case KindTable:
		cols, err := stringColumns(raw)
		if err != nil {
			return nil, err
		}
		return &TableData{Columns: cols}, nil
	default:
		// The schema's type enum makes this unreachable.
		return nil, fmt.Errorf("node %q has unknown type %q", raw.ID, raw.Type)
	}
}

func buildNodes(raws []*rawNode, seen map[string]bool) ([]*Node, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]*Node, 0, len(raws))
	for _, r := range raws {
		n, err := buildNode(r, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func intColumns(raw *rawNode) (int, error) {
	if len(raw.Columns) == 0 {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw.Columns, &n); err != nil {
		return 0, fmt.Errorf("grid %q columns: %w", raw.ID, err)
	}
	return n, nil
}

func stringColumns(raw *rawNode) ([]string, error) {
	if len(raw.Columns) == 0 {
		return nil, nil
	}
	var cols []string
	if err := json.Unmarshal(raw.Columns, &cols); err != nil {
		return nil, fmt.Errorf("table %q columns: %w", raw.ID, err)
	}
	return cols, nil
}
