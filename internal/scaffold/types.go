// Package scaffold defines the typed UI scaffold tree: the closed set of
// node variants, their shared attributes, and the document-order traversal
// primitive the analysis engine is built on.
package scaffold

// Kind identifies one of the closed set of node variants.
type Kind string

const (
	KindStack  Kind = "stack"
	KindGrid   Kind = "grid"
	KindBox    Kind = "box"
	KindText   Kind = "text"
	KindButton Kind = "button"
	KindField  Kind = "field"
	KindForm   Kind = "form"
	KindTable  Kind = "table"
)

// State is a disclosure default state.
type State string

const (
	// StateCollapsed is the default when a scaffold omits defaultState.
	StateCollapsed State = "collapsed"
	StateExpanded  State = "expanded"
)

// Disclosure describes collapse/expand behavior attached to a node.
// ControlsID, when set, is an explicit reference to the Button that toggles
// the section; when absent the control is inferred by proximity search.
type Disclosure struct {
	Collapsible  bool   `json:"collapsible"`
	DefaultState State  `json:"defaultState,omitempty"`
	ControlsID   string `json:"controlsId,omitempty"`
	TargetID     string `json:"targetId,omitempty"`
}

// EffectiveState returns DefaultState, or StateCollapsed when unset.
func (d *Disclosure) EffectiveState() State {
	if d == nil || d.DefaultState == "" {
		return StateCollapsed
	}
	return d.DefaultState
}

// Behaviors groups the optional behavior blocks a node may carry.
type Behaviors struct {
	Disclosure *Disclosure `json:"disclosure,omitempty"`
}

// Node is one element of the scaffold tree. Identity and the attributes
// shared by every variant live here; variant-specific fields live in Data.
// Nodes are constructed by ingest (or test fixtures) and never mutated by
// the analysis engine.
type Node struct {
	// ID is unique within a tree; ingest enforces this before the tree
	// reaches any rule.
	ID string

	// Visible is the authored visibility flag. nil means visible.
	Visible *bool

	// Affordances is the ordered list of visual/interactive cue tokens
	// (e.g. "chevron"). nil when the scaffold declares none.
	Affordances []string

	// Behaviors is nil when the scaffold declares no behavior block.
	Behaviors *Behaviors

	// Data holds the variant-specific payload and determines Kind.
	Data Data
}

// Data is the sealed variant payload interface. The eight implementations
// in this package are the complete set; the marker method prevents
// out-of-package variants so consumers may treat type switches over Data
// as exhaustive.
type Data interface {
	data()
}

// StackData is a linear container of ordered children.
type StackData struct {
	// Direction is "vertical" (default) or "horizontal".
	Direction string
	Children  []*Node
}

// GridData is a column-count container of ordered children.
type GridData struct {
	// Columns is the declared column count; 0 means the layout default.
	Columns  int
	Children []*Node
}

// BoxData wraps at most one child.
type BoxData struct {
	Child *Node
}

// TextData is static display text.
type TextData struct {
	Text string
}

// ButtonData is an actionable control.
type ButtonData struct {
	Text string
	// RoleHint is "primary", "secondary", or any scaffold-defined role.
	RoleHint string
}

// FieldData is a single form input.
type FieldData struct {
	Label    string
	Required bool
}

// FormData holds ordered input fields followed by ordered action controls.
type FormData struct {
	Fields  []*Node
	Actions []*Node
}

// TableData is a tabular presentation of named columns.
type TableData struct {
	Columns []string
}

func (*StackData) data()  {}
func (*GridData) data()   {}
func (*BoxData) data()    {}
func (*TextData) data()   {}
func (*ButtonData) data() {}
func (*FieldData) data()  {}
func (*FormData) data()   {}
func (*TableData) data()  {}

// Kind returns the variant tag derived from Data. A Node without Data has
// no kind; ingest never produces one.
func (n *Node) Kind() Kind {
	switch n.Data.(type) {
	case *StackData:
		return KindStack
	case *GridData:
		return KindGrid
	case *BoxData:
		return KindBox
	case *TextData:
		return KindText
	case *ButtonData:
		return KindButton
	case *FieldData:
		return KindField
	case *FormData:
		return KindForm
	case *TableData:
		return KindTable
	default:
		return ""
	}
}

// IsVisible reports the node's own visibility flag: true unless the
// scaffold set visible: false. Ancestor visibility is a traversal concern,
// not a node attribute.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Disclosure returns the node's disclosure block, or nil when absent.
func (n *Node) Disclosure() *Disclosure {
	if n.Behaviors == nil {
		return nil
	}
	return n.Behaviors.Disclosure
}

// IsCollapsible reports whether the node carries disclosure.collapsible.
func (n *Node) IsCollapsible() bool {
	d := n.Disclosure()
	return d != nil && d.Collapsible
}

// Children returns the node's structural children in document order:
// Stack/Grid children, Box's single child, and a Form's fields followed by
// its actions. Leaf variants return nil. The returned slice is freshly
// allocated for Form (concatenation) and shared otherwise; callers must not
// mutate it.
func Children(n *Node) []*Node {
	switch d := n.Data.(type) {
	case *StackData:
		return d.Children
	case *GridData:
		return d.Children
	case *BoxData:
		if d.Child == nil {
			return nil
		}
		return []*Node{d.Child}
	case *FormData:
		if len(d.Fields) == 0 && len(d.Actions) == 0 {
			return nil
		}
		out := make([]*Node, 0, len(d.Fields)+len(d.Actions))
		out = append(out, d.Fields...)
		out = append(out, d.Actions...)
		return out
	default:
		return nil
	}
}
