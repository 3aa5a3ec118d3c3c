// Package layout computes deterministic integer frames for a scaffold
// tree: vertical stack flow, fixed-column grid rows, padded boxes, and
// intrinsic leaf sizes, all derived from scaffold settings. It is an
// outline pass for reports, not a renderer.
package layout

import (
	"unicode/utf8"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// Intrinsic sizes in logical pixels. Values are fixed so identical
// scaffolds always produce identical frames.
const (
	textHeight   = 24
	buttonHeight = 40
	buttonCharW  = 8
	buttonPadX   = 16
	fieldHeight  = 60
	tableHeadH   = 32
	tableRowH    = 28
	tableSampleN = 3
)

// Frame is a computed rectangle in viewport coordinates.
type Frame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Placement pairs a node with its computed frame. Depth is the node's
// distance from the root, for indented outlines.
type Placement struct {
	Node  *scaffold.Node
	Frame Frame
	Depth int
}

// Result is one layout pass over a tree. Placements are in document
// order and cover every node that occupies space: invisible subtrees and
// the content of collapsed sections are absent.
type Result struct {
	Width      int
	Height     int
	Placements []Placement
	frames     map[string]Frame
}

// FrameOf returns the computed frame for a node id.
func (r *Result) FrameOf(id string) (Frame, bool) {
	f, ok := r.frames[id]
	return f, ok
}

// EffectiveWidth resolves the layout width for a device width: the
// narrowest breakpoint whose MaxWidth covers the device wins; with no
// match the settings viewport width applies.
func EffectiveWidth(s scaffold.Settings, deviceWidth int) int {
	width := s.ViewportWidth
	best := 0
	for _, bp := range s.Breakpoints {
		if bp.MaxWidth < deviceWidth || bp.ViewportWidth <= 0 {
			continue
		}
		if best == 0 || bp.MaxWidth < best {
			best = bp.MaxWidth
			width = bp.ViewportWidth
		}
	}
	return width
}

// Compute lays the tree out at the settings viewport width.
func Compute(root *scaffold.Node, s scaffold.Settings) *Result {
	return ComputeAt(root, s, s.ViewportWidth)
}

// ComputeAt lays the tree out for a device width, applying the
// breakpoint cascade first.
func ComputeAt(root *scaffold.Node, s scaffold.Settings, deviceWidth int) *Result {
	res := &Result{frames: make(map[string]Frame)}
	res.Width = EffectiveWidth(s, deviceWidth)
	if root != nil && root.IsVisible() {
		res.Height = layOut(res, root, s, 0, 0, res.Width, 0)
	}
	return res
}

// layOut positions n at (x, y) within width and returns its height.
func layOut(res *Result, n *scaffold.Node, s scaffold.Settings, x, y, width, depth int) int {
	idx := len(res.Placements)
	res.Placements = append(res.Placements, Placement{Node: n, Depth: depth})

	var height int
	switch d := n.Data.(type) {
	case *scaffold.StackData:
		height = layOutStack(res, d, s, x, y, width, depth)
	case *scaffold.GridData:
		height = layOutGrid(res, d, s, x, y, width, depth)
	case *scaffold.BoxData:
		height = layOutBox(res, n, d, s, x, y, width, depth)
	case *scaffold.TextData:
		height = textHeight
	case *scaffold.ButtonData:
		height = buttonHeight
		if w := buttonCharW*utf8.RuneCountInString(d.Text) + 2*buttonPadX; w < width {
			width = w
		}
	case *scaffold.FieldData:
		height = fieldHeight
	case *scaffold.FormData:
		height = layOutForm(res, d, s, x, y, width, depth)
	case *scaffold.TableData:
		height = tableHeadH + tableSampleN*tableRowH
	}

	frame := Frame{X: x, Y: y, Width: width, Height: height}
	res.Placements[idx].Frame = frame
	res.frames[n.ID] = frame
	return height
}

func layOutStack(res *Result, d *scaffold.StackData, s scaffold.Settings, x, y, width, depth int) int {
	visible := visibleOf(d.Children)
	if d.Direction == "horizontal" {
		return layOutRow(res, visible, s, x, y, width, depth)
	}
	return layOutColumn(res, visible, s, x, y, width, depth)
}

// layOutColumn stacks nodes top to bottom separated by the settings gap.
func layOutColumn(res *Result, nodes []*scaffold.Node, s scaffold.Settings, x, y, width, depth int) int {
	cy := y
	for i, c := range nodes {
		if i > 0 {
			cy += s.Gap
		}
		cy += layOut(res, c, s, x, cy, width, depth+1)
	}
	return cy - y
}

// layOutRow splits the width evenly, separated by the settings gap; the
// row is as tall as its tallest member.
func layOutRow(res *Result, nodes []*scaffold.Node, s scaffold.Settings, x, y, width, depth int) int {
	if len(nodes) == 0 {
		return 0
	}
	cell := (width - (len(nodes)-1)*s.Gap) / len(nodes)
	if cell < 0 {
		cell = 0
	}
	maxH := 0
	cx := x
	for _, c := range nodes {
		if h := layOut(res, c, s, cx, y, cell, depth+1); h > maxH {
			maxH = h
		}
		cx += cell + s.Gap
	}
	return maxH
}

// layOutGrid places nodes into rows of the declared column count; each
// row is as tall as its tallest cell.
func layOutGrid(res *Result, d *scaffold.GridData, s scaffold.Settings, x, y, width, depth int) int {
	visible := visibleOf(d.Children)
	cols := d.Columns
	if cols < 1 {
		cols = 1
	}
	cell := (width - (cols-1)*s.Gap) / cols
	if cell < 0 {
		cell = 0
	}
	cy := y
	for start := 0; start < len(visible); start += cols {
		if start > 0 {
			cy += s.Gap
		}
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		rowH := 0
		for i, c := range visible[start:end] {
			cx := x + i*(cell+s.Gap)
			if h := layOut(res, c, s, cx, cy, cell, depth+1); h > rowH {
				rowH = h
			}
		}
		cy += rowH
	}
	return cy - y
}

// layOutBox wraps its child in the settings padding. A collapsible box
// whose effective state is collapsed keeps its shell but lays out no
// content.
func layOutBox(res *Result, n *scaffold.Node, d *scaffold.BoxData, s scaffold.Settings, x, y, width, depth int) int {
	collapsed := false
	if disc := n.Disclosure(); disc != nil && disc.Collapsible && disc.EffectiveState() == scaffold.StateCollapsed {
		collapsed = true
	}
	if collapsed || d.Child == nil || !d.Child.IsVisible() {
		return 2 * s.Padding
	}
	inner := width - 2*s.Padding
	if inner < 0 {
		inner = 0
	}
	h := layOut(res, d.Child, s, x+s.Padding, y+s.Padding, inner, depth+1)
	return h + 2*s.Padding
}

// layOutForm stacks fields, then lays the actions out as one row.
func layOutForm(res *Result, d *scaffold.FormData, s scaffold.Settings, x, y, width, depth int) int {
	cy := y
	fields := visibleOf(d.Fields)
	cy += layOutColumn(res, fields, s, x, cy, width, depth)

	actions := visibleOf(d.Actions)
	if len(actions) > 0 {
		if len(fields) > 0 {
			cy += s.Gap
		}
		cy += layOutRow(res, actions, s, x, cy, width, depth)
	}
	return cy - y
}

func visibleOf(nodes []*scaffold.Node) []*scaffold.Node {
	out := make([]*scaffold.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil && n.IsVisible() {
			out = append(out, n)
		}
	}
	return out
}
