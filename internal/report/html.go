package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/uxforge/uxlint/internal/layout"
	"github.com/uxforge/uxlint/internal/scaffold"
)

const htmlReport = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>uxlint · {{.ScaffoldPath}}</title>
<style>
body { font: 14px/1.5 system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2430; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; border-bottom: 1px solid #e0e3eb; padding-bottom: .25rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: .3rem .6rem; border-bottom: 1px solid #eef0f5; }
th { color: #6a7184; font-weight: 600; }
.meta { color: #6a7184; font-size: .85rem; }
.badge { display: inline-block; padding: .1rem .6rem; border-radius: 1rem; color: #fff; font-weight: 600; }
.badge.excellent { background: #16a34a; }
.badge.good { background: #65a30d; }
.badge.fair { background: #d97706; }
.badge.poor { background: #dc2626; }
.sev-error { color: #dc2626; font-weight: 600; }
.sev-warn { color: #d97706; font-weight: 600; }
.mono { font-family: ui-monospace, monospace; font-size: .85rem; }
.indent { color: #b6bcc9; }
</style>
</head>
<body>
<h1>uxlint report</h1>
<p class="meta">run {{.RunID}} · {{.GeneratedAt}} · <span class="mono">{{.ScaffoldPath}}</span></p>
<p>Fidelity <span class="badge {{.Score.Band}}">{{.Score.Score}} · {{.Score.Band}}</span></p>

<h2>Patterns</h2>
<table>
<tr><th>Pattern</th><th>MUST</th><th>SHOULD</th><th>Issues</th></tr>
{{range .Summary.Patterns}}
<tr>
<td>{{.Pattern}}</td>
<td>{{.MustPassed}}/{{sum .MustPassed .MustFailed}}</td>
<td>{{.ShouldPassed}}/{{sum .ShouldPassed .ShouldFailed}}</td>
<td>{{len .Issues}}</td>
</tr>
{{end}}
</table>

<h2>Issues</h2>
{{if .Issues}}
<table>
<tr><th>Severity</th><th>Rule</th><th>Node</th><th>Message</th><th>Suggestion</th></tr>
{{range .Issues}}
<tr>
<td class="sev-{{.Severity}}">{{.Severity}}</td>
<td class="mono">{{.ID}}</td>
<td class="mono">{{.NodeID}}</td>
<td>{{.Message}}</td>
<td>{{.Suggestion}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No issues.</p>
{{end}}

<h2>Coverage</h2>
<p>{{.Coverage.Activated}} of {{.Coverage.NTotal}} patterns activated ({{.Coverage.Percent}}%).</p>
{{if .Coverage.Gaps}}
<table>
<tr><th>Missing pattern</th><th>Why suggested</th></tr>
{{range .Coverage.Gaps}}<tr><td>{{.Pattern}}</td><td>{{.Reason}}</td></tr>{{end}}
</table>
{{end}}

{{if .Outline}}
<h2>Outline</h2>
<table>
<tr><th>Node</th><th>Kind</th><th>X</th><th>Y</th><th>W</th><th>H</th></tr>
{{range .Outline}}
<tr>
<td class="mono"><span class="indent">{{.Indent}}</span>{{.ID}}</td>
<td>{{.Kind}}</td>
<td>{{.X}}</td><td>{{.Y}}</td><td>{{.Width}}</td><td>{{.Height}}</td>
</tr>
{{end}}
</table>
{{end}}

{{if .TabOrder}}
<h2>Tab order</h2>
<ol>
{{range .TabOrder}}<li><span class="mono">{{.ID}}</span> ({{.Kind}}){{if .Label}}: {{.Label}}{{end}}</li>{{end}}
</ol>
{{end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"sum": func(a, b int) int { return a + b },
}).Parse(htmlReport))

type outlineRow struct {
	Indent string
	ID     string
	Kind   scaffold.Kind
	X      int
	Y      int
	Width  int
	Height int
}

type tabRow struct {
	ID    string
	Kind  scaffold.Kind
	Label string
}

type htmlData struct {
	Artifact
	Issues   []issueRow
	Outline  []outlineRow
	TabOrder []tabRow
}

type issueRow struct {
	Severity   string
	ID         string
	NodeID     string
	Message    string
	Suggestion string
}

// RenderHTML produces the standalone report page. The outline and tab
// order sections are filled from the layout pass and the reach pass and
// may be omitted by passing nil.
func RenderHTML(a Artifact, frames *layout.Result, tabOrder []*scaffold.Node) ([]byte, error) {
	data := htmlData{Artifact: a}
	for _, res := range a.Summary.Patterns {
		for _, iss := range res.Issues {
			data.Issues = append(data.Issues, issueRow{
				Severity:   string(iss.Severity),
				ID:         iss.ID,
				NodeID:     iss.NodeID,
				Message:    iss.Message,
				Suggestion: iss.Suggestion,
			})
		}
	}
	if frames != nil {
		for _, p := range frames.Placements {
			data.Outline = append(data.Outline, outlineRow{
				Indent: strings.Repeat("· ", p.Depth),
				ID:     p.Node.ID,
				Kind:   p.Node.Kind(),
				X:      p.Frame.X,
				Y:      p.Frame.Y,
				Width:  p.Frame.Width,
				Height: p.Frame.Height,
			})
		}
	}
	for _, n := range tabOrder {
		data.TabOrder = append(data.TabOrder, tabRow{ID: n.ID, Kind: n.Kind(), Label: nodeLabel(n)})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}

// nodeLabel is the human-facing text of a focusable node.
func nodeLabel(n *scaffold.Node) string {
	switch d := n.Data.(type) {
	case *scaffold.ButtonData:
		return d.Text
	case *scaffold.FieldData:
		return d.Label
	}
	return ""
}

// WriteHTML renders and atomically writes the report page.
func WriteHTML(path string, a Artifact, frames *layout.Result, tabOrder []*scaffold.Node) error {
	page, err := RenderHTML(a, frames, tabOrder)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, page)
}
