package condition

import "strings"

// Markers prepended to each rendered line, by node status.
const (
	markerPassed  = "✓"
	markerFailed  = "✗"
	markerUnknown = "?"
)

// Render formats a diagnostic node tree as indented text, one
// line per node, with a pass/fail marker in front of each label
// and two spaces of indentation per nesting level. Failure
// details follow the label on the same line.
//
// Rendering is a pure function of the node tree: it never
// re-evaluates any condition, so the output for a given
// evaluation is deterministic.
func Render(node Node) string {
	var sb strings.Builder
	renderNode(&sb, node, 0)
	return sb.String()
}

// RenderEvaluation formats the diagnostic tree of a full
// evaluation outcome.
func RenderEvaluation(ev Evaluation) string {
	return Render(ev.Node)
}

func renderNode(sb *strings.Builder, node Node, depth int) {
	if depth > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(marker(node.Status))
	sb.WriteString(" ")
	sb.WriteString(node.Label)

	if node.Detail != "" {
		sb.WriteString(" ")
		sb.WriteString(node.Detail)
	}

	for _, child := range node.Children {
		renderNode(sb, child, depth+1)
	}
}

func marker(status string) string {
	switch status {
	case StatusPassed:
		return markerPassed
	case StatusFailed:
		return markerFailed
	}
	return markerUnknown
}
