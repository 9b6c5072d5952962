package dom

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	renderText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	renderMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	renderFocused  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	renderDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	renderLink     = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Underline(true)
)

// View renders the tree, one line per leaf. Comments, markers, hidden nodes
// and display-none subtrees render nothing; visibility-hidden subtrees keep
// their lines but draw them blank; a closed details renders only its summary.
func (d *Document) View(width int) string {
	return d.ViewNode(d.root, width)
}

// ViewNode renders only the subtree rooted at n, with the document's focus
// state applied. Callers compositing overlays render sections separately.
func (d *Document) ViewNode(n *Node, width int) string {
	if n == nil {
		return ""
	}
	if width < 1 {
		width = 1
	}
	return strings.Join(renderLines(n, d.active, width), "\n")
}

func renderLines(n *Node, active *Node, width int) []string {
	switch n.kind {
	case KindComment, KindMarker:
		return nil
	}
	if n.hidden || n.style.Display == DisplayNone {
		return nil
	}
	if v := n.style.Visibility; v == VisibilityHidden || v == VisibilityCollapse {
		blank := n.style
		n.style.Visibility = VisibilityVisible
		ghost := renderLines(n, active, width)
		n.style = blank
		return make([]string, len(ghost))
	}

	switch n.kind {
	case KindBox:
		var out []string
		for _, c := range n.children {
			out = append(out, renderLines(c, active, width)...)
		}
		return out
	case KindDetails:
		var out []string
		for _, c := range n.children {
			if !n.open && c.kind != KindSummary {
				continue
			}
			out = append(out, renderLines(c, active, width)...)
		}
		return out
	default:
		return []string{renderLeaf(n, active, width)}
	}
}

func renderLeaf(n *Node, active *Node, width int) string {
	prefix := "  "
	style := renderText
	if n == active {
		prefix = renderFocused.Render("● ")
		style = renderFocused
	}
	if n.disabled {
		style = renderDisabled
	}

	var body string
	switch n.kind {
	case KindText:
		body = n.label
		if n != active {
			style = renderMuted
		}
	case KindInput, KindEditor, KindTextArea:
		val := n.value
		if val == "" {
			val = " "
		}
		body = n.label + ": [" + val + "]"
	case KindButton:
		body = "< " + n.label + " >"
	case KindSelect:
		body = n.label + " ▾"
	case KindLink:
		if n != active && !n.disabled {
			style = renderLink
		}
		body = n.label
	case KindSummary:
		glyph := "▸"
		if p := n.parent; p != nil && p.kind == KindDetails && p.open {
			glyph = "▾"
		}
		body = glyph + " " + n.label
	case KindFrame, KindEmbed:
		body = "⊞ " + n.label
	case KindPlayer:
		body = "▶ " + n.label
	default:
		body = n.label
	}

	line := prefix + style.Render(body)
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	return line
}
