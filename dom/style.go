package dom

// Display controls whether a node occupies layout at all.
type Display int

const (
	DisplayNormal Display = iota
	DisplayNone
)

// Visibility controls whether a rendered node is drawn. Hidden and collapsed
// nodes keep their layout slot but draw nothing.
type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

// Style is a node's inline style. There is no cascade; each node carries its
// own values and ancestor effects are applied by whoever walks the tree.
type Style struct {
	Display    Display
	Visibility Visibility
}

func (n *Node) Style() Style { return n.style }

func (n *Node) SetStyle(s Style) *Node {
	n.style = s
	return n
}

func (n *Node) SetDisplay(d Display) *Node {
	n.style.Display = d
	return n
}

func (n *Node) SetVisibility(v Visibility) *Node {
	n.style.Visibility = v
	return n
}
