package focus

import "github.com/jask/focusscope/dom"

// IsVisible reports whether the node renders. The node and every ancestor
// must be free of display none, hidden or collapsed visibility, and the
// hidden attribute; a closed details hides everything but its summary. The
// ancestor walk is iterative and exits on the first non-visible link.
func IsVisible(n *dom.Node) bool {
	if n == nil {
		return false
	}
	for x := n; x != nil; x = x.Parent() {
		if x.Kind() == dom.KindComment {
			return false
		}
		if x.Hidden() {
			return false
		}
		st := x.Style()
		if st.Display == dom.DisplayNone {
			return false
		}
		if st.Visibility == dom.VisibilityHidden || st.Visibility == dom.VisibilityCollapse {
			return false
		}
		if p := x.Parent(); p != nil && p.Kind() == dom.KindDetails && !p.Open() && x.Kind() != dom.KindSummary {
			return false
		}
	}
	return true
}

// IsFocusable reports whether the node can receive focus at all: visible,
// not disabled, and either interactive by default for its kind or carrying
// an explicit tab index.
func IsFocusable(n *dom.Node) bool {
	if n == nil || !IsVisible(n) {
		return false
	}
	switch n.Kind() {
	case dom.KindInput:
		return !n.Disabled() && n.InputType() != "hidden"
	case dom.KindButton, dom.KindSelect, dom.KindTextArea:
		return !n.Disabled()
	case dom.KindLink:
		return n.Target() != ""
	case dom.KindSummary, dom.KindFrame, dom.KindEmbed, dom.KindEditor:
		return true
	case dom.KindPlayer:
		return n.Controls()
	}
	_, explicit := n.TabIndex()
	return explicit && !n.Disabled()
}

// IsTabbable reports whether sequential keyboard navigation reaches the
// node: focusable minus an explicit negative tab index.
func IsTabbable(n *dom.Node) bool {
	if !IsFocusable(n) {
		return false
	}
	if ti, ok := n.TabIndex(); ok && ti < 0 {
		return false
	}
	return true
}

// IsInScope reports whether the node is one of the scope's nodes or a
// descendant of one.
func IsInScope(n *dom.Node, scope []*dom.Node) bool {
	for _, m := range scope {
		if m.Contains(n) {
			return true
		}
	}
	return false
}

// WalkOptions configures NewFocusWalker. Tabbable narrows candidacy from
// focusable to tabbable. From prunes its entire subtree from the traversal
// and seeds the walker position. Accept, when set, further restricts
// candidates.
type WalkOptions struct {
	Tabbable bool
	From     *dom.Node
	Accept   func(*dom.Node) bool
}

// NewFocusWalker builds a walker over root yielding focus candidates. A
// non-nil scope restricts candidates to nodes inside it without truncating
// the traversal, so candidates deeper in the tree are still reached.
func NewFocusWalker(root *dom.Node, scope []*dom.Node, opts WalkOptions) *Walker {
	w := NewWalker(root, func(n *dom.Node) Decision {
		if opts.From != nil && opts.From.Contains(n) {
			return Reject
		}
		ok := IsFocusable(n)
		if opts.Tabbable {
			ok = IsTabbable(n)
		}
		if ok && (scope == nil || IsInScope(n, scope)) && (opts.Accept == nil || opts.Accept(n)) {
			return Accept
		}
		return Skip
	})
	if opts.From != nil {
		w.SetCurrent(opts.From)
	}
	return w
}
