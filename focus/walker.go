package focus

import "github.com/jask/focusscope/dom"

// Decision is a filter verdict for one node during traversal.
type Decision int

const (
	// Accept yields the node.
	Accept Decision = iota
	// Skip passes over the node but still considers its children.
	Skip
	// Reject prunes the node and its whole subtree.
	Reject
)

// Filter judges nodes during traversal.
type Filter func(*dom.Node) Decision

// Walker iterates the subtree under a root depth-first in document order,
// yielding only accepted nodes. The current position may be any node under
// the root, accepted or not; Next and Previous return nil at either end and
// never wrap. The traversal algorithm matches the host platform's tree
// walker, including its treatment of Skip versus Reject.
type Walker struct {
	root    *dom.Node
	filter  Filter
	current *dom.Node
}

// NewWalker builds a walker positioned at the root. A nil filter accepts
// everything.
func NewWalker(root *dom.Node, filter Filter) *Walker {
	if root == nil {
		panic("focus: walker needs a root")
	}
	if filter == nil {
		filter = func(*dom.Node) Decision { return Accept }
	}
	return &Walker{root: root, filter: filter, current: root}
}

func (w *Walker) Root() *dom.Node    { return w.root }
func (w *Walker) Current() *dom.Node { return w.current }

// SetCurrent repositions the walker. The node need not pass the filter;
// traversal proceeds relative to it in document order. A nil node resets to
// the root.
func (w *Walker) SetCurrent(n *dom.Node) {
	if n == nil {
		n = w.root
	}
	w.current = n
}

// Next advances to the next accepted node in document order, or nil at the
// end. Rejected subtrees are never entered; skipped nodes are descended into.
func (w *Walker) Next() *dom.Node {
	node := w.current
	result := Accept
	for {
		for result != Reject {
			child := node.FirstChild()
			if child == nil {
				break
			}
			node = child
			result = w.filter(node)
			if result == Accept {
				w.current = node
				return node
			}
		}
		sibling := w.nextSkippingChildren(node)
		if sibling == nil {
			return nil
		}
		node = sibling
		result = w.filter(node)
		if result == Accept {
			w.current = node
			return node
		}
	}
}

// nextSkippingChildren finds the following node in document order without
// descending, staying under the root.
func (w *Walker) nextSkippingChildren(n *dom.Node) *dom.Node {
	for x := n; x != nil; x = x.Parent() {
		if x == w.root {
			return nil
		}
		if sibling := x.NextSibling(); sibling != nil {
			return sibling
		}
	}
	return nil
}

// Previous moves to the preceding accepted node in document order, or nil at
// the start. Moving backward descends into the last children of skipped
// nodes, mirroring Next. Unlike the host platform's walker, Previous never
// yields the root itself: focus traversal wants the container's contents,
// not the container.
func (w *Walker) Previous() *dom.Node {
	node := w.current
	for node != w.root {
		sibling := node.PrevSibling()
		for sibling != nil {
			node = sibling
			result := w.filter(node)
			for result != Reject {
				last := node.LastChild()
				if last == nil {
					break
				}
				node = last
				result = w.filter(node)
			}
			if result == Accept {
				w.current = node
				return node
			}
			sibling = node.PrevSibling()
		}
		if node == w.root || node.Parent() == nil {
			return nil
		}
		node = node.Parent()
		if node == w.root {
			return nil
		}
		if w.filter(node) == Accept {
			w.current = node
			return node
		}
	}
	return nil
}
