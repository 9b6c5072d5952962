package dom

import "errors"

var (
	// ErrDetached is returned when focusing a node outside any document.
	ErrDetached = errors.New("dom: node is not attached")
	// ErrNotFocusable is returned when focusing a node that can never hold
	// focus (comments, markers, plain text).
	ErrNotFocusable = errors.New("dom: node cannot hold focus")
)

// Document owns a node tree, the active element, document-level listeners and
// the frame task queue.
type Document struct {
	root   *Node
	active *Node

	keyCapture []keyHandler
	keyBubble  []keyHandler
	focusIn    []focusHandler
	focusOut   []focusHandler

	tasks   []*frameTask
	running []*frameTask

	lastHandler handlerID
	lastTask    TaskHandle
}

func NewDocument() *Document {
	d := &Document{}
	d.root = New(KindBox)
	d.root.doc = d
	return d
}

func (d *Document) Root() *Node { return d.root }

// ActiveElement returns the focused node, or nil when focus rests on the
// document itself (the platform default).
func (d *Document) ActiveElement() *Node { return d.active }

// NodeByID returns the first node in document order with the given ID.
func (d *Document) NodeByID(id string) *Node {
	if id == "" {
		return nil
	}
	return d.root.find(func(n *Node) bool { return n.id == id })
}

// Focus makes the node the active element and dispatches focus-out on the old
// chain followed by focus-in on the new one. Focusing the already-active node
// is a no-op. The host is permissive: any attached element kind except
// comments, markers and plain text may receive programmatic focus; policy
// layers decide what should be focused.
func (n *Node) Focus() error {
	if n == nil || n.doc == nil {
		return ErrDetached
	}
	switch n.kind {
	case KindComment, KindMarker, KindText:
		return ErrNotFocusable
	}
	d := n.doc
	if d.active == n {
		return nil
	}
	old := d.active
	d.active = n
	if old != nil {
		d.dispatchFocusOut(old, n)
	}
	d.dispatchFocusIn(n, old)
	return nil
}

// Blur drops focus from the node if it is the active element, returning focus
// to the platform default. Only focus-out fires; there is no new target.
func (n *Node) Blur() {
	if n == nil || n.doc == nil || n.doc.active != n {
		return
	}
	d := n.doc
	d.active = nil
	d.dispatchFocusOut(n, nil)
}
