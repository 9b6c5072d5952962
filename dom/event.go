package dom

import "strings"

// Phase selects when a document-level keydown listener runs relative to node
// listeners: capture listeners run first, bubble listeners run last.
type Phase int

const (
	Bubble Phase = iota
	Capture
)

// KeyEvent is a normalized keydown. Key is lowercase ("tab", "enter", "a").
// Consuming an event does not stop dispatch; later listeners observe the
// consumed flag and the driver skips its default behavior for consumed keys.
type KeyEvent struct {
	Key   string
	Shift bool
	Alt   bool
	Ctrl  bool
	Meta  bool

	target   *Node
	consumed bool
}

func (e *KeyEvent) Target() *Node  { return e.target }
func (e *KeyEvent) Consume()       { e.consumed = true }
func (e *KeyEvent) Consumed() bool { return e.consumed }

// FocusEvent reports a focus change. Related carries the counterpart node the
// way host platforms do, which is unreliable across embedded frames; policy
// code must re-query the active element instead of trusting it.
type FocusEvent struct {
	Target  *Node
	Related *Node
}

type handlerID int64

type keyHandler struct {
	id handlerID
	fn func(*KeyEvent)
}

type focusHandler struct {
	id handlerID
	fn func(*FocusEvent)
}

// NormalizeKey lowercases and trims a key name so listener code can compare
// against stable spellings.
func NormalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func (d *Document) nextID() handlerID {
	d.lastHandler++
	return d.lastHandler
}

// OnKeydown registers a document-level keydown listener and returns its
// removal func.
func (d *Document) OnKeydown(phase Phase, fn func(*KeyEvent)) func() {
	id := d.nextID()
	h := keyHandler{id: id, fn: fn}
	if phase == Capture {
		d.keyCapture = append(d.keyCapture, h)
		return func() { d.keyCapture = removeKeyHandler(d.keyCapture, id) }
	}
	d.keyBubble = append(d.keyBubble, h)
	return func() { d.keyBubble = removeKeyHandler(d.keyBubble, id) }
}

// OnFocusIn registers a document-level focus-in listener.
func (d *Document) OnFocusIn(fn func(*FocusEvent)) func() {
	id := d.nextID()
	d.focusIn = append(d.focusIn, focusHandler{id: id, fn: fn})
	return func() { d.focusIn = removeFocusHandler(d.focusIn, id) }
}

// OnFocusOut registers a document-level focus-out listener.
func (d *Document) OnFocusOut(fn func(*FocusEvent)) func() {
	id := d.nextID()
	d.focusOut = append(d.focusOut, focusHandler{id: id, fn: fn})
	return func() { d.focusOut = removeFocusHandler(d.focusOut, id) }
}

// OnKeydown registers a node-level keydown listener, fired while the event
// bubbles from the target through its ancestors. Listeners registered on a
// detached node fire once the node is attached and on the dispatch path.
func (n *Node) OnKeydown(fn func(*KeyEvent)) func() {
	id := n.ownerID()
	n.keydown = append(n.keydown, keyHandler{id: id, fn: fn})
	return func() { n.keydown = removeKeyHandler(n.keydown, id) }
}

// OnFocusIn registers a node-level focus-in listener; it fires when the node
// or any descendant gains focus.
func (n *Node) OnFocusIn(fn func(*FocusEvent)) func() {
	id := n.ownerID()
	n.focusIn = append(n.focusIn, focusHandler{id: id, fn: fn})
	return func() { n.focusIn = removeFocusHandler(n.focusIn, id) }
}

// OnFocusOut registers a node-level focus-out listener; it fires when the node
// or any descendant loses focus.
func (n *Node) OnFocusOut(fn func(*FocusEvent)) func() {
	id := n.ownerID()
	n.focusOut = append(n.focusOut, focusHandler{id: id, fn: fn})
	return func() { n.focusOut = removeFocusHandler(n.focusOut, id) }
}

// ownerID allocates listener IDs from the owning document when attached and
// from a package counter otherwise; uniqueness is all that matters.
func (n *Node) ownerID() handlerID {
	if n.doc != nil {
		return n.doc.nextID()
	}
	detachedHandlerSeq++
	return -detachedHandlerSeq
}

var detachedHandlerSeq handlerID

func removeKeyHandler(hs []keyHandler, id handlerID) []keyHandler {
	out := hs[:0]
	for _, h := range hs {
		if h.id != id {
			out = append(out, h)
		}
	}
	return out
}

func removeFocusHandler(hs []focusHandler, id handlerID) []focusHandler {
	out := hs[:0]
	for _, h := range hs {
		if h.id != id {
			out = append(out, h)
		}
	}
	return out
}

// DispatchKey delivers a keydown: document capture listeners, then node
// listeners along the path from the target to the root, then document bubble
// listeners. The target is the active element, or the root when nothing is
// focused. Reports whether any listener consumed the event.
func (d *Document) DispatchKey(ev *KeyEvent) bool {
	ev.Key = NormalizeKey(ev.Key)
	ev.target = d.active
	if ev.target == nil {
		ev.target = d.root
	}

	for _, h := range snapshotKey(d.keyCapture) {
		h.fn(ev)
	}
	for n := ev.target; n != nil; n = n.parent {
		for _, h := range snapshotKey(n.keydown) {
			h.fn(ev)
		}
	}
	for _, h := range snapshotKey(d.keyBubble) {
		h.fn(ev)
	}
	return ev.consumed
}

func (d *Document) dispatchFocusIn(target, related *Node) {
	ev := &FocusEvent{Target: target, Related: related}
	for n := target; n != nil; n = n.parent {
		for _, h := range snapshotFocus(n.focusIn) {
			h.fn(ev)
		}
	}
	for _, h := range snapshotFocus(d.focusIn) {
		h.fn(ev)
	}
}

func (d *Document) dispatchFocusOut(target, related *Node) {
	ev := &FocusEvent{Target: target, Related: related}
	for n := target; n != nil; n = n.parent {
		for _, h := range snapshotFocus(n.focusOut) {
			h.fn(ev)
		}
	}
	for _, h := range snapshotFocus(d.focusOut) {
		h.fn(ev)
	}
}

// Listener slices are snapshotted per dispatch so handlers may unregister
// themselves or unmount whole scopes mid-event.
func snapshotKey(hs []keyHandler) []keyHandler {
	if len(hs) == 0 {
		return nil
	}
	out := make([]keyHandler, len(hs))
	copy(out, hs)
	return out
}

func snapshotFocus(hs []focusHandler) []focusHandler {
	if len(hs) == 0 {
		return nil
	}
	out := make([]focusHandler, len(hs))
	copy(out, hs)
	return out
}
