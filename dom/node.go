package dom

import "fmt"

// Kind identifies what a node is. Interactive kinds mirror the controls a
// terminal form actually has; KindFrame and KindEmbed host nested views,
// KindMarker is an invisible boundary node and never renders or takes focus.
type Kind int

const (
	KindBox Kind = iota
	KindText
	KindComment
	KindMarker
	KindInput
	KindButton
	KindSelect
	KindTextArea
	KindLink
	KindDetails
	KindSummary
	KindFrame
	KindEmbed
	KindPlayer
	KindEditor
)

var kindNames = map[Kind]string{
	KindBox:      "box",
	KindText:     "text",
	KindComment:  "comment",
	KindMarker:   "marker",
	KindInput:    "input",
	KindButton:   "button",
	KindSelect:   "select",
	KindTextArea: "textarea",
	KindLink:     "link",
	KindDetails:  "details",
	KindSummary:  "summary",
	KindFrame:    "frame",
	KindEmbed:    "embed",
	KindPlayer:   "player",
	KindEditor:   "editor",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is a single element in the document tree. Nodes are built detached and
// become live once appended under a Document's root.
type Node struct {
	kind  Kind
	id    string
	label string
	value string

	parent   *Node
	children []*Node
	doc      *Document

	disabled    bool
	hidden      bool
	open        bool
	controls    bool
	inputType   string
	target      string
	tabIndex    int
	hasTabIndex bool

	style Style

	keydown  []keyHandler
	focusIn  []focusHandler
	focusOut []focusHandler
}

func New(kind Kind) *Node {
	return &Node{kind: kind}
}

// Box groups children vertically.
func Box(children ...*Node) *Node {
	n := New(KindBox)
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func Text(label string) *Node {
	n := New(KindText)
	n.label = label
	return n
}

func Comment(text string) *Node {
	n := New(KindComment)
	n.label = text
	return n
}

// Marker creates a hidden boundary node. Markers delimit regions in document
// order and are never rendered or focused.
func Marker(id string) *Node {
	n := New(KindMarker)
	n.id = id
	n.hidden = true
	return n
}

func Input(id string) *Node     { return newControl(KindInput, id) }
func Button(id string) *Node    { return newControl(KindButton, id) }
func Select(id string) *Node    { return newControl(KindSelect, id) }
func TextArea(id string) *Node  { return newControl(KindTextArea, id) }
func Summary(id string) *Node   { return newControl(KindSummary, id) }
func Frame(id string) *Node     { return newControl(KindFrame, id) }
func Embed(id string) *Node     { return newControl(KindEmbed, id) }
func Editor(id string) *Node    { return newControl(KindEditor, id) }

func Link(id, target string) *Node {
	n := newControl(KindLink, id)
	n.target = target
	return n
}

func Player(id string, controls bool) *Node {
	n := newControl(KindPlayer, id)
	n.controls = controls
	return n
}

func Details(open bool, children ...*Node) *Node {
	n := New(KindDetails)
	n.open = open
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func newControl(kind Kind, id string) *Node {
	n := New(kind)
	n.id = id
	n.label = id
	return n
}

func (n *Node) Kind() Kind    { return n.kind }
func (n *Node) ID() string    { return n.id }
func (n *Node) Label() string { return n.label }
func (n *Node) Value() string { return n.value }

func (n *Node) SetID(id string) *Node {
	n.id = id
	return n
}

func (n *Node) SetLabel(label string) *Node {
	n.label = label
	return n
}

func (n *Node) SetValue(value string) *Node {
	n.value = value
	return n
}

func (n *Node) Disabled() bool { return n.disabled }
func (n *Node) Hidden() bool   { return n.hidden }
func (n *Node) Open() bool     { return n.open }
func (n *Node) Controls() bool { return n.controls }

func (n *Node) InputType() string { return n.inputType }
func (n *Node) Target() string    { return n.target }

func (n *Node) SetDisabled(v bool) *Node {
	n.disabled = v
	return n
}

func (n *Node) SetHidden(v bool) *Node {
	n.hidden = v
	return n
}

func (n *Node) SetOpen(v bool) *Node {
	n.open = v
	return n
}

func (n *Node) SetInputType(t string) *Node {
	n.inputType = t
	return n
}

func (n *Node) SetTarget(t string) *Node {
	n.target = t
	return n
}

// TabIndex reports the explicit tab index and whether one was set. Elements
// without an explicit tab index fall back to their kind's default behavior.
func (n *Node) TabIndex() (int, bool) { return n.tabIndex, n.hasTabIndex }

func (n *Node) SetTabIndex(i int) *Node {
	n.tabIndex = i
	n.hasTabIndex = true
	return n
}

func (n *Node) ClearTabIndex() *Node {
	n.tabIndex = 0
	n.hasTabIndex = false
	return n
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns the live child slice; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *Node) childIndex(c *Node) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.childIndex(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.childIndex(n)
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for x := other; x != nil; x = x.parent {
		if x == n {
			return true
		}
	}
	return false
}

// Attached reports whether the node is reachable from a document root.
func (n *Node) Attached() bool { return n.doc != nil }

// Document returns the owning document, nil while detached.
func (n *Node) Document() *Document { return n.doc }

// AppendChild moves c to the end of n's children, detaching it from any
// previous parent first.
func (n *Node) AppendChild(c *Node) {
	n.InsertBefore(c, nil)
}

// InsertBefore moves c into n's children immediately before ref. A nil ref
// appends. Panics if ref is not a child of n or if the insertion would create
// a cycle; both are programmer errors.
func (n *Node) InsertBefore(c, ref *Node) {
	if c == nil {
		panic("dom: insert of nil node")
	}
	if c.Contains(n) {
		panic("dom: insert would create a cycle")
	}
	idx := len(n.children)
	if ref != nil {
		idx = n.childIndex(ref)
		if idx < 0 {
			panic("dom: reference node is not a child")
		}
	}
	if c.parent != nil {
		// Removing c first may shift the insertion point.
		if c.parent == n {
			old := n.childIndex(c)
			if old >= 0 && old < idx {
				idx--
			}
		}
		c.parent.RemoveChild(c)
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
	c.parent = n
	c.setDocument(n.doc)
}

// RemoveChild detaches c from n. If the active element lives inside c, focus
// silently falls back to the platform default; no events fire.
func (n *Node) RemoveChild(c *Node) {
	i := n.childIndex(c)
	if i < 0 {
		return
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
	if d := n.doc; d != nil && d.active != nil && c.Contains(d.active) {
		d.active = nil
	}
	c.setDocument(nil)
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) setDocument(d *Document) {
	n.doc = d
	for _, c := range n.children {
		c.setDocument(d)
	}
}

// find returns the first node in depth-first order for which match is true.
func (n *Node) find(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, c := range n.children {
		if hit := c.find(match); hit != nil {
			return hit
		}
	}
	return nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.id != "" {
		return fmt.Sprintf("%s#%s", n.kind, n.id)
	}
	return n.kind.String()
}
