// Package tui bridges Bubble Tea and the document model: key messages become
// document keydown events, and unconsumed tabs get the host-default focus
// movement a real platform would apply.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/focusscope/dom"
	"github.com/jask/focusscope/focus"
)

// KeyMap is the driver's key surface, exported so applications can feed it
// into a help view.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

// Driver feeds Bubble Tea key messages through a document and applies the
// host-default tab behavior when nothing consumed the key.
type Driver struct {
	doc  *dom.Document
	keys KeyMap
}

func NewDriver(doc *dom.Document) *Driver {
	if doc == nil {
		panic("tui: driver needs a document")
	}
	return &Driver{doc: doc, keys: DefaultKeyMap()}
}

func (d *Driver) Document() *dom.Document { return d.doc }
func (d *Driver) KeyMap() KeyMap          { return d.keys }

// HandleKey translates the message into a document keydown and dispatches
// it. A plain tab that nobody consumed falls back to the host default:
// focus moves to the adjacent tabbable element in document order, wrapping
// at the ends. Reports whether the key had any effect.
func (d *Driver) HandleKey(msg tea.KeyMsg) bool {
	ev := translate(msg)
	if d.doc.DispatchKey(ev) {
		return true
	}
	switch {
	case key.Matches(msg, d.keys.Next):
		d.defaultTab(false)
		return true
	case key.Matches(msg, d.keys.Prev):
		d.defaultTab(true)
		return true
	}
	return false
}

// Flush runs the document's frame queue. Call it once per processed message
// so deferred focus work behaves like the platform's after-paint tick.
func (d *Driver) Flush() { d.doc.Flush() }

// translate maps a Bubble Tea key message onto the document event shape,
// peeling modifier prefixes off the key name.
func translate(msg tea.KeyMsg) *dom.KeyEvent {
	ev := &dom.KeyEvent{}
	name := msg.String()
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			ev.Ctrl = true
			name = strings.TrimPrefix(name, "ctrl+")
		case strings.HasPrefix(name, "alt+"):
			ev.Alt = true
			name = strings.TrimPrefix(name, "alt+")
		case strings.HasPrefix(name, "shift+"):
			ev.Shift = true
			name = strings.TrimPrefix(name, "shift+")
		default:
			ev.Key = dom.NormalizeKey(name)
			return ev
		}
	}
}

// defaultTab is the host platform's sequential navigation.
func (d *Driver) defaultTab(backward bool) {
	w := focus.NewFocusWalker(d.doc.Root(), nil, focus.WalkOptions{Tabbable: true})
	cur := d.doc.ActiveElement()
	if cur != nil {
		w.SetCurrent(cur)
	}
	var next *dom.Node
	if backward {
		next = w.Previous()
	} else {
		next = w.Next()
	}
	if next == nil {
		next = d.wrapAround(w, backward)
	}
	if next != nil && next != cur {
		_ = next.Focus()
	}
}

// wrapAround restarts the walk from the document edge: the first tabbable
// going forward, the last going backward.
func (d *Driver) wrapAround(w *focus.Walker, backward bool) *dom.Node {
	w.SetCurrent(d.doc.Root())
	if !backward {
		return w.Next()
	}
	var last *dom.Node
	for n := w.Next(); n != nil; n = w.Next() {
		last = n
	}
	return last
}
