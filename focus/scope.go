package focus

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/focusscope/dom"
)

// Options configures a scope. The zero value turns every behavior off; use
// DefaultOptions for the standard modal setup.
type Options struct {
	// Contain traps tab cycling inside the scope.
	Contain bool
	// RestoreFocus hands focus back to the pre-mount target on unmount.
	RestoreFocus bool
	// AutoFocus moves focus into the scope on mount.
	AutoFocus bool
	// InitialFocus names the node mount focus should land on instead of the
	// first tabbable.
	InitialFocus *dom.Node
}

// DefaultOptions is the modal dialog configuration: contain, restore and
// auto-focus all on.
func DefaultOptions() Options {
	return Options{Contain: true, RestoreFocus: true, AutoFocus: true}
}

// Scope bounds a region of the tree with two sentinel markers and keeps the
// focus behaviors (containment, restoration, auto-focus) wired to the live
// nodes between them.
type Scope struct {
	id        string
	seq       int
	reg       *Registry
	doc       *dom.Document
	container *dom.Node
	start     *dom.Node
	end       *dom.Node
	nodes     []*dom.Node
	opts      Options

	restoreTarget *dom.Node
	lastFocused   *dom.Node

	cleanups     []func()
	nodeCleanups []func()
	pendingSnap  dom.TaskHandle

	mounted bool
}

// Mount bounds the container's current children with sentinel markers and
// activates the scope. The restore target is captured before any other
// effect so it reflects pre-mount state; auto-focus runs last, after every
// listener is attached. Changing the container's children afterward requires
// Refresh.
func Mount(reg *Registry, container *dom.Node, opts Options) (*Scope, error) {
	if reg == nil || container == nil {
		panic("focus: Mount needs a registry and a container")
	}
	if !container.Attached() {
		return nil, fmt.Errorf("focus: mount %s: container is detached", container)
	}
	doc := container.Document()
	s := &Scope{
		id:        uuid.NewString(),
		reg:       reg,
		doc:       doc,
		container: container,
		opts:      opts,
	}

	s.restoreTarget = doc.ActiveElement()

	s.start = dom.Marker(s.id + "/start")
	s.end = dom.Marker(s.id + "/end")
	container.InsertBefore(s.start, container.FirstChild())
	container.AppendChild(s.end)

	s.measure()
	reg.register(s)
	s.mounted = true

	if opts.Contain {
		s.attachContainment()
	} else {
		s.attachBoundaryHandoff()
	}
	s.attachNodeListeners()
	s.runAutoFocus()
	return s, nil
}

func (s *Scope) ID() string { return s.id }

// Nodes returns the scope's top-level nodes as of the last measurement.
func (s *Scope) Nodes() []*dom.Node {
	out := make([]*dom.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Contains reports whether n sits inside the scope per the last measurement.
func (s *Scope) Contains(n *dom.Node) bool {
	return IsInScope(n, s.nodes)
}

// measure rebuilds the node list from the live children between the markers.
func (s *Scope) measure() {
	fresh := make([]*dom.Node, 0, len(s.container.Children()))
	collecting := false
	for _, c := range s.container.Children() {
		switch c {
		case s.start:
			collecting = true
		case s.end:
			collecting = false
		default:
			if collecting {
				fresh = append(fresh, c)
			}
		}
	}
	s.nodes = fresh
}

// Refresh re-measures the node list after the container's children changed
// and moves the per-node listeners onto the new membership. Call it from the
// same commit that mutated the children.
func (s *Scope) Refresh() {
	if !s.mounted {
		return
	}
	s.detachNodeListeners()
	s.measure()
	s.attachNodeListeners()
}

// Unmount tears the scope down: pending deferred work is cancelled, the
// listeners come off, the scope unregisters before restoration decides where
// focus goes, and the markers come out. Call it before removing the scope's
// subtree so restoration can still see where focus was. Unmounting twice is
// a no-op.
func (s *Scope) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	s.cancelSnapback()
	s.detachNodeListeners()
	for _, off := range s.cleanups {
		off()
	}
	s.cleanups = nil

	s.reg.unregister(s)
	s.restoreOnTeardown()

	s.container.RemoveChild(s.start)
	s.container.RemoveChild(s.end)
	s.nodes = nil
}

// focusFirst focuses the scope's first tabbable node, walking from the start
// sentinel. Returns nil when the scope has none.
func (s *Scope) focusFirst() *dom.Node {
	w := NewFocusWalker(s.container, s.nodes, WalkOptions{Tabbable: true})
	w.SetCurrent(s.start)
	if n := w.Next(); n != nil {
		_ = n.Focus()
		return n
	}
	return nil
}
