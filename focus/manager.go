package focus

import "github.com/jask/focusscope/dom"

// MoveOptions configures the scope-level focus movement operations. A nil
// From starts from the active element. Tabbable narrows candidates from
// focusable to tabbable. Wrap continues from the opposite edge when the walk
// falls off either end.
type MoveOptions struct {
	From     *dom.Node
	Tabbable bool
	Wrap     bool
}

// FocusNext focuses and returns the candidate after From in scope order, nil
// when the walk finds nothing.
func (s *Scope) FocusNext(opts MoveOptions) *dom.Node {
	w := s.moveWalker(opts, false)
	next := w.Next()
	if next == nil && opts.Wrap {
		w.SetCurrent(s.start)
		next = w.Next()
	}
	if next != nil {
		_ = next.Focus()
	}
	return next
}

// FocusPrevious focuses and returns the candidate before From in scope
// order, nil when the walk finds nothing.
func (s *Scope) FocusPrevious(opts MoveOptions) *dom.Node {
	w := s.moveWalker(opts, true)
	prev := w.Previous()
	if prev == nil && opts.Wrap {
		w.SetCurrent(s.end)
		prev = w.Previous()
	}
	if prev != nil {
		_ = prev.Focus()
	}
	return prev
}

// FocusFirst focuses and returns the scope's first candidate.
func (s *Scope) FocusFirst(opts MoveOptions) *dom.Node {
	w := NewFocusWalker(s.container, s.nodes, WalkOptions{Tabbable: opts.Tabbable})
	w.SetCurrent(s.start)
	first := w.Next()
	if first != nil {
		_ = first.Focus()
	}
	return first
}

// FocusLast focuses and returns the scope's last candidate.
func (s *Scope) FocusLast(opts MoveOptions) *dom.Node {
	w := NewFocusWalker(s.container, s.nodes, WalkOptions{Tabbable: opts.Tabbable})
	w.SetCurrent(s.end)
	last := w.Previous()
	if last != nil {
		_ = last.Focus()
	}
	return last
}

// moveWalker seeds a walker for a relative move: at From when it sits inside
// the scope, at the active element otherwise. With neither, a forward move
// starts at the start sentinel and a backward move at the end sentinel, so
// the first move lands on the first or last candidate.
func (s *Scope) moveWalker(opts MoveOptions, backward bool) *Walker {
	w := NewFocusWalker(s.container, s.nodes, WalkOptions{Tabbable: opts.Tabbable})
	from := opts.From
	if from == nil {
		from = s.doc.ActiveElement()
	}
	if from != nil && s.Contains(from) {
		w.SetCurrent(from)
	} else if backward {
		w.SetCurrent(s.end)
	} else {
		w.SetCurrent(s.start)
	}
	return w
}
