package focus

import "github.com/jask/focusscope/dom"

// attachBoundaryHandoff wires the capture-phase tab hand-off used when the
// scope does not contain focus: tabbing past the scope's edge resumes from
// the restore target's place in whole-document order instead of leaking into
// whatever happens to sit after the scope's subtree.
func (s *Scope) attachBoundaryHandoff() {
	s.cleanups = append(s.cleanups, s.doc.OnKeydown(dom.Capture, s.handOffTab))
}

func (s *Scope) handOffTab(ev *dom.KeyEvent) {
	if ev.Consumed() || ev.Key != "tab" || ev.Alt || ev.Ctrl || ev.Meta {
		return
	}
	focused := s.doc.ActiveElement()
	if focused == nil || !s.Contains(focused) {
		return
	}
	if s.restoreTarget == nil || !s.restoreTarget.Attached() {
		return
	}

	w := NewFocusWalker(s.doc.Root(), nil, WalkOptions{Tabbable: true})
	w.SetCurrent(focused)
	next := step(w, ev.Shift)
	if next != nil && s.Contains(next) {
		// Natural tab order stays inside the scope; the host default applies.
		return
	}
	ev.Consume()

	// Resume from the restore target, skipping candidates inside the scope
	// in case the scope sits immediately adjacent to it.
	w.SetCurrent(s.restoreTarget)
	for {
		next = step(w, ev.Shift)
		if next == nil || !s.Contains(next) {
			break
		}
	}
	if next != nil {
		_ = next.Focus()
	} else {
		focused.Blur()
	}
}

func step(w *Walker, backward bool) *dom.Node {
	if backward {
		return w.Previous()
	}
	return w.Next()
}

// restoreOnTeardown hands focus back to the pre-mount target. It runs inside
// Unmount after the scope unregisters, and only when restoration is on, the
// target is still attached, and focus currently sits inside the scope. The
// refocus itself is deferred one frame so teardown effects settle first;
// attachment is re-checked at that point in case the tree changed meanwhile.
func (s *Scope) restoreOnTeardown() {
	if !s.opts.RestoreFocus || s.restoreTarget == nil || !s.restoreTarget.Attached() {
		return
	}
	cur := s.doc.ActiveElement()
	if cur == nil || !s.Contains(cur) {
		return
	}
	target := s.restoreTarget
	s.doc.Schedule(func() {
		if target.Attached() {
			_ = target.Focus()
		}
	})
}
