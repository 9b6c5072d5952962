package focus

import "github.com/jask/focusscope/dom"

// attachContainment wires the tab trap: a document-level keydown that cycles
// focus within the scope, a document-level focus-in that recovers focus when
// it lands outside every scope, and per-node listeners (attachNodeListeners)
// that claim the active slot and snap focus back when it escapes. Listeners
// stay attached until Unmount.
func (s *Scope) attachContainment() {
	s.cleanups = append(s.cleanups,
		s.doc.OnKeydown(dom.Bubble, s.containTab),
		s.doc.OnFocusIn(s.recoverFocus),
	)
}

// containTab moves focus to the adjacent tabbable inside the scope,
// consuming the key. Falling off the end wraps through the opposite
// sentinel: from the last member forward to the first, from the first member
// backward to the last. Only the innermost scope of the focused node acts.
func (s *Scope) containTab(ev *dom.KeyEvent) {
	if ev.Consumed() || ev.Key != "tab" || ev.Alt || ev.Ctrl || ev.Meta {
		return
	}
	focused := s.doc.ActiveElement()
	if focused == nil || s.reg.ScopeOf(focused) != s {
		return
	}
	ev.Consume()

	w := NewFocusWalker(s.container, s.nodes, WalkOptions{Tabbable: true})
	w.SetCurrent(focused)
	var next *dom.Node
	if ev.Shift {
		next = w.Previous()
		if next == nil {
			w.SetCurrent(s.end)
			next = w.Previous()
		}
	} else {
		next = w.Next()
		if next == nil {
			w.SetCurrent(s.start)
			next = w.Next()
		}
	}
	if next != nil {
		_ = next.Focus()
	}
}

// recoverFocus is the document-level safety net. When focus settles outside
// every mounted scope, pull it back: to this scope's last focused node when
// there is one, otherwise to the first tabbable of the active scope. The
// live active element decides, not the event payload, so reentrant
// corrections from other scopes are seen.
func (s *Scope) recoverFocus(ev *dom.FocusEvent) {
	cur := s.doc.ActiveElement()
	if cur == nil {
		cur = ev.Target
	}
	if s.reg.IsInAnyScope(cur) {
		return
	}
	if s.lastFocused != nil && s.lastFocused.Attached() {
		_ = s.lastFocused.Focus()
		return
	}
	if active := s.reg.Active(); active != nil && s.reg.Mounted(active) {
		active.focusFirst()
	}
}

// attachNodeListeners wires claim and snap-back listeners onto each
// top-level scope node. Containment only; Refresh re-runs this after
// re-measuring.
func (s *Scope) attachNodeListeners() {
	if !s.opts.Contain || !s.mounted {
		return
	}
	for _, n := range s.nodes {
		s.nodeCleanups = append(s.nodeCleanups,
			n.OnFocusIn(s.claimFocus),
			n.OnFocusOut(s.snapBackLater),
		)
	}
}

func (s *Scope) detachNodeListeners() {
	for _, off := range s.nodeCleanups {
		off()
	}
	s.nodeCleanups = nil
}

// claimFocus marks the scope active and records its last focused node. Only
// the innermost scope of the target claims, so nested scopes do not fight
// over the slot.
func (s *Scope) claimFocus(ev *dom.FocusEvent) {
	if s.reg.ScopeOf(ev.Target) != s {
		return
	}
	s.reg.SetActive(s)
	s.lastFocused = ev.Target
}

// snapBackLater defers the escape check one frame; focus regularly rests
// nowhere for a beat while the host re-renders. At the deadline the live
// active element decides, never the event's related node. Focus found
// outside every scope is forced back onto the node that blurred.
func (s *Scope) snapBackLater(ev *dom.FocusEvent) {
	blurred := ev.Target
	s.cancelSnapback()
	s.pendingSnap = s.doc.Schedule(func() {
		s.pendingSnap = 0
		if !s.mounted {
			return
		}
		if cur := s.doc.ActiveElement(); cur != nil && s.reg.IsInAnyScope(cur) {
			return
		}
		s.reg.SetActive(s)
		s.lastFocused = blurred
		if blurred.Attached() {
			_ = blurred.Focus()
		}
	})
}

func (s *Scope) cancelSnapback() {
	if s.pendingSnap != 0 {
		s.doc.Cancel(s.pendingSnap)
		s.pendingSnap = 0
	}
}
