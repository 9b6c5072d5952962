package focus

// runAutoFocus moves focus into the scope once, at the end of Mount. An
// explicit initial target wins over the first-tabbable walk; a detached
// target degrades to a no-op. Focus already inside the scope is left alone
// in both modes.
func (s *Scope) runAutoFocus() {
	if s.opts.InitialFocus != nil {
		if !s.opts.InitialFocus.Attached() {
			return
		}
		s.reg.SetActive(s)
		if cur := s.doc.ActiveElement(); cur != nil && s.Contains(cur) {
			return
		}
		_ = s.opts.InitialFocus.Focus()
		return
	}
	if !s.opts.AutoFocus {
		return
	}
	s.reg.SetActive(s)
	if cur := s.doc.ActiveElement(); cur != nil && s.Contains(cur) {
		return
	}
	s.focusFirst()
}
