package focus

import (
	"sort"

	"github.com/jask/focusscope/dom"
)

// Registry tracks every mounted scope plus the active scope, the one most
// recently confirmed to hold focus. A registry serves one document tree. All
// mutation happens inside event handling on the UI goroutine, so there is no
// locking.
//
// The active pointer may transiently name a scope that already unmounted;
// holders must check Mounted before acting on it.
type Registry struct {
	scopes map[string]*Scope
	active *Scope
	seq    int
}

func NewRegistry() *Registry {
	return &Registry{scopes: make(map[string]*Scope)}
}

func (r *Registry) register(s *Scope) {
	r.seq++
	s.seq = r.seq
	r.scopes[s.id] = s
}

func (r *Registry) unregister(s *Scope) {
	delete(r.scopes, s.id)
}

// Mounted reports whether the scope is currently registered.
func (r *Registry) Mounted(s *Scope) bool {
	if s == nil {
		return false
	}
	_, ok := r.scopes[s.id]
	return ok
}

// Active returns the active scope, nil before any scope has claimed focus.
func (r *Registry) Active() *Scope { return r.active }

// SetActive claims the active slot for s.
func (r *Registry) SetActive(s *Scope) { r.active = s }

// IsInAnyScope reports whether any mounted scope contains the node.
func (r *Registry) IsInAnyScope(n *dom.Node) bool {
	return r.ScopeOf(n) != nil
}

// ScopeOf resolves the innermost mounted scope containing the node: of all
// scopes whose node list contains it, the one with the deepest container,
// ties broken toward the most recently mounted. Claim and containment
// decisions act on that scope alone.
func (r *Registry) ScopeOf(n *dom.Node) *Scope {
	if n == nil {
		return nil
	}
	var best *Scope
	bestDepth := -1
	for _, s := range r.scopes {
		if !s.Contains(n) {
			continue
		}
		d := depth(s.container)
		if d > bestDepth || (d == bestDepth && s.seq > best.seq) {
			best, bestDepth = s, d
		}
	}
	return best
}

// Scopes lists the mounted scopes in mount order, for diagnostics.
func (r *Registry) Scopes() []*Scope {
	out := make([]*Scope, 0, len(r.scopes))
	for _, s := range r.scopes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func depth(n *dom.Node) int {
	d := 0
	for x := n; x != nil; x = x.Parent() {
		d++
	}
	return d
}
