// Package dom is a retained document model for terminal UIs: a mutable node
// tree with inline styles, a single active (focused) element, keydown and
// focus-change event dispatch, and a cooperative frame scheduler.
//
// Allowed here:
// - tree structure and mutation (append/insert/remove, attachment tracking)
// - element attributes and inline styles consumed by renderers and predicates
// - focus state, event listener tables, and dispatch ordering
// - single-shot frame tasks (schedule/cancel/flush)
// - lipgloss rendering of the tree
//
// Not allowed here:
// - focus policy of any kind (containment, restoration, tab order belong to
//   package focus)
// - application state or key routing beyond raw dispatch
//
// A Document and its nodes are confined to one goroutine, matching the Bubble
// Tea update loop. Nothing in this package locks.
package dom
