// Package focus implements focus scopes for terminal UI trees: tab-order
// containment inside a bounded region, focus restoration when the region goes
// away, and auto-focus when it appears.
//
// A Scope bounds the children of a container node with two hidden sentinel
// markers and watches the document's key and focus events. Mounted scopes are
// tracked in a Registry so concurrent scopes (dialogs over dialogs, sibling
// popovers) stay independent: every node answers to its innermost scope.
//
// Allowed here:
//   - document-order traversal and focus candidacy rules
//   - scope lifecycle (mount, refresh, unmount) and the containment,
//     restoration and auto-focus controllers
//   - registry bookkeeping for cross-scope decisions
//
// Not allowed here:
//   - rendering or layout (dom owns the tree and the view)
//   - Bubble Tea plumbing (tui translates key messages)
//   - application state of any kind
//
// Everything is single-goroutine; call only from the UI update loop.
package focus
