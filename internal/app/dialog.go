package app

import (
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/focusscope/dom"
	"github.com/jask/focusscope/focus"
	"github.com/jask/focusscope/internal/store"
)

type dialogState struct {
	scope     *focus.Scope
	container *dom.Node
	editingID string

	name   *dom.Node
	email  *dom.Node
	phone  *dom.Node
	notes  *dom.Node
	save   *dom.Node
	cancel *dom.Node
}

// openDialog mounts the add or edit form under an overlay box with its own
// focus scope. A nil contact means a blank add form.
func (a *App) openDialog(c *store.Contact) {
	if a.dialog != nil {
		return
	}

	d := &dialogState{
		name:   dom.Input("dialog/name").SetLabel("Name"),
		email:  dom.Input("dialog/email").SetLabel("Email"),
		phone:  dom.Input("dialog/phone").SetLabel("Phone"),
		notes:  dom.TextArea("dialog/notes").SetLabel("Notes"),
		save:   dom.Button("dialog/save").SetLabel("Save"),
		cancel: dom.Button("dialog/cancel").SetLabel("Cancel"),
	}
	title := "New contact"
	if c != nil {
		title = "Edit contact"
		d.editingID = c.ID
		d.name.SetValue(c.Name)
		d.email.SetValue(c.Email)
		d.phone.SetValue(c.Phone)
		d.notes.SetValue(c.Notes)
	}
	d.container = dom.Box(
		dom.Text(title),
		d.name,
		d.email,
		d.phone,
		d.notes,
		dom.Box(d.save, d.cancel).SetID("dialog/actions"),
	).SetID("dialog")
	a.doc.Root().AppendChild(d.container)

	opts := focus.Options{
		Contain:      a.cfg.Focus.Contain,
		RestoreFocus: a.cfg.Focus.RestoreFocus,
		AutoFocus:    a.cfg.Focus.AutoFocus,
	}
	if c != nil {
		opts.InitialFocus = d.name
	}
	scope, err := focus.Mount(a.reg, d.container, opts)
	if err != nil {
		a.doc.Root().RemoveChild(d.container)
		a.status = "error: " + err.Error()
		return
	}
	d.scope = scope
	a.dialog = d
	a.status = ""
}

// closeDialog unmounts the scope before detaching the subtree so teardown
// still sees the markers attached, then flushes the deferred restore.
func (a *App) closeDialog() {
	d := a.dialog
	if d == nil {
		return
	}
	d.scope.Unmount()
	a.doc.Root().RemoveChild(d.container)
	a.doc.Flush()
	a.dialog = nil
}

func (a *App) submitDialog() tea.Cmd {
	d := a.dialog
	now := store.Now()
	c := store.Contact{
		ID:        d.editingID,
		Name:      strings.TrimSpace(d.name.Value()),
		Email:     strings.TrimSpace(d.email.Value()),
		Phone:     strings.TrimSpace(d.phone.Value()),
		Notes:     strings.TrimSpace(d.notes.Value()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Name == "" {
		a.status = "name is required"
		return nil
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	a.closeDialog()
	a.status = "saving..."
	return a.saveContact(c)
}

type paletteState struct {
	query string
}

func (a *App) handlePaletteKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.palette = nil
	case tea.KeyEnter:
		query := a.palette.query
		a.palette = nil
		a.jumpToMatch(query)
	case tea.KeyBackspace:
		r := []rune(a.palette.query)
		if len(r) > 0 {
			a.palette.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.palette.query += " "
	case tea.KeyRunes:
		if !m.Alt {
			a.palette.query += string(m.Runes)
		}
	}
	return a, nil
}

// jumpToMatch focuses the tabbable whose label is closest to the query.
// With a dialog open only its scope members are candidates, so the jump
// lands inside the trap and the scope claims it like any other focus move.
func (a *App) jumpToMatch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	target := bestLabelMatch(a.jumpCandidates(), query)
	if target == nil {
		a.status = "no field matches " + query
		return
	}
	if err := target.Focus(); err != nil {
		return
	}
	a.status = ""
}

func (a *App) jumpCandidates() []*dom.Node {
	root := a.doc.Root()
	var scope []*dom.Node
	if a.dialog != nil {
		root = a.dialog.container
		scope = a.dialog.scope.Nodes()
	}
	w := focus.NewFocusWalker(root, scope, focus.WalkOptions{Tabbable: true})
	var out []*dom.Node
	for n := w.Next(); n != nil; n = w.Next() {
		out = append(out, n)
	}
	return out
}

func bestLabelMatch(nodes []*dom.Node, query string) *dom.Node {
	q := strings.ToUpper(query)
	var best *dom.Node
	bestScore := 1.0
	for _, n := range nodes {
		label := n.Label()
		if label == "" {
			label = n.ID()
		}
		l := strings.ToUpper(label)
		var score float64
		if !strings.Contains(l, q) {
			dist := levenshtein.ComputeDistance(l, q)
			score = float64(dist) / float64(max(len(l), len(q)))
		}
		if best == nil || score < bestScore {
			best = n
			bestScore = score
		}
	}
	if best == nil || bestScore >= 0.8 {
		return nil
	}
	return best
}
