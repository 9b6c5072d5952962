package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/focusscope/dom"
	"github.com/jask/focusscope/focus"
	"github.com/jask/focusscope/internal/config"
	"github.com/jask/focusscope/internal/store"
	"github.com/jask/focusscope/tui"
)

// App is the contacts demo. The whole screen is a dom tree; the driver
// routes keys into it and dialogs mount focus scopes over their subtrees.
type App struct {
	ctx      context.Context
	cfg      config.Config
	contacts *store.ContactRepo

	doc    *dom.Document
	driver *tui.Driver
	reg    *focus.Registry

	toolbar *dom.Node
	addBtn  *dom.Node
	rowsBox *dom.Node
	rows    []*dom.Node

	list    []store.Contact
	dialog  *dialogState
	palette *paletteState

	keys   keyMap
	help   help.Model
	status string
	width  int
	height int

	title     lipgloss.Style
	muted     lipgloss.Style
	dialogBox lipgloss.Style
}

type keyMap struct {
	Add    key.Binding
	Open   key.Binding
	Delete key.Binding
	Jump   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Open, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Open, k.Delete},
		{k.Next, k.Prev, k.Jump},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	dk := tui.DefaultKeyMap()
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add contact")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Jump:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to field")),
		Next:   dk.Next,
		Prev:   dk.Prev,
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func New(ctx context.Context, cfg config.Config, contacts *store.ContactRepo) *App {
	doc := dom.NewDocument()

	addBtn := dom.Button("toolbar/add").SetLabel("Add contact")
	toolbar := dom.Box(addBtn).SetID("toolbar")
	rowsBox := dom.Box().SetID("contacts")
	doc.Root().AppendChild(toolbar)
	doc.Root().AppendChild(rowsBox)
	_ = addBtn.Focus()

	return &App{
		ctx:      ctx,
		cfg:      cfg,
		contacts: contacts,
		doc:      doc,
		driver:   tui.NewDriver(doc),
		reg:      focus.NewRegistry(),
		toolbar:  toolbar,
		addBtn:   addBtn,
		rowsBox:  rowsBox,
		keys:     defaultKeyMap(),
		help:     help.New(),
		title:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(cfg.UI.Accent)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.UI.Muted)),
		dialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.UI.Accent)).
			Padding(0, 1),
	}
}

// Document exposes the backing tree for tests.
func (a *App) Document() *dom.Document { return a.doc }

func (a *App) Init() tea.Cmd {
	return a.loadContacts()
}

type contactsMsg []store.Contact
type savedMsg struct{}
type deletedMsg struct{}
type errMsg struct{ error }

func (a *App) loadContacts() tea.Cmd {
	return func() tea.Msg {
		list, err := a.contacts.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return contactsMsg(list)
	}
}

func (a *App) saveContact(c store.Contact) tea.Cmd {
	return func() tea.Msg {
		if err := a.contacts.Upsert(a.ctx, c); err != nil {
			return errMsg{err}
		}
		return savedMsg{}
	}
}

func (a *App) deleteContact(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.contacts.Delete(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return deletedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case contactsMsg:
		a.list = []store.Contact(m)
		a.rebuildRows()
	case savedMsg:
		a.status = "saved"
		return a, a.loadContacts()
	case deletedMsg:
		a.status = "deleted"
		return a, a.loadContacts()
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.palette != nil {
		return a.handlePaletteKey(m)
	}
	if a.editFocusedField(m) {
		return a, nil
	}
	if a.driver.HandleKey(m) {
		a.driver.Flush()
		return a, nil
	}
	if a.dialog != nil {
		return a.handleDialogKey(m.String())
	}
	return a.handleListKey(m.String())
}

// editFocusedField types into the focused text control. Text entry wins
// over single letter hotkeys so forms behave like forms.
func (a *App) editFocusedField(m tea.KeyMsg) bool {
	active := a.doc.ActiveElement()
	if active == nil {
		return false
	}
	switch active.Kind() {
	case dom.KindInput, dom.KindTextArea, dom.KindEditor:
	default:
		return false
	}
	switch m.Type {
	case tea.KeyRunes:
		if m.Alt {
			return false
		}
		active.SetValue(active.Value() + string(m.Runes))
		return true
	case tea.KeySpace:
		active.SetValue(active.Value() + " ")
		return true
	case tea.KeyBackspace:
		r := []rune(active.Value())
		if len(r) > 0 {
			active.SetValue(string(r[:len(r)-1]))
		}
		return true
	}
	return false
}

func (a *App) handleListKey(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "q":
		return a, tea.Quit
	case "?":
		a.help.ShowAll = !a.help.ShowAll
	case "a":
		a.openDialog(nil)
	case "enter":
		return a.activateFocused()
	case "d":
		if c := a.focusedContact(); c != nil {
			a.status = "deleting..."
			return a, a.deleteContact(c.ID)
		}
	case "/":
		a.palette = &paletteState{}
	case "down", "j":
		a.moveRowFocus(1)
	case "up", "k":
		a.moveRowFocus(-1)
	case "r":
		return a, a.loadContacts()
	}
	return a, nil
}

func (a *App) handleDialogKey(s string) (tea.Model, tea.Cmd) {
	d := a.dialog
	switch s {
	case "esc":
		a.closeDialog()
	case "enter":
		active := a.doc.ActiveElement()
		switch active {
		case d.save:
			return a, a.submitDialog()
		case d.cancel:
			a.closeDialog()
		default:
			// enter in a field advances like tab
			d.scope.FocusNext(focus.MoveOptions{Tabbable: true, Wrap: true})
		}
	case "/":
		a.palette = &paletteState{}
	}
	return a, nil
}

func (a *App) activateFocused() (tea.Model, tea.Cmd) {
	active := a.doc.ActiveElement()
	if active == a.addBtn {
		a.openDialog(nil)
		return a, nil
	}
	if c := a.focusedContact(); c != nil {
		a.openDialog(c)
	}
	return a, nil
}

func (a *App) focusedContact() *store.Contact {
	active := a.doc.ActiveElement()
	if active == nil {
		return nil
	}
	id, ok := strings.CutPrefix(active.ID(), "contact/")
	if !ok {
		return nil
	}
	for i := range a.list {
		if a.list[i].ID == id {
			return &a.list[i]
		}
	}
	return nil
}

func (a *App) moveRowFocus(delta int) {
	if len(a.rows) == 0 {
		return
	}
	active := a.doc.ActiveElement()
	idx := -1
	for i, r := range a.rows {
		if r == active {
			idx = i
			break
		}
	}
	if idx == -1 {
		_ = a.rows[0].Focus()
		return
	}
	next := idx + delta
	if next < 0 || next >= len(a.rows) {
		return
	}
	_ = a.rows[next].Focus()
}

// rebuildRows syncs the row buttons with the loaded list, keeping focus on
// the same control when it survives the reload.
func (a *App) rebuildRows() {
	var activeID string
	if active := a.doc.ActiveElement(); active != nil {
		activeID = active.ID()
	}
	for _, r := range a.rows {
		a.rowsBox.RemoveChild(r)
	}
	a.rows = a.rows[:0]
	for _, c := range a.list {
		row := dom.Button("contact/" + c.ID).SetLabel(rowLabel(c))
		a.rowsBox.AppendChild(row)
		a.rows = append(a.rows, row)
	}
	if activeID == "" || a.doc.ActiveElement() != nil {
		return
	}
	if n := a.doc.NodeByID(activeID); n != nil {
		_ = n.Focus()
	} else if len(a.rows) > 0 {
		_ = a.rows[0].Focus()
	} else {
		_ = a.addBtn.Focus()
	}
}

func rowLabel(c store.Contact) string {
	if c.Email != "" {
		return c.Name + "  <" + c.Email + ">"
	}
	return c.Name
}

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	sections := []string{
		a.title.Render("Contacts"),
		a.doc.ViewNode(a.toolbar, width),
		a.doc.ViewNode(a.rowsBox, width),
	}
	if a.palette != nil {
		sections = append(sections, "jump: "+a.palette.query+"▌")
	}
	if a.status != "" {
		sections = append(sections, a.muted.Render(a.status))
	}
	sections = append(sections, a.help.View(a.keys))
	parts := sections[:0]
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	base := strings.Join(parts, "\n\n")
	if a.dialog == nil {
		return base
	}

	modal := a.dialogBox.Render(a.doc.ViewNode(a.dialog.container, min(60, width-10)))
	if a.height == 0 || a.width == 0 {
		return base + "\n\n" + modal
	}
	base = padHeight(base, a.height)
	lines := strings.Split(modal, "\n")
	x := (a.width - maxLineWidth(lines)) / 2
	if x < 0 {
		x = 0
	}
	y := (a.height - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, modal, x, y, a.width)
}
