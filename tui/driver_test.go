package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/focusscope/dom"
	"github.com/jask/focusscope/focus"
)

func tabMsg() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func shiftTabMsg() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }

func activeID(d *dom.Document) string {
	if n := d.ActiveElement(); n != nil {
		return n.ID()
	}
	return "<none>"
}

func TestDefaultTabWalksDocumentWithWrap(t *testing.T) {
	doc := dom.NewDocument()
	for _, id := range []string{"a", "b", "c"} {
		doc.Root().AppendChild(dom.Input(id))
	}
	drv := NewDriver(doc)

	want := []string{"a", "b", "c", "a"}
	for i, w := range want {
		if !drv.HandleKey(tabMsg()) {
			t.Fatalf("tab %d reported unhandled", i+1)
		}
		if got := activeID(doc); got != w {
			t.Fatalf("after tab %d focus = %s, want %s", i+1, got, w)
		}
	}

	if !drv.HandleKey(shiftTabMsg()) {
		t.Fatalf("shift+tab reported unhandled")
	}
	if got := activeID(doc); got != "c" {
		t.Fatalf("backward wrap focus = %s, want c", got)
	}
}

func TestDriverDefersToContainment(t *testing.T) {
	doc := dom.NewDocument()
	reg := focus.NewRegistry()
	doc.Root().AppendChild(dom.Button("opener"))
	container := dom.Box(dom.Input("one"), dom.Input("two"))
	doc.Root().AppendChild(container)
	if _, err := focus.Mount(reg, container, focus.DefaultOptions()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	drv := NewDriver(doc)

	// Containment consumes the tab; the driver must not add its own move on
	// top, so focus advances exactly one step and stays trapped.
	want := []string{"two", "one", "two"}
	for i, w := range want {
		if !drv.HandleKey(tabMsg()) {
			t.Fatalf("tab %d reported unhandled", i+1)
		}
		drv.Flush()
		if got := activeID(doc); got != w {
			t.Fatalf("after tab %d focus = %s, want %s", i+1, got, w)
		}
	}
}

func TestModifiedTabFallsThrough(t *testing.T) {
	doc := dom.NewDocument()
	field := dom.Input("field")
	doc.Root().AppendChild(field)
	if err := field.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}
	drv := NewDriver(doc)

	if drv.HandleKey(tea.KeyMsg{Type: tea.KeyTab, Alt: true}) {
		t.Fatalf("alt+tab reported handled")
	}
	if doc.ActiveElement() != field {
		t.Fatalf("alt+tab moved focus to %v", doc.ActiveElement())
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name  string
		msg   tea.KeyMsg
		key   string
		shift bool
		alt   bool
		ctrl  bool
	}{
		{"plain rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, "a", false, false, false},
		{"tab", tabMsg(), "tab", false, false, false},
		{"shift+tab", shiftTabMsg(), "tab", true, false, false},
		{"alt+tab", tea.KeyMsg{Type: tea.KeyTab, Alt: true}, "tab", false, true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "c", false, false, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "enter", false, false, false},
	}
	for _, tc := range cases {
		ev := translate(tc.msg)
		if ev.Key != tc.key || ev.Shift != tc.shift || ev.Alt != tc.alt || ev.Ctrl != tc.ctrl {
			t.Fatalf("%s: translate = {key:%q shift:%v alt:%v ctrl:%v}, want {key:%q shift:%v alt:%v ctrl:%v}",
				tc.name, ev.Key, ev.Shift, ev.Alt, ev.Ctrl, tc.key, tc.shift, tc.alt, tc.ctrl)
		}
	}
}

func TestFlushRunsFrameTasks(t *testing.T) {
	doc := dom.NewDocument()
	drv := NewDriver(doc)

	ran := false
	doc.Schedule(func() { ran = true })
	drv.Flush()
	if !ran {
		t.Fatalf("Flush did not run the scheduled frame task")
	}
}
