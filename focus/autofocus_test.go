package focus

import (
	"testing"

	"github.com/jask/focusscope/dom"
)

func TestAutoFocusFirstTabbable(t *testing.T) {
	doc := dom.NewDocument()
	reg := NewRegistry()
	field := dom.Input("field")
	container := dom.Box(
		dom.Text("title"),
		dom.Input("skipped").SetDisabled(true),
		field,
	)
	doc.Root().AppendChild(container)

	s, err := Mount(reg, container, DefaultOptions())
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if doc.ActiveElement() != field {
		t.Fatalf("auto-focus = %v, want the first tabbable input#field", doc.ActiveElement())
	}
	if reg.Active() != s {
		t.Fatalf("auto-focus did not claim the active scope")
	}
}

func TestAutoFocusNoOpWhenFocusAlreadyInside(t *testing.T) {
	doc := dom.NewDocument()
	reg := NewRegistry()
	first := dom.Input("first")
	second := dom.Input("second")
	container := dom.Box(first, second)
	doc.Root().AppendChild(container)

	// A self-focusing child grabbed focus before the scope mounted.
	if err := second.Focus(); err != nil {
		t.Fatalf("focus second: %v", err)
	}
	if _, err := Mount(reg, container, DefaultOptions()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if doc.ActiveElement() != second {
		t.Fatalf("auto-focus stole focus from a descendant: %v", doc.ActiveElement())
	}
}

func TestInitialFocusTarget(t *testing.T) {
	doc := dom.NewDocument()
	reg := NewRegistry()
	last := dom.Input("last")
	container := dom.Box(dom.Input("first"), dom.Input("middle"), last)
	doc.Root().AppendChild(container)

	opts := DefaultOptions()
	opts.InitialFocus = last
	s, err := Mount(reg, container, opts)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if doc.ActiveElement() != last {
		t.Fatalf("initial focus = %v, want input#last regardless of document order", doc.ActiveElement())
	}
	if reg.Active() != s {
		t.Fatalf("initial focus did not claim the active scope")
	}
}

func TestInitialFocusDetachedDegrades(t *testing.T) {
	doc := dom.NewDocument()
	reg := NewRegistry()
	opener := dom.Button("opener")
	container := dom.Box(dom.Input("field"))
	doc.Root().AppendChild(opener)
	doc.Root().AppendChild(container)
	if err := opener.Focus(); err != nil {
		t.Fatalf("focus opener: %v", err)
	}

	opts := DefaultOptions()
	opts.InitialFocus = dom.Input("ghost") // never attached
	if _, err := Mount(reg, container, opts); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if doc.ActiveElement() != opener {
		t.Fatalf("detached initial target moved focus to %v", doc.ActiveElement())
	}
}

func TestAutoFocusDisabled(t *testing.T) {
	f := newDialogFixture(t, Options{Contain: true, RestoreFocus: true})

	if f.doc.ActiveElement() != f.opener {
		t.Fatalf("focus moved with AutoFocus off: %s", f.activeID())
	}
	if f.reg.Active() != nil {
		t.Fatalf("scope claimed active without auto-focus or any focus event")
	}
}

func TestAutoFocusEmptyScope(t *testing.T) {
	doc := dom.NewDocument()
	reg := NewRegistry()
	outside := dom.Input("outside")
	empty := dom.Box().SetID("empty")
	doc.Root().AppendChild(outside)
	doc.Root().AppendChild(empty)
	if err := outside.Focus(); err != nil {
		t.Fatalf("focus outside: %v", err)
	}

	s, err := Mount(reg, empty, DefaultOptions())
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if doc.ActiveElement() != outside {
		t.Fatalf("auto-focus on an empty scope moved focus to %v", doc.ActiveElement())
	}
	if reg.Active() != s {
		t.Fatalf("empty scope still claims the active slot on mount")
	}
}
