package dom

import (
	"errors"
	"testing"
)

func TestFocusErrors(t *testing.T) {
	if err := Input("loose").Focus(); !errors.Is(err, ErrDetached) {
		t.Fatalf("focus detached: err = %v, want ErrDetached", err)
	}

	d := NewDocument()
	marker := Marker("edge")
	text := Text("hello")
	d.Root().AppendChild(marker)
	d.Root().AppendChild(text)

	if err := marker.Focus(); !errors.Is(err, ErrNotFocusable) {
		t.Fatalf("focus marker: err = %v, want ErrNotFocusable", err)
	}
	if err := text.Focus(); !errors.Is(err, ErrNotFocusable) {
		t.Fatalf("focus text: err = %v, want ErrNotFocusable", err)
	}
}

func TestFocusEventOrder(t *testing.T) {
	d := NewDocument()
	a := Input("a")
	b := Input("b")
	group := Box(a, b)
	d.Root().AppendChild(group)

	var trace []string
	a.OnFocusOut(func(ev *FocusEvent) { trace = append(trace, "out:"+ev.Target.ID()) })
	b.OnFocusIn(func(ev *FocusEvent) { trace = append(trace, "in:"+ev.Target.ID()) })
	group.OnFocusIn(func(ev *FocusEvent) { trace = append(trace, "group-in:"+ev.Target.ID()) })
	d.OnFocusIn(func(ev *FocusEvent) { trace = append(trace, "doc-in:"+ev.Target.ID()) })

	if err := a.Focus(); err != nil {
		t.Fatalf("focus a: %v", err)
	}
	trace = nil
	if err := b.Focus(); err != nil {
		t.Fatalf("focus b: %v", err)
	}

	want := []string{"out:a", "in:b", "group-in:b", "doc-in:b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestFocusSameNodeIsQuiet(t *testing.T) {
	d := NewDocument()
	a := Input("a")
	d.Root().AppendChild(a)
	if err := a.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}

	fired := 0
	d.OnFocusIn(func(*FocusEvent) { fired++ })
	if err := a.Focus(); err != nil {
		t.Fatalf("refocus: %v", err)
	}
	if fired != 0 {
		t.Fatalf("refocusing the active element fired %d focus-in events", fired)
	}
}

func TestBlur(t *testing.T) {
	d := NewDocument()
	a := Input("a")
	b := Input("b")
	d.Root().AppendChild(Box(a, b))

	var outs, ins int
	d.OnFocusOut(func(*FocusEvent) { outs++ })
	d.OnFocusIn(func(*FocusEvent) { ins++ })

	if err := a.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}
	outs, ins = 0, 0

	a.Blur()
	if d.ActiveElement() != nil {
		t.Fatalf("active element survived blur")
	}
	if outs != 1 || ins != 0 {
		t.Fatalf("blur fired %d focus-out and %d focus-in, want 1 and 0", outs, ins)
	}

	// Blurring a node that is not active does nothing.
	b.Blur()
	if outs != 1 {
		t.Fatalf("blurring inactive node fired focus-out")
	}
}

func TestDispatchKeyOrder(t *testing.T) {
	d := NewDocument()
	field := Input("field")
	group := Box(field)
	d.Root().AppendChild(group)
	if err := field.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}

	var trace []string
	d.OnKeydown(Capture, func(*KeyEvent) { trace = append(trace, "doc-capture") })
	d.OnKeydown(Bubble, func(*KeyEvent) { trace = append(trace, "doc-bubble") })
	field.OnKeydown(func(*KeyEvent) { trace = append(trace, "field") })
	group.OnKeydown(func(*KeyEvent) { trace = append(trace, "group") })

	d.DispatchKey(&KeyEvent{Key: "Tab"})

	want := []string{"doc-capture", "field", "group", "doc-bubble"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestDispatchKeyNormalizesAndTargets(t *testing.T) {
	d := NewDocument()

	var seenKey string
	var seenTarget *Node
	d.OnKeydown(Bubble, func(ev *KeyEvent) {
		seenKey = ev.Key
		seenTarget = ev.Target()
	})

	d.DispatchKey(&KeyEvent{Key: "  TAB "})
	if seenKey != "tab" {
		t.Fatalf("key = %q, want tab", seenKey)
	}
	if seenTarget != d.Root() {
		t.Fatalf("unfocused dispatch target = %v, want root", seenTarget)
	}

	field := Input("field")
	d.Root().AppendChild(field)
	if err := field.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}
	d.DispatchKey(&KeyEvent{Key: "enter"})
	if seenTarget != field {
		t.Fatalf("focused dispatch target = %v, want %v", seenTarget, field)
	}
}

func TestConsumeDoesNotStopDispatch(t *testing.T) {
	d := NewDocument()

	var after bool
	d.OnKeydown(Capture, func(ev *KeyEvent) { ev.Consume() })
	d.OnKeydown(Bubble, func(ev *KeyEvent) { after = ev.Consumed() })

	if !d.DispatchKey(&KeyEvent{Key: "tab"}) {
		t.Fatalf("DispatchKey did not report consumption")
	}
	if !after {
		t.Fatalf("bubble listener did not run or did not observe the consumed flag")
	}
}

func TestUnsubscribeMidDispatch(t *testing.T) {
	d := NewDocument()

	var calls int
	var off func()
	off = d.OnKeydown(Bubble, func(*KeyEvent) {
		calls++
		off()
	})
	d.OnKeydown(Bubble, func(*KeyEvent) { calls++ })

	d.DispatchKey(&KeyEvent{Key: "a"})
	d.DispatchKey(&KeyEvent{Key: "a"})

	// First dispatch runs both listeners; the second runs only the survivor.
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestDetachedListenerFiresOnceAttached(t *testing.T) {
	d := NewDocument()
	field := Input("field")

	fired := 0
	field.OnKeydown(func(*KeyEvent) { fired++ })

	d.Root().AppendChild(field)
	if err := field.Focus(); err != nil {
		t.Fatalf("focus: %v", err)
	}
	d.DispatchKey(&KeyEvent{Key: "x"})
	if fired != 1 {
		t.Fatalf("listener registered while detached fired %d times, want 1", fired)
	}
}
