package pickersheet

import (
	"fmt"
	"testing"
)

type handlerCalls struct {
	primary   int
	secondary int
	counts    []int
	actions   []*Action
}

func (c *handlerCalls) handler(action *Action) {
	c.primary++
	c.actions = append(c.actions, action)
}

func (c *handlerCalls) secondaryHandler(action *Action, count int) {
	c.secondary++
	c.counts = append(c.counts, count)
	c.actions = append(c.actions, action)
}

func TestResolvedTitle(t *testing.T) {
	noop := func(*Action) {}

	tests := []struct {
		name   string
		action *Action
		want   map[int]string
	}{
		{
			name:   "title only",
			action: NewAction("Take Photo", noop, ActionSettings{}),
			want:   map[int]string{-1: "Take Photo", 0: "Take Photo", 1: "Take Photo", 12: "Take Photo"},
		},
		{
			name:   "static secondary title",
			action: NewAction("Delete", noop, ActionSettings{SecondaryTitle: "Delete Selected"}),
			want:   map[int]string{-3: "Delete", 0: "Delete", 1: "Delete Selected", 7: "Delete Selected"},
		},
		{
			name: "secondary title func",
			action: NewActionWithTitleFunc("Photo Library", func(count int) string {
				return fmt.Sprintf("Add %d Photos", count)
			}, noop, ActionSettings{}),
			want: map[int]string{0: "Photo Library", 1: "Add 1 Photos", 4: "Add 4 Photos"},
		},
		{
			name: "title func wins over static secondary title",
			action: NewActionWithTitleFunc("Send", StaticTitle("Send Now"), noop, ActionSettings{
				SecondaryTitle: "ignored",
			}),
			want: map[int]string{0: "Send", 2: "Send Now"},
		},
		{
			name:   "nil title func falls back to static secondary title",
			action: NewActionWithTitleFunc("Send", nil, noop, ActionSettings{SecondaryTitle: "Send Selected"}),
			want:   map[int]string{0: "Send", 2: "Send Selected"},
		},
		{
			name:   "blank secondary title",
			action: NewActionWithTitleFunc("Edit", StaticTitle(""), noop, ActionSettings{}),
			want:   map[int]string{0: "Edit", 1: "", 3: ""},
		},
		{
			name:   "cancel",
			action: NewCancelAction("Cancel"),
			want:   map[int]string{0: "Cancel", 1: "Cancel", 5: "Cancel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for count, want := range tt.want {
				if got := tt.action.ResolvedTitle(count); got != want {
					t.Errorf("ResolvedTitle(%d) = %q, want %q", count, got, want)
				}
				// Resolution has no side effects and can be repeated.
				if got := tt.action.ResolvedTitle(count); got != want {
					t.Errorf("second ResolvedTitle(%d) = %q, want %q", count, got, want)
				}
			}
		})
	}
}

func TestHandleRouting(t *testing.T) {
	calls := &handlerCalls{}
	action := NewAction("Send", calls.handler, ActionSettings{SecondaryHandler: calls.secondaryHandler})

	action.Handle(0)
	if calls.primary != 1 || calls.secondary != 0 {
		t.Fatalf("Handle(0): primary=%d secondary=%d, want 1 and 0", calls.primary, calls.secondary)
	}

	action.Handle(-2)
	if calls.primary != 2 || calls.secondary != 0 {
		t.Fatalf("Handle(-2): primary=%d secondary=%d, want 2 and 0", calls.primary, calls.secondary)
	}

	for _, n := range []int{1, 3, 40} {
		action.Handle(n)
	}
	if calls.primary != 2 || calls.secondary != 3 {
		t.Fatalf("Handle(n>0): primary=%d secondary=%d, want 2 and 3", calls.primary, calls.secondary)
	}

	wantCounts := []int{1, 3, 40}
	for i, want := range wantCounts {
		if calls.counts[i] != want {
			t.Errorf("secondary call %d got count %d, want %d", i, calls.counts[i], want)
		}
	}

	for i, got := range calls.actions {
		if got != action {
			t.Errorf("call %d received a different action", i)
		}
	}
}

func TestHandleDefaultSecondaryDelegatesToPrimary(t *testing.T) {
	calls := &handlerCalls{}
	action := NewAction("Delete", calls.handler, ActionSettings{SecondaryTitle: "Delete 3 Photos"})

	if got := action.ResolvedTitle(0); got != "Delete" {
		t.Errorf("ResolvedTitle(0) = %q, want %q", got, "Delete")
	}
	if got := action.ResolvedTitle(3); got != "Delete 3 Photos" {
		t.Errorf("ResolvedTitle(3) = %q, want %q", got, "Delete 3 Photos")
	}

	action.Handle(0)
	if calls.primary != 1 {
		t.Fatalf("Handle(0) ran primary %d times, want 1", calls.primary)
	}

	action.Handle(3)
	if calls.primary != 2 {
		t.Fatalf("Handle(3) ran primary %d times in total, want 2", calls.primary)
	}
	if calls.actions[1] != action {
		t.Error("delegated handler received a different action")
	}
}

func TestCancelAction(t *testing.T) {
	action := NewCancelAction("Cancel")

	if action.Style() != ActionStyleCancel || !action.IsCancel() {
		t.Errorf("Style() = %v, want cancel", action.Style())
	}
	if action.Reset() {
		t.Error("cancel action must not reset")
	}
	if action.Title() != "Cancel" {
		t.Errorf("Title() = %q, want %q", action.Title(), "Cancel")
	}

	for _, n := range []int{-1, 0, 1, 5} {
		action.Handle(n)
	}
}

func TestActionSettings(t *testing.T) {
	noop := func(*Action) {}

	action := NewAction("Clear", noop, ActionSettings{Reset: true})
	if !action.Reset() {
		t.Error("Reset() = false, want true")
	}
	if action.Style() != ActionStyleDefault {
		t.Errorf("Style() = %v, want default", action.Style())
	}

	styled := NewAction("Dismiss", noop, ActionSettings{Style: ActionStyleCancel})
	if !styled.IsCancel() {
		t.Error("explicit cancel style not kept")
	}

	calls := 0
	styled = NewAction("Dismiss", func(*Action) { calls++ }, ActionSettings{Style: ActionStyleCancel})
	styled.Handle(2)
	if calls != 1 {
		t.Errorf("cancel-styled action with a handler ran it %d times, want 1", calls)
	}
}

func TestNewActionPanicsWithoutHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewAction with a nil handler did not panic")
		}
	}()

	NewAction("Broken", nil, ActionSettings{})
}

func TestActionStyleString(t *testing.T) {
	if got := ActionStyleDefault.String(); got != "default" {
		t.Errorf("ActionStyleDefault.String() = %q", got)
	}
	if got := ActionStyleCancel.String(); got != "cancel" {
		t.Errorf("ActionStyleCancel.String() = %q", got)
	}
}
