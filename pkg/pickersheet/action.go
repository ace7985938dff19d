package pickersheet

import "github.com/pawndev/pickersheet/pkg/pickersheet/internal"

// ActionStyle classifies an action for the host.
type ActionStyle int

const (
	ActionStyleDefault ActionStyle = iota // Regular button
	ActionStyleCancel                     // Fired when the sheet is dismissed by tapping the background
)

func (s ActionStyle) String() string {
	switch s {
	case ActionStyleCancel:
		return "cancel"
	default:
		return "default"
	}
}

// TitleFunc resolves an action's title for a positive selection count.
type TitleFunc func(count int) string

// Handler runs when an action is invoked with nothing selected.
type Handler func(action *Action)

// SecondaryHandler runs when an action is invoked with count images selected.
type SecondaryHandler func(action *Action, count int)

// ActionSettings holds the optional parts of an action.
type ActionSettings struct {
	// Title when at least one image is selected. Empty means same as title;
	// pass StaticTitle("") to NewActionWithTitleFunc for a blank label.
	SecondaryTitle string

	Style            ActionStyle      // Defaults to ActionStyleDefault
	Reset            bool             // Ask the host to clear the selection when the action is chosen
	SecondaryHandler SecondaryHandler // Handler when at least one image is selected (nil: handler)
}

// Action is a button on the picker sheet. It is immutable once built.
type Action struct {
	title            string
	secondaryTitle   TitleFunc
	style            ActionStyle
	reset            bool
	handler          Handler
	secondaryHandler SecondaryHandler
}

// StaticTitle returns a TitleFunc that ignores the count.
func StaticTitle(title string) TitleFunc {
	return func(int) string { return title }
}

// NewCancelAction creates the action fired when the sheet is dismissed.
// It has no handlers, so handling it does nothing.
func NewCancelAction(cancelTitle string) *Action {
	return &Action{
		title:          cancelTitle,
		secondaryTitle: StaticTitle(cancelTitle),
		style:          ActionStyleCancel,
	}
}

// NewAction creates an action with a fixed secondary title.
// The secondary title and handler are used when at least one image is selected
// and default to title and handler.
func NewAction(title string, handler Handler, settings ActionSettings) *Action {
	return NewActionWithTitleFunc(title, nil, handler, settings)
}

// NewActionWithTitleFunc creates an action whose secondary title is computed
// from the selection count, e.g. "Send 3 Photos". A nil secondary falls back to
// settings.SecondaryTitle and then to title. settings.SecondaryHandler defaults
// to calling handler.
//
// handler is required; passing nil panics.
func NewActionWithTitleFunc(title string, secondary TitleFunc, handler Handler, settings ActionSettings) *Action {
	if handler == nil {
		panic("pickersheet: action " + title + " has no handler")
	}

	if secondary == nil {
		secondary = StaticTitle(title)
		if settings.SecondaryTitle != "" {
			secondary = StaticTitle(settings.SecondaryTitle)
		}
	}

	secondaryHandler := settings.SecondaryHandler
	if secondaryHandler == nil {
		secondaryHandler = func(action *Action, _ int) {
			handler(action)
		}
	}

	return &Action{
		title:            title,
		secondaryTitle:   secondary,
		style:            settings.Style,
		reset:            settings.Reset,
		handler:          handler,
		secondaryHandler: secondaryHandler,
	}
}

// Title is the label shown with nothing selected.
func (a *Action) Title() string { return a.title }

func (a *Action) Style() ActionStyle { return a.style }

// Reset reports whether the host should clear the selection when this action is chosen.
func (a *Action) Reset() bool { return a.reset }

func (a *Action) IsCancel() bool { return a.style == ActionStyleCancel }

// ResolvedTitle returns the label to display for the given selection count.
func (a *Action) ResolvedTitle(count int) string {
	if count <= 0 {
		return a.title
	}
	return a.secondaryTitle(count)
}

// Handle invokes the action for the given selection count. Exactly one handler
// runs: the secondary one when count > 0, the primary one otherwise.
// Cancel actions have neither and do nothing.
func (a *Action) Handle(count int) {
	internal.GetInternalLogger().Debug("Handling action",
		"title", a.title,
		"style", a.style.String(),
		"count", count,
	)

	if count > 0 {
		if a.secondaryHandler != nil {
			a.secondaryHandler(a, count)
		}
		return
	}

	if a.handler != nil {
		a.handler(a)
	}
}
