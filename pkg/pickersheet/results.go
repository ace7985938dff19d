package pickersheet

// ImageItem is a selectable image shown in the sheet's preview strip.
type ImageItem struct {
	ID       string
	Filename string
	Metadata interface{} // Application-specific data attached to the item
}

// SheetDismissal describes how the sheet was closed.
type SheetDismissal int

const (
	SheetDismissalTriggered SheetDismissal = iota // User tapped an action
	SheetDismissalCancelled                       // User tapped the background
)

// SheetResult is returned when the sheet closes.
type SheetResult struct {
	Action      *Action        // The action that was handled, nil if a cancelled sheet had no cancel action
	Title       string         // Title the action showed when it was chosen
	Count       int            // Selection count passed to the handler
	SelectedIDs []string       // Selection at the time the action was chosen, in selection order
	Dismissal   SheetDismissal
}
