package pickersheet

import "errors"

var (
	// ErrCancelled indicates the sheet was dismissed without choosing an action.
	ErrCancelled = errors.New("sheet dismissed by user")

	ErrSheetDismissed = errors.New("sheet already dismissed")
	ErrActionIndex    = errors.New("action index out of range")
	ErrUnknownItem    = errors.New("unknown image item")
	ErrSelectionLimit = errors.New("selection limit reached")
)

// IsCancelled checks if an error indicates the user dismissed the sheet.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
