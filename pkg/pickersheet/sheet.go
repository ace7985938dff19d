package pickersheet

import (
	"fmt"

	"github.com/pawndev/pickersheet/pkg/pickersheet/internal"
	"go.uber.org/atomic"
)

// SheetSettings configures a Sheet.
type SheetSettings struct {
	MaxSelection int // Maximum number of selected images, 0 for no limit
}

// Sheet is the headless state of an image picker sheet: the images on offer,
// the current selection and the actions below them. A UI drives it from its
// input loop and draws Titles() after every selection change.
//
// Selection state belongs to the UI goroutine. Only dismissal is safe to
// race, since a background tap and a button press may come from different
// input sources; whichever lands first wins.
type Sheet struct {
	items     []ImageItem
	index     map[string]int
	actions   []*Action
	settings  SheetSettings
	selected  []string
	dismissed *atomic.Bool
}

func NewSheet(items []ImageItem, actions []*Action, settings SheetSettings) *Sheet {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.ID] = i
	}

	return &Sheet{
		items:     items,
		index:     index,
		actions:   actions,
		settings:  settings,
		selected:  make([]string, 0),
		dismissed: atomic.NewBool(false),
	}
}

func (s *Sheet) Items() []ImageItem { return s.items }

func (s *Sheet) Actions() []*Action { return s.actions }

func (s *Sheet) Dismissed() bool { return s.dismissed.Load() }

func (s *Sheet) SelectionCount() int { return len(s.selected) }

// SelectedIDs returns a copy of the selection in the order images were selected.
func (s *Sheet) SelectedIDs() []string {
	ids := make([]string, len(s.selected))
	copy(ids, s.selected)
	return ids
}

func (s *Sheet) IsSelected(id string) bool {
	return s.position(id) >= 0
}

func (s *Sheet) position(id string) int {
	for i, selected := range s.selected {
		if selected == id {
			return i
		}
	}
	return -1
}

func (s *Sheet) checkItem(id string) error {
	if s.dismissed.Load() {
		return ErrSheetDismissed
	}
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return nil
}

// Select adds an image to the selection. Selecting an already selected image is a no-op.
func (s *Sheet) Select(id string) error {
	if err := s.checkItem(id); err != nil {
		return err
	}
	if s.IsSelected(id) {
		return nil
	}
	if s.settings.MaxSelection > 0 && len(s.selected) >= s.settings.MaxSelection {
		return fmt.Errorf("%w: %d", ErrSelectionLimit, s.settings.MaxSelection)
	}

	s.selected = append(s.selected, id)
	internal.GetInternalLogger().Debug("Image selected", "id", id, "count", len(s.selected))
	return nil
}

// Deselect removes an image from the selection. Deselecting an unselected image is a no-op.
func (s *Sheet) Deselect(id string) error {
	if err := s.checkItem(id); err != nil {
		return err
	}

	pos := s.position(id)
	if pos < 0 {
		return nil
	}

	s.selected = append(s.selected[:pos], s.selected[pos+1:]...)
	internal.GetInternalLogger().Debug("Image deselected", "id", id, "count", len(s.selected))
	return nil
}

func (s *Sheet) Toggle(id string) error {
	if s.IsSelected(id) {
		return s.Deselect(id)
	}
	return s.Select(id)
}

// ClearSelection deselects every image.
func (s *Sheet) ClearSelection() {
	s.selected = s.selected[:0]
}

// Titles returns every action's label for the current selection count, in action order.
func (s *Sheet) Titles() []string {
	count := s.SelectionCount()
	titles := make([]string, len(s.actions))
	for i, action := range s.actions {
		titles[i] = action.ResolvedTitle(count)
	}
	return titles
}

// CancelAction returns the first cancel-style action, or nil.
func (s *Sheet) CancelAction() *Action {
	for _, action := range s.actions {
		if action.IsCancel() {
			return action
		}
	}
	return nil
}

// Trigger handles an explicit tap on the action at index and closes the sheet.
// The handler receives the selection count at the time of the tap; a reset
// action clears the selection before its handler runs.
func (s *Sheet) Trigger(index int) (*SheetResult, error) {
	if index < 0 || index >= len(s.actions) {
		return nil, fmt.Errorf("%w: %d of %d", ErrActionIndex, index, len(s.actions))
	}
	if !s.dismissed.CompareAndSwap(false, true) {
		return nil, ErrSheetDismissed
	}

	return s.dispatch(s.actions[index], SheetDismissalTriggered), nil
}

// Dismiss closes the sheet as if the background was tapped, firing the cancel
// action if there is one. The result is returned together with ErrCancelled.
func (s *Sheet) Dismiss() (*SheetResult, error) {
	if !s.dismissed.CompareAndSwap(false, true) {
		return nil, ErrSheetDismissed
	}

	action := s.CancelAction()
	if action == nil {
		internal.GetInternalLogger().Debug("Sheet dismissed without a cancel action")
		return &SheetResult{
			Count:       s.SelectionCount(),
			SelectedIDs: s.SelectedIDs(),
			Dismissal:   SheetDismissalCancelled,
		}, ErrCancelled
	}

	return s.dispatch(action, SheetDismissalCancelled), ErrCancelled
}

func (s *Sheet) dispatch(action *Action, dismissal SheetDismissal) *SheetResult {
	count := s.SelectionCount()
	result := &SheetResult{
		Action:      action,
		Title:       action.ResolvedTitle(count),
		Count:       count,
		SelectedIDs: s.SelectedIDs(),
		Dismissal:   dismissal,
	}

	if action.Reset() {
		s.ClearSelection()
	}

	action.Handle(count)

	internal.GetInternalLogger().Debug("Sheet dismissed",
		"action", result.Title,
		"count", count,
		"reset", action.Reset(),
	)
	return result
}
