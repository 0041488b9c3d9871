package actionmenu

import "image"

// Item is one row of the menu: either a separator or a selectable action.
// Separators have no label and resolve to nothing.
type Item struct {
	Label  string
	Choice Outcome
	Bounds image.Rectangle // Screen space, recomputed on every layout
}

// Separator returns a non-interactive spacer row.
func Separator() Item {
	return Item{}
}

// ActionItem returns a selectable row resolving to choice.
func ActionItem(label string, choice Outcome) Item {
	return Item{Label: label, Choice: choice}
}

// IsSeparator reports whether the item is a spacer row.
func (it Item) IsSeparator() bool {
	return it.Choice.Kind == OutcomeNone
}

// ID returns the stable identifier of the item, "" for separators.
func (it Item) ID() string {
	return it.Choice.ID()
}
