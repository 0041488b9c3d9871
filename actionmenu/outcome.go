package actionmenu

import (
	"fmt"
	"strconv"
	"strings"
)

// OutcomeKind identifies which action the player chose
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeDialog
	OutcomeVendor
	OutcomeCancel
)

// Identifier tags for selectable items.
const (
	DialogPrefix = "dialog:"
	VendorID     = "vendor"
	CancelID     = "cancel"
)

// Outcome is the result of the menu. Node is only meaningful for OutcomeDialog.
type Outcome struct {
	Kind OutcomeKind
	Node int
}

func Dialog(node int) Outcome { return Outcome{Kind: OutcomeDialog, Node: node} }
func Vendor() Outcome         { return Outcome{Kind: OutcomeVendor} }
func Cancel() Outcome         { return Outcome{Kind: OutcomeCancel} }

// ID returns the stable identifier of the outcome, "" for OutcomeNone.
func (o Outcome) ID() string {
	switch o.Kind {
	case OutcomeDialog:
		return DialogPrefix + strconv.Itoa(o.Node)
	case OutcomeVendor:
		return VendorID
	case OutcomeCancel:
		return CancelID
	}
	return ""
}

func (o Outcome) String() string {
	if o.Kind == OutcomeNone {
		return "none"
	}
	return o.ID()
}

// ParseIdentifier converts an identifier produced by Outcome.ID back into an
// Outcome. The empty identifier maps to the zero Outcome.
func ParseIdentifier(id string) (Outcome, error) {
	switch {
	case id == "":
		return Outcome{}, nil
	case id == VendorID:
		return Vendor(), nil
	case id == CancelID:
		return Cancel(), nil
	case strings.HasPrefix(id, DialogPrefix):
		node, err := strconv.Atoi(strings.TrimPrefix(id, DialogPrefix))
		if err != nil {
			return Outcome{}, fmt.Errorf("dialog identifier %q: %w", id, err)
		}
		return Dialog(node), nil
	}
	return Outcome{}, fmt.Errorf("unknown identifier %q", id)
}

// MustParseIdentifier is ParseIdentifier for identifiers the caller built
// itself. A malformed identifier is a programming error.
func MustParseIdentifier(id string) Outcome {
	o, err := ParseIdentifier(id)
	if err != nil {
		panic(err)
	}
	return o
}
