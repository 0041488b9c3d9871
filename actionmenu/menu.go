// Package actionmenu implements the popup menu listing what the player can do
// with an NPC: talk about one of its dialog topics, open its shop, or cancel.
package actionmenu

import (
	"image"
)

// PrimaryAction is the input source's view of the primary (click) action.
// The menu locks it when it consumes a click; the input source releases the
// lock once the action is no longer pressed.
type PrimaryAction interface {
	Pressing() bool
	Locked() bool
	Lock()
}

// Menu is the NPC action menu. It is driven once per frame by Tick and Draw.
type Menu struct {
	face       TextFace
	compositor Compositor
	viewWidth  int
	labels     Labels

	npc      NPC
	items    []Item
	hovered  int
	outcome  Outcome
	resolved bool
	visible  bool

	rect      image.Rectangle
	panelPlan Panel
	panel     Image
}

// New creates an empty, hidden menu centered on a viewport of viewWidth.
func New(face TextFace, compositor Compositor, viewWidth int, labels Labels) *Menu {
	return &Menu{
		face:       face,
		compositor: compositor,
		viewWidth:  viewWidth,
		labels:     labels,
		hovered:    -1,
	}
}

// SetLabels changes the fixed entry labels used by the next SetNPC.
func (m *Menu) SetLabels(labels Labels) {
	m.labels = labels
}

// SetNPC rebuilds the menu for npc. A nil npc clears and hides the menu.
// NPCs with a single obvious action resolve immediately without being shown.
func (m *Menu) SetNPC(npc NPC) {
	m.items = nil
	m.hovered = -1
	m.outcome = Outcome{}
	m.resolved = false
	m.visible = false
	m.rect = image.Rectangle{}
	m.panelPlan = Panel{}
	m.releasePanel()

	m.npc = npc
	if npc == nil {
		return
	}

	res := buildItems(npc, m.labels)
	m.items = res.items

	if o, ok := res.autoOutcome(); ok {
		m.outcome = o
		m.resolved = true
		return
	}

	m.layout()
	m.visible = true
}

// NPC returns the NPC the menu was last built for.
func (m *Menu) NPC() NPC { return m.npc }

// Tick hit-tests the cursor against the items, updates the highlight and
// resolves a click. It does nothing while hidden or while primary is locked.
func (m *Menu) Tick(cursor image.Point, primary PrimaryAction) {
	if !m.visible {
		return
	}
	if primary.Locked() {
		return
	}

	idx := m.itemAt(cursor)
	if idx < 0 {
		m.setHovered(-1)
		return
	}

	if m.items[idx].IsSeparator() {
		m.setHovered(-1)
	} else {
		m.setHovered(idx)
	}

	if !primary.Pressing() {
		return
	}
	primary.Lock()

	if m.items[idx].IsSeparator() {
		return
	}
	m.resolve(m.items[idx].Choice)
}

// Cancel resolves a visible, unresolved menu as cancelled.
func (m *Menu) Cancel() {
	if !m.visible || m.resolved {
		return
	}
	m.resolve(Cancel())
}

func (m *Menu) resolve(o Outcome) {
	m.outcome = o
	m.resolved = true
	m.visible = false
}

// itemAt returns the first item containing p, or -1.
func (m *Menu) itemAt(p image.Point) int {
	for i := range m.items {
		if p.In(m.items[i].Bounds) {
			return i
		}
	}
	return -1
}

func (m *Menu) setHovered(idx int) {
	if idx == m.hovered {
		return
	}
	m.hovered = idx
	m.layout()
}

// Draw blits the composed menu at its top-left corner when visible.
func (m *Menu) Draw(dst Target) {
	if !m.visible || m.panel == nil {
		return
	}
	dst.Blit(m.panel, m.rect.Min)
}

// Resolved reports whether an outcome has been chosen.
func (m *Menu) Resolved() bool { return m.resolved }

// Outcome returns the chosen outcome, the zero Outcome until resolved.
func (m *Menu) Outcome() Outcome { return m.outcome }

// Visible reports whether the menu is shown and accepting input.
func (m *Menu) Visible() bool { return m.visible }

// Hovered returns the index of the highlighted item, or -1.
func (m *Menu) Hovered() int { return m.hovered }

// Items returns the current items. The slice must not be modified.
func (m *Menu) Items() []Item { return m.items }

// Rect returns the menu rectangle in screen space.
func (m *Menu) Rect() image.Rectangle { return m.rect }

// Panel returns the composition plan of the current image.
func (m *Menu) Panel() Panel { return m.panelPlan }

// Image returns the composed menu image, nil when nothing was laid out.
func (m *Menu) Image() Image { return m.panel }
