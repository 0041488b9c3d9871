package systems

import (
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/fonts"
	"github.com/automoto/townfolk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNPCSelection opens the action menu for the NPC under the cursor when
// the primary action is pressed. Runs after UpdateActionMenu so a click that
// resolves the menu is already locked.
func UpdateNPCSelection(e *ecs.ECS) {
	if IsConversationOpen(e) {
		return
	}
	menu := GetOrCreateActionMenu(e)
	if menu.Menu.Visible() {
		return
	}

	input := getOrCreateInput(e)
	primary := GetAction(input, cfg.ActionPrimary)
	if !primary.JustPressed || primary.Locked {
		return
	}

	npc := NPCAt(e, float64(input.CursorX), float64(input.CursorY))
	if npc == nil {
		return
	}
	LockAction(input, cfg.ActionPrimary)
	OpenActionMenu(e, npc)
}

// NPCAt returns the NPC whose hit box contains the point, or nil.
func NPCAt(e *ecs.ECS, x, y float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvNPC)
	if collision == nil {
		return nil
	}

	// The broadphase reports objects sharing a cell, confirm the point is
	// inside the box itself.
	for _, obj := range collision.Objects {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

// DrawNPCs renders every NPC box with its name above it
func DrawNPCs(e *ecs.ECS, screen *ebiten.Image) {
	input := getOrCreateInput(e)
	hovered := NPCAt(e, float64(input.CursorX), float64(input.CursorY))
	labelFont := fonts.Label.Get()

	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		npc := components.NPC.Get(entry)
		obj := components.Object.Get(entry)

		fill := cfg.Town.NPCColor
		if npc.Vendor {
			fill = cfg.Town.VendorColor
		}
		if hovered != nil && hovered.Entity() == entry.Entity() {
			fill = cfg.Town.NPCHoverColor
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), fill, false)

		bounds := text.BoundString(labelFont, npc.Name) //nolint:staticcheck // TODO: migrate to text/v2
		x := int(obj.X+obj.W/2) - bounds.Dx()/2
		y := int(obj.Y - cfg.Town.NameOffsetY)
		text.Draw(screen, npc.Name, labelFont, x, y, cfg.Town.NameColor)
	})
}

// DrawTown clears the screen to the town background color
func DrawTown(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Town.BackgroundColor)
}
