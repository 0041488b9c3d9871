package systems

import (
	"image"
	"log"

	"github.com/automoto/townfolk/actionmenu"
	"github.com/automoto/townfolk/archetypes"
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/fonts"
	"github.com/automoto/townfolk/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// newMenuCompositor builds the compositor of the action menu panel.
var newMenuCompositor = func(face font.Face) actionmenu.Compositor {
	return actionmenu.NewEbitenCompositor(face)
}

// UpdateActionMenu feeds the cursor and primary action to the open menu,
// handles the back action and dispatches a resolved outcome exactly once.
func UpdateActionMenu(e *ecs.ECS) {
	state := GetOrCreateActionMenu(e)
	if state.Target == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		state.Menu.Cancel()
	}

	cursor := image.Pt(input.CursorX, input.CursorY)
	state.Menu.Tick(cursor, inputAction{input: input, id: cfg.ActionPrimary})

	if state.Menu.Resolved() {
		dispatchOutcome(e, state)
	}
}

// OpenActionMenu builds the menu for npc. NPCs with a single obvious action
// are dispatched on the spot.
func OpenActionMenu(e *ecs.ECS, npc *donburi.Entry) {
	state := GetOrCreateActionMenu(e)
	state.Target = npc
	state.Menu.SetLabels(menuLabels())
	state.Menu.SetNPC(components.NPC.Get(npc))

	if state.Menu.Resolved() {
		dispatchOutcome(e, state)
	}
}

// CloseActionMenu discards the menu without an outcome.
func CloseActionMenu(e *ecs.ECS) {
	state := GetOrCreateActionMenu(e)
	state.Target = nil
	state.Menu.SetNPC(nil)
}

func dispatchOutcome(e *ecs.ECS, state *components.ActionMenuData) {
	outcome := state.Menu.Outcome()
	target := state.Target
	CloseActionMenu(e)

	if target == nil || !target.Valid() {
		return
	}
	npc := components.NPC.Get(target)
	RecordJournal(npc.Name, outcome)

	switch outcome.Kind {
	case actionmenu.OutcomeDialog:
		OpenConversation(e, npc.Name, npc.DialogTopic(outcome.Node), outcome.Node)
	case actionmenu.OutcomeVendor:
		OpenShop(e, npc.Name)
	case actionmenu.OutcomeCancel:
		ShowMessage(e, i18n.Localize(i18n.Farewell, map[string]interface{}{"Name": npc.Name}))
	default:
		log.Printf("Warning: unhandled action menu outcome %v for %s", outcome, npc.Name)
	}
}

func menuLabels() actionmenu.Labels {
	return actionmenu.Labels{
		Shop:   i18n.T(i18n.MenuShop),
		Cancel: i18n.T(i18n.MenuCancel),
	}
}

// DrawActionMenu blits the open menu onto the screen
func DrawActionMenu(e *ecs.ECS, screen *ebiten.Image) {
	state := GetOrCreateActionMenu(e)
	state.Menu.Draw(actionmenu.EbitenTarget{Screen: screen})
}

// IsActionMenuOpen reports whether the menu is currently shown
func IsActionMenuOpen(e *ecs.ECS) bool {
	entry, ok := components.ActionMenu.First(e.World)
	if !ok {
		return false
	}
	return components.ActionMenu.Get(entry).Menu.Visible()
}

// GetOrCreateActionMenu returns the singleton ActionMenu component, creating if needed
func GetOrCreateActionMenu(e *ecs.ECS) *components.ActionMenuData {
	if _, ok := components.ActionMenu.First(e.World); !ok {
		face := fonts.Menu.Get()
		menu := actionmenu.New(
			actionmenu.FontFace{Face: face},
			newMenuCompositor(face),
			cfg.C.Width,
			menuLabels(),
		)
		ent := archetypes.ActionMenu.Spawn(e)
		components.ActionMenu.SetValue(ent, components.ActionMenuData{Menu: menu})
	}

	ent, _ := components.ActionMenu.First(e.World)
	return components.ActionMenu.Get(ent)
}
