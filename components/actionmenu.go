package components

import (
	"github.com/automoto/townfolk/actionmenu"
	"github.com/yohamta/donburi"
)

// ActionMenuData is the singleton holding the NPC action menu and the NPC
// entity it was opened for.
type ActionMenuData struct {
	Menu   *actionmenu.Menu
	Target *donburi.Entry // nil when no NPC is active
}

var ActionMenu = donburi.NewComponentType[ActionMenuData]()
