package tags

import "github.com/yohamta/donburi"

var (
	NPC    = donburi.NewTag().SetName("NPC")
	Vendor = donburi.NewTag().SetName("Vendor")
)

// Resolv tags for pointer hit-testing
const (
	ResolvNPC    = "npc"
	ResolvCursor = "cursor"
)
