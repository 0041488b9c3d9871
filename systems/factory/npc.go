package factory

import (
	"github.com/automoto/townfolk/archetypes"
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/npcdata"
	"github.com/automoto/townfolk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNPC spawns a townsperson and registers its hit box in space.
func CreateNPC(ecs *ecs.ECS, space *resolv.Space, spawn npcdata.Spawn) *donburi.Entry {
	var npc *donburi.Entry
	if spawn.Vendor {
		npc = archetypes.NPC.Spawn(ecs, tags.Vendor)
	} else {
		npc = archetypes.NPC.Spawn(ecs)
	}

	components.NPC.SetValue(npc, components.NPCData{
		Name:   spawn.Name,
		Vendor: spawn.Vendor,
		Nodes:  spawn.Nodes,
	})

	w, h := spawn.W, spawn.H
	if w <= 0 || h <= 0 {
		w, h = cfg.Town.DefaultNPCSize, cfg.Town.DefaultNPCSize
	}
	object := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvNPC)
	object.SetShape(resolv.NewRectangle(0, 0, w, h))
	object.Data = npc
	space.Add(object)
	components.Object.SetValue(npc, components.ObjectData{Object: object})

	return npc
}

// CreateTown spawns the resolv space and every NPC of town.
func CreateTown(ecs *ecs.ECS, town *npcdata.Town) *resolv.Space {
	width, height := town.MapWidth, town.MapHeight
	if width < cfg.C.Width {
		width = cfg.C.Width
	}
	if height < cfg.C.Height {
		height = cfg.C.Height
	}
	spaceEntry := CreateSpace(ecs, width, height, cfg.Town.CellSize, cfg.Town.CellSize)
	space := components.Space.Get(spaceEntry)

	for _, spawn := range town.NPCs {
		CreateNPC(ecs, space, spawn)
	}
	return space
}
