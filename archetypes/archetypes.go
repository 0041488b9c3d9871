package archetypes

import (
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	NPC = newArchetype(
		tags.NPC,
		components.NPC,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	ActionMenu = newArchetype(
		components.ActionMenu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
