package systems

import (
	"log"

	cfg "github.com/automoto/townfolk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global settings shortcuts
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		return
	}
	LockAction(input, cfg.ActionToggleFullscreen)
	toggleFullscreen()
}

// toggleFullscreen toggles fullscreen mode and saves the choice
func toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	if err := SaveSettings(CurrentSettings()); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
