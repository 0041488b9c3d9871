package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/fonts"
	"github.com/automoto/townfolk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit box and the action menu rows when bounds
// debugging is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBounds {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvNPC) {
				c = cfg.Yellow
			}
			strokeBox(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	menu := GetOrCreateActionMenu(ecs).Menu
	if menu.Visible() {
		for i, it := range menu.Items() {
			c := color.RGBA{0, 255, 0, 255} // Green
			if it.IsSeparator() {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if i == menu.Hovered() {
				c = cfg.White
			}
			r := it.Bounds
			strokeBox(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
		}
	}

	input := getOrCreateInput(ecs)
	info := fmt.Sprintf("%d,%d hover=%d journal=%d", input.CursorX, input.CursorY, menu.Hovered(), len(Journal()))
	text.Draw(screen, info, fonts.Label.Get(), 4, 12, cfg.Yellow)
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
