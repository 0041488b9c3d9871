package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/townfolk/assets"
	"github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/fonts"
	"github.com/automoto/townfolk/i18n"
	"github.com/automoto/townfolk/scenes"
	"github.com/automoto/townfolk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTownScene(g, config.Debug.Town)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.Language, "lang", "", "Language code, overrides the saved language")
	flag.StringVar(&config.Debug.Town, "town", "", "Town to load (default "+config.Town.DefaultTown+")")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", false, "Start in fullscreen")
	flag.BoolVar(&config.Debug.ShowBounds, "bounds", false, "Outline NPC hit boxes")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := i18n.LoadFS(assets.FS, assets.LocalesDir); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Townfolk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if config.Debug.Language != "" {
		if err := i18n.SetLanguage(config.Debug.Language); err != nil {
			log.Printf("Warning: Unknown language %q: %v", config.Debug.Language, err)
		}
	}
	if config.Debug.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
