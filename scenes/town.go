package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/townfolk/assets"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/npcdata"
	"github.com/automoto/townfolk/systems"
	"github.com/automoto/townfolk/systems/factory"
	"github.com/automoto/townfolk/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TownScene shows the townsfolk of one town and lets the player talk to them
type TownScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	townName     string
	conversation *ui.ConversationUI
	once         sync.Once
}

// NewTownScene creates a scene for the named town. An empty name picks the
// configured default.
func NewTownScene(sc SceneChanger, townName string) *TownScene {
	if townName == "" {
		townName = cfg.Town.DefaultTown
	}
	return &TownScene{sceneChanger: sc, townName: townName}
}

func (ts *TownScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	ts.conversation.Conversation = systems.GetOrCreateConversation(ts.ecs)
	ts.conversation.Update()
}

func (ts *TownScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.conversation.Draw(screen)
}

func (ts *TownScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input first, then the overlays in front-to-back order so the topmost
	// consumer locks a click before anything behind it sees it.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateConversation)
	e.AddSystem(systems.UpdateActionMenu)
	e.AddSystem(systems.UpdateNPCSelection)
	e.AddSystem(systems.UpdateMessage)

	e.AddRenderer(cfg.Default, systems.DrawTown)
	e.AddRenderer(cfg.Default, systems.DrawNPCs)
	e.AddRenderer(cfg.Default, systems.DrawMessage)
	e.AddRenderer(cfg.Overlay, systems.DrawActionMenu)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ts.ecs = e

	towns, names, err := npcdata.LoadAllTowns(assets.FS, assets.TownsDir)
	if err != nil {
		panic("failed to load towns: " + err.Error())
	}
	town, ok := towns[ts.townName]
	if !ok {
		log.Printf("Warning: Unknown town %q, loading %q", ts.townName, names[0])
		town = towns[names[0]]
	}
	factory.CreateTown(ts.ecs, town)

	ts.conversation = ui.NewConversationUI(systems.GetOrCreateConversation(ts.ecs), func() {
		systems.CloseConversation(ts.ecs)
	})
}
