package systems

import (
	"image/color"

	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// ShowMessage displays text at the bottom of the screen, replacing any
// message already shown
func ShowMessage(e *ecs.ECS, text string) {
	state := getOrCreateMessageState(e)
	state.Text = text
	state.Alpha = 1
	state.Hold = int(cfg.Message.HoldSeconds * cfg.Message.TicksPerSecond)
	state.Fade = nil
}

// UpdateMessage holds the message at full opacity, then fades it out
func UpdateMessage(e *ecs.ECS) {
	state := getOrCreateMessageState(e)
	if state.Text == "" {
		return
	}

	if state.Hold > 0 {
		state.Hold--
		if state.Hold == 0 {
			state.Fade = gween.New(1, 0, cfg.Message.FadeSeconds, ease.OutQuad)
		}
		return
	}
	if state.Fade == nil {
		state.Fade = gween.New(1, 0, cfg.Message.FadeSeconds, ease.OutQuad)
	}

	alpha, finished := state.Fade.Update(1 / cfg.Message.TicksPerSecond)
	state.Alpha = alpha
	if finished {
		ResetMessageState(e)
	}
}

// DrawMessage renders the active message centered near the bottom of the screen
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(e)
	if state.Text == "" || state.Alpha <= 0 {
		return
	}

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Message.Get()
	}

	// Measure text
	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	// Calculate box dimensions
	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	screenHeight := float64(screen.Bounds().Dy())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(screenHeight-cfg.Message.BottomMargin) - boxHeight

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, fadeColor(cfg.Message.BoxColor, state.Alpha), false)

	textColor := fadeColor(cfg.Message.TextColor, state.Alpha)
	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, textColor)
}

// fadeColor returns c with its opacity scaled by alpha.
func fadeColor(c color.RGBA, alpha float32) color.NRGBA {
	if c.A == 0 {
		return color.NRGBA{}
	}
	// un-premultiply before scaling alpha
	return color.NRGBA{
		R: uint8(uint32(c.R) * 255 / uint32(c.A)),
		G: uint8(uint32(c.G) * 255 / uint32(c.A)),
		B: uint8(uint32(c.B) * 255 / uint32(c.A)),
		A: uint8(float32(c.A) * alpha),
	}
}

// ResetMessageState clears the active message
func ResetMessageState(e *ecs.ECS) {
	state := getOrCreateMessageState(e)
	state.Text = ""
	state.Hold = 0
	state.Fade = nil
	state.Alpha = 0
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(e *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
