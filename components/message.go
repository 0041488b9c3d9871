package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the active message
type MessageStateData struct {
	Text  string
	Hold  int          // Frames at full opacity before fading
	Fade  *gween.Tween // nil while holding or idle
	Alpha float32
}

var MessageState = donburi.NewComponentType[MessageStateData]()
