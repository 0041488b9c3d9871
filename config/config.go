package config

import "image/color"

// ActionMenuConfig contains NPC action menu layout and color values
type ActionMenuConfig struct {
	// Layout (pixels)
	Border          int // Padding around the item column on every side
	ItemSpacing     int // Gap added above and below every item
	SeparatorHeight int // Thickness of a separator row
	TopOffset       int // Distance from the top of the screen

	// Colors
	BackgroundColor    color.RGBA // Semi-transparent panel behind the items
	TextColorNormal    color.RGBA
	TextColorHighlight color.RGBA
}

// TownConfig contains town scene rendering values
type TownConfig struct {
	BackgroundColor color.RGBA
	NPCColor        color.RGBA
	NPCHoverColor   color.RGBA
	VendorColor     color.RGBA
	NameColor       color.RGBA
	NameOffsetY     float64 // Name label distance above the NPC box
	DefaultNPCSize  float64 // Used when a TMX object has no width/height
	CellSize        int     // resolv space cell size
	DefaultTown     string  // Stem of the town loaded on start
}

// MessageConfig contains message popup configuration
type MessageConfig struct {
	BoxPadding     float64    // Padding inside message box
	BoxColor       color.RGBA // Semi-transparent background color
	TextColor      color.RGBA // Text color
	BottomMargin   float64    // Distance from bottom of screen
	FadeSeconds    float32    // Fade-out duration
	HoldSeconds    float32    // Time at full opacity before fading
	TicksPerSecond float32
}

// ConversationConfig contains conversation/shop panel configuration
type ConversationConfig struct {
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonTextColor color.RGBA
	TitleFontSize   float64
	TextFontSize    float64
	MinWidth        int
}

// JournalConfig contains journal persistence limits
type JournalConfig struct {
	MaxEntries int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Language   string // Overrides the saved language when non-empty
	Town       string // Overrides Town.DefaultTown when non-empty
	Fullscreen bool
	ShowBounds bool // Outline NPC hit boxes
}

// Global configuration instances
var C *Config
var ActionMenu ActionMenuConfig
var Town TownConfig
var Message MessageConfig
var Conversation ConversationConfig
var Journal JournalConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGrey    = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	ActionMenu = ActionMenuConfig{
		Border:             8,
		ItemSpacing:        2,
		SeparatorHeight:    2,
		TopOffset:          40,
		BackgroundColor:    color.RGBA{R: 0, G: 0, B: 0, A: 0xd0},
		TextColorNormal:    LightGrey,
		TextColorHighlight: White,
	}

	Town = TownConfig{
		BackgroundColor: color.RGBA{R: 34, G: 52, B: 38, A: 255},
		NPCColor:        DarkBlue,
		NPCHoverColor:   LightBlue,
		VendorColor:     Orange,
		NameColor:       White,
		NameOffsetY:     4,
		DefaultNPCSize:  24,
		CellSize:        16,
		DefaultTown:     "harbor",
	}

	Message = MessageConfig{
		BoxPadding:     6,
		BoxColor:       BlackOverlay,
		TextColor:      BrightYellow,
		BottomMargin:   40,
		FadeSeconds:    0.75,
		HoldSeconds:    1.5,
		TicksPerSecond: 60,
	}

	Conversation = ConversationConfig{
		PanelColor:      color.RGBA{R: 20, G: 20, B: 30, A: 235},
		TitleColor:      White,
		TextColor:       LightGrey,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonTextColor: White,
		TitleFontSize:   18,
		TextFontSize:    12,
		MinWidth:        260,
	}

	Journal = JournalConfig{
		MaxEntries: 50,
	}

	Debug = DebugConfig{}
}
