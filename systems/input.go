package systems

import (
	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run before every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var frame [cfg.ActionCount]bool
	var keyboardUsed, mouseUsed, gamepadUsed bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				frame[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				frame[actionID] = true
				mouseUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					frame[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	x, y := ebiten.CursorPosition()
	if x != input.CursorX || y != input.CursorY {
		mouseUsed = true
	}

	applyInputFrame(input, frame, x, y)

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// applyInputFrame swaps the frame buffers, records the cursor and releases
// the lock of every action that is no longer pressed.
func applyInputFrame(input *components.InputData, frame [cfg.ActionCount]bool, cursorX, cursorY int) {
	input.Previous = input.Current
	input.Current = frame
	input.CursorX = cursorX
	input.CursorY = cursorY

	for id := range input.Lock {
		if !input.Current[id] {
			input.Lock[id] = false
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
		Locked:       input.Lock[id],
	}
}

// LockAction marks the action as consumed until it is released.
func LockAction(input *components.InputData, id cfg.ActionID) {
	input.Lock[id] = true
}

// inputAction adapts one action of the Input component to the action menu.
type inputAction struct {
	input *components.InputData
	id    cfg.ActionID
}

func (a inputAction) Pressing() bool { return a.input.Current[a.id] }
func (a inputAction) Locked() bool   { return a.input.Lock[a.id] }
func (a inputAction) Lock()          { LockAction(a.input, a.id) }
