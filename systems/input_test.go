package systems

import (
	"testing"

	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/components"
	"github.com/stretchr/testify/assert"
)

func pressed(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var frame [cfg.ActionCount]bool
	for _, id := range ids {
		frame[id] = true
	}
	return frame
}

func TestApplyInputFrameEdges(t *testing.T) {
	input := &components.InputData{}

	applyInputFrame(input, pressed(cfg.ActionPrimary), 10, 20)
	state := GetAction(input, cfg.ActionPrimary)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)
	assert.False(t, state.JustReleased)
	assert.Equal(t, 10, input.CursorX)
	assert.Equal(t, 20, input.CursorY)

	applyInputFrame(input, pressed(cfg.ActionPrimary), 11, 20)
	state = GetAction(input, cfg.ActionPrimary)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	applyInputFrame(input, pressed(), 11, 20)
	state = GetAction(input, cfg.ActionPrimary)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}

func TestLockHoldsUntilRelease(t *testing.T) {
	input := &components.InputData{}

	applyInputFrame(input, pressed(cfg.ActionPrimary), 0, 0)
	LockAction(input, cfg.ActionPrimary)
	assert.True(t, GetAction(input, cfg.ActionPrimary).Locked)

	applyInputFrame(input, pressed(cfg.ActionPrimary), 0, 0)
	assert.True(t, GetAction(input, cfg.ActionPrimary).Locked, "still held")

	applyInputFrame(input, pressed(), 0, 0)
	assert.False(t, GetAction(input, cfg.ActionPrimary).Locked, "released")
}

func TestInputActionAdapter(t *testing.T) {
	input := &components.InputData{}
	action := inputAction{input: input, id: cfg.ActionPrimary}

	assert.False(t, action.Pressing())
	applyInputFrame(input, pressed(cfg.ActionPrimary), 0, 0)
	assert.True(t, action.Pressing())
	assert.False(t, action.Locked())

	action.Lock()
	assert.True(t, action.Locked())
	assert.False(t, input.Lock[cfg.ActionMenuBack])
}
