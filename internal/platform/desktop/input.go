package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flapper/internal/core"
)

// inputSource reports presses that happened since the previous tick.
type inputSource interface {
	KeyJustPressed(k ebiten.Key) bool
	MouseJustPressed(b ebiten.MouseButton) bool
}

// liveInput reads Ebitengine's input state.
type liveInput struct{}

func (liveInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (liveInput) MouseJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

var (
	jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}
	quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// collectInput builds this tick's input frame. The second result is true
// when a quit key was pressed.
func collectInput(src inputSource) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	for _, k := range quitKeys {
		if src.KeyJustPressed(k) {
			return frame, true
		}
	}

	if src.MouseJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionJump)
	}
	for _, k := range jumpKeys {
		if src.KeyJustPressed(k) {
			frame.Set(core.ActionJump)
		}
	}
	if src.KeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if src.KeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}

	return frame, false
}
