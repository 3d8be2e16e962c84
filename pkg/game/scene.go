package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen state of the application (e.g. the park).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is already clamped by the caller.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Restartable 是一个可选接口，支持在不重建场景的情况下重新开局
type Restartable interface {
	Restart()
}

// Resizable 是一个可选接口，窗口尺寸变化时重新布局
type Resizable interface {
	Resize(width, height float64)
}
