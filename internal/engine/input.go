package engine

import (
	"github.com/vovakirdan/fireball-dodge/internal/core"
	"github.com/vovakirdan/fireball-dodge/internal/games/fireball"
)

// InputSource reports which buttons are held. It is polled once per frame.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame {
	return f()
}

// Surface consumes one frame's draw intents.
type Surface interface {
	Draw(v fireball.View)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(v fireball.View)

// Draw calls f(v).
func (f SurfaceFunc) Draw(v fireball.View) {
	f(v)
}

// ScreenSurface renders into a cell buffer.
type ScreenSurface struct {
	Screen *core.Screen
}

// NewScreenSurface creates a surface backed by a width x height buffer.
func NewScreenSurface(width, height int) *ScreenSurface {
	return &ScreenSurface{Screen: core.NewScreen(width, height)}
}

// Draw renders v into the buffer.
func (s *ScreenSurface) Draw(v fireball.View) {
	fireball.RenderView(s.Screen, v)
}
