package fireball

import "github.com/vovakirdan/fireball-dodge/internal/core"

// Player is the box the user steers. Its position is kept inside the arena
// by the movement rules.
type Player struct {
	X, Y int
	W, H int
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hazard is a fireball. Inactive hazards do not move, collide or render.
type Hazard struct {
	X, Y   int
	W, H   int
	VX, VY int // Velocity in pixels per frame
	Active bool
	// ActivatedAt is the frame the hazard went live, -1 while inactive.
	ActivatedAt int
}

// Rect returns the hazard's collision box.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}
