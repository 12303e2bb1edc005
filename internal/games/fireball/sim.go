package fireball

import (
	"fmt"

	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// step advances the session by one frame and reports whether the player was
// hit. Sub-steps run in a fixed order: player movement, hazard activation,
// hazard movement, collision. The frame counter is left to the caller.
func (s *Session) step(in core.InputFrame, launcher Launcher) bool {
	s.movePlayer(in)
	s.activateHazards(launcher)
	s.moveHazards()
	return s.collides()
}

// movePlayer applies each held direction in turn, clamping after each one.
// Opposing directions are not cancelled against each other.
func (s *Session) movePlayer(in core.InputFrame) {
	p := &s.Player
	speed := s.player.Speed
	maxX, maxY := s.arena.MaxX(p.W), s.arena.MaxY(p.H)

	if in.Has(core.ActionUp) {
		p.Y = core.Clamp(p.Y-speed, 0, maxY)
	}
	if in.Has(core.ActionDown) {
		p.Y = core.Clamp(p.Y+speed, 0, maxY)
	}
	if in.Has(core.ActionLeft) {
		p.X = core.Clamp(p.X-speed, 0, maxX)
	}
	if in.Has(core.ActionRight) {
		p.X = core.Clamp(p.X+speed, 0, maxX)
	}
}

// activateHazards brings hazard i live once the frame counter reaches its
// scheduled frame. Already active hazards are left alone.
func (s *Session) activateHazards(launcher Launcher) {
	for i := range s.Hazards {
		if s.Hazards[i].Active || s.Frame < s.ActivationFrame(i) {
			continue
		}
		s.activate(i, launcher)
	}
}

func (s *Session) activate(i int, launcher Launcher) {
	if i < 0 || i >= len(s.Hazards) {
		panic(fmt.Sprintf("fireball: activation index %d out of range [0, %d)", i, len(s.Hazards)))
	}
	vx, vy := launcher.Launch(i)
	if vx == 0 && vy == 0 {
		panic(fmt.Sprintf("fireball: launcher returned zero velocity for hazard %d", i))
	}

	h := &s.Hazards[i]
	h.VX, h.VY = vx, vy
	h.Active = true
	h.ActivatedAt = s.Frame
}

// moveHazards moves every live hazard, bouncing off the arena edges.
func (s *Session) moveHazards() {
	for i := range s.Hazards {
		h := &s.Hazards[i]
		if !h.Active {
			continue
		}
		h.X, h.VX = bounce(h.X, h.VX, s.arena.MaxX(h.W))
		h.Y, h.VY = bounce(h.Y, h.VY, s.arena.MaxY(h.H))
	}
}

// bounce moves pos by vel on one axis. If the move would leave [0, hi] the
// velocity flips and the move is made with the flipped velocity instead, so
// the hazard never pauses at a wall.
func bounce(pos, vel, hi int) (int, int) {
	if vel == 0 {
		return pos, vel
	}
	next := pos + vel
	if next < 0 || next > hi {
		vel = -vel
		next = pos + vel
	}
	if next < 0 || next > hi {
		panic(fmt.Sprintf("fireball: hazard at %d with speed %d escapes [0, %d]", pos, core.Abs(vel), hi))
	}
	return next, vel
}

// collides reports whether any live hazard overlaps the player.
func (s *Session) collides() bool {
	player := s.Player.Rect()
	for _, h := range s.Hazards {
		if h.Active && player.Intersects(h.Rect()) {
			return true
		}
	}
	return false
}
