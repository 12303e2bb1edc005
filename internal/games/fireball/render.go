package fireball

import (
	"fmt"

	"github.com/vovakirdan/fireball-dodge/internal/config"
	"github.com/vovakirdan/fireball-dodge/internal/core"
)

// FrameRate is the refresh rate tier thresholds are expressed in.
const FrameRate = 60

// Visual characters for rendering
const (
	PlayerChar = '█'
	HazardChar = '●'
)

// Minimum playfield size in cells; smaller terminals get a notice instead.
const (
	minFieldW = 24
	minFieldH = 8
)

// RenderView draws a view into the screen buffer. The arena is scaled to fit
// the area below the HUD row, inside a border.
func RenderView(dst *core.Screen, v View) {
	dst.Clear()

	field := core.NewRect(1, 2, dst.Width()-2, dst.Height()-3)
	if field.W < minFieldW || field.H < minFieldH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	drawHUD(dst, v)
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorGray)

	if v.HasSession {
		for i, h := range v.Hazards {
			color := core.ColorRed
			if i%2 == 1 {
				color = core.ColorOrange
			}
			dst.DrawRect(project(h, v.Arena, field), core.Cell{Rune: HazardChar, Color: color})
		}
		dst.DrawRect(project(v.Player, v.Arena, field), core.Cell{Rune: PlayerChar, Color: core.ColorBrightYellow})
	}

	switch v.Phase {
	case PhaseStart:
		drawStartMenu(dst, v)
	case PhaseWon:
		drawCenteredMessage(dst, "YOU SURVIVED", fmt.Sprintf("%s cleared in %s  |  Esc to return", tierTitle(v.Difficulty), seconds(v.Frame)), core.ColorGreen)
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Hit after %s  |  Esc to return", seconds(v.Frame)), core.ColorBrightRed)
	}
}

// project maps an arena rectangle to screen cells. Every visible box covers
// at least one cell.
func project(r, arena, field core.Rect) core.Rect {
	x0 := r.X * field.W / arena.W
	y0 := r.Y * field.H / arena.H
	x1 := max((r.Right()*field.W+arena.W-1)/arena.W, x0+1)
	y1 := max((r.Bottom()*field.H+arena.H-1)/arena.H, y0+1)
	return core.NewRect(field.X+x0, field.Y+y0, x1-x0, y1-y0)
}

func drawHUD(dst *core.Screen, v View) {
	if !v.HasSession {
		dst.DrawText(2, 0, " FIREBALL DODGE ", core.ColorBrightYellow)
		return
	}

	left := fmt.Sprintf(" %s  %s / %s ", tierTitle(v.Difficulty), seconds(v.Frame), seconds(v.Threshold))
	dst.DrawText(2, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" Fireballs %d/%d ", len(v.Hazards), v.TotalHazards)
	dst.DrawText(dst.Width()-len(right)-2, 0, right, core.ColorOrange)
}

func drawStartMenu(dst *core.Screen, v View) {
	lines := []string{"F I R E B A L L   D O D G E", ""}
	for i, d := range config.Difficulties() {
		t := v.Tiers.Get(d)
		lines = append(lines, fmt.Sprintf("[%d] %-6s  %d fireballs, survive %s", i+1, tierTitle(d), t.Hazards, seconds(t.SurvivalFrames)))
	}
	lines = append(lines, "", "Arrows/WASD move  Esc menu  Q quit")

	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(top+i, line, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, color)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, color)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

func tierTitle(d config.Difficulty) string {
	switch d {
	case config.DifficultyMedium:
		return "Medium"
	case config.DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

func seconds(frames int) string {
	return fmt.Sprintf("%.1fs", float64(frames)/FrameRate)
}
