package isobox

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudText builds the status overlay: level, selection state and, when
// enabled, the frame rates.
func (g *Game) hudText(fps, tps float64) string {
	w := g.world
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d/%d  %s\n", w.LevelNumber+1, g.levels.Count(), w.Level.Name)

	covered := 0
	for _, goal := range w.Boxes(RoleGoal) {
		if w.pushableOn(goal) != nil {
			covered++
		}
	}
	fmt.Fprintf(&b, "Goals %d/%d\n", covered, len(w.Boxes(RoleGoal)))

	switch sel := w.Selected(); {
	case sel == nil:
		b.WriteString("Click a red box\n")
	case w.Growing():
		fmt.Fprintf(&b, "Growing #%d %.3gx%.3g\n", sel.ID, sel.Size.X, sel.Size.Z)
	default:
		fmt.Fprintf(&b, "Idle #%d %.3gx%.3g\n", sel.ID, sel.Size.X, sel.Size.Z)
	}
	if h := g.Hover(); h != nil {
		fmt.Fprintf(&b, "Hover #%d %s\n", h.ID, h.Role)
	}
	b.WriteString("Drag: orbit  R: restart  Home: reset view\n")
	if g.showFPS {
		fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	}
	return b.String()
}

// drawHUD prints the status overlay in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.hudText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}
