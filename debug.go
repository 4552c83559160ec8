package isobox

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing and drawable counts.
// Only populated when Game.debug is true.
type debugStats struct {
	inputTime   time.Duration
	projectTime time.Duration
	drawTime    time.Duration
	physicsTime time.Duration
	eventCount  int
	boxCount    int
	drawables   int
}

// debugLog prints timing and drawable stats to stderr.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	total := stats.inputTime + stats.projectTime + stats.drawTime + stats.physicsTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[isobox] input: %v | sort+project: %v | draw list: %v | physics: %v | total: %v\n",
		stats.inputTime, stats.projectTime, stats.drawTime, stats.physicsTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[isobox] events: %d | boxes: %d | drawables: %d\n",
		stats.eventCount, stats.boxCount, stats.drawables)
}

// logf writes an always-on diagnostic line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[isobox] "+format+"\n", args...)
}

// debugCheckWorld warns on stderr when the world breaks one of its
// structural guarantees. Only called in debug mode.
func debugCheckWorld(w *World) {
	if got, want := len(w.RenderOrder), len(w.all)+1; got != want {
		logf("warning: render order holds %d boxes, want %d", got, want)
	}
	for _, b := range w.all {
		for _, a := range growthAxes {
			s := b.Size.Axis(a)
			if s < w.tuning.UnitSize || s > w.tuning.MaxSize {
				logf("warning: box %d %s size %v outside [%v, %v]", b.ID, a, s, w.tuning.UnitSize, w.tuning.MaxSize)
			}
		}
	}
	if w.selected != 0 && w.Selected() == nil {
		logf("warning: selected id %d does not resolve", w.selected)
	}
}
