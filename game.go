package isobox

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game owns the world of the current level and sequences input, simulation
// and drawing. It implements ebiten.Game.
//
// Everything runs on the goroutine that calls Update: pointer samples are
// turned into InputEvents, queued, and applied at the start of the next
// Tick, so no callback ever runs concurrently with the simulation.
type Game struct {
	// Session identifies this game in logs, events and recordings.
	Session string

	tuning Tuning
	levels LevelSource
	world  *World

	width, height int

	// surface receives the drawables; canvas is set when surface is an
	// *EbitenSurface that Draw can render.
	surface Surface
	canvas  *EbitenSurface
	draw    *drawList

	// live is set by Run. When false the game never touches ebiten input,
	// which lets tests drive it purely through injected events.
	live bool

	pointer     pointerState
	events      []InputEvent
	injectQueue []syntheticPointerEvent
	hover       BoxID

	testRunner      *TestRunner
	recorder        *Recorder
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	handlers handlerRegistry
	store    EntityStore

	debug   bool
	showHUD bool
	showFPS bool
	ticks   int
	cleared int
}

// NewGame creates a game on level 0 of levels. surface may be nil, in which
// case nothing is drawn; width and height set the projection center.
func NewGame(levels LevelSource, tuning Tuning, surface Surface, width, height int) (*Game, error) {
	if levels == nil || levels.Count() == 0 {
		return nil, fmt.Errorf("new game: %w", ErrLevelNotFound)
	}
	g := &Game{
		Session:       uuid.NewString(),
		tuning:        tuning.withDefaults(),
		levels:        levels,
		width:         width,
		height:        height,
		surface:       surface,
		ScreenshotDir: "screenshots",
		showHUD:       true,
	}
	if surface != nil {
		g.draw = newDrawList(surface)
		g.canvas, _ = surface.(*EbitenSurface)
	}
	if err := g.loadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

// World returns the world of the current level.
func (g *Game) World() *World {
	return g.world
}

// Ticks returns the number of ticks run on the current level.
func (g *Game) Ticks() int {
	return g.ticks
}

// Cleared returns the number of levels completed since the game started.
func (g *Game) Cleared() int {
	return g.cleared
}

// Hover returns the box under the pointer as of the last tick, or nil.
func (g *Game) Hover() *Box {
	return g.world.Box(g.hover)
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// stats and world consistency warnings are logged to stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// SetHUDVisible shows or hides the status overlay.
func (g *Game) SetHUDVisible(visible bool) {
	g.showHUD = visible
}

func (g *Game) screenCenter() Vec2 {
	return Vec2{X: float64(g.width) / 2, Y: float64(g.height) / 2}
}

// loadLevel tears down the current level and builds level index.
func (g *Game) loadLevel(index int) error {
	level, err := g.levels.Level(index)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	if g.draw != nil {
		g.draw.clear()
	}
	g.world = NewWorld(level, index, g.tuning, g.screenCenter())
	g.events = g.events[:0]
	g.pointer.dragging = false
	g.pointer.stale = g.pointer.down
	g.hover = 0
	g.ticks = 0
	logf("session %s: level %d %q: %d boxes", g.Session, index, level.Name, len(g.world.AllBoxes()))
	return nil
}

// Restart rebuilds the current level from its source.
func (g *Game) Restart() {
	if err := g.loadLevel(g.world.LevelNumber); err != nil {
		logf("restart: %v", err)
	}
}

// advance loads the level after the current one, wrapping to the first
// level after the last.
func (g *Game) advance() {
	next := g.world.LevelNumber + 1
	if next >= g.levels.Count() {
		logf("all %d levels cleared, starting over", g.levels.Count())
		next = 0
	}
	if err := g.loadLevel(next); err != nil {
		logf("advance: %v", err)
	}
}

// Update implements ebiten.Game: it steps the test runner, reads input and
// runs one tick.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInput()
	if g.recorder != nil {
		g.recorder.endFrame()
	}
	g.Tick()
	return nil
}

// Tick applies queued input and advances the simulation by one tick. On a
// win it fires OnLevelComplete and loads the next level.
func (g *Game) Tick() {
	var stats debugStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
		stats.eventCount = len(g.events)
	}

	w := g.world
	for _, e := range g.events {
		if b := w.HandleInput(e); b != nil {
			g.emit(g.event(EventSelect, b.ID))
		}
	}
	g.events = g.events[:0]

	if g.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	dt := 1 / float32(g.tuning.TPS)
	w.Step(dt, func() {
		if g.debug {
			stats.projectTime = time.Since(t0)
			t0 = time.Now()
		}
		if g.draw != nil {
			g.draw.rebuild(w.RenderOrder, w.Angles)
			g.hover = g.draw.pick(g.pointer.lastX, g.pointer.lastY, w.Base.ID)
		}
		if g.debug {
			stats.drawTime = time.Since(t0)
			t0 = time.Now()
		}
	})
	g.ticks++

	if g.debug {
		stats.physicsTime = time.Since(t0)
		stats.boxCount = len(w.RenderOrder)
		if g.draw != nil {
			stats.drawables = g.draw.count()
		}
		debugCheckWorld(w)
		g.debugLog(stats)
	}

	if w.Won() {
		g.cleared++
		logf("level %d %q complete in %d ticks", w.LevelNumber, w.Level.Name, g.ticks)
		g.emit(g.event(EventLevelComplete, 0))
		g.advance()
	}
}

func (g *Game) event(t EventType, box BoxID) GameEvent {
	return GameEvent{
		Type:      t,
		Session:   g.Session,
		Level:     g.world.LevelNumber,
		LevelName: g.world.Level.Name,
		Box:       box,
		Tick:      g.ticks,
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground.toRGBA())
	if g.canvas != nil {
		g.canvas.Draw(screen)
	}
	if g.showHUD {
		g.drawHUD(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A resize moves the projection center.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.world.SetScreenCenter(g.screenCenter())
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
	// Tuning overrides DefaultTuning. A zero Tuning means DefaultTuning;
	// otherwise zero fields other than the camera angles keep their defaults.
	Tuning Tuning
	// Levels defaults to the built-in level pack.
	Levels LevelSource
	// Script, if set, drives the game from a TestRunner. The window closes
	// when the script is done.
	Script *TestRunner
	// Record, if set, is the path the session's input is saved to as a
	// test script when the window closes.
	Record string
	// ScreenshotDir overrides the default "screenshots" directory.
	ScreenshotDir string
}

// Run opens a window and plays levels until the window is closed.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Levels == nil {
		cfg.Levels = DefaultLevels()
	}
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	tuning := cfg.Tuning.withDefaults()
	surface := NewEbitenSurface(tuning.EdgeWidth, tuning.MarkerRadius)

	g, err := NewGame(cfg.Levels, tuning, surface, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	g.live = true
	if cfg.ScreenshotDir != "" {
		g.ScreenshotDir = cfg.ScreenshotDir
	}
	g.showFPS = cfg.ShowFPS
	g.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tuning.TPS)

	if cfg.Record != "" {
		g.StartRecording()
	}
	if cfg.Script != nil {
		g.SetTestRunner(cfg.Script)
		err = ebiten.RunGame(&scriptedGame{Game: g})
	} else {
		err = ebiten.RunGame(g)
	}
	if rec := g.StopRecording(); rec != nil && rec.Len() > 0 {
		if serr := rec.Save(cfg.Record); serr != nil {
			logf("%v", serr)
		} else {
			logf("recorded %d steps to %s", rec.Len(), cfg.Record)
		}
	}
	if cfg.Script != nil {
		for _, f := range cfg.Script.Failures() {
			logf("script failure: %s", f)
		}
	}
	return err
}

// scriptedGame ends the run once its script is done and the last
// screenshots are flushed.
type scriptedGame struct {
	*Game
	finishing bool
}

func (s *scriptedGame) Update() error {
	if s.finishing {
		return ebiten.Termination
	}
	if err := s.Game.Update(); err != nil {
		return err
	}
	s.finishing = s.testRunner.Done()
	return nil
}
