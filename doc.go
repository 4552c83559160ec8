// Package isobox is an isometric cube puzzle for [Ebitengine].
//
// Boxes of four roles sit on a grid: red pushers, white walls, blue
// pushables and green goals. Clicking a pusher makes it grow along X and Z
// until it is blocked or reaches its maximum size; growth shoves adjacent
// pushables, which may shove further pushables in turn. A level is won when
// every goal has a pushable resting on it. Dragging orbits the camera.
//
// # Quick start
//
// The simplest way to play is [Run], which creates a window and game loop
// for you:
//
//	isobox.Run(isobox.RunConfig{
//		Title: "isobox", Width: 800, Height: 600,
//	})
//
// For headless use, build a [World] from a [Level] and drive it yourself:
//
//	w := isobox.NewWorld(level, 0, isobox.DefaultTuning(), isobox.Vec2{X: 400, Y: 300})
//	w.Select(w.Boxes(isobox.RolePusher)[0])
//	for !w.Won() {
//		w.Step(1.0/60, nil)
//	}
//
// # Rendering pipeline
//
// Each tick the world ranks its boxes back to front for the camera yaw
// ([ComputeRenderOrder]), rebuilds every box's corners ([BuildCorners]) and
// projects them ([Project]) with mgl64 rotation matrices. A [Surface]
// receives the faces, edges and vertex markers of every box in that order;
// [EbitenSurface] draws them with the painter's algorithm. Boxes tied in
// depth keep role order, so a goal is drawn under the pushable covering it.
//
// # Levels and tuning
//
// Levels are character grids: 'r' pusher, 'w' wall, 'b' pushable, 'g'
// goal, anything else empty. They come from a YAML [LevelPack] or a
// directory of text files ([TextLevels]), or are generated from a seed with
// Perlin-noise clutter ([GenerateLevel], [GeneratedLevels]). Simulation
// and display constants live in [Tuning], loadable from YAML with
// [LoadTuning].
//
// # Scripted play
//
// A [TestRunner] replays a JSON script of clicks, drags, waits and
// screenshots through the same input path as the mouse. Scripts are checked
// against a JSON schema before they run. A [Recorder] captures live play as
// such a script, optionally zstd-compressed, so a session can be replayed
// exactly with [ReadTestScript]. The ecs subpackage forwards game events
// into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package isobox
