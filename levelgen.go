package isobox

import (
	"fmt"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

const (
	// Perlin parameters for wall clutter: smoothness, frequency, octaves.
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	// noiseScale maps grid cells to noise space.
	noiseScale = 0.35
	// wallThreshold is the normalized noise value above which a cell
	// becomes a wall.
	wallThreshold = 0.62

	// laneSpacing is the row distance between puzzle lanes. Pushers grow at
	// most one cell toward each side, so lanes this far apart never touch.
	laneSpacing = 4

	minGenWidth = 7
	minGenDepth = 5
)

// GenerateLevel builds a walled room of the given size with noise-placed
// wall clutter and one or more puzzle lanes. Each lane is an empty cell,
// a pusher, a pushable and a goal in a row, with its surroundings cleared,
// so clicking every pusher always solves the level. The same seed always
// yields the same level.
func GenerateLevel(seed int64, width, depth int) (Level, error) {
	if width < minGenWidth || depth < minGenDepth {
		return Level{}, fmt.Errorf("generate level: size %dx%d below %dx%d", width, depth, minGenWidth, minGenDepth)
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	rng := rand.New(rand.NewPCG(uint64(seed), 0x15b0))

	grid := make([][]byte, depth)
	for row := range grid {
		grid[row] = make([]byte, width)
		for col := range grid[row] {
			switch {
			case row == 0 || row == depth-1 || col == 0 || col == width-1:
				grid[row][col] = 'w'
			case (noise.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)+1)/2 > wallThreshold:
				grid[row][col] = 'w'
			default:
				grid[row][col] = ' '
			}
		}
	}

	lanes := 0
	for row := 2; row+2 < depth; row += laneSpacing {
		// Lane cells: start (empty), start+1 pusher, start+2 pushable,
		// start+3 goal. The lane needs one free column on each side.
		start := 1 + rng.IntN(width-5)
		for r := row - 1; r <= row+1; r++ {
			for c := start; c <= start+3; c++ {
				grid[r][c] = ' '
			}
		}
		grid[row][start+1] = 'r'
		grid[row][start+2] = 'b'
		grid[row][start+3] = 'g'
		lanes++
	}

	rows := make([]string, depth)
	for i, r := range grid {
		rows[i] = string(r)
	}
	return Level{Name: fmt.Sprintf("generated %d (%d lanes)", seed, lanes), Rows: rows}, nil
}

// GeneratedLevels is a LevelSource of Count generated levels; level i uses
// seed Seed+i.
type GeneratedLevels struct {
	Seed          int64
	Width, Depth  int
	NumberOfRooms int
}

// Level generates the level at index.
func (g GeneratedLevels) Level(index int) (Level, error) {
	if index < 0 || index >= g.NumberOfRooms {
		return Level{}, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
	}
	return GenerateLevel(g.Seed+int64(index), g.Width, g.Depth)
}

// Count returns NumberOfRooms.
func (g GeneratedLevels) Count() int {
	return g.NumberOfRooms
}
