package isobox

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrLevelNotFound is returned when a source has no level at an index.
	ErrLevelNotFound = errors.New("level not found")
	// ErrEmptyLevel is returned when a level grid holds no boxes.
	ErrEmptyLevel = errors.New("level has no boxes")
)

// Level is a 2D character grid. Each row runs along +X and successive rows
// run along +Z. Recognized cells: 'r' pusher, 'w' wall, 'b' pushable,
// 'g' goal. Anything else is an empty cell.
type Level struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// roleForCell maps a grid character to a role.
func roleForCell(c byte) (Role, bool) {
	switch c {
	case 'r':
		return RolePusher, true
	case 'w':
		return RoleWall, true
	case 'b':
		return RolePushable, true
	case 'g':
		return RoleGoal, true
	default:
		return 0, false
	}
}

// ParseLevel splits level text into rows. Trailing blank lines and carriage
// returns are dropped.
func ParseLevel(name, text string) (Level, error) {
	text = strings.ReplaceAll(text, "\r", "")
	rows := strings.Split(text, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	l := Level{Name: name, Rows: rows}
	if l.boxCount() == 0 {
		return Level{}, fmt.Errorf("parse level %q: %w", name, ErrEmptyLevel)
	}
	return l, nil
}

// Width returns the length of the longest row.
func (l Level) Width() int {
	w := 0
	for _, r := range l.Rows {
		w = max(w, len(r))
	}
	return w
}

// Depth returns the number of rows.
func (l Level) Depth() int {
	return len(l.Rows)
}

// cellCenter returns the world-space center of grid cell (col, row). The
// grid is offset by whole cells so centers stay on integers.
func (l Level) cellCenter(col, row int) Vec3 {
	return Vec3{
		X: float64(col - l.Width()/2),
		Z: float64(row - l.Depth()/2),
	}
}

// each calls fn for every recognized cell in scan order.
func (l Level) each(fn func(role Role, col, row int)) {
	for row, line := range l.Rows {
		for col := 0; col < len(line); col++ {
			if role, ok := roleForCell(line[col]); ok {
				fn(role, col, row)
			}
		}
	}
}

func (l Level) boxCount() int {
	n := 0
	l.each(func(Role, int, int) { n++ })
	return n
}

// LevelSource supplies level grids by index.
type LevelSource interface {
	Level(index int) (Level, error)
	Count() int
}

// --- YAML level pack ---

// LevelPack is a list of levels decoded from one YAML document:
//
//	levels:
//	  - name: first push
//	    rows:
//	      - "wwwww"
//	      - "wrbgw"
//	      - "wwwww"
type LevelPack struct {
	Levels []Level `yaml:"levels"`
}

// ParseLevelPack decodes a YAML level pack. Every level must hold at least
// one box.
func ParseLevelPack(raw []byte) (*LevelPack, error) {
	var pack LevelPack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("level pack: %w", err)
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("level pack: no levels")
	}
	for i, l := range pack.Levels {
		if l.boxCount() == 0 {
			return nil, fmt.Errorf("level pack: level %d (%q): %w", i, l.Name, ErrEmptyLevel)
		}
	}
	return &pack, nil
}

// Level returns the level at index.
func (p *LevelPack) Level(index int) (Level, error) {
	if index < 0 || index >= len(p.Levels) {
		return Level{}, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
	}
	return p.Levels[index], nil
}

// Count returns the number of levels in the pack.
func (p *LevelPack) Count() int {
	return len(p.Levels)
}

// --- Text level directory ---

// TextLevels reads one level per .txt file from a directory of fsys. Files
// are ordered by name.
type TextLevels struct {
	fsys  fs.FS
	dir   string
	names []string
}

// NewTextLevels lists the .txt files in dir.
func NewTextLevels(fsys fs.FS, dir string) (*TextLevels, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("text levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("text levels: no .txt files in %s", dir)
	}
	sort.Strings(names)
	return &TextLevels{fsys: fsys, dir: dir, names: names}, nil
}

// Level reads and parses the level at index.
func (t *TextLevels) Level(index int) (Level, error) {
	if index < 0 || index >= len(t.names) {
		return Level{}, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
	}
	name := t.names[index]
	raw, err := fs.ReadFile(t.fsys, path.Join(t.dir, name))
	if err != nil {
		return Level{}, fmt.Errorf("level %d: %w", index, err)
	}
	return ParseLevel(strings.TrimSuffix(name, ".txt"), string(raw))
}

// Count returns the number of level files.
func (t *TextLevels) Count() int {
	return len(t.names)
}

//go:embed levels
var levelFiles embed.FS

// DefaultLevels returns the built-in level pack.
func DefaultLevels() *LevelPack {
	raw, err := levelFiles.ReadFile("levels/pack.yaml")
	if err != nil {
		panic(fmt.Sprintf("isobox: embedded level pack: %v", err))
	}
	pack, err := ParseLevelPack(raw)
	if err != nil {
		panic(fmt.Sprintf("isobox: embedded level pack: %v", err))
	}
	return pack
}

// DefaultTextLevels returns the built-in levels stored as plain text grids.
func DefaultTextLevels() *TextLevels {
	t, err := NewTextLevels(levelFiles, "levels/text")
	if err != nil {
		panic(fmt.Sprintf("isobox: embedded text levels: %v", err))
	}
	return t
}
