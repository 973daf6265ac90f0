package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Layout is the authoritative description of one scene, loaded from a YAML
// layout file. It is read-only at runtime: the live Graph is compiled from
// it, and all transient visual state (including the wall transparency
// override) lives on the Graph, never here. Saving or exporting a scene
// always goes through the Layout, so the override is invisible to exports.
type Layout struct {
	Name string `yaml:"name"`
	Room Room   `yaml:"room"`
}

// Room holds the walls and fixtures of a layout. All fields tolerate being
// absent from the YAML file and decode to their zero values.
type Room struct {
	Size     Vec2      `yaml:"size"`
	Walls    []Wall    `yaml:"walls"`
	Fixtures []Fixture `yaml:"fixtures"`
}

// Wall is one wall segment of a room. EnclosingWall marks walls that
// surround the playable area and are subject to the transparency override.
type Wall struct {
	Name          string      `yaml:"name"`
	EnclosingWall bool        `yaml:"enclosing_wall"`
	Pos           Vec2        `yaml:"pos"`
	Size          Vec2        `yaml:"size"`
	RGBA          *[4]float32 `yaml:"rgba"`
}

// Fixture is a static object in the room. If Mount names a wall, the
// fixture's body is parented under that wall's body in the compiled graph
// (wall-mounted fixtures fade together with their wall).
type Fixture struct {
	Name  string      `yaml:"name"`
	Mount string      `yaml:"mount"`
	Pos   Vec2        `yaml:"pos"`
	Size  Vec2        `yaml:"size"`
	RGBA  *[4]float32 `yaml:"rgba"`
}

// Vec2 is a 2D point or extent in world pixels.
type Vec2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// EnclosingWallNames returns the names of walls flagged enclosing_wall.
func (l *Layout) EnclosingWallNames() []string {
	var names []string
	for _, w := range l.Room.Walls {
		if w.EnclosingWall {
			names = append(names, w.Name)
		}
	}
	return names
}

// LoadLayout reads and decodes one layout YAML file. Unknown keys are
// ignored and missing keys decode to zero values, so a minimal file (or an
// empty one) yields an empty but valid Layout.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return &l, nil
}

// Registry maps integer layout ids to layout files in a directory.
// It performs no caching; callers cache results keyed on the id.
type Registry struct {
	Dir string
}

// Path returns the file path for a layout id.
func (r Registry) Path(id int) string {
	return filepath.Join(r.Dir, fmt.Sprintf("layout_%04d.yaml", id))
}

// Load loads the layout for id.
func (r Registry) Load(id int) (*Layout, error) {
	return LoadLayout(r.Path(id))
}

// EnclosingWallNames returns the enclosing wall names for a layout id.
// Any failure (missing file, malformed YAML) yields nil: an unavailable
// layout means the overlay simply has nothing to act on.
func (r Registry) EnclosingWallNames(id int) []string {
	l, err := r.Load(id)
	if err != nil {
		return nil
	}
	return l.EnclosingWallNames()
}
