package scene

import "sync/atomic"

// graphGen mints a fresh generation token for every Graph. A hard reset
// compiles a new Graph, so comparing generations by value detects reloads
// without relying on pointer identity.
var graphGen atomic.Uint64

// worldBody is the root body index; its parent is rootParent.
const (
	worldBody  = 0
	rootParent = -1
)

// GeomRect is a geom's top-down footprint in world pixels.
type GeomRect struct {
	X, Y, W, H float32
}

// Graph is the live scene graph: a body tree plus flat geometry, mirroring
// what a physics engine exposes after compiling a scene description.
// Everything except the RGBA buffer is fixed at compile time. Geom and body
// indices are stable for the lifetime of one Graph and meaningless across
// Graphs.
type Graph struct {
	generation uint64

	bodyNames  []string
	bodyParent []int

	geomNames []string
	geomBody  []int
	geomRects []GeomRect

	// rgba is the mutable per-geom colour buffer. Renderers read it every
	// frame; the wall overlay writes the alpha channel in place.
	rgba [][4]float32
}

// NewGraph creates an empty graph containing only the world root body.
func NewGraph() *Graph {
	g := &Graph{generation: graphGen.Add(1)}
	g.AddBody("world", rootParent)
	return g
}

// Generation returns the graph's identity token. Two graphs never share a
// generation; a changed generation means every previously resolved index
// is stale.
func (g *Graph) Generation() uint64 { return g.generation }

// AddBody appends a body and returns its index. parent must be rootParent
// or an existing body index.
func (g *Graph) AddBody(name string, parent int) int {
	g.bodyNames = append(g.bodyNames, name)
	g.bodyParent = append(g.bodyParent, parent)
	return len(g.bodyNames) - 1
}

// AddGeom appends a geom owned by body and returns its index.
func (g *Graph) AddGeom(name string, body int, rect GeomRect, rgba [4]float32) int {
	g.geomNames = append(g.geomNames, name)
	g.geomBody = append(g.geomBody, body)
	g.geomRects = append(g.geomRects, rect)
	g.rgba = append(g.rgba, rgba)
	return len(g.geomNames) - 1
}

func (g *Graph) NBody() int { return len(g.bodyNames) }

func (g *Graph) BodyName(i int) string { return g.bodyNames[i] }

func (g *Graph) BodyParent(i int) int { return g.bodyParent[i] }

func (g *Graph) NGeom() int { return len(g.geomNames) }

func (g *Graph) GeomName(i int) string { return g.geomNames[i] }

func (g *Graph) GeomBody(i int) int { return g.geomBody[i] }

func (g *Graph) GeomRect(i int) GeomRect { return g.geomRects[i] }

// GeomRGBA returns the geom's current colour.
func (g *Graph) GeomRGBA(i int) [4]float32 { return g.rgba[i] }

// Alpha returns the geom's current alpha channel value.
func (g *Graph) Alpha(i int) float32 { return g.rgba[i][3] }

// SetAlpha writes the geom's alpha channel in place.
func (g *Graph) SetAlpha(i int, a float32) { g.rgba[i][3] = a }

// Default colours for compiled geoms when the layout gives none.
var (
	defaultWallRGBA    = [4]float32{0.85, 0.82, 0.78, 1}
	defaultTrimRGBA    = [4]float32{0.62, 0.58, 0.52, 1}
	defaultFixtureRGBA = [4]float32{0.45, 0.52, 0.60, 1}
)

// Compile builds a live Graph from a layout description. Each wall becomes
// a body under the world root carrying a panel geom, plus a child trim body
// with its own geom (sub-meshes hang off the wall body, as engine importers
// do). Fixtures become bodies under the world root, or under their mount
// wall's body when Mount names one.
func Compile(l *Layout) *Graph {
	g := NewGraph()
	if l == nil {
		return g
	}

	wallBody := make(map[string]int, len(l.Room.Walls))
	for _, w := range l.Room.Walls {
		rgba := defaultWallRGBA
		if w.RGBA != nil {
			rgba = *w.RGBA
		}
		b := g.AddBody(w.Name, worldBody)
		wallBody[w.Name] = b
		g.AddGeom(w.Name+"_panel", b, GeomRect{w.Pos.X, w.Pos.Y, w.Size.X, w.Size.Y}, rgba)

		// Trim runs along the wall's inner edge, inset one eighth of the
		// wall's thinner extent.
		inset := w.Size.X / 8
		if w.Size.Y < w.Size.X {
			inset = w.Size.Y / 8
		}
		trim := g.AddBody(w.Name+"_trim", b)
		g.AddGeom(w.Name+"_trim", trim, GeomRect{
			X: w.Pos.X + inset,
			Y: w.Pos.Y + inset,
			W: w.Size.X - 2*inset,
			H: w.Size.Y - 2*inset,
		}, defaultTrimRGBA)
	}

	for _, f := range l.Room.Fixtures {
		parent := worldBody
		if b, ok := wallBody[f.Mount]; ok {
			parent = b
		}
		rgba := defaultFixtureRGBA
		if f.RGBA != nil {
			rgba = *f.RGBA
		}
		b := g.AddBody(f.Name, parent)
		g.AddGeom(f.Name, b, GeomRect{f.Pos.X, f.Pos.Y, f.Size.X, f.Size.Y}, rgba)
	}

	return g
}
