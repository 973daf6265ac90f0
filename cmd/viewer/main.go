package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/Garsondee/Scene-Sense/internal/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// demoLayout is written to a temp directory when no -layouts dir is given,
// so the viewer runs out of the box.
const demoLayout = `name: demo-kitchen
room:
  size: {x: 960, y: 640}
  walls:
    - name: wall
      enclosing_wall: true
      pos: {x: 0, y: 0}
      size: {x: 960, y: 24}
    - name: wall_left
      enclosing_wall: true
      pos: {x: 0, y: 24}
      size: {x: 24, y: 592}
    - name: wall_right
      enclosing_wall: true
      pos: {x: 936, y: 24}
      size: {x: 24, y: 592}
    - name: wall_back
      enclosing_wall: true
      pos: {x: 0, y: 616}
      size: {x: 960, y: 24}
    - name: island_divider
      enclosing_wall: false
      pos: {x: 420, y: 300}
      size: {x: 120, y: 18}
      rgba: [0.55, 0.50, 0.45, 1.0]
  fixtures:
    - name: counter
      pos: {x: 24, y: 24}
      size: {x: 420, y: 70}
    - name: stove
      pos: {x: 470, y: 24}
      size: {x: 140, y: 70}
      rgba: [0.30, 0.30, 0.32, 1.0]
    - name: sink
      pos: {x: 660, y: 24}
      size: {x: 120, y: 70}
      rgba: [0.70, 0.72, 0.75, 1.0]
    - name: shelf
      mount: wall_left
      pos: {x: 24, y: 280}
      size: {x: 60, y: 160}
      rgba: [0.50, 0.38, 0.28, 1.0]
    - name: island
      pos: {x: 380, y: 360}
      size: {x: 200, y: 110}
`

func main() {
	var dir string
	var layoutID int
	var alpha float64
	var transparent bool

	flag.StringVar(&dir, "layouts", "", "layout directory (default: built-in demo layout)")
	flag.IntVar(&layoutID, "layout", 1, "layout id to view")
	flag.Float64Var(&alpha, "alpha", 0.1, "wall override alpha in [0,1]")
	flag.BoolVar(&transparent, "transparent", false, "start with enclosing walls transparent")
	flag.Parse()

	if dir == "" {
		tmp, err := os.MkdirTemp("", "scene-sense-demo")
		if err != nil {
			log.Fatal(err)
		}
		reg := scene.Registry{Dir: tmp}
		if err := os.WriteFile(reg.Path(layoutID), []byte(demoLayout), 0o644); err != nil {
			log.Fatal(err)
		}
		dir = tmp
	} else {
		dir = filepath.Clean(dir)
	}

	v, err := scene.NewViewer(scene.ViewerConfig{
		Registry:         scene.Registry{Dir: dir},
		LayoutID:         layoutID,
		WallAlpha:        float32(alpha),
		StartTransparent: transparent,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Scene Sense")
	ebiten.SetWindowSize(1008, 688)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
