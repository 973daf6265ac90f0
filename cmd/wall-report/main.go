package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Garsondee/Scene-Sense/internal/scene"
)

func main() {
	var dir string
	var idList string

	flag.StringVar(&dir, "layouts", "layouts", "layout directory")
	flag.StringVar(&idList, "ids", "1", "comma-separated layout ids to report on")
	flag.Parse()

	ids, err := parseIDs(idList)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	reg := scene.Registry{Dir: dir}
	fmt.Printf("=== Enclosing Wall Report ===\n")
	fmt.Printf("layouts=%s ids=%v\n\n", dir, ids)

	loaded := 0
	totalGeoms := 0
	for _, id := range ids {
		layout, err := reg.Load(id)
		if err != nil {
			fmt.Printf("layout %d: %v\n\n", id, err)
			continue
		}
		g := scene.Compile(layout)
		fmt.Print(scene.WallReport(g, reg, id, nil))
		fmt.Println()
		loaded++
		totalGeoms += len(scene.MatchGeomIDs(g, layout.EnclosingWallNames()))
	}

	fmt.Printf("=== Summary ===\n")
	fmt.Printf("layouts_loaded=%d/%d wall_geoms_total=%d\n", loaded, len(ids), totalGeoms)
}

// parseIDs parses a comma-separated id list ("1,2,7"). Blank entries are
// rejected rather than skipped so typos are visible.
func parseIDs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad layout id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
