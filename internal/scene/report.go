package scene

import (
	"fmt"
	"sort"
	"strings"
)

// WallReport builds a human-readable summary of how the enclosing wall
// names for layoutID resolve against the live graph: the names themselves,
// the matched body tree, the matched geoms with their current alpha, and
// the override state. Used by the viewer's copy-report hotkey and by
// cmd/wall-report.
func WallReport(g *Graph, reg Registry, layoutID int, wv *WallVisibility) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- SceneSense wall report ---\n")
	fmt.Fprintf(&b, "layout=%d path=%s\n", layoutID, reg.Path(layoutID))

	names := reg.EnclosingWallNames(layoutID)
	if len(names) == 0 {
		b.WriteString("enclosing walls: (none)\n")
	} else {
		fmt.Fprintf(&b, "enclosing walls: %s\n", strings.Join(names, ", "))
	}

	if g == nil {
		b.WriteString("(no scene graph loaded)\n")
		return b.String()
	}

	bodies := MatchWallBodies(g, names)
	bodyIDs := make([]int, 0, len(bodies))
	for id := range bodies {
		bodyIDs = append(bodyIDs, id)
	}
	sort.Ints(bodyIDs)

	fmt.Fprintf(&b, "\n== matched bodies (%d of %d) ==\n", len(bodyIDs), g.NBody())
	for _, id := range bodyIDs {
		parent := g.BodyParent(id)
		parentName := "(root)"
		if parent >= 0 {
			parentName = g.BodyName(parent)
		}
		fmt.Fprintf(&b, "body %3d %-24s parent=%s\n", id, g.BodyName(id), parentName)
	}

	geoms := MatchGeomIDs(g, names)
	fmt.Fprintf(&b, "\n== matched geoms (%d of %d) ==\n", len(geoms), g.NGeom())
	for _, id := range geoms {
		fmt.Fprintf(&b, "geom %3d %-24s body=%s alpha=%.2f\n",
			id, g.GeomName(id), g.BodyName(g.GeomBody(id)), g.Alpha(id))
	}

	if wv != nil {
		fmt.Fprintf(&b, "\noverride: enabled=%v alpha=%.2f\n", wv.Enabled(), wv.Alpha())
	}
	return b.String()
}
