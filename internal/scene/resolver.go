package scene

import "strings"

// matchesWallName reports whether name refers to the wall called wall:
// exact match, or a decorated variant with an underscore separator
// ("wall_panel_2" or "north_wall"). "wall1" does not match "wall".
func matchesWallName(name, wall string) bool {
	return name == wall ||
		strings.HasPrefix(name, wall+"_") ||
		strings.HasSuffix(name, "_"+wall)
}

func matchesAnyWallName(name string, walls []string) bool {
	for _, w := range walls {
		if matchesWallName(name, w) {
			return true
		}
	}
	return false
}

// MatchWallBodies returns the set of body indices belonging to the named
// walls: bodies whose name matches a wall name, plus every descendant body
// in the tree. Wall names that match no body are silently ignored.
func MatchWallBodies(g *Graph, wallNames []string) map[int]bool {
	bodies := make(map[int]bool)
	if len(wallNames) == 0 {
		return bodies
	}

	for b := 0; b < g.NBody(); b++ {
		if matchesAnyWallName(g.BodyName(b), wallNames) {
			bodies[b] = true
		}
	}

	// Descendant closure: a full pass that adds nothing means every chain,
	// however deep, has been followed.
	added := true
	for added {
		added = false
		for b := 0; b < g.NBody(); b++ {
			if bodies[b] {
				continue
			}
			parent := g.BodyParent(b)
			if parent >= 0 && bodies[parent] {
				bodies[b] = true
				added = true
			}
		}
	}
	return bodies
}

// MatchGeomIDs returns the geom indices for all geometry belonging to the
// named enclosing walls: geoms owned by a matched body, plus geoms whose
// own name matches a wall name (some wall geometry shares the naming
// convention without being parented under a wall body). The result follows
// geom index order but is a set; callers must not rely on ordering.
func MatchGeomIDs(g *Graph, wallNames []string) []int {
	if len(wallNames) == 0 {
		return nil
	}

	bodies := MatchWallBodies(g, wallNames)

	var geoms []int
	for i := 0; i < g.NGeom(); i++ {
		if bodies[g.GeomBody(i)] {
			geoms = append(geoms, i)
			continue
		}
		if matchesAnyWallName(g.GeomName(i), wallNames) {
			geoms = append(geoms, i)
		}
	}
	return geoms
}
