package scene

import "testing"

func TestMatchesWallName_Rules(t *testing.T) {
	cases := []struct {
		name string
		wall string
		want bool
	}{
		{"wall", "wall", true},        // exact
		{"wall_1", "wall", true},      // prefix with separator
		{"north_wall", "wall", true},  // suffix with separator
		{"wall1", "wall", false},      // no underscore separator
		{"northwall", "wall", false},  // no underscore separator
		{"wall_stove", "wall", true},  // accepted false positive, kept for compatibility
		{"firewall_x", "wall", false}, // "wall" embedded mid-name
	}
	for _, c := range cases {
		if got := matchesWallName(c.name, c.wall); got != c.want {
			t.Errorf("matchesWallName(%q, %q) = %v, want %v", c.name, c.wall, got, c.want)
		}
	}
}

func TestMatchGeomIDs_EmptyNames(t *testing.T) {
	g := NewGraph()
	b := g.AddBody("wall", worldBody)
	g.AddGeom("wall_panel", b, GeomRect{}, defaultWallRGBA)

	if got := MatchGeomIDs(g, nil); len(got) != 0 {
		t.Fatalf("expected no geoms for empty wall names, got %v", got)
	}
}

func TestMatchGeomIDs_DescendantClosure(t *testing.T) {
	// A <- B <- C chain; only A matches by name, but geoms on B and C must
	// still resolve through their owning bodies, at any depth.
	g := NewGraph()
	a := g.AddBody("wall_left", worldBody)
	b := g.AddBody("frame", a)
	c := g.AddBody("pane", b)
	ga := g.AddGeom("geom_a", a, GeomRect{}, defaultWallRGBA)
	gb := g.AddGeom("geom_b", b, GeomRect{}, defaultWallRGBA)
	gc := g.AddGeom("geom_c", c, GeomRect{}, defaultWallRGBA)

	got := MatchGeomIDs(g, []string{"wall_left"})
	want := map[int]bool{ga: true, gb: true, gc: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d geoms, got %v", len(want), got)
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("unexpected geom %d in %v", id, got)
		}
	}
}

func TestMatchGeomIDs_GeomNameFallback(t *testing.T) {
	// A geom named after a wall resolves even when its owning body is
	// unrelated to any wall body.
	g := NewGraph()
	misc := g.AddBody("decor", worldBody)
	gi := g.AddGeom("wall_trim", misc, GeomRect{}, defaultWallRGBA)
	other := g.AddGeom("lamp", misc, GeomRect{}, defaultFixtureRGBA)

	got := MatchGeomIDs(g, []string{"wall"})
	if len(got) != 1 || got[0] != gi {
		t.Fatalf("expected geom %d only, got %v", gi, got)
	}
	for _, id := range got {
		if id == other {
			t.Fatalf("lamp geom should not resolve")
		}
	}
}

func TestMatchGeomIDs_UnmatchedNameSilentlyIgnored(t *testing.T) {
	g := NewGraph()
	b := g.AddBody("wall_back", worldBody)
	g.AddGeom("wall_back_panel", b, GeomRect{}, defaultWallRGBA)

	got := MatchGeomIDs(g, []string{"wall_back", "phantom"})
	if len(got) != 1 {
		t.Fatalf("expected 1 geom (phantom ignored), got %v", got)
	}
}

func TestMatchWallBodies_RootNotPulledIn(t *testing.T) {
	// The world root's parent is the sentinel -1; closure must never treat
	// it as matched just because the sentinel is not a valid index.
	g := NewGraph()
	g.AddBody("wall", worldBody)
	misc := g.AddBody("table", worldBody)

	bodies := MatchWallBodies(g, []string{"wall"})
	if bodies[worldBody] {
		t.Fatalf("world root should not match")
	}
	if bodies[misc] {
		t.Fatalf("sibling body should not match")
	}
}
