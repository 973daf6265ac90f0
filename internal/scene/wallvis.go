package scene

// VisSettings are the host's visualization toggles (geom labels, grid,
// debug frames). The overlay forwards them untouched; it only cares that
// pushing them may stomp the colour buffer it manages.
type VisSettings map[string]bool

// Session is what the wall overlay needs from its host: the live scene
// graph (nil before the first reset), the current layout id, and the
// host's visualization and redraw hooks.
type Session interface {
	// Scene returns the live graph, or nil if none is loaded yet.
	Scene() *Graph
	// LayoutID returns the current layout id; ok is false when no layout
	// is active.
	LayoutID() (id int, ok bool)
	// Visualize pushes visualization settings to the host renderer.
	Visualize(VisSettings)
	// Redraw asks the host to redraw without advancing simulation time.
	Redraw()
}

// WallVisibility makes a layout's enclosing walls transparent while
// enabled, and forces them fully opaque when disabled. It only ever writes
// the graph's alpha buffer; the layout description is untouched, so saved
// or exported scenes never carry the override.
//
// While enabled the invariant is: every resolved geom has alpha equal to
// the configured overlay alpha. While disabled: every resolved geom has
// alpha 1.0. Disabling deliberately writes 1.0 rather than the saved
// values — "off" means fully opaque, not "whatever it was before".
type WallVisibility struct {
	sess  Session
	reg   Registry
	alpha float32

	enabled bool

	// Cache, valid only for lastGen. resolved distinguishes "resolved to
	// nothing" from "not resolved yet".
	geomIDs    []int
	resolved   bool
	savedAlpha map[int]float32
	lastGen    uint64
}

// DefaultWallAlpha is the overlay alpha used when the caller passes a
// value outside [0,1].
const DefaultWallAlpha = 0.1

// NewWallVisibility wraps sess with a wall transparency override resolving
// wall names through reg. alpha outside [0,1] falls back to
// DefaultWallAlpha. The overlay starts disabled and is switched to the
// requested initial state, applying immediately if a scene is live.
func NewWallVisibility(sess Session, reg Registry, alpha float32, enabled bool) *WallVisibility {
	if alpha < 0 || alpha > 1 {
		alpha = DefaultWallAlpha
	}
	w := &WallVisibility{
		sess:       sess,
		reg:        reg,
		alpha:      alpha,
		savedAlpha: make(map[int]float32),
	}
	w.SetEnabled(enabled)
	return w
}

// Enabled reports whether the override is currently active.
func (w *WallVisibility) Enabled() bool { return w.enabled }

// Alpha returns the configured overlay alpha.
func (w *WallVisibility) Alpha() float32 { return w.alpha }

// Toggle flips the override.
func (w *WallVisibility) Toggle() { w.SetEnabled(!w.enabled) }

// SetEnabled switches the override on or off. A no-op when the state is
// unchanged, so repeated calls are idempotent.
func (w *WallVisibility) SetEnabled(enabled bool) {
	if enabled == w.enabled {
		return
	}
	w.enabled = enabled
	w.applyOrRestore()
}

// Visualize forwards settings to the host, then re-applies the override.
// Hosts may rewrite the colour buffer while applying settings; re-applying
// keeps the walls transparent across camera and visualization changes.
func (w *WallVisibility) Visualize(vs VisSettings) {
	w.sess.Visualize(vs)
	w.applyOrRestore()
}

// OnSceneReset must be called after the host completes a reset. It drops
// every cached index and saved alpha (the old graph's indices are
// meaningless now) and re-applies the override if it is enabled.
func (w *WallVisibility) OnSceneReset() {
	w.invalidate()
	w.lastGen = 0
	if w.enabled {
		w.applyOrRestore()
	}
}

// GeomIDs returns the geom indices the override currently acts on,
// resolving them first if needed. Nil when no scene or layout is live.
func (w *WallVisibility) GeomIDs() []int {
	g := w.sess.Scene()
	if g == nil {
		return nil
	}
	w.refreshCache(g)
	return w.geomIDs
}

func (w *WallVisibility) invalidate() {
	w.geomIDs = nil
	w.resolved = false
	w.savedAlpha = make(map[int]float32)
}

// refreshCache invalidates on generation change and resolves the geom set
// if it is not cached for the current graph.
func (w *WallVisibility) refreshCache(g *Graph) {
	if w.lastGen != g.Generation() {
		w.invalidate()
		w.lastGen = g.Generation()
	}
	if w.resolved {
		return
	}
	w.resolved = true
	id, ok := w.sess.LayoutID()
	if !ok {
		return
	}
	w.geomIDs = MatchGeomIDs(g, w.reg.EnclosingWallNames(id))
}

// applyOrRestore writes the override (or the opaque restore) to every
// resolved geom. Missing context — no scene, no layout, no matching
// geometry — is a silent no-op: the overlay is a best-effort visual aid
// and must never disturb the host loop.
func (w *WallVisibility) applyOrRestore() {
	g := w.sess.Scene()
	if g == nil {
		return
	}
	w.refreshCache(g)
	if len(w.geomIDs) == 0 {
		return
	}

	if w.enabled {
		// Save originals once per geom so toggling mid-override never
		// captures our own writes.
		for _, gi := range w.geomIDs {
			if _, ok := w.savedAlpha[gi]; !ok {
				w.savedAlpha[gi] = g.Alpha(gi)
			}
			g.SetAlpha(gi, w.alpha)
		}
		return
	}

	for _, gi := range w.geomIDs {
		g.SetAlpha(gi, 1.0)
	}
	w.savedAlpha = make(map[int]float32)
}
