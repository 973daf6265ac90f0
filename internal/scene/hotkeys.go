package scene

import "sync/atomic"

// WallRequests holds the pending wall-override intents queued by input
// handlers and consumed by the control loop. The two flags are the entire
// cross-goroutine surface of the overlay: input listeners only ever set
// them, the control thread reads and clears them, and duplicate requests
// queued before consumption coalesce into one action.
type WallRequests struct {
	toggle      atomic.Bool
	forceOpaque atomic.Bool
}

// RequestToggle queues a toggle of the wall override. Safe to call from
// any goroutine.
func (r *WallRequests) RequestToggle() { r.toggle.Store(true) }

// RequestForceOpaque queues a forced disable of the wall override. Safe to
// call from any goroutine. Used as a safety override when the toggle keys
// double as camera hotkeys in the host viewer.
func (r *WallRequests) RequestForceOpaque() { r.forceOpaque.Store(true) }

// Pending reports whether any request is queued, without consuming it.
func (r *WallRequests) Pending() bool {
	return r.toggle.Load() || r.forceOpaque.Load()
}

// Host is the surface ConsumeWallRequests needs from the control loop
// owner: the shared request flags, the last-known visualization settings,
// and a non-stepping redraw hook.
type Host interface {
	Requests() *WallRequests
	// VisSettings returns the most recently pushed visualization settings;
	// ok is false when none have been pushed yet.
	VisSettings() (vs VisSettings, ok bool)
	Redraw()
}

// ConsumeWallRequests applies and clears any queued wall override
// requests. Call it once per control loop iteration; a true return means a
// request was handled and callers typically continue to the next
// iteration. A queued force-opaque always wins over a queued toggle,
// whichever arrived first, and clears both flags.
func ConsumeWallRequests(h Host, wv *WallVisibility, render bool) bool {
	req := h.Requests()
	forceOpaque := req.forceOpaque.Load()
	toggle := req.toggle.Load()
	if !forceOpaque && !toggle {
		return false
	}

	if forceOpaque {
		if wv != nil {
			wv.SetEnabled(false)
		}
		req.forceOpaque.Store(false)
		// Drop a simultaneously queued toggle: force-off wins.
		req.toggle.Store(false)
		refreshVisualizationAndRedraw(h, wv, render)
		return true
	}

	if wv != nil {
		wv.Toggle()
	}
	req.toggle.Store(false)
	refreshVisualizationAndRedraw(h, wv, render)
	return true
}

// refreshVisualizationAndRedraw makes a best-effort attempt to surface an
// alpha change immediately. Interactive viewers may redraw independently
// of the step loop and would otherwise not show the change until the next
// camera event, so re-push the last-known visualization settings (which
// also re-applies the override) and request a redraw without stepping.
func refreshVisualizationAndRedraw(h Host, wv *WallVisibility, render bool) {
	if wv != nil {
		if vs, ok := h.VisSettings(); ok {
			wv.Visualize(vs)
		}
	}
	if render {
		h.Redraw()
	}
}
