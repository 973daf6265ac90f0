package scene

import "testing"

func TestConsumeWallRequests_NothingPending(t *testing.T) {
	sess, reg := newStubSession(t)
	wv := NewWallVisibility(sess, reg, 0.1, false)
	before := alphaSnapshot(sess.graph)

	if ConsumeWallRequests(sess, wv, true) {
		t.Fatal("expected false with no pending requests")
	}
	if sess.redraws != 0 {
		t.Fatalf("redraws = %d, want 0", sess.redraws)
	}
	after := alphaSnapshot(sess.graph)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("geom %d mutated with nothing pending", i)
		}
	}
}

func TestConsumeWallRequests_Toggle(t *testing.T) {
	sess, reg := newStubSession(t)
	wv := NewWallVisibility(sess, reg, 0.1, false)
	sess.Visualize(VisSettings{"grid": true})
	sess.visPushes = 0

	sess.requests.RequestToggle()
	if !ConsumeWallRequests(sess, wv, true) {
		t.Fatal("expected true for pending toggle")
	}
	if !wv.Enabled() {
		t.Fatal("toggle did not enable the override")
	}
	if sess.requests.Pending() {
		t.Fatal("toggle flag not cleared")
	}
	if sess.visPushes != 1 {
		t.Fatalf("vis settings not re-pushed: pushes = %d", sess.visPushes)
	}
	if sess.redraws != 1 {
		t.Fatalf("redraws = %d, want 1", sess.redraws)
	}
}

func TestConsumeWallRequests_ForceOpaqueWinsOverToggle(t *testing.T) {
	// Regardless of arrival order, a queued force-opaque beats a queued
	// toggle and both flags come out cleared.
	orders := [][2]string{{"toggle", "force"}, {"force", "toggle"}}
	for _, order := range orders {
		sess, reg := newStubSession(t)
		wv := NewWallVisibility(sess, reg, 0.1, true)

		for _, ev := range order {
			if ev == "toggle" {
				sess.requests.RequestToggle()
			} else {
				sess.requests.RequestForceOpaque()
			}
		}

		if !ConsumeWallRequests(sess, wv, true) {
			t.Fatalf("order %v: expected true", order)
		}
		if wv.Enabled() {
			t.Fatalf("order %v: override should be disabled", order)
		}
		if sess.requests.Pending() {
			t.Fatalf("order %v: flags not cleared", order)
		}
	}
}

func TestConsumeWallRequests_DuplicateRequestsCoalesce(t *testing.T) {
	sess, reg := newStubSession(t)
	wv := NewWallVisibility(sess, reg, 0.1, false)

	// Two toggles queued before consumption collapse to one action.
	sess.requests.RequestToggle()
	sess.requests.RequestToggle()
	ConsumeWallRequests(sess, wv, true)
	if !wv.Enabled() {
		t.Fatal("coalesced toggles should leave the override enabled")
	}
	if ConsumeWallRequests(sess, wv, true) {
		t.Fatal("second consume should find nothing pending")
	}
}

func TestConsumeWallRequests_NilOverrideStillClearsFlags(t *testing.T) {
	sess, _ := newStubSession(t)
	sess.requests.RequestToggle()
	sess.requests.RequestForceOpaque()

	if !ConsumeWallRequests(sess, nil, true) {
		t.Fatal("expected true: requests were pending")
	}
	if sess.requests.Pending() {
		t.Fatal("flags must clear even with no override wired")
	}
}

func TestConsumeWallRequests_RenderFalseSkipsRedraw(t *testing.T) {
	sess, reg := newStubSession(t)
	wv := NewWallVisibility(sess, reg, 0.1, false)

	sess.requests.RequestToggle()
	ConsumeWallRequests(sess, wv, false)
	if sess.redraws != 0 {
		t.Fatalf("redraws = %d, want 0 when render=false", sess.redraws)
	}
	if !wv.Enabled() {
		t.Fatal("toggle should still apply when render=false")
	}
}

func TestWallRequests_SetFromAnotherGoroutine(t *testing.T) {
	sess, reg := newStubSession(t)
	wv := NewWallVisibility(sess, reg, 0.1, false)

	done := make(chan struct{})
	go func() {
		sess.requests.RequestToggle()
		close(done)
	}()
	<-done

	if !ConsumeWallRequests(sess, wv, true) {
		t.Fatal("request from listener goroutine not seen")
	}
	if !wv.Enabled() {
		t.Fatal("toggle not applied")
	}
}
