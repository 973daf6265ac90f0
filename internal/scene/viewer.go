package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the scene view.
const borderWidth = 24

// copyFlashFrames is how long the "report copied" notice stays on the HUD.
const copyFlashFrames = 120

// ViewerConfig configures an interactive scene viewer.
type ViewerConfig struct {
	Registry Registry
	LayoutID int
	// WallAlpha is the override alpha for enclosing walls; values outside
	// [0,1] fall back to DefaultWallAlpha.
	WallAlpha float32
	// StartTransparent enables the wall override from the first frame.
	StartTransparent bool
}

// Viewer is an interactive top-down scene viewer. It owns the live scene
// graph, acts as the Session and Host for the wall visibility override,
// and maps hotkeys to override requests:
//
//	Esc      toggle wall transparency
//	[ or ]   force walls opaque
//	R        hard reset (recompile the scene graph)
//	C        copy the wall report to the clipboard
//	H        toggle the HUD
type Viewer struct {
	cfg    ViewerConfig
	layout *Layout
	graph  *Graph

	wallvis  *WallVisibility
	requests WallRequests
	lastVis  VisSettings

	hotkeysInstalled bool

	width      int
	height     int
	sceneW     int
	sceneH     int
	offX, offY int

	camX    float64
	camY    float64
	camZoom float64

	showHUD    bool
	showGrid   bool
	showLabels bool
	copyFlash  int

	prevKeys map[ebiten.Key]bool
	worldBuf *ebiten.Image
	hudFace  font.Face
}

// NewViewer loads the configured layout, compiles its scene graph, and
// wires up the wall visibility override and its hotkeys.
func NewViewer(cfg ViewerConfig) (*Viewer, error) {
	layout, err := cfg.Registry.Load(cfg.LayoutID)
	if err != nil {
		return nil, err
	}

	sceneW := int(layout.Room.Size.X)
	sceneH := int(layout.Room.Size.Y)
	if sceneW <= 0 {
		sceneW = 960
	}
	if sceneH <= 0 {
		sceneH = 640
	}

	v := &Viewer{
		cfg:      cfg,
		layout:   layout,
		graph:    Compile(layout),
		sceneW:   sceneW,
		sceneH:   sceneH,
		offX:     borderWidth,
		offY:     borderWidth,
		width:    borderWidth + sceneW + borderWidth,
		height:   borderWidth + sceneH + borderWidth,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		hudFace:  basicfont.Face7x13,
	}
	v.camX = float64(sceneW) / 2
	v.camY = float64(sceneH) / 2
	v.camZoom = 1.0

	v.wallvis = NewWallVisibility(v, cfg.Registry, cfg.WallAlpha, cfg.StartTransparent)
	InstallWallHotkeys(v)
	// Initial push so the host has last-known settings to re-push on
	// hotkey consumption.
	v.wallvis.Visualize(VisSettings{"grid": true, "labels": false})
	return v, nil
}

// InstallWallHotkeys arms the viewer's wall override hotkeys. Idempotent:
// a second install on an already-instrumented viewer is a no-op.
func InstallWallHotkeys(v *Viewer) {
	if v.hotkeysInstalled {
		return
	}
	v.hotkeysInstalled = true
}

// WallVisibility returns the viewer's wall override.
func (v *Viewer) WallVisibility() *WallVisibility { return v.wallvis }

// Scene returns the live scene graph.
func (v *Viewer) Scene() *Graph { return v.graph }

// LayoutID returns the active layout id.
func (v *Viewer) LayoutID() (int, bool) { return v.cfg.LayoutID, true }

// Visualize applies visualization settings to the viewer's renderer and
// records them as the last-known settings.
func (v *Viewer) Visualize(vs VisSettings) {
	v.lastVis = vs
	v.showGrid = vs["grid"]
	v.showLabels = vs["labels"]
}

// VisSettings returns the most recently pushed visualization settings.
func (v *Viewer) VisSettings() (VisSettings, bool) {
	if v.lastVis == nil {
		return nil, false
	}
	return v.lastVis, true
}

// Redraw is the non-stepping redraw hook. ebiten redraws every frame
// anyway; the hook exists for hosts that draw on demand.
func (v *Viewer) Redraw() {}

// Requests returns the shared pending-request flags.
func (v *Viewer) Requests() *WallRequests { return &v.requests }

// HardReset discards the live scene graph and compiles a fresh one from
// the layout, then lets the override invalidate its caches and re-apply.
func (v *Viewer) HardReset() {
	v.graph = Compile(v.layout)
	v.wallvis.OnSceneReset()
}

func (v *Viewer) Update() error {
	v.handleInput()
	if v.copyFlash > 0 {
		v.copyFlash--
	}
	// Consume queued wall requests last so a release observed this tick
	// takes effect on the same tick.
	ConsumeWallRequests(v, v.wallvis, true)
	return nil
}

// trackedKeys are polled every frame for edge detection.
var trackedKeys = []ebiten.Key{
	ebiten.KeyEscape, ebiten.KeyBracketLeft, ebiten.KeyBracketRight,
	ebiten.KeyR, ebiten.KeyC, ebiten.KeyH,
	ebiten.KeyEqual, ebiten.KeyMinus,
}

// handleInput processes hotkeys (edge-triggered) and camera movement.
// Wall override keys fire on release and only queue request flags; the
// actual graph mutation happens in ConsumeWallRequests on this same loop.
func (v *Viewer) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	for _, k := range trackedKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	released := func(k ebiten.Key) bool { return v.prevKeys[k] && !currentKeys[k] }
	pressed := func(k ebiten.Key) bool { return currentKeys[k] && !v.prevKeys[k] }

	if v.hotkeysInstalled {
		if released(ebiten.KeyEscape) {
			v.requests.RequestToggle()
		}
		if released(ebiten.KeyBracketLeft) || released(ebiten.KeyBracketRight) {
			v.requests.RequestForceOpaque()
		}
	}

	if pressed(ebiten.KeyR) {
		v.HardReset()
	}
	if pressed(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}
	if pressed(ebiten.KeyC) {
		id, _ := v.LayoutID()
		if setClipboardText(WallReport(v.graph, v.cfg.Registry, id, v.wallvis)) == nil {
			v.copyFlash = copyFlashFrames
		}
	}

	// Camera pan: WASD or arrow keys.
	panSpeed := 6.0 / v.camZoom
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camX += panSpeed
	}

	// Camera zoom: mouse wheel or =/- keys.
	const zoomMin, zoomMax = 0.5, 4.0
	_, wy := ebiten.Wheel()
	if wy != 0 {
		v.camZoom *= math.Pow(1.12, wy)
	}
	if pressed(ebiten.KeyEqual) {
		v.camZoom *= 1.25
	}
	if pressed(ebiten.KeyMinus) {
		v.camZoom /= 1.25
	}
	if v.camZoom < zoomMin {
		v.camZoom = zoomMin
	}
	if v.camZoom > zoomMax {
		v.camZoom = zoomMax
	}

	// Clamp camera centre to scene bounds (accounting for zoom).
	halfVW := float64(v.sceneW) / 2 / v.camZoom
	halfVH := float64(v.sceneH) / 2 / v.camZoom
	v.camX = clamp(v.camX, halfVW, float64(v.sceneW)-halfVW)
	v.camY = clamp(v.camY, halfVH, float64(v.sceneH)-halfVH)

	v.prevKeys = currentKeys
}

func clamp(x, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 14, B: 18, A: 255})

	if v.worldBuf == nil {
		v.worldBuf = ebiten.NewImage(v.sceneW, v.sceneH)
	}
	v.worldBuf.Clear()
	v.drawWorld(v.worldBuf)

	// Camera transform: translate so camX/camY is at viewport centre,
	// then scale.
	var cam ebiten.GeoM
	cam.Translate(-v.camX, -v.camY)
	cam.Scale(v.camZoom, v.camZoom)
	cam.Translate(float64(v.sceneW)/2, float64(v.sceneH)/2)
	cam.Translate(float64(v.offX), float64(v.offY))
	screen.DrawImage(v.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	// View border frame (screen coords, not transformed).
	ox, oy := float32(v.offX), float32(v.offY)
	gw, gh := float32(v.sceneW), float32(v.sceneH)
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 2.0, color.RGBA{R: 70, G: 70, B: 90, A: 255}, false)

	if v.showHUD {
		v.drawHUD(screen)
	}
	if v.camZoom != 1.0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom: %.1fx", v.camZoom), v.offX+6, v.offY+6)
	}
}

func (v *Viewer) drawWorld(dst *ebiten.Image) {
	gw, gh := float32(v.sceneW), float32(v.sceneH)

	// Floor.
	vector.FillRect(dst, 0, 0, gw, gh, color.RGBA{R: 34, G: 32, B: 30, A: 255}, false)

	if v.showGrid {
		grid := color.RGBA{R: 44, G: 42, B: 40, A: 255}
		for x := float32(0); x <= gw; x += 64 {
			vector.StrokeLine(dst, x, 0, x, gh, 1.0, grid, false)
		}
		for y := float32(0); y <= gh; y += 64 {
			vector.StrokeLine(dst, 0, y, gw, y, 1.0, grid, false)
		}
	}

	// Geoms, in index order, alpha straight from the live colour buffer —
	// the wall override is visible here with no extra plumbing.
	for i := 0; i < v.graph.NGeom(); i++ {
		r := v.graph.GeomRect(i)
		c := v.graph.GeomRGBA(i)
		fill := color.RGBA{
			R: uint8(c[0] * c[3] * 255),
			G: uint8(c[1] * c[3] * 255),
			B: uint8(c[2] * c[3] * 255),
			A: uint8(c[3] * 255),
		}
		vector.FillRect(dst, r.X, r.Y, r.W, r.H, fill, false)
		if v.showLabels {
			ebitenutil.DebugPrintAt(dst, v.graph.GeomName(i), int(r.X)+2, int(r.Y)+2)
		}
	}
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	state := "opaque"
	if v.wallvis.Enabled() {
		state = fmt.Sprintf("transparent (%.0f%%)", v.wallvis.Alpha()*100)
	}
	lines := []string{
		fmt.Sprintf("walls: %s", state),
		"Esc=toggle walls  [/]=force opaque",
		"R=reset  C=copy report  H=hide HUD",
		"WASD/arrows=pan  scroll/=/-=zoom",
	}
	if v.copyFlash > 0 {
		lines = append(lines, "report copied to clipboard")
	}

	const lineH = 13
	const charW = 7
	const padX = 6
	const padY = 5
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	x := v.offX + 8
	y := v.height - v.offY - len(lines)*lineH - padY*2 - 8
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	vector.FillRect(screen, float32(x), float32(y), boxW, boxH,
		color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)

	for i, l := range lines {
		text.Draw(screen, l, v.hudFace, x+padX, y+padY+(i+1)*lineH-3,
			color.RGBA{R: 220, G: 220, B: 210, A: 255})
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
