//go:build ebiten

package app

import (
	"fmt"
	"time"

	"chrono-ghost/internal/audio"
	"chrono-ghost/internal/config"
	"chrono-ghost/internal/render"
	"chrono-ghost/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a sand session to the ebiten.Game interface.
type Game struct {
	sess    *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	player  *audio.Player
	log     *zap.Logger

	scale    int
	hudWidth int
	tick     time.Duration

	dragging bool
	lastX    int
	lastY    int
}

// New constructs a Game around sess using the window settings of cfg.
func New(sess *Session, cfg *config.Config, log *zap.Logger) *Game {
	size := sess.World.Size()
	g := &Game{
		sess:     sess,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sess.World, cfg.Window.Scale),
		hud:      ui.NewHUD(sess.World, cfg.Window.HUDWidth),
		log:      log,
		scale:    cfg.Window.Scale,
		hudWidth: cfg.Window.HUDWidth,
		tick:     time.Second / time.Duration(cfg.Window.TPS),
	}
	if cfg.Window.Sound {
		g.player = audio.NewPlayer(log)
	}
	return g
}

// Close stops audio playback and releases the session.
func (g *Game) Close() {
	g.player.Close()
	g.sess.Close()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	size := g.sess.World.Size()
	g.hud.Update(size.W*g.scale, g.pauseLine(), fmt.Sprintf("Seed %d", g.sess.Seed()))
	g.handleMouse()

	g.sess.Advance(g.tick)
	g.player.PlayBlasts(g.sess.BlastRadii())
	return nil
}

func (g *Game) pauseLine() string {
	if g.sess.Paused() {
		return "Paused"
	}
	return "Running"
}

func (g *Game) handleKeys() {
	w := g.sess.World
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sess.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.sess.Resume()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.sess.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Reset(g.sess.Seed())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.sess.Reset(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sess.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.overlay.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		delta := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			delta = -1
		}
		w.CycleMaterial(delta)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		AdjustRadius(w, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		AdjustRadius(w, 1)
	}
	for i, k := range digitKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if m, ok := MaterialForKey(rune('0' + i)); ok {
			SelectMaterial(w, m)
		}
	}
}

// handleMouse paints with the left button and erases with the right one,
// joining positions between frames so fast drags stay continuous.
func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	mx, my := ebiten.CursorPosition()
	if (!left && !right) || g.hud.Contains(mx, my) {
		g.dragging = false
		return
	}
	x, y := mx/g.scale, my/g.scale
	if !g.dragging {
		g.lastX, g.lastY = x, y
		g.dragging = true
	}
	g.sess.Stroke(g.lastX, g.lastY, x, y, right && !left)
	g.lastX, g.lastY = x, y
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.sess.World
	g.painter.Blit(screen, w, w.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, w.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.World.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
