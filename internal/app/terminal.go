package app

import (
	"context"
	"fmt"
	"time"

	"chrono-ghost/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Terminal runs a session on a tcell screen, two grid rows per text row.
type Terminal struct {
	sess   *Session
	screen tcell.Screen
	sink   *render.TerminalSink
	log    *zap.Logger
	tick   time.Duration

	dragging bool
	lastX    int
	lastY    int
	blasts   int
}

// NewTerminal wraps an initialized screen. tps paces the simulation.
func NewTerminal(sess *Session, screen tcell.Screen, tps int, log *zap.Logger) *Terminal {
	if log == nil {
		log = zap.NewNop()
	}
	if tps <= 0 {
		tps = 30
	}
	return &Terminal{
		sess:   sess,
		screen: screen,
		sink:   render.NewTerminalSink(screen),
		log:    log,
		tick:   time.Second / time.Duration(tps),
	}
}

// Run handles events and ticks until ctx is done or the user quits.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.HandleEvent(ev) {
				t.log.Info("quit", zap.Uint64("frame", t.sess.World.Frame()))
				return nil
			}
		case <-ticker.C:
			t.sess.Advance(t.tick)
			t.blasts += len(t.sess.BlastRadii())
			t.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the user quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	w := t.sess.World
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.sess.Resume()
		return false
	case tcell.KeyTab:
		w.CycleMaterial(1)
		return false
	case tcell.KeyBacktab:
		w.CycleMaterial(-1)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	if m, ok := MaterialForKey(r); ok {
		SelectMaterial(w, m)
		return false
	}
	switch r {
	case 'q':
		return true
	case ' ':
		t.sess.TogglePause()
	case 'n':
		t.sess.StepOnce()
	case 'c':
		t.sess.Clear()
	case 'r':
		t.sess.Reset(t.sess.Seed())
	case 's':
		t.sess.Reset(time.Now().UnixNano())
	case '[':
		AdjustRadius(w, -1)
	case ']':
		AdjustRadius(w, 1)
	}
	return false
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	left := buttons&tcell.ButtonPrimary != 0
	right := buttons&tcell.ButtonSecondary != 0
	if !left && !right {
		t.dragging = false
		return
	}
	x, y := render.GridCoords(ev.Position())
	if !t.dragging {
		t.lastX, t.lastY = x, y
		t.dragging = true
	}
	t.sess.Stroke(t.lastX, t.lastY, x, y, right && !left)
	t.lastX, t.lastY = x, y
}

// Draw renders the grid and the status block under it.
func (t *Terminal) Draw() {
	w := t.sess.World
	size := w.Size()
	t.sink.Draw(w, size)

	state := "running"
	if t.sess.Paused() {
		state = "paused"
	}
	lines := append(w.Status(), fmt.Sprintf("Seed %d  %s  blasts %d", t.sess.Seed(), state, t.blasts))
	lines = append(lines, Help()...)
	t.sink.DrawStatus(render.Rows(size.H), lines)
	t.sink.Show()
}
