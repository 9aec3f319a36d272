package app

import (
	"fmt"
	"time"

	"chrono-ghost/internal/config"
	"chrono-ghost/internal/scene"
	"chrono-ghost/internal/scripting"
	"chrono-ghost/internal/sims/sand"

	"go.uber.org/zap"
)

// Session owns one sand world and everything a front end does to it:
// pause state, scene and script loading, and blast collection. Front ends
// call it from a single goroutine.
type Session struct {
	World *sand.World

	cfg      *config.Config
	scene    *scene.Scene
	script   *scripting.Engine
	log      *zap.Logger
	seed     int64
	paused   bool
	tickOnce bool
}

// NewSession builds the world from cfg, lays out the configured scene and
// runs the configured script.
func NewSession(cfg *config.Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		World: sand.NewWithConfig(cfg.Sand),
		cfg:   cfg,
		log:   log,
		seed:  cfg.Sand.Seed,
	}
	s.World.SetBrush(cfg.SandBrush())

	if cfg.Sim.Scene != "" {
		sc, err := scene.Load(cfg.Sim.Scene)
		if err != nil {
			return nil, err
		}
		s.scene = sc
	}
	if err := s.reset(s.seed); err != nil {
		return nil, err
	}

	if cfg.Sim.Script != "" {
		s.script = scripting.NewEngine(s.World, scripting.Materials{
			Resolve: sand.ResolveMaterial,
			Name:    sand.MaterialName,
		}, log)
		if err := s.script.DoFile(cfg.Sim.Script); err != nil {
			s.script.Close()
			return nil, err
		}
		log.Info("script loaded", zap.String("file", cfg.Sim.Script), zap.Bool("on_tick", s.script.HasTickHook()))
	}
	log.Info("session ready",
		zap.Int("width", cfg.Sand.Width),
		zap.Int("height", cfg.Sand.Height),
		zap.Int64("seed", s.seed),
		zap.String("layout", cfg.Sand.Layout))
	return s, nil
}

func (s *Session) reset(seed int64) error {
	s.World.Reset(seed)
	if s.scene == nil {
		return nil
	}
	if err := s.scene.Apply(s.World, sand.ResolveMaterial); err != nil {
		return fmt.Errorf("apply scene %s: %w", s.cfg.Sim.Scene, err)
	}
	s.log.Debug("scene applied", zap.String("name", s.scene.Name), zap.Int("strokes", len(s.scene.Strokes)))
	return nil
}

// Advance runs the ticks due after dt unless paused. A pending single step
// runs exactly one tick even while paused. It returns the ticks run.
func (s *Session) Advance(dt time.Duration) int {
	var n int
	switch {
	case s.tickOnce:
		s.World.Step()
		s.tickOnce = false
		n = 1
	case s.paused:
		return 0
	default:
		n = s.World.Advance(dt)
	}
	if n > 0 && s.script != nil {
		if err := s.script.OnTick(s.World.Frame()); err != nil {
			s.log.Warn("script hook disabled", zap.Error(err))
			s.script.Close()
			s.script = nil
		}
	}
	return n
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the paused state.
func (s *Session) Resume() { s.paused = false }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// StepOnce schedules a single tick for the next Advance.
func (s *Session) StepOnce() { s.tickOnce = true }

// Reset rebuilds the world from seed and replays the scene.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.tickOnce = false
	if err := s.reset(seed); err != nil {
		s.log.Error("reset", zap.Error(err))
		return
	}
	s.log.Info("world reset", zap.Int64("seed", seed))
}

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Clear empties the world.
func (s *Session) Clear() {
	s.World.Clear()
	s.log.Info("world cleared")
}

// Stroke paints with the brush from the previous pointer position to the
// current one. Erase paints empty cells instead of the brush material.
func (s *Session) Stroke(x0, y0, x1, y1 int, erase bool) {
	if !erase {
		s.World.Drag(x0, y0, x1, y1)
		return
	}
	b := s.World.Brush()
	s.World.PaintLine(x0, y0, x1, y1, b.Radius, uint8(sand.Empty))
}

// BlastRadii drains the detonations since the last call.
func (s *Session) BlastRadii() []int {
	blasts := s.World.TakeBlasts()
	if len(blasts) == 0 {
		return nil
	}
	radii := make([]int, len(blasts))
	for i, b := range blasts {
		radii[i] = b.Radius
	}
	s.log.Debug("blasts", zap.Ints("radii", radii))
	return radii
}

// Close releases the script VM.
func (s *Session) Close() {
	if s.script != nil {
		s.script.Close()
		s.script = nil
	}
}
