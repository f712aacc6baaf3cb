// Package app owns the window, the graphics surface and the event loop.
package app

import (
	"fmt"
	"time"

	"solarsystem/internal/config"
	"solarsystem/internal/platform"
	"solarsystem/internal/projection"
	"solarsystem/internal/render"

	"go.uber.org/zap"
)

// App is the viewer: one window, one GL context, one render loop, all on
// the calling goroutine.
type App struct {
	win      platform.Window
	gfx      render.Graphics
	renderer *render.Renderer
	log      *zap.Logger
	now      func() time.Time

	events platform.Dispatcher
	proj   projection.Projection
	start  time.Time
	frames uint64

	quit     bool
	exitCode int
	err      error
	closed   bool
}

// Option customises an App built by New.
type Option func(*App)

// WithClock replaces time.Now as the frame clock.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New wires an already opened window and graphics surface. The App takes
// ownership of win and releases it in Close.
func New(win platform.Window, gfx render.Graphics, r *render.Renderer, log *zap.Logger, opts ...Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		win:      win,
		gfx:      gfx,
		renderer: r,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.events.OnResize(a.handleResize)
	a.events.OnClose(a.handleClose)
	return a
}

// Open creates the native window described by cfg and returns an App that
// draws into it.
func Open(cfg *config.Config, log *zap.Logger) (*App, error) {
	wc := cfg.WindowConfig()
	win, err := platform.Open(wc, log)
	if err != nil {
		return nil, err
	}
	log.Info("window opened",
		zap.String("title", wc.Title),
		zap.Int("width", wc.Width),
		zap.Int("height", wc.Height),
		zap.Bool("vsync", wc.VSync))

	r := render.NewRenderer()
	r.HUD = cfg.HUD
	return New(win, render.NewRaylibGraphics(), r, log), nil
}

// Run configures the initial projection and pumps events until a close
// event arrives. Whenever no event is pending exactly one frame is drawn;
// there is no frame cap. The returned code is the close event's payload.
func (a *App) Run() (int, error) {
	w, h := a.win.Size()
	if err := a.configure(w, h); err != nil {
		return 1, err
	}

	for !a.quit {
		events := a.win.PollEvents()
		if len(events) == 0 {
			a.drawFrame()
			continue
		}

		for _, ev := range events {
			if !a.events.Dispatch(ev) {
				a.log.Debug("unhandled event", zap.Stringer("type", ev.Type))
			}
			if a.err != nil {
				return 1, a.err
			}
			if a.quit {
				break
			}
		}
	}

	a.log.Info("event loop finished",
		zap.Int("exit_code", a.exitCode),
		zap.Uint64("frames", a.frames))
	return a.exitCode, nil
}

// Close releases the window. Safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.win.Close()
}

func (a *App) handleResize(width, height int) {
	if err := a.configure(width, height); err != nil {
		a.err = err
	}
}

func (a *App) handleClose(code int) {
	a.quit = true
	a.exitCode = code
}

func (a *App) configure(width, height int) error {
	p, err := projection.Configure(width, height)
	if err != nil {
		a.log.Error("projection setup failed", zap.Int("width", width), zap.Int("height", height), zap.Error(err))
		return fmt.Errorf("resize: %w", err)
	}
	a.proj = p
	a.log.Debug("projection configured",
		zap.Int("width", p.Viewport.Width),
		zap.Int("height", p.Viewport.Height),
		zap.Float64("aspect", p.Aspect))
	return nil
}

func (a *App) drawFrame() {
	now := a.now()
	if a.start.IsZero() {
		a.start = now
	}
	a.renderer.DrawFrame(a.gfx, a.proj, now.Sub(a.start))
	a.frames++
}
