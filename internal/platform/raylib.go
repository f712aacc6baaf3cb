package platform

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// raylib state queried by PollEvents. Tests swap these out.
var (
	isWindowResized   = rl.IsWindowResized
	pollInputEvents   = rl.PollInputEvents
	windowShouldClose = rl.WindowShouldClose
	screenSize        = func() (int, int) { return rl.GetScreenWidth(), rl.GetScreenHeight() }
)

// RaylibWindow is the raylib (GLFW + OpenGL) backed Window.
type RaylibWindow struct {
	closed bool
}

// Open creates the window and makes its GL context current on the calling
// thread. The caller must keep using that thread for every other call.
// raylib's own trace messages are forwarded to log.
func Open(cfg WindowConfig, log *zap.Logger) (*RaylibWindow, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var flags uint32
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(traceLogger(log))
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)

	if rl.GetWindowHandle() == nil {
		return nil, fmt.Errorf("open %q (%dx%d): %w", cfg.Title, cfg.Width, cfg.Height, ErrWindowCreation)
	}
	if !rl.IsWindowReady() {
		rl.CloseWindow()
		return nil, fmt.Errorf("open %q: %w", cfg.Title, ErrGraphicsContext)
	}

	// ESC closes raylib windows by default; only the window chrome should.
	rl.SetExitKey(rl.KeyNull)

	return &RaylibWindow{}, nil
}

// traceLogger adapts raylib's trace callback to zap. raylib's INFO chatter
// (GL extensions, texture uploads) is logged at debug.
func traceLogger(log *zap.Logger) func(int, string) {
	named := log.Named("raylib")
	return func(level int, text string) {
		if ce := named.Check(traceLevel(level), text); ce != nil {
			ce.Write()
		}
	}
}

func traceLevel(level int) zapcore.Level {
	switch {
	case level >= int(rl.LogError):
		return zapcore.ErrorLevel
	case level == int(rl.LogWarning):
		return zapcore.WarnLevel
	default:
		return zapcore.DebugLevel
	}
}

// PollEvents reports what the last buffer swap picked up, then pumps the
// platform queue once more without waiting.
func (w *RaylibWindow) PollEvents() []Event {
	if w.closed {
		return []Event{Close(0)}
	}

	resized := isWindowResized()
	pollInputEvents()
	resized = resized || isWindowResized()

	var events []Event
	if resized {
		events = append(events, Resize(w.Size()))
	}
	if windowShouldClose() {
		events = append(events, Close(0))
	}
	return events
}

func (w *RaylibWindow) Size() (int, int) {
	return screenSize()
}

// Close destroys the GL context and the window. Calling it again is a no-op.
func (w *RaylibWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}
