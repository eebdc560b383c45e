package ink_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

var allLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

func TestLoggerSilentByDefault(t *testing.T) {
	l := ink.Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range allLevels {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}

	h := l.Handler()
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	for _, derived := range []slog.Handler{h.WithAttrs([]slog.Attr{slog.String("stroke", "marker")}), h.WithGroup("render")} {
		if derived.Enabled(context.Background(), slog.LevelError) {
			t.Errorf("derived handler %T is enabled", derived)
		}
	}
}

func TestSetLoggerReceivesRenderEvents(t *testing.T) {
	orig := ink.Logger()
	t.Cleanup(func() { ink.SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ink.SetLogger(custom)
	if ink.Logger() != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}

	r, err := render.NewRenderer(render.WithCacheCapacity(4))
	if err != nil {
		t.Fatal(err)
	}
	r.ClearCache()

	out := buf.String()
	for _, want := range []string{"render: renderer created", "backend=software", "render: image cache cleared"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := ink.Logger()
	t.Cleanup(func() { ink.SetLogger(orig) })

	ink.SetLogger(slog.Default())
	ink.SetLogger(nil)

	l := ink.Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore a disabled logger")
	}
}

func TestLoggerConcurrentSwap(t *testing.T) {
	orig := ink.Logger()
	t.Cleanup(func() { ink.SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ink.Logger().Debug("stroke: bounds", "box", ink.NewBox(ink.V2(0, 0), ink.V2(1, 1)))
		}()
		go func() {
			defer wg.Done()
			ink.SetLogger(slog.New(slog.DiscardHandler))
			ink.SetLogger(nil)
		}()
	}
	wg.Wait()
}
