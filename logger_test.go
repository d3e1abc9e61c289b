package px

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer at debug level for
// the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("w", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs should stay silent")
	}
	if _, ok := h.WithGroup("blit").(nopHandler); !ok {
		t.Error("WithGroup should stay silent")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should install a disabled logger")
	}
}

func TestImageLogsBlitPath(t *testing.T) {
	buf := captureLogs(t)

	_, r := newTestRenderer(8, 8)
	r.Image(0, 0, 2, 2, make([]Color, 4))
	r.Image(-1, 0, 2, 2, make([]Color, 4))

	out := buf.String()
	for _, want := range []string{"px: image blit", "path=direct", "path=clipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestFillLogsEdgeCount(t *testing.T) {
	buf := captureLogs(t)

	cv := NewCanvas(20, 20)
	cv.SetFillStyle(Red)
	cv.Rect(2, 2, 5, 5)
	cv.Fill()

	if out := buf.String(); !strings.Contains(out, "edges=4") {
		t.Errorf("fill log missing edge count:\n%s", out)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("px: image blit", "path", "direct")
	}
}
