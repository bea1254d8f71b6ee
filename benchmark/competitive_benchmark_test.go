// FILE: benchmark/competitive_benchmark_test.go
package benchmark

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gallonchoi/logplus"
)

// ---------------------------------------------------------------------------
// Helpers - identical sink for every framework (a file in a temp dir)
// ---------------------------------------------------------------------------

// newEngine returns a started handler writing to a file in dir.
func newEngine(b *testing.B, dir string) *logplus.Handler {
	h, err := logplus.NewBuilder().
		Directory(dir).
		Name("bench").
		Level(logplus.LevelDebug).
		EnableConsole(false).
		FlushInterval(50 * time.Millisecond).
		BufferThreshold(500).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	if err := h.Init(); err != nil {
		b.Fatal(err)
	}
	return h
}

// newZapLogger returns a zap.Logger writing JSON to a file in dir.
func newZapLogger(b *testing.B, dir string) *zap.Logger {
	f, err := os.Create(filepath.Join(dir, "zap.log"))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { f.Close() })
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger writing text to a file in dir.
func newSlogLogger(b *testing.B, dir string) *slog.Logger {
	f, err := os.Create(filepath.Join(dir, "slog.log"))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { f.Close() })
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ---------------------------------------------------------------------------
// Scenario 1 - Info message, plain string
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("logplus", func(b *testing.B) {
		h := newEngine(b, b.TempDir())
		defer h.Shutdown()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(b, b.TempDir())
		defer l.Sync()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(b, b.TempDir())
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 - record below the level threshold (fast reject path)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Filtered(b *testing.B) {
	b.Run("logplus", func(b *testing.B) {
		h, err := logplus.NewBuilder().
			Directory(b.TempDir()).
			Name("bench").
			Level(logplus.LevelError).
			EnableConsole(false).
			Build()
		if err != nil {
			b.Fatal(err)
		}
		if err := h.Init(); err != nil {
			b.Fatal(err)
		}
		defer h.Shutdown()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Debug("filtered message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.Create(filepath.Join(b.TempDir(), "zap.log"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.ErrorLevel)
		l := zap.New(core)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("filtered message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.Create(filepath.Join(b.TempDir(), "slog.log"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()
		l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelError}))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("filtered message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 - mixed-type arguments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_MixedArgs(b *testing.B) {
	b.Run("logplus", func(b *testing.B) {
		h := newEngine(b, b.TempDir())
		defer h.Shutdown()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = h.Info("request", i, "elapsed", 12.5, "ok", true)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(b, b.TempDir())
		defer l.Sync()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request",
				zap.Int("n", i),
				zap.Float64("elapsed", 12.5),
				zap.Bool("ok", true),
			)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(b, b.TempDir())
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request", "n", i, "elapsed", 12.5, "ok", true)
		}
	})
}
