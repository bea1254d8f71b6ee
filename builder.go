// FILE: logplus/builder.go
package logplus

import "time"

// Builder provides a fluent API for building handler configurations.
// It wraps a Config instance and provides chainable methods for
// setting values.
type Builder struct {
	cfg *Config
	err error // accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a configured Handler. The handler is not started;
// call Init on the result.
func (b *Builder) Build() (*Handler, error) {
	if b.err != nil {
		return nil, b.err
	}

	h := NewHandler()
	if err := h.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Level sets the log level threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the log level threshold from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the log file base name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// EnableConsole enables or disables the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget sets the console sink target, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// EnableFile enables or disables the file sink.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// TimestampFormat sets the timestamp layout string.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// FlushInterval sets the worker flush interval.
func (b *Builder) FlushInterval(d time.Duration) *Builder {
	b.cfg.FlushIntervalMs = d.Milliseconds()
	return b
}

// BufferThreshold sets the intake size that triggers an eager wake-up.
func (b *Builder) BufferThreshold(n int) *Builder {
	b.cfg.BufferThreshold = int64(n)
	return b
}

// Example usage:
//
//	h, err := logplus.NewBuilder().
//		Directory("/var/log/app").
//		LevelString("debug").
//		FlushInterval(time.Second).
//		BufferThreshold(100).
//		Build()
//
//	if err == nil {
//		_ = h.Init()
//		defer h.Shutdown()
//		h.Info("handler initialized")
//	}
