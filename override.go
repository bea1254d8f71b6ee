// FILE: logplus/override.go
package logplus

import (
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the handler's
// pending configuration. Each override should be in the format
// "key=value". Rejected once the handler is running, like every other
// configuration mutator.
//
// Example:
//
//	h := logplus.NewHandler()
//	err := h.ApplyOverride(
//	    "directory=/var/log/app",
//	    "level=debug",
//	    "flush_interval_ms=500",
//	)
func (h *Handler) ApplyOverride(overrides ...string) error {
	cfg := h.getConfig().Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return h.ApplyConfig(cfg)
}

// applyConfigField sets one configuration field from its string form.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		// Accept both numeric and named levels.
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = n
			return nil
		}
		level, err := Level(value)
		if err != nil {
			return err
		}
		cfg.Level = level

	case "directory":
		cfg.Directory = value

	case "name":
		cfg.Name = value

	case "extension":
		cfg.Extension = value

	case "enable_console":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for enable_console: '%s'", value)
		}
		cfg.EnableConsole = b

	case "console_target":
		cfg.ConsoleTarget = value

	case "enable_file":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for enable_file: '%s'", value)
		}
		cfg.EnableFile = b

	case "timestamp_format":
		cfg.TimestampFormat = value

	case "flush_interval_ms":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer for flush_interval_ms: '%s'", value)
		}
		cfg.FlushIntervalMs = n

	case "buffer_threshold":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer for buffer_threshold: '%s'", value)
		}
		cfg.BufferThreshold = n

	case "internal_errors_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for internal_errors_to_stderr: '%s'", value)
		}
		cfg.InternalErrorsToStderr = b

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}

// combineConfigErrors combines multiple configuration errors into one.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("logplus: multiple configuration errors:")
	for i, err := range errs {
		msg := strings.TrimPrefix(err.Error(), "logplus: ")
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(") ")
		sb.WriteString(msg)
	}
	return fmtErrorf("%s", sb.String())
}
