package dirtree

import "go.uber.org/zap"

// NewLogger builds a zap logger at the requested level ("debug",
// "info", "warn", "error"). An unrecognized level falls back to info.
// Importers who never call WithLogger/WithConfig get a no-op logger
// from New, so this package is silent by default.
func NewLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
