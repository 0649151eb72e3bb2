package kit

import "go.uber.org/zap"

// NewLogger builds a JSON production logger tagged with the service name.
// level is any zap level name ("debug", "info", "warn", "error").
func NewLogger(service, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.InitialFields = map[string]any{"service": service}
	return cfg.Build()
}
