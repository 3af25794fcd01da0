package logging

import "log/slog"

// Warner receives warnings raised while tables are defined,
// e.g. one call per unusable column name
type Warner interface {
	Warn(msg string)
}

// NopWarner discards every warning
type NopWarner struct{}

func (NopWarner) Warn(string) {}

// SlogWarner forwards warnings to a structured logger
type SlogWarner struct {
	logger *slog.Logger
}

// NewSlogWarner creates a warner writing to logger (slog.Default() when nil)
func NewSlogWarner(logger *slog.Logger) *SlogWarner {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogWarner{logger: logger}
}

func (w *SlogWarner) Warn(msg string) {
	w.logger.Warn(msg, "component", "constrec")
}
