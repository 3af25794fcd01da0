package engine

import "log/slog"

// LoggingObserver logs every lifecycle event at debug level
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer (slog.Default() when nil)
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("command_lifecycle",
		"event", event.Type,
		"query_id", event.QueryID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
