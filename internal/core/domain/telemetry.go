package domain

// LogLevel is the severity of a line attached to a telemetry vertex.
// Levels are ordered, so Warn and above can be told apart with a comparison.
type LogLevel uint8

const (
	// LogLevelDebug is per-attempt detail.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is normal progress.
	LogLevelInfo
	// LogLevelWarn marks a failed attempt or a skipped source.
	LogLevelWarn
	// LogLevelError marks a failed bundle.
	LogLevelError
)

var logLevelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the upper-case level name. Out of range levels print as INFO.
func (l LogLevel) String() string {
	if int(l) < len(logLevelNames) {
		return logLevelNames[l]
	}
	return logLevelNames[LogLevelInfo]
}
