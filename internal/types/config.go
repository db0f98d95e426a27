package types

type RunMode string

const (
	// ModeLocal runs gin in debug mode
	ModeLocal RunMode = "local"
	// ModeAPI runs gin in release mode
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
