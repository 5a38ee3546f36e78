package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// TimeKey is the key used for timestamps in structured output.
	TimeKey = "ts"
)
