package log

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // production or development (anything else is treated as development)
	Encoding     string // console or json
	ColorEnabled bool   // colored level names, console encoding only
}
