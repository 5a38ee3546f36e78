package parser

// Backend names, as used in configuration.
const (
	BackendRule = "rule"
	BackendAI   = "ai"
)
