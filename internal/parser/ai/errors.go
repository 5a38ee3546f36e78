package ai

import "errors"

var (
	ErrEmptyResponse = errors.New("empty response from LLM")
	ErrInvalidJSON   = errors.New("LLM response is not valid JSON")
)
