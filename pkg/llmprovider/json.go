package llmprovider

import (
	"encoding/json"
	"regexp"
	"strings"
)

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON strips the markdown fences and surrounding prose models put
// around JSON answers. It returns the candidate body and whether it is valid
// JSON. Text with no object or array is returned unchanged.
func ExtractJSON(text string) (string, bool) {
	body := strings.TrimSpace(text)
	if m := codeFence.FindStringSubmatch(body); len(m) > 1 {
		body = strings.TrimSpace(m[1])
	} else if start := strings.IndexAny(body, "[{"); start >= 0 {
		if end := strings.LastIndexAny(body, "]}"); end > start {
			body = strings.TrimSpace(body[start : end+1])
		}
	}
	return body, json.Valid([]byte(body))
}
