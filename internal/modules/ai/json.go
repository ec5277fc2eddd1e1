package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON parses an oracle response into out. Models occasionally wrap
// JSON in markdown fences or surround it with prose despite instructions,
// so strip fences first and fall back to the outermost object. Schema
// violations become ErrBadResponse.
func DecodeJSON(raw string, out interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: not valid JSON", ErrBadResponse)
}
