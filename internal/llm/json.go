package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON strips markdown code fences that models wrap around JSON replies.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}

// DecodeJSON cleans reply and unmarshals it into v.
func DecodeJSON(reply string, v any) error {
	if err := json.Unmarshal([]byte(CleanJSON(reply)), v); err != nil {
		return fmt.Errorf("decoding model reply: %w", err)
	}
	return nil
}
