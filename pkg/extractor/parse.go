package extractor

import "strings"

// stripFences removes markdown code-block delimiters the model tends to wrap
// its JSON in (```json ... ```), wherever they appear in the reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}
