// Package sanitize repairs loosely-structured model output. The model is
// asked to return a single JSON object but nothing guarantees it does, so
// every function here is best-effort and never fails: the worst outcome is
// the input handed back unchanged.
package sanitize

import "strings"

// ExtractJSONObject pulls the first balanced JSON object out of a model
// response that may wrap it in markdown fences or surrounding prose, e.g.
// "เข้าใจค่ะ {...} ลองเล่าต่อนะคะ" -> "{...}".
//
// Brace counting is not string-literal aware: a literal "{" inside a quoted
// value can skew the match. Kept as-is to stay behavior-compatible with the
// edge function this replaces.
func ExtractJSONObject(raw string) string {
	cleaned := stripFences(raw)

	start := strings.IndexByte(cleaned, '{')
	if start == -1 {
		// not JSON-shaped, let the caller's parse fail normally
		return cleaned
	}

	depth := 0
	for i := start; i < len(cleaned); i++ {
		switch cleaned[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cleaned[start : i+1]
			}
		}
	}

	// braces never balanced
	return cleaned
}

// ExtractLooseJSON is the second-chance extraction used by the quiz and
// incident-summary parse paths: everything from the first "{" to the last
// "}". Returns "" when no object-shaped span exists.
func ExtractLooseJSON(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```\n", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
