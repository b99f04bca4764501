package genai

import (
	"encoding/json"
	"strings"
)

// ParseOutcome is the explicit result of parse-or-degrade: either the
// structured content parsed cleanly, or the raw provider text is preserved
// for use as a single body block. The distinction is never swallowed.
type ParseOutcome struct {
	parsed *GeneratedContent
	raw    string
}

// Parsed returns the structured content and true when parsing succeeded.
func (o ParseOutcome) Parsed() (*GeneratedContent, bool) {
	return o.parsed, o.parsed != nil
}

// RawText returns the unparsed provider text when degraded.
func (o ParseOutcome) RawText() string {
	return o.raw
}

// ParseOrDegrade extracts a structured content object from raw provider
// output. It tolerates markdown code fences and prose around the JSON
// object. On any parse failure the raw text is kept, never discarded.
func ParseOrDegrade(raw string) ParseOutcome {
	cleaned := stripCodeFences(raw)
	jsonStr := firstJSONObject(cleaned)
	if jsonStr == "" {
		return ParseOutcome{raw: strings.TrimSpace(raw)}
	}

	var content GeneratedContent
	if err := json.Unmarshal([]byte(jsonStr), &content); err != nil || content.empty() {
		return ParseOutcome{raw: strings.TrimSpace(raw)}
	}
	return ParseOutcome{parsed: &content}
}

// stripCodeFences drops markdown fence lines (``` or ```json) so the JSON
// body between them survives intact.
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstJSONObject returns the first balanced top-level { ... } block,
// honoring string literals and escapes, or "" when none exists.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case inString && c == '\\':
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
