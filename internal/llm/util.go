// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from an LLM response. Models often
// wrap JSON in ```json ... ``` fences or surround it with conversational
// preamble and trailing chatter even when instructed not to; this strips all
// of that and returns the first balanced JSON object or array found.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// ```json ... ``` fenced block
	if idx := strings.Index(text, "```json"); idx >= 0 {
		start := idx + len("```json")
		if endIdx := strings.Index(text[start:], "```"); endIdx >= 0 {
			return strings.TrimSpace(text[start : start+endIdx])
		}
	}

	// generic ``` ... ``` fenced block, possibly with a language identifier
	if idx := strings.Index(text, "```"); idx >= 0 {
		start := idx + len("```")
		if endIdx := strings.Index(text[start:], "```"); endIdx >= 0 {
			inner := text[start : start+endIdx]
			if nl := strings.Index(inner, "\n"); nl >= 0 {
				firstLine := strings.TrimSpace(inner[:nl])
				if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
					inner = inner[nl+1:]
				}
			}
			return strings.TrimSpace(inner)
		}
	}

	// Bare JSON, possibly surrounded by prose.
	objIdx := strings.IndexByte(text, '{')
	arrIdx := strings.IndexByte(text, '[')

	start := objIdx
	extract := extractJSONObject
	if start < 0 || (arrIdx >= 0 && arrIdx < start) {
		start = arrIdx
		extract = extractJSONArray
	}
	if start >= 0 {
		if extracted := extract(text[start:]); extracted != "" {
			return extracted
		}
	}

	return text
}

// extractJSONObject returns the balanced JSON object at the start of text,
// or "" if text does not begin with one.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of text,
// or "" if text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans for the delimiter that closes the opening one at
// text[0], ignoring delimiters inside JSON string literals.
func extractBalanced(text string, open, clos byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == open:
			depth++
		case !inString && c == clos:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
