// Package jsonutil extracts and parses JSON from model responses that may be
// wrapped in markdown code fences or embedded in prose.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripMarkdownFences removes ```json ... ``` or ``` ... ``` wrapping from
// text, returning the content between the fences or the original text when
// no fences are present.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	end := len(lines) - 1
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i
			break
		}
	}
	return strings.Join(lines[1:end], "\n")
}

// ExtractJSON returns the JSON object or array embedded in text: the first
// { or [ matched with the last corresponding } or ].
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")
	if objIdx == -1 && arrIdx == -1 {
		return "", fmt.Errorf("no JSON content found")
	}

	start, endChar := objIdx, "}"
	if objIdx == -1 || (arrIdx != -1 && arrIdx < objIdx) {
		start, endChar = arrIdx, "]"
	}

	text = text[start:]
	end := strings.LastIndex(text, endChar)
	if end == -1 {
		return "", fmt.Errorf("no closing %s found", endChar)
	}
	return text[:end+1], nil
}

// ParseJSON strips fences from raw response text, extracts the JSON content,
// and unmarshals it into T.
func ParseJSON[T any](raw string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(StripMarkdownFences(raw))
	if err != nil {
		return result, fmt.Errorf("%w (raw length: %d)", err, len(raw))
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		preview := jsonStr
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return result, fmt.Errorf("invalid JSON: %w (text: %s)", err, preview)
	}
	return result, nil
}
