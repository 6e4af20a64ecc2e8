// Package recovery turns raw model text into the shapes the pipeline expects:
// verbatim text, hashtag lists, and JSON arrays or objects embedded in prose.
package recovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse means the expected JSON opening delimiter is absent.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrParse means a delimited candidate was found but is not valid JSON.
	ErrParse = errors.New("invalid JSON in response")
)

// ParseError carries the decoder error and a preview of the rejected candidate.
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v (text: %s)", ErrParse, e.Err, e.Preview)
}

// Unwrap lets errors.Is match both ErrParse and the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Verbatim returns the trimmed text. Platform limits are not enforced here.
func Verbatim(raw string) string {
	return strings.TrimSpace(raw)
}

// Hashtags keeps the trimmed lines that start with '#', in order, truncated
// to count. A count of zero or less keeps every match. No match is not an error.
func Hashtags(raw string, count int) []string {
	tags := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		tags = append(tags, line)
		if count > 0 && len(tags) == count {
			break
		}
	}
	return tags
}

// Array recovers a JSON array from raw, tolerating prose around it.
func Array[T any](raw string) ([]T, error) {
	return extract[[]T](raw, '[', ']')
}

// Object recovers a JSON object from raw, tolerating prose around it.
// Fields are decoded as-is; callers must treat every field as optional.
func Object[T any](raw string) (T, error) {
	return extract[T](raw, '{', '}')
}

// extract takes the first opening delimiter through the last closing one.
// If that span does not decode, the top-level balanced spans are tried in
// order so stray brackets in surrounding prose do not hide a valid payload.
// Spans nested inside another span are never tried on their own. The
// reported error is always the one for the first-to-last span.
func extract[T any](raw string, opening, closing byte) (T, error) {
	var zero T

	text := StripMarkdownFences(raw)
	start := strings.IndexByte(text, opening)
	if start == -1 {
		return zero, fmt.Errorf("%w: no %q found in response", ErrMalformedResponse, opening)
	}

	candidate := text[start:]
	if end := strings.LastIndexByte(text, closing); end > start {
		candidate = text[start : end+1]
	}

	var out T
	firstErr := json.Unmarshal([]byte(candidate), &out)
	if firstErr == nil {
		return out, nil
	}

	for i := start; i < len(text); {
		next := strings.IndexByte(text[i:], opening)
		if next == -1 {
			break
		}
		i += next

		span, ok := balancedSpan(text[i:], opening, closing)
		if !ok {
			// Every later delimiter sits inside this unclosed span.
			break
		}
		i += len(span)
		if span == candidate {
			continue
		}

		var v T
		if err := json.Unmarshal([]byte(span), &v); err == nil {
			return v, nil
		}
	}

	return zero, &ParseError{Preview: preview(candidate), Err: firstErr}
}

// balancedSpan returns the prefix of s from its opening delimiter to the
// matching close, skipping delimiters inside JSON strings.
func balancedSpan(s string, opening, closing byte) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// StripMarkdownFences removes a surrounding ```json ... ``` block.
// Text that does not start with a fence is returned trimmed.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	end := len(lines)
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i
			break
		}
	}
	return strings.Join(lines[1:end], "\n")
}

func preview(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
