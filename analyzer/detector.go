// Package analyzer detects undocumented JavaScript/TypeScript function
// declarations and generates short explanatory comments for them using
// purely offline heuristics.
package analyzer

import (
	"regexp"
	"strings"
)

// FunctionMatch describes a line that looks like the start of a function
// declaration. It lives only for the duration of that line's processing.
type FunctionMatch struct {
	Name      string
	LineIndex int
	RawLine   string
}

// Detection is purely lexical over the trimmed line text. A signature split
// across lines is not detected, and a line matching one of these shapes is
// matched even inside a string or comment. That trade-off is intentional:
// matching is cheap, predictable, and good enough for the declaration styles
// these patterns cover.
var functionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^function\s+([A-Za-z0-9_$]+)\s*\(`),
	regexp.MustCompile(`^const\s+([A-Za-z0-9_$]+)\s*=\s*\(`),
	regexp.MustCompile(`^const\s+([A-Za-z0-9_$]+)\s*=\s*async\s*\(`),
	regexp.MustCompile(`^const\s+([A-Za-z0-9_$]+)\s*=\s*[A-Za-z0-9_$]*\s*=>`),
}

// Detect reports whether the given line starts a function declaration.
// Patterns are tried in a fixed order and the first capture wins.
func Detect(line string, index int) (FunctionMatch, bool) {
	trimmed := strings.TrimSpace(line)

	for _, pattern := range functionPatterns {
		if m := pattern.FindStringSubmatch(trimmed); m != nil {
			return FunctionMatch{
				Name:      m[1],
				LineIndex: index,
				RawLine:   line,
			}, true
		}
	}

	return FunctionMatch{}, false
}
