package analyzer

import (
	"context"
	"regexp"
	"strings"
)

// CommentMetadata carries identifying context into comment generation.
// FilePath is informational only; no heuristic reads it yet.
type CommentMetadata struct {
	FunctionName string
	FilePath     string
}

// CommentSource produces a description for one function. The heuristic
// implementation below is synchronous and infallible, but the interface
// admits sources that suspend or fail (a networked backend, for example).
// A source that returns an error or an empty string means "no comment for
// this function", never "abort the file".
type CommentSource interface {
	Generate(ctx context.Context, snippet []string, meta CommentMetadata) (string, error)
}

// HeuristicSource generates comments from the function name and a bounded
// window of its body. It performs no I/O and never fails.
type HeuristicSource struct{}

func NewHeuristicSource() *HeuristicSource {
	return &HeuristicSource{}
}

func (s *HeuristicSource) Generate(ctx context.Context, snippet []string, meta CommentMetadata) (string, error) {
	return describeFunction(snippet, meta), nil
}

// Verb rules are checked in priority order against the lowercased name;
// the first matching prefix wins.
var verbRules = []struct {
	prefixes []string
	verb     string
}{
	{[]string{"get"}, "Gets"},
	{[]string{"set"}, "Sets"},
	{[]string{"create", "build"}, "Creates"},
	{[]string{"update"}, "Updates"},
	{[]string{"delete", "remove"}, "Deletes"},
	{[]string{"validate"}, "Validates"},
	{[]string{"send"}, "Sends"},
	{[]string{"fetch", "load"}, "Fetches"},
	{[]string{"calculate", "compute"}, "Calculates"},
}

var (
	camelBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	setterCallRe   = regexp.MustCompile(`\bset[A-Z][A-Za-z0-9_$]*\s*\(|\bsetState\s*\(`)
	resetterCallRe = regexp.MustCompile(`\breset[A-Z][A-Za-z0-9_$]*\s*\(|\bresetFields?\b`)
	closeModalRe   = regexp.MustCompile(`\bcloseModal\s*\(`)
	closeCallRe    = regexp.MustCompile(`\bclose\s*\(`)
	openModalRe    = regexp.MustCompile(`\bopenModal\s*\(`)
	openCallRe     = regexp.MustCompile(`\bopen\s*\(`)
	httpCallRe     = regexp.MustCompile(`\bfetch\s*\(|\baxios\.|\.get\s*\(|\.post\s*\(`)
	consoleLogRe   = regexp.MustCompile(`console\.log`)
)

// describeFunction synthesizes a 1-2 sentence description from three
// independent passes: verb inference from the name, parameter extraction
// from the signature line, and a side-effect scan over the body window.
// It always returns a non-empty string.
func describeFunction(snippet []string, meta CommentMetadata) string {
	verb := inferVerb(meta.FunctionName)
	subject := readableSubject(meta.FunctionName)

	var signature, body string
	if len(snippet) > 0 {
		signature = snippet[0]
	}
	if len(snippet) > 1 {
		body = strings.Join(snippet[1:], "\n")
	}

	params := extractParams(signature)
	effects := detectEffects(body)
	used := usedParams(params, body)

	sentences := []string{verb + " " + subject + "."}
	switch {
	case len(effects) > 0:
		sentences = append(sentences, "It "+joinList(effects)+".")
	case len(used) > 0:
		sentences = append(sentences, "It uses "+joinList(used)+" as input data.")
	case len(params) > 0:
		sentences = append(sentences, "It accepts "+joinList(params)+" to configure the behavior.")
	}

	return strings.Join(sentences, " ")
}

func inferVerb(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range verbRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(lower, prefix) {
				return rule.verb
			}
		}
	}
	return "Handles"
}

// readableSubject turns a function name into prose: the leading lowercase
// run (the verb-like prefix) and any leading underscore/dollar are dropped,
// camel-case boundaries and underscores/hyphens become spaces, and the
// result is lowercased. Falls back to the full name, then to a generic
// phrase, so the subject is never empty.
func readableSubject(name string) string {
	i := 0
	for i < len(name) && name[i] >= 'a' && name[i] <= 'z' {
		i++
	}
	rest := strings.TrimLeft(name[i:], "_$")
	if rest == "" {
		rest = name
	}
	if rest == "" {
		return "the requested operation"
	}

	words := camelBoundary.ReplaceAllString(rest, "$1 $2")
	words = strings.NewReplacer("_", " ", "-", " ").Replace(words)
	return strings.TrimSpace(strings.ToLower(words))
}

// extractParams reads parameter names from the substring between the first
// "(" and the first ")" on the signature line. Multi-line parameter lists
// are not supported. Type annotations and default values are stripped at
// the first ":" or "=".
func extractParams(signature string) []string {
	open := strings.Index(signature, "(")
	if open == -1 {
		return nil
	}
	end := strings.Index(signature[open+1:], ")")
	if end == -1 {
		return nil
	}

	var params []string
	for _, token := range strings.Split(signature[open+1:open+1+end], ",") {
		name := token
		if cut := strings.IndexAny(name, ":="); cut != -1 {
			name = name[:cut]
		}
		name = strings.TrimSpace(name)
		if name != "" {
			params = append(params, name)
		}
	}
	return params
}

// detectEffects scans the body window for recognizable side effects. The
// signals are independent and evaluated in a fixed order so the resulting
// phrase list is stable for a given input.
func detectEffects(body string) []string {
	if body == "" {
		return nil
	}
	mentionsModal := strings.Contains(strings.ToLower(body), "modal")

	var effects []string
	if setterCallRe.MatchString(body) {
		effects = append(effects, "updates local state or form fields")
	}
	if resetterCallRe.MatchString(body) {
		effects = append(effects, "resets related fields or state")
	}
	if closeModalRe.MatchString(body) || (mentionsModal && closeCallRe.MatchString(body)) {
		effects = append(effects, "closes a modal dialog")
	}
	if openModalRe.MatchString(body) || (mentionsModal && openCallRe.MatchString(body)) {
		effects = append(effects, "opens a modal dialog")
	}
	if httpCallRe.MatchString(body) {
		effects = append(effects, "performs an HTTP request")
	}
	if consoleLogRe.MatchString(body) {
		effects = append(effects, "logs debug information to the console")
	}
	return effects
}

func usedParams(params []string, body string) []string {
	if body == "" {
		return nil
	}
	var used []string
	for _, param := range params {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(param) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(body) {
			used = append(used, param)
		}
	}
	return used
}

// joinList joins items with commas, the last with " and " (no Oxford comma).
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
