package analyzer

import (
	"context"
	"strings"
)

const commentMarker = "// "

// Transformer inserts generated comments above undocumented functions.
type Transformer struct {
	source       CommentSource
	snippetLines int
}

func NewTransformer(source CommentSource, snippetLines int) *Transformer {
	if snippetLines <= 0 {
		snippetLines = DefaultSnippetLines
	}
	return &Transformer{source: source, snippetLines: snippetLines}
}

// hasCommentAbove reports whether the last emitted line already documents
// the upcoming declaration. The check runs against the emitted output, not
// the raw input, which is what makes the transform idempotent: a comment
// inserted moments ago counts the same as one that was always there.
func hasCommentAbove(out []string) bool {
	if len(out) == 0 {
		return false
	}
	prev := strings.TrimSpace(out[len(out)-1])
	return strings.HasPrefix(prev, "//") || strings.HasPrefix(prev, "/*")
}

// Transform returns content with a generated comment inserted above every
// detected function that lacks one. Original lines pass through unchanged
// and in order; only new comment lines are interleaved. A comment source
// that errors or returns an empty string leaves that function undocumented
// rather than failing the file.
func (t *Transformer) Transform(ctx context.Context, content, path string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		match, ok := Detect(line, i)
		if ok && !hasCommentAbove(out) {
			snippet := ExtractSnippet(lines, i, t.snippetLines)
			meta := CommentMetadata{FunctionName: match.Name, FilePath: path}

			comment, err := t.source.Generate(ctx, snippet, meta)
			if err == nil {
				for _, part := range strings.Split(comment, "\n") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					out = append(out, commentMarker+part)
				}
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
