package analyzer

// DefaultSnippetLines bounds how much of the function body feeds the
// heuristics. Eight lines is enough to catch the common side effects
// (state setters, fetch calls, logging) without reading whole files.
const DefaultSnippetLines = 8

// ExtractSnippet returns up to maxLines consecutive lines starting at start,
// clipped to the end of the sequence. The slice aliases the input; callers
// must not mutate it.
func ExtractSnippet(lines []string, start, maxLines int) []string {
	if start < 0 || start >= len(lines) {
		return nil
	}
	if maxLines <= 0 {
		maxLines = DefaultSnippetLines
	}

	end := start + maxLines
	if end > len(lines) {
		end = len(lines)
	}

	return lines[start:end]
}
