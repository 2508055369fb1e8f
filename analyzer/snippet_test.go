package analyzer

import (
	"testing"
)

func TestExtractSnippet(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name     string
		start    int
		maxLines int
		want     []string
	}{
		{
			name:     "window within bounds",
			start:    1,
			maxLines: 2,
			want:     []string{"b", "c"},
		},
		{
			name:     "window clipped at end",
			start:    3,
			maxLines: 8,
			want:     []string{"d", "e"},
		},
		{
			name:     "start at last line",
			start:    4,
			maxLines: 8,
			want:     []string{"e"},
		},
		{
			name:     "start past end returns nothing",
			start:    5,
			maxLines: 8,
			want:     nil,
		},
		{
			name:     "negative start returns nothing",
			start:    -1,
			maxLines: 8,
			want:     nil,
		},
		{
			name:     "non-positive max falls back to default",
			start:    0,
			maxLines: 0,
			want:     []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSnippet(lines, tt.start, tt.maxLines)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractSnippet() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractSnippet()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
