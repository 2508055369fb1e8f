package analyzer

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantOK   bool
	}{
		{
			name:     "named function declaration",
			line:     "function foo(a, b) {",
			wantName: "foo",
			wantOK:   true,
		},
		{
			name:     "const arrow with parens",
			line:     "const bar = (x) => {",
			wantName: "bar",
			wantOK:   true,
		},
		{
			name:     "const async arrow",
			line:     "const baz = async (x) => {",
			wantName: "baz",
			wantOK:   true,
		},
		{
			name:     "const bare parameter arrow",
			line:     "const qux = x => {",
			wantName: "qux",
			wantOK:   true,
		},
		{
			name:     "indented declaration is trimmed first",
			line:     "    function indented() {",
			wantName: "indented",
			wantOK:   true,
		},
		{
			name:     "dollar and underscore identifiers",
			line:     "function $_handler2(e) {",
			wantName: "$_handler2",
			wantOK:   true,
		},
		{
			name:     "function keyword with no space before paren",
			line:     "function compute(x){",
			wantName: "compute",
			wantOK:   true,
		},
		{
			name:   "anonymous function is not matched",
			line:   "function (x) {",
			wantOK: false,
		},
		{
			name:   "let binding is not matched",
			line:   "let bar = (x) => {",
			wantOK: false,
		},
		{
			name:   "var binding is not matched",
			line:   "var bar = (x) => {",
			wantOK: false,
		},
		{
			name:   "class method shorthand is not matched",
			line:   "render() {",
			wantOK: false,
		},
		{
			name:   "const object literal is not matched",
			line:   "const config = {",
			wantOK: false,
		},
		{
			// Split signatures are a documented limitation of the
			// line-based approach; the keyword line alone has no paren.
			name:   "multi-line signature is not detected",
			line:   "const handler =",
			wantOK: false,
		},
		{
			name:   "plain statement",
			line:   "return items.length;",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := Detect(tt.line, 7)
			if ok != tt.wantOK {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if match.Name != tt.wantName {
				t.Errorf("Detect(%q) name = %q, want %q", tt.line, match.Name, tt.wantName)
			}
			if match.LineIndex != 7 {
				t.Errorf("Detect(%q) lineIndex = %d, want 7", tt.line, match.LineIndex)
			}
			if match.RawLine != tt.line {
				t.Errorf("Detect(%q) rawLine = %q, want the original line", tt.line, match.RawLine)
			}
		})
	}
}

func TestDetectPatternOrder(t *testing.T) {
	// "const name = (" and "const name = async (" overlap; the plain-paren
	// pattern must not swallow the async form's name, and vice versa.
	match, ok := Detect("const loadAll = async () => {", 0)
	if !ok || match.Name != "loadAll" {
		t.Fatalf("Detect async arrow = (%q, %v), want (loadAll, true)", match.Name, ok)
	}
}
