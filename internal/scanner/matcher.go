package scanner

import (
	"regexp"
	"strings"
)

// RegisterCall is the registration macro whose call sites are scanned for.
const RegisterCall = "RTI_VLAN_REGISTER_STATIC"

// definePrefix recognizes a preprocessor definition directive in the text
// preceding a match on the same line. A match after `#define` is the macro's
// own definition, not a call site.
var definePrefix = regexp.MustCompile(`#\s*define\b`)

// Matcher extracts registered symbol names from source text. The symbol is
// the second argument of a two-or-more-argument invocation of the
// registration call.
type Matcher struct {
	call    string
	pattern *regexp.Regexp
}

// NewMatcher builds a matcher for call sites of the given macro name.
func NewMatcher(call string) *Matcher {
	if call == "" {
		panic("scanner: call name must not be empty")
	}
	// The first argument may contain parenthesized sub-expressions such
	// as casts, so it is bounded only by the separating comma.
	pattern := regexp.MustCompile(
		`\b` + regexp.QuoteMeta(call) + `\s*\(\s*[^,]+,\s*([A-Za-z_][A-Za-z0-9_]*)\s*[,)]`,
	)
	return &Matcher{call: call, pattern: pattern}
}

// DefaultMatcher returns a matcher for RegisterCall.
func DefaultMatcher() *Matcher {
	return NewMatcher(RegisterCall)
}

// Extract returns every registered symbol name in src, in order of
// appearance. Macro definition lines are skipped.
func (m *Matcher) Extract(src string) []string {
	var names []string
	for _, loc := range m.pattern.FindAllStringSubmatchIndex(src, -1) {
		if isDefinition(src, loc[0]) {
			continue
		}
		names = append(names, src[loc[2]:loc[3]])
	}
	return names
}

// isDefinition reports whether the match starting at off sits on a line
// whose preceding text contains a preprocessor definition directive.
func isDefinition(src string, off int) bool {
	lineStart := strings.LastIndexByte(src[:off], '\n') + 1
	return definePrefix.MatchString(src[lineStart:off])
}
