package stringsx

import (
	"strings"
	"unicode/utf8"
)

// SplitSymbolRun splits a run of punctuation runes into the
// longest-matching operator from ops at each position (the longest
// match wins whatever order ops are listed in) and single-rune
// fallbacks for everything else.
// Unlike a separator split, every input rune reappears in the output:
// this is how the tokenizer turns "<==" into ["<=", "="] rather than
// discarding anything.
func SplitSymbolRun(s string, ops []string) []string {
	out := make([]string, 0, len(s))

	for i := 0; i < len(s); {
		matched := ""
		for _, op := range ops {
			if len(op) > len(matched) && strings.HasPrefix(s[i:], op) {
				matched = op
			}
		}
		if matched != "" {
			out = append(out, matched)
			i += len(matched)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}

	return out
}
