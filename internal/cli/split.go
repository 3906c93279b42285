package cli

import (
	"strings"
	"unicode"

	"todo/internal/service"
)

// SplitLine breaks a shell line into words. Whitespace separates words;
// single or double quotes group words and are removed. Inside double
// quotes a backslash escapes the next character.
func SplitLine(line string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			switch {
			case r == quote:
				quote = 0
			case r == '\\' && quote == '"':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, service.Invalid("unterminated quote")
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
