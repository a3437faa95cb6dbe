package cmdline

import (
	"strings"

	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	separators = " \t\n\r\f"
	// escapable lists what a backslash escapes inside quotes. Any other backslash is literal.
	escapable = "\\\"'"
)

// Tokenize splits s on whitespace. Single or double quotes group whitespace into one
// argument and are removed. Inside quotes a backslash escapes a quote or another
// backslash. Nothing else is interpreted: operators, variables and # pass through.
func Tokenize(s string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inToken bool
		quote   rune
		escaped bool
	)

	for _, r := range s {
		switch {
		case quote != 0:
			switch {
			case escaped:
				if !strings.ContainsRune(escapable, r) {
					cur.WriteByte('\\')
				}
				cur.WriteRune(r)
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			default:
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case strings.ContainsRune(separators, r):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArguments, "unterminated "+string(quote)+" quote"), "input", s)
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
