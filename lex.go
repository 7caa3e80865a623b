package qalqulator

import (
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
)

// Operators contains the runes which are binary operators. '-' is also the
// unary negation operator.
const Operators = "+-*/%^"

// FloatMarker is the token that introduces a float conversion, as in ~(1/3).
const FloatMarker = "~"

// lineLexer splits a line into tokens. Number literals are digits with
// optional underscores and an optional fractional part; a literal directly
// followed by an identifier, as in 2x, is two tokens.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9][0-9_]*(?:\.[0-9][0-9_]*)?`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Op", Pattern: `[-+*/%^]`},
	{Name: "Punct", Pattern: `[=()~]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// fragment returns the text of src starting at byte offset off up to the next
// space, for error messages.
func fragment(src string, off int) string {
	if off < 0 || off >= len(src) {
		return ""
	}
	s := src[off:]
	if k := strings.IndexFunc(s, unicode.IsSpace); k > 0 {
		s = s[:k]
	}
	return s
}
