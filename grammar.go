package qalqulator

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Line = Binding | Expression
// Binding = ident '=' Expression
// Expression = Unary { Term }
// Term = [ op ] Unary
// Unary = [ '-' ] Primary
// Primary = num | ident | '(' Expression ')' | '~' '(' Expression ')'
//
// The syntax types leave precedence unresolved. Build folds the flat list of
// terms in an Expression into a tree.

// Line is the syntax of one line of input.
type Line struct {
	Binding *Binding    `  @@`
	Expr    *Expression `| @@`
}

// Binding is the syntax of an assignment, name = value.
type Binding struct {
	Pos   lexer.Position
	Name  string      `@Ident "="`
	Value *Expression `@@`
}

// Expression is a flat sequence of operands separated by operators.
type Expression struct {
	Head *Unary  `@@`
	Tail []*Term `@@*`
}

// Term is an operand following another. An empty Op is an implicit
// multiplication, as in 2x.
type Term struct {
	Pos     lexer.Position
	Op      string `@Op?`
	Operand *Unary `@@`
}

// Unary is an optionally negated primary.
type Unary struct {
	Pos     lexer.Position
	Neg     bool     `@"-"?`
	Primary *Primary `@@`
}

// Primary is a single operand. Exactly one field is set.
type Primary struct {
	Pos    lexer.Position
	Number *string     `  @Number`
	Ident  *string     `| @Ident`
	Group  *Expression `| "(" @@ ")"`
	Float  *Expression `| "~" "(" @@ ")"`
}

// grammar builds the line parser the first time it is needed.
var grammar = sync.OnceValue(func() *participle.Parser[Line] {
	return participle.MustBuild[Line](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
		// Distinguishing x = 1 from x + 1 needs the token after the name.
		participle.UseLookahead(2),
	)
})

// ParseLine parses the syntax of a line without resolving precedence. The
// error, if any, is an InputError.
func ParseLine(src string) (*Line, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &EmptyExpressionError{Col: 1}
	}
	l, err := grammar().ParseString("", src)
	if err != nil {
		return nil, syntaxError(src, err)
	}
	return l, nil
}

// syntaxError converts an error from the grammar into an InputError.
func syntaxError(src string, err error) error {
	var uerr *participle.UnexpectedTokenError
	if errors.As(err, &uerr) {
		tok := uerr.Unexpected
		if tok.EOF() {
			return &SyntaxError{Col: tok.Pos.Column, Msg: "unexpected end of input"}
		}
		return &SyntaxError{
			Col:  tok.Pos.Column,
			Text: tok.Value,
			Msg:  "unexpected " + strconv.Quote(tok.Value),
		}
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		text := fragment(src, pos.Offset)
		if text == "" {
			return &SyntaxError{Col: pos.Column, Msg: "unexpected end of input"}
		}
		return &SyntaxError{
			Col:  pos.Column,
			Text: text,
			Msg:  "invalid input " + strconv.Quote(text),
		}
	}
	return errors.Wrap(err, "parsing")
}
