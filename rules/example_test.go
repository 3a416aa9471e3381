package rules_test

import (
	"fmt"

	"github.com/db47h/rex"
	"github.com/db47h/rex/rules"
)

type item struct {
	kind string
	text string
}

// tag returns an action that labels the matched text with a token kind.
func tag(kind string) rex.Action {
	return func(v any) any {
		return item{kind, v.(string)}
	}
}

// TinyGo: a lexer for a minimal Go-like language.
func Example_go() {
	input := `var str = "some\tstring"
var flt = -.42`

	lang := rex.Alt(
		rules.String.Map(tag("string")),
		rules.Float.Map(tag("float")),
		rules.Number.Map(tag("number")),
		rules.Ident.Map(tag("ident")),
		rules.EOL.Map(tag("semicolon")),
		rex.Rx(`[-=.]`).Map(tag("raw char")),
	)

	// newlines are tokens here, so only skip spaces and tabs
	l := lang.Lex(input, rex.IsSpace(func(r rune) bool { return r == ' ' || r == '\t' }))
	for l.Scan() {
		it := l.Token().Value.(item)
		fmt.Printf("%-9s %q\n", it.kind, it.text)
	}
	if err := l.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// ident     "var"
	// ident     "str"
	// raw char  "="
	// string    "\"some\\tstring\""
	// semicolon "\n"
	// ident     "var"
	// ident     "flt"
	// raw char  "="
	// raw char  "-"
	// float     ".42"
}
