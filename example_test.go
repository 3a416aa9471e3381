package rex_test

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/db47h/rex"
)

// A postfix calculator: numbers push themselves onto a stack, operators pop
// two operands and push the result. The actions attached with Map run in
// input order, exactly once per matched token, so the stack sees the program
// in program order.
func Example_postfixCalculator() {
	var stack []int64

	push := func(v any) any {
		n, _ := strconv.ParseInt(v.(string), 10, 64)
		stack = append(stack, n)
		return n
	}
	apply := func(v any) any {
		b, a := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		var r int64
		switch v.(string) {
		case "+":
			r = a + b
		case "-":
			r = a - b
		case "*":
			r = a * b
		case "/":
			r = a / b
		}
		stack = append(stack, r)
		return r
	}

	number := rex.Rx(`\d+`).Map(push)
	operator := rex.Rx(`[-+*/]`).Map(apply)
	expr := number.Then(number.Or(operator).Repeating())

	if _, err := expr.Lex("2 3 4 * + 5 -", rex.SkipSpaces()).Tokens(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(stack[0])

	// Output:
	// 9
}

// This example shows how one could use Source.Line to display nicely
// formatted error messages when a Lex run stops on unmatched input.
func ExampleSyntaxError() {
	grammar := rex.Rx(`[0-9]+`).Or(rex.Lit("＋"))
	l := grammar.Lex("42 ＋ 7 x 9", rex.SkipSpaces(), rex.Name("INPUT"))
	for l.Scan() {
	}

	var serr *rex.SyntaxError
	if errors.As(l.Err(), &serr) {
		reportError(l.Source(), serr)
	}

	// The following output will display correctly only with monospaced fonts
	// and a UTF-8 locale.

	// Output:
	// INPUT:1:10: trailing input "x 9"
	// |42 ＋ 7 x 9
	// |        ^
}

// reportError reports a failed lex in the form:
//
//	file:line:col: error description
//		source line where the error occurred followed by a line with a caret at the position of the error.
//						      ^
func reportError(src *rex.Source, e *rex.SyntaxError) {
	fmt.Println(e)
	l := src.Line(e.Offset)
	b := e.Pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Printf("|%s\n", l)
	fmt.Printf("|%*c^\n", getWidth(l[:b]), ' ')
}

// getWidth computes the width in text cells of a given string.
// (supposing rendering with a UTF-8 locale and monospaced font)
func getWidth(l string) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRuneInString(l[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		p := width.LookupRune(r)
		switch p.Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		case width.EastAsianAmbiguous:
			w += 1 // depends on user locale. 2 if locale is CJK, 1 otherwise.
		default:
			w += 1
		}
	}
	return w
}
