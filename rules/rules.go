// Copyright 2021 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package rules provides prebuilt rules for common lexical entities:
// identifiers, integer and floating point literals, quoted strings and
// characters.
//
// The rules are plain rex.Rule values. Like any other Rule they are
// immutable, safe to share, and compose freely with application specific
// rules. Quoted string and character rules match the Go escape sequence
// syntax but do not decode it; attach an action calling strconv.Unquote to
// get the decoded value.
//
package rules

import "github.com/db47h/rex"

var (
	// Ident matches a letter or underscore followed by any number of
	// letters, digits and underscores.
	Ident = rex.Rx(`[\pL_][\pL\pN_]*`)

	// Int matches a decimal integer literal.
	Int = rex.Rx(`[0-9]+`)

	// Hex, Oct and Bin match prefixed integer literals. The octal prefix
	// "0o" is optional: a leading zero is enough.
	Hex = rex.Rx(`0[xX][0-9a-fA-F]+`)
	Oct = rex.Rx(`0[oO]?[0-7]+`)
	Bin = rex.Rx(`0[bB][01]+`)

	// Float matches a floating point literal: either a mantissa containing
	// a dot with an optional exponent, or a plain integer mantissa with a
	// mandatory exponent.
	Float = rex.Rx(`[0-9]*\.[0-9]+(?:[eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+`)

	// Number matches any of the numeric literals above. Alternation is
	// ordered choice, so the more specific forms come first: with Int
	// first, "0x24" would lex as the integer "0" followed by "x24".
	Number = rex.Alt(Float, Hex, Bin, Oct, Int)

	// String matches a double quoted string literal with backslash escape
	// sequences. The quotes are part of the match.
	String = rex.Rx(`"(?:[^"\\\n]|\\.)*"`)

	// Char matches a single quoted character literal.
	Char = rex.Rx(`'(?:[^'\\\n]|\\.)'`)

	// EOL matches a single line terminator.
	EOL = rex.Rx("\r?\n")
)
