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

package rex

import "fmt"

// A Token is a single unit of lexer output: the matched source text together
// with its half-open [Pos, End) byte span. Value is the matched text unless
// an Action replaced it with something else.
//
type Token struct {
	Pos   Pos    // span start, byte offset into the input
	End   Pos    // span end (exclusive)
	Text  string // matched source text
	Value any    // matched text, or the result of the rule's action chain
}

// String returns a string representation of the token. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (t Token) String() string {
	if s, ok := t.Value.(string); ok && s == t.Text {
		return fmt.Sprintf("%d: %q", t.Pos, t.Text)
	}
	return fmt.Sprintf("%d: %q (%v)", t.Pos, t.Text, t.Value)
}
