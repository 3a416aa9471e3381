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

import "unicode"

type options struct {
	name       string
	skipSpaces bool
	isSpace    func(r rune) bool
}

// An Option is a configuration option for a Lex run.
//
type Option func(*options)

func defaultOptions() options {
	return options{
		name:    "input",
		isSpace: unicode.IsSpace,
	}
}

// SkipSpaces makes the Lex run skip runs of whitespace before every match
// attempt. Skipped whitespace is not part of any token span. The default
// space class is unicode.IsSpace; use IsSpace to change it.
//
func SkipSpaces() Option {
	return func(o *options) {
		o.skipSpaces = true
	}
}

// IsSpace defines a custom space class for the Lex run. The function should
// return true for runes to be skipped. IsSpace implies SkipSpaces.
//
func IsSpace(f func(r rune) bool) Option {
	return func(o *options) {
		o.skipSpaces = true
		o.isSpace = f
	}
}

// Name sets the source name used in reported positions. The default name is
// "input".
//
func Name(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
