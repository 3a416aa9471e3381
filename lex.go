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

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrTrailingInput is the error wrapped by the SyntaxError reported when a
// Lex run stops before reaching the end of its input.
//
var ErrTrailingInput = errors.New("trailing input")

// A SyntaxError reports where a Lex run stopped with input left over: either
// the grammar failed to match at that position, or it matched without
// consuming anything, which makes further progress impossible.
//
type SyntaxError struct {
	Pos    Position // position of the first unmatched byte
	Offset Pos      // byte offset of the first unmatched byte
	Input  string   // a snippet of the unmatched input
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v %s", e.Pos, ErrTrailingInput, strconv.Quote(e.Input))
}

// Unwrap returns ErrTrailingInput so that callers can test for it with
// errors.Is.
//
func (e *SyntaxError) Unwrap() error { return ErrTrailingInput }

// queue is a FIFO queue of tokens pending delivery: a single top-level match
// can emit any number of tokens, which Scan then pops one at a time.
//
type queue struct {
	items []Token
	head  int
	tail  int
	count int
}

func (q *queue) push(t Token) {
	if q.head == q.tail && q.count > 0 {
		items := make([]Token, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = t
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first token from the queue. Callers must check that q.count > 0
// beforehand.
//
func (q *queue) pop() Token {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

// A Lexer drives a Rule over an input string and produces tokens one at a
// time. A Lexer is a one-shot object owned by a single run: create a new one
// with Rule.Lex for every input. The Rule itself is immutable and may be
// shared between any number of runs.
//
type Lexer struct {
	queue
	src  *Source
	rule node
	m    matcher
	off  int
	tok  Token
	err  error
	done bool
}

// Lex returns a new Lexer matching r against input, starting at offset 0.
// Two Lex runs over the same rule and input produce the same token sequence;
// side effects performed by actions are the caller's business.
//
func (r Rule) Lex(input string, opts ...Option) *Lexer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lexer{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]Token, 2)},
		src:   NewSource(o.name, input),
		rule:  r.node(),
		m:     matcher{src: input},
	}
	if o.skipSpaces {
		l.m.isSpace = o.isSpace
	}
	return l
}

// Scan advances the Lexer to the next token, which is then available via
// Token. It returns false when the run stops, either by reaching the end of
// the input or by failing to match; Err tells the two apart.
//
func (l *Lexer) Scan() bool {
	for l.count == 0 {
		if l.done || l.err != nil {
			return false
		}
		off := l.m.skip(l.off)
		if off == len(l.m.src) {
			l.off = off
			l.done = true
			return false
		}
		end, toks, ok := l.rule.match(&l.m, off)
		if !ok || end == off {
			l.err = &SyntaxError{
				Pos:    l.src.Position(Pos(off)),
				Offset: Pos(off),
				Input:  snippet(l.m.src[off:]),
			}
			return false
		}
		for _, t := range toks {
			l.push(t)
		}
		l.off = end
	}
	l.tok = l.pop()
	return true
}

// Token returns the last token matched by Scan.
//
func (l *Lexer) Token() Token {
	return l.tok
}

// Err returns the error that stopped the run, or nil if the whole input was
// consumed (or the run has not stopped yet). The error is a *SyntaxError
// wrapping ErrTrailingInput.
//
func (l *Lexer) Err() error {
	return l.err
}

// Source returns the Source being lexed.
//
func (l *Lexer) Source() *Source {
	return l.src
}

// Tokens runs the Lexer to completion and returns the remaining tokens along
// with the error, if any, that stopped the run.
//
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for l.Scan() {
		toks = append(toks, l.Token())
	}
	return toks, l.Err()
}

const snippetLen = 20

// snippet truncates s to a readable length for error messages, cutting on a
// rune boundary.
//
func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	n := snippetLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
