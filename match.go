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
	"strings"
	"unicode/utf8"
)

// matcher holds the matching context of a single Lex run: the input string
// and the whitespace class. It is never written to while matching, so any
// node can be retried at any offset with no residual state.
//
type matcher struct {
	src     string
	isSpace func(r rune) bool // nil when whitespace skipping is disabled
}

// skip returns the offset of the first rune at or after off that is not
// whitespace. Whitespace is skipped before every leaf match attempt so that
// a single composite match can span whitespace separated entities.
//
func (m *matcher) skip(off int) int {
	if m.isSpace == nil {
		return off
	}
	for off < len(m.src) {
		r, sz := utf8.DecodeRuneInString(m.src[off:])
		if !m.isSpace(r) {
			break
		}
		off += sz
	}
	return off
}

func (n litNode) match(m *matcher, off int) (int, []Token, bool) {
	off = m.skip(off)
	if !strings.HasPrefix(m.src[off:], n.s) {
		return off, nil, false
	}
	end := off + len(n.s)
	return end, []Token{{Pos: Pos(off), End: Pos(end), Text: n.s, Value: n.s}}, true
}

func (n rxNode) match(m *matcher, off int) (int, []Token, bool) {
	off = m.skip(off)
	// the compiled pattern is \A anchored, so a non-nil loc is a match at
	// off exactly.
	loc := n.re.FindStringIndex(m.src[off:])
	if loc == nil {
		return off, nil, false
	}
	end := off + loc[1]
	text := m.src[off:end]
	return end, []Token{{Pos: Pos(off), End: Pos(end), Text: text, Value: text}}, true
}

func (n seqNode) match(m *matcher, off int) (int, []Token, bool) {
	var toks []Token
	end := off
	for _, c := range n.nodes {
		e, ts, ok := c.match(m, end)
		if !ok {
			// report the starting offset: a failed sequence consumes
			// nothing.
			return off, nil, false
		}
		toks = append(toks, ts...)
		end = e
	}
	return end, toks, true
}

func (n altNode) match(m *matcher, off int) (int, []Token, bool) {
	for _, c := range n.nodes {
		if end, toks, ok := c.match(m, off); ok {
			return end, toks, true
		}
	}
	return off, nil, false
}

func (n repNode) match(m *matcher, off int) (int, []Token, bool) {
	var toks []Token
	end := off
	for {
		e, ts, ok := n.n.match(m, end)
		if !ok || e == end {
			// an iteration that consumes nothing would repeat forever;
			// it ends the loop just like a failed one.
			return end, toks, true
		}
		toks = append(toks, ts...)
		end = e
	}
}

func (n optNode) match(m *matcher, off int) (int, []Token, bool) {
	if end, toks, ok := n.n.match(m, off); ok {
		return end, toks, true
	}
	return off, nil, true
}

func (n atomNode) match(m *matcher, off int) (int, []Token, bool) {
	end, toks, ok := n.n.match(m, off)
	if !ok {
		return off, nil, false
	}
	return end, []Token{mergeTokens(m, end, toks)}, true
}

func (n mapNode) match(m *matcher, off int) (int, []Token, bool) {
	end, toks, ok := n.n.match(m, off)
	if !ok {
		return off, nil, false
	}
	t := mergeTokens(m, end, toks)
	t.Value = runActions(n.fns, actionArg(toks))
	return end, []Token{t}, true
}

// mergeTokens merges the tokens emitted by a node's child into a single
// token covering the child's whole consumed span. A single child token keeps
// its Value (which an action may have transformed); multiple tokens collapse
// to the matched text.
//
func mergeTokens(m *matcher, end int, toks []Token) Token {
	if len(toks) == 0 {
		return Token{Pos: Pos(end), End: Pos(end), Text: "", Value: ""}
	}
	start := int(toks[0].Pos)
	text := m.src[start:end]
	t := Token{Pos: Pos(start), End: Pos(end), Text: text, Value: text}
	if len(toks) == 1 {
		t.Value = toks[0].Value
	}
	return t
}

// actionArg builds the value handed to the first action of a mapped rule.
//
func actionArg(toks []Token) any {
	if len(toks) == 1 {
		return toks[0].Value
	}
	return toks
}

// runActions threads v through the action chain: each action receives the
// previous action's return value. Actions run synchronously, exactly once
// per successful match, in left to right scan order.
//
func runActions(fns []Action, v any) any {
	for _, f := range fns {
		v = f(v)
	}
	return v
}
