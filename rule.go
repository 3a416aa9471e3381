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
	"fmt"
	"regexp"
)

// A Rule describes a fragment of a lexical grammar. Rules are immutable
// values: every combinator returns a new Rule and never alters its operands,
// so a Rule may be shared freely, including between concurrent Lex runs.
//
// The zero Rule is invalid; using it as an operand panics.
//
type Rule struct {
	n node
}

// node is the closed set of grammar tree variants. The match methods live in
// match.go.
//
type node interface {
	match(m *matcher, off int) (end int, toks []Token, ok bool)
}

type litNode struct {
	s string
}

type rxNode struct {
	src string
	re  *regexp.Regexp
}

type seqNode struct {
	nodes []node
}

type altNode struct {
	nodes []node
}

type repNode struct {
	n node
}

type optNode struct {
	n node
}

type atomNode struct {
	n node
}

type mapNode struct {
	n   node
	fns []Action
}

// An Action transforms the value produced by a matched Rule. The first
// action attached to a Rule receives the raw match result: the token Value
// for a single-token match, a []Token otherwise. Every subsequent action
// receives the previous action's return value.
//
type Action func(v any) any

// Lit returns a Rule matching exactly the string s.
//
func Lit(s string) Rule {
	return Rule{litNode{s: s}}
}

// Rx returns a Rule matching the given regular expression anchored at the
// current input position. The pattern syntax is that of the regexp package.
// Rx panics if the pattern does not compile; use CompileRx to get an error
// instead.
//
func Rx(pattern string) Rule {
	r, err := CompileRx(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileRx is like Rx but returns an error instead of panicking when the
// pattern does not compile.
//
func CompileRx(pattern string) (Rule, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("rex: cannot compile pattern %q: %w", pattern, err)
	}
	return Rule{rxNode{src: pattern, re: re}}, nil
}

// Seq returns a Rule matching all of the given rules consecutively, each
// rule starting where the previous one ended. A Seq of a single rule is
// that rule; Seq panics if called with no operands.
//
func Seq(rules ...Rule) Rule {
	switch len(rules) {
	case 0:
		panic("rex: Seq requires at least one rule")
	case 1:
		return Rule{rules[0].node()}
	}
	return Rule{seqNode{nodes: nodesOf(rules)}}
}

// Alt returns a Rule matching the first of the given rules that matches at
// the current input position. Alternatives are tried strictly in the order
// given: the first one that matches wins, even if a later one would match a
// longer prefix. An Alt of a single rule is that rule; Alt panics if called
// with no operands.
//
func Alt(rules ...Rule) Rule {
	switch len(rules) {
	case 0:
		panic("rex: Alt requires at least one rule")
	case 1:
		return Rule{rules[0].node()}
	}
	return Rule{altNode{nodes: nodesOf(rules)}}
}

// Then returns a Rule matching r followed by next.
//
func (r Rule) Then(next Rule) Rule {
	return Rule{seqNode{nodes: []node{r.node(), next.node()}}}
}

// Or returns a Rule matching r, or alt if r does not match. See Alt for the
// tie-break policy.
//
func (r Rule) Or(alt Rule) Rule {
	return Rule{altNode{nodes: []node{r.node(), alt.node()}}}
}

// Repeating returns a Rule matching r zero or more times. It keeps matching
// r for as long as r matches and consumes input; an iteration that matches
// without consuming anything ends the loop. A Repeating Rule never fails: at
// zero iterations it succeeds, consuming and emitting nothing.
//
func (r Rule) Repeating() Rule {
	return Rule{repNode{n: r.node()}}
}

// Multiple returns a Rule matching r one or more times. It is equivalent to
// r.Then(r.Repeating()).
//
func (r Rule) Multiple() Rule {
	n := r.node()
	return Rule{seqNode{nodes: []node{n, repNode{n: n}}}}
}

// Optional returns a Rule matching r zero or one time. If r does not match,
// the Optional Rule succeeds, consuming and emitting nothing.
//
func (r Rule) Optional() Rule {
	return Rule{optNode{n: r.node()}}
}

// Atom returns a Rule that matches like r but merges all tokens emitted by
// r into a single token spanning the whole match. Atom changes the shape of
// the output, not the matching semantics.
//
func (r Rule) Atom() Rule {
	return Rule{atomNode{n: r.node()}}
}

// Map returns a Rule that matches like r and, on success, applies the given
// actions in order to the match result. The final return value replaces the
// tokens emitted by r with a single token carrying that value. Calling Map
// on an already mapped Rule extends its action list.
//
func (r Rule) Map(fns ...Action) Rule {
	if len(fns) == 0 {
		return Rule{r.node()}
	}
	if mn, ok := r.n.(mapNode); ok {
		all := make([]Action, 0, len(mn.fns)+len(fns))
		all = append(append(all, mn.fns...), fns...)
		return Rule{mapNode{n: mn.n, fns: all}}
	}
	return Rule{mapNode{n: r.node(), fns: append([]Action(nil), fns...)}}
}

// node unwraps r, catching uninitialized rules at construction time rather
// than at match time.
//
func (r Rule) node() node {
	if r.n == nil {
		panic("rex: use of zero Rule")
	}
	return r.n
}

func nodesOf(rules []Rule) []node {
	ns := make([]node, len(rules))
	for i, r := range rules {
		ns[i] = r.node()
	}
	return ns
}
