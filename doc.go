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

/*
Package rex builds lexers from regular expression combinators.

A lexical grammar is described declaratively by composing small matching
primitives, literal strings and regular expressions, with a handful of
combinators: sequence, ordered alternation, repetition, grouping and action
attachment. The result is a single immutable Rule value that can be driven
over an input string to produce a stream of tokens:

	number := rex.Rx(`\d+`)
	operator := rex.Rx(`[-+*^/]`)
	expr := number.Then(number.Or(operator).Repeating())

	l := expr.Lex("14 6 + 7 ^", rex.SkipSpaces())
	for l.Scan() {
		fmt.Println(l.Token().Text)
	}
	if l.Err() != nil {
		// the input was not fully consumed
	}

Matching

Matching is a plain recursive descent over the Rule tree. A sequence matches
all of its children consecutively, each child starting where the previous one
ended; if any child fails, the whole sequence fails and consumes nothing. An
alternation tries its children strictly in declaration order and commits to
the first one that matches, even if a later alternative would have matched a
longer prefix. This mirrors the semantics of the regular expression '|'
operator and lets grammars place a specific literal before a general pattern
to give the literal priority. A repetition greedily matches its child for as
long as the child matches and consumes input; it never fails itself, and an
iteration that consumes nothing ends the loop, so repetitions of patterns
that can match the empty string still terminate.

There is no backtracking across sequence boundaries and no memoization:
matching failure simply propagates to the nearest alternation, repetition or
optional that can absorb it. As with regular expression alternation,
pathological grammars can therefore be slow on adversarial input.

When whitespace skipping is enabled (see SkipSpaces), a run of space runes is
skipped before every primitive match attempt, so that a single composite
match can span whitespace separated entities. Skipped whitespace never
appears in token spans.

Actions

Map attaches functions to a Rule. When the rule matches, the attached
functions run immediately, in attachment order, each receiving the previous
one's return value; the first receives the raw match result. The final value
replaces the rule's tokens with a single token carrying it. Actions run
synchronously, exactly once per successful match, in left to right order over
the input, so an action is free to mutate caller owned state, such as an
evaluator stack, and will observe tokens in program order.

Errors

Failure to match at some input position is not an error: it is the normal
mechanism by which alternatives are selected and repetitions stop. A grammar
construction mistake, such as an alternation with no operands or an invalid
regular expression pattern, is a programmer error and panics at construction
time. The only lex-time error is trailing input: the driving loop stopped
before consuming the whole input. It is reported by Lexer.Err as a
*SyntaxError wrapping ErrTrailingInput, carrying the line and column of the
first unmatched byte.

Concurrency

Rules are immutable after construction and can be shared by any number of
concurrent Lex runs without synchronization. All of a run's mutable state
lives in its Lexer, which is owned by that run exclusively. The library does
not synchronize external state mutated by actions; sharing such state across
concurrent runs is the caller's responsibility.
*/
package rex
