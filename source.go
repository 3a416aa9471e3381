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

// Pos represents a token's position within a Source, as a byte offset.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// Position describes an arbitrary source position including the source name,
// line, and column location.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A Source is a named input string with enough line information to convert
// byte offsets to line/column positions.
//
type Source struct {
	name  string
	src   string
	lines []Pos // 0-based line/Pos information
}

// NewSource returns a new Source for the given input string.
//
func NewSource(name, src string) *Source {
	s := &Source{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			s.lines = append(s.lines, Pos(i+1))
		}
	}
	return s
}

// Name returns the source name.
//
func (s *Source) Name() string {
	return s.name
}

// Input returns the full input string.
//
func (s *Source) Input() string {
	return s.src
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (s *Source) Position(pos Pos) Position {
	i, j := 0, len(s.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(s.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{s.name, i, int(pos - s.lines[i-1] + 1)}
}

// Line returns the text of the line containing pos, without its line
// terminator.
//
func (s *Source) Line(pos Pos) string {
	line := s.Position(pos).Line
	start := int(s.lines[line-1])
	end := len(s.src)
	if line < len(s.lines) {
		end = int(s.lines[line]) - 1
		if end > start && s.src[end-1] == '\r' {
			end--
		}
	}
	return s.src[start:end]
}
