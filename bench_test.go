package rex

import (
	"strings"
	"testing"
)

func BenchmarkLex(b *testing.B) {
	number := Rx(`\d+`)
	operator := Rx(`[-+*^/]`)
	expr := number.Then(number.Or(operator).Repeating())
	input := strings.Repeat("14 6 + 7 ^ 3 * 2 - 4 5 + * ", 100)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := expr.Lex(input, SkipSpaces())
		for l.Scan() {
		}
		if l.Err() != nil {
			b.Fatal(l.Err())
		}
	}
}
