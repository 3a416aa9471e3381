package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/rex"
	"github.com/db47h/rex/rules"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  rex.Rule
		input string
		ok    bool // the whole input matches as a single token
	}{
		{"ident", rules.Ident, "_foo42", true},
		{"ident unicode", rules.Ident, "héllo", true},
		{"ident digit start", rules.Ident, "1x", false},
		{"int", rules.Int, "12345", true},
		{"hex", rules.Hex, "0xDEADbeef", true},
		{"oct", rules.Oct, "0o777", true},
		{"oct bare", rules.Oct, "0666", true},
		{"bin", rules.Bin, "0b1011", true},
		{"float", rules.Float, "3.14", true},
		{"float exponent", rules.Float, "1e-9", true},
		{"float leading dot", rules.Float, ".42", true},
		{"float int part only", rules.Float, "42", false},
		{"number hex", rules.Number, "0x24", true},
		{"number float", rules.Number, "2.5e3", true},
		{"number bare oct", rules.Number, "0666", true},
		{"string", rules.String, `"some\tstring"`, true},
		{"string empty", rules.String, `""`, true},
		{"string unterminated", rules.String, `"abc`, false},
		{"char", rules.Char, `'\n'`, true},
		{"char too long", rules.Char, `'ab'`, false},
		{"eol", rules.EOL, "\r\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := tt.rule.Lex(tt.input).Tokens()
			if !tt.ok {
				assert.ErrorIs(t, err, rex.ErrTrailingInput)
				return
			}
			require.NoError(t, err)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.input, toks[0].Text)
		})
	}
}

// Alternation is ordered choice; Number relies on listing the more specific
// literal forms first.
func TestNumberAlternativeOrder(t *testing.T) {
	// with Int first, the match stops after the leading zero
	bad := rex.Alt(rules.Int, rules.Hex)
	toks, err := bad.Lex("0x24").Tokens()
	require.ErrorIs(t, err, rex.ErrTrailingInput)
	require.Len(t, toks, 1)
	assert.Equal(t, "0", toks[0].Text)

	toks, err = rules.Number.Lex("0x24").Tokens()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "0x24", toks[0].Text)
}
