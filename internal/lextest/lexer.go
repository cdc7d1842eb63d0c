// Package lextest holds test-only helpers shared across pkg/lox's test
// files.
package lextest

import (
	"math/rand"
	"strings"
)

const validTokens = "var;x;=;1;2;+;-;*;/;(;);{;};\"a string\";\"\";true;false;nil;print;if;else;while;for;;\n"

// RandomTokens returns size whitespace-separated lexemes drawn from a fixed
// valid-token pool, for lexer throughput benchmarks.
func RandomTokens(size int) string {
	return RandomTokensWithSep(size, " ")
}

// RandomTokensWithSep is RandomTokens with a caller-chosen separator.
func RandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
