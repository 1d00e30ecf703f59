// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
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

package lisplex

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// A charset holds the symbol character classes for a lexer.
//
type charset struct {
	start *unicode.RangeTable // first rune of a symbol
	cont  *unicode.RangeTable // any other rune
}

var (
	defCharsetOnce sync.Once
	defCharset     charset
)

func newCharset(punct string, comment rune) charset {
	if punct == DefaultSymbolPunct && comment == DefaultCommentStart {
		defCharsetOnce.Do(func() {
			defCharset = buildCharset(DefaultSymbolPunct, DefaultCommentStart)
		})
		return defCharset
	}
	return buildCharset(punct, comment)
}

func buildCharset(punct string, comment rune) charset {
	rs := make([]rune, 0, len(punct))
	for _, r := range punct {
		if !isDelimiter(r, comment) {
			rs = append(rs, r)
		}
	}
	p := rangetable.New(rs...)
	return charset{
		start: rangetable.Merge(unicode.Letter, p),
		cont:  rangetable.Merge(unicode.Letter, unicode.Nd, p),
	}
}

func (cs *charset) isSymbolStart(r rune) bool {
	return r >= 0 && unicode.Is(cs.start, r)
}

func (cs *charset) isSymbolChar(r rune) bool {
	return r >= 0 && unicode.Is(cs.cont, r)
}

// isDelimiter returns true for runes that always end a symbol.
//
func isDelimiter(r, comment rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '(', ')', '[', ']', '.', '"', comment:
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
