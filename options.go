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
	"github.com/sirupsen/logrus"
)

// DefaultCommentStart is the default rune that starts a comment.
//
const DefaultCommentStart = ';'

// DefaultSymbolPunct is the default set of punctuation characters allowed in
// symbols, in addition to letters and digits.
//
const DefaultSymbolPunct = "+-*/<>=!?_"

type options struct {
	comment rune
	punct   string
	log     logrus.FieldLogger
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// CommentStart sets the rune that starts a comment. Comments run up to the
// end of the line.
//
// The comment rune is checked after spaces, digits and '"', so setting it to
// one of these has no effect.
//
func CommentStart(r rune) Option {
	return func(o *options) {
		o.comment = r
	}
}

// SymbolPunct replaces the set of punctuation characters allowed in symbols.
// Letters and digits are always allowed. Whitespace, brackets, '.', '"' and
// the comment rune are delimiters and are silently dropped from s.
//
func SymbolPunct(s string) Option {
	return func(o *options) {
		o.punct = s
	}
}

// Logger sets a logger for the lexer. Emitted tokens are logged at Trace
// level and errors at Debug level. No logging is done by default.
//
func Logger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

func defaultOptions() options {
	return options{
		comment: DefaultCommentStart,
		punct:   DefaultSymbolPunct,
	}
}
