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

import "github.com/db47h/lisplex/token"

// Scanners in this file expect that the first character of the token has
// already been read by next. They leave the cursor on the last character of
// the token so that the following call to next returns the first character
// of the next token.

func (l *Lexer) scanVerticalSpace() token.Tag {
	for r := l.next(); r == '\n' || r == '\r'; r = l.next() {
	}
	l.backup()
	return token.VerticalSpace
}

func (l *Lexer) scanHorizontalSpace() token.Tag {
	for r := l.next(); r == ' ' || r == '\t'; r = l.next() {
	}
	l.backup()
	return token.HorizontalSpace
}

// scanComment reads up to, but not including, the end of line.
//
func (l *Lexer) scanComment() token.Tag {
	for r := l.next(); r != EOF && r != '\n' && r != '\r'; r = l.next() {
	}
	l.backup()
	return token.Comment
}

func (l *Lexer) scanSymbol() (token.Tag, error) {
	if !l.cs.isSymbolStart(l.current()) {
		return token.Invalid, l.errorf(l.pos(), ErrEmptySymbol, l.current())
	}
	for r := l.next(); l.cs.isSymbolChar(r); r = l.next() {
	}
	l.backup()
	return token.Symbol, nil
}

// scanNumber lexes digit+ ('.' digit+)?
//
// A '.' is part of the number only if followed by a digit. Otherwise it is
// left for the next token.
//
func (l *Lexer) scanNumber() (token.Tag, error) {
	if !isDigit(l.current()) {
		return token.Invalid, l.errorf(l.pos(), ErrMalformedNumber, l.current())
	}
	if l.skipDigits() == '.' && isDigit(l.peek()) {
		return l.scanFraction()
	}
	l.backup()
	return token.NumberLiteral, nil
}

// scanFraction lexes the decimal part of a number. The decimal point must be
// the current rune.
//
func (l *Lexer) scanFraction() (token.Tag, error) {
	dot := l.pos()
	if r := l.next(); !isDigit(r) {
		return token.Invalid, l.errorf(dot, ErrMalformedNumber, r)
	}
	l.skipDigits()
	l.backup()
	return token.NumberLiteral, nil
}

// skipDigits consumes digits and returns the first non-digit rune, which is
// consumed as well.
//
func (l *Lexer) skipDigits() rune {
	r := l.next()
	for isDigit(r) {
		r = l.next()
	}
	return r
}

// scanString lexes a string literal. Escape sequences are left as is: a
// backslash protects the following character, whatever it is.
//
func (l *Lexer) scanString() (token.Tag, error) {
	for {
		switch r := l.next(); r {
		case '"':
			return token.StringLiteral, nil
		case '\\':
			p := l.pos()
			if l.next() == EOF {
				return token.Invalid, l.errorf(p, ErrUnterminatedEscape, '\\')
			}
		case EOF:
			return token.Invalid, l.errorf(l.ts, ErrUnterminatedString, EOF)
		}
	}
}
