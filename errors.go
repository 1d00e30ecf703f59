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
	"errors"
	"fmt"

	"github.com/db47h/lisplex/token"
)

// Scan errors. Errors returned by Lexer.Next are of type *Error and wrap one
// of these.
//
var (
	// ErrUnexpectedCharacter is returned when no token can start with the
	// current character.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrEmptySymbol is returned if the symbol scanner did not match any
	// character. It indicates a bug in the lexer.
	ErrEmptySymbol = errors.New("empty symbol")
	// ErrMalformedNumber is returned for a decimal point not followed by a
	// digit inside a number literal. It indicates a bug in the lexer.
	ErrMalformedNumber = errors.New("malformed number literal")
	// ErrUnterminatedEscape is returned when the input ends right after a
	// backslash in a string literal.
	ErrUnterminatedEscape = errors.New("unterminated escape sequence")
	// ErrUnterminatedString is returned when the input ends before the closing
	// quote of a string literal.
	ErrUnterminatedString = errors.New("unterminated string")
)

// An Error is a scan error.
//
type Error struct {
	Err  error          // one of the Err* variables
	Pos  token.Position // where the error occurred
	Char rune           // offending character, EOF at end of input
}

func (e *Error) Error() string {
	if e.Err == ErrUnexpectedCharacter {
		return fmt.Sprintf("%s: %v %#U", e.Pos, e.Err, e.Char)
	}
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
