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
	"strings"
	"unicode/utf8"
)

// ErrSyntax is returned by Unquote for text that is not a single string
// literal.
//
var ErrSyntax = errors.New("invalid string literal syntax")

// Unquote returns the value of the string literal raw, as found in the text
// of a StringLiteral token. A backslash followed by any character stands for
// that character.
//
func Unquote(raw string) (string, error) {
	if raw == "" || raw[0] != '"' {
		return "", fmt.Errorf("unquote %q: %w", raw, ErrSyntax)
	}
	// no escapes
	if i := strings.IndexAny(raw[1:], `"\`); i >= 0 && raw[1+i] == '"' {
		if 2+i != len(raw) {
			return "", fmt.Errorf("unquote %q: %w", raw, ErrSyntax)
		}
		return raw[1 : 1+i], nil
	}

	if len(raw) < 2 {
		return "", fmt.Errorf("unquote %q: %w", raw, ErrUnterminatedString)
	}

	var b strings.Builder
	b.Grow(len(raw) - 2)
	for i := 1; i < len(raw); {
		switch c := raw[i]; c {
		case '"':
			if i+1 != len(raw) {
				return "", fmt.Errorf("unquote %q: %w", raw, ErrSyntax)
			}
			return b.String(), nil
		case '\\':
			if i+1 == len(raw) {
				return "", fmt.Errorf("unquote %q: %w", raw, ErrUnterminatedEscape)
			}
			_, w := utf8.DecodeRuneInString(raw[i+1:])
			b.WriteString(raw[i+1 : i+1+w])
			i += 1 + w
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", fmt.Errorf("unquote %q: %w", raw, ErrUnterminatedString)
}
