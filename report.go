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
	"io"
	"strings"
	"unicode"

	"github.com/db47h/lisplex/token"
	"golang.org/x/text/width"
)

// Report writes a diagnostic for err to w. If err is an *Error, the source
// line where the error occurred is printed, followed by a line with a caret
// at the position of the error:
//
//	input:2:3: unexpected character U+0023 '#'
//	|  #bar)
//	|  ^
//
// Other errors are printed as is.
//
func Report(w io.Writer, f *token.File, err error) {
	var e *Error
	if f == nil || !errors.As(err, &e) {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, e)
	lp := f.LinePos(e.Pos.Line)
	if !lp.IsValid() {
		return
	}
	l := f.Line(lp)
	b := e.Pos.Offset - int(lp)
	if b > len(l) {
		b = len(l)
	}
	fmt.Fprintf(w, "|%s\n|%s^\n", l, caretPadding(l[:b]))
}

// caretPadding returns the blank text that spans the same number of text
// cells as s, supposing rendering with a UTF-8 locale and monospaced font.
// Tabs are kept as is.
//
func caretPadding(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			b.WriteString("  ")
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK, 1 otherwise.
			b.WriteByte(' ')
		}
	}
	return b.String()
}
