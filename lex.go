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
	"io"
	"unicode/utf8"

	"github.com/db47h/lisplex/intern"
	"github.com/db47h/lisplex/token"
	"github.com/sirupsen/logrus"
)

// EOF is the rune value returned by the cursor at the end of input.
//
const EOF rune = -1

// Undo buffer constants.
//
const (
	BackupBufferSize = 4 // BackupBufferSize is the size of the undo buffer.
	undoMask         = BackupBufferSize - 1
)

type undo struct {
	p token.Pos // -1 for an empty slot
	r rune
	w int // encoded width of r in bytes
}

// A Lexer produces tokens from a source file. Tokens are pulled one at a time
// by calling Next.
//
// A Lexer must not be used concurrently. Lexers running in different
// goroutines may share an Interner.
//
type Lexer struct {
	undo   [BackupBufferSize]undo // undo buffer
	f      *token.File
	src    string
	in     *intern.Interner
	cs     charset
	opts   options
	off    int       // offset of the next byte to decode
	ur, uh int       // undo buffer read pos and head
	ts     token.Pos // token start position
	err    error     // sticky error, io.EOF once done
}

// New creates a new lexer for the given source file. Token text is interned
// in the given Interner.
//
func New(f *token.File, in *intern.Interner, opts ...Option) *Lexer {
	l := &Lexer{
		f:    f,
		src:  f.Source(),
		in:   in,
		opts: defaultOptions(),
		uh:   1,
	}
	for _, o := range opts {
		o(&l.opts)
	}
	l.cs = newCharset(l.opts.punct, l.opts.comment)
	// sentinel values
	for i := range l.undo {
		l.undo[i] = undo{-1, utf8.RuneSelf, 0}
	}
	return l
}

// NewString is a shorthand for New(token.NewFile(name, src), in, opts...).
//
func NewString(name, src string, in *intern.Interner, opts ...Option) *Lexer {
	return New(token.NewFile(name, src), in, opts...)
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *token.File {
	return l.f
}

// Interner returns the Interner used by the lexer.
//
func (l *Lexer) Interner() *intern.Interner {
	return l.in
}

// Text returns the source text of a token produced by l.
//
func (l *Lexer) Text(t token.Token) string {
	return l.in.MustResolve(t.Text)
}

// Next returns the next token.
//
// Once the end of input has been reached, Next returns io.EOF. If the input
// contains a malformed token, Next returns an error of type *Error. The lexer
// cannot recover from errors: subsequent calls return the same error.
//
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}

	r := l.next()
	l.ts = l.pos()

	var (
		tag token.Tag
		err error
	)
	// the order of cases matters
	switch {
	case r == EOF:
		l.err = io.EOF
		return token.Token{}, io.EOF
	case r == '\n' || r == '\r':
		tag = l.scanVerticalSpace()
	case r == ' ' || r == '\t':
		tag = l.scanHorizontalSpace()
	case isDigit(r):
		tag, err = l.scanNumber()
	case r == '"':
		tag, err = l.scanString()
	case r == l.opts.comment:
		tag = l.scanComment()
	case r == '(':
		tag = token.ListOpen
	case r == ')':
		tag = token.ListClose
	case r == '[':
		tag = token.ConsOpen
	case r == ']':
		tag = token.ConsClose
	case r == '.':
		tag = token.ConsCenter
	case l.cs.isSymbolStart(r):
		tag, err = l.scanSymbol()
	default:
		err = l.errorf(l.ts, ErrUnexpectedCharacter, r)
	}
	if err != nil {
		return token.Token{}, l.fail(err)
	}
	return l.emit(tag), nil
}

// emit interns the text from the token start up to and including the
// current rune.
//
func (l *Lexer) emit(tag token.Tag) token.Token {
	text := l.src[l.ts:l.end()]
	t := token.Token{Tag: tag, Text: l.in.Intern(text), Pos: l.ts}
	if l.opts.log != nil {
		l.opts.log.WithFields(logrus.Fields{
			"tag": tag,
			"pos": l.ts,
			"len": len(text),
		}).Trace("token")
	}
	return t
}

func (l *Lexer) errorf(p token.Pos, err error, r rune) error {
	return &Error{Err: err, Pos: l.f.Position(p), Char: r}
}

func (l *Lexer) fail(err error) error {
	l.err = err
	if l.opts.log != nil {
		l.opts.log.WithFields(logrus.Fields{
			"pos": l.ts,
			"err": err,
		}).Debug("scan failed")
	}
	return err
}

// next returns the next rune in the input and advances the cursor. At the
// end of input it returns EOF.
//
// Invalid UTF-8 sequences are returned as utf8.RuneError, one byte at a time.
//
func (l *Lexer) next() rune {
	// read from undo buffer
	u := (l.ur + 1) & undoMask
	if u != l.uh {
		l.ur = u
		return l.undo[l.ur].r
	}

	pos := token.Pos(l.off)

	// EOF
	if l.off >= len(l.src) {
		if l.undo[l.ur].r != EOF {
			l.pushUndo(pos, EOF, 0)
		}
		return EOF
	}

	// Common case: ASCII
	if b := l.src[l.off]; b < utf8.RuneSelf {
		l.off++
		l.pushUndo(pos, rune(b), 1)
		return rune(b)
	}

	r, w := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += w
	l.pushUndo(pos, r, w)
	return r
}

func (l *Lexer) pushUndo(p token.Pos, r rune, w int) {
	l.ur = l.uh
	l.undo[l.uh] = undo{p, r, w}
	l.uh = (l.uh + 1) & undoMask
	l.undo[l.uh] = undo{-1, utf8.RuneSelf, 0}
}

// backup moves the cursor one rune back through the undo ring, so that the
// next call to next returns the current rune again. The scanners never step
// back more than twice. Once the ring holds no earlier rune, or at the start
// of the input, the cursor stays where it is.
//
func (l *Lexer) backup() {
	if l.undo[l.ur].p == -1 {
		return
	}
	l.ur = (l.ur - 1) & undoMask
}

// current returns the last rune returned by next.
//
func (l *Lexer) current() rune {
	return l.undo[l.ur].r
}

// pos returns the byte offset of the last rune returned by next, or -1 if
// no input has been read yet.
//
func (l *Lexer) pos() token.Pos {
	return l.undo[l.ur].p
}

// end returns the byte offset right after the current rune.
//
func (l *Lexer) end() int {
	u := &l.undo[l.ur]
	if u.p < 0 {
		return 0
	}
	return int(u.p) + u.w
}

// peek returns the next rune without consuming it.
//
func (l *Lexer) peek() rune {
	if l.current() == EOF {
		return EOF
	}
	r := l.next()
	l.backup()
	return r
}

// Tokenize scans src to the end and returns all tokens. On error, it returns
// the tokens scanned so far along with the error.
//
func Tokenize(src string, in *intern.Interner, opts ...Option) ([]token.Token, error) {
	l := NewString("", src, in, opts...)
	var toks []token.Token
	for {
		t, err := l.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
	}
}
