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

/*
Package lisplex implements a lexer for a Lisp-family syntax with two bracket
families: lists "( )" and cons pairs "[ ]" with a central ".".

Tokens

The lexer is lossless: every character of the input belongs to exactly one
token and concatenating the text of all tokens yields the original input.
Whitespace and comments are tokens like any other so that formatters can
preserve the original layout. Parsers usually skip tokens for which
Tag.IsSpace returns true.

The token classes are:

	ListOpen ListClose    ( )
	ConsOpen ConsClose    [ ]
	ConsCenter            .
	HorizontalSpace       a run of spaces and tabs
	VerticalSpace         a run of '\n' and '\r'
	Comment               from ';' up to the end of line
	NumberLiteral         digit+ ('.' digit+)?
	StringLiteral         "...", where \x stands for x
	Symbol                letters, digits and + - * / < > = ! ? _, not starting with a digit

A '.' right after the digits of a number belongs to the number only if it is
followed by a digit. "1.5" is a single number while "1 . 5" and "1." are
parsed as a number followed by a ConsCenter.

Token text is stored in an intern.Interner that can be shared between lexers,
possibly running in different goroutines. The text of a StringLiteral is kept
raw, with quotes and backslashes; use Unquote to get its value. Converting a
NumberLiteral to a numeric value is left to the parser.

Usage

Lexers are pull-based:

	in := intern.New()
	l := lisplex.NewString("input", src, in)
	for {
		t, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			lisplex.Report(os.Stderr, l.File(), err)
			return
		}
		fmt.Println(t.Tag, l.Text(t))
	}

Error handling

Malformed input causes Next to return an *Error that wraps one of the Err*
variables. There is no error recovery: once Next has returned an error, the
lexer is done and keeps returning the same error.

*/
package lisplex
