// Package token defines constants and types representing lexical tokens
// in Lisp source text.
//
package token

import (
	"strconv"

	"github.com/db47h/lisplex/intern"
)

// Tag represents the class of a token.
//
type Tag uint8

// Token tags. The zero value Invalid is never produced by a lexer.
//
const (
	Invalid         Tag = iota
	ListOpen            // (
	ListClose           // )
	ConsOpen            // [
	ConsClose           // ]
	ConsCenter          // .
	Comment             // ; up to, but not including, the end of line
	Symbol              // foo, +, ->, valid?
	HorizontalSpace     // run of spaces and tabs
	VerticalSpace       // run of \n and \r
	NumberLiteral       // 42, 3.14
	StringLiteral       // "raw \"text\"" including quotes and backslashes
)

var tagNames = [...]string{
	Invalid:         "Invalid",
	ListOpen:        "ListOpen",
	ListClose:       "ListClose",
	ConsOpen:        "ConsOpen",
	ConsClose:       "ConsClose",
	ConsCenter:      "ConsCenter",
	Comment:         "Comment",
	Symbol:          "Symbol",
	HorizontalSpace: "HorizontalSpace",
	VerticalSpace:   "VerticalSpace",
	NumberLiteral:   "NumberLiteral",
	StringLiteral:   "StringLiteral",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// IsSpace returns true for tags that carry layout only: horizontal space,
// vertical space and comments. Parsers usually skip these.
//
func (t Tag) IsSpace() bool {
	return t == HorizontalSpace || t == VerticalSpace || t == Comment
}

// Pos represents a byte offset within a File.
//
type Pos int

// IsValid returns true if p is a valid position.
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// A Token is a lexed token. Text is the interned source text of the token,
// exactly as written.
//
type Token struct {
	Tag  Tag
	Text intern.Handle
	Pos  Pos // byte offset of the first character of the token
}
