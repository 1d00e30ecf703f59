package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Offset   int // byte offset in the file
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
}

// IsValid returns true if the position has a line number.
//
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents an in-memory source file. It handles file offset to
// line/column conversion.
//
// Lines are delimited by '\n' only. A lone '\r' does not start a new line.
//
type File struct {
	name  string
	src   string
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File with the given name and contents.
//
func NewFile(name, src string) *File {
	f := &File{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
	for i := 0; ; {
		n := strings.IndexByte(src[i:], '\n')
		if n < 0 {
			break
		}
		i += n + 1
		f.lines = append(f.lines, Pos(i))
	}
	return f
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the file contents.
//
func (f *File) Source() string {
	return f.src
}

// Size returns the size of the file contents in bytes.
//
func (f *File) Size() int {
	return len(f.src)
}

// LineCount returns the number of lines in the file.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// Position returns the 1-based line and column for a given pos. Positions
// outside of the file are clamped to its boundaries.
//
func (f *File) Position(pos Pos) Position {
	if pos < 0 {
		pos = 0
	}
	if int(pos) > len(f.src) {
		pos = Pos(len(f.src))
	}
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	start := f.lines[i-1]
	col := utf8.RuneCountInString(f.src[start:pos]) + 1
	return Position{f.name, int(pos), i, col}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the text of the line containing pos, without its line
// terminator.
//
func (f *File) Line(pos Pos) string {
	start := f.LinePos(f.Position(pos).Line)
	l := f.src[start:]
	if n := strings.IndexByte(l, '\n'); n >= 0 {
		l = l[:n]
	}
	return strings.TrimSuffix(l, "\r")
}
