package lisplex_test

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/db47h/lisplex"
	"github.com/db47h/lisplex/intern"
	"github.com/db47h/lisplex/token"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func tokenString(l *lisplex.Lexer, t token.Token) string {
	pos := l.File().Position(t.Pos)
	return fmt.Sprintf("%d:%d: %s %q", pos.Line, pos.Column, t.Tag, l.Text(t))
}

// lexAll drains a new lexer for input and returns the string representation
// of all tokens along with the error that stopped the lexer, if not io.EOF.
func lexAll(input string, opts ...lisplex.Option) ([]string, error) {
	l := lisplex.NewString("", input, intern.New(), opts...)
	var res []string
	for {
		t, err := l.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, tokenString(l, t))
	}
}

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"list", "(+ 1 2)", []string{
			`1:1: ListOpen "("`, `1:2: Symbol "+"`, `1:3: HorizontalSpace " "`, `1:4: NumberLiteral "1"`,
			`1:5: HorizontalSpace " "`, `1:6: NumberLiteral "2"`, `1:7: ListClose ")"`,
		}},
		{"escaped_quote", `"a\"b"`, []string{`1:1: StringLiteral "\"a\\\"b\""`}},
		{"decimal", "3.14", []string{`1:1: NumberLiteral "3.14"`}},
		{"layout", "foo\n  bar", []string{
			`1:1: Symbol "foo"`, `1:4: VerticalSpace "\n"`, `2:1: HorizontalSpace "  "`, `2:3: Symbol "bar"`,
		}},
		{"cons", "[1 . 2]", []string{
			`1:1: ConsOpen "["`, `1:2: NumberLiteral "1"`, `1:3: HorizontalSpace " "`, `1:4: ConsCenter "."`,
			`1:5: HorizontalSpace " "`, `1:6: NumberLiteral "2"`, `1:7: ConsClose "]"`,
		}},
		{"space_runs", " \n ", []string{
			`1:1: HorizontalSpace " "`, `1:2: VerticalSpace "\n"`, `2:1: HorizontalSpace " "`,
		}},
		{"crlf", "\r\n\n\r", []string{`1:1: VerticalSpace "\r\n\n\r"`}},
		{"tabs", "\t \t", []string{`1:1: HorizontalSpace "\t \t"`}},
		{"trailing_dot", "1.", []string{`1:1: NumberLiteral "1"`, `1:2: ConsCenter "."`}},
		{"dot_symbol", "1.x", []string{`1:1: NumberLiteral "1"`, `1:2: ConsCenter "."`, `1:3: Symbol "x"`}},
		{"two_dots", "1.2.3", []string{`1:1: NumberLiteral "1.2"`, `1:4: ConsCenter "."`, `1:5: NumberLiteral "3"`}},
		{"number_symbol", "12abc", []string{`1:1: NumberLiteral "12"`, `1:3: Symbol "abc"`}},
		{"symbols", "foo1 valid? -> a-b", []string{
			`1:1: Symbol "foo1"`, `1:5: HorizontalSpace " "`, `1:6: Symbol "valid?"`, `1:12: HorizontalSpace " "`,
			`1:13: Symbol "->"`, `1:15: HorizontalSpace " "`, `1:16: Symbol "a-b"`,
		}},
		{"maximal_munch", "foobar baz", []string{`1:1: Symbol "foobar"`, `1:7: HorizontalSpace " "`, `1:8: Symbol "baz"`}},
		{"comment", "(a) ; hi there\n b", []string{
			`1:1: ListOpen "("`, `1:2: Symbol "a"`, `1:3: ListClose ")"`, `1:4: HorizontalSpace " "`,
			`1:5: Comment "; hi there"`, `1:15: VerticalSpace "\n"`, `2:1: HorizontalSpace " "`, `2:2: Symbol "b"`,
		}},
		{"comment_eof", ";x", []string{`1:1: Comment ";x"`}},
		{"comment_cr", ";x\r\n", []string{`1:1: Comment ";x"`, `1:3: VerticalSpace "\r\n"`}},
		{"no_space", "foo(bar)", []string{
			`1:1: Symbol "foo"`, `1:4: ListOpen "("`, `1:5: Symbol "bar"`, `1:8: ListClose ")"`,
		}},
		{"dotted_symbols", "a.b", []string{`1:1: Symbol "a"`, `1:2: ConsCenter "."`, `1:3: Symbol "b"`}},
		{"unicode", "(λ x)", []string{
			`1:1: ListOpen "("`, `1:2: Symbol "λ"`, `1:3: HorizontalSpace " "`, `1:4: Symbol "x"`, `1:5: ListClose ")"`,
		}},
		{"string_comment", `"x;y" ;z`, []string{
			`1:1: StringLiteral "\"x;y\""`, `1:6: HorizontalSpace " "`, `1:7: Comment ";z"`,
		}},
		{"string_multiline", "\"a\nb\" c", []string{
			`1:1: StringLiteral "\"a\nb\""`, `2:3: HorizontalSpace " "`, `2:4: Symbol "c"`,
		}},
		{"string_escapes", `"\\" "\n"`, []string{
			`1:1: StringLiteral "\"\\\\\""`, `1:5: HorizontalSpace " "`, `1:6: StringLiteral "\"\\n\""`,
		}},
		{"symbol_string", `foo"bar"`, []string{`1:1: Symbol "foo"`, `1:4: StringLiteral "\"bar\""`}},
		{"brackets", "([])", []string{
			`1:1: ListOpen "("`, `1:2: ConsOpen "["`, `1:3: ConsClose "]"`, `1:4: ListClose ")"`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lexAll(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		err   error
		msg   string
	}{
		{"unterminated_string", `"abc`, nil, lisplex.ErrUnterminatedString, "1:1: unterminated string"},
		{"unterminated_string2", "(x \"abc\n", []string{
			`1:1: ListOpen "("`, `1:2: Symbol "x"`, `1:3: HorizontalSpace " "`,
		}, lisplex.ErrUnterminatedString, "1:4: unterminated string"},
		{"unterminated_escape", `"ab\`, nil, lisplex.ErrUnterminatedEscape, "1:4: unterminated escape sequence"},
		{"unexpected", "(a #b)", []string{
			`1:1: ListOpen "("`, `1:2: Symbol "a"`, `1:3: HorizontalSpace " "`,
		}, lisplex.ErrUnexpectedCharacter, "1:4: unexpected character U+0023 '#'"},
		{"unexpected_brace", "{", nil, lisplex.ErrUnexpectedCharacter, "1:1: unexpected character U+007B '{'"},
		{"unexpected_line2", "x\n  ,", []string{
			`1:1: Symbol "x"`, `1:2: VerticalSpace "\n"`, `2:1: HorizontalSpace "  "`,
		}, lisplex.ErrUnexpectedCharacter, "2:3: unexpected character U+002C ','"},
		{"unexpected_in_symbol", "ab#", []string{`1:1: Symbol "ab"`}, lisplex.ErrUnexpectedCharacter, "1:3: unexpected character U+0023 '#'"},
		{"invalid_utf8", "\xff", nil, lisplex.ErrUnexpectedCharacter, "1:1: unexpected character U+FFFD '\uFFFD'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lexAll(tt.input)
			require.Equal(t, tt.want, got)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.err), "got %v", err)
			require.Equal(t, tt.msg, err.Error())
			var e *lisplex.Error
			require.True(t, errors.As(err, &e))
		})
	}
}

func TestLexer_StickyError(t *testing.T) {
	l := lisplex.NewString("", "a {b c", intern.New())
	var err error
	for err == nil {
		_, err = l.Next()
	}
	require.True(t, errors.Is(err, lisplex.ErrUnexpectedCharacter))
	for i := 0; i < 3; i++ {
		_, again := l.Next()
		require.Equal(t, err, again)
	}
}

func TestLexer_EOF(t *testing.T) {
	l := lisplex.NewString("", "x", intern.New())
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "x", l.Text(tok))
	for i := 0; i < 3; i++ {
		_, err = l.Next()
		require.Equal(t, io.EOF, err)
	}
}

var roundTripInputs = []string{
	"",
	"(+ 1 2)",
	"(define (fact n) ; factorial\r\n  (if (<= n 1) 1 (* n (fact (- n 1)))))\n",
	"[\"pair\" . 3.14]\t\t; trailing",
	`"a\"b" "c\\d" "multi` + "\n" + `line"`,
	"(λ (x) (* x 2.5)) 1.x 1.2.3 foo.bar",
	"\n\n\r\n   \t(valid? ->x)",
}

func TestLexer_RoundTrip(t *testing.T) {
	for _, in := range roundTripInputs {
		l := lisplex.NewString("", in, intern.New())
		var b strings.Builder
		next := token.Pos(0)
		for {
			tok, err := l.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			// tokens are contiguous
			require.Equal(t, next, tok.Pos)
			text := l.Text(tok)
			next += token.Pos(len(text))
			b.WriteString(text)
		}
		require.Equal(t, in, b.String())
	}
}

var tagGrammar = map[token.Tag]*regexp.Regexp{
	token.ListOpen:        regexp.MustCompile(`^\($`),
	token.ListClose:       regexp.MustCompile(`^\)$`),
	token.ConsOpen:        regexp.MustCompile(`^\[$`),
	token.ConsClose:       regexp.MustCompile(`^\]$`),
	token.ConsCenter:      regexp.MustCompile(`^\.$`),
	token.Comment:         regexp.MustCompile(`^;[^\r\n]*$`),
	token.Symbol:          regexp.MustCompile(`^[\pL+\-*/<>=!?_][\pL\p{Nd}+\-*/<>=!?_]*$`),
	token.HorizontalSpace: regexp.MustCompile(`^[ \t]+$`),
	token.VerticalSpace:   regexp.MustCompile(`^[\r\n]+$`),
	token.NumberLiteral:   regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`),
	token.StringLiteral:   regexp.MustCompile(`(?s)^"(\\.|[^"\\])*"$`),
}

func TestLexer_TagGrammar(t *testing.T) {
	for _, in := range roundTripInputs {
		l := lisplex.NewString("", in, intern.New())
		for {
			tok, err := l.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			re, ok := tagGrammar[tok.Tag]
			require.True(t, ok, "unexpected tag %v", tok.Tag)
			require.Regexp(t, re, l.Text(tok), "%v", tok.Tag)
		}
	}
}

func TestLexer_SharedInterner(t *testing.T) {
	in := intern.New()
	a, err := lisplex.Tokenize("(foo foo)", in)
	require.NoError(t, err)
	b, err := lisplex.Tokenize("[foo . bar]", in)
	require.NoError(t, err)

	require.Equal(t, a[1].Text, a[3].Text)
	require.Equal(t, a[1].Text, b[1].Text)
	require.NotEqual(t, b[1].Text, b[5].Text)
	// "(", "foo", " ", ")", "[", ".", "bar", "]"
	require.Equal(t, 8, in.Len())
}

func TestLexer_Concurrent(t *testing.T) {
	const workers = 8
	src := strings.Join(roundTripInputs, "\n")
	in := intern.New()
	results := make([][]token.Token, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = lisplex.Tokenize(src, in)
		}(w)
	}
	wg.Wait()
	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		require.Equal(t, results[0], results[w])
	}
}

func TestTokenize(t *testing.T) {
	in := intern.New()
	toks, err := lisplex.Tokenize("(a b", in)
	require.NoError(t, err)
	require.Len(t, toks, 4)

	toks, err = lisplex.Tokenize("(a }", in)
	require.True(t, errors.Is(err, lisplex.ErrUnexpectedCharacter))
	require.Len(t, toks, 3)
	require.Equal(t, token.HorizontalSpace, toks[2].Tag)
}

func TestOptions(t *testing.T) {
	t.Run("comment_start", func(t *testing.T) {
		got, err := lexAll("a #c\n;b", lisplex.CommentStart('#'))
		require.Equal(t, []string{
			`1:1: Symbol "a"`, `1:2: HorizontalSpace " "`, `1:3: Comment "#c"`, `1:5: VerticalSpace "\n"`,
		}, got)
		require.True(t, errors.Is(err, lisplex.ErrUnexpectedCharacter))
		require.Equal(t, "2:1: unexpected character U+003B ';'", err.Error())
	})
	t.Run("comment_in_punct", func(t *testing.T) {
		got, err := lexAll("a-b%c", lisplex.CommentStart('%'), lisplex.SymbolPunct("-%"))
		require.NoError(t, err)
		require.Equal(t, []string{`1:1: Symbol "a-b"`, `1:4: Comment "%c"`}, got)
	})
	t.Run("symbol_punct", func(t *testing.T) {
		got, err := lexAll("a+b", lisplex.SymbolPunct("-"))
		require.Equal(t, []string{`1:1: Symbol "a"`}, got)
		require.Equal(t, "1:2: unexpected character U+002B '+'", err.Error())

		got, err = lexAll("$x a-b.c", lisplex.SymbolPunct("$(-. "))
		require.NoError(t, err)
		require.Equal(t, []string{
			`1:1: Symbol "$x"`, `1:3: HorizontalSpace " "`, `1:4: Symbol "a-b"`, `1:7: ConsCenter "."`, `1:8: Symbol "c"`,
		}, got)
	})
}

func TestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)

	_, err := lisplex.Tokenize("(a)", intern.New(), lisplex.Logger(log))
	require.NoError(t, err)
	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	require.Equal(t, logrus.TraceLevel, entries[1].Level)
	require.Equal(t, token.Symbol, entries[1].Data["tag"])
	require.Equal(t, token.Pos(1), entries[1].Data["pos"])

	hook.Reset()
	_, err = lisplex.Tokenize(`"a`, intern.New(), lisplex.Logger(log))
	require.Error(t, err)
	last := hook.LastEntry()
	require.NotNil(t, last)
	require.Equal(t, logrus.DebugLevel, last.Level)
	require.Equal(t, err, last.Data["err"])
}
