// Command lisplex prints the tokens of Lisp source files.
//
// Usage:
//
//	lisplex [flags] [file ...]
//
// With no file arguments, or when a file is "-", lisplex reads standard
// input. Each token is printed on its own line as
//
//	file:line:col: Tag "text"
//
// On the first malformed token, lisplex prints a diagnostic to standard error
// and exits with status 1. All files share a single intern table.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"unicode/utf8"

	"github.com/db47h/lisplex"
	"github.com/db47h/lisplex/intern"
	"github.com/db47h/lisplex/token"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lisplex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	comment := fs.String("comment", string(lisplex.DefaultCommentStart), "comment start `character`")
	skip := fs.Bool("skip-space", false, "do not print space and comment tokens")
	verbose := fs.Bool("v", false, "log every token to standard error")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cr, n := utf8.DecodeRuneInString(*comment)
	if n == 0 || n != len(*comment) || cr == utf8.RuneError {
		fmt.Fprintf(stderr, "lisplex: invalid comment character %q\n", *comment)
		return 2
	}

	log := logrus.New()
	log.Out = stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if *verbose {
		log.SetLevel(logrus.TraceLevel)
	}

	out := color.New()
	out.SetOutput(stdout)
	diag := color.New()
	diag.SetOutput(stderr)
	if *noColor {
		out.Disable()
		diag.Disable()
	}

	opts := []lisplex.Option{lisplex.CommentStart(cr)}
	if *verbose {
		opts = append(opts, lisplex.Logger(log))
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	in := intern.New()
	for _, name := range files {
		f, err := readFile(name, stdin)
		if err != nil {
			log.WithError(err).Error("cannot read source")
			return 1
		}
		l := lisplex.New(f, in, opts...)
		if err = dump(stdout, out, l, *skip); err != nil {
			fmt.Fprint(stderr, diag.Red("error: "))
			lisplex.Report(stderr, f, err)
			return 1
		}
	}
	log.WithField("strings", in.Len()).Debug("done")
	return 0
}

func readFile(name string, stdin io.Reader) (*token.File, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		name = "<stdin>"
		b, err = ioutil.ReadAll(stdin)
	} else {
		b, err = ioutil.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return token.NewFile(name, string(b)), nil
}

// dump prints all tokens from l to w.
//
func dump(w io.Writer, c *color.Color, l *lisplex.Lexer, skipSpace bool) error {
	for {
		t, err := l.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if skipSpace && t.Tag.IsSpace() {
			continue
		}
		fmt.Fprintf(w, "%s: %s %q\n", l.File().Position(t.Pos), c.Cyan(t.Tag), l.Text(t))
	}
}
