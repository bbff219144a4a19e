package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind classifies a status line.
type Kind int

const (
	KindInfo Kind = iota
	KindOK
	KindWarn
	KindFail
	KindMiss
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusIndent = "  "
	detailIndent = "    - "
)

var printer = message.NewPrinter(language.English)

func (k Kind) label() string {
	switch k {
	case KindOK:
		return "[ OK ]"
	case KindWarn:
		return "[WARN]"
	case KindFail:
		return "[FAIL]"
	case KindMiss:
		return "[MISS]"
	default:
		return "[INFO]"
	}
}

func (k Kind) color() string {
	switch k {
	case KindOK:
		return ansiGreen
	case KindWarn, KindMiss:
		return ansiYellow
	case KindFail:
		return ansiRed
	default:
		return ansiBlue
	}
}

// Writer writes report lines to an underlying io.Writer. Write errors are
// ignored; the report is best-effort console output.
type Writer struct {
	w        io.Writer
	colorize bool
}

// New returns a Writer. colorize enables ANSI colour on status labels.
func New(w io.Writer, colorize bool) *Writer {
	if w == nil {
		w = io.Discard
	}
	return &Writer{w: w, colorize: colorize}
}

// Discard returns a Writer that drops everything.
func Discard() *Writer { return New(io.Discard, false) }

// Out returns the underlying writer.
func (r *Writer) Out() io.Writer { return r.w }

// Section prints an unindented heading such as "Manifest check:".
func (r *Writer) Section(title string) {
	fmt.Fprintf(r.w, "%s:\n", title)
}

// Status prints an indented status line.
func (r *Writer) Status(kind Kind, format string, args ...interface{}) {
	label := kind.label()
	if r.colorize {
		label = kind.color() + label + ansiReset
	}
	fmt.Fprintf(r.w, "%s%s %s\n", statusIndent, label, fmt.Sprintf(format, args...))
}

// Detail prints a bullet under the previous status line.
func (r *Writer) Detail(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s%s\n", detailIndent, fmt.Sprintf(format, args...))
}

// Line prints a plain line.
func (r *Writer) Line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Blank prints an empty line.
func (r *Writer) Blank() {
	fmt.Fprintln(r.w)
}

// Banner prints the final outcome line.
func (r *Writer) Banner(ok bool, msg string) {
	kind := KindFail
	if ok {
		kind = KindOK
	}
	if r.colorize {
		msg = kind.color() + msg + ansiReset
	}
	fmt.Fprintln(r.w, msg)
}

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// ShouldColor decides whether output to w is colourized for the given mode
// ("always", "never" or "auto"). In auto mode colour requires a terminal and
// an unset NO_COLOR.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
