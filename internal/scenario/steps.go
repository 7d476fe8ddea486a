package scenario

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/fluentcond/internal/text"
)

// consumers are the named steps usable with do
var consumers = map[string]func(w io.Writer) func(string){
	"print": func(w io.Writer) func(string) {
		return func(s string) { fmt.Fprintln(w, s) }
	},
	"print-first-char": func(w io.Writer) func(string) {
		return func(s string) { fmt.Fprintln(w, firstChar(s)) }
	},
	"print-last-char": func(w io.Writer) func(string) {
		return func(s string) { fmt.Fprintln(w, lastChar(s)) }
	},
	"nothing": func(io.Writer) func(string) {
		return func(string) {}
	},
}

// functions are the named steps usable with apply
var functions = map[string]func(string) string{
	"length":     func(s string) string { return strconv.Itoa(text.Length(s)) },
	"hash":       func(s string) string { return strconv.FormatInt(int64(text.HashCode(s)), 10) },
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"first-char": firstChar,
	"last-char":  lastChar,
}

func firstChar(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(r)
}

func lastChar(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(r)
}
