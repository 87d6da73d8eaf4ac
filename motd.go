package appliance

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
	"unicode/utf8"
)

var (
	//go:embed templates/motd.tmpl
	motdTmplContent string

	motdTmpl = template.Must(template.New("motd").Parse(motdTmplContent))
)

// MOTD renders the message of the day shown when a shell is started in the
// appliance.
func MOTD(applianceSelf string) string {
	buf := bytes.NewBuffer(nil)
	if err := motdTmpl.Execute(buf, struct{ ApplianceSelf string }{applianceSelf}); err != nil {
		// The template and its input are fixed.
		panic(err)
	}
	return buf.String()
}

// EscapeMOTD turns multi-line text into the body of a single printf
// argument inside a Dockerfile RUN instruction.
// Every line is terminated by a printf newline escape followed by a Dockerfile
// line continuation.
func EscapeMOTD(text string) string {
	b := &strings.Builder{}
	for _, l := range splitLines(text) {
		b.WriteString(l)
		b.WriteString("\\n\\\n")
	}
	return b.String()
}

// splitLines splits on the same line boundaries as Python's str.splitlines:
// \n, \r, \r\n, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029.
// A trailing boundary does not produce an empty final element.
func splitLines(s string) []string {
	var (
		lines []string
		start int
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\r':
			lines = append(lines, s[start:i])
			i += size
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			i += size
			start = i
		default:
			i += size
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
