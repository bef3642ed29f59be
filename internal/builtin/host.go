// Package builtin implements the dialect's standard library: the
// String/Math/Conversion/Inspection/Date/Array/RegExp categories spec.md
// §4.4 names, plus the Dictionary host collaborator and the Dialog category
// that delegates to whatever the embedding application provides.
//
// Every function here registers as a procedures.Descriptor with a Fn of
// type procedures.Builtin: already-evaluated arguments in, a Variant result
// or error out. None of it depends on internal/evaluator, matching the
// teacher's internal/interp/builtins split that keeps built-ins free of the
// package that dispatches them.
package builtin

import (
	"bufio"
	"fmt"
	"io"
)

// Host is the dialog/output bridge spec.md §6 describes as part of the
// embedding surface: MsgBox/InputBox delegate to the host, and Print-style
// output goes through the same seam so a headless runner and a GUI host can
// both satisfy it.
type Host interface {
	Write(s string)
	MsgBox(prompt, title string, buttons int32) (int32, error)
	InputBox(prompt, title, def string) (string, error)
}

// ConsoleHost is the default Host: output goes to Out, MsgBox prints the
// prompt and immediately answers OK (button 1), InputBox reads one line
// from In or returns def at EOF. cmd/basicscript wires this in for `run`.
type ConsoleHost struct {
	Out io.Writer
	In  *bufio.Reader
}

// NewConsoleHost builds a ConsoleHost over the given writer/reader.
func NewConsoleHost(out io.Writer, in io.Reader) *ConsoleHost {
	return &ConsoleHost{Out: out, In: bufio.NewReader(in)}
}

func (h *ConsoleHost) Write(s string) {
	fmt.Fprint(h.Out, s)
}

func (h *ConsoleHost) MsgBox(prompt, title string, buttons int32) (int32, error) {
	if title != "" {
		fmt.Fprintf(h.Out, "[%s] %s\n", title, prompt)
	} else {
		fmt.Fprintln(h.Out, prompt)
	}
	return 1, nil // vbOK
}

func (h *ConsoleHost) InputBox(prompt, title, def string) (string, error) {
	if title != "" {
		fmt.Fprintf(h.Out, "[%s] %s", title, prompt)
	} else {
		fmt.Fprint(h.Out, prompt)
	}
	line, err := h.In.ReadString('\n')
	if err != nil && line == "" {
		return def, nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}
