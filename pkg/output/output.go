// Package output prints the CLI's messages.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/crossexec/pkg/crossexec"
)

var (
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, dim, reset = "", "", ""
	}
}

// PrintFailure writes a failed replacement to w. The failed step and the
// program go on their own lines when err is a *crossexec.Error.
func PrintFailure(w io.Writer, err error) {
	var rerr *crossexec.Error
	if !errors.As(err, &rerr) {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %v\n", red, reset, err)
		return
	}
	_, _ = fmt.Fprintf(w, "%s[FAIL]%s %v\n", red, reset, rerr.Err)
	_, _ = fmt.Fprintf(w, "      %s\n", formatLabel("step: "+string(rerr.Op)))
	if rerr.Path != "" {
		_, _ = fmt.Fprintf(w, "      %s\n", formatLabel("program: "+rerr.Path))
	}
}

// formatLabel dims the text up to and including the first colon.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}
