// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"ccat/internal/version"
)

// Usage writes the help text for name to w. Styling is resolved per writer,
// so piped or in-memory output comes out plain.
func Usage(w io.Writer, name string) {
	r := lipgloss.NewRenderer(w)
	var (
		heading = r.NewStyle().Bold(true).Underline(true)
		prog    = r.NewStyle().Foreground(lipgloss.Color("10"))
		optArg  = r.NewStyle().Foreground(lipgloss.Color("12"))
		fileArg = r.NewStyle().Foreground(lipgloss.Color("11"))
	)

	fmt.Fprintf(w, "\n%s %s %s %s\n\n",
		heading.Render("Usage:"),
		prog.Render(name),
		optArg.Render("[OPTION]..."),
		fileArg.Render("[FILE]..."))
	fmt.Fprint(w, `Concatenate FILE(s) to standard output.
With no FILE, or when FILE is -, read standard input.

    -A, --show-all           equivalent to -vET
    -b, --number-nonblank    number nonempty output lines, overrides -n
    -e                       equivalent to -vE
    -E, --show-ends          display $ at end of each line
    -n, --number             number all output lines
    -s, --squeeze-blank      suppress repeated empty output lines
    -t                       equivalent to -vT
    -T, --show-tabs          display TAB characters as ^I
    -u                       (ignored)
    -v, --show-nonprinting   use ^ and M- notation, except for LFD and TAB
        --help               display this help and exit
        --version            output version information and exit
`)
	fmt.Fprintf(w, "\n%s\n", heading.Render("Examples:"))
	fmt.Fprintf(w, "    %s f - g  Output f's contents, then standard input, then g's contents.\n", prog.Render(name))
	fmt.Fprintf(w, "    %s        Copy standard input to standard output.\n\n", prog.Render(name))
	fmt.Fprintf(w, "Version: %s\n", version.Version)
}
