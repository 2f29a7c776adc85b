// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"ccat/internal/cli"
	"ccat/internal/engine"
	"ccat/internal/pipeline"
	"ccat/internal/sources"
	"ccat/internal/version"
	"ccat/internal/writers"
)

const name = "ccat"

// Exit codes: 0 success (including a downstream broken pipe), 1 source or
// I/O failure, 2 usage error, 130 canceled.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitCanceled = 130
)

// RunContext parses argv and performs the concatenation onto stdout.
// All process-global state (streams, environment) is taken explicitly so
// tests can drive it with in-memory sinks.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	code := exitOK
	root := &cobra.Command{
		Use:           name + " [OPTION]... [FILE]...",
		Short:         "concatenate files and print on the standard output",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Operands are file paths; keep cobra from claiming "help" or
	// "completion" as subcommands.
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	flags := cli.Register(root.Flags())
	root.RunE = func(c *cobra.Command, args []string) error {
		code = run(c.Context(), flags.Resolve(args), outw, stderr)
		return nil
	}
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)
	root.SetHelpFunc(func(*cobra.Command, []string) { cli.Usage(outw, name) })
	root.SetVersionTemplate(fmt.Sprintf("%s v{{.Version}}\n", name))

	if err := root.ExecuteContext(ctx); err != nil {
		// Only flag parsing can fail here; run errors are mapped to code.
		fmt.Fprintf(stderr, "%s\n", errLine(stderr, err.Error()))
		fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", name)
		return exitUsage
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFailure
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, out io.Writer, stderr io.Writer) int {
	if os.Getenv("CCAT_DEBUG") != "" {
		if logger, err := zap.NewDevelopment(); err == nil {
			engine.SetLogger(logger)
			pipeline.SetLogger(logger)
			defer func() { _ = logger.Sync() }()
		}
	}

	err := pipeline.Concat(ctx, pipeline.Config{}, opts.Files, out, opts.EngineOptions())
	switch {
	case err == nil:
		return exitOK
	case writers.IsBrokenPipe(err):
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitCanceled
	case sources.IsNotFound(err):
		fmt.Fprintf(stderr, "%s\n", errLine(stderr, name+": "+err.Error()))
		return exitFailure
	default:
		fmt.Fprintf(stderr, "%s\n", errLine(stderr, fmt.Sprintf("%s: %v", name, err)))
		return exitFailure
	}
}

// errLine styles a diagnostic when the destination is a terminal.
func errLine(w io.Writer, msg string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(msg)
	}
	return msg
}
