// internal/pipeline/pipeline.go

// Package pipeline feeds command-line sources through one engine run, in
// order. Line numbering and blank-squeeze state must carry over between
// sources, so sources are never processed in parallel; that is a design
// invariant, not a missing feature.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"ccat/internal/engine"
	"ccat/internal/sources"

	"go.uber.org/zap"
)

// Config controls the concatenation run.
type Config struct {
	Stdin io.Reader // stream used for "-" operands; nil means os.Stdin
}

// Concat transforms every source in paths onto out using a single Engine,
// so state threads through the whole invocation. No operands means stdin.
// The first open, read, or write failure aborts the run; output already
// flushed stays in place. Cancellation is honored between sources only —
// a source that started copying runs to completion or error.
func Concat(ctx context.Context, cfg Config, paths []string, out io.Writer, opts engine.Options) error {
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	eng := engine.New(opts)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rc, err := sources.Open(path, stdin)
		if err != nil {
			return err
		}
		Logger().Debug("source start",
			zap.String("path", path),
			zap.Bool("fast", opts.CanWriteFast()))
		err = eng.Cat(rc, out)
		cerr := rc.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if cerr != nil {
			return fmt.Errorf("%s: %w", path, cerr)
		}
	}
	return eng.Finish(out)
}
