// internal/engine/engine.go
package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	fastBufSize = 64 * 1024
	scanBufSize = 32 * 1024
)

var (
	crLiteral = []byte{'\r'}
	crCaret   = []byte("^M")
)

// Engine transforms input byte streams according to one Options value.
// Run state (line counter, squeeze state, a deferred carriage return)
// persists across Cat calls, so feeding several sources through the same
// Engine numbers and squeezes them as one logical concatenation. An Engine
// must not be shared across concurrent runs.
type Engine struct {
	opts Options
	eol  []byte
	tab  []byte
	buf  []byte

	line        int  // lines numbered so far
	atLineStart bool // next write begins a new output line
	pendingCR   bool // a \r was read; rendering awaits the next byte
	blankKept   bool // the previous output line was blank
}

// New returns an Engine at the start of a fresh run.
func New(opts Options) *Engine {
	return &Engine{
		opts:        opts,
		eol:         opts.endOfLine(),
		tab:         opts.tab(),
		atLineStart: true,
	}
}

// Cat copies one source to out, annotating per the Engine's options.
// The first read or write error aborts the source and is returned; bytes
// already written stay written. Call Finish after the last source.
func (e *Engine) Cat(r io.Reader, out io.Writer) error {
	if e.opts.CanWriteFast() {
		return e.copyFast(r, out)
	}
	if e.buf == nil {
		e.buf = make([]byte, scanBufSize)
	}
	ew := &errWriter{w: out}
	for {
		n, rerr := r.Read(e.buf)
		if n > 0 {
			e.scan(ew, e.buf[:n])
			if ew.err != nil {
				return ew.err
			}
		}
		if rerr == io.EOF {
			Logger().Debug("annotated pass at source end",
				zap.Int("lines_numbered", e.line),
				zap.Bool("pending_cr", e.pendingCR))
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

// Finish resolves a carriage return still deferred when input ran out.
// End of input counts as "next byte is not a newline", so the \r is
// emitted literally.
func (e *Engine) Finish(out io.Writer) error {
	if !e.pendingCR {
		return nil
	}
	e.pendingCR = false
	e.atLineStart = false
	ew := &errWriter{w: out}
	ew.Write(crLiteral)
	ew.flush()
	return ew.err
}

// copyFast is the verbatim path: no line semantics, fixed-size chunks.
func (e *Engine) copyFast(r io.Reader, out io.Writer) error {
	buf := make([]byte, fastBufSize)
	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			Logger().Debug("fast copy at source end", zap.Int64("bytes", total))
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

// scan runs the annotated state machine over one read chunk. Chunk
// boundaries are invisible: everything the next chunk needs lives in
// Engine fields.
func (e *Engine) scan(ew *errWriter, buf []byte) {
	pos := 0
	for pos < len(buf) && ew.err == nil {
		if buf[pos] == '\n' {
			e.endLine(ew)
			pos++
			continue
		}

		// Line content begins or continues here.
		if e.pendingCR {
			// The deferred \r was not followed by a newline: ordinary content.
			ew.Write(crLiteral)
			e.pendingCR = false
			e.atLineStart = false
		}
		e.blankKept = false
		if e.atLineStart {
			if e.opts.Numbering != NumberNone {
				e.writeLineNumber(ew)
			}
			e.atLineStart = false
		}

		pos += e.writeBody(ew, buf[pos:])
		if pos == len(buf) {
			// Chunk exhausted mid-line; the next read continues this line.
			return
		}
		if buf[pos] == '\r' {
			e.pendingCR = true
			pos++
		}
		// A '\n' at pos is handled at the top of the loop.
	}
}

// endLine terminates the current output line. A deferred \r turned out to
// precede the newline: with ShowEnds it is escaped as ^M, otherwise it is
// part of the terminator and passes through literally.
func (e *Engine) endLine(ew *errWriter) {
	if e.pendingCR {
		if e.opts.ShowEnds {
			ew.Write(crCaret)
		} else {
			ew.Write(crLiteral)
		}
		e.pendingCR = false
		e.atLineStart = false
		e.blankKept = false
	}
	if e.atLineStart {
		// The line being terminated is empty.
		if e.opts.SqueezeBlank && e.blankKept {
			return
		}
		e.blankKept = true
		if e.opts.Numbering == NumberAll {
			e.writeLineNumber(ew)
		}
	}
	ew.Write(e.eol)
	ew.flush()
	e.atLineStart = true
}

// writeBody renders content bytes until a terminator boundary per the active
// mode and reports how many input bytes were consumed.
func (e *Engine) writeBody(ew *errWriter, buf []byte) int {
	switch {
	case e.opts.ShowNonprinting:
		return writeNonprintToEnd(ew, buf, e.tab)
	case e.opts.ShowTabs:
		return writeTabToEnd(ew, buf)
	default:
		return writeToEnd(ew, buf)
	}
}

func (e *Engine) writeLineNumber(ew *errWriter) {
	e.line++
	fmt.Fprintf(ew, "%6d\t", e.line)
}

// errWriter sticks on the first write error so the scanner can stay
// branch-free on its hot path.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// flush pushes buffered output after each line terminator so interactive
// consumers see whole lines promptly.
func (ew *errWriter) flush() {
	if ew.err != nil {
		return
	}
	if f, ok := ew.w.(interface{ Flush() error }); ok {
		ew.err = f.Flush()
	}
}
