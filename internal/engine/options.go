// internal/engine/options.go
package engine

// NumberingMode selects whether and when a line-number prefix is emitted.
type NumberingMode int

const (
	// NumberNone disables line numbering.
	NumberNone NumberingMode = iota
	// NumberNonEmpty numbers only lines that have content.
	NumberNonEmpty
	// NumberAll numbers every line, blank or not.
	NumberAll
)

// Options holds the formatting switches for one run. The zero value (and
// NewOptions) disables everything, which selects the verbatim fast path.
// Setters use value receivers and return an updated copy, so a fully built
// Options is immutable for the lifetime of a run.
type Options struct {
	Numbering       NumberingMode
	ShowEnds        bool
	SqueezeBlank    bool
	ShowTabs        bool
	ShowNonprinting bool
}

// NewOptions returns all-disabled defaults.
func NewOptions() Options { return Options{} }

func (o Options) Number(m NumberingMode) Options { o.Numbering = m; return o }
func (o Options) Ends(v bool) Options            { o.ShowEnds = v; return o }
func (o Options) Squeeze(v bool) Options         { o.SqueezeBlank = v; return o }
func (o Options) Tabs(v bool) Options            { o.ShowTabs = v; return o }
func (o Options) Nonprinting(v bool) Options     { o.ShowNonprinting = v; return o }

// CanWriteFast reports whether the input can be copied verbatim. Any enabled
// option forces the stateful annotated path.
func (o Options) CanWriteFast() bool {
	return !(o.ShowTabs ||
		o.ShowNonprinting ||
		o.ShowEnds ||
		o.SqueezeBlank ||
		o.Numbering != NumberNone)
}

// tab is the rendering of a horizontal tab under the current options.
func (o Options) tab() []byte {
	if o.ShowTabs {
		return []byte("^I")
	}
	return []byte("\t")
}

// endOfLine is the rendering of a line terminator under the current options.
func (o Options) endOfLine() []byte {
	if o.ShowEnds {
		return []byte("$\n")
	}
	return []byte("\n")
}
