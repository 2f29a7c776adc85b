// internal/cli/options.go
package cli

import (
	"github.com/spf13/pflag"

	"ccat/internal/engine"
)

// Options is the fully resolved formatting request: every alias flag
// (-A, -e, -t) already folded into the five underlying switches.
type Options struct {
	Numbering       engine.NumberingMode
	ShowEnds        bool
	SqueezeBlank    bool
	ShowTabs        bool
	ShowNonprinting bool

	Files []string
}

// EngineOptions converts the resolved flags to an engine configuration.
func (o Options) EngineOptions() engine.Options {
	return engine.NewOptions().
		Number(o.Numbering).
		Ends(o.ShowEnds).
		Squeeze(o.SqueezeBlank).
		Tabs(o.ShowTabs).
		Nonprinting(o.ShowNonprinting)
}

// Flags holds the raw flag values between registration and resolution.
type Flags struct {
	showAll        *bool
	numberNonblank *bool
	vAndEnds       *bool
	showEnds       *bool
	number         *bool
	squeeze        *bool
	vAndTabs       *bool
	showTabs       *bool
	ignored        *bool
	nonprinting    *bool
}

// Register installs the GNU cat flag surface on fs. The -e, -t and -u
// shorthands have no real long form; their long names are hidden and exist
// only because pflag requires one.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{
		showAll:        fs.BoolP("show-all", "A", false, "equivalent to -vET"),
		numberNonblank: fs.BoolP("number-nonblank", "b", false, "number nonempty output lines, overrides -n"),
		vAndEnds:       fs.BoolP("e", "e", false, "equivalent to -vE"),
		showEnds:       fs.BoolP("show-ends", "E", false, "display $ at end of each line"),
		number:         fs.BoolP("number", "n", false, "number all output lines"),
		squeeze:        fs.BoolP("squeeze-blank", "s", false, "suppress repeated empty output lines"),
		vAndTabs:       fs.BoolP("t", "t", false, "equivalent to -vT"),
		showTabs:       fs.BoolP("show-tabs", "T", false, "display TAB characters as ^I"),
		ignored:        fs.BoolP("u", "u", false, "(ignored)"),
		nonprinting:    fs.BoolP("show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB"),
	}
	for _, hidden := range []string{"e", "t", "u"} {
		_ = fs.MarkHidden(hidden)
	}
	return f
}

// Resolve folds aliases into an Options. args are the positional operands
// left over after flag parsing; none means standard input.
func (f *Flags) Resolve(args []string) Options {
	opt := Options{
		ShowEnds:        *f.showEnds || *f.showAll || *f.vAndEnds,
		ShowTabs:        *f.showTabs || *f.showAll || *f.vAndTabs,
		ShowNonprinting: *f.nonprinting || *f.showAll || *f.vAndEnds || *f.vAndTabs,
		SqueezeBlank:    *f.squeeze,
		Files:           args,
	}
	switch {
	case *f.numberNonblank:
		opt.Numbering = engine.NumberNonEmpty
	case *f.number:
		opt.Numbering = engine.NumberAll
	}
	return opt
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	f := Register(fs)
	if err := fs.Parse(argv); err != nil {
		return Options{}, err
	}
	return f.Resolve(fs.Args()), nil
}
