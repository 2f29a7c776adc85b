// Package engine is the text-formatting core. It copies a byte stream to a
// sink, optionally numbering lines, marking line ends, escaping tabs and
// non-printable bytes, and squeezing runs of blank lines. Output is identical
// no matter how the input is chunked by the underlying reader.
//
// The package never imports app, cli, or pipeline; keep it domain-only.
package engine
