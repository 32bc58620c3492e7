// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts Render and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - String, Format, StringFunc and FormattedString are fixed presets of
//     these options; Render exposes the full set.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written after EVERY element (including the last one
	// of a row) by String and by Render without options.
	DefaultSeparator = " "

	// DefaultLineBreak terminates every row.
	DefaultLineBreak = "\n"

	// DefaultPadding is the extra width added to the widest element in aligned
	// mode: each cell is right-aligned to width(Longest)+DefaultPadding.
	DefaultPadding = 1

	// DefaultElementFormat is empty: elements use their natural fmt.Sprint form.
	DefaultElementFormat = ""

	// DefaultAligned disables uniform-width rendering.
	DefaultAligned = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPaddingInvalid = "matrix: WithPadding: padding must be non-negative"
	panicFormatInvalid  = "matrix: WithElementFormat: format must not be empty"
)

// ---------- Public option type (functional) ----------

// Option mutates rendering options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	separator     string // DefaultSeparator
	lineBreak     string // DefaultLineBreak
	elementFormat string // DefaultElementFormat ("" ⇒ fmt.Sprint)
	aligned       bool   // DefaultAligned
	padding       int    // DefaultPadding (aligned mode only)
}

// ---------- Constructors (WithX) ----------

// WithSeparator sets the string appended after every element.
// An empty separator is legal and concatenates cells.
// Complexity: O(1).
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithLineBreak sets the row terminator (e.g. "\r\n").
// Complexity: O(1).
func WithLineBreak(lb string) Option {
	return func(o *Options) { o.lineBreak = lb }
}

// WithElementFormat renders every element with fmt.Sprintf(format, v).
// Panics on an empty format: omit the option to get the natural form.
//
// Notes:
//   - In aligned mode the width is still measured on the natural form of
//     Longest, then the formatted cell is right-aligned to that width.
func WithElementFormat(format string) Option {
	if format == "" {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.elementFormat = format }
}

// WithAligned enables uniform-width rendering: every cell is right-aligned to
// the natural string length of Longest(m) plus the padding.
// Complexity: adds one extra O(r*c) pass to find the widest element.
func WithAligned() Option {
	return func(o *Options) { o.aligned = true }
}

// WithPadding sets the extra width used in aligned mode.
// Panics on negative values.
func WithPadding(n int) Option {
	if n < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = n }
}

// ---------- Resolution ----------

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		separator:     DefaultSeparator,
		lineBreak:     DefaultLineBreak,
		elementFormat: DefaultElementFormat,
		aligned:       DefaultAligned,
		padding:       DefaultPadding,
	}
}

// gatherOptions applies opts over the defaults in order; nil setters are skipped.
// Later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
