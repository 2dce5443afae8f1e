// Package curves owns the well-log curve model and the three pure steps of
// the plotting pipeline: reading a whitespace-delimited curve table, merging
// curve sets by name, and clustering curves into two panes by the order of
// magnitude of their peak value.
//
// Key types: Curve, Reader, Clusterer.
//
// Row-level problems in input files (wrong column count, unparseable numbers)
// are absorbed and counted in ReadStats. Fatal conditions are reported as
// errors wrapping ErrMissingDepthColumn, ErrEmptyCurve or
// ErrNonPositiveMaximum.
//
// No rendering or filesystem writes happen in this package.
package curves
