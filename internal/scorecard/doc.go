// Package scorecard provides types and functions for normalized Golden Tee
// scorecard records.
//
// The scorecard package holds the record produced by parsing one entry page:
// the game name, optional player/course metadata, the hole-label header row,
// aligned distance/par/score sequences, and the summary fields derived from
// the first player's score row. It also implements the target-game filter and
// the flattening logic that reshapes variable-length hole data into fixed
// tabular rows for export.
package scorecard
