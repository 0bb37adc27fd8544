// Package export writes collected scorecards to their flat-file outputs.
//
// The export package produces two shapes from the same records: a CSV table
// with one flattened row per scorecard and dynamic per-hole columns, and an
// indented JSON document preserving the nested hole-label/player structure.
// All CSV cells stay string-typed so non-numeric score artifacts survive the
// round trip.
package export
