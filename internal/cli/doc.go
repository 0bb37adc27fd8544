// Package cli implements the command-line interface for gt-scorecards.
//
// The cli package provides the Cobra-based CLI that drives the scrape
// pipeline: it loads user query ids, fetches each user's high-score listing,
// fetches and parses every scorecard entry one at a time, filters the
// results to the target game family, and writes the CSV and JSON exports.
// Fetching is strictly sequential with politeness pauses between requests
// and between users.
package cli
