// Package workflow runs a complete match over a dataset.
//
// A Runner loads raw records, resolves identities in parallel, blocks the
// resolved records into match pairs, and writes the reports. A file lock on
// the output directory keeps two runs from writing the same reports at once.
// Each run gets a uuid that tags its log lines and its row in the run
// history store.
package workflow
