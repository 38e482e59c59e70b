// Package report writes the results of a match run.
//
// CSV reports (matches, solved and unsolved records) are written atomically
// so a crashed run never leaves a truncated file behind. The SQLite-backed
// Store keeps a history of runs with their resolved records and pairs, so
// two runs over the same dataset can be compared.
package report
