// Package rules holds the static knowledge the identification pipeline runs
// on: the brand registry, the alias table, measurement-unit suffixes, and one
// Entry per brand describing how its model tokens are assembled and
// canonicalized.
//
// Everything here is read-only after package initialization and safe to share
// between goroutines. Brand-specific postprocessing is declarative: each Entry
// carries an ordered list of Rule values (Generation, Rewrite, FirstOf,
// Substitute, TitlePrefix) that are applied to the detected model string, so a
// brand's behaviour can be read and tested rule by rule. Changing a brand's
// behaviour means editing the tables in this package.
package rules
