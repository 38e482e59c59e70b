// Package identification turns raw camera records into (brand, model)
// identities.
//
// Each title goes through a fixed pipeline: normalization, alias resolution,
// brand detection, brand-specific token merging, model detection, and
// brand-specific canonicalization driven by the tables in package rules. The
// Resolver runs that pipeline for whole datasets in parallel and hands back
// records in input order so blocking can start from a stable snapshot.
//
// A record is solved when both a brand and a model were found. Unsolved
// records keep their normalized title, which the blocking pass uses as a
// fallback identity.
package identification
