// Package main hosts the camlink CLI entrypoint and command graph.
//
// The Cobra command tree runs match jobs over a dataset, resolves ad-hoc
// titles for debugging the rule tables, inspects the run history, and
// scaffolds configuration. Configuration and logger setup live here so
// subcommands stay thin; the work itself happens in the internal packages.
package main
