// Package preflight checks that the directories a match run touches are
// usable before any record is read.
//
// The CLI "camlink config validate" command prints every result. Output and
// state directories that do not exist yet pass when their nearest existing
// parent is writable, since the runner creates them.
package preflight
