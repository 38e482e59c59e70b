// Package specs reads raw camera specification records.
//
// A dataset is a directory of sources, each holding one JSON document per
// product page. Every document becomes a RawRecord whose id is
// "<source>//<file name without .json>", whose Title is the "<page title>"
// attribute, and whose Extra map carries every other top-level attribute.
// Attribute names are matched case-insensitively and stored lowercased.
//
// A document without a usable title is reported as a *MalformedRecordError;
// callers decide whether to abort or skip.
package specs
