// Package connectors imports the fixed list of BLS/BLD connector housings.
//
// Each housing is reconciled against the GES electronics supplier with an
// econ connect manufacturer part, and its "Number of Contacts" and "Number of
// Rows" parameters are refreshed on every run.
package connectors
