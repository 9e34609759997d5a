// Package parser extracts structured attributes from free-text part names.
//
// A RuleSet is an ordered list of regular expression rules; Parse returns the
// result of the first rule that matches. A text no rule matches is reported
// through Result.Matched rather than an error, and callers fall back to manual
// entry or skip the record.
//
// Numeric groups accept a comma decimal separator ("12,5" is 12.5) and become
// integers when they have no fractional part. Optional flag groups that did
// not take part in the match are false.
//
// Built-in rule sets are YAML files embedded in the binary; LoadRules reads
// the same format from any reader.
package parser
