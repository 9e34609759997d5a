// Package prompt implements the operator questions of the interactive import.
//
// LinePrompter reads one answer per line, shows the default in brackets and
// repeats a question until its validator accepts the answer. End of input
// aborts the run with ErrAborted.
package prompt
