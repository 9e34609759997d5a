// Package journal keeps an optional audit trail of synchronization runs.
//
// When the database is enabled, every reconciled record is appended to the
// import_journal table together with the run id. The journal is write-only
// for the commands; nothing reads it back to decide what to reconcile.
package journal
