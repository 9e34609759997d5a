// Package memory provides an in-memory catalog used by tests.
package memory
