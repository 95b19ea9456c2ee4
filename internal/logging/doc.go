// Package logging provides a unified logging interface for parsum.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends (zerolog for the
// application, the standard library logger for embedding and tests).
package logging
