// Package diag is the table's cold-path diagnostic sink: a thin wrapper
// over log so allocation failures and warnings are reported the same way
// anywhere in the module, without pulling a logging framework into a
// library that spends almost all of its time on a hot path that must
// never log anything.
package diag

import "log"

// Warn logs a non-fatal condition. prefix identifies the subsystem, err
// the condition observed.
func Warn(prefix string, err error) {
	log.Print(prefix + ": " + err.Error())
}

// Info logs a cold-path informational message.
func Info(prefix, message string) {
	log.Print(prefix + ": " + message)
}

// Fatal reports an unrecoverable condition and terminates the process.
// It mirrors the original engine's behavior on allocation failure:
// print the reason and exit, rather than return to a caller that has no
// sane way to run a search without a table.
func Fatal(prefix string, err error) {
	log.Fatal(prefix + ": " + err.Error())
}
