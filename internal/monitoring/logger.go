package monitoring

import "log"

// Logf is the package-level diagnostic logger used by the capture pipeline.
// The vbo core never logs; the serial, store and command layers report
// through here. Defaults to log.Printf; replace it with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, which tests use to mute the pipeline.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
