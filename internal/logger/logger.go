// Package logger provides colorized console output helpers. Colors follow
// the usual convention: green for success/info, magenta for warnings, red
// for errors. Debug output is a no-op unless enabled via Init.
package logger

import (
	"github.com/fatih/color"
)

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise discards them.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
