/*
Package xlog supports optional debug output. The functions of the
package accept a Logger interface value that the log.Logger type of the
standard library satisfies. If the Logger value is nil nothing is
printed and no formatting work is done, so debug statements can stay in
place at no cost when output is disabled.
*/
package xlog

import "fmt"

// Logger is the interface the output functions print through. A
// *log.Logger satisfies it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. A nil logger prints
// nothing.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf outputs the arguments using the format string. A nil logger
// prints nothing.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println outputs the arguments and appends a newline. A nil logger
// prints nothing.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
