package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Level uint8

const (
	ErrorLevel Level = iota
	WarnLevel
	DebugLevel
)

var (
	level                 = WarnLevel
	out   io.StringWriter = os.Stderr
)

func init() {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// SetLevel for the package logger.
func SetLevel(l Level) {
	level = l
}

// Debugf prints the message to stderr, with no prefix.
func Debugf(format string, args ...interface{}) {
	if level < DebugLevel {
		return
	}
	write(fmt.Sprintf(format, args...))
}

// Warnf prints the message to stderr, with a yellow WARN prefix.
func Warnf(format string, args ...interface{}) {
	if level < WarnLevel {
		return
	}
	write(color.YellowString("WARN ") + fmt.Sprintf(format, args...))
}

// Errorf prints the message to stderr, with a red ERROR prefix.
func Errorf(format string, args ...interface{}) {
	write(color.RedString("ERROR ") + fmt.Sprintf(format, args...))
}

// Error prints the message to stderr, with a red ERROR prefix.
func Error(msg string) {
	write(color.RedString("ERROR ") + msg)
}

func write(s string) {
	if _, err := out.WriteString(s + "\n"); err != nil {
		panic(err)
	}
}
