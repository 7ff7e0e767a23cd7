package main

import (
	"os"
	"os/signal"
	"syscall"
)

// exitFn is a shim for testing.
var exitFn = os.Exit

// trapTerm installs the handler for the termination signal sent by
// container runtimes on stop. Receipt exits the process immediately
// with code 1, abandoning any in-flight pause or write.
func trapTerm() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM)
	go func() {
		<-ch
		exitFn(1)
	}()
}
