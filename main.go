/*
Command termbeat is a container test fixture. It prints a start marker,
emits three heartbeat lines one second apart, prints a completion marker,
and exits 0. A trapped SIGTERM exits 1 immediately.
*/
package main

import (
	"os"
	"time"

	"github.com/termbeat/termbeat/beat"
	"github.com/termbeat/termbeat/log"
)

const (
	heartbeatCount    = 3
	heartbeatInterval = time.Second
)

func main() {
	if err := run(); err != nil {
		log.Error(err.Error())
		os.Exit(3)
	}
}

func run() error {
	return beat.Run(beat.Config{
		Out:      os.Stdout,
		Count:    heartbeatCount,
		Interval: heartbeatInterval,
		Notify:   trapTerm,
	})
}
