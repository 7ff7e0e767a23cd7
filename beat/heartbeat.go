/*
Package beat implements the paced heartbeat output of the fixture.
*/
package beat

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

const (
	startLine = "Starting"
	exitLine  = "Exiting"
)

// Config for Run.
type Config struct {
	// Out receives the progress lines. Defaults to os.Stdout.
	Out io.Writer
	// Count of heartbeat iterations. Values below 1 produce only the
	// start and completion lines.
	Count int
	// Interval is the pause before each heartbeat.
	Interval time.Duration
	// Notify, when set, is called once after the start line is written
	// and before the first pause. The process entrypoint uses it to
	// install the termination trap.
	Notify func()
}

var clock = clockwork.NewRealClock()

// Run writes the start line, invokes Notify, then writes Count heartbeat
// lines each preceded by an Interval pause, and ends with the completion
// line. The heartbeat index is 1-based and printed with the total
// (ex: Heartbeat 1/3). Run returns the first write error.
func Run(cfg Config) error {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if err := emit(cfg.Out, startLine); err != nil {
		return err
	}
	if cfg.Notify != nil {
		cfg.Notify()
	}
	for i := 1; i <= cfg.Count; i++ {
		clock.Sleep(cfg.Interval)
		if err := emit(cfg.Out, fmt.Sprintf("Heartbeat %d/%d", i, cfg.Count)); err != nil {
			return err
		}
	}
	return emit(cfg.Out, exitLine)
}

func emit(out io.Writer, line string) error {
	_, err := io.WriteString(out, line+"\n")
	return errors.Wrapf(err, "failed to write %q", line)
}
