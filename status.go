package kvbench

import (
	"sync"
	"time"

	"github.com/hhkbp2/go-strftime"
)

const statusTimeFormat = "%Y-%m-%d %H:%M:%S"

// StatusReporter prints a live measurement summary at a fixed interval while
// the timed phase is running. An interval of zero disables it.
type StatusReporter struct {
	interval     time.Duration
	measurements *Measurements
	done         chan struct{}
	wg           sync.WaitGroup
}

func NewStatusReporter(interval time.Duration, measurements *Measurements) *StatusReporter {
	return &StatusReporter{
		interval:     interval,
		measurements: measurements,
		done:         make(chan struct{}),
	}
}

func (self *StatusReporter) Start() {
	if self.interval <= 0 {
		return
	}
	self.wg.Add(1)
	go func() {
		defer self.wg.Done()
		ticker := time.NewTicker(self.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				self.report()
			case <-self.done:
				return
			}
		}
	}()
}

// Stop terminates the reporter after one final summary line.
func (self *StatusReporter) Stop() {
	if self.interval <= 0 {
		return
	}
	close(self.done)
	self.wg.Wait()
	self.report()
}

func (self *StatusReporter) report() {
	summary := self.measurements.GetSummary()
	if len(summary) == 0 {
		return
	}
	Infof("%s %s", strftime.Format(statusTimeFormat, time.Now()), summary)
}
