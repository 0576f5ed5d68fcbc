package kvbench

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
)

const (
	// Track latencies up to one hour, in microseconds.
	measurementMaxValue       = int64(3600) * 1000 * 1000
	measurementSignificantFig = 3
)

// Measurements is the shared sink behind the periodic status line. Workers
// report successful operations here while the run is in flight; histograms
// are approximate, the final report recomputes exact percentiles from the
// merged per-worker samples instead.
type Measurements struct {
	lock  sync.Mutex
	hists map[string]*hdrhistogram.Histogram
}

func NewMeasurements() *Measurements {
	return &Measurements{
		hists: make(map[string]*hdrhistogram.Histogram),
	}
}

// Measure reports a single latency for the given operation class.
func (self *Measurements) Measure(operation string, latency time.Duration) {
	micros := int64(latency / time.Microsecond)
	self.lock.Lock()
	defer self.lock.Unlock()
	h, ok := self.hists[operation]
	if !ok {
		h = hdrhistogram.New(1, measurementMaxValue, measurementSignificantFig)
		self.hists[operation] = h
	}
	h.RecordValue(micros)
}

// GetSummary returns a one line summary of everything measured so far.
func (self *Measurements) GetSummary() string {
	self.lock.Lock()
	defer self.lock.Unlock()
	names := make([]string, 0, len(self.hists))
	for name := range self.hists {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		h := self.hists[name]
		parts = append(parts, fmt.Sprintf(
			"[%s: Count=%d, Avg(us)=%.1f, Max(us)=%d, 99(us)=%d]",
			name, h.TotalCount(), h.Mean(), h.Max(), h.ValueAtQuantile(99)))
	}
	return strings.Join(parts, " ")
}
