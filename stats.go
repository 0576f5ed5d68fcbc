package kvbench

import (
	"math"
	"sort"
	"time"
)

// WorkerStats accumulates the outcomes of one worker. It is owned exclusively
// by that worker during the run and handed off read-only when the worker's
// loop exits, so no locking is needed on the aggregation path.
type WorkerStats struct {
	ReadLatencies  []time.Duration
	WriteLatencies []time.Duration
	ReadOps        int64
	WriteOps       int64
	Errors         int64
}

func NewWorkerStats() *WorkerStats {
	return &WorkerStats{}
}

func (self *WorkerStats) RecordRead(latency time.Duration) {
	self.ReadOps++
	self.ReadLatencies = append(self.ReadLatencies, latency)
}

func (self *WorkerStats) RecordWrite(latency time.Duration) {
	self.WriteOps++
	self.WriteLatencies = append(self.WriteLatencies, latency)
}

func (self *WorkerStats) RecordError() {
	self.Errors++
}

// AggregateStats is the element-wise union of all WorkerStats of a run.
// It is built once after every worker has finished and never mutated after.
type AggregateStats struct {
	ReadLatencies  []time.Duration
	WriteLatencies []time.Duration
	ReadOps        int64
	WriteOps       int64
	Errors         int64
}

func (self *AggregateStats) TotalOps() int64 {
	return self.ReadOps + self.WriteOps
}

// MergeStats concatenates per-worker latency lists and sums counters.
// The split of operations across workers does not affect the result.
func MergeStats(statsList []*WorkerStats) *AggregateStats {
	total := &AggregateStats{}
	for _, s := range statsList {
		total.ReadLatencies = append(total.ReadLatencies, s.ReadLatencies...)
		total.WriteLatencies = append(total.WriteLatencies, s.WriteLatencies...)
		total.ReadOps += s.ReadOps
		total.WriteOps += s.WriteOps
		total.Errors += s.Errors
	}
	return total
}

// Percentile computes the p-th percentile (p in [0, 100]) of values by
// linear interpolation between order statistics, the same method as the
// NumPy default. An empty input yields 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	k := float64(len(sorted)-1) * (p / 100.0)
	f := math.Floor(k)
	c := math.Ceil(k)
	if f == c {
		return sorted[int(k)]
	}
	d0 := sorted[int(f)] * (c - k)
	d1 := sorted[int(c)] * (k - f)
	return d0 + d1
}

// Mean returns the arithmetic mean of values, 0 for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ToMilliseconds converts measured durations to float64 milliseconds, the
// unit all reported latencies use.
func ToMilliseconds(latencies []time.Duration) []float64 {
	ret := make([]float64, 0, len(latencies))
	for _, d := range latencies {
		ret = append(ret, float64(d)/float64(time.Millisecond))
	}
	return ret
}
