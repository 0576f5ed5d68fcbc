package kvbench

import (
	"fmt"
	"io"
	"time"

	"github.com/hhkbp2/go-strftime"
)

// RunResult ties the merged stats of a run to its configuration and actual
// elapsed wall-clock time.
type RunResult struct {
	Config  *BenchmarkConfig
	Elapsed time.Duration
	Total   *AggregateStats
}

// WriteSummary renders the human-readable report: workload parameters,
// throughput, error count, and per-class latency statistics in
// milliseconds.
func (self *RunResult) WriteSummary(w io.Writer) {
	config := self.Config
	total := self.Total
	elapsedSecs := self.Elapsed.Seconds()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "=== kvbench results (%s) ===\n",
		strftime.Format(statusTimeFormat, time.Now()))
	fmt.Fprintf(w,
		"Workload=%s (read_ratio=%.2f for mixed), workers=%d, duration=%.1fs, "+
			"pool_size=%d, payload_size=%d\n",
		config.Workload, config.ReadRatio, config.Workers, elapsedSecs,
		config.PoolSize, config.PayloadSize)
	if elapsedSecs > 0 {
		fmt.Fprintf(w, "Total ops=%d (%.1f ops/s), errors=%d\n",
			total.TotalOps(), float64(total.TotalOps())/elapsedSecs, total.Errors)
	} else {
		fmt.Fprintf(w, "Total ops=%d, errors=%d\n", total.TotalOps(), total.Errors)
	}
	writeClassSummary(w, "Reads", total.ReadOps, total.ReadLatencies)
	writeClassSummary(w, "Writes", total.WriteOps, total.WriteLatencies)
}

func writeClassSummary(w io.Writer, label string, count int64, latencies []time.Duration) {
	if count == 0 || len(latencies) == 0 {
		fmt.Fprintf(w, "%s: no operations\n", label)
		return
	}
	latenciesMs := ToMilliseconds(latencies)
	fmt.Fprintf(w, "%s: %d ops\n", label, count)
	fmt.Fprintf(w, "  avg=%.2f ms\n", Mean(latenciesMs))
	fmt.Fprintf(w, "  p50=%.2f ms\n", Percentile(latenciesMs, 50))
	fmt.Fprintf(w, "  p95=%.2f ms\n", Percentile(latenciesMs, 95))
	fmt.Fprintf(w, "  p99=%.2f ms\n", Percentile(latenciesMs, 99))
}
