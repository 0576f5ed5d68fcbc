package kvbench

import (
	"time"
)

// Errors beyond this count are absorbed silently per worker, so a failing
// store cannot overwhelm the output.
const workerMaxLoggedErrors = 3

// Worker is a single execution unit of the timed phase. It repeatedly asks
// its Workload for the next operation, invokes the shared Store, times the
// call end-to-end and classifies the outcome, until the shared deadline
// passes. Operation failures never terminate the loop.
type Worker struct {
	id           int
	store        Store
	config       *BenchmarkConfig
	workload     *Workload
	payload      string
	deadline     time.Time
	measurements *Measurements
	stats        *WorkerStats
}

func NewWorker(id int, store Store, config *BenchmarkConfig, keys KeySet,
	payload string, deadline time.Time, measurements *Measurements) *Worker {

	return &Worker{
		id:           id,
		store:        store,
		config:       config,
		workload:     NewWorkload(config, keys, id),
		payload:      payload,
		deadline:     deadline,
		measurements: measurements,
		stats:        NewWorkerStats(),
	}
}

// Run executes the worker loop until the deadline and returns the final
// stats, handed off immutably. The only error it can return is the
// configuration error raised at loop entry; runtime store failures are
// counted, never propagated.
//
// The deadline is checked between iterations only: a worker may exceed it by
// at most one in-flight operation and never stops early on errors.
func (self *Worker) Run() (*WorkerStats, error) {
	if err := self.workload.Validate(); err != nil {
		return nil, err
	}
	for time.Now().Before(self.deadline) {
		kind, key := self.workload.NextOperation()
		start := time.Now()
		var err error
		switch kind {
		case OperationRead:
			_, err = self.store.Read(
				self.config.Table, self.config.KeyColumn, self.config.PayloadColumn, key)
		default:
			err = self.store.WriteInTransaction(
				self.config.Table, self.config.KeyColumn, self.config.PayloadColumn,
				key, self.payload)
		}
		elapsed := time.Since(start)
		if err != nil {
			self.stats.RecordError()
			metricErrors.Inc()
			if self.stats.Errors <= workerMaxLoggedErrors {
				Errorf("[worker %d] %s error: %s", self.id, kind, err)
			}
			continue
		}
		switch kind {
		case OperationRead:
			self.stats.RecordRead(elapsed)
			metricReadOps.Inc()
		default:
			self.stats.RecordWrite(elapsed)
			metricWriteOps.Inc()
		}
		if self.measurements != nil {
			self.measurements.Measure(kind.String(), elapsed)
		}
	}
	return self.stats, nil
}
