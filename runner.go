package kvbench

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Runner coordinates one benchmark run: dataset preparation, fail-fast
// validation, launching the workers against one shared deadline, and
// collecting their stats. The runner itself performs no store I/O during
// the timed phase.
type Runner struct {
	config       *BenchmarkConfig
	store        Store
	measurements *Measurements
}

func NewRunner(config *BenchmarkConfig, store Store) *Runner {
	return &Runner{
		config:       config,
		store:        store,
		measurements: NewMeasurements(),
	}
}

func (self *Runner) Run() (*RunResult, error) {
	config := self.config
	payload := strings.Repeat("x", int(config.PayloadSize))

	var keys KeySet
	if config.Workload.IncludesReads() {
		var err error
		keys, err = PrepareDataset(self.store, config, payload)
		if err != nil {
			return nil, fmt.Errorf("data preparation failed: %w", err)
		}
	}

	// Surface the configuration error before any worker starts.
	if err := NewWorkload(config, keys, 0).Validate(); err != nil {
		return nil, err
	}

	Infof("starting benchmark run: workload=%s workers=%d duration=%s store=%s",
		config.Workload, config.Workers, config.Duration, config.Store)
	reporter := NewStatusReporter(config.StatusInterval, self.measurements)
	reporter.Start()

	start := time.Now()
	deadline := start.Add(config.Duration)
	results := make(chan *WorkerStats, config.Workers)
	failures := make(chan error, config.Workers)
	var wg sync.WaitGroup
	for i := 0; i < config.Workers; i++ {
		worker := NewWorker(i, self.store, config, keys, payload, deadline, self.measurements)
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats, err := worker.Run()
			if err != nil {
				failures <- err
				return
			}
			results <- stats
		}()
	}
	wg.Wait()
	// Elapsed wall-clock time may exceed the configured duration by
	// whatever operations were still in flight at the deadline.
	elapsed := time.Since(start)
	reporter.Stop()
	close(results)
	close(failures)

	if err, ok := <-failures; ok {
		return nil, err
	}
	statsList := make([]*WorkerStats, 0, config.Workers)
	for stats := range results {
		statsList = append(statsList, stats)
	}
	return &RunResult{
		Config:  config,
		Elapsed: elapsed,
		Total:   MergeStats(statsList),
	}, nil
}
