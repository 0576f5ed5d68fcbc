package kvbench

import (
	"fmt"

	"github.com/google/uuid"
)

// PrepareBatchSize bounds the size of any single insert during preparation.
const PrepareBatchSize = 100

// PrepareDataset pre-populates the benchmark table with random keys so that
// point reads have something to hit, and returns the keys in insertion
// order. Keys are random UUIDs, so later reads exercise the store's indexing
// under non-adjacent-key access.
//
// Any batch failure is fatal: either the declared row count is fully present
// or the run does not proceed to the timed phase. Rows are not cleaned up by
// the harness.
func PrepareDataset(store Store, config *BenchmarkConfig, payload string) (KeySet, error) {
	if config.InitialRows <= 0 {
		return nil, nil
	}
	Infof("preparing %d rows for read workload ...", config.InitialRows)
	keys := make(KeySet, 0, config.InitialRows)
	remaining := config.InitialRows
	for remaining > 0 {
		thisBatch := remaining
		if thisBatch > PrepareBatchSize {
			thisBatch = PrepareBatchSize
		}
		rows := make([]Row, 0, thisBatch)
		for i := int64(0); i < thisBatch; i++ {
			key := uuid.NewString()
			keys = append(keys, key)
			rows = append(rows, Row{Key: key, Payload: payload})
		}
		err := store.BatchInsert(config.Table, config.KeyColumn, config.PayloadColumn, rows)
		if err != nil {
			return nil, fmt.Errorf("batch insert of %d rows failed after %d rows: %w",
				thisBatch, int64(len(keys))-thisBatch, err)
		}
		remaining -= thisBatch
	}
	Infof("data preparation done")
	return keys, nil
}
