package kvbench

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrNoReadKeys signals a misconfiguration: a read or mixed workload was
// requested but the prepared key set is empty. It is raised before any store
// call, distinctly from runtime store errors.
var ErrNoReadKeys = errors.New(
	"read workload requested but no prepared keys are available; " +
		"increase initialrows or switch to a write-only workload")

type OperationKind uint8

const (
	OperationRead OperationKind = 1 + iota
	OperationWrite
)

func (self OperationKind) String() string {
	switch self {
	case OperationRead:
		return "READ"
	case OperationWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// KeySet is the ordered set of keys written during dataset preparation.
// It is shared read-only across all workers for the lifetime of the run.
type KeySet []string

// Workload decides, per iteration, whether the next operation is a read or
// a write and supplies its operand. Each worker owns one Workload instance
// with an independent random source, so worker streams are not correlated
// but runs are not bit-reproducible.
//
// In mixed mode the read/write choice is a fresh uniform draw every
// iteration: the configured ratio holds statistically, not exactly.
type Workload struct {
	mode      WorkloadMode
	readRatio float64
	keys      KeySet
	random    *rand.Rand
}

func NewWorkload(config *BenchmarkConfig, keys KeySet, workerID int) *Workload {
	seed := int64(workerID) ^ time.Now().Unix()
	return &Workload{
		mode:      config.Workload,
		readRatio: config.ReadRatio,
		keys:      keys,
		random:    rand.New(rand.NewSource(seed)),
	}
}

// Validate checks preconditions once, at loop entry.
func (self *Workload) Validate() error {
	if self.mode.IncludesReads() && len(self.keys) == 0 {
		return ErrNoReadKeys
	}
	return nil
}

// NextOperation returns the kind of the next operation and its key operand:
// an existing key drawn uniformly with replacement from the key set for
// reads, a freshly generated unique key for writes.
func (self *Workload) NextOperation() (OperationKind, string) {
	var kind OperationKind
	switch self.mode {
	case WorkloadRead:
		kind = OperationRead
	case WorkloadWrite:
		kind = OperationWrite
	default:
		if self.random.Float64() < self.readRatio {
			kind = OperationRead
		} else {
			kind = OperationWrite
		}
	}
	if kind == OperationRead {
		return OperationRead, self.keys[self.random.Intn(len(self.keys))]
	}
	return OperationWrite, uuid.NewString()
}
