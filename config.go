package kvbench

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// The store binding to benchmark against.
	PropertyStore        = "store"
	PropertyStoreDefault = "basic"

	// The name of the table holding benchmark rows.
	PropertyTableName        = "table"
	PropertyTableNameDefault = "usertable"
	// The primary key column (STRING keys are generated as UUIDs).
	PropertyKeyColumn        = "keycolumn"
	PropertyKeyColumnDefault = "bench_key"
	// The column used to store the payload string.
	PropertyPayloadColumn        = "payloadcolumn"
	PropertyPayloadColumnDefault = "bench_payload"

	// The number of concurrent worker goroutines.
	PropertyWorkers        = "workers"
	PropertyWorkersDefault = "16"
	// Benchmark duration in seconds. Does not include data preparation.
	PropertyDuration        = "duration"
	PropertyDurationDefault = "60"
	// The type of workload to run: "read", "write" or "mixed".
	PropertyWorkload        = "workload"
	PropertyWorkloadDefault = "mixed"
	// Read ratio for the mixed workload, clamped into [0, 1].
	PropertyReadRatio        = "readratio"
	PropertyReadRatioDefault = "0.5"
	// The number of rows to pre-insert for read workloads.
	PropertyInitialRows        = "initialrows"
	PropertyInitialRowsDefault = "10000"
	// Payload size in bytes for inserted rows.
	PropertyPayloadSize        = "payloadsize"
	PropertyPayloadSizeDefault = "512"
	// Connection/session pool size hint, passed opaquely to the store
	// binding (0 = binding default).
	PropertyPoolSize        = "poolsize"
	PropertyPoolSizeDefault = "0"

	// Interval in seconds between live status lines (0 disables them).
	PropertyStatusInterval        = "status.interval"
	PropertyStatusIntervalDefault = "10"
	// Address to serve prometheus metrics on, e.g. ":9090".
	// Empty disables the endpoint.
	PropertyMetricsAddr        = "metrics.addr"
	PropertyMetricsAddrDefault = ""

	PropertyLogLevel        = "loglevel"
	PropertyLogLevelDefault = "info"

	// BasicStore
	ConfigBasicVerbose               = "basic.verbose"
	ConfigBasicVerboseDefault        = "false"
	ConfigBasicSimulateDelay         = "basic.simulatedelay"
	ConfigBasicSimulateDelayDefault  = "0"
	ConfigBasicRandomizeDelay        = "basic.randomizedelay"
	ConfigBasicRandomizeDelayDefault = "true"
)

type WorkloadMode uint8

const (
	WorkloadRead WorkloadMode = 1 + iota
	WorkloadWrite
	WorkloadMixed
)

func (self WorkloadMode) String() string {
	switch self {
	case WorkloadRead:
		return "read"
	case WorkloadWrite:
		return "write"
	case WorkloadMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// IncludesReads reports whether the mode can issue read operations and
// therefore needs a prepared key set.
func (self WorkloadMode) IncludesReads() bool {
	return self == WorkloadRead || self == WorkloadMixed
}

func ParseWorkloadMode(s string) (WorkloadMode, error) {
	switch s {
	case "read":
		return WorkloadRead, nil
	case "write":
		return WorkloadWrite, nil
	case "mixed":
		return WorkloadMixed, nil
	default:
		return 0, fmt.Errorf("unknown workload %q, expect read, write or mixed", s)
	}
}

// BenchmarkConfig is the validated, immutable configuration of one run.
// It is built once from Properties before any worker starts.
type BenchmarkConfig struct {
	Store          string
	Table          string
	KeyColumn      string
	PayloadColumn  string
	Workers        int
	Duration       time.Duration
	Workload       WorkloadMode
	ReadRatio      float64
	InitialRows    int64
	PayloadSize    int64
	PoolSize       int
	StatusInterval time.Duration
	MetricsAddr    string
}

// NewBenchmarkConfig parses and validates a BenchmarkConfig from Properties.
// The read ratio is clamped into [0, 1] here, before any worker observes it.
func NewBenchmarkConfig(p Properties) (*BenchmarkConfig, error) {
	workers, err := strconv.Atoi(p.GetDefault(PropertyWorkers, PropertyWorkersDefault))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyWorkers, err)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", PropertyWorkers, workers)
	}
	durationSecs, err := strconv.ParseFloat(p.GetDefault(PropertyDuration, PropertyDurationDefault), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyDuration, err)
	}
	if durationSecs <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %g", PropertyDuration, durationSecs)
	}
	workload, err := ParseWorkloadMode(p.GetDefault(PropertyWorkload, PropertyWorkloadDefault))
	if err != nil {
		return nil, err
	}
	readRatio, err := strconv.ParseFloat(p.GetDefault(PropertyReadRatio, PropertyReadRatioDefault), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyReadRatio, err)
	}
	if readRatio < 0.0 {
		readRatio = 0.0
	} else if readRatio > 1.0 {
		readRatio = 1.0
	}
	initialRows, err := strconv.ParseInt(p.GetDefault(PropertyInitialRows, PropertyInitialRowsDefault), 0, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyInitialRows, err)
	}
	if initialRows < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", PropertyInitialRows, initialRows)
	}
	payloadSize, err := strconv.ParseInt(p.GetDefault(PropertyPayloadSize, PropertyPayloadSizeDefault), 0, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyPayloadSize, err)
	}
	if payloadSize < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", PropertyPayloadSize, payloadSize)
	}
	poolSize, err := strconv.Atoi(p.GetDefault(PropertyPoolSize, PropertyPoolSizeDefault))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyPoolSize, err)
	}
	statusSecs, err := strconv.ParseFloat(p.GetDefault(PropertyStatusInterval, PropertyStatusIntervalDefault), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PropertyStatusInterval, err)
	}

	return &BenchmarkConfig{
		Store:          p.GetDefault(PropertyStore, PropertyStoreDefault),
		Table:          p.GetDefault(PropertyTableName, PropertyTableNameDefault),
		KeyColumn:      p.GetDefault(PropertyKeyColumn, PropertyKeyColumnDefault),
		PayloadColumn:  p.GetDefault(PropertyPayloadColumn, PropertyPayloadColumnDefault),
		Workers:        workers,
		Duration:       time.Duration(durationSecs * float64(time.Second)),
		Workload:       workload,
		ReadRatio:      readRatio,
		InitialRows:    initialRows,
		PayloadSize:    payloadSize,
		PoolSize:       poolSize,
		StatusInterval: time.Duration(statusSecs * float64(time.Second)),
		MetricsAddr:    p.GetDefault(PropertyMetricsAddr, PropertyMetricsAddrDefault),
	}, nil
}
