package kvbench

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func testConfig(mode WorkloadMode, readRatio float64) *BenchmarkConfig {
	return &BenchmarkConfig{
		Table:         "usertable",
		KeyColumn:     "bench_key",
		PayloadColumn: "bench_payload",
		Workload:      mode,
		ReadRatio:     readRatio,
	}
}

func containsKey(keys KeySet, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestWorkloadReadModeOnlyReads(t *testing.T) {
	keys := KeySet{"a", "b", "c"}
	workload := NewWorkload(testConfig(WorkloadRead, 0.5), keys, 1)
	require.Nil(t, workload.Validate())
	for i := 0; i < 1000; i++ {
		kind, key := workload.NextOperation()
		require.Equal(t, OperationRead, kind)
		require.True(t, containsKey(keys, key))
	}
}

func TestWorkloadWriteModeOnlyWrites(t *testing.T) {
	keys := KeySet{"a", "b", "c"}
	workload := NewWorkload(testConfig(WorkloadWrite, 0.5), keys, 1)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		kind, key := workload.NextOperation()
		require.Equal(t, OperationWrite, kind)
		// write keys are freshly generated, never drawn from the key set
		require.False(t, containsKey(keys, key))
		require.False(t, seen[key])
		seen[key] = true
	}
}

func TestWorkloadMixedRatioOne(t *testing.T) {
	keys := KeySet{"a", "b"}
	workload := NewWorkload(testConfig(WorkloadMixed, 1.0), keys, 2)
	for i := 0; i < 10000; i++ {
		kind, _ := workload.NextOperation()
		require.Equal(t, OperationRead, kind)
	}
}

func TestWorkloadMixedRatioZero(t *testing.T) {
	keys := KeySet{"a", "b"}
	workload := NewWorkload(testConfig(WorkloadMixed, 0.0), keys, 3)
	for i := 0; i < 10000; i++ {
		kind, _ := workload.NextOperation()
		require.Equal(t, OperationWrite, kind)
	}
}

func TestWorkloadFailFastOnEmptyKeySet(t *testing.T) {
	require.Equal(t, ErrNoReadKeys,
		NewWorkload(testConfig(WorkloadRead, 0.5), nil, 0).Validate())
	require.Equal(t, ErrNoReadKeys,
		NewWorkload(testConfig(WorkloadMixed, 0.5), nil, 0).Validate())
	// a write-only workload needs no prepared keys
	require.Nil(t, NewWorkload(testConfig(WorkloadWrite, 0.5), nil, 0).Validate())
}

func TestOperationKindString(t *testing.T) {
	require.Equal(t, "READ", OperationRead.String())
	require.Equal(t, "WRITE", OperationWrite.String())
}
