package kvbench

import (
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestRunnerWriteWorkload(t *testing.T) {
	store := newFakeStore()
	store.delay = time.Millisecond
	config := testConfig(WorkloadWrite, 0.5)
	config.Workers = 4
	config.Duration = 80 * time.Millisecond
	config.PayloadSize = 8

	result, err := NewRunner(config, store).Run()
	require.Nil(t, err)
	// elapsed covers the configured duration plus in-flight overshoot
	require.True(t, result.Elapsed >= config.Duration)
	require.True(t, result.Total.WriteOps > 0)
	require.Equal(t, int64(0), result.Total.ReadOps)
	require.Equal(t, int64(0), result.Total.Errors)
	require.Equal(t, result.Total.WriteOps, int64(len(result.Total.WriteLatencies)))
	require.Equal(t, result.Total.WriteOps, store.writeCalls)
}

func TestRunnerPreparesAndReads(t *testing.T) {
	store := newFakeStore()
	config := testConfig(WorkloadRead, 0.5)
	config.Workers = 2
	config.Duration = 30 * time.Millisecond
	config.InitialRows = 150
	config.PayloadSize = 8

	result, err := NewRunner(config, store).Run()
	require.Nil(t, err)
	// preparation happens strictly before the timed phase
	require.Equal(t, 2, len(store.batches))
	require.True(t, result.Total.ReadOps > 0)
	require.Equal(t, int64(0), result.Total.WriteOps)
}

func TestRunnerFailsFastOnEmptyKeySet(t *testing.T) {
	store := newFakeStore()
	config := testConfig(WorkloadRead, 0.5)
	config.Workers = 2
	config.Duration = time.Second
	config.InitialRows = 0

	result, err := NewRunner(config, store).Run()
	require.Equal(t, ErrNoReadKeys, err)
	require.Nil(t, result)
	// zero store calls: the error fires before any worker starts
	require.Equal(t, int64(0), store.totalCalls())
}

func TestRunnerMixedWorkload(t *testing.T) {
	store := newFakeStore()
	config := testConfig(WorkloadMixed, 0.5)
	config.Workers = 3
	config.Duration = 50 * time.Millisecond
	config.InitialRows = 10
	config.PayloadSize = 8

	result, err := NewRunner(config, store).Run()
	require.Nil(t, err)
	require.True(t, result.Total.TotalOps() > 0)
	require.Equal(t, result.Total.ReadOps+result.Total.WriteOps, result.Total.TotalOps())
}
