package kvbench

import (
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestNewBenchmarkConfigDefaults(t *testing.T) {
	config, err := NewBenchmarkConfig(NewProperties())
	require.Nil(t, err)
	require.Equal(t, "basic", config.Store)
	require.Equal(t, "usertable", config.Table)
	require.Equal(t, 16, config.Workers)
	require.Equal(t, 60*time.Second, config.Duration)
	require.Equal(t, WorkloadMixed, config.Workload)
	require.Equal(t, 0.5, config.ReadRatio)
	require.Equal(t, int64(10000), config.InitialRows)
	require.Equal(t, int64(512), config.PayloadSize)
	require.Equal(t, 0, config.PoolSize)
}

func TestNewBenchmarkConfigClampsReadRatio(t *testing.T) {
	p := NewProperties()
	p.Add(PropertyReadRatio, "1.5")
	config, err := NewBenchmarkConfig(p)
	require.Nil(t, err)
	require.Equal(t, 1.0, config.ReadRatio)

	p.Add(PropertyReadRatio, "-0.5")
	config, err = NewBenchmarkConfig(p)
	require.Nil(t, err)
	require.Equal(t, 0.0, config.ReadRatio)
}

func TestNewBenchmarkConfigRejectsBadValues(t *testing.T) {
	p := NewProperties()
	p.Add(PropertyWorkers, "0")
	_, err := NewBenchmarkConfig(p)
	require.NotNil(t, err)

	p = NewProperties()
	p.Add(PropertyDuration, "-1")
	_, err = NewBenchmarkConfig(p)
	require.NotNil(t, err)

	p = NewProperties()
	p.Add(PropertyWorkload, "scan")
	_, err = NewBenchmarkConfig(p)
	require.NotNil(t, err)

	p = NewProperties()
	p.Add(PropertyInitialRows, "-5")
	_, err = NewBenchmarkConfig(p)
	require.NotNil(t, err)
}

func TestNewBenchmarkConfigFractionalDuration(t *testing.T) {
	p := NewProperties()
	p.Add(PropertyDuration, "0.5")
	config, err := NewBenchmarkConfig(p)
	require.Nil(t, err)
	require.Equal(t, 500*time.Millisecond, config.Duration)
}

func TestParseWorkloadMode(t *testing.T) {
	mode, err := ParseWorkloadMode("read")
	require.Nil(t, err)
	require.Equal(t, WorkloadRead, mode)
	require.True(t, mode.IncludesReads())

	mode, err = ParseWorkloadMode("write")
	require.Nil(t, err)
	require.Equal(t, WorkloadWrite, mode)
	require.False(t, mode.IncludesReads())

	mode, err = ParseWorkloadMode("mixed")
	require.Nil(t, err)
	require.Equal(t, WorkloadMixed, mode)
	require.True(t, mode.IncludesReads())

	_, err = ParseWorkloadMode("delete")
	require.NotNil(t, err)
}
