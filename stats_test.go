package kvbench

import (
	"math"
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestPercentile(t *testing.T) {
	require.Equal(t, 25.0, Percentile([]float64{10, 20, 30, 40}, 50))
	require.Equal(t, 0.0, Percentile([]float64{}, 50))
	require.Equal(t, 5.0, Percentile([]float64{5}, 99))
}

func TestPercentileBounds(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	require.Equal(t, 1.0, Percentile(values, 0))
	require.Equal(t, 9.0, Percentile(values, 100))
	// input order must not matter
	require.Equal(t, 25.0, Percentile([]float64{40, 10, 30, 20}, 50))
}

func TestPercentileInterpolation(t *testing.T) {
	// k = 3 * 0.95 = 2.85, between 30 and 40
	v := Percentile([]float64{10, 20, 30, 40}, 95)
	require.True(t, math.Abs(v-38.5) < 1e-9)
}

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestToMilliseconds(t *testing.T) {
	ms := ToMilliseconds([]time.Duration{time.Second, 500 * time.Microsecond})
	require.Equal(t, 2, len(ms))
	require.Equal(t, 1000.0, ms[0])
	require.Equal(t, 0.5, ms[1])
}

func TestMergeStatsAssociativity(t *testing.T) {
	reads := []time.Duration{
		3 * time.Millisecond, 1 * time.Millisecond, 4 * time.Millisecond,
		1 * time.Millisecond, 5 * time.Millisecond, 9 * time.Millisecond,
		2 * time.Millisecond, 6 * time.Millisecond,
	}
	writes := []time.Duration{7 * time.Millisecond, 8 * time.Millisecond}

	combined := NewWorkerStats()
	for _, d := range reads {
		combined.RecordRead(d)
	}
	for _, d := range writes {
		combined.RecordWrite(d)
	}
	combined.RecordError()

	// the same raw operations split across two workers
	a := NewWorkerStats()
	b := NewWorkerStats()
	for i, d := range reads {
		if i%2 == 0 {
			a.RecordRead(d)
		} else {
			b.RecordRead(d)
		}
	}
	a.RecordWrite(writes[0])
	b.RecordWrite(writes[1])
	b.RecordError()

	one := MergeStats([]*WorkerStats{combined})
	two := MergeStats([]*WorkerStats{a, b})
	require.Equal(t, one.ReadOps, two.ReadOps)
	require.Equal(t, one.WriteOps, two.WriteOps)
	require.Equal(t, one.Errors, two.Errors)
	require.Equal(t, one.TotalOps(), two.TotalOps())
	for _, p := range []float64{0, 50, 95, 99, 100} {
		require.Equal(t,
			Percentile(ToMilliseconds(one.ReadLatencies), p),
			Percentile(ToMilliseconds(two.ReadLatencies), p))
		require.Equal(t,
			Percentile(ToMilliseconds(one.WriteLatencies), p),
			Percentile(ToMilliseconds(two.WriteLatencies), p))
	}
}

func TestMergeStatsEmpty(t *testing.T) {
	total := MergeStats(nil)
	require.Equal(t, int64(0), total.TotalOps())
	require.Equal(t, int64(0), total.Errors)
	require.Equal(t, 0, len(total.ReadLatencies))
}
