package kvbench

import (
	"strings"
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestMeasurementsSummary(t *testing.T) {
	m := NewMeasurements()
	require.Equal(t, "", m.GetSummary())
	m.Measure("READ", 2*time.Millisecond)
	m.Measure("READ", 4*time.Millisecond)
	m.Measure("WRITE", 8*time.Millisecond)
	summary := m.GetSummary()
	require.True(t, strings.Contains(summary, "READ: Count=2"))
	require.True(t, strings.Contains(summary, "WRITE: Count=1"))
	// Classes are reported in sorted order.
	require.True(t, strings.Index(summary, "READ") < strings.Index(summary, "WRITE"))
}
