package kvbench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestProperties(t *testing.T) {
	k := "key"
	v := "value"
	p := NewProperties()
	p.Add(k, v)
	x := p.Get(k)
	require.Equal(t, v, x)
	x = p.GetDefault(k, "other")
	require.Equal(t, v, x)
	require.Equal(t, "other", p.GetDefault("missing", "other"))
	k1 := "a"
	v1 := "b"
	p2 := Properties{k1: v1}
	p.Merge(p2)
	z := p.Get(k1)
	require.Equal(t, v1, z)
}

func TestLoadFlatProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.properties")
	content := "# comment\nworkers=8\nreadratio = 0.7\n\ntable=Benchmark\n"
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	props, err := LoadProperties(path)
	require.Nil(t, err)
	require.Equal(t, "8", props.Get(PropertyWorkers))
	require.Equal(t, "0.7", props.Get(PropertyReadRatio))
	require.Equal(t, "Benchmark", props.Get(PropertyTableName))
}

func TestLoadFlatPropertiesBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.properties")
	require.Nil(t, os.WriteFile(path, []byte("no separator here\n"), 0644))
	_, err := LoadProperties(path)
	require.NotNil(t, err)
}

func TestLoadYAMLProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := "workers: 8\nreadratio: 0.7\ntable: Benchmark\n"
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	props, err := LoadProperties(path)
	require.Nil(t, err)
	require.Equal(t, "8", props.Get(PropertyWorkers))
	require.Equal(t, "0.7", props.Get(PropertyReadRatio))
	require.Equal(t, "Benchmark", props.Get(PropertyTableName))
}
