package sodg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	g := New(16, DefaultEdgeCapacity)
	g.Add(0)
	g.Add(1)
	foo, _ := ParseLabel("foo")
	require.NoError(t, g.Bind(0, 1, foo))
	require.NoError(t, g.Put(1, FromStrBytes("hello")))

	path := filepath.Join(t.TempDir(), "snapshot.sodg")
	require.NoError(t, g.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	want, err := g.Inspect(0)
	require.NoError(t, err)
	got, err := loaded.Inspect(0)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.sodg"))
	require.Error(t, err)
}
