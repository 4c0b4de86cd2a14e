package sodg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeTwoGraphs(t *testing.T) {
	g := New(16, DefaultEdgeCapacity)
	g.Add(0)
	g.Add(1)
	foo, _ := ParseLabel("foo")
	require.NoError(t, g.Bind(0, 1, foo))

	extra := New(16, DefaultEdgeCapacity)
	extra.Add(0)
	extra.Add(1)
	bar, _ := ParseLabel("bar")
	require.NoError(t, extra.Bind(0, 1, bar))

	require.NoError(t, g.Merge(extra, 0, 0))
	require.Equal(t, 3, g.Len())
	fk, ok, _ := g.Kid(0, foo)
	require.True(t, ok)
	require.Equal(t, 1, fk)
	bk, ok, _ := g.Kid(0, bar)
	require.True(t, ok)
	require.Equal(t, 2, bk)
}

func TestMergeNonTreeReportsMissed(t *testing.T) {
	g := New(16, DefaultEdgeCapacity)
	extra := New(16, DefaultEdgeCapacity)
	extra.Add(0)
	extra.Add(2)
	extra.Add(13)

	err := g.Merge(extra, 0, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotATree)
}

func TestMergeSingletons(t *testing.T) {
	g := New(16, DefaultEdgeCapacity)
	g.Add(13)
	extra := New(16, DefaultEdgeCapacity)
	extra.Add(13)
	require.NoError(t, g.Merge(extra, 13, 13))
	require.Equal(t, 1, g.Len())
}

func TestMergeData(t *testing.T) {
	g := New(16, DefaultEdgeCapacity)
	g.Add(1)
	extra := New(16, DefaultEdgeCapacity)
	extra.Add(1)
	require.NoError(t, extra.Put(1, FromInt64(42)))
	require.NoError(t, g.Merge(extra, 1, 1))
	d, ok, err := g.Data(1)
	require.NoError(t, err)
	require.True(t, ok)
	i, err := d.ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(42), i)
}
