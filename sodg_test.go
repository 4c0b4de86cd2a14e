package sodg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SodgSuite struct {
	suite.Suite
	g *Sodg
}

func (s *SodgSuite) SetupTest() {
	s.g = New(16, DefaultEdgeCapacity)
}

func (s *SodgSuite) TestAddsAndBinds() {
	s.g.Add(1)
	s.g.Add(2)
	require.NoError(s.T(), s.g.Bind(1, 2, Alpha(0)))
	require.Equal(s.T(), 2, s.g.Len())
}

func (s *SodgSuite) TestAddIsIdempotent() {
	s.g.Add(0)
	s.g.Add(0)
	require.Equal(s.T(), 1, s.g.Len())
}

func (s *SodgSuite) TestBindOnDeadVertexErrors() {
	s.g.Add(1)
	err := s.g.Bind(1, 2, Alpha(0))
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, ErrDeadVertex))
}

func (s *SodgSuite) TestPutAndDataRoundTrip() {
	s.g.Add(42)
	data := FromStrBytes("hello, world!")
	require.NoError(s.T(), s.g.Put(42, data))
	got, ok, err := s.g.Data(42)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.True(s.T(), data.Equal(got))
}

func (s *SodgSuite) TestDataOnEmptyVertex() {
	s.g.Add(0)
	_, ok, err := s.g.Data(0)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

func (s *SodgSuite) TestDataAgainAfterTaken() {
	s.g.Add(0)
	data := FromStrBytes("hello")
	require.NoError(s.T(), s.g.Put(0, data))
	first, _, _ := s.g.Data(0)
	second, _, _ := s.g.Data(0)
	require.True(s.T(), first.Equal(second))
}

func (s *SodgSuite) TestOverwritesEdge() {
	s.g.Add(1)
	s.g.Add(2)
	s.g.Add(3)
	foo, _ := ParseLabel("foo")
	require.NoError(s.T(), s.g.Bind(1, 2, foo))
	require.NoError(s.T(), s.g.Bind(1, 3, foo))
	to, ok, err := s.g.Kid(1, foo)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), 3, to)
}

func (s *SodgSuite) TestFindsAllKids() {
	s.g.Add(0)
	s.g.Add(1)
	one, _ := ParseLabel("one")
	two, _ := ParseLabel("two")
	require.NoError(s.T(), s.g.Bind(0, 1, one))
	require.NoError(s.T(), s.g.Bind(0, 1, two))
	kids, err := s.g.Kids(0)
	require.NoError(s.T(), err)
	count := 0
	for range kids {
		count++
	}
	require.Equal(s.T(), 2, count)
}

func (s *SodgSuite) TestKidOnDeadVertexIsEmptyNotError() {
	foo, _ := ParseLabel("foo")
	to, ok, err := s.g.Kid(99, foo)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.Equal(s.T(), 0, to)
}

func (s *SodgSuite) TestKidsOnDeadVertexIsEmptyNotError() {
	kids, err := s.g.Kids(99)
	require.NoError(s.T(), err)
	count := 0
	for range kids {
		count++
	}
	require.Equal(s.T(), 0, count)
}

func (s *SodgSuite) TestStaticVerticesNeverReclaimed() {
	s.g.Add(0)
	data := FromStrBytes("x")
	require.NoError(s.T(), s.g.Put(0, data))
	_, _, err := s.g.Data(0)
	require.NoError(s.T(), err)
	require.True(s.T(), s.g.isLive(0))
}

func (s *SodgSuite) TestCollectsGarbage() {
	s.g.Add(1)
	s.g.Add(2)
	require.NoError(s.T(), s.g.Bind(1, 2, Alpha(0)))
	require.NoError(s.T(), s.g.Put(2, FromStrBytes("hello")))
	s.g.Add(3)
	require.NoError(s.T(), s.g.Bind(1, 3, Alpha(0)))
	require.Equal(s.T(), 3, s.g.Len())
	_, _, err := s.g.Data(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, s.g.Len())
}

func (s *SodgSuite) TestThirdVertexAbsorbedIntoDynamicBranch() {
	s.g.Add(1)
	s.g.Add(2)
	require.NoError(s.T(), s.g.Bind(1, 2, Alpha(0)))
	s.g.Add(3)
	require.NoError(s.T(), s.g.Bind(1, 3, Alpha(1)))
	// 1, 2 and 3 are now on the same dynamic branch: taking 2's data
	// (its last pending store) reclaims all three.
	require.NoError(s.T(), s.g.Put(2, FromStrBytes("x")))
	_, _, err := s.g.Data(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, s.g.Len())
}

func (s *SodgSuite) TestTwoDynamicBranchesDoNotMerge() {
	s.g.Add(1)
	s.g.Add(2)
	require.NoError(s.T(), s.g.Bind(1, 2, Alpha(0)))
	s.g.Add(3)
	s.g.Add(4)
	require.NoError(s.T(), s.g.Bind(3, 4, Alpha(0)))
	require.NoError(s.T(), s.g.Bind(2, 3, Alpha(0)))
	require.NoError(s.T(), s.g.Put(4, FromStrBytes("y")))
	_, _, err := s.g.Data(4)
	require.NoError(s.T(), err)
	// vertices 1 and 2 stay alive: bind(2,3,...) did not merge their
	// branch with 3/4's, so reclaiming 3/4's branch leaves 1/2 intact.
	require.True(s.T(), s.g.isLive(1))
	require.True(s.T(), s.g.isLive(2))
}

func (s *SodgSuite) TestNextIDScans() {
	require.Equal(s.T(), 0, s.g.NextID())
	require.Equal(s.T(), 1, s.g.NextID())
	require.Equal(s.T(), 2, s.g.NextID())
}

func (s *SodgSuite) TestNextIDAfterInject() {
	s.g.Add(1)
	require.Equal(s.T(), 0, s.g.NextID())
	require.Equal(s.T(), 2, s.g.NextID())
}

func TestSodgSuite(t *testing.T) {
	suite.Run(t, new(SodgSuite))
}
