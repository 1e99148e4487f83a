package metre

import (
	"testing"

	"github.com/connorsmacd/Cbb/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeline(t *testing.T) {
	tl := NewTimeline("P0")
	changes := tl.Changes()
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Position.Equal(Origin))
	assert.Equal(t, "P0", changes[0].Value)
}

func TestZeroTimeline(t *testing.T) {
	var tl Timeline[int]
	assert.Equal(t, 1, tl.Len())
	assert.Equal(t, 0, tl.LatestAt(Bar(9)).Value)

	require.NoError(t, tl.Add(Bar(2), 7))
	assert.Equal(t, 7, tl.LatestAt(Bar(9)).Value)
	assert.Equal(t, 0, tl.LatestAt(Bar(1)).Value)
}

func TestTimelineLatestAt(t *testing.T) {
	assert := assert.New(t)

	tl := NewTimeline("P0")
	for _, bar := range []int64{0, 1, 12, 13, 500} {
		change := tl.LatestAt(Bar(bar))
		assert.True(change.Position.Equal(Origin))
		assert.Equal("P0", change.Value)
	}

	require.NoError(t, tl.Add(Bar(13), "P1"))

	change := tl.LatestAt(Bar(500))
	assert.True(change.Position.Equal(Bar(13)))
	assert.Equal("P1", change.Value)

	change = tl.LatestAt(Bar(13))
	assert.Equal("P1", change.Value)

	change = tl.LatestAt(Bar(12))
	assert.True(change.Position.Equal(Origin))
	assert.Equal("P0", change.Value)

	change = tl.LatestAt(MustPosition(12, fraction.New(99, 100)))
	assert.Equal("P0", change.Value)

	change = tl.LatestAt(Bar(-3))
	assert.True(change.Position.Equal(Origin), "positions before the origin resolve to the origin")
}

func TestTimelineAdd(t *testing.T) {
	assert := assert.New(t)

	tl := NewTimeline(0)
	require.NoError(t, tl.Add(Bar(8), 8))
	require.NoError(t, tl.Add(Bar(2), 2))
	require.NoError(t, tl.Add(MustPosition(2, fraction.New(1, 4)), 3))
	require.NoError(t, tl.Add(Bar(5), 5))

	var values []int
	for _, c := range tl.Changes() {
		values = append(values, c.Value)
	}
	assert.Equal([]int{0, 2, 3, 5, 8}, values, "changes come out in position order")

	require.NoError(t, tl.Add(MustPosition(2, fraction.New(2, 8)), 4))
	assert.Equal(5, tl.Len(), "an equivalent position overwrites")
	assert.Equal(4, tl.LatestAt(MustPosition(2, fraction.New(1, 2))).Value)

	require.NoError(t, tl.Add(Origin, 100))
	assert.Equal(5, tl.Len())
	assert.Equal(100, tl.LatestAt(Bar(1)).Value)

	err := tl.Add(Bar(-1), -1)
	assert.ErrorIs(err, ErrBeforeOrigin)
	assert.Equal(5, tl.Len())
}

func TestTimelineErase(t *testing.T) {
	tl := NewTimeline("P0")
	require.NoError(t, tl.Add(Bar(12), "P1"))
	require.NoError(t, tl.Add(Bar(20), "P2"))

	tests := []struct {
		name string
		pos  Position
		ok   bool
	}{
		{"origin", Origin, false},
		{"before origin", Bar(-5), false},
		{"no entry", Bar(11), false},
		{"no entry inside bar", MustPosition(12, fraction.New(1, 2)), false},
		{"existing entry", Bar(12), true},
		{"already erased", Bar(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tl.Len()
			assert.Equal(t, tt.ok, tl.Erase(tt.pos))
			if tt.ok {
				assert.Equal(t, before-1, tl.Len())
			} else {
				assert.Equal(t, before, tl.Len())
			}
		})
	}

	changes := tl.Changes()
	require.Len(t, changes, 2)
	assert.Equal(t, "P0", changes[0].Value)
	assert.Equal(t, "P2", changes[1].Value)
}

func TestTimelineChangesIsASnapshot(t *testing.T) {
	tl := NewTimeline(1)
	changes := tl.Changes()
	changes[0].Value = 2
	require.NoError(t, tl.Add(Bar(3), 3))

	assert.Len(t, changes, 1)
	assert.Equal(t, 1, tl.LatestAt(Origin).Value)
}
