package genotype

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// three variants, four samples
var testCalls = [][][2]int16{
	{{0, 0}, {0, 1}, {1, 1}, {0, -1}},
	{{1, 0}, {1, 1}, {0, 0}, {1, 0}},
	{{0, 1}, {-1, -1}, {1, 0}, {0, 0}},
}

func TestParentFirst(t *testing.T) {
	g := FromCalls(testCalls)
	g.SetPhased(1, 2, true)
	for parent := 0; parent < g.NumSamples(); parent++ {
		r := g.ParentFirst(parent)
		require.Equal(t, g.NumSamples(), r.NumSamples())
		require.Equal(t, g.NumVariants(), r.NumVariants())

		var others []int
		for j := 0; j < g.NumSamples(); j++ {
			if j != parent {
				others = append(others, j)
			}
		}
		for i := 0; i < g.NumVariants(); i++ {
			a, b := g.Call(i, parent)
			ra, rb := r.Call(i, 0)
			assert.Equal(t, [2]int16{a, b}, [2]int16{ra, rb})
			for k, orig := range others {
				a, b = g.Call(i, orig)
				ra, rb = r.Call(i, k+1)
				assert.Equal(t, [2]int16{a, b}, [2]int16{ra, rb})
				assert.Equal(t, g.IsPhased(i, orig), r.IsPhased(i, k+1))
			}
		}
	}
}

func TestParentFirstSingleSample(t *testing.T) {
	g := FromCalls([][][2]int16{{{0, 1}}, {{1, 1}}})
	r := g.ParentFirst(0)
	assert.Equal(t, 1, r.NumSamples())
	a, b := r.Call(1, 0)
	assert.Equal(t, int16(1), a)
	assert.Equal(t, int16(1), b)
}

func TestCompress(t *testing.T) {
	g := FromCalls(testCalls)
	g.SetPhased(2, 3, true)
	c := g.Compress([]bool{false, false, true})
	assert.Equal(t, 1, c.NumVariants())
	assert.Equal(t, int16(-1), c.At(0, 1, 0))
	assert.True(t, c.IsPhased(0, 3))
	assert.True(t, c.IsMissing(0, 1))
	assert.False(t, c.IsMissing(0, 0))
}

func TestSlotAndConcatenate(t *testing.T) {
	g := FromCalls(testCalls)
	left := g.Slot(0)
	right := g.Slot(1)
	assert.Equal(t, []int16{0, 1, 0}, left.Column(0))
	assert.Equal(t, []int16{-1, 0, 0}, right.Column(3))

	both := left.Concatenate(right)
	assert.Equal(t, 8, both.NumCols())
	assert.Equal(t, right.Column(2), both.Column(6))

	pair := g.SampleHaplotypes(2)
	assert.Equal(t, []int16{1, 0, 1}, pair.Column(0))
	assert.Equal(t, []int16{1, 0, 0}, pair.Column(1))

	sub := both.SubsetColumns([]int{5, 1})
	assert.Equal(t, both.Column(5), sub.Column(0))
	assert.Equal(t, both.Column(1), sub.Column(1))
}

func TestSampleIndex(t *testing.T) {
	samples := []string{"P", "A", "B"}
	idx, err := SampleIndex(samples, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = SampleIndex(samples, "Q")
	assert.True(t, errors.Is(err, ErrSampleNotFound))
	assert.Contains(t, err.Error(), "'Q'")
}
