package phase

import (
	"bytes"
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log"
	"testing"
)

// samples: mother, father, child1, child2
func familyCalls() *genotype.Array {
	return genotype.FromCalls([][][2]int16{
		{{0, 1}, {0, 0}, {0, 0}, {1, 0}},
		{{0, 1}, {0, 0}, {1, 0}, {0, 0}},
		{{0, 1}, {0, 1}, {0, 1}, {-1, -1}},
	})
}

var familyTable = variant.Variants{
	{Chr: "chr01", Pos: 100},
	{Chr: "chr01", Pos: 200},
	{Chr: "chr01", Pos: 300},
}

func call(g *genotype.Array, i, j int) [2]int16 {
	a, b := g.Call(i, j)
	return [2]int16{a, b}
}

func TestPhaseProgeny(t *testing.T) {
	g := genotype.FromCalls([][][2]int16{
		{{0, 1}, {0, 0}, {1, 0}, {0, 0}}, // het child in order, hom child consistent
		{{0, 0}, {1, 1}, {1, 0}, {1, 1}}, // het child swapped, hom child mendel error
		{{0, 1}, {0, 1}, {0, 1}, {-1, 0}}, // ambiguous het child, missing child
	})
	phaseProgeny(g)
	assert.True(t, g.IsPhased(0, 2))
	assert.Equal(t, [2]int16{1, 0}, call(g, 0, 2))
	assert.True(t, g.IsPhased(0, 3))

	assert.True(t, g.IsPhased(1, 2))
	assert.Equal(t, [2]int16{0, 1}, call(g, 1, 2))
	assert.False(t, g.IsPhased(1, 3))

	assert.False(t, g.IsPhased(2, 2))
	assert.False(t, g.IsPhased(2, 3))
}

func TestTransmission(t *testing.T) {
	g := familyCalls()
	phased, err := Transmission{WindowSize: DefaultWindowSize}.Phase(g)
	require.NoError(t, err)

	// input untouched
	assert.Equal(t, [2]int16{0, 1}, call(g, 1, 0))

	// second het site of the mother is linked in opposite orientation
	assert.Equal(t, [2]int16{0, 1}, call(phased, 0, 0))
	assert.Equal(t, [2]int16{1, 0}, call(phased, 1, 0))
	assert.True(t, phased.IsPhased(1, 0))

	// no informative progeny at the third site
	assert.False(t, phased.IsPhased(2, 0))
	assert.True(t, phased.IsPhased(2, 1))

	assert.Equal(t, []bool{true, true, false}, FullyPhased(phased))
}

func TestTransmissionSmallFamily(t *testing.T) {
	g := genotype.FromCalls([][][2]int16{{{0, 1}, {1, 1}}})
	g.SetPhased(0, 0, true)
	phased, err := Transmission{WindowSize: 10}.Phase(g)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, FullyPhased(phased))
}

func TestTransmissionWindow(t *testing.T) {
	_, err := Transmission{}.Phase(familyCalls())
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	var buf bytes.Buffer
	g, table, err := Filter(familyCalls(), familyTable, Transmission{WindowSize: DefaultWindowSize}, log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumVariants())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 200, table.At(1).Pos)
	assert.Contains(t, buf.String(), "found 2 phased")
}

type nothingPhased struct{}

func (nothingPhased) Phase(g *genotype.Array) (*genotype.Array, error) {
	return g.Copy(), nil
}

func TestFilterFallback(t *testing.T) {
	var buf bytes.Buffer
	g, table, err := Filter(familyCalls(), familyTable, nothingPhased{}, log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, familyTable.Len(), table.Len())
	assert.Equal(t, 3, g.NumVariants())
	assert.Contains(t, buf.String(), "WARNING")
}

func TestFilterMismatch(t *testing.T) {
	_, _, err := Filter(familyCalls(), familyTable.Slice(0, 2), nothingPhased{}, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}
