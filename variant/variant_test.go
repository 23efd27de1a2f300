package variant

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testVariants() Variants {
	return Variants{
		{Chr: "chr1", Pos: 100, Ref: "A", Alt: []string{"T"}},
		{Chr: "chr1", Pos: 200, Ref: "C", Alt: []string{"G", "T"}},
		{Chr: "chr2", Pos: 50, Ref: "G", Alt: []string{"A"}},
		{Chr: "chr2", Pos: 75, Ref: "T", Alt: []string{"C"}},
		{Chr: "chr3", Pos: 10, Ref: "A", Alt: []string{"G"}},
	}
}

func chunkedFrom(v Variants, size int) *Chunked {
	c := NewChunked(size)
	for i := range v {
		c.Append(v[i])
	}
	return c
}

func TestTablesAgree(t *testing.T) {
	mat := testVariants()
	chunked := chunkedFrom(mat, 2)
	assert.Equal(t, 3, chunked.NumChunks())

	mask := []bool{true, false, true, true, false}
	for _, table := range []Table{mat, chunked} {
		assert.Equal(t, 5, table.Len())
		assert.Equal(t, 50, table.At(2).Pos)

		chroms, err := table.Strings(Chrom)
		require.NoError(t, err)
		assert.Equal(t, []string{"chr1", "chr1", "chr2", "chr2", "chr3"}, chroms)

		alts, err := table.Strings(Alt)
		require.NoError(t, err)
		assert.Equal(t, "G,T", alts[1])

		pos, err := table.Ints(Pos)
		require.NoError(t, err)
		assert.Equal(t, []int{100, 200, 50, 75, 10}, pos)

		compressed := table.Compress(mask)
		assert.Equal(t, Variants{mat[0], mat[2], mat[3]}, compressed)

		assert.Equal(t, Variants{mat[1], mat[2]}, table.Slice(1, 3))
	}
	assert.Equal(t, mat, chunked.Materialize())
}

func TestUnknownColumn(t *testing.T) {
	_, err := testVariants().Strings("QUAL")
	assert.Error(t, err)
	_, err = chunkedFrom(testVariants(), 0).Ints(Chrom)
	assert.Error(t, err)
}

func TestEmptyCompress(t *testing.T) {
	table := testVariants().Compress(make([]bool, 5))
	assert.Equal(t, 0, table.Len())
}
