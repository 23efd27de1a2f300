package callset

import (
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/haplotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/vcf"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const writerVcf = "testdata/writer.vcf"

func TestRead(t *testing.T) {
	cs, err := Read(writerVcf, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "A"}, cs.Samples)
	assert.Equal(t, 3, cs.Variants.Len())
	assert.Equal(t, 2, cs.Variants.NumChunks())
	assert.Equal(t, 200, cs.Variants.At(1).Pos)
	assert.Equal(t, "G", cs.Variants.At(1).Ref)

	g := cs.Genotypes
	require.Equal(t, 3, g.NumVariants())
	require.Equal(t, 2, g.NumSamples())
	a, b := g.Call(1, 1)
	assert.Equal(t, [2]int16{1, 0}, [2]int16{a, b})
	assert.True(t, g.IsMissing(2, 0))
	assert.False(t, g.IsPhased(0, 0))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read("testdata/nothing.vcf", 0)
	assert.Error(t, err)
}

// wrapper with one phased row at chr1:200 where A is 0|1
func writerWrapper(t *testing.T, rows variant.Variants, calls [][][2]int16) *haplotype.Wrapper {
	u := haplotype.NewUnclassified(writerVcf, genotype.FromCalls(calls), rows, "chr1", []string{"P", "A"}, "P")
	w, err := u.Derive(haplotype.Heterozygous)
	require.NoError(t, err)
	return w
}

func dataLines(t *testing.T, path string) [][]string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var ans [][]string
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ans = append(ans, strings.Split(line, "\t"))
	}
	return ans
}

func TestWritePhased(t *testing.T) {
	w := writerWrapper(t, variant.Variants{{Chr: "chr1", Pos: 200}}, [][][2]int16{{{1, 1}, {0, 1}}})
	out := filepath.Join(t.TempDir(), "writer.phased.vcf")
	require.NoError(t, WritePhased(w, writerVcf, out, WriteOptions{}))

	lines := dataLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"chr1", "200", ".", "G", "C", "50", "PASS", ".", "GT:DP", "1|1:10", "0|1:11"}, lines[0])

	records, _ := vcf.GoReadToChan(out)
	var n int
	for v := range records {
		n++
		assert.Equal(t, []int16{0, 1}, v.Samples[1].Alleles)
	}
	assert.Equal(t, 1, n)

	_, err := os.Stat(tempName(out))
	assert.True(t, os.IsNotExist(err))
}

func TestWritePhasedKeepUnmatched(t *testing.T) {
	w := writerWrapper(t, variant.Variants{{Chr: "chr1", Pos: 200}}, [][][2]int16{{{1, 1}, {0, 1}}})
	out := filepath.Join(t.TempDir(), "all.vcf")
	require.NoError(t, WritePhased(w, writerVcf, out, WriteOptions{KeepUnmatched: true}))

	lines := dataLines(t, out)
	require.Len(t, lines, 3)
	assert.Equal(t, "100", lines[0][1])
	assert.Equal(t, []string{"0/0:10", "0/1:11"}, lines[0][9:])
	assert.Equal(t, []string{"1|1:10", "0|1:11"}, lines[1][9:])
	assert.Equal(t, []string{"./.:10", "0/0:11"}, lines[2][9:])
}

func TestWritePhasedMissingAlleles(t *testing.T) {
	w := writerWrapper(t, variant.Variants{{Chr: "chr1", Pos: 300}}, [][][2]int16{{{-1, -1}, {0, -1}}})
	out := filepath.Join(t.TempDir(), "missing.vcf")
	require.NoError(t, WritePhased(w, writerVcf, out, WriteOptions{}))

	lines := dataLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, []string{".|.:10", "0|.:11"}, lines[0][9:])
}

func TestGenotypeString(t *testing.T) {
	assert.Equal(t, "./.", genotypeString(vcf.Sample{}))
	assert.Equal(t, "0/1", genotypeString(vcf.Sample{Alleles: []int16{0, 1}, Phase: []bool{false, false}}))
	assert.Equal(t, ".|2", genotypeString(vcf.Sample{Alleles: []int16{-1, 2}, Phase: []bool{true, true}}))
}

func TestWritePhasedDuplicateRows(t *testing.T) {
	w := writerWrapper(t,
		variant.Variants{{Chr: "chr1", Pos: 200}, {Chr: "chr1", Pos: 200}},
		[][][2]int16{{{1, 1}, {0, 1}}, {{1, 1}, {1, 0}}})
	out := filepath.Join(t.TempDir(), "dup.vcf")
	err := WritePhased(w, writerVcf, out, WriteOptions{})
	assert.True(t, errors.Is(err, ErrIntegrity))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(tempName(out))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWritePhasedRowMismatch(t *testing.T) {
	w := writerWrapper(t, variant.Variants{{Chr: "chr1", Pos: 200}, {Chr: "chr1", Pos: 300}}, [][][2]int16{{{1, 1}, {0, 1}}})
	err := WritePhased(w, writerVcf, filepath.Join(t.TempDir(), "x.vcf"), WriteOptions{})
	assert.True(t, errors.Is(err, ErrIntegrity))
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "/data/chr01.phased.vcf", DefaultOutput("/data/chr01.vcf"))
	assert.Equal(t, "/data/chr01.phased.vcf", DefaultOutput("/data/chr01.vcf.gz"))
}
