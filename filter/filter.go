// Package filter builds boolean selection masks over variant tables and genotype arrays.
package filter

import (
	"fmt"
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"log"
)

// ByChrom marks variants on chrom.
func ByChrom(t variant.Table, chrom string) []bool {
	ans := make([]bool, t.Len())
	for i := range ans {
		ans[i] = t.At(i).Chr == chrom
	}
	return ans
}

// ByChromAndPos marks variants at exactly chrom:pos.
func ByChromAndPos(t variant.Table, chrom string, pos int) []bool {
	ans := make([]bool, t.Len())
	var v variant.Variant
	for i := range ans {
		v = t.At(i)
		ans[i] = v.Chr == chrom && v.Pos == pos
	}
	return ans
}

// Segregating marks variants where more than one distinct allele is called across all samples.
func Segregating(g *genotype.Array) []bool {
	ans := make([]bool, g.NumVariants())
	var i, j, k int
	var first, curr int16
	for i = range ans {
		first = genotype.Missing
	search:
		for j = 0; j < g.NumSamples(); j++ {
			for k = 0; k < genotype.Ploidy; k++ {
				curr = g.At(i, j, k)
				if curr < 0 {
					continue
				}
				if first < 0 {
					first = curr
					continue
				}
				if curr != first {
					ans[i] = true
					break search
				}
			}
		}
	}
	return ans
}

// And returns the element-wise conjunction of two masks of equal length.
func And(a, b []bool) []bool {
	ans := make([]bool, len(a))
	for i := range a {
		ans[i] = a[i] && b[i]
	}
	return ans
}

// Count returns the number of true entries.
func Count(mask []bool) int {
	var ans int
	for i := range mask {
		if mask[i] {
			ans++
		}
	}
	return ans
}

// ForHaplotyping keeps variants on chrom that are segregating across all samples.
func ForHaplotyping(g *genotype.Array, t variant.Table, chrom string, logger *log.Logger) (*genotype.Array, variant.Table) {
	inChrom := ByChrom(t, chrom)
	logger.Printf("DEBUG: there are %d variants in chromosome %s\n", Count(inChrom), chrom)

	segregating := Segregating(g)
	logger.Printf("DEBUG: there are %d segregating variants\n", Count(segregating))

	keep := And(inChrom, segregating)
	logger.Printf("DEBUG: number of variants to keep %d\n", Count(keep))
	return g.Compress(keep), t.Compress(keep)
}

// PositionIndex answers ByChromAndPos queries without scanning the whole table.
type PositionIndex map[string][]int

func key(chrom string, pos int) string {
	return fmt.Sprintf("%s:%d", chrom, pos)
}

func NewPositionIndex(t variant.Table) PositionIndex {
	ans := make(PositionIndex)
	var v variant.Variant
	for i := 0; i < t.Len(); i++ {
		v = t.At(i)
		ans[key(v.Chr, v.Pos)] = append(ans[key(v.Chr, v.Pos)], i)
	}
	return ans
}

// Locate returns the rows matching chrom:pos.
func (p PositionIndex) Locate(chrom string, pos int) []int {
	return p[key(chrom, pos)]
}
