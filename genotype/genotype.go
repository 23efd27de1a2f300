// Package genotype stores diploid genotype calls as a [variant, sample, slot] array
// and provides the projections used to build haplotypes.
package genotype

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Missing is the allele value of an uncalled allele.
const Missing int16 = -1

// Ploidy is the number of allele slots per call.
const Ploidy = 2

var ErrSampleNotFound = errors.New("sample not found")

// Array holds genotype calls for nVariants x nSamples with a parallel phased matrix.
type Array struct {
	nVariants int
	nSamples  int
	alleles   []int16 // [variant][sample][slot]
	phased    []bool  // [variant][sample]
}

// NewArray returns an array with every allele set to Missing and nothing phased.
func NewArray(nVariants, nSamples int) *Array {
	ans := &Array{
		nVariants: nVariants,
		nSamples:  nSamples,
		alleles:   make([]int16, nVariants*nSamples*Ploidy),
		phased:    make([]bool, nVariants*nSamples),
	}
	for i := range ans.alleles {
		ans.alleles[i] = Missing
	}
	return ans
}

// FromCalls builds an array from [variant][sample] pairs of alleles. Nothing is marked phased.
func FromCalls(calls [][][2]int16) *Array {
	if len(calls) == 0 {
		return NewArray(0, 0)
	}
	ans := NewArray(len(calls), len(calls[0]))
	var i, j int
	for i = range calls {
		for j = range calls[i] {
			ans.Set(i, j, calls[i][j][0], calls[i][j][1])
		}
	}
	return ans
}

func (g *Array) NumVariants() int {
	return g.nVariants
}

func (g *Array) NumSamples() int {
	return g.nSamples
}

func (g *Array) idx(variant, sample int) int {
	return (variant*g.nSamples + sample) * Ploidy
}

// At returns the allele in slot of the call for (variant, sample).
func (g *Array) At(variant, sample, slot int) int16 {
	return g.alleles[g.idx(variant, sample)+slot]
}

// Call returns both alleles of the call for (variant, sample).
func (g *Array) Call(variant, sample int) (int16, int16) {
	i := g.idx(variant, sample)
	return g.alleles[i], g.alleles[i+1]
}

func (g *Array) Set(variant, sample int, a, b int16) {
	i := g.idx(variant, sample)
	g.alleles[i] = a
	g.alleles[i+1] = b
}

func (g *Array) IsPhased(variant, sample int) bool {
	return g.phased[variant*g.nSamples+sample]
}

func (g *Array) SetPhased(variant, sample int, phased bool) {
	g.phased[variant*g.nSamples+sample] = phased
}

// IsMissing reports whether either allele of the call is missing.
func (g *Array) IsMissing(variant, sample int) bool {
	a, b := g.Call(variant, sample)
	return a < 0 || b < 0
}

// Copy returns a deep copy.
func (g *Array) Copy() *Array {
	ans := &Array{nVariants: g.nVariants, nSamples: g.nSamples}
	ans.alleles = slices.Clone(g.alleles)
	ans.phased = slices.Clone(g.phased)
	return ans
}

// Compress keeps the variant rows where mask is true.
func (g *Array) Compress(mask []bool) *Array {
	var n int
	for i := range mask {
		if mask[i] {
			n++
		}
	}
	ans := NewArray(n, g.nSamples)
	rowAlleles := g.nSamples * Ploidy
	var row int
	for i := range mask {
		if !mask[i] {
			continue
		}
		copy(ans.alleles[row*rowAlleles:(row+1)*rowAlleles], g.alleles[i*rowAlleles:(i+1)*rowAlleles])
		copy(ans.phased[row*g.nSamples:(row+1)*g.nSamples], g.phased[i*g.nSamples:(i+1)*g.nSamples])
		row++
	}
	return ans
}

// SelectSamples returns an array holding only the listed sample columns, in the given order.
func (g *Array) SelectSamples(samples []int) *Array {
	ans := NewArray(g.nVariants, len(samples))
	var i, j int
	for i = 0; i < g.nVariants; i++ {
		for j = range samples {
			a, b := g.Call(i, samples[j])
			ans.Set(i, j, a, b)
			ans.SetPhased(i, j, g.IsPhased(i, samples[j]))
		}
	}
	return ans
}

// Concatenate joins g and other along the sample axis. Both must have the same number of variants.
func (g *Array) Concatenate(other *Array) *Array {
	ans := NewArray(g.nVariants, g.nSamples+other.nSamples)
	var i, j int
	for i = 0; i < g.nVariants; i++ {
		for j = 0; j < g.nSamples; j++ {
			a, b := g.Call(i, j)
			ans.Set(i, j, a, b)
			ans.SetPhased(i, j, g.IsPhased(i, j))
		}
		for j = 0; j < other.nSamples; j++ {
			a, b := other.Call(i, j)
			ans.Set(i, g.nSamples+j, a, b)
			ans.SetPhased(i, g.nSamples+j, other.IsPhased(i, j))
		}
	}
	return ans
}

// ParentFirst places the parental sample in column 0 followed by the remaining
// samples in their original relative order. Call values are not altered.
func (g *Array) ParentFirst(parentIdx int) *Array {
	progeny := make([]int, 0, g.nSamples-1)
	for i := 0; i < g.nSamples; i++ {
		if i != parentIdx {
			progeny = append(progeny, i)
		}
	}
	parental := g.SelectSamples([]int{parentIdx})
	return parental.Concatenate(g.SelectSamples(progeny))
}

// SampleIndex returns the position of sample in samples.
func SampleIndex(samples []string, sample string) (int, error) {
	ans := slices.Index(samples, sample)
	if ans == -1 {
		return -1, errors.Wrapf(ErrSampleNotFound, "sample '%s' is not in VCF sample list %v", sample, samples)
	}
	return ans, nil
}
