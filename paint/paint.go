// Package paint classifies transmitted alleles against the two chromosome copies
// of a parent.
package paint

import (
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Category codes are fixed; colour maps index on them.
const (
	Undetermined   int8 = iota // not enough parental information
	Parent1                    // allele matches parent copy 1 only
	Parent2                    // allele matches parent copy 2 only
	NonSegRef                  // reference allele carried by both parent copies
	NonSegAlt                  // non-reference allele carried by both parent copies
	NonParental                // allele absent from the parent
	ParentMissing              // one or both parent copies missing
	Missing                    // transmitted allele missing
	NumCategories
)

// CategoryNames are short descriptions indexed by category code.
var CategoryNames = [NumCategories]string{
	"undetermined",
	"parent_1",
	"parent_2",
	"nonseg_ref",
	"nonseg_alt",
	"nonparental",
	"parent_missing",
	"missing",
}

// blockSize is the number of variants painted by each worker.
const blockSize = 1024

// Matrix holds category codes indexed by [variant, column].
type Matrix struct {
	nVariants int
	nCols     int
	cells     []int8
}

func NewMatrix(nVariants, nCols int) *Matrix {
	return &Matrix{nVariants: nVariants, nCols: nCols, cells: make([]int8, nVariants*nCols)}
}

func (m *Matrix) NumVariants() int {
	return m.nVariants
}

func (m *Matrix) NumCols() int {
	return m.nCols
}

func (m *Matrix) At(variant, col int) int8 {
	return m.cells[variant*m.nCols+col]
}

func (m *Matrix) set(variant, col int, c int8) {
	m.cells[variant*m.nCols+col] = c
}

// Crop returns rows [start, end). An end of 0 means the last variant.
func (m *Matrix) Crop(start, end int) *Matrix {
	if end == 0 || end > m.nVariants {
		end = m.nVariants
	}
	if start > end {
		start = end
	}
	ans := NewMatrix(end-start, m.nCols)
	copy(ans.cells, m.cells[start*m.nCols:end*m.nCols])
	return ans
}

// Stack joins m and other column-wise.
func (m *Matrix) Stack(other *Matrix) *Matrix {
	ans := NewMatrix(m.nVariants, m.nCols+other.nCols)
	for i := 0; i < m.nVariants; i++ {
		copy(ans.cells[i*ans.nCols:], m.cells[i*m.nCols:(i+1)*m.nCols])
		copy(ans.cells[i*ans.nCols+m.nCols:], other.cells[i*other.nCols:(i+1)*other.nCols])
	}
	return ans
}

// Classify paints a single transmitted allele against parent copies p1 and p2.
func Classify(p1, p2, allele int16) int8 {
	switch {
	case allele < 0:
		return Missing
	case p1 < 0 || p2 < 0:
		return ParentMissing
	}
	match1 := allele == p1
	match2 := allele == p2
	switch {
	case match1 && match2 && allele == 0:
		return NonSegRef
	case match1 && match2:
		return NonSegAlt
	case match1:
		return Parent1
	case match2:
		return Parent2
	default:
		return NonParental
	}
}

// Paint classifies the progeny columns of combined, all columns after the first,
// against the two columns of parentCopies. Variant blocks are painted by up to
// threads goroutines.
func Paint(parentCopies, combined *genotype.HaplotypeArray, threads int) (*Matrix, error) {
	if parentCopies.NumCols() != 2 {
		return nil, errors.Errorf("exactly two parental haplotypes should be provided, got %d", parentCopies.NumCols())
	}
	if parentCopies.NumVariants() != combined.NumVariants() {
		return nil, errors.Errorf("parental haplotypes have %d variants, transmitted haplotypes have %d", parentCopies.NumVariants(), combined.NumVariants())
	}
	if combined.NumCols() < 1 {
		return nil, errors.New("transmitted haplotypes must include the parent column")
	}
	if threads < 1 {
		threads = 1
	}

	ans := NewMatrix(combined.NumVariants(), combined.NumCols()-1)
	var eg errgroup.Group
	eg.SetLimit(threads)
	for start := 0; start < ans.nVariants; start += blockSize {
		start := start
		end := start + blockSize
		if end > ans.nVariants {
			end = ans.nVariants
		}
		eg.Go(func() error {
			paintBlock(ans, parentCopies, combined, start, end)
			return nil
		})
	}
	return ans, eg.Wait()
}

func paintBlock(m *Matrix, parentCopies, combined *genotype.HaplotypeArray, start, end int) {
	var i, j int
	var p1, p2 int16
	for i = start; i < end; i++ {
		p1 = parentCopies.At(i, 0)
		p2 = parentCopies.At(i, 1)
		for j = 0; j < m.nCols; j++ {
			m.set(i, j, Classify(p1, p2, combined.At(i, j+1)))
		}
	}
}

// Parent paints the parent's own two copies against themselves, the rows drawn
// above the progeny in a transmission plot.
func Parent(parentCopies *genotype.HaplotypeArray) *Matrix {
	ans := NewMatrix(parentCopies.NumVariants(), 2)
	var p1, p2 int16
	for i := 0; i < ans.nVariants; i++ {
		p1 = parentCopies.At(i, 0)
		p2 = parentCopies.At(i, 1)
		ans.set(i, 0, Classify(p1, p2, p1))
		ans.set(i, 1, Classify(p1, p2, p2))
	}
	return ans
}
