package genotype

// HaplotypeArray holds single alleles indexed by [variant, column].
type HaplotypeArray struct {
	nVariants int
	nCols     int
	alleles   []int16
}

func NewHaplotypeArray(nVariants, nCols int) *HaplotypeArray {
	return &HaplotypeArray{nVariants: nVariants, nCols: nCols, alleles: make([]int16, nVariants*nCols)}
}

// HaplotypesFromRows builds a haplotype array from [variant][column] values.
func HaplotypesFromRows(rows [][]int16) *HaplotypeArray {
	if len(rows) == 0 {
		return NewHaplotypeArray(0, 0)
	}
	ans := NewHaplotypeArray(len(rows), len(rows[0]))
	for i := range rows {
		copy(ans.alleles[i*ans.nCols:(i+1)*ans.nCols], rows[i])
	}
	return ans
}

func (h *HaplotypeArray) NumVariants() int {
	return h.nVariants
}

func (h *HaplotypeArray) NumCols() int {
	return h.nCols
}

func (h *HaplotypeArray) At(variant, col int) int16 {
	return h.alleles[variant*h.nCols+col]
}

func (h *HaplotypeArray) Set(variant, col int, allele int16) {
	h.alleles[variant*h.nCols+col] = allele
}

// Column returns a copy of a single column.
func (h *HaplotypeArray) Column(col int) []int16 {
	ans := make([]int16, h.nVariants)
	for i := range ans {
		ans[i] = h.At(i, col)
	}
	return ans
}

func (h *HaplotypeArray) Copy() *HaplotypeArray {
	ans := NewHaplotypeArray(h.nVariants, h.nCols)
	copy(ans.alleles, h.alleles)
	return ans
}

// Concatenate joins h and other column-wise into a new array.
func (h *HaplotypeArray) Concatenate(other *HaplotypeArray) *HaplotypeArray {
	ans := NewHaplotypeArray(h.nVariants, h.nCols+other.nCols)
	for i := 0; i < h.nVariants; i++ {
		copy(ans.alleles[i*ans.nCols:], h.alleles[i*h.nCols:(i+1)*h.nCols])
		copy(ans.alleles[i*ans.nCols+h.nCols:], other.alleles[i*other.nCols:(i+1)*other.nCols])
	}
	return ans
}

// Slot projects every sample of g onto one allele slot, giving one column per sample.
func (g *Array) Slot(slot int) *HaplotypeArray {
	ans := NewHaplotypeArray(g.nVariants, g.nSamples)
	var i, j int
	for i = 0; i < g.nVariants; i++ {
		for j = 0; j < g.nSamples; j++ {
			ans.Set(i, j, g.At(i, j, slot))
		}
	}
	return ans
}

// SampleHaplotypes returns both slots of one sample as a two column array.
func (g *Array) SampleHaplotypes(sample int) *HaplotypeArray {
	ans := NewHaplotypeArray(g.nVariants, Ploidy)
	for i := 0; i < g.nVariants; i++ {
		a, b := g.Call(i, sample)
		ans.Set(i, 0, a)
		ans.Set(i, 1, b)
	}
	return ans
}

// SubsetColumns returns the listed columns in the given order.
func (h *HaplotypeArray) SubsetColumns(cols []int) *HaplotypeArray {
	ans := NewHaplotypeArray(h.nVariants, len(cols))
	var i, j int
	for i = 0; i < h.nVariants; i++ {
		for j = range cols {
			ans.Set(i, j, h.At(i, cols[j]))
		}
	}
	return ans
}
