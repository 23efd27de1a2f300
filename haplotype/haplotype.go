// Package haplotype derives parent and progeny haplotypes from phased genotype
// calls where the parent occupies sample column 0.
package haplotype

import (
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPlotName is the file name used for plots written next to the input VCF.
const DefaultPlotName = "haplotypes.png"

type Zygosity int

const (
	Undefined Zygosity = iota
	Homozygous
	Heterozygous
)

var (
	ErrZygosity       = errors.New("unknown zygosity")
	ErrAlreadyDerived = errors.New("haplotypes already derived")
)

func (z Zygosity) String() string {
	switch z {
	case Homozygous:
		return "HOM"
	case Heterozygous:
		return "HET"
	case Undefined:
		return "UNDEFINED"
	default:
		return "Zygosity(" + strconv.Itoa(int(z)) + ")"
	}
}

// ParseZygosity accepts HOM/HET as well as the full names, case insensitive.
func ParseZygosity(s string) (Zygosity, error) {
	switch strings.ToUpper(s) {
	case "HOM", "HOMOZYGOUS":
		return Homozygous, nil
	case "HET", "HETEROZYGOUS":
		return Heterozygous, nil
	}
	return Undefined, errors.Wrapf(ErrZygosity, "'%s' must be one of HOM, HET", s)
}

// Unclassified holds filtered calls for one chromosome and parent before
// haplotypes have been derived. It can be derived exactly once.
type Unclassified struct {
	inputPath    string
	genotypes    *genotype.Array
	variants     variant.Table
	chrom        string
	samples      []string
	parentSample string
	consumed     bool
}

// NewUnclassified takes ownership of genotypes and variants. Column 0 of genotypes
// must hold parentSample; samples is the sample list in its original VCF order.
func NewUnclassified(inputPath string, genotypes *genotype.Array, variants variant.Table, chrom string, samples []string, parentSample string) *Unclassified {
	return &Unclassified{
		inputPath:    inputPath,
		genotypes:    genotypes,
		variants:     variants,
		chrom:        chrom,
		samples:      samples,
		parentSample: parentSample,
	}
}

// Derive computes haplotypes under z and hands every array over to the returned Wrapper.
func (u *Unclassified) Derive(z Zygosity) (*Wrapper, error) {
	if u.consumed {
		return nil, errors.Wrapf(ErrAlreadyDerived, "parent %s in %s", u.parentSample, u.chrom)
	}

	var parent, combined *genotype.HaplotypeArray
	switch z {
	case Homozygous:
		parent, combined = homozygous(u.genotypes)
	case Heterozygous:
		parent, combined = heterozygous(u.genotypes)
	default:
		return nil, errors.Wrapf(ErrZygosity, "'%s' parameter", z)
	}
	u.consumed = true

	ans := &Wrapper{
		inputPath:    u.inputPath,
		genotypes:    u.genotypes,
		variants:     u.variants,
		chrom:        u.chrom,
		samples:      u.samples,
		parentSample: u.parentSample,
		zygosity:     z,
		parent:       parent,
		combined:     combined,
	}
	u.genotypes, u.variants = nil, nil
	return ans, nil
}

// homozygous uses slot 0 of every sample, assuming progeny calls are homozygous.
func homozygous(g *genotype.Array) (parent, combined *genotype.HaplotypeArray) {
	left := g.Slot(0)
	parent = left.SubsetColumns([]int{0})
	progeny := make([]int, 0, g.NumSamples()-1)
	for j := 1; j < g.NumSamples(); j++ {
		progeny = append(progeny, j)
	}
	combined = parent.Concatenate(left.SubsetColumns(progeny))
	return parent, combined
}

// heterozygous uses both slots of each progeny, slot 0 then slot 1, in sample order.
func heterozygous(g *genotype.Array) (parent, combined *genotype.HaplotypeArray) {
	left := g.Slot(0)
	right := g.Slot(1)
	parent = left.SubsetColumns([]int{0})
	combined = parent.Copy()
	for j := 1; j < g.NumSamples(); j++ {
		combined = combined.Concatenate(left.SubsetColumns([]int{j}))
		combined = combined.Concatenate(right.SubsetColumns([]int{j}))
	}
	return parent, combined
}

// Wrapper is the read-only result of haplotype derivation for one chromosome and parent.
type Wrapper struct {
	inputPath    string
	genotypes    *genotype.Array
	variants     variant.Table
	chrom        string
	samples      []string
	parentSample string
	zygosity     Zygosity
	parent       *genotype.HaplotypeArray
	combined     *genotype.HaplotypeArray
}

func (w *Wrapper) InputPath() string {
	return w.inputPath
}

// Genotypes returns the filtered, phased calls with the parent in column 0.
func (w *Wrapper) Genotypes() *genotype.Array {
	return w.genotypes
}

func (w *Wrapper) Variants() variant.Table {
	return w.variants
}

func (w *Wrapper) Chrom() string {
	return w.chrom
}

// Samples returns the sample list in input order.
func (w *Wrapper) Samples() []string {
	return w.samples
}

func (w *Wrapper) ParentSample() string {
	return w.parentSample
}

func (w *Wrapper) Zygosity() Zygosity {
	return w.zygosity
}

func (w *Wrapper) IsHomozygous() bool {
	return w.zygosity == Homozygous
}

func (w *Wrapper) IsHeterozygous() bool {
	return w.zygosity == Heterozygous
}

// ParentHaplotypes is slot 0 of the parent, one column.
func (w *Wrapper) ParentHaplotypes() *genotype.HaplotypeArray {
	return w.parent
}

// ParentAndProgenyHaplotypes is the parent column followed by the progeny columns.
func (w *Wrapper) ParentAndProgenyHaplotypes() *genotype.HaplotypeArray {
	return w.combined
}

// ParentCopies returns both chromosome copies of the parent as two columns.
func (w *Wrapper) ParentCopies() *genotype.HaplotypeArray {
	return w.genotypes.SampleHaplotypes(0)
}

// PlotPath is the default plot location, next to the input file.
func (w *Wrapper) PlotPath() string {
	return filepath.Join(filepath.Dir(w.inputPath), DefaultPlotName)
}
