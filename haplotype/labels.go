package haplotype

import (
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/exception"
	"strconv"
)

// progeny returns the sample list without the parent, in input order.
func (w *Wrapper) progeny() []string {
	ans := make([]string, 0, len(w.samples))
	for _, s := range w.samples {
		if s != w.parentSample {
			ans = append(ans, s)
		}
	}
	return ans
}

// ColumnSamples names the genotype columns: the parent, then the progeny.
func (w *Wrapper) ColumnSamples() []string {
	return append([]string{w.parentSample}, w.progeny()...)
}

// YLabels names the rows of a transmission plot. Both modes start with two rows
// for the parent's chromosome copies, then one row per progeny (HOM) or two rows
// per progeny in slot order (HET).
func (w *Wrapper) YLabels() ([]string, error) {
	ans := []string{w.parentSample + "_1", w.parentSample + "_2"}
	switch w.zygosity {
	case Homozygous:
		ans = append(ans, w.progeny()...)
	case Heterozygous:
		for _, s := range w.progeny() {
			ans = append(ans, s+"_1", s+"_2")
		}
	default:
		return nil, errors.Wrapf(ErrZygosity, "wrapper has %s zygosity", w.zygosity)
	}
	return ans, nil
}

// XLabels are the positions of the retained variants.
func (w *Wrapper) XLabels() []string {
	pos, err := w.variants.Ints(variant.Pos)
	exception.PanicOnErr(err)
	ans := make([]string, len(pos))
	for i := range pos {
		ans[i] = strconv.Itoa(pos[i])
	}
	return ans
}
