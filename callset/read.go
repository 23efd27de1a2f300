// Package callset loads genotype calls from VCF files and writes phased calls back.
package callset

import (
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/vcf"
	"os"
)

// Callset is the content of a VCF reduced to what haplotyping needs.
type Callset struct {
	Path      string
	Samples   []string
	Variants  *variant.Chunked
	Genotypes *genotype.Array
}

// SampleNames lists the header samples in column order.
func SampleNames(header vcf.Header) []string {
	ans := make([]string, len(header.Samples))
	for name, idx := range header.Samples {
		ans[idx] = name
	}
	return ans
}

// Read streams every record of filename into memory. Variants are stored in
// chunks of chunkSize records.
func Read(filename string, chunkSize int) (*Callset, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, errors.Wrapf(err, "could not open VCF '%s'", filename)
	}
	records, header := vcf.GoReadToChan(filename)
	samples := SampleNames(header)
	table := variant.NewChunked(chunkSize)

	var calls [][][2]int16
	var phased [][]bool
	var row [][2]int16
	var rowPhased []bool
	var j int
	var err error
	for v := range records {
		if err != nil {
			continue // drain
		}
		if len(v.Samples) != len(samples) {
			err = errors.Errorf("%s:%d has %d samples, header lists %d", v.Chr, v.Pos, len(v.Samples), len(samples))
			continue
		}
		table.Append(toVariant(v))
		row = make([][2]int16, len(v.Samples))
		rowPhased = make([]bool, len(v.Samples))
		for j = range v.Samples {
			row[j] = diploid(v.Samples[j])
			rowPhased[j] = isPhased(v.Samples[j])
		}
		calls = append(calls, row)
		phased = append(phased, rowPhased)
	}
	if err != nil {
		return nil, err
	}

	g := genotype.NewArray(len(calls), len(samples))
	var i int
	for i = range calls {
		for j = range calls[i] {
			g.Set(i, j, calls[i][j][0], calls[i][j][1])
			g.SetPhased(i, j, phased[i][j])
		}
	}
	return &Callset{Path: filename, Samples: samples, Variants: table, Genotypes: g}, nil
}

func toVariant(v vcf.Vcf) variant.Variant {
	return variant.Variant{
		Chr:    v.Chr,
		Pos:    v.Pos,
		Id:     v.Id,
		Ref:    v.Ref,
		Alt:    v.Alt,
		Qual:   v.Qual,
		Filter: v.Filter,
		Info:   v.Info,
	}
}

// diploid returns the first two alleles of s, padding haploid or empty calls with missing alleles.
func diploid(s vcf.Sample) [2]int16 {
	ans := [2]int16{genotype.Missing, genotype.Missing}
	for k := 0; k < len(s.Alleles) && k < genotype.Ploidy; k++ {
		ans[k] = s.Alleles[k]
	}
	return ans
}

func isPhased(s vcf.Sample) bool {
	for k := range s.Phase {
		if s.Phase[k] {
			return true
		}
	}
	return false
}
