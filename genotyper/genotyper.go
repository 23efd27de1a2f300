// Package genotyper runs the steps from a VCF file to derived haplotypes for one
// chromosome and parental sample.
package genotyper

import (
	"github.com/dasnellings/haplotypePlot/callset"
	"github.com/dasnellings/haplotypePlot/filter"
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/haplotype"
	"github.com/dasnellings/haplotypePlot/phase"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"io"
	"log"
)

var ErrChromNotFound = errors.New("chromosome not found")

type Options struct {
	// Phaser defaults to transmission phasing with phase.DefaultWindowSize.
	Phaser    phase.Phaser
	ChunkSize int
	Logger    *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Phaser == nil {
		o.Phaser = phase.Transmission{WindowSize: phase.DefaultWindowSize}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Process reads vcfPath and derives the haplotypes of parentSample and its progeny on chrom.
func Process(vcfPath, chrom, parentSample string, z haplotype.Zygosity, opts Options) (*haplotype.Wrapper, error) {
	opts = opts.withDefaults()
	opts.Logger.Printf("DEBUG: loading VCF file '%s'\n", vcfPath)
	cs, err := callset.Read(vcfPath, opts.ChunkSize)
	if err != nil {
		return nil, err
	}
	return ProcessCallset(cs, chrom, parentSample, z, opts)
}

// ProcessCallset runs the pipeline on calls already in memory.
func ProcessCallset(cs *callset.Callset, chrom, parentSample string, z haplotype.Zygosity, opts Options) (*haplotype.Wrapper, error) {
	opts = opts.withDefaults()
	parentIdx, err := genotype.SampleIndex(cs.Samples, parentSample)
	if err != nil {
		return nil, err
	}
	var table variant.Table = cs.Variants
	if filter.Count(filter.ByChrom(table, chrom)) == 0 {
		return nil, errors.Wrapf(ErrChromNotFound, "chromosome '%s' not found in the VCF '%s'", chrom, cs.Path)
	}

	g := cs.Genotypes.ParentFirst(parentIdx)
	g, table = filter.ForHaplotyping(g, table, chrom, opts.Logger)
	g, table, err = phase.Filter(g, table, opts.Phaser, opts.Logger)
	if err != nil {
		return nil, err
	}

	return haplotype.NewUnclassified(cs.Path, g, table, chrom, cs.Samples, parentSample).Derive(z)
}
