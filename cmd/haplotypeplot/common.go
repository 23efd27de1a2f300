package main

import (
	"flag"
	"github.com/dasnellings/haplotypePlot/genotyper"
	"github.com/dasnellings/haplotypePlot/haplotype"
	"github.com/dasnellings/haplotypePlot/phase"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
)

// haplotypeFlags are shared by every subcommand that derives haplotypes.
type haplotypeFlags struct {
	input    *string
	chrom    *string
	parent   *string
	zygosity *string
	window   *int
	chunk    *int
	verbose  *int
}

func addHaplotypeFlags(fs *flag.FlagSet) *haplotypeFlags {
	return &haplotypeFlags{
		input:    fs.String("i", "", "Input VCF file. May be gzipped."),
		chrom:    fs.String("c", "", "Chromosome to analyze."),
		parent:   fs.String("p", "", "Sample name from the VCF used as parental haplotype."),
		zygosity: fs.String("z", "HOM", "Zygosity of the progeny calls. HOM uses one allele per progeny, HET uses both."),
		window:   fs.Int("w", phase.DefaultWindowSize, "Number of previous heterozygous sites used when phasing each parent."),
		chunk:    fs.Int("chunkSize", variant.DefaultChunkSize, "Number of VCF records held per chunk while reading."),
		verbose:  fs.Int("v", 0, "Verbose output by setting to >0."),
	}
}

func (h *haplotypeFlags) missing() bool {
	return *h.input == "" || *h.chrom == "" || *h.parent == ""
}

func (h *haplotypeFlags) logger() *log.Logger {
	if *h.verbose > 0 {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// process runs the haplotyping pipeline. Failures are fatal.
func (h *haplotypeFlags) process() *haplotype.Wrapper {
	z, err := haplotype.ParseZygosity(*h.zygosity)
	if err != nil {
		errExit("\nERROR: " + err.Error())
	}
	logger := h.logger()
	w, err := genotyper.Process(*h.input, *h.chrom, *h.parent, z, genotyper.Options{
		Phaser:    phase.Transmission{WindowSize: *h.window},
		ChunkSize: *h.chunk,
		Logger:    logger,
	})
	exception.PanicOnErr(err)
	return w
}
