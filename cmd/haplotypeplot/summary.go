package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/haplotypePlot/paint"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"runtime"
)

func summaryUsage(summaryFlags *flag.FlagSet) {
	fmt.Print(
		"summary - tabulate inheritance categories per progeny haplotype\n" +
			"\tOptionally draws the fraction of progeny alleles inherited from the first parental haplotype along the chromosome.\n\n" +
			"Usage:\n" +
			"  haplotypeplot summary [options] -i input.vcf -c chr01 -p SAMPLE1 > summary.tsv\n\n" +
			"Options:\n")
	summaryFlags.PrintDefaults()
}

func runSummary(args []string) {
	var err error
	summaryFlags := flag.NewFlagSet("summary", flag.ExitOnError)

	h := addHaplotypeFlags(summaryFlags)
	output := summaryFlags.String("o", "stdout", "Output summary file.")
	profile := summaryFlags.Bool("profile", false, "Append an ASCII graph of the first parental haplotype fraction per variant.")
	width := summaryFlags.Int("width", 100, "Width of the ASCII graph in characters.")
	threads := summaryFlags.Int("threads", runtime.NumCPU(), "Number of threads used for painting.")

	err = summaryFlags.Parse(args)
	exception.PanicOnErr(err)
	summaryFlags.Usage = func() { summaryUsage(summaryFlags) }

	if h.missing() {
		summaryFlags.Usage()
		errExit("\nERROR: must have inputs for -i, -c, and -p")
	}

	w := h.process()
	painting, err := paint.Paint(w.ParentCopies(), w.ParentAndProgenyHaplotypes(), *threads)
	exception.PanicOnErr(err)
	labels, err := w.YLabels()
	exception.PanicOnErr(err)

	out := fileio.EasyCreate(*output)
	err = paint.WriteSummary(out, paint.Summarize(painting, labels[2:]))
	exception.PanicOnErr(err)
	if *profile {
		_, err = fmt.Fprintln(out, "\n"+paint.Profile(painting, *width, fmt.Sprintf("%s %s parent_1 fraction", w.ParentSample(), w.Chrom())))
		exception.PanicOnErr(err)
	}
	err = out.Close()
	exception.PanicOnErr(err)
}
