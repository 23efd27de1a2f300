package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/haplotypePlot/callset"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func phaseUsage(phaseFlags *flag.FlagSet) {
	fmt.Print(
		"phase - write calls phased by transmission to a VCF\n" +
			"\tGenotypes of retained records are rewritten as phased (a|b). Other FORMAT fields are kept.\n\n" +
			"Usage:\n" +
			"  haplotypeplot phase [options] -i input.vcf -c chr01 -p SAMPLE1 -o output.vcf\n\n" +
			"Options:\n")
	phaseFlags.PrintDefaults()
}

func runPhase(args []string) {
	var err error
	phaseFlags := flag.NewFlagSet("phase", flag.ExitOnError)

	h := addHaplotypeFlags(phaseFlags)
	output := phaseFlags.String("o", "", "Output VCF file. Defaults to input.phased.vcf next to the input VCF.")
	keepUnmatched := phaseFlags.Bool("keepUnmatched", false, "Write records that were filtered out (not segregating, not phased, or on another chromosome) unchanged instead of dropping them.")

	err = phaseFlags.Parse(args)
	exception.PanicOnErr(err)
	phaseFlags.Usage = func() { phaseUsage(phaseFlags) }

	if h.missing() {
		phaseFlags.Usage()
		errExit("\nERROR: must have inputs for -i, -c, and -p")
	}

	if *output == "" {
		*output = callset.DefaultOutput(*h.input)
	}

	w := h.process()
	err = callset.WritePhased(w, *h.input, *output, callset.WriteOptions{KeepUnmatched: *keepUnmatched})
	exception.PanicOnErr(err)
	log.Printf("Variants saved in '%s'\n", *output)
}
