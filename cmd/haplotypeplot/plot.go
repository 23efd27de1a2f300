package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/haplotypePlot/heatmap"
	"github.com/dasnellings/haplotypePlot/paint"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"runtime"
	"strings"
)

func plotUsage(plotFlags *flag.FlagSet) {
	fmt.Print(
		"plot - draw a transmission painting of a parent and its progeny\n" +
			"\tEach progeny allele is coloured by the parental haplotype it was inherited from.\n\n" +
			"Usage:\n" +
			"  haplotypeplot plot [options] -i input.vcf -c chr01 -p SAMPLE1 -o haplotypes.png\n\n" +
			"Options:\n")
	plotFlags.PrintDefaults()
}

// confPairs collects repeated -conf flags.
type confPairs []string

// String to satisfy flag.Value interface
func (c *confPairs) String() string {
	return strings.Join(*c, " ")
}

// Set to satisfy flag.Value interface
func (c *confPairs) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func runPlot(args []string) {
	var err error
	plotFlags := flag.NewFlagSet("plot", flag.ExitOnError)

	var conf confPairs
	h := addHaplotypeFlags(plotFlags)
	output := plotFlags.String("o", "", "Output image. Format is chosen by extension (png, svg, pdf, ...). Defaults to haplotypes.png next to the input VCF.")
	configFile := plotFlags.String("config", "", "YAML file with plot options (title, xtickslabels, ytickslabels, start, end, size_x, size_y, show).")
	plotFlags.Var(&conf, "conf", "Plot option as KEY=VALUE, may be declared more than once. "+
		"Keys: title, xtickslabels, ytickslabels, start, end, size_x, size_y, show. Lists are comma separated. "+
		"end=0 shows every variant.")
	threads := plotFlags.Int("threads", runtime.NumCPU(), "Number of threads used for painting.")

	err = plotFlags.Parse(args)
	exception.PanicOnErr(err)
	plotFlags.Usage = func() { plotUsage(plotFlags) }

	if h.missing() {
		plotFlags.Usage()
		errExit("\nERROR: must have inputs for -i, -c, and -p")
	}

	w := h.process()
	painting, err := paint.Paint(w.ParentCopies(), w.ParentAndProgenyHaplotypes(), *threads)
	exception.PanicOnErr(err)

	cfg, err := heatmap.DefaultConfig(w)
	exception.PanicOnErr(err)
	if *configFile != "" {
		if err = cfg.LoadConfig(*configFile); err != nil {
			errExit("\nERROR: " + err.Error())
		}
	}
	if err = cfg.Override(conf); err != nil {
		errExit("\nERROR: " + err.Error())
	}
	if err = cfg.Validate(); err != nil {
		errExit("\nERROR: " + err.Error())
	}

	if *output == "" {
		*output = w.PlotPath()
	}
	err = heatmap.Save(w.ParentCopies(), painting, cfg, *output)
	exception.PanicOnErr(err)
	log.Printf("Plot saved in '%s'\n", *output)

	if cfg.Show {
		out := fileio.EasyCreate("stdout")
		err = heatmap.Show(out, w.ParentCopies(), painting, cfg)
		exception.PanicOnErr(err)
		err = out.Close()
		exception.PanicOnErr(err)
	}
}
