package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "1.1.1"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
var SubCommands = []*subcommand{
	{"plot", runPlot, "draw a transmission painting of a parent and its progeny"},
	{"phase", runPhase, "write calls phased by transmission to a VCF"},
	{"summary", runSummary, "tabulate inheritance categories per progeny haplotype"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: haplotypeplot (parent to progeny haplotype transmission plots from VCF)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\thaplotypeplot [-version] <command> [options]\n" +
			"\tRun 'haplotypeplot <command> -h' for the options of a command.\n\n" +
			"Commands:\n")

	// one aligned row per subcommand
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap indexes SubCommands by name.
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	printVersion := flag.Bool("version", false, "Print the version and exit.")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}
	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		flag.Usage()
		return
	}

	// subcommands parse their own flags from the remaining arguments
	command := commandMap()[flag.Arg(0)]
	if command == nil {
		flag.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown command '%s'", flag.Arg(0)))
	}
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
