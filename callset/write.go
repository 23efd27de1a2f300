package callset

import (
	"github.com/dasnellings/haplotypePlot/filter"
	"github.com/dasnellings/haplotypePlot/haplotype"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrIntegrity = errors.New("phased data integrity violation")

// WriteOptions controls phased VCF output.
type WriteOptions struct {
	// KeepUnmatched writes input records without a phased row unchanged.
	// By default they are left out of the output.
	KeepUnmatched bool
}

// DefaultOutput derives <input without extension>.phased.vcf.
func DefaultOutput(input string) string {
	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	abs = strings.TrimSuffix(abs, ".gz")
	return strings.TrimSuffix(abs, filepath.Ext(abs)) + ".phased.vcf"
}

func tempName(output string) string {
	if strings.HasSuffix(output, ".gz") {
		return strings.TrimSuffix(output, ".gz") + ".tmp.gz"
	}
	return output + ".tmp"
}

// WritePhased copies the records of input to output, replacing the GT of every
// sample with the phased call of the matching row in w. Output is only moved into
// place once every record has been written.
func WritePhased(w *haplotype.Wrapper, input, output string, opts WriteOptions) (err error) {
	g := w.Genotypes()
	if g.NumVariants() != w.Variants().Len() {
		return errors.Wrapf(ErrIntegrity, "%d phased calls for %d variants", g.NumVariants(), w.Variants().Len())
	}
	if _, err = os.Stat(input); err != nil {
		return errors.Wrapf(err, "could not open VCF '%s'", input)
	}

	columns := make(map[string]int)
	for i, s := range w.ColumnSamples() {
		columns[s] = i
	}
	idx := filter.NewPositionIndex(w.Variants())

	records, header := vcf.GoReadToChan(input)
	defer func() {
		for range records {
		}
	}()

	vcfCols := SampleNames(header)
	genoCols := make([]int, len(vcfCols))
	var ok bool
	for k := range vcfCols {
		if genoCols[k], ok = columns[vcfCols[k]]; !ok {
			return errors.Wrapf(ErrIntegrity, "sample '%s' in %s has no phased calls", vcfCols[k], input)
		}
	}

	dest := output
	if output != "stdout" {
		dest = tempName(output)
		defer func() {
			if err != nil {
				os.Remove(dest)
			}
		}()
	}
	out := fileio.EasyCreate(dest)
	vcf.NewWriteHeader(out, header)

	var rows []int
	var a, b int16
	var k int
	for v := range records {
		rows = idx.Locate(v.Chr, v.Pos)
		switch len(rows) {
		case 0:
			if opts.KeepUnmatched {
				if err = writeRecord(out, v); err != nil {
					out.Close()
					return errors.Wrapf(err, "writing %s", dest)
				}
			}
			continue
		case 1:
		default:
			out.Close()
			return errors.Wrapf(ErrIntegrity, "%d phased rows match %s:%d", len(rows), v.Chr, v.Pos)
		}
		if len(v.Samples) != len(genoCols) {
			out.Close()
			return errors.Wrapf(ErrIntegrity, "%s:%d has %d samples, header lists %d", v.Chr, v.Pos, len(v.Samples), len(genoCols))
		}
		if len(v.Format) == 0 || v.Format[0] != "GT" {
			v.Format = append([]string{"GT"}, v.Format...)
			for k = range v.Samples {
				v.Samples[k].FormatData = append([]string{""}, v.Samples[k].FormatData...)
			}
		}
		for k = range v.Samples {
			a, b = g.Call(rows[0], genoCols[k])
			v.Samples[k].Alleles = []int16{a, b}
			v.Samples[k].Phase = []bool{true, true}
		}
		if err = writeRecord(out, v); err != nil {
			out.Close()
			return errors.Wrapf(err, "writing %s", dest)
		}
	}

	if err = out.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", dest)
	}
	if dest != output {
		if err = os.Rename(dest, output); err != nil {
			return errors.Wrapf(err, "moving %s to %s", dest, output)
		}
	}
	return nil
}

// writeRecord writes v as a VCF data line. Missing alleles are written as '.'.
func writeRecord(out io.Writer, v vcf.Vcf) error {
	s := new(strings.Builder)
	s.WriteString(strings.Join([]string{v.Chr, strconv.Itoa(v.Pos), v.Id, v.Ref, strings.Join(v.Alt, ","),
		strconv.FormatFloat(v.Qual, 'g', -1, 64), v.Filter, v.Info}, "\t"))
	if len(v.Format) > 0 {
		s.WriteString("\t" + vcf.FormatToString(v.Format))
		gt := v.Format[0] == "GT"
		for _, sample := range v.Samples {
			s.WriteByte('\t')
			if gt {
				s.WriteString(genotypeString(sample))
			}
			s.WriteString(strings.Join(sample.FormatData, ":"))
		}
	}
	s.WriteByte('\n')
	_, err := io.WriteString(out, s.String())
	return err
}

// genotypeString formats the GT field of s. A call without alleles is written as ./. to
// keep the output diploid.
func genotypeString(s vcf.Sample) string {
	if len(s.Alleles) == 0 {
		return "./."
	}
	ans := new(strings.Builder)
	for i, a := range s.Alleles {
		if i > 0 {
			ans.WriteString(vcf.PhasedToString(i < len(s.Phase) && s.Phase[i]))
		}
		if a < 0 {
			ans.WriteByte('.')
		} else {
			ans.WriteString(strconv.Itoa(int(a)))
		}
	}
	return ans.String()
}
