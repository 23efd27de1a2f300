package paint

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"io"
	"strings"
	"text/tabwriter"
)

// ColumnSummary counts the categories painted in one column.
type ColumnSummary struct {
	Label  string
	Counts [NumCategories]float64
}

// Informative is the number of cells that trace to exactly one parent copy.
func (c ColumnSummary) Informative() float64 {
	return c.Counts[Parent1] + c.Counts[Parent2]
}

// Parent1Fraction is the share of informative cells inherited from parent copy 1.
func (c ColumnSummary) Parent1Fraction() float64 {
	inf := c.Informative()
	if inf == 0 {
		return 0
	}
	return c.Counts[Parent1] / inf
}

// Summarize counts categories for every column of m. labels, when given, must
// have one entry per column.
func Summarize(m *Matrix, labels []string) []ColumnSummary {
	ans := make([]ColumnSummary, m.NumCols())
	var i, j int
	for j = range ans {
		if j < len(labels) {
			ans[j].Label = labels[j]
		} else {
			ans[j].Label = fmt.Sprintf("col%d", j)
		}
		for i = 0; i < m.NumVariants(); i++ {
			ans[j].Counts[m.At(i, j)]++
		}
	}
	return ans
}

// WriteSummary prints one row per column with counts per category and the parent copy 1 fraction.
func WriteSummary(out io.Writer, summaries []ColumnSummary) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	header := make([]string, 0, NumCategories+3)
	header = append(header, "haplotype")
	header = append(header, CategoryNames[:]...)
	header = append(header, "total", "parent_1_frac")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	s := new(strings.Builder)
	for _, c := range summaries {
		s.Reset()
		s.WriteString(c.Label)
		for k := range c.Counts {
			s.WriteString(fmt.Sprintf("\t%.0f", c.Counts[k]))
		}
		s.WriteString(fmt.Sprintf("\t%.0f\t%.3f", floats.Sum(c.Counts[:]), c.Parent1Fraction()))
		fmt.Fprintln(w, s.String())
	}
	return w.Flush()
}

// Parent1Profile is, per variant, the fraction of informative progeny alleles
// inherited from parent copy 1. Variants without informative alleles are 0.5.
func Parent1Profile(m *Matrix) []float64 {
	ans := make([]float64, m.NumVariants())
	row := make([]float64, NumCategories)
	var i, j int
	for i = range ans {
		floats.Scale(0, row)
		for j = 0; j < m.NumCols(); j++ {
			row[m.At(i, j)]++
		}
		if row[Parent1]+row[Parent2] == 0 {
			ans[i] = 0.5
			continue
		}
		ans[i] = row[Parent1] / (row[Parent1] + row[Parent2])
	}
	return ans
}

// Profile draws Parent1Profile as an ASCII graph of at most width columns. Two
// flat series at 0 and 1 are drawn with it so the y axis always spans [0, 1].
func Profile(m *Matrix, width int, caption string) string {
	data := Parent1Profile(m)
	if len(data) == 0 {
		return ""
	}
	lower := make([]float64, len(data))
	upper := make([]float64, len(data))
	floats.AddConst(1, upper)
	return asciigraph.PlotMany([][]float64{data, lower, upper},
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Gray, asciigraph.Gray),
		asciigraph.Caption(caption))
}
