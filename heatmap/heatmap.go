package heatmap

import (
	"fmt"
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/paint"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"image/color"
	"io"
	"math"
	"strings"
)

// Grid adapts a painting to plotter.GridXYZ. Columns are variants and rows are haplotypes.
type Grid struct {
	cells *mat.Dense // [haplotype, variant]
}

// NewGrid lays the parent rows of a painting under the progeny rows of m so that
// row r of the grid is haplotype label r.
func NewGrid(parent, m *paint.Matrix) Grid {
	all := parent.Stack(m)
	cells := mat.NewDense(max(all.NumCols(), 1), max(all.NumVariants(), 1), nil)
	var i, j int
	for i = 0; i < all.NumVariants(); i++ {
		for j = 0; j < all.NumCols(); j++ {
			cells.Set(j, i, float64(all.At(i, j)))
		}
	}
	return Grid{cells: cells}
}

func (g Grid) Dims() (c, r int) {
	r, c = g.cells.Dims()
	return c, r
}

func (g Grid) Z(c, r int) float64 {
	return g.cells.At(r, c)
}

func (g Grid) X(c int) float64 {
	return float64(c)
}

func (g Grid) Y(r int) float64 {
	return float64(r)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}

// spectral approximates the 10 colour Spectral palette.
var spectral = []color.RGBA{
	{158, 1, 66, 255},
	{213, 62, 79, 255},
	{244, 109, 67, 255},
	{253, 174, 97, 255},
	{254, 224, 139, 255},
	{230, 245, 152, 255},
	{171, 221, 164, 255},
	{102, 194, 165, 255},
	{50, 136, 189, 255},
	{94, 79, 162, 255},
}

// Palette maps each painting category to its colour, in category order.
func Palette() palette.Palette {
	return colors{
		color.RGBA{128, 128, 128, 255}, // undetermined
		spectral[4],                    // parent copy 1
		spectral[3],                    // parent copy 2
		spectral[8],                    // non-segregating reference
		spectral[7],                    // non-segregating alternate
		spectral[0],                    // non-parental
		spectral[9],                    // parental allele missing
		color.White,                    // missing
	}
}

type labelTicks []string

func (l labelTicks) Ticks(min, max float64) []plot.Tick {
	var ans []plot.Tick
	for i := range l {
		if float64(i) >= min && float64(i) <= max {
			ans = append(ans, plot.Tick{Value: float64(i), Label: l[i]})
		}
	}
	return ans
}

// Crop limits a painting and its x labels to the configured variant window.
func Crop(m *paint.Matrix, cfg *Config) *paint.Matrix {
	end := cfg.End
	if end == 0 || end > m.NumVariants() {
		end = m.NumVariants()
	}
	start := cfg.Start
	if start > end {
		start = end
	}
	if len(cfg.XTicksLabel) >= end {
		cfg.XTicksLabel = cfg.XTicksLabel[start:end]
	}
	return m.Crop(start, end)
}

// Plot builds the transmission heatmap for the parent copies and the progeny painting.
// X labels, when given, must name every variant before cropping.
func Plot(parentCopies *genotype.HaplotypeArray, progeny *paint.Matrix, cfg Config) (*plot.Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.XTicksLabel) != 0 && len(cfg.XTicksLabel) != progeny.NumVariants() {
		return nil, errors.Wrapf(ErrConfig, "%d x labels for %d variants", len(cfg.XTicksLabel), progeny.NumVariants())
	}
	parent := Crop(paint.Parent(parentCopies), &Config{Start: cfg.Start, End: cfg.End})
	progeny = Crop(progeny, &cfg)
	if n := parent.NumCols() + progeny.NumCols(); len(cfg.YTicksLabel) != n {
		return nil, errors.Wrapf(ErrConfig, "%d y labels for %d haplotype rows", len(cfg.YTicksLabel), n)
	}

	hm := plotter.NewHeatMap(NewGrid(parent, progeny), Palette())
	hm.Min = 0
	hm.Max = float64(paint.NumCategories - 1)

	pl := plot.New()
	pl.Add(hm)
	pl.X.Label.Text = "Variants"
	pl.Y.Label.Text = "Progeny haplotypes"
	pl.X.Tick.Marker = labelTicks(cfg.XTicksLabel)
	pl.X.Tick.Label.Rotation = math.Pi / 4
	pl.X.Tick.Label.XAlign = text.XRight
	pl.X.Tick.Label.Font.Size = 6
	pl.Y.Tick.Marker = labelTicks(cfg.YTicksLabel)
	pl.Y.Tick.Label.Font.Size = 6
	if cfg.Title != "" {
		pl.Title.Text = cfg.Title
	}
	return pl, nil
}

// Save renders the heatmap to filename; the image format follows the extension.
func Save(parentCopies *genotype.HaplotypeArray, progeny *paint.Matrix, cfg Config, filename string) error {
	pl, err := Plot(parentCopies, progeny, cfg)
	if err != nil {
		return err
	}
	if err = pl.Save(vg.Length(cfg.SizeX)*vg.Inch, vg.Length(cfg.SizeY)*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "saving plot to %s", filename)
	}
	return nil
}

// symbols draw each category on a terminal.
var symbols = [paint.NumCategories]byte{'?', '1', '2', '.', ':', 'X', '-', ' '}

// Show writes one line per haplotype row with one character per variant in the window.
func Show(out io.Writer, parentCopies *genotype.HaplotypeArray, progeny *paint.Matrix, cfg Config) error {
	parent := Crop(paint.Parent(parentCopies), &Config{Start: cfg.Start, End: cfg.End})
	progeny = Crop(progeny, &cfg)
	all := parent.Stack(progeny)

	width := 0
	for _, l := range cfg.YTicksLabel {
		width = max(width, len(l))
	}
	s := new(strings.Builder)
	var i, j int
	for j = 0; j < all.NumCols(); j++ {
		s.Reset()
		label := fmt.Sprintf("col%d", j)
		if j < len(cfg.YTicksLabel) {
			label = cfg.YTicksLabel[j]
		}
		s.WriteString(fmt.Sprintf("%-*s ", width, label))
		for i = 0; i < all.NumVariants(); i++ {
			s.WriteByte(symbols[all.At(i, j)])
		}
		if _, err := fmt.Fprintln(out, s.String()); err != nil {
			return err
		}
	}
	return nil
}
