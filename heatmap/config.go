// Package heatmap renders transmission paintings with gonum/plot.
package heatmap

import (
	"fmt"
	"github.com/dasnellings/haplotypePlot/haplotype"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
	"strings"
)

var ErrConfig = errors.New("invalid plot configuration")

// Config holds every plot option that may be overridden from the command line.
type Config struct {
	Title       string   `yaml:"title"`
	XTicksLabel []string `yaml:"xtickslabels"`
	YTicksLabel []string `yaml:"ytickslabels"`
	Start       int      `yaml:"start"`
	End         int      `yaml:"end"`
	SizeX       float64  `yaml:"size_x"` // inches
	SizeY       float64  `yaml:"size_y"` // inches
	Show        bool     `yaml:"show"`
}

func (c Config) String() string {
	return fmt.Sprintf("title: %s, xtickslabels: %d, ytickslabels: %v, start: %d, end: %d, size_x: %g, size_y: %g, show: %t",
		c.Title, len(c.XTicksLabel), c.YTicksLabel, c.Start, c.End, c.SizeX, c.SizeY, c.Show)
}

// Validate checks the display window and figure size. An End of 0 shows every variant.
func (c Config) Validate() error {
	if c.Start < 0 || c.End < 0 {
		return errors.Wrapf(ErrConfig, "start %d and end %d must not be negative", c.Start, c.End)
	}
	if c.End != 0 && c.Start > c.End {
		return errors.Wrapf(ErrConfig, "start position is greater than end position %d > %d", c.Start, c.End)
	}
	if c.SizeX <= 0 {
		return errors.Wrapf(ErrConfig, "X axis size %g is 0 or negative", c.SizeX)
	}
	if c.SizeY <= 0 {
		return errors.Wrapf(ErrConfig, "Y axis size %g is 0 or negative", c.SizeY)
	}
	return nil
}

// DefaultConfig titles the plot after the parent and chromosome of w and sizes it
// to the number of haplotype rows.
func DefaultConfig(w *haplotype.Wrapper) (Config, error) {
	ylabels, err := w.YLabels()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Title:       fmt.Sprintf("Parent %s in chr %s", w.ParentSample(), w.Chrom()),
		XTicksLabel: w.XLabels(),
		YTicksLabel: ylabels,
		SizeX:       10,
		SizeY:       float64(len(ylabels)) * .2,
	}, nil
}

// Override applies KEY=VALUE pairs. Unknown keys and malformed values are rejected
// and c is left unchanged. Label lists are comma separated.
func (c *Config) Override(pairs []string) error {
	ans := *c
	var key, value string
	var found bool
	var err error
	for _, p := range pairs {
		key, value, found = strings.Cut(p, "=")
		if !found {
			return errors.Wrapf(ErrConfig, "'%s' is not a KEY=VALUE pair", p)
		}
		value = strings.Trim(value, "\"")
		switch key {
		case "title":
			ans.Title = value
		case "xtickslabels":
			ans.XTicksLabel = splitList(value)
		case "ytickslabels":
			ans.YTicksLabel = splitList(value)
		case "start":
			ans.Start, err = strconv.Atoi(value)
		case "end":
			ans.End, err = strconv.Atoi(value)
		case "size_x":
			ans.SizeX, err = strconv.ParseFloat(value, 64)
		case "size_y":
			ans.SizeY, err = strconv.ParseFloat(value, 64)
		case "show":
			ans.Show, err = strconv.ParseBool(value)
		default:
			return errors.Wrapf(ErrConfig, "unknown key '%s'", key)
		}
		if err != nil {
			return errors.Wrapf(ErrConfig, "bad value for %s: %s", key, err)
		}
	}
	*c = ans
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// LoadConfig reads overrides from a YAML file on top of c. Keys absent from the
// file keep their current value.
func (c *Config) LoadConfig(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading plot config '%s'", filename)
	}
	ans := *c
	if err = yaml.UnmarshalStrict(b, &ans); err != nil {
		return errors.Wrapf(ErrConfig, "%s: %s", filename, err)
	}
	*c = ans
	return nil
}
