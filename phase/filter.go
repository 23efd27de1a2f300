package phase

import (
	"github.com/dasnellings/haplotypePlot/filter"
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/dasnellings/haplotypePlot/variant"
	"github.com/pkg/errors"
	"log"
)

// FullyPhased marks variants whose calls are phased in every sample.
func FullyPhased(g *genotype.Array) []bool {
	ans := make([]bool, g.NumVariants())
	var j int
	for i := range ans {
		ans[i] = true
		for j = 0; j < g.NumSamples(); j++ {
			if !g.IsPhased(i, j) {
				ans[i] = false
				break
			}
		}
	}
	return ans
}

// Filter phases g and keeps the variants phased in every sample. When no variant is
// fully phased every phased call is returned together with the unfiltered table.
func Filter(g *genotype.Array, t variant.Table, phaser Phaser, logger *log.Logger) (*genotype.Array, variant.Table, error) {
	if g.NumVariants() != t.Len() {
		return nil, nil, errors.Errorf("genotype rows (%d) do not match variant rows (%d)", g.NumVariants(), t.Len())
	}
	phased, err := phaser.Phase(g)
	if err != nil {
		return nil, nil, errors.Wrap(err, "phasing by transmission")
	}

	all := FullyPhased(phased)
	n := filter.Count(all)
	if n == 0 {
		logger.Println("WARNING: could not find enough phased calls. Using all calls")
		return phased, t, nil
	}

	logger.Printf("DEBUG: found %d phased variant calls\n", n)
	return phased.Compress(all), t.Compress(all), nil
}
