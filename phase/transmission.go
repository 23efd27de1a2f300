// Package phase phases genotype calls by transmission and keeps the variants
// phased in every sample.
package phase

import (
	"github.com/dasnellings/haplotypePlot/genotype"
	"github.com/pkg/errors"
)

// DefaultWindowSize is the number of previous phased heterozygous parental sites
// consulted when phasing a parent.
const DefaultWindowSize = 100

// Phaser returns a copy of g with calls reordered and the phased flags set.
type Phaser interface {
	Phase(g *genotype.Array) (*genotype.Array, error)
}

// Transmission phases a family where sample 0 and sample 1 are the parents
// and all remaining samples are their progeny.
type Transmission struct {
	WindowSize int
}

func (t Transmission) Phase(g *genotype.Array) (*genotype.Array, error) {
	if t.WindowSize < 1 {
		return nil, errors.Errorf("phasing window size must be positive, got %d", t.WindowSize)
	}
	ans := g.Copy()
	for i := 0; i < ans.NumVariants(); i++ {
		for j := 0; j < ans.NumSamples(); j++ {
			ans.SetPhased(i, j, false)
		}
	}
	if ans.NumSamples() < 3 {
		return ans, nil
	}
	phaseProgeny(ans)
	phaseParent(ans, 0, t.WindowSize)
	phaseParent(ans, 1, t.WindowSize)
	return ans, nil
}

func contains(a, b, x int16) bool {
	return x == a || x == b
}

// phaseProgeny orders each progeny call as first parent|second parent when the
// origin of both alleles is unambiguous.
func phaseProgeny(g *genotype.Array) {
	var i, j int
	var m1, m2, p1, p2, a, b int16
	for i = 0; i < g.NumVariants(); i++ {
		if g.IsMissing(i, 0) || g.IsMissing(i, 1) {
			continue
		}
		m1, m2 = g.Call(i, 0)
		p1, p2 = g.Call(i, 1)
		for j = 2; j < g.NumSamples(); j++ {
			if g.IsMissing(i, j) {
				continue
			}
			a, b = g.Call(i, j)
			if a == b {
				if contains(m1, m2, a) && contains(p1, p2, a) {
					g.SetPhased(i, j, true)
				}
				continue
			}
			asIs := contains(m1, m2, a) && contains(p1, p2, b)
			swapped := contains(m1, m2, b) && contains(p1, p2, a)
			switch {
			case asIs && !swapped:
				g.SetPhased(i, j, true)
			case swapped && !asIs:
				g.Set(i, j, b, a)
				g.SetPhased(i, j, true)
			}
		}
	}
}

// phaseParent orients the heterozygous calls of parent so that the allele in slot 0
// travels with the slot 0 alleles of previous heterozygous sites, judged by the
// alleles the progeny received from this parent (progeny slot == parent column).
func phaseParent(g *genotype.Array, parent int, windowSize int) {
	hets := make([]int, 0, g.NumVariants())
	var i, w, j, linkage int
	var x, y, xPrev, yPrev, a, aPrev int16
	for i = 0; i < g.NumVariants(); i++ {
		if g.IsMissing(i, parent) {
			continue
		}
		x, y = g.Call(i, parent)
		if x == y {
			g.SetPhased(i, parent, true)
			continue
		}
		if len(hets) == 0 {
			g.SetPhased(i, parent, true)
			hets = append(hets, i)
			continue
		}

		linkage = 0
		for w = max(0, len(hets)-windowSize); w < len(hets); w++ {
			xPrev, yPrev = g.Call(hets[w], parent)
			for j = 2; j < g.NumSamples(); j++ {
				if !g.IsPhased(i, j) || !g.IsPhased(hets[w], j) {
					continue
				}
				a = g.At(i, j, parent)
				aPrev = g.At(hets[w], j, parent)
				switch {
				case (a == x && aPrev == xPrev) || (a == y && aPrev == yPrev):
					linkage++
				case (a == x && aPrev == yPrev) || (a == y && aPrev == xPrev):
					linkage--
				}
			}
		}

		switch {
		case linkage > 0:
			g.SetPhased(i, parent, true)
			hets = append(hets, i)
		case linkage < 0:
			g.Set(i, parent, y, x)
			g.SetPhased(i, parent, true)
			hets = append(hets, i)
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
