package variant

import (
	"github.com/pkg/errors"
	"strings"
)

// Column names recognised by Table.Strings and Table.Ints.
const (
	Chrom  = "CHROM"
	Pos    = "POS"
	Id     = "ID"
	Ref    = "REF"
	Alt    = "ALT"
	Filter = "FILTER"
	Info   = "INFO"
)

// Variant is one genomic site. Only Chr and Pos are interpreted, the remaining
// fields are carried through untouched.
type Variant struct {
	Chr    string
	Pos    int
	Id     string
	Ref    string
	Alt    []string
	Qual   float64
	Filter string
	Info   string
}

// Table is the set of operations shared by in-memory and chunked variant tables.
type Table interface {
	Len() int
	At(i int) Variant
	Strings(name string) ([]string, error)
	Ints(name string) ([]int, error)
	Compress(mask []bool) Table
	Slice(start, end int) Table
}

// Variants is a materialized Table.
type Variants []Variant

func (v Variants) Len() int {
	return len(v)
}

func (v Variants) At(i int) Variant {
	return v[i]
}

func (v Variants) Strings(name string) ([]string, error) {
	return stringColumn(v, name)
}

func (v Variants) Ints(name string) ([]int, error) {
	return intColumn(v, name)
}

// Compress returns the rows where mask is true. The mask must have one entry per row.
func (v Variants) Compress(mask []bool) Table {
	ans := make(Variants, 0, countTrue(mask))
	for i := range v {
		if mask[i] {
			ans = append(ans, v[i])
		}
	}
	return ans
}

// Slice returns rows [start, end).
func (v Variants) Slice(start, end int) Table {
	ans := make(Variants, end-start)
	copy(ans, v[start:end])
	return ans
}

func stringColumn(t Table, name string) ([]string, error) {
	var field func(Variant) string
	switch name {
	case Chrom:
		field = func(v Variant) string { return v.Chr }
	case Id:
		field = func(v Variant) string { return v.Id }
	case Ref:
		field = func(v Variant) string { return v.Ref }
	case Alt:
		field = func(v Variant) string { return strings.Join(v.Alt, ",") }
	case Filter:
		field = func(v Variant) string { return v.Filter }
	case Info:
		field = func(v Variant) string { return v.Info }
	default:
		return nil, errors.Errorf("no string column named '%s' in variant table", name)
	}
	ans := make([]string, t.Len())
	for i := range ans {
		ans[i] = field(t.At(i))
	}
	return ans, nil
}

func intColumn(t Table, name string) ([]int, error) {
	if name != Pos {
		return nil, errors.Errorf("no integer column named '%s' in variant table", name)
	}
	ans := make([]int, t.Len())
	for i := range ans {
		ans[i] = t.At(i).Pos
	}
	return ans, nil
}

func countTrue(mask []bool) int {
	var ans int
	for i := range mask {
		if mask[i] {
			ans++
		}
	}
	return ans
}
