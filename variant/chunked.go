package variant

// DefaultChunkSize is the number of records held by each chunk of a Chunked table.
const DefaultChunkSize = 600

// Chunked is a Table assembled from fixed size chunks as records are streamed in.
// Compress and Slice return materialized Variants.
type Chunked struct {
	chunkSize int
	chunks    []Variants
	n         int
}

// NewChunked returns an empty table. A chunkSize < 1 uses DefaultChunkSize.
func NewChunked(chunkSize int) *Chunked {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Chunked{chunkSize: chunkSize}
}

// Append adds v to the end of the table, starting a new chunk when the last one is full.
func (c *Chunked) Append(v Variant) {
	if len(c.chunks) == 0 || len(c.chunks[len(c.chunks)-1]) == c.chunkSize {
		c.chunks = append(c.chunks, make(Variants, 0, c.chunkSize))
	}
	last := len(c.chunks) - 1
	c.chunks[last] = append(c.chunks[last], v)
	c.n++
}

func (c *Chunked) NumChunks() int {
	return len(c.chunks)
}

func (c *Chunked) Len() int {
	return c.n
}

func (c *Chunked) At(i int) Variant {
	return c.chunks[i/c.chunkSize][i%c.chunkSize]
}

func (c *Chunked) Strings(name string) ([]string, error) {
	return stringColumn(c, name)
}

func (c *Chunked) Ints(name string) ([]int, error) {
	return intColumn(c, name)
}

func (c *Chunked) Compress(mask []bool) Table {
	ans := make(Variants, 0, countTrue(mask))
	var i, j, offset int
	for i = range c.chunks {
		for j = range c.chunks[i] {
			if mask[offset+j] {
				ans = append(ans, c.chunks[i][j])
			}
		}
		offset += len(c.chunks[i])
	}
	return ans
}

func (c *Chunked) Slice(start, end int) Table {
	ans := make(Variants, 0, end-start)
	for i := start; i < end; i++ {
		ans = append(ans, c.At(i))
	}
	return ans
}

// Materialize copies every chunk into a single Variants table.
func (c *Chunked) Materialize() Variants {
	ans := make(Variants, 0, c.n)
	for i := range c.chunks {
		ans = append(ans, c.chunks[i]...)
	}
	return ans
}
