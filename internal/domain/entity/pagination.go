package entity

import "math"

// Page describes a slice of a larger, ordered result set.
type Page struct {
	Number int // 1-based
	Size   int
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}

	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}

	return (p.Number - 1) * p.Size
}

// Clamp applies defaults and the upper bound on page size.
func (p Page) Clamp(defaultSize, maxSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}

	if p.Size < 1 {
		p.Size = defaultSize
	}

	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}

	// The offset of the last page must fit in an int.
	if limit := math.MaxInt/p.Size + 1; p.Number > limit {
		p.Number = limit
	}

	return p
}

// TotalPages returns how many pages of this size hold total records.
func (p Page) TotalPages(total int64) int {
	if p.Size < 1 || total == 0 {
		return 0
	}

	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
