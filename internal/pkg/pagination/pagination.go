package pagination

import (
	"strconv"

	"shareit/internal/pkg/apperror"
)

const DefaultSize = 20

// Page is a zero-based page number and size. Clients send a row offset
// (from) which is truncated down to a page boundary: Number = from / size.
type Page struct {
	Number int
	Size   int
}

func New(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, apperror.Validation("from must not be negative")
	}
	if size < 1 {
		return Page{}, apperror.Validation("size must be positive")
	}
	return Page{Number: from / size, Size: size}, nil
}

// Parse reads raw query values; empty strings fall back to 0 and defaultSize.
func Parse(fromStr, sizeStr string, defaultSize int) (Page, error) {
	from, size := 0, defaultSize
	var err error
	if fromStr != "" {
		if from, err = strconv.Atoi(fromStr); err != nil {
			return Page{}, apperror.Validation("from must be an integer")
		}
	}
	if sizeStr != "" {
		if size, err = strconv.Atoi(sizeStr); err != nil {
			return Page{}, apperror.Validation("size must be an integer")
		}
	}
	return New(from, size)
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// Window returns the bounds of p inside a slice of length n.
func (p Page) Window(n int) (lo, hi int) {
	lo = p.Offset()
	if lo > n {
		lo = n
	}
	hi = lo + p.Size
	if hi > n {
		hi = n
	}
	return lo, hi
}
