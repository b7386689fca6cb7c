package helper

import (
	"strconv"
	"strings"
)

const DefaultPage = 1

// Options bounds per_page for one endpoint.
type Options struct {
	DefaultPerPage int
	MinPerPage     int
	MaxPerPage     int
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ParsePage reads a ?page= value; missing, non-numeric or < 1 → 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// ClampPerPage applies the default when perPage is nil and pins the
// result into [MinPerPage, MaxPerPage].
func (o Options) ClampPerPage(perPage *int) int {
	per := o.DefaultPerPage
	if perPage != nil {
		per = *perPage
	}
	if o.MaxPerPage > 0 && per > o.MaxPerPage {
		per = o.MaxPerPage
	}
	if per < o.MinPerPage {
		per = o.MinPerPage
	}
	if per < 1 {
		per = 1
	}
	return per
}

// Resolve builds offset/limit for the given page and requested per_page.
func (o Options) Resolve(page int, perPage *int) Paging {
	if page < 1 {
		page = DefaultPage
	}
	per := o.ClampPerPage(perPage)
	return Paging{
		Page:    page,
		PerPage: per,
		Offset:  (page - 1) * per,
		Limit:   per,
	}
}
