package query

import (
	"context"
	"fmt"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/marketplace"
)

// Options describes a single-shot query: the cache key, whether every
// required parameter is present and the fetch itself. Fetch never checks
// Enabled, callers do.
type Options[T any] struct {
	Key     []any
	Enabled bool
	Fetch   func(ctx context.Context) (T, error)
}

// InfiniteOptions describes a paginated query. NextPage reports the page
// following last, or false when last was the final page.
type InfiniteOptions[T any] struct {
	Key         []any
	Enabled     bool
	InitialPage marketplace.Page
	Fetch       func(ctx context.Context, page marketplace.Page) (T, error)
	NextPage    func(last T) (marketplace.Page, bool)
}

// Collect fetches pages from InitialPage until NextPage reports the end or
// limit pages were read. A zero limit reads every page.
func (o InfiniteOptions[T]) Collect(ctx context.Context, limit int) ([]T, error) {
	var pages []T

	page := o.InitialPage
	for {
		res, err := o.Fetch(ctx, page)
		if err != nil {
			return pages, fmt.Errorf("error fetching page %d: %w", page.Page, err)
		}
		pages = append(pages, res)

		if limit > 0 && len(pages) >= limit {
			return pages, nil
		}

		next, ok := o.NextPage(res)
		if !ok {
			return pages, nil
		}
		page = next
	}
}

// Bool returns a pointer to v, for the Enabled fields of builder args.
func Bool(v bool) *bool {
	return &v
}

func enabled(flag *bool, required ...bool) bool {
	if flag != nil && !*flag {
		return false
	}
	for _, ok := range required {
		if !ok {
			return false
		}
	}
	return true
}

func firstPage(p *marketplace.Page) marketplace.Page {
	if p == nil {
		return marketplace.Page{Page: 1, PageSize: defaultPageSize}
	}
	out := *p
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = defaultPageSize
	}
	return out
}

// stamp fills the page echo of a response with the requested page when the
// server left it out, so NextPage can advance from the response alone.
func stamp(p **marketplace.Page, requested marketplace.Page) {
	if *p == nil {
		*p = &marketplace.Page{Page: requested.Page, PageSize: requested.PageSize}
		return
	}
	if (*p).Page == 0 {
		(*p).Page = requested.Page
	}
	if (*p).PageSize == 0 {
		(*p).PageSize = requested.PageSize
	}
}

func nextAfter(p *marketplace.Page) (marketplace.Page, bool) {
	if p == nil || !p.More {
		return marketplace.Page{}, false
	}
	return marketplace.Page{Page: p.Page + 1, PageSize: p.PageSize, Sort: p.Sort}, true
}
