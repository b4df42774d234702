package params

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams holds limit/offset pagination plus a sort column and direction,
// parsed from query parameters. Keys are case sensitive.
type ListParams struct {
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// ParseList parses ?limit=&offset=&sort_by=&sort_order= safely. sortFields is
// the allowlist of sortable columns; anything else falls back to the first
// entry. Defaults: limit 50, offset 0, descending.
func ParseList(q url.Values, maxLimit int, sortFields ...string) ListParams {
	p := ListParams{
		Limit:     50,
		SortBy:    sortFields[0],
		SortOrder: "desc",
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				// keep default
			case limit > maxLimit:
				p.Limit = maxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if offsetStr := strings.TrimSpace(q.Get("offset")); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
			p.Offset = offset
		}
	}

	if sortBy := strings.TrimSpace(q.Get("sort_by")); sortBy != "" {
		for _, f := range sortFields {
			if sortBy == f {
				p.SortBy = sortBy
				break
			}
		}
	}

	if order := strings.ToLower(strings.TrimSpace(q.Get("sort_order"))); order == "asc" {
		p.SortOrder = "asc"
	}

	return p
}
