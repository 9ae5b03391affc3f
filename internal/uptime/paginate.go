package uptime

import "sort"

// DefaultPageSize is used when a request doesn't specify one.
const DefaultPageSize = 10

// Paginate applies the request's filters and cursor to summaries, which must
// be sorted ascending by MonitorID. A next token is returned only when more
// matching items follow the page, a prev token only when some precede it.
func Paginate(summaries []MonitorSummary, req Request) (*MonitorSummaryResult, error) {
	cursor, err := DecodeCursor(req.Pagination)
	if err != nil {
		return nil, err
	}

	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	filtered := make([]MonitorSummary, 0, len(summaries))
	for _, s := range summaries {
		if req.Filters.Match(s) {
			filtered = append(filtered, s)
		}
	}

	var start, end int
	switch cursor.CursorDirection {
	case CursorBefore:
		end = len(filtered)
		if cursor.CursorKey != "" {
			end = sort.Search(len(filtered), func(i int) bool {
				return filtered[i].MonitorID >= cursor.CursorKey
			})
		}
		// Nothing left before the cursor: show the first page instead.
		if end == 0 {
			end = min(len(filtered), size)
		}
		start = max(0, end-size)
	default:
		if cursor.CursorKey != "" {
			start = sort.Search(len(filtered), func(i int) bool {
				return filtered[i].MonitorID > cursor.CursorKey
			})
		}
		end = min(len(filtered), start+size)
	}

	page := filtered[start:end]
	result := &MonitorSummaryResult{
		Summaries:         append([]MonitorSummary(nil), page...),
		TotalSummaryCount: len(filtered),
	}

	if len(page) == 0 {
		if start > 0 {
			result.PrevPagePagination = EncodeCursor(CursorPagination{CursorDirection: CursorBefore})
		}
		return result, nil
	}

	if end < len(filtered) {
		result.NextPagePagination = EncodeCursor(CursorPagination{
			CursorKey:       page[len(page)-1].MonitorID,
			CursorDirection: CursorAfter,
		})
	}
	if start > 0 {
		result.PrevPagePagination = EncodeCursor(CursorPagination{
			CursorKey:       page[0].MonitorID,
			CursorDirection: CursorBefore,
		})
	}
	return result, nil
}
