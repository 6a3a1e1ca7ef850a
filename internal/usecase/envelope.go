package usecase

import (
	"encoding/json"
)

// Envelope is the uniform list shape every list screen consumes, extracted
// from the varying on-the-wire envelopes the clearinghouse endpoints use.
type Envelope struct {
	Items      []json.RawMessage `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// NormalizeEnvelope extracts items and pagination out of an arbitrary list
// response body. The fallback chain, first match wins:
//
//  1. nested array at data.data, metadata at meta.pagination
//  2. array at data, same metadata lookup
//  3. body itself is an array, total = len(items)
//  4. anything else degrades to the empty page
//
// page/pageSize are the values the caller requested; they are used when the
// body carries no pagination metadata and for the total-count estimation.
// List screens must never crash on an unexpected envelope, so malformed
// bodies fall through to case 4 instead of returning an error.
func NormalizeEnvelope(body json.RawMessage, page, pageSize int) Envelope {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		if data, ok := objectField(obj, "data"); ok {
			if items, ok := arrayField(data, "data"); ok {
				return paginate(obj, items, page, pageSize)
			}
		}
		if items, ok := arrayField(obj, "data"); ok {
			return paginate(obj, items, page, pageSize)
		}
		return Envelope{Items: []json.RawMessage{}, Page: page, PageSize: pageSize}
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		return Envelope{Items: arr, TotalCount: len(arr), Page: page, PageSize: pageSize}
	}

	return Envelope{Items: []json.RawMessage{}, Page: page, PageSize: pageSize}
}

func paginate(obj map[string]json.RawMessage, items []json.RawMessage, page, pageSize int) Envelope {
	if meta, ok := objectField(obj, "meta"); ok {
		if pg, ok := objectField(meta, "pagination"); ok {
			if total, ok := intField(pg, "total", "total_count"); ok {
				if total < 0 {
					total = 0
				}
				if p, ok := intField(pg, "current_page", "page"); ok && p > 0 {
					page = p
				}
				if ps, ok := intField(pg, "per_page", "page_size"); ok && ps > 0 {
					pageSize = ps
				}
				return Envelope{Items: items, TotalCount: total, Page: page, PageSize: pageSize}
			}
		}
	}
	return Envelope{Items: items, TotalCount: estimateTotal(len(items), page, pageSize), Page: page, PageSize: pageSize}
}

// estimateTotal derives a total count when the server omits one. A full page
// means at least one more page might exist, so the optimistic lower bound is
// page*pageSize; a short page is necessarily the last one, so the count is
// exact. Re-derived on every fetch, never accumulated.
func estimateTotal(itemCount, page, pageSize int) int {
	if itemCount == pageSize {
		return page * pageSize
	}
	total := (page-1)*pageSize + itemCount
	if total < 0 {
		return 0
	}
	return total
}
