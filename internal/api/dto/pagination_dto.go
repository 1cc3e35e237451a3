package dto

import "strconv"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination carries the (offset, limit) pair applied to list reads.
// Offset is clamped to >= 0, limit to [1,100].
type Pagination struct {
	Offset int
	Limit  int
}

// ParsePagination reads offset/limit query values, falling back to sane
// defaults on garbage input.
func ParsePagination(offsetStr, limitStr string) Pagination {
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return Pagination{Offset: offset, Limit: limit}
}
