package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	DefaultPage     = 1 // pages are 1-based
)

// normalizePage clamps a requested page and size to usable values
func normalizePage(page, size int) (int, int) {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return page, size
}

// CalculateOffsetLimit turns a 1-based page into an SQL offset and limit.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	page, limit = normalizePage(page, size)
	return uint64((page - 1) * limit), limit
}

// NewPaginationInfo describes page of a list holding totalItems items.
// An empty list still has one page; the current page never passes the last.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	page, size = normalizePage(page, size)

	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams reads the page and size query parameters,
// falling back to defaults for missing or invalid values.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.Query("page"))
	size, _ = strconv.Atoi(c.Query("size"))
	return normalizePage(page, size)
}

// CalculateSliceIndices bounds the window of page within a slice of totalItems.
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	page, size = normalizePage(page, size)
	start = min((page-1)*size, totalItems)
	end = min(start+size, totalItems)
	return start, end
}
