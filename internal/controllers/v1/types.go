package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yash-sojitra/Hisab/internal/httputil"
)

// Pagination is the page metadata for list endpoints.
type Pagination struct {
	Page       int   `json:"page"`       // The requested page, starting at 1
	Limit      int   `json:"limit"`      // Maximum number of resources in the page
	Total      int64 `json:"total"`      // Total number of resources matching the filters
	TotalPages int64 `json:"totalPages"` // Number of pages for the current limit
}

// newPagination computes the page metadata for a total resource count.
func newPagination(page, limit int, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// parseID parses the id URI parameter as UUID.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return id, nil
}
