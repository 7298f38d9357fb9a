package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/models"
)

// intQuery parses a positive integer query parameter, falling back to def
// when absent or malformed. Values above 100 are clamped.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > 100 {
		return 100
	}
	return n
}

// offsetQuery parses a non-negative offset query parameter.
func offsetQuery(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("offset"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// paginate applies offset and limit to an already-loaded slice. List result
// sets are bounded per owner, so slicing after the query keeps the service
// signatures simple.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// windowQuery parses the optional from/to query parameters (RFC 3339 or
// date-only). A missing bound stays zero; the analytics layer clamps it.
func windowQuery(c *gin.Context) (models.TimeWindow, error) {
	var window models.TimeWindow
	var err error
	if raw := c.Query("from"); raw != "" {
		if window.From, err = parseTime(raw); err != nil {
			return window, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		if window.To, err = parseTime(raw); err != nil {
			return window, err
		}
	}
	return window, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
