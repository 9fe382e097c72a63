// Package handlers is the HTTP boundary: it parses requests into service
// calls and maps the store's error taxonomy onto status codes (404 for
// missing ids, 422 for missing required fields).
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric id path parameter. Non-numeric ids behave like
// ids that don't exist.
func parseID(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
