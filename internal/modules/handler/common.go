package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric id path parameter.
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
