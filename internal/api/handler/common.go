package handler

import (
	"Ripple/internal/pkg/consts"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getCursorPage 解析游标分页参数，limit 非法时落回默认页大小
func getCursorPage(c *gin.Context) (string, int) {
	cursor := c.Query("cursor")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = consts.DefaultPageSize
	}
	if limit > consts.MaxPageSize {
		limit = consts.MaxPageSize
	}
	return cursor, limit
}
