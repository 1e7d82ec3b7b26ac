package handler

import (
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Search 跨帖子/用户/社区的子串搜索，kind 可选 post/user/community
func (s *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	kind := c.Query("kind")
	_, limit := getCursorPage(c)

	result, err := s.searchSvc.Search(c.Request.Context(), query, kind, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
