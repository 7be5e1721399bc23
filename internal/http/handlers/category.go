package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crumbs/restaurant-service/internal/http/response"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/services"
)

type CategoryHandler struct {
	query services.QueryService
}

func NewCategoryHandler(query services.QueryService) *CategoryHandler {
	return &CategoryHandler{query: query}
}

// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.query.ListCategories(dbctx.From(c.Request.Context()))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": cats})
}
