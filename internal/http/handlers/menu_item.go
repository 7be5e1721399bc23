package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crumbs/restaurant-service/internal/http/response"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/services"
)

type MenuItemHandler struct {
	query services.QueryService
}

func NewMenuItemHandler(query services.QueryService) *MenuItemHandler {
	return &MenuItemHandler{query: query}
}

// GET /api/menu-items
func (h *MenuItemHandler) ListMenuItems(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.ListMenuItems(dbctx.From(c.Request.Context()), p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("menu_items", page))
}

// GET /api/menu-items/search?q=
func (h *MenuItemHandler) SearchMenuItems(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.SearchMenuItems(dbctx.From(c.Request.Context()), c.Query("q"), p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("menu_items", page))
}
