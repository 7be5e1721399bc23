package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crumbs/restaurant-service/internal/http/response"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
	"github.com/crumbs/restaurant-service/internal/services"
)

type RestaurantHandler struct {
	log         *logger.Logger
	restaurants services.RestaurantService
	query       services.QueryService
}

func NewRestaurantHandler(log *logger.Logger, restaurants services.RestaurantService, query services.QueryService) *RestaurantHandler {
	return &RestaurantHandler{
		log:         log.With("handler", "RestaurantHandler"),
		restaurants: restaurants,
		query:       query,
	}
}

// POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var payload services.AddRestaurantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	r, err := h.restaurants.AddRestaurant(c.Request.Context(), payload)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"restaurant": r})
}

// PUT /api/restaurants/:id
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	var payload services.UpdateRestaurantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	r, err := h.restaurants.UpdateRestaurant(c.Request.Context(), id, payload)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"restaurant": r})
}

// DELETE /api/restaurants/:id
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	r, err := h.restaurants.DeleteRestaurant(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"restaurant": r})
}

// GET /api/restaurants
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.ListRestaurants(dbctx.From(c.Request.Context()), p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("restaurants", page))
}

// GET /api/restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	r, err := h.query.GetRestaurant(dbctx.From(c.Request.Context()), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"restaurant": r})
}

// GET /api/owners/:id/restaurants
func (h *RestaurantHandler) ListOwnerRestaurants(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	rs, err := h.query.ListRestaurantsByOwner(dbctx.From(c.Request.Context()), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"restaurants": rs})
}

// GET /api/restaurants/search?name=
func (h *RestaurantHandler) SearchByName(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.SearchRestaurantsByName(dbctx.From(c.Request.Context()), c.Query("name"), p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("restaurants", page))
}

// GET /api/restaurants/search/menu-items?q=
func (h *RestaurantHandler) SearchByMenuItem(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.SearchRestaurantsByMenuItem(dbctx.From(c.Request.Context()), c.Query("q"), p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("restaurants", page))
}

// GET /api/restaurants/:id/menu-items
func (h *RestaurantHandler) ListMenuItems(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	p, err := parsePage(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	page, err := h.query.ListMenuItemsByRestaurant(dbctx.From(c.Request.Context()), id, p)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, pageBody("menu_items", page))
}
