package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/ports"
)

// OwnerHandler serves the store owner's view of their own stores.
type OwnerHandler struct {
	service ports.OwnerService
}

func NewOwnerHandler(service ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{service: service}
}

type dashboardResponse struct {
	Stores []ports.StoreListing `json:"stores"`
}

// Dashboard handles GET /v1/owner/dashboard.
//
// @Summary      Owner dashboard
// @Description  One aggregate per owned store; averages are never blended across stores.
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/owner/dashboard [get]
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stores, err := h.service.Dashboard(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []ports.StoreListing{}
	}
	return c.JSON(http.StatusOK, dashboardResponse{Stores: stores})
}

// StoreRatings handles GET /v1/owner/stores/:id/ratings. Admins may read
// any store's ratings; owners only their own.
//
// @Summary      Ratings for an owned store
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  ports.StoreRatingsResult
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/owner/stores/{id}/ratings [get]
func (h *OwnerHandler) StoreRatings(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	result, err := h.service.StoreRatings(c.Request().Context(), identity, storeID)
	if err != nil {
		return err
	}
	if result.Ratings == nil {
		result.Ratings = []ports.StoreRatingEntry{}
	}
	return c.JSON(http.StatusOK, result)
}
