package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/ports"
)

// StoreHandler serves the rater-facing store catalogue.
type StoreHandler struct {
	service ports.StoreService
}

func NewStoreHandler(service ports.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// List handles GET /v1/stores.
//
// @Summary      Browse stores
// @Description  Every listing carries the live aggregate and the caller's own rating, when one exists.
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        name     query     string  false  "Filter by name (substring)"
// @Param        email    query     string  false  "Filter by email (substring)"
// @Param        address  query     string  false  "Filter by address (substring)"
// @Param        sort_by  query     string  false  "Sort field: name, email, address, average_score, created_at"
// @Param        order    query     string  false  "asc (default) or desc"
// @Success      200      {object}  listStoresResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var q storeListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	listings, err := h.service.Browse(c.Request().Context(), identity.UserID, q.filter())
	if err != nil {
		return err
	}
	if listings == nil {
		listings = []ports.StoreListing{}
	}
	return c.JSON(http.StatusOK, listStoresResponse{Data: listings})
}

// Get handles GET /v1/stores/:id.
//
// @Summary      Store detail
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  ports.StoreListing
// @Failure      404  {object}  errorResponse
// @Router       /v1/stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	listing, err := h.service.Detail(c.Request().Context(), identity.UserID, storeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}
